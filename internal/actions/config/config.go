package config

import (
	"context"
	"sort"

	"github.com/odoo-term/odterm/internal/dispatchers"
	"github.com/odoo-term/odterm/internal/domain"
	"github.com/odoo-term/odterm/internal/usage"
)

// allKeys lists every value instead of reading one key.
const allKeys = "all"

// Config reads, sets or unsets one rc file key:
//
//	config -k pager              print the effective value
//	config -k pager -s 'less -R' write a value
//	config -k pager -u -         drop the override
//	config -k all                list every key
func Config(deps Deps) dispatchers.HandlerFunc {
	return func(ctx context.Context, args *dispatchers.Arguments, sess *domain.Session) error {
		return run(ctx, args, sess, deps)
	}
}

func run(_ context.Context, args *dispatchers.Arguments, _ *domain.Session, deps Deps) error {
	key, err := dispatchers.Value[string](args, "k", "key")
	if err != nil {
		return err
	}

	if key == allKeys {
		return list(deps)
	}
	if !deps.ValidKey(key) {
		return usage.InvalidConfigKey(key)
	}

	switch {
	case args.Has("s", "set"):
		value := dispatchers.ValueOr(args, "", "s", "set")
		return set(key, value, deps)
	case dispatchers.ValueOr(args, false, "u", "unset"):
		return unset(key, deps)
	default:
		return get(key, deps)
	}
}

func get(key string, deps Deps) error {
	value, found := deps.Get(key)
	if !found {
		return usage.InvalidConfigKey(key)
	}

	_, _ = deps.Println(value)
	return nil
}

func set(key, value string, deps Deps) error {
	var updated bool
	err := deps.Edit(func(lines []string) ([]string, bool) {
		lines, updated = deps.Set(lines, key, value)
		return lines, true
	})
	if err != nil {
		return err
	}

	action := "added"
	if updated {
		action = "updated"
	}
	_, _ = deps.Printf("%s %s=%s\n", action, key, value)
	return nil
}

func unset(key string, deps Deps) error {
	var removed bool
	err := deps.Edit(func(lines []string) ([]string, bool) {
		lines, removed = deps.Unset(lines, key)
		return lines, removed
	})
	if err != nil {
		return err
	}

	if !removed {
		_, _ = deps.Printf("%s was not set\n", key)
		return nil
	}
	_, _ = deps.Printf("unset %s\n", key)
	return nil
}

func list(deps Deps) error {
	configMap, err := deps.GetAll()
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		seen[key.Name] = true
		if value, exists := configMap[key.Name]; exists {
			_, _ = deps.Printf("%s=%s\n", key.Name, value)
		}
	}

	// color overrides and unknown keys only when set
	var extra []string
	for name, value := range configMap {
		if !seen[name] && value != "" {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		_, _ = deps.Printf("%s=%s\n", name, configMap[name])
	}

	return nil
}
