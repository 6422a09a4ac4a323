package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/odoo-term/odterm/internal/dispatchers"
	"github.com/odoo-term/odterm/internal/domain"
	"github.com/odoo-term/odterm/internal/odoo"
)

const fallbackPort = 8069

// Connect logs in to the server named by --host and installs the new
// session in place of sess. Missing credentials are prompted for.
func Connect(deps Deps) dispatchers.HandlerFunc {
	return func(ctx context.Context, args *dispatchers.Arguments, sess *domain.Session) error {
		return connect(ctx, args, sess, deps)
	}
}

func connect(ctx context.Context, args *dispatchers.Arguments, sess *domain.Session, deps Deps) error {
	host, err := dispatchers.Value[string](args, "h", "host")
	if err != nil {
		return err
	}

	port := dispatchers.ValueOr(args, configPort(deps), "p", "port")
	ssl := dispatchers.ValueOr(args, configBool(deps, "default_ssl"), "S", "ssl")

	user, err := dispatchers.ValueOrCompute(args, func() (string, error) {
		if u, ok := configValue(deps, "default_user"); ok {
			return u, nil
		}
		return deps.PromptUser(ctx, "Username: ")
	}, "u", "user")
	if err != nil {
		return err
	}

	password, err := dispatchers.ValueOrCompute(args, func() (string, error) {
		return deps.PromptPassword(ctx, "Password: ")
	}, "w", "password")
	if err != nil {
		return err
	}

	baseURL := odoo.BaseURL(host, port, ssl)
	if deps.Logger != nil {
		deps.Logger.Info("session: connecting to %s as %s", baseURL, user)
	}

	next, err := deps.Login(ctx, baseURL, user, password)
	if err != nil {
		return fmt.Errorf("failed to connect to Odoo instance: %w", err)
	}

	sess.Replace(next)
	_, _ = deps.Println(deps.Success("Connected to Odoo instance"))
	return nil
}

func configValue(deps Deps, key string) (string, bool) {
	if deps.ConfigGet == nil {
		return "", false
	}
	v, ok := deps.ConfigGet(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func configPort(deps Deps) int {
	if v, ok := configValue(deps, "default_port"); ok {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			return port
		}
	}
	return fallbackPort
}

func configBool(deps Deps, key string) bool {
	v, _ := configValue(deps, key)
	return strings.EqualFold(v, "true")
}
