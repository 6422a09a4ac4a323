package dispatchers

import (
	"fmt"

	"github.com/odoo-term/odterm/internal/usage"
)

// Arguments holds the decoded flag values of one command invocation.
// Values are stored under the flag's long name; short names resolve
// to it through the alias index built from the command's flags.
type Arguments struct {
	values  map[string]any
	aliases map[string]string
}

// NewArguments creates an empty bag that resolves the aliases of flags.
func NewArguments(flags []FlagSpec) *Arguments {
	a := &Arguments{
		values:  make(map[string]any),
		aliases: make(map[string]string, len(flags)*2),
	}
	for _, f := range flags {
		a.aliases[f.Long] = f.Long
		if f.Short != "" {
			a.aliases[f.Short] = f.Long
		}
	}
	return a
}

// Set stores the value for flag, replacing any earlier value.
func (a *Arguments) Set(flag FlagSpec, value any) {
	a.values[flag.Long] = value
}

// Len returns the number of flags holding a value.
func (a *Arguments) Len() int {
	return len(a.values)
}

// canonical maps an alias to the key it is stored under.
func (a *Arguments) canonical(alias string) string {
	if key, ok := a.aliases[alias]; ok {
		return key
	}
	return alias
}

// Lookup returns the value of the first alias that holds one.
func (a *Arguments) Lookup(aliases ...string) (any, bool) {
	for _, alias := range aliases {
		if v, ok := a.values[a.canonical(alias)]; ok {
			return v, true
		}
	}
	return nil, false
}

// Has reports whether any of the aliases holds a value.
func (a *Arguments) Has(aliases ...string) bool {
	_, ok := a.Lookup(aliases...)
	return ok
}

// Get returns the value of the first alias that holds one, or a KeyNotFound error.
func (a *Arguments) Get(aliases ...string) (any, error) {
	if v, ok := a.Lookup(aliases...); ok {
		return v, nil
	}
	return nil, usage.KeyNotFound(aliases)
}

// GetOrDefault returns the value of the first alias that holds one, or def.
func (a *Arguments) GetOrDefault(def any, aliases ...string) any {
	if v, ok := a.Lookup(aliases...); ok {
		return v
	}
	return def
}

// GetOrCompute returns the value of the first alias that holds one.
// When none does, compute is called and its result returned.
func (a *Arguments) GetOrCompute(compute func() (any, error), aliases ...string) (any, error) {
	if v, ok := a.Lookup(aliases...); ok {
		return v, nil
	}
	return compute()
}

// Value returns the value for aliases as a T.
func Value[T any](a *Arguments, aliases ...string) (T, error) {
	var zero T
	v, err := a.Get(aliases...)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("flag %v holds %T, not %T", aliases, v, zero)
	}
	return t, nil
}

// ValueOr returns the value for aliases as a T, or def when absent or of another type.
func ValueOr[T any](a *Arguments, def T, aliases ...string) T {
	v, ok := a.Lookup(aliases...)
	if !ok {
		return def
	}
	t, ok := v.(T)
	if !ok {
		return def
	}
	return t
}

// ValueOrCompute returns the value for aliases as a T, or the result of compute when absent.
func ValueOrCompute[T any](a *Arguments, compute func() (T, error), aliases ...string) (T, error) {
	if a.Has(aliases...) {
		return Value[T](a, aliases...)
	}
	return compute()
}
