package dispatchers

import "fmt"

// Registry is the ordered set of commands the shell knows.
type Registry struct {
	commands []CommandSpec
	index    map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds spec. It panics if the name is taken or the flags are inconsistent,
// both of which are programming errors in the command table.
func (r *Registry) Register(spec CommandSpec) {
	if spec.Name == "" {
		panic("dispatchers: command without a name")
	}
	if spec.Handler == nil {
		panic(fmt.Sprintf("dispatchers: command %s has no handler", spec.Name))
	}
	if _, exists := r.index[spec.Name]; exists {
		panic(fmt.Sprintf("dispatchers: command %s already registered", spec.Name))
	}
	if err := validateFlags(spec); err != nil {
		panic(err.Error())
	}

	r.index[spec.Name] = len(r.commands)
	r.commands = append(r.commands, spec)
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (CommandSpec, bool) {
	i, ok := r.index[name]
	if !ok {
		return CommandSpec{}, false
	}
	return r.commands[i], true
}

// Commands returns the registered commands in registration order.
func (r *Registry) Commands() []CommandSpec {
	out := make([]CommandSpec, len(r.commands))
	copy(out, r.commands)
	return out
}

// Names returns the registered command names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.commands))
	for i, c := range r.commands {
		names[i] = c.Name
	}
	return names
}

func validateFlags(spec CommandSpec) error {
	shorts := make(map[string]bool)
	longs := make(map[string]bool)

	for _, f := range spec.Flags {
		if len(f.Short) != 1 {
			return fmt.Errorf("dispatchers: %s: short name %q of --%s must be one character", spec.Name, f.Short, f.Long)
		}
		if len(f.Long) < 2 {
			return fmt.Errorf("dispatchers: %s: long name %q is too short", spec.Name, f.Long)
		}
		if !f.Type.valid() {
			return fmt.Errorf("dispatchers: %s: --%s has unknown type %d", spec.Name, f.Long, int(f.Type))
		}
		if shorts[f.Short] {
			return fmt.Errorf("dispatchers: %s: duplicate short flag -%s", spec.Name, f.Short)
		}
		if longs[f.Long] {
			return fmt.Errorf("dispatchers: %s: duplicate long flag --%s", spec.Name, f.Long)
		}
		shorts[f.Short] = true
		longs[f.Long] = true
	}

	return nil
}
