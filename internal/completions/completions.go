// Package completions derives prompt suggestions from the command registry.
package completions

import (
	"sort"
	"strings"

	"github.com/odoo-term/odterm/internal/dispatchers"
)

// CommandInfo is the completion view of one registered command.
type CommandInfo struct {
	Name    string
	Summary string
	Flags   []FlagInfo
}

// FlagInfo lists the spellings of one flag.
type FlagInfo struct {
	Names       []string
	Description string
}

// ExtractCommands reads the commands of reg in registration order.
func ExtractCommands(reg *dispatchers.Registry) []CommandInfo {
	if reg == nil {
		return nil
	}

	var commands []CommandInfo
	for _, c := range reg.Commands() {
		flags := make([]FlagInfo, 0, len(c.Flags))
		for _, f := range c.Flags {
			flags = append(flags, FlagInfo{
				Names:       []string{"--" + f.Long, "-" + f.Short},
				Description: f.Help,
			})
		}
		commands = append(commands, CommandInfo{Name: c.Name, Summary: c.Description, Flags: flags})
	}
	return commands
}

// FindCommand returns the command called name.
func FindCommand(commands []CommandInfo, name string) *CommandInfo {
	for i := range commands {
		if commands[i].Name == name {
			return &commands[i]
		}
	}
	return nil
}

// Completer suggests whole lines that extend what has been typed so far.
type Completer struct {
	commands []CommandInfo
}

func New(reg *dispatchers.Registry) *Completer {
	return &Completer{commands: ExtractCommands(reg)}
}

// Complete returns candidate lines for line. While the first word is typed
// it offers command names; when the last word starts with "--" it offers the
// long flags of that command that are not on the line yet.
func (c *Completer) Complete(line string) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	words := strings.Fields(line)
	endsWithSpace := strings.HasSuffix(line, " ")

	if len(words) == 1 && !endsWithSpace {
		var out []string
		for _, cmd := range c.commands {
			if strings.HasPrefix(cmd.Name, words[0]) && cmd.Name != words[0] {
				out = append(out, cmd.Name+" ")
			}
		}
		return out
	}

	last := words[len(words)-1]
	if endsWithSpace || !strings.HasPrefix(last, "--") {
		return nil
	}

	cmd := FindCommand(c.commands, words[0])
	if cmd == nil {
		return nil
	}

	used := make(map[string]bool)
	for _, w := range words[1 : len(words)-1] {
		used[w] = true
	}

	head := line[:len(line)-len(last)]
	var out []string
	for _, f := range cmd.Flags {
		if used[f.Names[0]] || used[f.Names[1]] {
			continue
		}
		if strings.HasPrefix(f.Names[0], last) && f.Names[0] != last {
			out = append(out, head+f.Names[0]+" ")
		}
	}
	sort.Strings(out)
	return out
}
