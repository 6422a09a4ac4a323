package dispatchers

import (
	"fmt"
	"strings"

	"github.com/odoo-term/odterm/internal/ui/style"
)

const (
	helpIndent     = "    "
	flagHelpIndent = "      "
)

// FlagUsage renders the signature of a flag followed by its help text.
// Mandatory flags are wrapped in <>, optional ones in [].
func FlagUsage(f FlagSpec) string {
	open, close := "[", "]"
	if f.Mandatory {
		open, close = "<", ">"
	}
	sig := fmt.Sprintf("%s-%s, --%s [%s]%s", open, f.Short, f.Long, f.Type, close)
	return style.Info(sig) + "\n" + flagHelpIndent + f.Help
}

// CommandHelp renders the detailed help block of a command.
func CommandHelp(c CommandSpec) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(style.Header("NAME"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s%s - %s\n\n", helpIndent, c.Name, c.Description)

	b.WriteString(style.Header("ARGUMENTS"))
	b.WriteString("\n")
	if len(c.Flags) == 0 {
		b.WriteString(helpIndent + "No arguments\n")
	} else {
		flags := make([]string, len(c.Flags))
		for i, f := range c.Flags {
			flags[i] = FlagUsage(f)
		}
		b.WriteString(helpIndent)
		b.WriteString(strings.Join(flags, "\n\n"+helpIndent))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(style.Header("EXAMPLE"))
	b.WriteString("\n")
	b.WriteString(helpIndent + style.Muted(c.Example) + "\n")

	return b.String()
}

// Index renders one "name - description" line per command, in registry order.
func Index(reg *Registry) string {
	var b strings.Builder

	b.WriteString("\n")
	for _, c := range reg.Commands() {
		fmt.Fprintf(&b, "%s - %s\n", style.Info(c.Name), c.Description)
	}
	b.WriteString("\n")

	return b.String()
}
