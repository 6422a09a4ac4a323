// Package style renders shell output with semantic lipgloss styles.
//
// Every helper maps a Role (success, error, prompt...) to the active theme.
// While styling is off the helpers return their input unchanged.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/odoo-term/odterm/internal/domain"
)

// Role is the meaning of a piece of output.
type Role int

const (
	RoleSuccess Role = iota
	RoleWarning
	RoleError
	RoleInfo
	RoleMuted
	RoleHeader
	RolePrompt
	roleCount
)

var (
	enabled bool
	colors  ColorConfig
	styles  [roleCount]lipgloss.Style
)

// Init turns styling on or off and loads the theme from cfg (nil means
// defaults). NO_COLOR and ODTERM_NO_COLOR always win. Call it once before
// any output.
func Init(enable bool, cfg map[string]string) {
	enabled = enable && os.Getenv("NO_COLOR") == "" && os.Getenv("ODTERM_NO_COLOR") == ""
	if !enabled {
		return
	}

	// fixed profile so -e output piped to a file keeps its colors
	lipgloss.SetColorProfile(termenv.ANSI256)

	colors = LoadColorConfig(cfg)
	for role, value := range colors.values() {
		styles[role] = styleFor(value)
	}
}

// styleFor turns "bold" or an ANSI color number (0-255) into a style.
func styleFor(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled reports whether styling is on.
func Enabled() bool {
	return enabled
}

// GetColors returns the loaded theme, empty while styling is off.
func GetColors() ColorConfig {
	return colors
}

// Render styles text for role.
func Render(role Role, text string) string {
	if !enabled || role < 0 || role >= roleCount {
		return text
	}
	return styles[role].Render(text)
}

// PromptStyle is the style of the shell prompt, for line editors that
// render the prompt themselves.
func PromptStyle() lipgloss.Style {
	if !enabled {
		return lipgloss.NewStyle()
	}
	return styles[RolePrompt]
}

func Success(text string) string { return Render(RoleSuccess, text) }
func Warning(text string) string { return Render(RoleWarning, text) }
func Error(text string) string   { return Render(RoleError, text) }
func Info(text string) string    { return Render(RoleInfo, text) }
func Header(text string) string  { return Render(RoleHeader, text) }
func Muted(text string) string   { return Render(RoleMuted, text) }

// Styler exposes the package helpers as a domain.Styler.
type Styler struct{}

func NewStyler() *Styler { return &Styler{} }

func (*Styler) Enabled() bool              { return Enabled() }
func (*Styler) Success(text string) string { return Success(text) }
func (*Styler) Warning(text string) string { return Warning(text) }
func (*Styler) Error(text string) string   { return Error(text) }
func (*Styler) Info(text string) string    { return Info(text) }
func (*Styler) Muted(text string) string   { return Muted(text) }
func (*Styler) Header(text string) string  { return Header(text) }

// NopStyler returns text unchanged. Tests and NewForTesting use it.
type NopStyler struct{}

func (NopStyler) Enabled() bool              { return false }
func (NopStyler) Success(text string) string { return text }
func (NopStyler) Warning(text string) string { return text }
func (NopStyler) Error(text string) string   { return text }
func (NopStyler) Info(text string) string    { return text }
func (NopStyler) Muted(text string) string   { return text }
func (NopStyler) Header(text string) string  { return text }

var (
	_ domain.Styler = (*Styler)(nil)
	_ domain.Styler = NopStyler{}
)
