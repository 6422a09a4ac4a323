package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds one color per role. Values are ANSI color numbers
// (0-255) or "bold".
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
	Prompt  string
}

func (c *ColorConfig) field(role Role) *string {
	switch role {
	case RoleSuccess:
		return &c.Success
	case RoleWarning:
		return &c.Warning
	case RoleError:
		return &c.Error
	case RoleInfo:
		return &c.Info
	case RoleMuted:
		return &c.Muted
	case RoleHeader:
		return &c.Header
	case RolePrompt:
		return &c.Prompt
	default:
		return nil
	}
}

func (c ColorConfig) values() map[Role]string {
	out := make(map[Role]string, roleCount)
	for role := Role(0); role < roleCount; role++ {
		out[role] = *c.field(role)
	}
	return out
}

// BaseThemeNames lists the themes accepted by the theme key. A -dark or
// -light suffix is picked from the terminal background when omitted.
var BaseThemeNames = []string{
	"default",
	"mono",
}

// Themes contains the built-in color themes.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success: "10",  // bright green
		Warning: "11",  // bright yellow
		Error:   "9",   // bright red
		Info:    "14",  // bright cyan
		Muted:   "245", // medium gray
		Header:  "bold",
		Prompt:  "13", // bright magenta
	},
	"default-light": {
		Success: "28",
		Warning: "130",
		Error:   "124",
		Info:    "27",
		Muted:   "240",
		Header:  "bold",
		Prompt:  "90",
	},
	"mono-dark": {
		Success: "15",
		Warning: "250",
		Error:   "15",
		Info:    "252",
		Muted:   "243",
		Header:  "bold",
		Prompt:  "bold",
	},
	"mono-light": {
		Success: "232",
		Warning: "238",
		Error:   "232",
		Info:    "235",
		Muted:   "245",
		Header:  "bold",
		Prompt:  "bold",
	},
}

// colorKeys are the rc file keys overriding a single role. Each can also be
// set through ODTERM_COLOR_<ROLE>.
var colorKeys = map[string]Role{
	"color_success": RoleSuccess,
	"color_warning": RoleWarning,
	"color_error":   RoleError,
	"color_info":    RoleInfo,
	"color_muted":   RoleMuted,
	"color_header":  RoleHeader,
	"color_prompt":  RolePrompt,
}

// ResolveThemeName appends -dark or -light to name from the terminal
// background unless it already carries one.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if termenv.HasDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig picks the theme from ODTERM_THEME or the theme key, then
// applies per-role overrides. Environment variables beat the rc file.
func LoadColorConfig(cfg map[string]string) ColorConfig {
	name := os.Getenv("ODTERM_THEME")
	if name == "" {
		name = cfg["theme"]
	}
	if name == "" {
		name = "default"
	}

	result, ok := Themes[ResolveThemeName(name)]
	if !ok {
		result = Themes["default-dark"]
	}

	for key, role := range colorKeys {
		value := os.Getenv("ODTERM_" + strings.ToUpper(key))
		if value == "" {
			value = cfg[key]
		}
		if value != "" {
			*result.field(role) = value
		}
	}

	return result
}
