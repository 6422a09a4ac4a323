package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in config listings
	Hidden      bool   // Hidden keys are not written to a fresh rc file
	HideIfEmpty bool   // Written commented out when the default is empty
}

// ConfigKeys defines all available configuration keys.
// Order determines the order of a freshly written rc file.
var ConfigKeys = []ConfigKey{
	// Connection
	{
		Name:        "default_port",
		Default:     "8069",
		Description: "Port used by connect when -p is not given",
		Section:     "Connection",
	},
	{
		Name:        "default_ssl",
		Default:     "false",
		Description: "Use https when -S is not given (true/false)",
		Section:     "Connection",
	},
	{
		Name:        "default_user",
		Description: "Login used by connect when -u is not given",
		Section:     "Connection",
		HideIfEmpty: true,
	},
	{
		Name:        "timeout_sec",
		Default:     "30",
		Description: "Seconds before a remote call is abandoned",
		Section:     "Connection",
	},
	// Shell
	{
		Name:        "history_size",
		Default:     "500",
		Description: "Number of history lines loaded at startup",
		Section:     "Shell",
	},
	{
		Name:        "prompt",
		Default:     "> ",
		Description: "Prompt shown before each line",
		Section:     "Shell",
	},
	// Display
	{
		Name:        "pager",
		Default:     "less -FRSX",
		Description: "Pager command for long output",
		Section:     "Display",
	},
	{
		Name:        "theme",
		Default:     "default",
		Description: "Color theme: default, mono",
		Section:     "Display",
	},
	{
		Name:        "highlight",
		Default:     "monokai",
		Description: "Syntax highlighting style for JSON results, or 'none'",
		Section:     "Display",
	},
	{
		Name:        "display_date",
		Default:     "Jan 02",
		Description: "Date format: dd/mm/yyyy, mm/dd/yyyy, yyyy-mm-dd, or Go format",
		Section:     "Display",
	},
	{
		Name:        "display_time",
		Default:     "24h",
		Description: "Time format: 12h, 24h",
		Section:     "Display",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "info",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
}

// configKeyMap is a lookup map for configuration keys.
var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// GetDefaultValue returns the default value for a config key.
func GetDefaultValue(name string) (string, bool) {
	if key, ok := configKeyMap[name]; ok {
		return key.Default, true
	}
	return "", false
}
