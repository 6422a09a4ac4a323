package cli

import "github.com/odoo-term/odterm/internal/dispatchers"

// Flag tables of every shell command. Mandatory flags are checked before
// the handler runs.
var (
	HelpFlags = []dispatchers.FlagSpec{
		{Short: "c", Long: "cmd", Type: dispatchers.FlagString, Help: "The command to consult"},
	}

	ConnectFlags = []dispatchers.FlagSpec{
		{Short: "h", Long: "host", Type: dispatchers.FlagString, Help: "Hostname of the Odoo instance", Mandatory: true},
		{Short: "p", Long: "port", Type: dispatchers.FlagNumber, Help: "Port of the Odoo instance (default: 8069)"},
		{Short: "u", Long: "user", Type: dispatchers.FlagString, Help: "Username of the Odoo instance"},
		{Short: "w", Long: "password", Type: dispatchers.FlagString, Help: "Password of the Odoo instance"},
		{Short: "S", Long: "ssl", Type: dispatchers.FlagBool, Help: "Use SSL to connect to the Odoo instance (default: false)"},
	}

	WriteFlags = []dispatchers.FlagSpec{
		{Short: "m", Long: "model", Type: dispatchers.FlagIdentifier, Help: "Model to write to", Mandatory: true},
		{Short: "i", Long: "id", Type: dispatchers.FlagList, Help: "IDs of the records to write to", Mandatory: true},
		{Short: "v", Long: "value", Type: dispatchers.FlagStructuredLiteral, Help: "Values to write to the records", Mandatory: true},
	}

	CreateFlags = []dispatchers.FlagSpec{
		{Short: "m", Long: "model", Type: dispatchers.FlagIdentifier, Help: "Model to create a record in", Mandatory: true},
		{Short: "v", Long: "value", Type: dispatchers.FlagStructuredLiteral, Help: "Values of the new record", Mandatory: true},
	}

	ReadFlags = []dispatchers.FlagSpec{
		{Short: "m", Long: "model", Type: dispatchers.FlagIdentifier, Help: "Model to read from", Mandatory: true},
		{Short: "i", Long: "id", Type: dispatchers.FlagList, Help: "IDs of the records to read", Mandatory: true},
		{Short: "f", Long: "fields", Type: dispatchers.FlagList, Help: "Fields to read (default: all)"},
	}

	SearchFlags = []dispatchers.FlagSpec{
		{Short: "m", Long: "model", Type: dispatchers.FlagIdentifier, Help: "Model to search in", Mandatory: true},
		{Short: "f", Long: "fields", Type: dispatchers.FlagList, Help: "Fields to return (default: all)"},
		{Short: "d", Long: "domain", Type: dispatchers.FlagList, Help: "Domain to filter on"},
		{Short: "l", Long: "limit", Type: dispatchers.FlagNumber, Help: "Limit of records to return (default: 80)"},
		{Short: "O", Long: "offset", Type: dispatchers.FlagNumber, Help: "Offset of records to return (default: 0)"},
		{Short: "o", Long: "order", Type: dispatchers.FlagString, Help: "Order of records to return"},
	}

	HistoryFlags = []dispatchers.FlagSpec{
		{Short: "n", Long: "limit", Type: dispatchers.FlagNumber, Help: "Number of entries to show (default: 20)"},
		{Short: "c", Long: "calls", Type: dispatchers.FlagBool, Help: "Show the remote call journal instead of typed lines"},
	}

	ConfigFlags = []dispatchers.FlagSpec{
		{Short: "k", Long: "key", Type: dispatchers.FlagIdentifier, Help: "Configuration key, or 'all' to list every key", Mandatory: true},
		{Short: "s", Long: "set", Type: dispatchers.FlagString, Help: "Value to assign"},
		{Short: "u", Long: "unset", Type: dispatchers.FlagBool, Help: "Remove the key from ~/.odootermrc"},
	}

	LogsFlags = []dispatchers.FlagSpec{
		{Short: "n", Long: "limit", Type: dispatchers.FlagNumber, Help: "Number of log lines to show (default: 50)"},
		{Short: "f", Long: "follow", Type: dispatchers.FlagBool, Help: "Keep printing new lines until Ctrl+C"},
		{Short: "c", Long: "clear", Type: dispatchers.FlagBool, Help: "Empty the log file"},
	}
)
