package dispatchers

// FlagType determines how many tokens a flag value consumes and how they decode.
type FlagType int

const (
	FlagNumber FlagType = iota
	FlagString
	FlagBool
	FlagIdentifier
	FlagStructuredLiteral
	FlagList
)

// String returns the name shown in help output.
func (t FlagType) String() string {
	switch t {
	case FlagNumber:
		return "NUMBER"
	case FlagString:
		return "STRING"
	case FlagBool:
		return "BOOL"
	case FlagIdentifier:
		return "MODEL"
	case FlagStructuredLiteral:
		return "DICT"
	case FlagList:
		return "LIST"
	default:
		return "UNKNOWN"
	}
}

// valid reports whether t is one of the declared flag types.
func (t FlagType) valid() bool {
	return t >= FlagNumber && t <= FlagList
}
