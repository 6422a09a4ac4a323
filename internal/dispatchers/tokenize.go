package dispatchers

import (
	"errors"
	"strings"

	"github.com/odoo-term/odterm/internal/usage"
)

// Tokenize decodes tokens against the flags of cmd.
//
// A token starting with "--" names a flag by long name; a token starting with
// a single "-" names one by its first character. The value starts at the next
// token and covers as many tokens as the flag type consumes; scanning resumes
// right after it. The first failure aborts the whole line.
func Tokenize(cmd CommandSpec, tokens []string) (*Arguments, error) {
	args := NewArguments(cmd.Flags)

	for i := 0; i < len(tokens); {
		tok := tokens[i]

		flag, ok := resolveFlag(cmd, tok)
		if !ok {
			return nil, usage.UnknownFlag(cmd.Name, tok, FindSimilarFlags(cmd, tok, 2)...)
		}

		if i+1 >= len(tokens) {
			return nil, usage.MissingValue(cmd.Name, tok)
		}

		value, consumed, err := decodeValue(flag.Type, tokens, i+1)
		if err != nil {
			raw := tokens[i+1]
			var ce *conversionError
			if errors.As(err, &ce) {
				raw = ce.raw
				err = ce.cause
			}
			return nil, usage.TypeConversion(cmd.Name, tok, flag.Type.String(), raw, err)
		}

		args.Set(flag, value)
		i += 1 + consumed
	}

	return args, nil
}

// resolveFlag maps a flag token to the flag it names.
func resolveFlag(cmd CommandSpec, tok string) (FlagSpec, bool) {
	switch {
	case strings.HasPrefix(tok, "--"):
		name := tok[2:]
		if name == "" {
			return FlagSpec{}, false
		}
		return cmd.findLong(name)
	case strings.HasPrefix(tok, "-") && len(tok) > 1:
		return cmd.findShort(tok[1:2])
	default:
		return FlagSpec{}, false
	}
}
