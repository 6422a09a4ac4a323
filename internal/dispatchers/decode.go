package dispatchers

import (
	"fmt"
	"strconv"
	"strings"
)

// boolSentinel is the value token that means "flag present".
const boolSentinel = "-"

// conversionError carries the raw text that failed to decode.
type conversionError struct {
	raw   string
	cause error
}

func (e *conversionError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("cannot decode %q", e.raw)
	}
	return fmt.Sprintf("cannot decode %q: %v", e.raw, e.cause)
}

func (e *conversionError) Unwrap() error {
	return e.cause
}

// decodeValue decodes the value of a flag of type t starting at tokens[start].
// It returns the decoded value and how many tokens it consumed (at least 1).
// The caller guarantees start < len(tokens).
func decodeValue(t FlagType, tokens []string, start int) (any, int, error) {
	switch t {
	case FlagNumber:
		n, err := decodeNumber(tokens[start])
		return n, 1, err
	case FlagString:
		s, consumed := decodeString(tokens, start)
		return s, consumed, nil
	case FlagBool:
		return decodeBool(tokens[start]), 1, nil
	case FlagIdentifier:
		return tokens[start], 1, nil
	case FlagStructuredLiteral:
		text, consumed := joinSpan(tokens, start, literalClosed)
		m, err := parseLiteral(text)
		if err != nil {
			return nil, consumed, &conversionError{raw: text, cause: err}
		}
		return m, consumed, nil
	case FlagList:
		return decodeList(tokens[start]), 1, nil
	default:
		panic(fmt.Sprintf("dispatchers: unhandled flag type %d", int(t)))
	}
}

func decodeNumber(token string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, &conversionError{raw: token, cause: err}
	}
	return n, nil
}

// decodeBool is lenient: only a literal "false" yields false.
func decodeBool(token string) bool {
	if token == boolSentinel {
		return true
	}
	return !strings.EqualFold(token, "false")
}

// decodeString reads a bare token, or a quoted span that may cover several tokens.
func decodeString(tokens []string, start int) (string, int) {
	first := tokens[start]
	if first == "" || (first[0] != '\'' && first[0] != '"') {
		return first, 1
	}

	quote := first[0]
	text, consumed := joinSpan(tokens, start, func(tok string, isFirst bool) bool {
		if isFirst && len(tok) < 2 {
			return false
		}
		return tok[len(tok)-1] == quote
	})

	text = text[1:]
	if strings.HasSuffix(text, string(quote)) {
		text = text[:len(text)-1]
	}
	return text, consumed
}

// literalClosed reports whether tok ends a structured literal span.
func literalClosed(tok string, _ bool) bool {
	return strings.HasSuffix(tok, "}")
}

// joinSpan joins tokens from start with single spaces until closed reports true
// for a token or the input runs out.
func joinSpan(tokens []string, start int, closed func(tok string, isFirst bool) bool) (string, int) {
	var b strings.Builder
	i := start
	for ; i < len(tokens); i++ {
		if i > start {
			b.WriteByte(' ')
		}
		b.WriteString(tokens[i])
		if closed(tokens[i], i == start) {
			i++
			break
		}
	}
	return b.String(), i - start
}

// decodeList splits on commas; all-digit elements become ints.
func decodeList(token string) []any {
	parts := strings.Split(token, ",")
	out := make([]any, 0, len(parts))
	for _, p := range parts {
		if isDigits(p) {
			if n, err := strconv.Atoi(p); err == nil {
				out = append(out, n)
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
