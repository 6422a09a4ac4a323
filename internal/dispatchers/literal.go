package dispatchers

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	errNotMapping    = errors.New("expected a {...} literal")
	errUnterminated  = errors.New("unterminated string")
	errNonStringKeys = errors.New("dict keys must be strings")

	intLiteral   = regexp.MustCompile(`^[+-]?(0+|[1-9](_?[0-9])*|0[xX](_?[0-9a-fA-F])+|0[oO](_?[0-7])+|0[bB](_?[01])+)$`)
	floatLiteral = regexp.MustCompile(`^[+-]?(([0-9](_?[0-9])*)?\.[0-9](_?[0-9])*([eE][+-]?[0-9](_?[0-9])*)?|[0-9](_?[0-9])*(\.([eE][+-]?[0-9](_?[0-9])*)?|[eE][+-]?[0-9](_?[0-9])*))$`)
)

// parseLiteral parses a Python dict literal such as {'name': 'John', 'ids': (1, 2)}.
//
// Strings are decoded with Python escape rules and re-quoted, tuples become
// lists, and the result is read as a YAML flow mapping. Plain scalars must be
// ints, floats, True, False or None.
func parseLiteral(text string) (map[string]any, error) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "{") {
		return nil, errNotMapping
	}

	flow, err := requote(text)
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(flow), &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, errNotMapping
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode || root.Style&yaml.FlowStyle == 0 {
		return nil, errNotMapping
	}

	v, err := literalValue(root)
	if err != nil {
		return nil, err
	}
	return v.(map[string]any), nil
}

// requote rewrites every Python string in text as a double-quoted string and
// every tuple bracket as a list bracket.
func requote(text string) (string, error) {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case '\'', '"':
			s, end, err := pythonString(text, i)
			if err != nil {
				return "", err
			}
			b.WriteString(strconv.Quote(s))
			i = end
		case '(':
			b.WriteByte('[')
		case ')':
			b.WriteByte(']')
		default:
			b.WriteByte(c)
		}
	}

	return b.String(), nil
}

// pythonString decodes the string literal opening at text[start] and returns
// it with the index of its closing quote.
func pythonString(text string, start int) (string, int, error) {
	quote := text[start]
	var b strings.Builder

	for i := start + 1; i < len(text); i++ {
		c := text[i]
		if c == quote {
			return b.String(), i, nil
		}
		if c != '\\' || i+1 == len(text) {
			b.WriteByte(c)
			continue
		}

		i++
		switch e := text[i]; e {
		case '\\', '\'', '"':
			b.WriteByte(e)
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0', '1', '2', '3', '4', '5', '6', '7':
			j := i
			for j < len(text) && j < i+3 && text[j] >= '0' && text[j] <= '7' {
				j++
			}
			n, _ := strconv.ParseUint(text[i:j], 8, 32)
			b.WriteRune(rune(n))
			i = j - 1
		case 'x', 'u', 'U':
			width := map[byte]int{'x': 2, 'u': 4, 'U': 8}[e]
			if i+width >= len(text) {
				return "", 0, fmt.Errorf("truncated \\%c escape", e)
			}
			n, err := strconv.ParseUint(text[i+1:i+1+width], 16, 32)
			if err != nil {
				return "", 0, fmt.Errorf("invalid \\%c escape", e)
			}
			b.WriteRune(rune(n))
			i += width
		default:
			b.WriteByte('\\')
			b.WriteByte(e)
		}
	}

	return "", 0, errUnterminated
}

func literalValue(n *yaml.Node) (any, error) {
	if n.Anchor != "" || n.Style&yaml.TaggedStyle != 0 {
		return nil, fmt.Errorf("unexpected %q", n.Value)
	}

	switch n.Kind {
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode || !quoted(key) {
				return nil, errNonStringKeys
			}
			v, err := literalValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[key.Value] = v
		}
		return m, nil

	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := literalValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil

	case yaml.ScalarNode:
		if quoted(n) {
			return n.Value, nil
		}
		return plainScalar(n.Value)

	default:
		return nil, fmt.Errorf("unsupported literal %q", n.Value)
	}
}

func quoted(n *yaml.Node) bool {
	return n.Style&(yaml.SingleQuotedStyle|yaml.DoubleQuotedStyle) != 0
}

// plainScalar accepts the unquoted values a Python literal may hold.
func plainScalar(s string) (any, error) {
	switch s {
	case "None":
		return nil, nil
	case "True":
		return true, nil
	case "False":
		return false, nil
	}

	if intLiteral.MatchString(s) {
		n, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return nil, err
		}
		return int(n), nil
	}

	if floatLiteral.MatchString(s) {
		f, err := strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64)
		if err != nil {
			return nil, err
		}
		return f, nil
	}

	return nil, fmt.Errorf("%q is not a literal value", s)
}
