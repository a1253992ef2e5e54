package transpile

import (
	"errors"
	"strings"
)

// Shared low-level scanning helpers used by every pass. All passes walk the
// raw source with a byte cursor; strings, template literals, and comments
// are opaque regions that must be skipped in one piece so their content is
// never mistaken for syntax.

var errUnterminated = errors.New("unterminated literal")

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// skipSpace advances past whitespace and comments.
func skipSpace(src string, i int) int {
	for i < len(src) {
		c := src[i]
		switch {
		case isSpace(c):
			i++
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			end := strings.IndexByte(src[i:], '\n')
			if end < 0 {
				return len(src)
			}
			i += end
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return len(src)
			}
			i += end + 4
		default:
			return i
		}
	}
	return i
}

// scanIdent reads an identifier starting at i. Returns the identifier and
// the index just past it; the identifier is empty when i does not start
// one.
func scanIdent(src string, i int) (string, int) {
	if i >= len(src) || !isIdentStart(src[i]) {
		return "", i
	}
	start := i
	for i < len(src) && isIdentPart(src[i]) {
		i++
	}
	return src[start:i], i
}

// skipString advances past a single- or double-quoted string literal
// starting at i.
func skipString(src string, i int) (int, error) {
	quote := src[i]
	i++
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
		case '\n':
			return i, errUnterminated
		case quote:
			return i + 1, nil
		default:
			i++
		}
	}
	return i, errUnterminated
}

// skipTemplate advances past a template literal starting at i, including
// nested ${...} substitutions.
func skipTemplate(src string, i int) (int, error) {
	i++ // opening backtick
	for i < len(src) {
		switch {
		case src[i] == '\\':
			i += 2
		case src[i] == '`':
			return i + 1, nil
		case src[i] == '$' && i+1 < len(src) && src[i+1] == '{':
			end, err := skipBalanced(src, i+1, '{', '}')
			if err != nil {
				return end, err
			}
			i = end
		default:
			i++
		}
	}
	return i, errUnterminated
}

// skipBalanced advances past a balanced group starting at the opener at i,
// skipping strings, templates, and comments inside it.
func skipBalanced(src string, i int, open, close byte) (int, error) {
	depth := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == '\'' || c == '"':
			end, err := skipString(src, i)
			if err != nil {
				return end, err
			}
			i = end
		case c == '`':
			end, err := skipTemplate(src, i)
			if err != nil {
				return end, err
			}
			i = end
		case c == '/' && i+1 < len(src) && (src[i+1] == '/' || src[i+1] == '*'):
			i = skipSpace(src, i)
		case c == open:
			depth++
			i++
		case c == close:
			depth--
			i++
			if depth == 0 {
				return i, nil
			}
		default:
			i++
		}
	}
	return i, errUnterminated
}
