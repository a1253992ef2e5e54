package transpile

import (
	"fmt"
	"strings"
)

// transformJSX rewrites JSX element syntax into explicit element-creation
// calls against the runtime global (React.createElement / React.Fragment).
// Non-JSX source passes through untouched; a malformed element fails the
// whole file.
func transformJSX(src, runtime string) (string, error) {
	var out strings.Builder
	out.Grow(len(src))

	lastToken := ""
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case isSpace(c):
			out.WriteByte(c)
			i++

		case c == '/' && i+1 < len(src) && (src[i+1] == '/' || src[i+1] == '*'):
			end := skipSpace(src, i)
			out.WriteString(src[i:end])
			i = end

		case c == '\'' || c == '"':
			end, err := skipString(src, i)
			if err != nil {
				return "", fmt.Errorf("unterminated string literal")
			}
			out.WriteString(src[i:end])
			lastToken = "\""
			i = end

		case c == '`':
			end, err := skipTemplate(src, i)
			if err != nil {
				return "", fmt.Errorf("unterminated template literal")
			}
			out.WriteString(src[i:end])
			lastToken = "\""
			i = end

		case isIdentStart(c):
			word, end := scanIdent(src, i)
			out.WriteString(word)
			lastToken = word
			i = end

		case c == '<' && i+1 < len(src) && (src[i+1] == '>' || isIdentStart(src[i+1])) && jsxPosition(lastToken):
			expr, end, err := parseElement(src, i, runtime)
			if err != nil {
				return "", err
			}
			out.WriteString(expr)
			lastToken = ")"
			i = end

		case c == '=' && i+1 < len(src) && src[i+1] == '>':
			out.WriteString("=>")
			lastToken = "=>"
			i += 2

		case (c == '&' || c == '|') && i+1 < len(src) && src[i+1] == c:
			out.WriteString(src[i : i+2])
			lastToken = src[i : i+2]
			i += 2

		default:
			out.WriteByte(c)
			lastToken = string(c)
			i++
		}
	}
	return out.String(), nil
}

// jsxPosition reports whether a `<` following the given token starts an
// element rather than a comparison.
func jsxPosition(lastToken string) bool {
	switch lastToken {
	case "", "(", ",", "=", "[", "{", "?", ":", ";", "!", "&", "|",
		"&&", "||", "=>":
		return true
	case "return", "case", "default", "do", "else", "typeof", "void",
		"delete", "throw", "yield", "await", "in", "of":
		return true
	}
	return false
}

// parseElement parses one JSX element or fragment starting at the `<` and
// returns the createElement expression for it.
func parseElement(src string, i int, runtime string) (string, int, error) {
	i++ // consume '<'

	var tag, tagExpr string
	if src[i] == '>' {
		// Fragment: <>children</>
		tag = ""
		tagExpr = runtime + ".Fragment"
	} else {
		tag, i = scanTagName(src, i)
		if strings.Contains(tag, ".") || isUpper(tag[0]) {
			tagExpr = tag
		} else {
			tagExpr = `"` + tag + `"`
		}
	}

	props, selfClosed, end, err := parseAttributes(src, i, tag, runtime)
	if err != nil {
		return "", end, err
	}
	i = end

	args := []string{tagExpr, props}
	if !selfClosed {
		children, close, err := parseChildren(src, i, tag, runtime)
		if err != nil {
			return "", close, err
		}
		args = append(args, children...)
		i = close
	}
	return runtime + ".createElement(" + strings.Join(args, ", ") + ")", i, nil
}

// scanTagName reads an element name: identifiers joined by dots, dashes
// allowed for custom elements.
func scanTagName(src string, i int) (string, int) {
	start := i
	for i < len(src) && (isIdentPart(src[i]) || src[i] == '.' || src[i] == '-') {
		i++
	}
	return src[start:i], i
}

// parseAttributes consumes everything between the tag name and the closing
// `>` (or `/>`), producing the props argument.
func parseAttributes(src string, i int, tag, runtime string) (props string, selfClosed bool, end int, err error) {
	type segment struct {
		spread string   // set for {...expr}
		pairs  []string // set for literal props
	}
	var segments []segment
	appendPair := func(pair string) {
		if n := len(segments); n > 0 && segments[n-1].spread == "" {
			segments[n-1].pairs = append(segments[n-1].pairs, pair)
			return
		}
		segments = append(segments, segment{pairs: []string{pair}})
	}

	for {
		i = skipSpace(src, i)
		if i >= len(src) {
			return "", false, i, fmt.Errorf("unterminated element <%s>", tag)
		}
		switch {
		case src[i] == '>':
			i++
			goto done
		case src[i] == '/' && i+1 < len(src) && src[i+1] == '>':
			selfClosed = true
			i += 2
			goto done
		case src[i] == '{':
			close, berr := skipBalanced(src, i, '{', '}')
			if berr != nil {
				return "", false, i, fmt.Errorf("unterminated expression in <%s>", tag)
			}
			inner := strings.TrimSpace(src[i+1 : close-1])
			if !strings.HasPrefix(inner, "...") {
				return "", false, i, fmt.Errorf("expected spread attribute in <%s>", tag)
			}
			expr, jerr := transformJSX(strings.TrimPrefix(inner, "..."), runtime)
			if jerr != nil {
				return "", false, i, jerr
			}
			segments = append(segments, segment{spread: strings.TrimSpace(expr)})
			i = close
		case isIdentStart(src[i]):
			name, nameEnd := scanAttrName(src, i)
			i = skipSpace(src, nameEnd)
			value := "true"
			if i < len(src) && src[i] == '=' {
				i = skipSpace(src, i+1)
				switch {
				case i < len(src) && (src[i] == '"' || src[i] == '\''):
					close, serr := skipString(src, i)
					if serr != nil {
						return "", false, i, fmt.Errorf("unterminated attribute value in <%s>", tag)
					}
					value = src[i:close]
					i = close
				case i < len(src) && src[i] == '{':
					close, berr := skipBalanced(src, i, '{', '}')
					if berr != nil {
						return "", false, i, fmt.Errorf("unterminated expression in <%s>", tag)
					}
					expr, jerr := transformJSX(src[i+1 : close-1], runtime)
					if jerr != nil {
						return "", false, i, jerr
					}
					value = strings.TrimSpace(expr)
					i = close
				default:
					return "", false, i, fmt.Errorf("malformed value for attribute %q in <%s>", name, tag)
				}
			}
			appendPair(propKey(name) + ": " + value)
		default:
			return "", false, i, fmt.Errorf("unexpected character %q in <%s>", src[i], tag)
		}
	}

done:
	if len(segments) == 0 {
		return "null", selfClosed, i, nil
	}
	literal := func(pairs []string) string { return "{" + strings.Join(pairs, ", ") + "}" }
	if len(segments) == 1 && segments[0].spread == "" {
		return literal(segments[0].pairs), selfClosed, i, nil
	}
	parts := []string{"{}"}
	for _, seg := range segments {
		if seg.spread != "" {
			parts = append(parts, seg.spread)
		} else {
			parts = append(parts, literal(seg.pairs))
		}
	}
	return "Object.assign(" + strings.Join(parts, ", ") + ")", selfClosed, i, nil
}

func scanAttrName(src string, i int) (string, int) {
	start := i
	for i < len(src) && (isIdentPart(src[i]) || src[i] == '-' || src[i] == ':') {
		i++
	}
	return src[start:i], i
}

// propKey quotes attribute names that are not valid identifiers.
func propKey(name string) string {
	if strings.ContainsAny(name, "-:") {
		return `"` + name + `"`
	}
	return name
}

// parseChildren consumes element children up to and including the matching
// closing tag.
func parseChildren(src string, i int, tag, runtime string) ([]string, int, error) {
	var children []string
	var text strings.Builder

	flushText := func() {
		if lit := jsxText(text.String()); lit != "" {
			children = append(children, lit)
		}
		text.Reset()
	}

	for i < len(src) {
		switch {
		case src[i] == '<' && i+1 < len(src) && src[i+1] == '/':
			flushText()
			name, end := scanTagName(src, i+2)
			end = skipSpace(src, end)
			if end >= len(src) || src[end] != '>' {
				return nil, end, fmt.Errorf("malformed closing tag </%s>", name)
			}
			if name != tag {
				return nil, end, fmt.Errorf("mismatched closing tag: expected </%s>, found </%s>", tag, name)
			}
			return children, end + 1, nil
		case src[i] == '<' && i+1 < len(src) && (src[i+1] == '>' || isIdentStart(src[i+1])):
			flushText()
			child, end, err := parseElement(src, i, runtime)
			if err != nil {
				return nil, end, err
			}
			children = append(children, child)
			i = end
		case src[i] == '{':
			flushText()
			close, err := skipBalanced(src, i, '{', '}')
			if err != nil {
				return nil, i, fmt.Errorf("unterminated expression in <%s>", tag)
			}
			inner := src[i+1 : close-1]
			if strings.TrimSpace(stripWrappedComments(inner)) != "" {
				expr, jerr := transformJSX(inner, runtime)
				if jerr != nil {
					return nil, i, jerr
				}
				children = append(children, strings.TrimSpace(expr))
			}
			i = close
		default:
			text.WriteByte(src[i])
			i++
		}
	}
	if tag == "" {
		return nil, i, fmt.Errorf("unterminated fragment")
	}
	return nil, i, fmt.Errorf("unterminated element <%s>", tag)
}

// jsxText converts a raw text run between children into a JS string
// literal, applying JSX whitespace rules: whitespace runs collapse to a
// single space, and edges touching a newline are trimmed. Returns "" when
// nothing visible remains.
func jsxText(raw string) string {
	if raw == "" {
		return ""
	}
	collapsed := strings.Join(strings.Fields(raw), " ")
	if collapsed == "" {
		return ""
	}
	// Whitespace that does not cross a line boundary is significant at the
	// edges ("Hello " before an expression child).
	leading := raw[0] == ' ' || raw[0] == '\t'
	trailing := raw[len(raw)-1] == ' ' || raw[len(raw)-1] == '\t'
	if leading && !strings.ContainsAny(leadingRun(raw), "\n") {
		collapsed = " " + collapsed
	}
	if trailing && !strings.ContainsAny(trailingRun(raw), "\n") {
		collapsed = collapsed + " "
	}
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(collapsed)
	return `"` + escaped + `"`
}

func leadingRun(s string) string {
	for i := 0; i < len(s); i++ {
		if !isSpace(s[i]) {
			return s[:i]
		}
	}
	return s
}

func trailingRun(s string) string {
	for i := len(s) - 1; i >= 0; i-- {
		if !isSpace(s[i]) {
			return s[i+1:]
		}
	}
	return s
}

// stripWrappedComments removes a single wrapping block comment, the JSX
// comment idiom {/* ... */}.
func stripWrappedComments(s string) string {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "/*") && strings.HasSuffix(trimmed, "*/") {
		return ""
	}
	return trimmed
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
