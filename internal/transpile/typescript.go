package transpile

import "strings"

// stripTypes removes type-only syntax from TypeScript source: interface and
// type-alias declarations, parameter/variable/return annotations, generic
// arguments on calls, and as/satisfies assertions. It runs after the JSX
// pass, so JSX text has already been reduced to plain string literals and
// every colon it sees is real syntax.
//
// The supported grammar is the practical subset produced by generated UI
// code: function components, hooks, object literals, arrow functions.
// Class field annotations and standalone generic arrow types are out of
// scope.
func stripTypes(src string) (string, error) {
	var out strings.Builder
	out.Grow(len(src))

	type group struct {
		open    byte
		ternary int
	}
	var groups []group
	inner := func() byte {
		if len(groups) == 0 {
			return 0
		}
		return groups[len(groups)-1].open
	}

	lastToken := ""
	declPending := false
	inImportClause := false
	rootTernary := 0

	i := 0
	for i < len(src) {
		c := src[i]

		switch {
		case isSpace(c):
			if c == '\n' && len(groups) == 0 {
				inImportClause = false
			}
			out.WriteByte(c)
			i++

		case c == '/' && i+1 < len(src) && (src[i+1] == '/' || src[i+1] == '*'):
			end := skipSpace(src, i)
			// skipSpace consumes trailing whitespace too; keep it all.
			out.WriteString(src[i:end])
			i = end

		case c == '\'' || c == '"':
			end, err := skipString(src, i)
			if err != nil {
				return "", err
			}
			out.WriteString(src[i:end])
			lastToken = "\""
			i = end

		case c == '`':
			end, err := skipTemplate(src, i)
			if err != nil {
				return "", err
			}
			out.WriteString(src[i:end])
			lastToken = "\""
			i = end

		case isIdentStart(c):
			word, end := scanIdent(src, i)
			switch {
			case word == "interface" && statementPos(lastToken):
				i = skipInterface(src, end)
				lastToken = ";"
			case word == "type" && statementPos(lastToken) && looksLikeTypeAlias(src, end):
				i = skipTypeAlias(src, end)
				lastToken = ";"
			case word == "export" && statementPos(lastToken) && nextWordIn(src, end, "type", "interface"):
				// Strip the export keyword along with the declaration.
				next, tail := nextWord(src, end)
				if next == "interface" {
					i = skipInterface(src, tail)
				} else {
					i = skipTypeAlias(src, tail)
				}
				lastToken = ";"
			case (word == "as" || word == "satisfies") && !inImportClause && valueToken(lastToken):
				i = consumeType(src, end)
			default:
				if word == "import" || word == "export" {
					inImportClause = true
				}
				if word == "const" || word == "let" || word == "var" {
					declPending = true
				}
				out.WriteString(word)
				lastToken = word
				i = end
			}

		case c == '(' || c == '[' || c == '{':
			groups = append(groups, group{open: c})
			out.WriteByte(c)
			lastToken = string(c)
			i++

		case c == ')' || c == ']' || c == '}':
			if len(groups) > 0 {
				groups = groups[:len(groups)-1]
			}
			out.WriteByte(c)
			lastToken = string(c)
			i++

		case c == '?':
			if i+1 < len(src) && (src[i+1] == '.' || src[i+1] == '?') {
				out.WriteString(src[i : i+2])
				lastToken = string(src[i : i+2])
				i += 2
				break
			}
			if inner() == '(' && nextSigByte(src, i+1) == ':' {
				// Optional parameter marker; the annotation strip below
				// removes the colon itself.
				i++
				break
			}
			if len(groups) > 0 {
				groups[len(groups)-1].ternary++
			} else {
				rootTernary++
			}
			out.WriteByte(c)
			lastToken = "?"
			i++

		case c == ':':
			if len(groups) > 0 && groups[len(groups)-1].ternary > 0 {
				groups[len(groups)-1].ternary--
				out.WriteByte(c)
				lastToken = ":"
				i++
				break
			}
			if len(groups) == 0 && rootTernary > 0 {
				rootTernary--
				out.WriteByte(c)
				lastToken = ":"
				i++
				break
			}
			if lastToken == ")" || inner() == '(' || (len(groups) == 0 && declPending) {
				i = consumeType(src, i+1)
				break
			}
			out.WriteByte(c)
			lastToken = ":"
			i++

		case c == ';':
			declPending = false
			inImportClause = false
			out.WriteByte(c)
			lastToken = ";"
			i++

		case c == '<':
			if end, ok := tryGenericArgs(src, i, lastToken); ok {
				i = end
				break
			}
			out.WriteByte(c)
			lastToken = "<"
			i++

		case c == '!' && i+1 < len(src) && src[i+1] != '=' && valueToken(lastToken):
			// Non-null assertion.
			i++

		default:
			out.WriteByte(c)
			lastToken = string(c)
			i++
		}
	}
	return out.String(), nil
}

// statementPos reports whether a token can directly precede a new
// statement.
func statementPos(lastToken string) bool {
	switch lastToken {
	case "", ";", "{", "}":
		return true
	}
	return false
}

// valueToken reports whether the token ends a value expression, which is
// what an `as` assertion or non-null `!` attaches to.
func valueToken(tok string) bool {
	switch tok {
	case ")", "]", "\"":
		return true
	}
	return len(tok) > 0 && isIdentStart(tok[0]) && !isKeyword(tok)
}

func isKeyword(tok string) bool {
	switch tok {
	case "return", "typeof", "case", "do", "else", "in", "of", "new",
		"void", "delete", "throw", "yield", "await", "instanceof":
		return true
	}
	return false
}

func nextSigByte(src string, i int) byte {
	i = skipSpace(src, i)
	if i >= len(src) {
		return 0
	}
	return src[i]
}

func nextWord(src string, i int) (string, int) {
	i = skipSpace(src, i)
	return scanIdent(src, i)
}

func nextWordIn(src string, i int, words ...string) bool {
	w, _ := nextWord(src, i)
	for _, cand := range words {
		if w == cand {
			return true
		}
	}
	return false
}

// skipInterface consumes an interface declaration starting after the
// keyword: name, optional heritage clause, and the balanced body.
func skipInterface(src string, i int) int {
	for i < len(src) && src[i] != '{' {
		i++
	}
	if i >= len(src) {
		return i
	}
	end, err := skipBalanced(src, i, '{', '}')
	if err != nil {
		return len(src)
	}
	return end
}

func looksLikeTypeAlias(src string, i int) bool {
	name, end := nextWord(src, i)
	if name == "" {
		return false
	}
	switch nextSigByte(src, end) {
	case '=', '<':
		return true
	}
	return false
}

// skipTypeAlias consumes `type Name = ...` through the aliased type
// expression.
func skipTypeAlias(src string, i int) int {
	for i < len(src) && src[i] != '=' {
		i++
	}
	if i >= len(src) {
		return i
	}
	end := consumeType(src, i+1)
	if end < len(src) && src[end] == ';' {
		end++
	}
	return end
}

// consumeType advances past a type expression starting at i, returning the
// index of the first byte that is no longer part of the type. Balanced
// groups, unions, generics, and parenthesized function types are consumed;
// the expression ends at a top-level `,`, `)`, `]`, `}`, `;`, or `=` (an
// initializer or the arrow of an annotated arrow function).
func consumeType(src string, i int) int {
	var stack []byte
	last := byte(0)
	i = skipSpace(src, i)
	for i < len(src) {
		c := src[i]
		switch {
		case c == '\'' || c == '"':
			end, err := skipString(src, i)
			if err != nil {
				return end
			}
			i = end
			last = '"'
		case c == '`':
			end, err := skipTemplate(src, i)
			if err != nil {
				return end
			}
			i = end
			last = '"'
		case isIdentStart(c):
			_, i = scanIdent(src, i)
			last = 'a'
		case c >= '0' && c <= '9':
			i++
			last = 'a'
		case c == '<' || c == '(' || c == '[' || c == '{':
			// A brace or paren after a completed type atom is a function
			// body or call, not part of the type.
			if len(stack) == 0 && (c == '{' || c == '(') && typeAtomDone(last) {
				return i
			}
			stack = append(stack, c)
			i++
			last = c
		case c == '>' || c == ')' || c == ']' || c == '}':
			if len(stack) == 0 {
				return i
			}
			stack = stack[:len(stack)-1]
			i++
			last = c
		case c == '=':
			if i+1 < len(src) && src[i+1] == '>' && last == ')' {
				// Function type arrow; the return type follows.
				i += 2
				last = 0
				continue
			}
			return i
		case c == ',' || c == ';':
			if len(stack) == 0 {
				return i
			}
			i++
		case c == '|' || c == '&' || c == '.' || c == '?' || c == ':' || c == '-':
			i++
		case isSpace(c):
			if c == '\n' && len(stack) == 0 {
				// Types in this subset are single-line unless a group is
				// open.
				return i
			}
			i++
		default:
			return i
		}
	}
	return i
}

// typeAtomDone reports whether the last consumed byte class completes a
// type atom.
func typeAtomDone(last byte) bool {
	switch last {
	case 'a', '"', '>', ')', ']', '}':
		return true
	}
	return false
}

// tryGenericArgs detects `ident<TypeArgs>(` call syntax and returns the
// index just past the closing angle bracket. Anything that cannot be a
// plain generic argument list is left alone and parses as a comparison.
func tryGenericArgs(src string, i int, lastToken string) (int, bool) {
	if len(lastToken) == 0 || !isIdentStart(lastToken[0]) || isKeyword(lastToken) {
		return i, false
	}
	depth := 0
	j := i
	for j < len(src) {
		c := src[j]
		switch {
		case c == '<':
			depth++
			j++
		case c == '>':
			depth--
			j++
			if depth == 0 {
				if nextSigByte(src, j) == '(' {
					return j, true
				}
				return i, false
			}
		case isIdentPart(c) || isSpace(c) || c == ',' || c == '.' ||
			c == '[' || c == ']' || c == '{' || c == '}' || c == ':' ||
			c == '|' || c == '&' || c == '\'' || c == '"':
			j++
		default:
			return i, false
		}
	}
	return i, false
}
