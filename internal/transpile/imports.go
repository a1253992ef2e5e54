package transpile

import (
	"fmt"
	"strings"

	"github.com/quillhart/genui/internal/vfs"
)

// rewriteImports resolves module specifiers so the output runs against the
// browser import map:
//
//   - specifiers naming the UI runtime ("react", "react-dom", ...) become
//     const bindings against the pre-supplied globals;
//   - alias-prefixed and relative specifiers become normalized absolute
//     paths, resolvable through the import map;
//   - stylesheet imports are dropped (styles are aggregated separately);
//   - any other bare specifier is reported as a warning and removed, which
//     keeps the rest of the file usable.
//
// Type-only imports are dropped when typed is set.
func rewriteImports(path, src string, opts Options, typed bool) (string, []string, error) {
	var out strings.Builder
	var warnings []string
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
				return "", nil, fmt.Errorf("unterminated string literal")
			}
			out.WriteString(src[i:end])
			lastToken = "\""
			i = end

		case c == '`':
			end, err := skipTemplate(src, i)
			if err != nil {
				return "", nil, fmt.Errorf("unterminated template literal")
			}
			out.WriteString(src[i:end])
			lastToken = "\""
			i = end

		case isIdentStart(c):
			word, end := scanIdent(src, i)
			if word == "import" && statementPos(lastToken) {
				stmt, stmtEnd, err := parseImport(src, end)
				if err != nil {
					return "", nil, err
				}
				replacement, warn := rewriteImport(path, stmt, opts, typed)
				if warn != "" {
					warnings = append(warnings, warn)
				}
				out.WriteString(replacement)
				lastToken = ";"
				i = stmtEnd
				break
			}
			if word == "export" && statementPos(lastToken) {
				if stmt, stmtEnd, ok := parseReexport(src, end); ok {
					replacement, warn := rewriteReexport(path, stmt, opts)
					if warn != "" {
						warnings = append(warnings, warn)
					}
					out.WriteString(replacement)
					lastToken = ";"
					i = stmtEnd
					break
				}
			}
			out.WriteString(word)
			lastToken = word
			i = end

		default:
			out.WriteByte(c)
			lastToken = string(c)
			i++
		}
	}
	return out.String(), warnings, nil
}

// importStmt is a parsed import or re-export statement.
type importStmt struct {
	clause    string // raw text between the keyword and "from"
	specifier string // unquoted module specifier
}

// parseImport parses an import statement starting just past the keyword.
// Returns the statement and the index past its terminating semicolon.
func parseImport(src string, i int) (importStmt, int, error) {
	i = skipSpace(src, i)
	if i < len(src) && (src[i] == '"' || src[i] == '\'') {
		// Side-effect import.
		end, err := skipString(src, i)
		if err != nil {
			return importStmt{}, i, fmt.Errorf("unterminated import specifier")
		}
		return importStmt{specifier: src[i+1 : end-1]}, consumeSemi(src, end), nil
	}

	clauseStart := i
	for i < len(src) {
		i = skipSpace(src, i)
		if i >= len(src) {
			break
		}
		switch {
		case src[i] == '{':
			end, err := skipBalanced(src, i, '{', '}')
			if err != nil {
				return importStmt{}, i, fmt.Errorf("unterminated import clause")
			}
			i = end
		case isIdentStart(src[i]):
			word, end := scanIdent(src, i)
			if word == "from" {
				j := skipSpace(src, end)
				if j < len(src) && (src[j] == '"' || src[j] == '\'') {
					specEnd, err := skipString(src, j)
					if err != nil {
						return importStmt{}, j, fmt.Errorf("unterminated import specifier")
					}
					return importStmt{
						clause:    strings.TrimSpace(src[clauseStart:i]),
						specifier: src[j+1 : specEnd-1],
					}, consumeSemi(src, specEnd), nil
				}
			}
			i = end
		case src[i] == ',' || src[i] == '*':
			i++
		default:
			return importStmt{}, i, fmt.Errorf("malformed import statement")
		}
	}
	return importStmt{}, i, fmt.Errorf("import statement missing specifier")
}

// parseReexport recognizes `export {...} from "spec"` and
// `export * [as ns] from "spec"`; every other export form is left for the
// normal copy path.
func parseReexport(src string, i int) (importStmt, int, bool) {
	j := skipSpace(src, i)
	if j >= len(src) {
		return importStmt{}, i, false
	}
	clauseStart := j
	switch {
	case src[j] == '{':
		end, err := skipBalanced(src, j, '{', '}')
		if err != nil {
			return importStmt{}, i, false
		}
		j = end
	case src[j] == '*':
		j++
		if word, end := nextWord(src, j); word == "as" {
			_, j = nextWord(src, end)
		}
	default:
		return importStmt{}, i, false
	}
	clause := strings.TrimSpace(src[clauseStart:j])
	word, end := nextWord(src, j)
	if word != "from" {
		return importStmt{}, i, false
	}
	j = skipSpace(src, end)
	if j >= len(src) || (src[j] != '"' && src[j] != '\'') {
		return importStmt{}, i, false
	}
	specEnd, err := skipString(src, j)
	if err != nil {
		return importStmt{}, i, false
	}
	return importStmt{clause: clause, specifier: src[j+1 : specEnd-1]}, consumeSemi(src, specEnd), true
}

func consumeSemi(src string, i int) int {
	j := skipSpace(src, i)
	if j < len(src) && src[j] == ';' {
		return j + 1
	}
	return i
}

// rewriteImport produces the replacement text for one import statement.
func rewriteImport(path string, stmt importStmt, opts Options, typed bool) (string, string) {
	if typed && strings.HasPrefix(stmt.clause, "type ") {
		return "", ""
	}
	if global, ok := opts.runtimeGlobal(stmt.specifier); ok {
		return bindRuntime(stmt.clause, global), ""
	}
	if isStylesheet(stmt.specifier) {
		return "", ""
	}
	abs, err := resolveSpecifier(path, stmt.specifier, opts)
	if err != nil {
		return "", fmt.Sprintf("unresolved import %q", stmt.specifier)
	}
	clause := stmt.clause
	if typed {
		clause = stripTypeSpecifiers(clause)
		if clause == "" && stmt.clause != "" {
			return "", ""
		}
	}
	if clause == "" {
		return fmt.Sprintf("import %q;", abs), ""
	}
	return fmt.Sprintf("import %s from %q;", clause, abs), ""
}

func rewriteReexport(path string, stmt importStmt, opts Options) (string, string) {
	if _, ok := opts.runtimeGlobal(stmt.specifier); ok {
		// Re-exporting runtime members has no import-map representation.
		return "", fmt.Sprintf("cannot re-export from %q", stmt.specifier)
	}
	abs, err := resolveSpecifier(path, stmt.specifier, opts)
	if err != nil {
		return "", fmt.Sprintf("unresolved import %q", stmt.specifier)
	}
	return fmt.Sprintf("export %s from %q;", stmt.clause, abs), ""
}

// resolveSpecifier maps an alias, relative, or absolute specifier to a
// normalized absolute path.
func resolveSpecifier(importer, spec string, opts Options) (string, error) {
	switch {
	case strings.HasPrefix(spec, opts.AliasPrefix):
		return vfs.Normalize("/" + strings.TrimPrefix(spec, opts.AliasPrefix))
	case strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../"):
		return vfs.Join(vfs.Dir(importer), spec)
	case strings.HasPrefix(spec, "/"):
		return vfs.Normalize(spec)
	}
	return "", fmt.Errorf("bare specifier %q", spec)
}

func isStylesheet(spec string) bool {
	return strings.HasSuffix(spec, ".css")
}

// bindRuntime converts an import clause into const bindings against a
// runtime global, e.g. `React, {useState}` from "react" becomes
// `const React = window.React; const {useState} = window.React;`.
func bindRuntime(clause, global string) string {
	def, ns, named := splitClause(clause)
	var parts []string
	if def != "" {
		parts = append(parts, fmt.Sprintf("const %s = %s;", def, global))
	}
	if ns != "" {
		parts = append(parts, fmt.Sprintf("const %s = %s;", ns, global))
	}
	if len(named) > 0 {
		fields := make([]string, 0, len(named))
		for _, n := range named {
			if n[1] == "" || n[1] == n[0] {
				fields = append(fields, n[0])
			} else {
				fields = append(fields, n[0]+": "+n[1])
			}
		}
		parts = append(parts, fmt.Sprintf("const {%s} = %s;", strings.Join(fields, ", "), global))
	}
	return strings.Join(parts, " ")
}

// splitClause breaks an import clause into its default binding, namespace
// binding, and named specifiers (original name, local name).
func splitClause(clause string) (def, ns string, named [][2]string) {
	i := 0
	for i < len(clause) {
		i = skipSpace(clause, i)
		if i >= len(clause) {
			break
		}
		switch {
		case clause[i] == ',':
			i++
		case clause[i] == '*':
			if word, end := nextWord(clause, i+1); word == "as" {
				ns, i = nextWord(clause, end)
			} else {
				i++
			}
		case clause[i] == '{':
			end, err := skipBalanced(clause, i, '{', '}')
			if err != nil {
				return def, ns, named
			}
			for _, entry := range strings.Split(clause[i+1 : end-1], ",") {
				fields := strings.Fields(entry)
				if len(fields) > 0 && fields[0] == "type" {
					continue
				}
				switch len(fields) {
				case 1:
					named = append(named, [2]string{fields[0], ""})
				case 3:
					if fields[1] == "as" {
						named = append(named, [2]string{fields[0], fields[2]})
					}
				}
			}
			i = end
		case isIdentStart(clause[i]):
			def, i = scanIdent(clause, i)
		default:
			i++
		}
	}
	return def, ns, named
}

// stripTypeSpecifiers removes inline `type X` entries from a named import
// clause, returning "" when nothing value-level remains.
func stripTypeSpecifiers(clause string) string {
	def, ns, named := splitClause(clause)
	var parts []string
	if def != "" {
		parts = append(parts, def)
	}
	if ns != "" {
		parts = append(parts, "* as "+ns)
	}
	if len(named) > 0 {
		fields := make([]string, 0, len(named))
		for _, n := range named {
			if n[1] == "" {
				fields = append(fields, n[0])
			} else {
				fields = append(fields, n[0]+" as "+n[1])
			}
		}
		parts = append(parts, "{"+strings.Join(fields, ", ")+"}")
	}
	return strings.Join(parts, ", ")
}
