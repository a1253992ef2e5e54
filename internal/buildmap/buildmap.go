// Package buildmap walks a file snapshot and assembles everything the
// preview document needs: a browser import map with each module embedded as
// a data URL, the aggregated stylesheet text, and the per-file diagnostics
// collected along the way.
package buildmap

import (
	"encoding/base64"
	"sort"
	"strings"

	"github.com/quillhart/genui/internal/transpile"
	"github.com/quillhart/genui/internal/vfs"
)

// sourceExts is the canonical extension order: it decides both which files
// are modules and which candidate satisfies an extensionless specifier
// when several share a base name.
var sourceExts = []string{".tsx", ".ts", ".jsx", ".js"}

const styleExt = ".css"

const dataURLPrefix = "data:text/javascript;base64,"

// Builder produces import maps from file snapshots. Building is a pure
// function of the input mapping, so one Builder serves any number of
// sessions.
type Builder struct {
	transpiler *transpile.Transpiler
}

// New creates a Builder using the default React transpiler.
func New() *Builder {
	return &Builder{transpiler: transpile.New()}
}

// NewWithTranspiler creates a Builder with a custom transpiler.
func NewWithTranspiler(t *transpile.Transpiler) *Builder {
	return &Builder{transpiler: t}
}

// Build transpiles every source module, aggregates stylesheets, and
// registers each successful module in the import map. Files are processed
// in sorted path order so identical input yields identical output. A file
// that fails to transform contributes a diagnostic and is omitted; its
// absence never blocks unrelated modules.
func (b *Builder) Build(files map[string]string) Result {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	ignore := newIgnoreMatcher(files[IgnoreFile])

	result := Result{ImportMap: ImportMap{Imports: map[string]string{}}}
	var styles strings.Builder
	transpiled := map[string]string{}

	for _, p := range paths {
		if ignore.Ignored(p) {
			continue
		}
		ext := vfs.Ext(p)
		switch {
		case ext == styleExt:
			if styles.Len() > 0 {
				styles.WriteString("\n")
			}
			styles.WriteString(files[p])
		case isSourceExt(ext):
			out, err := b.transpiler.Transform(p, files[p])
			if err != nil {
				result.Errors = append(result.Errors, err.Error())
				continue
			}
			result.Errors = append(result.Errors, out.Warnings...)
			transpiled[p] = out.Code
		}
	}

	for p, code := range transpiled {
		result.ImportMap.Imports[p] = dataURLPrefix +
			base64.StdEncoding.EncodeToString([]byte(code))
	}

	// Extensionless specifiers resolve to the best candidate per the
	// canonical order; directory imports fall through to an index module.
	for _, key := range extensionlessKeys(transpiled) {
		if url, ok := result.ImportMap.Imports[key.target]; ok {
			result.ImportMap.Imports[key.specifier] = url
		}
	}

	result.Styles = styles.String()
	return result
}

func isSourceExt(ext string) bool {
	for _, e := range sourceExts {
		if ext == e {
			return true
		}
	}
	return false
}

type aliasKey struct {
	specifier string
	target    string
}

// extensionlessKeys computes, deterministically, the extra import-map keys
// that let specifiers omit extensions: for each module base name the first
// existing extension in canonical order wins, and a directory containing
// an index module is importable by its own path.
func extensionlessKeys(modules map[string]string) []aliasKey {
	bases := map[string]string{}
	for p := range modules {
		base := strings.TrimSuffix(p, vfs.Ext(p))
		if _, claimed := bases[base]; claimed {
			continue
		}
		for _, ext := range sourceExts {
			if _, ok := modules[base+ext]; ok {
				bases[base] = base + ext
				break
			}
		}
	}

	var keys []aliasKey
	for base, target := range bases {
		keys = append(keys, aliasKey{specifier: base, target: target})
		if vfs.Base(base) == "index" {
			dir := vfs.Dir(base)
			if dir != vfs.Root {
				if _, taken := bases[dir]; !taken {
					keys = append(keys, aliasKey{specifier: dir, target: target})
				}
			}
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].specifier < keys[j].specifier })
	return keys
}
