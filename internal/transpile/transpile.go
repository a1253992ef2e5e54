// Package transpile converts JSX/TSX source text into plain module code a
// browser can execute directly. Each file is transformed independently; a
// failure yields a diagnostic and never affects sibling files.
package transpile

import (
	"strings"

	"github.com/quillhart/genui/internal/vfs"
)

// DefaultAliasPrefix is the internal alias used by generated code for
// root-relative imports.
const DefaultAliasPrefix = "@/"

// Options configures a Transpiler.
type Options struct {
	// Runtime is the identifier element-creation calls are emitted
	// against, e.g. "React" for React.createElement.
	Runtime string

	// RuntimeGlobals maps bare library specifiers to the global expression
	// the sandbox pre-supplies for them. A key matches the exact specifier
	// and any subpath beneath it.
	RuntimeGlobals map[string]string

	// AliasPrefix marks root-relative specifiers ("@/components/Button").
	AliasPrefix string
}

// DefaultOptions returns the React runtime configuration used by the
// preview sandbox.
func DefaultOptions() Options {
	return Options{
		Runtime: "React",
		RuntimeGlobals: map[string]string{
			"react":     "window.React",
			"react-dom": "window.ReactDOM",
		},
		AliasPrefix: DefaultAliasPrefix,
	}
}

func (o Options) runtimeGlobal(spec string) (string, bool) {
	for lib, global := range o.RuntimeGlobals {
		if spec == lib || strings.HasPrefix(spec, lib+"/") {
			return global, true
		}
	}
	return "", false
}

// Output is the result of a successful transform. Warnings are non-fatal
// diagnostics (unresolvable bare imports); the code is still usable.
type Output struct {
	Code     string
	Warnings []string
}

// Transpiler transforms one file at a time and holds no state between
// files, so a single instance can serve a whole build.
type Transpiler struct {
	opts Options
}

// New creates a Transpiler with the default React options.
func New() *Transpiler {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a Transpiler with explicit options. Zero fields
// fall back to defaults.
func NewWithOptions(opts Options) *Transpiler {
	def := DefaultOptions()
	if opts.Runtime == "" {
		opts.Runtime = def.Runtime
	}
	if opts.RuntimeGlobals == nil {
		opts.RuntimeGlobals = def.RuntimeGlobals
	}
	if opts.AliasPrefix == "" {
		opts.AliasPrefix = def.AliasPrefix
	}
	return &Transpiler{opts: opts}
}

// Transform converts one file's source into executable module code. The
// path decides JSX and TypeScript handling and prefixes any diagnostic.
func (t *Transpiler) Transform(path, source string) (Output, error) {
	ext := vfs.Ext(path)
	typed := ext == ".ts" || ext == ".tsx"
	jsx := ext == ".jsx" || ext == ".tsx"

	code, warnings, err := rewriteImports(path, source, t.opts, typed)
	if err != nil {
		return Output{}, diagf(path, "%v", err)
	}
	if jsx {
		code, err = transformJSX(code, t.opts.Runtime)
		if err != nil {
			return Output{}, diagf(path, "%v", err)
		}
	}
	if typed {
		code, err = stripTypes(code)
		if err != nil {
			return Output{}, diagf(path, "%v", err)
		}
	}

	for i, w := range warnings {
		warnings[i] = (&Diagnostic{Path: path, Message: w}).Error()
	}
	return Output{Code: code, Warnings: warnings}, nil
}
