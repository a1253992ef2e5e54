package preview

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/quillhart/genui/internal/buildmap"
)

// Options controls the assembled document.
type Options struct {
	// Title is the document title.
	Title string
	// RuntimeScripts are classic script URLs loaded before the entry
	// module, in order. These provide the window globals the transpiled
	// modules bind against.
	RuntimeScripts []string
}

// DefaultOptions loads the React and ReactDOM UMD builds from unpkg.
func DefaultOptions() Options {
	return Options{
		Title: "Preview",
		RuntimeScripts: []string{
			"https://unpkg.com/react@18/umd/react.development.js",
			"https://unpkg.com/react-dom@18/umd/react-dom.development.js",
		},
	}
}

// Assembler renders self-contained preview documents. Every module the
// page needs is embedded in the import map, so the output renders from a
// single file with no server behind it.
type Assembler struct {
	opts Options
}

func New() *Assembler {
	return NewWithOptions(DefaultOptions())
}

func NewWithOptions(opts Options) *Assembler {
	if opts.Title == "" {
		opts.Title = "Preview"
	}
	return &Assembler{opts: opts}
}

// BuildHTML assembles the preview document for the given entry module
// and build result. Build errors are rendered into a visible panel
// rather than suppressed, and runtime errors are captured into the same
// panel by the inline handler.
func (a *Assembler) BuildHTML(entry string, result buildmap.Result) (string, error) {
	mapJSON, err := json.MarshalIndent(result.ImportMap, "    ", "  ")
	if err != nil {
		return "", fmt.Errorf("encode import map: %w", err)
	}
	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return "", fmt.Errorf("encode entry path: %w", err)
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("  <meta charset=\"utf-8\">\n")
	b.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "  <title>%s</title>\n", html.EscapeString(a.opts.Title))
	b.WriteString(errorPanelStyle)
	if result.Styles != "" {
		b.WriteString("  <style>\n")
		b.WriteString(result.Styles)
		b.WriteString("\n  </style>\n")
	}
	fmt.Fprintf(&b, "  <script type=\"importmap\">\n    %s\n  </script>\n", mapJSON)
	for _, src := range a.opts.RuntimeScripts {
		fmt.Fprintf(&b, "  <script crossorigin src=\"%s\"></script>\n", html.EscapeString(src))
	}
	b.WriteString("</head>\n<body>\n")
	b.WriteString("  <div id=\"root\"></div>\n")
	b.WriteString(renderErrorPanel(result.Errors))
	b.WriteString(errorCaptureScript)
	fmt.Fprintf(&b, "  <script type=\"module\">\n"+
		"    import(%s).then((mod) => {\n"+
		"      const App = mod.default;\n"+
		"      if (!App) {\n"+
		"        window.__reportPreviewError('entry module has no default export');\n"+
		"        return;\n"+
		"      }\n"+
		"      const root = ReactDOM.createRoot(document.getElementById('root'));\n"+
		"      root.render(React.createElement(App));\n"+
		"    }).catch((err) => {\n"+
		"      window.__reportPreviewError(String(err && err.stack || err));\n"+
		"    });\n"+
		"  </script>\n", entryJSON)
	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

// BuildEmptyHTML renders the placeholder shown before any component file
// exists.
func (a *Assembler) BuildEmptyHTML(message string) string {
	if message == "" {
		message = "No component to preview yet."
	}
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("  <meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "  <title>%s</title>\n", html.EscapeString(a.opts.Title))
	b.WriteString("  <style>\n" +
		"    body { font-family: system-ui, sans-serif; color: #666; display: flex;\n" +
		"           align-items: center; justify-content: center; min-height: 100vh; margin: 0; }\n" +
		"  </style>\n")
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "  <p>%s</p>\n", html.EscapeString(message))
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func renderErrorPanel(errs []string) string {
	var b strings.Builder
	hidden := " hidden"
	if len(errs) > 0 {
		hidden = ""
	}
	fmt.Fprintf(&b, "  <div id=\"preview-errors\"%s>\n", hidden)
	for _, e := range errs {
		fmt.Fprintf(&b, "    <pre>%s</pre>\n", html.EscapeString(e))
	}
	b.WriteString("  </div>\n")
	return b.String()
}

const errorPanelStyle = "  <style>\n" +
	"    #preview-errors { position: fixed; bottom: 0; left: 0; right: 0; max-height: 40vh;\n" +
	"                      overflow-y: auto; background: #2d1215; color: #ff8a8a; font-size: 13px;\n" +
	"                      padding: 8px 12px; z-index: 9999; }\n" +
	"    #preview-errors pre { margin: 4px 0; white-space: pre-wrap; font-family: monospace; }\n" +
	"  </style>\n"

const errorCaptureScript = "  <script>\n" +
	"    window.__reportPreviewError = function (message) {\n" +
	"      var panel = document.getElementById('preview-errors');\n" +
	"      var entry = document.createElement('pre');\n" +
	"      entry.textContent = message;\n" +
	"      panel.appendChild(entry);\n" +
	"      panel.hidden = false;\n" +
	"    };\n" +
	"    window.addEventListener('error', function (event) {\n" +
	"      window.__reportPreviewError(String(event.message));\n" +
	"    });\n" +
	"    window.addEventListener('unhandledrejection', function (event) {\n" +
	"      window.__reportPreviewError(String(event.reason && event.reason.stack || event.reason));\n" +
	"    });\n" +
	"  </script>\n"
