package transpile

import "fmt"

// Diagnostic is a human-readable, per-file transform failure. Files that
// fail transform are reported and skipped; sibling files are never
// affected.
type Diagnostic struct {
	Path    string
	Message string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Path, d.Message)
}

func diagf(path, format string, args ...any) *Diagnostic {
	return &Diagnostic{Path: path, Message: fmt.Sprintf(format, args...)}
}
