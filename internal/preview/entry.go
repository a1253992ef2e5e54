package preview

import (
	"sort"

	"github.com/quillhart/genui/internal/vfs"
)

// entryCandidates is the fixed search order for the preview entry point.
var entryCandidates = []string{
	"/App.jsx",
	"/App.tsx",
	"/index.jsx",
	"/index.tsx",
	"/src/App.jsx",
	"/src/App.tsx",
}

// SelectEntryPoint picks the module whose default export gets mounted:
// the first candidate present, else the lexicographically first JSX/TSX
// file anywhere in the tree. Reports false when no component file exists,
// in which case the caller renders the empty-state document instead.
func SelectEntryPoint(files map[string]string) (string, bool) {
	for _, candidate := range entryCandidates {
		if _, ok := files[candidate]; ok {
			return candidate, true
		}
	}
	var fallback []string
	for p := range files {
		if ext := vfs.Ext(p); ext == ".jsx" || ext == ".tsx" {
			fallback = append(fallback, p)
		}
	}
	if len(fallback) == 0 {
		return "", false
	}
	sort.Strings(fallback)
	return fallback[0], true
}
