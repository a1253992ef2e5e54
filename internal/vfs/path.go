package vfs

import "strings"

// Root is the path of the root directory. It always exists and can never be
// removed or renamed.
const Root = "/"

// Normalize resolves a path to its canonical absolute form: leading slash,
// no empty or "." segments, ".." resolved against its parent, no trailing
// slash except for the root itself. Paths without a leading slash are
// treated as rooted. Returns ErrInvalidPath when ".." would climb above the
// root.
func Normalize(p string) (string, error) {
	segments := strings.Split(p, "/")
	resolved := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(resolved) == 0 {
				return "", &PathError{Op: "normalize", Path: p, Err: ErrInvalidPath}
			}
			resolved = resolved[:len(resolved)-1]
		default:
			resolved = append(resolved, seg)
		}
	}
	if len(resolved) == 0 {
		return Root, nil
	}
	return "/" + strings.Join(resolved, "/"), nil
}

// Dir returns the parent directory of a normalized path. The parent of the
// root is the root.
func Dir(p string) string {
	if p == Root || p == "" {
		return Root
	}
	idx := strings.LastIndex(p, "/")
	if idx <= 0 {
		return Root
	}
	return p[:idx]
}

// Base returns the final segment of a normalized path. The base of the root
// is the empty string.
func Base(p string) string {
	if p == Root || p == "" {
		return ""
	}
	idx := strings.LastIndex(p, "/")
	return p[idx+1:]
}

// Join resolves a specifier against a base directory and normalizes the
// result. Absolute specifiers ignore the base.
func Join(base, rel string) (string, error) {
	if strings.HasPrefix(rel, "/") {
		return Normalize(rel)
	}
	return Normalize(base + "/" + rel)
}

// Ext returns the extension of a path including the leading dot, or the
// empty string when the final segment has none.
func Ext(p string) string {
	name := Base(p)
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return ""
	}
	return name[idx:]
}
