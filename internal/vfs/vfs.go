// Package vfs implements the in-memory virtual file system backing a
// generation session. The tree is a flat mapping of normalized absolute
// paths to nodes; recursive operations work by prefix scan rather than
// pointer traversal, so there are no parent/child references to dangle.
package vfs

import "sort"

// FS is an in-memory file tree. It is owned by a single session and is not
// safe for concurrent mutation; all operations are synchronous and
// all-or-nothing.
type FS struct {
	nodes    map[string]Node
	revision uint64
}

// New creates a file system containing only the root directory.
func New() *FS {
	return &FS{
		nodes: map[string]Node{
			Root: &DirectoryNode{Path: Root, Children: map[string]struct{}{}},
		},
	}
}

// Revision returns the change counter. It increases by exactly one for
// every successful mutating operation, including operations that touch
// multiple nodes.
func (fs *FS) Revision() uint64 { return fs.revision }

// Lookup returns the node at a path, if present. The path may be
// unnormalized; unnormalizable paths report absence.
func (fs *FS) Lookup(p string) (Node, bool) {
	norm, err := Normalize(p)
	if err != nil {
		return nil, false
	}
	n, ok := fs.nodes[norm]
	return n, ok
}

// Exists reports whether a file or directory occupies the path.
func (fs *FS) Exists(p string) bool {
	_, ok := fs.Lookup(p)
	return ok
}

// CreateFile inserts a new file, creating missing ancestor directories.
// Fails with ErrExists if any node already occupies the path.
func (fs *FS) CreateFile(p, content string) error {
	norm, err := Normalize(p)
	if err != nil {
		return err
	}
	if norm == Root {
		return &PathError{Op: "create", Path: p, Err: ErrExists}
	}
	if _, ok := fs.nodes[norm]; ok {
		return &PathError{Op: "create", Path: norm, Err: ErrExists}
	}
	missing, err := fs.missingAncestors(norm)
	if err != nil {
		return err
	}
	fs.applyAncestors(missing)
	fs.insert(&FileNode{Path: norm, Content: content})
	fs.revision++
	return nil
}

// CreateDirectory inserts a new directory, creating missing ancestors.
func (fs *FS) CreateDirectory(p string) error {
	norm, err := Normalize(p)
	if err != nil {
		return err
	}
	if norm == Root {
		return &PathError{Op: "mkdir", Path: p, Err: ErrExists}
	}
	if _, ok := fs.nodes[norm]; ok {
		return &PathError{Op: "mkdir", Path: norm, Err: ErrExists}
	}
	missing, err := fs.missingAncestors(norm)
	if err != nil {
		return err
	}
	fs.applyAncestors(missing)
	fs.insert(&DirectoryNode{Path: norm, Children: map[string]struct{}{}})
	fs.revision++
	return nil
}

// ReadFile returns the content of an existing file.
func (fs *FS) ReadFile(p string) (string, error) {
	norm, err := Normalize(p)
	if err != nil {
		return "", err
	}
	n, ok := fs.nodes[norm]
	if !ok {
		return "", &PathError{Op: "read", Path: norm, Err: ErrNotFound}
	}
	f, ok := n.(*FileNode)
	if !ok {
		return "", &PathError{Op: "read", Path: norm, Err: ErrNotAFile}
	}
	return f.Content, nil
}

// UpdateFile replaces the content of an existing file.
func (fs *FS) UpdateFile(p, content string) error {
	norm, err := Normalize(p)
	if err != nil {
		return err
	}
	n, ok := fs.nodes[norm]
	if !ok {
		return &PathError{Op: "update", Path: norm, Err: ErrNotFound}
	}
	f, ok := n.(*FileNode)
	if !ok {
		return &PathError{Op: "update", Path: norm, Err: ErrNotAFile}
	}
	f.Content = content
	fs.revision++
	return nil
}

// Rename moves a file or directory to a new path, re-keying every
// descendant. Missing ancestors of the destination are created. The
// operation validates fully before mutating, so a failed rename leaves the
// tree unchanged.
func (fs *FS) Rename(oldPath, newPath string) error {
	oldNorm, err := Normalize(oldPath)
	if err != nil {
		return err
	}
	newNorm, err := Normalize(newPath)
	if err != nil {
		return err
	}
	if oldNorm == Root {
		return &PathError{Op: "rename", Path: oldNorm, Err: ErrRootReserved}
	}
	if _, ok := fs.nodes[oldNorm]; !ok {
		return &PathError{Op: "rename", Path: oldNorm, Err: ErrNotFound}
	}
	if _, ok := fs.nodes[newNorm]; ok {
		return &PathError{Op: "rename", Path: newNorm, Err: ErrExists}
	}
	// A directory cannot be moved into itself.
	if newNorm == oldNorm || hasPrefix(newNorm, oldNorm) {
		return &PathError{Op: "rename", Path: newNorm, Err: ErrInvalidPath}
	}
	missing, err := fs.missingAncestors(newNorm)
	if err != nil {
		return err
	}
	fs.applyAncestors(missing)

	moved := fs.subtree(oldNorm)
	for _, p := range moved {
		n := fs.nodes[p]
		delete(fs.nodes, p)
		rekeyed := newNorm + p[len(oldNorm):]
		switch v := n.(type) {
		case *FileNode:
			v.Path = rekeyed
		case *DirectoryNode:
			v.Path = rekeyed
		}
		fs.nodes[rekeyed] = n
	}

	fs.unlink(oldNorm)
	fs.link(newNorm)
	fs.revision++
	return nil
}

// Delete removes a node and all of its descendants. The root cannot be
// deleted.
func (fs *FS) Delete(p string) error {
	norm, err := Normalize(p)
	if err != nil {
		return err
	}
	if norm == Root {
		return &PathError{Op: "delete", Path: norm, Err: ErrRootReserved}
	}
	if _, ok := fs.nodes[norm]; !ok {
		return &PathError{Op: "delete", Path: norm, Err: ErrNotFound}
	}
	for _, sub := range fs.subtree(norm) {
		delete(fs.nodes, sub)
	}
	fs.unlink(norm)
	fs.revision++
	return nil
}

// Files returns a copy of the path->content mapping for every file in the
// tree. Directories are omitted.
func (fs *FS) Files() map[string]string {
	out := make(map[string]string)
	for p, n := range fs.nodes {
		if f, ok := n.(*FileNode); ok {
			out[p] = f.Content
		}
	}
	return out
}

// ReadDir returns the immediate children of a directory, sorted by name.
func (fs *FS) ReadDir(p string) ([]Node, error) {
	norm, err := Normalize(p)
	if err != nil {
		return nil, err
	}
	n, ok := fs.nodes[norm]
	if !ok {
		return nil, &PathError{Op: "readdir", Path: norm, Err: ErrNotFound}
	}
	dir, ok := n.(*DirectoryNode)
	if !ok {
		return nil, &PathError{Op: "readdir", Path: norm, Err: ErrNotADir}
	}
	names := make([]string, 0, len(dir.Children))
	for name := range dir.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	children := make([]Node, 0, len(names))
	for _, name := range names {
		child, err := Join(norm, name)
		if err != nil {
			continue
		}
		if c, ok := fs.nodes[child]; ok {
			children = append(children, c)
		}
	}
	return children, nil
}

// -- internals --

// missingAncestors validates the ancestor chain of a normalized path and
// returns the directories that need creating, outermost first. Fails with
// ErrNotADir when an existing ancestor is a file.
func (fs *FS) missingAncestors(norm string) ([]string, error) {
	var missing []string
	for dir := Dir(norm); dir != Root; dir = Dir(dir) {
		n, ok := fs.nodes[dir]
		if !ok {
			missing = append(missing, dir)
			continue
		}
		if _, isDir := n.(*DirectoryNode); !isDir {
			return nil, &PathError{Op: "mkdir", Path: dir, Err: ErrNotADir}
		}
		break
	}
	// Reverse so parents are created before children.
	for i, j := 0, len(missing)-1; i < j; i, j = i+1, j-1 {
		missing[i], missing[j] = missing[j], missing[i]
	}
	return missing, nil
}

func (fs *FS) applyAncestors(dirs []string) {
	for _, dir := range dirs {
		fs.insert(&DirectoryNode{Path: dir, Children: map[string]struct{}{}})
	}
}

// insert places a node and registers it with its parent. The parent is
// assumed to exist as a directory.
func (fs *FS) insert(n Node) {
	fs.nodes[n.NodePath()] = n
	fs.link(n.NodePath())
}

func (fs *FS) link(p string) {
	if parent, ok := fs.nodes[Dir(p)].(*DirectoryNode); ok {
		parent.Children[Base(p)] = struct{}{}
	}
}

func (fs *FS) unlink(p string) {
	if parent, ok := fs.nodes[Dir(p)].(*DirectoryNode); ok {
		delete(parent.Children, Base(p))
	}
}

// subtree returns the path plus every descendant path.
func (fs *FS) subtree(norm string) []string {
	var out []string
	for p := range fs.nodes {
		if p == norm || hasPrefix(p, norm) {
			out = append(out, p)
		}
	}
	return out
}

// hasPrefix reports whether p is strictly inside dir.
func hasPrefix(p, dir string) bool {
	if dir == Root {
		return p != Root
	}
	return len(p) > len(dir) && p[:len(dir)] == dir && p[len(dir)] == '/'
}
