package vfs

// Node is the sealed union of entries in the virtual tree. The concrete
// variants are FileNode and DirectoryNode; consumers dispatch via type
// switch.
type Node interface {
	NodePath() string
	isNode()
}

// FileNode is a leaf holding file content.
type FileNode struct {
	Path    string
	Content string
}

func (f *FileNode) NodePath() string { return f.Path }
func (*FileNode) isNode()            {}

// DirectoryNode holds the set of child names directly beneath it.
// Hierarchical order is derived from path structure; the child set exists so
// listings don't need a full prefix scan.
type DirectoryNode struct {
	Path     string
	Children map[string]struct{}
}

func (d *DirectoryNode) NodePath() string { return d.Path }
func (*DirectoryNode) isNode()            {}

// SnapshotEntry is the serialized form of a single node.
type SnapshotEntry struct {
	Type    string `json:"type"` // "file" or "directory"
	Content string `json:"content,omitempty"`
}

const (
	SnapshotFile      = "file"
	SnapshotDirectory = "directory"
)

// Snapshot is a restorable representation of the entire tree, keyed by
// normalized absolute path.
type Snapshot map[string]SnapshotEntry
