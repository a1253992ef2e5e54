package vfs

// Serialize captures the entire tree as a path-keyed snapshot suitable for
// persistence. The root directory is always present in the result.
func (fs *FS) Serialize() Snapshot {
	snap := make(Snapshot, len(fs.nodes))
	for p, n := range fs.nodes {
		switch v := n.(type) {
		case *FileNode:
			snap[p] = SnapshotEntry{Type: SnapshotFile, Content: v.Content}
		case *DirectoryNode:
			snap[p] = SnapshotEntry{Type: SnapshotDirectory}
		}
	}
	return snap
}

// Restore replaces the current tree with the snapshot's content. The
// snapshot is validated in full before any state changes, so a corrupt
// snapshot leaves the tree untouched. Counts as a single mutation.
func (fs *FS) Restore(snap Snapshot) error {
	nodes, err := buildNodes(snap)
	if err != nil {
		return err
	}
	fs.nodes = nodes
	fs.revision++
	return nil
}

// FromSnapshot creates a file system restored from a snapshot.
func FromSnapshot(snap Snapshot) (*FS, error) {
	fs := New()
	if err := fs.Restore(snap); err != nil {
		return nil, err
	}
	return fs, nil
}

func buildNodes(snap Snapshot) (map[string]Node, error) {
	nodes := make(map[string]Node, len(snap)+1)
	norms := make(map[string]SnapshotEntry, len(snap))

	for p, entry := range snap {
		norm, err := Normalize(p)
		if err != nil {
			return nil, &CorruptSnapshotError{Reason: "unnormalizable path", Path: p}
		}
		if prev, dup := norms[norm]; dup && prev != entry {
			return nil, &CorruptSnapshotError{Reason: "conflicting entries", Path: norm}
		}
		norms[norm] = entry
	}

	rootEntry, ok := norms[Root]
	if !ok {
		return nil, &CorruptSnapshotError{Reason: "missing root directory"}
	}
	if rootEntry.Type != SnapshotDirectory {
		return nil, &CorruptSnapshotError{Reason: "root is not a directory"}
	}

	for p, entry := range norms {
		switch entry.Type {
		case SnapshotFile:
			if p == Root {
				return nil, &CorruptSnapshotError{Reason: "root is not a directory"}
			}
			nodes[p] = &FileNode{Path: p, Content: entry.Content}
		case SnapshotDirectory:
			nodes[p] = &DirectoryNode{Path: p, Children: map[string]struct{}{}}
		default:
			return nil, &CorruptSnapshotError{Reason: "unknown node type " + entry.Type, Path: p}
		}
	}

	// Every non-root node needs a directory parent already in the snapshot;
	// implicit ancestor creation is a live-tree affordance, not a snapshot
	// repair mechanism.
	for p := range nodes {
		if p == Root {
			continue
		}
		parent, ok := nodes[Dir(p)]
		if !ok {
			return nil, &CorruptSnapshotError{Reason: "orphaned path", Path: p}
		}
		dir, ok := parent.(*DirectoryNode)
		if !ok {
			return nil, &CorruptSnapshotError{Reason: "parent is not a directory", Path: p}
		}
		dir.Children[Base(p)] = struct{}{}
	}
	return nodes, nil
}
