package vfs

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	ErrInvalidPath  = errors.New("invalid path")
	ErrNotFound     = errors.New("path does not exist")
	ErrExists       = errors.New("path already exists")
	ErrNotAFile     = errors.New("path is not a file")
	ErrNotADir      = errors.New("path is not a directory")
	ErrRootReserved = errors.New("operation not permitted on root")
)

// -- Error Types --

// PathError wraps a sentinel with the offending path.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}
func (e *PathError) Unwrap() error { return e.Err }

// CorruptSnapshotError is returned when a snapshot cannot be restored.
type CorruptSnapshotError struct {
	Reason string
	Path   string
}

func (e *CorruptSnapshotError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("corrupt snapshot: %s", e.Reason)
	}
	return fmt.Sprintf("corrupt snapshot: %s: %s", e.Reason, e.Path)
}
