// Package store persists the workspace between runs: the session snapshot
// as a JSON document and the rendered preview as an HTML file. All writes
// go through a temp file and rename so a crash never leaves a partial
// document behind.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quillhart/genui/internal/config"
	"github.com/quillhart/genui/internal/vfs"
)

// sessionVersion guards the document format for future migrations.
const sessionVersion = 1

type sessionDocument struct {
	Version int          `json:"version"`
	Files   vfs.Snapshot `json:"files"`
}

// Store reads and writes the session snapshot and the preview document.
type Store struct {
	sessionPath string
	previewPath string
}

func NewStore(cfg *config.Config) *Store {
	if cfg == nil {
		panic("config is required")
	}
	return &Store{
		sessionPath: cfg.Session.Path,
		previewPath: cfg.Preview.OutputPath,
	}
}

// LoadSession restores the workspace from the session document, or seeds a
// fresh workspace with the starter template when no document exists yet.
func (s *Store) LoadSession() (*vfs.FS, error) {
	data, err := os.ReadFile(s.sessionPath)
	if os.IsNotExist(err) {
		return seedWorkspace()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session %s: %w", s.sessionPath, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("failed to load session %s: %w", s.sessionPath, ErrEmptyDocument)
	}

	var doc sessionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse session %s: %w", s.sessionPath, err)
	}

	fs, err := vfs.FromSnapshot(doc.Files)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session %s: %w", s.sessionPath, err)
	}
	return fs, nil
}

// SaveSession writes the workspace snapshot to the session document.
func (s *Store) SaveSession(fs *vfs.FS) error {
	if fs == nil {
		panic("fs is required")
	}
	doc := sessionDocument{
		Version: sessionVersion,
		Files:   fs.Serialize(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := writeFileAtomic(s.sessionPath, data); err != nil {
		return fmt.Errorf("failed to write session %s: %w", s.sessionPath, err)
	}
	return nil
}

// WritePreview writes the rendered preview document. It satisfies the
// preview service's sink interface.
func (s *Store) WritePreview(html string) error {
	if err := writeFileAtomic(s.previewPath, []byte(html)); err != nil {
		return fmt.Errorf("failed to write preview %s: %w", s.previewPath, err)
	}
	return nil
}

// PreviewPath returns where the preview document is written.
func (s *Store) PreviewPath() string {
	return s.previewPath
}

func seedWorkspace() (*vfs.FS, error) {
	fs := vfs.New()
	for path, content := range starterTemplate {
		if err := fs.CreateFile(path, content); err != nil {
			return nil, fmt.Errorf("failed to seed workspace: %w", err)
		}
	}
	return fs, nil
}

// writeFileAtomic writes data to a sibling temp file and renames it into
// place, creating parent directories as needed.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
