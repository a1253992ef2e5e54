package filemanager

import "errors"

var (
	ErrPathRequired    = errors.New("path is required")
	ErrNewPathRequired = errors.New("new_path is required")
)

// -- Rename --

type RenameRequest struct {
	OldPath string `json:"old_path"`
	NewPath string `json:"new_path"`
}

func (r *RenameRequest) Validate() error {
	if r.OldPath == "" {
		return ErrPathRequired
	}
	if r.NewPath == "" {
		return ErrNewPathRequired
	}
	return nil
}

func (r *RenameRequest) String() string {
	return "Renaming " + r.OldPath + " to " + r.NewPath
}

type RenameResponse struct {
	OldPath string
	NewPath string
	Err     string
}

// -- Delete --

type DeleteRequest struct {
	Path string `json:"path"`
}

func (r *DeleteRequest) Validate() error {
	if r.Path == "" {
		return ErrPathRequired
	}
	return nil
}

func (r *DeleteRequest) String() string {
	return "Deleting " + r.Path
}

type DeleteResponse struct {
	Path string
	Err  string
}
