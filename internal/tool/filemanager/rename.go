// Package filemanager holds the tools that restructure the workspace
// tree: renaming and deleting files and directories.
package filemanager

import (
	"context"
	"fmt"

	"github.com/quillhart/genui/internal/tool"
	"github.com/quillhart/genui/internal/vfs"
)

// RenameTool moves a file or directory, carrying any subtree with it.
type RenameTool struct {
	fs *vfs.FS
}

func NewRenameTool(fs *vfs.FS) *RenameTool {
	if fs == nil {
		panic("fs is required")
	}
	return &RenameTool{fs: fs}
}

func (t *RenameTool) Name() string {
	return "rename"
}

func (t *RenameTool) Declaration() tool.Declaration {
	return tool.Declaration{
		Name:        "rename",
		Description: "Move a file or directory to a new path. Directories move with their entire subtree.",
		Parameters: &tool.Schema{
			Type: tool.TypeObject,
			Properties: map[string]*tool.Schema{
				"old_path": {Type: tool.TypeString, Description: "Current absolute path"},
				"new_path": {Type: tool.TypeString, Description: "Destination absolute path"},
			},
			Required: []string{"old_path", "new_path"},
		},
	}
}

func (t *RenameTool) Input() any {
	return &RenameRequest{}
}

func (t *RenameTool) Execute(ctx context.Context, input any) (tool.Result, error) {
	r, ok := input.(*RenameRequest)
	if !ok {
		return nil, fmt.Errorf("invalid request type: %T", input)
	}
	if err := r.Validate(); err != nil {
		return &RenameResponse{Err: err.Error()}, nil
	}

	if err := t.fs.Rename(r.OldPath, r.NewPath); err != nil {
		return &RenameResponse{Err: err.Error()}, nil
	}
	return &RenameResponse{OldPath: r.OldPath, NewPath: r.NewPath}, nil
}

func (r *RenameResponse) LLMContent() string {
	if r.Err != "" {
		return "Error: " + r.Err
	}
	return fmt.Sprintf("Renamed %s to %s", r.OldPath, r.NewPath)
}

func (r *RenameResponse) Display() tool.ToolDisplay {
	return tool.StringDisplay(r.LLMContent())
}
