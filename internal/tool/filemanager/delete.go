package filemanager

import (
	"context"
	"fmt"

	"github.com/quillhart/genui/internal/tool"
	"github.com/quillhart/genui/internal/vfs"
)

// DeleteTool removes a file or directory. Deleting a directory removes
// its whole subtree; the root itself cannot be deleted.
type DeleteTool struct {
	fs *vfs.FS
}

func NewDeleteTool(fs *vfs.FS) *DeleteTool {
	if fs == nil {
		panic("fs is required")
	}
	return &DeleteTool{fs: fs}
}

func (t *DeleteTool) Name() string {
	return "delete"
}

func (t *DeleteTool) Declaration() tool.Declaration {
	return tool.Declaration{
		Name:        "delete",
		Description: "Delete a file or directory. Directories are deleted recursively.",
		Parameters: &tool.Schema{
			Type: tool.TypeObject,
			Properties: map[string]*tool.Schema{
				"path": {Type: tool.TypeString, Description: "Absolute path to delete"},
			},
			Required: []string{"path"},
		},
	}
}

func (t *DeleteTool) Input() any {
	return &DeleteRequest{}
}

func (t *DeleteTool) Execute(ctx context.Context, input any) (tool.Result, error) {
	r, ok := input.(*DeleteRequest)
	if !ok {
		return nil, fmt.Errorf("invalid request type: %T", input)
	}
	if err := r.Validate(); err != nil {
		return &DeleteResponse{Err: err.Error()}, nil
	}

	if err := t.fs.Delete(r.Path); err != nil {
		return &DeleteResponse{Err: err.Error()}, nil
	}
	return &DeleteResponse{Path: r.Path}, nil
}

func (r *DeleteResponse) LLMContent() string {
	if r.Err != "" {
		return "Error: " + r.Err
	}
	return "Deleted " + r.Path
}

func (r *DeleteResponse) Display() tool.ToolDisplay {
	return tool.StringDisplay(r.LLMContent())
}
