package editor

import (
	"context"
	"fmt"

	"github.com/quillhart/genui/internal/config"
	"github.com/quillhart/genui/internal/tool"
	"github.com/quillhart/genui/internal/vfs"
)

// CreateTool writes a complete file, creating any missing parent
// directories. An occupied path is an error; edits to existing files go
// through str_replace or insert.
type CreateTool struct {
	fs     *vfs.FS
	config *config.Config
}

func NewCreateTool(fs *vfs.FS, cfg *config.Config) *CreateTool {
	if fs == nil {
		panic("fs is required")
	}
	if cfg == nil {
		panic("config is required")
	}
	return &CreateTool{fs: fs, config: cfg}
}

func (t *CreateTool) Name() string {
	return "create"
}

func (t *CreateTool) Declaration() tool.Declaration {
	return tool.Declaration{
		Name:        "create",
		Description: "Create a new file with the given contents. Fails when the path is already taken; missing parent directories are created.",
		Parameters: &tool.Schema{
			Type: tool.TypeObject,
			Properties: map[string]*tool.Schema{
				"path":      {Type: tool.TypeString, Description: "Absolute path for the file"},
				"file_text": {Type: tool.TypeString, Description: "Full contents of the file"},
			},
			Required: []string{"path", "file_text"},
		},
	}
}

func (t *CreateTool) Input() any {
	return &CreateRequest{}
}

func (t *CreateTool) Execute(ctx context.Context, input any) (tool.Result, error) {
	r, ok := input.(*CreateRequest)
	if !ok {
		return nil, fmt.Errorf("invalid request type: %T", input)
	}
	if err := r.Validate(); err != nil {
		return &CreateResponse{Err: err.Error()}, nil
	}
	if int64(len(r.FileText)) > t.config.Tools.MaxFileSize {
		return &CreateResponse{Err: ErrContentTooLarge.Error()}, nil
	}

	path, err := vfs.Normalize(r.Path)
	if err != nil {
		return &CreateResponse{Err: err.Error()}, nil
	}

	if err := t.fs.CreateFile(path, r.FileText); err != nil {
		return &CreateResponse{Err: err.Error()}, nil
	}
	return &CreateResponse{Path: path, Bytes: len(r.FileText)}, nil
}

func (r *CreateResponse) LLMContent() string {
	if r.Err != "" {
		return "Error: " + r.Err
	}
	return fmt.Sprintf("Created %s (%d bytes)", r.Path, r.Bytes)
}

func (r *CreateResponse) Display() tool.ToolDisplay {
	return tool.StringDisplay(r.LLMContent())
}
