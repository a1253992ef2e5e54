package editor

import (
	"context"
	"fmt"
	"strings"

	"github.com/quillhart/genui/internal/config"
	"github.com/quillhart/genui/internal/tool"
	"github.com/quillhart/genui/internal/vfs"
)

// StrReplaceTool replaces every occurrence of a snippet in a file.
type StrReplaceTool struct {
	fs     *vfs.FS
	config *config.Config
}

func NewStrReplaceTool(fs *vfs.FS, cfg *config.Config) *StrReplaceTool {
	if fs == nil {
		panic("fs is required")
	}
	if cfg == nil {
		panic("config is required")
	}
	return &StrReplaceTool{fs: fs, config: cfg}
}

func (t *StrReplaceTool) Name() string {
	return "str_replace"
}

func (t *StrReplaceTool) Declaration() tool.Declaration {
	return tool.Declaration{
		Name:        "str_replace",
		Description: "Replace every occurrence of old_str in a file with new_str. Fails when old_str does not appear.",
		Parameters: &tool.Schema{
			Type: tool.TypeObject,
			Properties: map[string]*tool.Schema{
				"path":    {Type: tool.TypeString, Description: "Absolute path to the file"},
				"old_str": {Type: tool.TypeString, Description: "Exact text to find"},
				"new_str": {Type: tool.TypeString, Description: "Replacement text"},
			},
			Required: []string{"path", "old_str", "new_str"},
		},
	}
}

func (t *StrReplaceTool) Input() any {
	return &StrReplaceRequest{}
}

func (t *StrReplaceTool) Execute(ctx context.Context, input any) (tool.Result, error) {
	r, ok := input.(*StrReplaceRequest)
	if !ok {
		return nil, fmt.Errorf("invalid request type: %T", input)
	}
	if err := r.Validate(); err != nil {
		return &StrReplaceResponse{Err: err.Error()}, nil
	}

	path, err := vfs.Normalize(r.Path)
	if err != nil {
		return &StrReplaceResponse{Err: err.Error()}, nil
	}

	oldContent, err := t.fs.ReadFile(path)
	if err != nil {
		return &StrReplaceResponse{Err: err.Error()}, nil
	}

	count := strings.Count(oldContent, r.OldStr)
	if count == 0 {
		return &StrReplaceResponse{
			Err: fmt.Sprintf("old_str not found in %s: %q", path, r.OldStr),
		}, nil
	}

	newContent := strings.ReplaceAll(oldContent, r.OldStr, r.NewStr)
	if int64(len(newContent)) > t.config.Tools.MaxFileSize {
		return &StrReplaceResponse{Err: ErrContentTooLarge.Error()}, nil
	}

	if err := t.fs.UpdateFile(path, newContent); err != nil {
		return &StrReplaceResponse{Err: err.Error()}, nil
	}

	diff, added, removed := unifiedDiff(path, oldContent, newContent)
	return &StrReplaceResponse{
		Path:         path,
		Replacements: count,
		Diff:         diff,
		AddedLines:   added,
		RemovedLines: removed,
	}, nil
}

func (r *StrReplaceResponse) LLMContent() string {
	if r.Err != "" {
		return "Error: " + r.Err
	}
	return fmt.Sprintf("Replaced %d occurrence(s) in %s\n\n%s", r.Replacements, r.Path, r.Diff)
}

func (r *StrReplaceResponse) Display() tool.ToolDisplay {
	if r.Err != "" {
		return tool.StringDisplay("Error: " + r.Err)
	}
	return tool.DiffDisplay{
		Diff:         r.Diff,
		AddedLines:   r.AddedLines,
		RemovedLines: r.RemovedLines,
	}
}
