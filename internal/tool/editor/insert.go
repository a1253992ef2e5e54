package editor

import (
	"context"
	"fmt"
	"strings"

	"github.com/quillhart/genui/internal/config"
	"github.com/quillhart/genui/internal/tool"
	"github.com/quillhart/genui/internal/vfs"
)

// InsertTool inserts text after a given line in a file.
type InsertTool struct {
	fs     *vfs.FS
	config *config.Config
}

func NewInsertTool(fs *vfs.FS, cfg *config.Config) *InsertTool {
	if fs == nil {
		panic("fs is required")
	}
	if cfg == nil {
		panic("config is required")
	}
	return &InsertTool{fs: fs, config: cfg}
}

func (t *InsertTool) Name() string {
	return "insert"
}

func (t *InsertTool) Declaration() tool.Declaration {
	return tool.Declaration{
		Name:        "insert",
		Description: "Insert new_str after the given 1-based line of a file. insert_line 0 inserts at the top; the line count appends at the bottom.",
		Parameters: &tool.Schema{
			Type: tool.TypeObject,
			Properties: map[string]*tool.Schema{
				"path":        {Type: tool.TypeString, Description: "Absolute path to the file"},
				"insert_line": {Type: tool.TypeInteger, Description: "1-based line to insert after, 0 for the top of the file"},
				"new_str":     {Type: tool.TypeString, Description: "Text to insert"},
			},
			Required: []string{"path", "insert_line", "new_str"},
		},
	}
}

func (t *InsertTool) Input() any {
	return &InsertRequest{}
}

func (t *InsertTool) Execute(ctx context.Context, input any) (tool.Result, error) {
	r, ok := input.(*InsertRequest)
	if !ok {
		return nil, fmt.Errorf("invalid request type: %T", input)
	}
	if err := r.Validate(); err != nil {
		return &InsertResponse{Err: err.Error()}, nil
	}

	path, err := vfs.Normalize(r.Path)
	if err != nil {
		return &InsertResponse{Err: err.Error()}, nil
	}

	oldContent, err := t.fs.ReadFile(path)
	if err != nil {
		return &InsertResponse{Err: err.Error()}, nil
	}

	lines := splitFileLines(oldContent)
	if r.InsertLine > len(lines) {
		return &InsertResponse{
			Err: fmt.Sprintf("insert_line %d is past the end of %s (%d lines)", r.InsertLine, path, len(lines)),
		}, nil
	}

	inserted := splitFileLines(r.NewStr)
	merged := make([]string, 0, len(lines)+len(inserted))
	merged = append(merged, lines[:r.InsertLine]...)
	merged = append(merged, inserted...)
	merged = append(merged, lines[r.InsertLine:]...)

	newContent := strings.Join(merged, "\n")
	if strings.HasSuffix(oldContent, "\n") || oldContent == "" {
		newContent += "\n"
	}
	if int64(len(newContent)) > t.config.Tools.MaxFileSize {
		return &InsertResponse{Err: ErrContentTooLarge.Error()}, nil
	}

	if err := t.fs.UpdateFile(path, newContent); err != nil {
		return &InsertResponse{Err: err.Error()}, nil
	}

	diff, added, removed := unifiedDiff(path, oldContent, newContent)
	return &InsertResponse{
		Path:         path,
		Diff:         diff,
		AddedLines:   added,
		RemovedLines: removed,
	}, nil
}

// splitFileLines splits content into logical lines without a phantom entry
// for the trailing newline.
func splitFileLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (r *InsertResponse) LLMContent() string {
	if r.Err != "" {
		return "Error: " + r.Err
	}
	return fmt.Sprintf("Inserted into %s\n\n%s", r.Path, r.Diff)
}

func (r *InsertResponse) Display() tool.ToolDisplay {
	if r.Err != "" {
		return tool.StringDisplay("Error: " + r.Err)
	}
	return tool.DiffDisplay{
		Diff:         r.Diff,
		AddedLines:   r.AddedLines,
		RemovedLines: r.RemovedLines,
	}
}
