package editor

import (
	"context"
	"fmt"
	"strings"

	"github.com/quillhart/genui/internal/tool"
	"github.com/quillhart/genui/internal/vfs"
)

// ViewTool shows a file's numbered contents or a directory's entries.
type ViewTool struct {
	fs *vfs.FS
}

func NewViewTool(fs *vfs.FS) *ViewTool {
	if fs == nil {
		panic("fs is required")
	}
	return &ViewTool{fs: fs}
}

func (t *ViewTool) Name() string {
	return "view"
}

func (t *ViewTool) Declaration() tool.Declaration {
	return tool.Declaration{
		Name:        "view",
		Description: "View a file's contents with line numbers, or list a directory's entries.",
		Parameters: &tool.Schema{
			Type: tool.TypeObject,
			Properties: map[string]*tool.Schema{
				"path": {Type: tool.TypeString, Description: "Absolute path to a file or directory"},
				"view_range": {
					Type:        tool.TypeArray,
					Description: "Optional [start, end] 1-based inclusive line range; end -1 means end of file",
					Items:       &tool.Schema{Type: tool.TypeInteger},
				},
			},
			Required: []string{"path"},
		},
	}
}

func (t *ViewTool) Input() any {
	return &ViewRequest{}
}

func (t *ViewTool) Execute(ctx context.Context, input any) (tool.Result, error) {
	r, ok := input.(*ViewRequest)
	if !ok {
		return nil, fmt.Errorf("invalid request type: %T", input)
	}
	if err := r.Validate(); err != nil {
		return &ViewResponse{Err: err.Error()}, nil
	}

	path, err := vfs.Normalize(r.Path)
	if err != nil {
		return &ViewResponse{Err: err.Error()}, nil
	}

	node, ok := t.fs.Lookup(path)
	if !ok {
		return &ViewResponse{Err: fmt.Sprintf("path not found: %s", path)}, nil
	}

	switch node.(type) {
	case *vfs.DirectoryNode:
		listing, err := t.listDirectory(path)
		if err != nil {
			return &ViewResponse{Err: err.Error()}, nil
		}
		return &ViewResponse{Path: path, Listing: listing}, nil
	default:
		content, err := t.fs.ReadFile(path)
		if err != nil {
			return &ViewResponse{Err: err.Error()}, nil
		}
		listing, verr := numberLines(path, content, r.ViewRange)
		if verr != "" {
			return &ViewResponse{Err: verr}, nil
		}
		return &ViewResponse{Path: path, Listing: listing}, nil
	}
}

func (t *ViewTool) listDirectory(path string) (string, error) {
	entries, err := t.fs.ReadDir(path)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "(empty directory)", nil
	}
	var b strings.Builder
	for i, child := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		switch child.(type) {
		case *vfs.DirectoryNode:
			b.WriteString("[DIR]  " + vfs.Base(child.NodePath()))
		default:
			b.WriteString("[FILE] " + vfs.Base(child.NodePath()))
		}
	}
	return b.String(), nil
}

// numberLines renders content in `cat -n` style, optionally windowed to a
// 1-based inclusive range. Returns a non-empty error string when the range
// falls outside the file.
func numberLines(path, content string, viewRange []int) (string, string) {
	lines := strings.Split(content, "\n")
	// A trailing newline produces one phantom empty line; drop it.
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	start, end := 1, len(lines)
	if viewRange != nil {
		start = viewRange[0]
		if viewRange[1] != -1 {
			end = viewRange[1]
		}
		if start > len(lines) {
			return "", fmt.Sprintf("view_range start %d is past the end of %s (%d lines)", start, path, len(lines))
		}
		if end > len(lines) {
			end = len(lines)
		}
	}

	var b strings.Builder
	for i := start; i <= end; i++ {
		fmt.Fprintf(&b, "%6d\t%s", i, lines[i-1])
		if i < end {
			b.WriteString("\n")
		}
	}
	return b.String(), ""
}

func (r *ViewResponse) LLMContent() string {
	if r.Err != "" {
		return "Error: " + r.Err
	}
	return r.Listing
}

func (r *ViewResponse) Display() tool.ToolDisplay {
	if r.Err != "" {
		return tool.StringDisplay("Error: " + r.Err)
	}
	return tool.StringDisplay("Viewed " + r.Path)
}
