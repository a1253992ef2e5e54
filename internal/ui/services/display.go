package services

import (
	"fmt"
	"strings"

	"github.com/quillhart/genui/internal/tool"
)

// FormatToolDisplay converts a tool's display payload into transcript text.
func FormatToolDisplay(display tool.ToolDisplay) string {
	switch d := display.(type) {
	case tool.StringDisplay:
		return string(d)
	case tool.DiffDisplay:
		return formatDiff(d)
	default:
		return ""
	}
}

func formatDiff(d tool.DiffDisplay) string {
	var b strings.Builder
	fmt.Fprintf(&b, "+%d -%d", d.AddedLines, d.RemovedLines)
	if d.Diff != "" {
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(d.Diff, "\n"))
	}
	return b.String()
}
