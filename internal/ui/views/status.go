package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quillhart/genui/internal/ui/models"
)

// RenderStatus renders the status bar
func RenderStatus(s models.State) string {
	var icon string
	var style lipgloss.Style

	switch s.StatusPhase {
	case "executing":
		icon = s.Spinner.View()
		style = StatusExecutingStyle
	case "done":
		icon = "✔"
		style = StatusDoneStyle
	case "thinking":
		icon = s.Spinner.View()
		style = StatusThinkingStyle
		// Animate the dots
		dots := strings.Repeat(".", s.DotCount)
		return joinStatus(style.Render(fmt.Sprintf("%s Generating%s", icon, dots)), renderPreviewInfo(s))
	default:
		style = StatusDefaultStyle
	}

	status := "Ready"
	if s.StatusMessage != "" {
		status = fmt.Sprintf("%s %s", icon, s.StatusMessage)
	} else if s.StatusPhase != "ready" && s.StatusPhase != "" {
		// If executing but no message, show icon
		status = icon
	}

	return joinStatus(style.Render(status), renderPreviewInfo(s))
}

// renderPreviewInfo shows where the preview lives and how its last build
// went.
func renderPreviewInfo(s models.State) string {
	if s.PreviewPath == "" {
		return ""
	}
	info := s.PreviewPath
	if s.PreviewRevision > 0 {
		info = fmt.Sprintf("%s (rev %d)", s.PreviewPath, s.PreviewRevision)
	}
	rendered := StatusPreviewStyle.Render(info)
	if s.PreviewErrors > 0 {
		rendered += "  " + PreviewErrorStyle.Render(fmt.Sprintf("%d build error(s)", s.PreviewErrors))
	}
	if s.ContextTokens > 0 {
		rendered += "  " + StatusPreviewStyle.Render(fmt.Sprintf("%d tokens", s.ContextTokens))
	}
	return rendered
}

func joinStatus(left, right string) string {
	if right == "" {
		return left
	}
	return fmt.Sprintf("%s  %s", left, right)
}
