package views

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/quillhart/genui/internal/ui/models"
)

// RenderRoot renders the complete UI layout
func RenderRoot(s models.State) string {
	sections := []string{
		RenderChat(s),
		RenderInput(s),
		RenderStatus(s),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
