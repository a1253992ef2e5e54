package views

import (
	"strings"

	"github.com/quillhart/genui/internal/ui/models"
	"github.com/quillhart/genui/internal/ui/services"
)

// RenderChat renders the message history
func RenderChat(s models.State) string {
	if len(s.Messages) == 0 {
		return "No messages yet. Describe the interface you want to build."
	}
	return s.Viewport.View()
}

// FormatChatContent formats the messages for the viewport
func FormatChatContent(messages []models.Message, renderer services.MarkdownRenderer) string {
	var lines []string
	for _, msg := range messages {
		switch msg.Role {
		case models.RoleUser:
			lines = append(lines, UserMessageStyle.Render("You: "+msg.Content))
		case models.RoleTool:
			lines = append(lines, ToolMessageStyle.Render(msg.Content))
		case models.RoleError:
			lines = append(lines, ErrorMessageStyle.Render("Error: "+msg.Content))
		default:
			rendered := services.RenderMarkdown(msg.Content, renderer)
			lines = append(lines, AssistantMessageStyle.Render(strings.TrimRight(rendered, "\n")))
		}
		lines = append(lines, "") // Add spacing
	}
	return strings.Join(lines, "\n")
}
