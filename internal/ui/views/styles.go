package views

import "github.com/charmbracelet/lipgloss"

var (
	UserMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("51")).
				Bold(true)

	AssistantMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	ToolMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				PaddingLeft(2)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	StatusThinkingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))

	StatusExecutingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))

	StatusDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	StatusDefaultStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	StatusPreviewStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	PreviewErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))
)
