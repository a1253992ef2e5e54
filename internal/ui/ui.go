// Package ui is the Bubble Tea chat front end. It consumes agent events,
// renders the transcript, and hands user prompts back to the agent loop.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillhart/genui/internal/ui/services"
	"github.com/quillhart/genui/internal/workflow"
)

// Channels carries traffic between the agent loop and the UI.
type Channels struct {
	// Events flow from the agent loop into the UI.
	Events chan workflow.Event
	// Errors carries a failed turn's error into the transcript.
	Errors chan error
	// Prompts flow from the UI to the agent loop.
	Prompts chan string
}

// NewChannels creates the channel set with default buffers.
func NewChannels() *Channels {
	return &Channels{
		Events:  make(chan workflow.Event, 32),
		Errors:  make(chan error, 1),
		Prompts: make(chan string),
	}
}

// UI runs the Bubble Tea program.
type UI struct {
	program *tea.Program
}

// Options configure the UI.
type Options struct {
	// PreviewPath is shown in the status bar so the user knows which file
	// to open in a browser.
	PreviewPath string
	Renderer    services.MarkdownRenderer
}

// NewUI creates the Bubble Tea UI over the given channels.
func NewUI(channels *Channels, opts Options) *UI {
	if channels == nil {
		panic("channels is required")
	}
	model := newChatModel(channels, opts)
	return &UI{program: tea.NewProgram(model, tea.WithAltScreen())}
}

// Start runs the UI until the user quits.
func (u *UI) Start() error {
	_, err := u.program.Run()
	return err
}

// Quit stops the program from outside the event loop.
func (u *UI) Quit() {
	u.program.Quit()
}
