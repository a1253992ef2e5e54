// Package models holds the view state shared by the UI layers.
package models

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// Message is one entry in the chat transcript.
type Message struct {
	Role    string // "user", "assistant", "tool" or "error"
	Content string
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
	RoleError     = "error"
)

// State is the complete UI state rendered by the views.
type State struct {
	Width  int
	Height int

	Input    textinput.Model
	Viewport viewport.Model
	Spinner  spinner.Model

	Messages []Message

	// Busy is true while the agent is working on a prompt.
	Busy          bool
	StatusPhase   string
	StatusMessage string
	DotCount      int

	// Last preview refresh outcome.
	PreviewPath     string
	PreviewRevision uint64
	PreviewErrors   int

	// ContextTokens is the conversation size after the last turn.
	ContextTokens int
}
