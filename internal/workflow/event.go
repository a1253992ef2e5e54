// Package workflow drives the generate/tool-call loop and publishes the
// events the UI renders.
package workflow

import "github.com/quillhart/genui/internal/tool"

// Event is the interface for all workflow events.
// UI handles events via type switch.
type Event interface {
	isEvent()
}

// TextEvent is emitted when the LLM produces text output.
type TextEvent struct {
	Text string
}

func (TextEvent) isEvent() {}

// ThinkingEvent is emitted when the LLM is processing.
type ThinkingEvent struct{}

func (ThinkingEvent) isEvent() {}

// DoneEvent is emitted when the workflow loop completes.
type DoneEvent struct{}

func (DoneEvent) isEvent() {}

// ToolStartEvent is emitted when a tool execution begins.
type ToolStartEvent struct {
	ToolName       string
	RequestDisplay string // e.g., "Editing /App.jsx"
}

func (ToolStartEvent) isEvent() {}

// ToolEndEvent is emitted when a tool completes.
type ToolEndEvent struct {
	ToolName string
	Display  tool.ToolDisplay
}

func (ToolEndEvent) isEvent() {}

// TokenCountEvent is emitted at the end of a turn with the size of the
// conversation context.
type TokenCountEvent struct {
	Tokens int
}

func (TokenCountEvent) isEvent() {}

// PreviewEvent is emitted after the preview document is rebuilt.
type PreviewEvent struct {
	Revision   uint64
	Entry      string
	ErrorCount int
}

func (PreviewEvent) isEvent() {}
