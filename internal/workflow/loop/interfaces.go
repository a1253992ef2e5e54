package loop

import (
	"context"

	"github.com/quillhart/genui/internal/preview"
	"github.com/quillhart/genui/internal/provider"
	"github.com/quillhart/genui/internal/tool"
	"github.com/quillhart/genui/internal/workflow"
)

// llmProvider communicates with an LLM.
type llmProvider interface {
	// Generate sends messages to the LLM and returns its response.
	Generate(ctx context.Context, messages []provider.Message, tools []tool.Declaration) (*provider.Message, error)
}

// toolManager manages tool storage and execution.
type toolManager interface {
	// Declarations returns all tool schemas for the LLM.
	Declarations() []tool.Declaration

	// Execute runs a tool call and returns the result as a provider.Message.
	// It emits ToolStartEvent and ToolEndEvent to the events channel.
	Execute(ctx context.Context, tc provider.ToolCall, events chan<- workflow.Event) (provider.Message, error)
}

// tokenCounter is implemented by providers that can report how many
// tokens the conversation occupies.
type tokenCounter interface {
	CountTokens(ctx context.Context, messages []provider.Message) (int, error)
}

// previewRefresher rebuilds the preview document after workspace
// mutations; Refresh is cheap when nothing changed.
type previewRefresher interface {
	Refresh() (preview.Status, error)
}
