// Package provider defines the model-facing conversation types shared by
// the workflow loop and the concrete LLM backends.
package provider

// Role identifies who produced a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
	RoleTool  Role = "tool"
)

// ToolCall is a function invocation requested by the model.
type ToolCall struct {
	// ID correlates the call with its result message. Backends that do
	// not issue IDs leave it empty.
	ID string

	// Name is the declared tool name.
	Name string

	// Args holds the decoded JSON arguments.
	Args map[string]any
}

// Message is one turn in the conversation.
type Message struct {
	Role    Role
	Content string

	// ToolCalls is set on model messages that request tool execution.
	ToolCalls []ToolCall

	// ToolName and ToolCallID are set on tool result messages.
	ToolName   string
	ToolCallID string
}
