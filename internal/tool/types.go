// Package tool defines the shared vocabulary between tools, the tool
// manager, and the UI: JSON-schema declarations sent to the LLM, the
// display union rendered in the chat transcript, and the interfaces every
// tool implements.
package tool

import "context"

// Type represents JSON Schema types.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
)

// Schema represents a JSON Schema for tool parameters.
type Schema struct {
	Type        Type               `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
}

// Declaration declares a tool's function signature for the LLM.
type Declaration struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Parameters  *Schema `json:"parameters,omitempty"`
}

// Result is returned by tools after execution.
type Result interface {
	// LLMContent returns the string content sent back to the LLM.
	LLMContent() string

	// Display returns the display type for UI rendering.
	Display() ToolDisplay
}

// Tool is implemented by every tool exposed to the LLM. Input structs
// should implement fmt.Stringer for the request display shown in the
// transcript.
type Tool interface {
	// Name returns the tool's identifier.
	Name() string

	// Declaration returns the tool's schema for the LLM.
	Declaration() Declaration

	// Input returns a pointer to a fresh input struct for argument
	// decoding, e.g. &ViewRequest{}.
	Input() any

	// Execute runs the tool with the decoded input.
	Execute(ctx context.Context, input any) (Result, error)
}

// ToolDisplay is implemented by all display types returned from tools.
// The UI uses type switches to render each type appropriately.
type ToolDisplay interface {
	isToolDisplay()
}

// StringDisplay is for simple text output (most tools).
type StringDisplay string

func (StringDisplay) isToolDisplay() {}

// DiffDisplay is for file edit operations with unified diff content.
type DiffDisplay struct {
	Diff         string // Unified diff content
	AddedLines   int
	RemovedLines int
}

func (DiffDisplay) isToolDisplay() {}
