package toolmanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhart/genui/internal/provider"
	"github.com/quillhart/genui/internal/tool"
	"github.com/quillhart/genui/internal/workflow"
)

type mockResult struct {
	llmContent string
	display    tool.ToolDisplay
}

func (m *mockResult) LLMContent() string        { return m.llmContent }
func (m *mockResult) Display() tool.ToolDisplay { return m.display }

type mockInput struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

func (m *mockInput) String() string { return "mock " + m.Value }

type mockTool struct {
	name        string
	declaration tool.Declaration
	executeFunc func(ctx context.Context, input any) (tool.Result, error)
}

func (m *mockTool) Name() string                  { return m.name }
func (m *mockTool) Declaration() tool.Declaration { return m.declaration }
func (m *mockTool) Input() any                    { return &mockInput{} }
func (m *mockTool) Execute(ctx context.Context, input any) (tool.Result, error) {
	if m.executeFunc != nil {
		return m.executeFunc(ctx, input)
	}
	return &mockResult{llmContent: "ok", display: tool.StringDisplay("ok")}, nil
}

func TestRegister_AddsTool(t *testing.T) {
	tm := NewToolManager()
	mt := &mockTool{name: "test-tool", declaration: tool.Declaration{Name: "test-tool"}}
	tm.Register(mt)

	decls := tm.Declarations()
	assert.Len(t, decls, 1)
	assert.Equal(t, "test-tool", decls[0].Name)
}

func TestRegister_DuplicateName(t *testing.T) {
	tm := NewToolManager()
	mt1 := &mockTool{name: "test-tool", declaration: tool.Declaration{Name: "test-tool", Description: "v1"}}
	mt2 := &mockTool{name: "test-tool", declaration: tool.Declaration{Name: "test-tool", Description: "v2"}}

	tm.Register(mt1)
	tm.Register(mt2)

	decls := tm.Declarations()
	assert.Len(t, decls, 1)
	assert.Equal(t, "v2", decls[0].Description)
}

func TestDeclarations_SortedByName(t *testing.T) {
	tm := NewToolManager()
	tm.Register(&mockTool{name: "z", declaration: tool.Declaration{Name: "z"}})
	tm.Register(&mockTool{name: "a", declaration: tool.Declaration{Name: "a"}})
	tm.Register(&mockTool{name: "m", declaration: tool.Declaration{Name: "m"}})

	decls := tm.Declarations()
	assert.Len(t, decls, 3)
	assert.Equal(t, "a", decls[0].Name)
	assert.Equal(t, "m", decls[1].Name)
	assert.Equal(t, "z", decls[2].Name)
}

func TestExecute_UnknownTool_ReturnsMessageToLLM(t *testing.T) {
	tm := NewToolManager()

	res, err := tm.Execute(context.Background(), provider.ToolCall{
		ID:   "tc-123",
		Name: "unknown",
	}, nil)

	assert.NoError(t, err)
	assert.Equal(t, provider.RoleTool, res.Role)
	assert.Equal(t, "tc-123", res.ToolCallID)
	assert.Contains(t, res.Content, "Error: tool \"unknown\" does not exist")
}

func TestExecute_DecodesArgsIntoTypedRequest(t *testing.T) {
	tm := NewToolManager()
	var capturedInput *mockInput
	tm.Register(&mockTool{
		name: "test",
		executeFunc: func(ctx context.Context, input any) (tool.Result, error) {
			capturedInput = input.(*mockInput)
			return &mockResult{llmContent: "ok", display: tool.StringDisplay("ok")}, nil
		},
	})

	res, err := tm.Execute(context.Background(), provider.ToolCall{
		ID:   "tc-456",
		Name: "test",
		// JSON numbers arrive as float64; the decoder converts them.
		Args: map[string]any{"value": "hello", "count": float64(3)},
	}, nil)

	require.NoError(t, err)
	require.NotNil(t, capturedInput)
	assert.Equal(t, "hello", capturedInput.Value)
	assert.Equal(t, 3, capturedInput.Count)
	assert.Equal(t, "tc-456", res.ToolCallID)
	assert.Equal(t, "ok", res.Content)
}

func TestExecute_InvalidArgs_ReportsSchema(t *testing.T) {
	tm := NewToolManager()
	tm.Register(&mockTool{
		name:        "test",
		declaration: tool.Declaration{Name: "test", Description: "a test tool"},
	})

	res, err := tm.Execute(context.Background(), provider.ToolCall{
		Name: "test",
		Args: map[string]any{"value": map[string]any{"nested": true}},
	}, nil)

	assert.NoError(t, err)
	assert.Contains(t, res.Content, "invalid arguments")
	assert.Contains(t, res.Content, "Expected schema")
}

func TestExecute_EmitsStartAndEndEvents(t *testing.T) {
	tm := NewToolManager()
	tm.Register(&mockTool{name: "test"})
	events := make(chan workflow.Event, 10)

	_, err := tm.Execute(context.Background(), provider.ToolCall{
		Name: "test",
		Args: map[string]any{"value": "x"},
	}, events)
	require.NoError(t, err)
	close(events)

	var got []workflow.Event
	for e := range events {
		got = append(got, e)
	}
	require.Len(t, got, 2)
	start, ok := got[0].(workflow.ToolStartEvent)
	require.True(t, ok)
	assert.Equal(t, "test", start.ToolName)
	assert.Equal(t, "mock x", start.RequestDisplay)
	end, ok := got[1].(workflow.ToolEndEvent)
	require.True(t, ok)
	assert.Equal(t, tool.StringDisplay("ok"), end.Display)
}

func TestExecute_ToolError_Propagates(t *testing.T) {
	tm := NewToolManager()
	tm.Register(&mockTool{
		name: "test",
		executeFunc: func(ctx context.Context, input any) (tool.Result, error) {
			return nil, context.Canceled
		},
	})

	_, err := tm.Execute(context.Background(), provider.ToolCall{Name: "test"}, nil)

	assert.ErrorIs(t, err, context.Canceled)
}
