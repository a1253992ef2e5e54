package toolmanager

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mitchellh/mapstructure"

	"github.com/quillhart/genui/internal/provider"
	"github.com/quillhart/genui/internal/tool"
	"github.com/quillhart/genui/internal/workflow"
)

type ToolManager struct {
	registry map[string]tool.Tool
}

func NewToolManager(tools ...tool.Tool) *ToolManager {
	tm := &ToolManager{
		registry: make(map[string]tool.Tool),
	}
	for _, t := range tools {
		tm.Register(t)
	}
	return tm
}

func (m *ToolManager) Register(t tool.Tool) {
	m.registry[t.Name()] = t
}

func (m *ToolManager) Declarations() []tool.Declaration {
	decls := make([]tool.Declaration, 0, len(m.registry))
	for _, t := range m.registry {
		decls = append(decls, t.Declaration())
	}
	sort.Slice(decls, func(i, j int) bool {
		return decls[i].Name < decls[j].Name
	})
	return decls
}

// Execute runs one tool call and returns the tool result message for the
// conversation. Unknown tools and undecodable arguments are reported back
// to the LLM as error content rather than failing the loop.
func (m *ToolManager) Execute(ctx context.Context, tc provider.ToolCall, events chan<- workflow.Event) (provider.Message, error) {
	t, ok := m.registry[tc.Name]
	if !ok {
		decls := m.Declarations()
		declsJSON, _ := json.MarshalIndent(decls, "", "  ")
		errMsg := fmt.Sprintf("Error: tool %q does not exist.\n\nAvailable tools:\n%s", tc.Name, declsJSON)
		emitInvalid(events, tc.Name)
		return toolMessage(tc, errMsg), nil
	}

	req := t.Input()
	if err := decodeArgs(tc.Args, req); err != nil {
		declJSON, _ := json.MarshalIndent(t.Declaration(), "", "  ")
		errMsg := fmt.Sprintf("Error: invalid arguments for tool %q: %v\n\nExpected schema:\n%s", tc.Name, err, declJSON)
		emitInvalid(events, tc.Name)
		return toolMessage(tc, errMsg), nil
	}

	if events != nil {
		display := ""
		if s, ok := req.(fmt.Stringer); ok {
			display = s.String()
		}
		events <- workflow.ToolStartEvent{
			ToolName:       tc.Name,
			RequestDisplay: display,
		}
	}

	res, err := t.Execute(ctx, req)
	if err != nil {
		// Per contract, tools only return errors for infrastructure issues
		// (context cancellation).
		if events != nil {
			events <- workflow.ToolEndEvent{
				ToolName: tc.Name,
				Display:  tool.StringDisplay("Cancelled"),
			}
		}
		return provider.Message{}, err
	}

	if events != nil {
		events <- workflow.ToolEndEvent{
			ToolName: tc.Name,
			Display:  res.Display(),
		}
	}

	if err := ctx.Err(); err != nil {
		return provider.Message{}, err
	}

	return toolMessage(tc, res.LLMContent()), nil
}

// decodeArgs decodes the model's JSON arguments into the tool's typed
// request struct, honoring json tags and tolerating JSON numbers for
// integer fields.
func decodeArgs(args map[string]any, req any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           req,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(args)
}

func toolMessage(tc provider.ToolCall, content string) provider.Message {
	return provider.Message{
		Role:       provider.RoleTool,
		ToolName:   tc.Name,
		ToolCallID: tc.ID,
		Content:    content,
	}
}

func emitInvalid(events chan<- workflow.Event, name string) {
	if events == nil {
		return
	}
	events <- workflow.ToolStartEvent{ToolName: name}
	events <- workflow.ToolEndEvent{
		ToolName: name,
		Display:  tool.StringDisplay("Invalid tool request"),
	}
}
