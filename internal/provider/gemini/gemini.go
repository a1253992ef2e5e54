// Package gemini implements the Gemini backend for the workflow loop.
package gemini

import (
	"context"

	"github.com/quillhart/genui/internal/provider"
	"github.com/quillhart/genui/internal/tool"
	"google.golang.org/genai"
)

// Provider generates model turns through the Gemini API.
type Provider struct {
	client       Client
	systemPrompt string
	modelName    string
}

// New creates a Provider with the given client and model.
func New(client Client, modelName, systemPrompt string) *Provider {
	if client == nil {
		panic("client is required")
	}
	return &Provider{
		client:       client,
		modelName:    modelName,
		systemPrompt: systemPrompt,
	}
}

// Generate sends the conversation and tool declarations to the Gemini API
// and returns the model's next message.
func (p *Provider) Generate(ctx context.Context, messages []provider.Message, decls []tool.Declaration) (*provider.Message, error) {
	contents := toGeminiContents(messages)
	config := &genai.GenerateContentConfig{
		SafetySettings: defaultSafetySettings(),
	}
	if p.systemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(p.systemPrompt)},
		}
	}
	if len(decls) > 0 {
		config.Tools = toGeminiTools(decls)
	}

	resp, err := p.client.GenerateContent(ctx, p.modelName, contents, config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	return fromGeminiResponse(resp)
}

// CountTokens returns the number of tokens in the provided messages.
func (p *Provider) CountTokens(ctx context.Context, messages []provider.Message) (int, error) {
	resp, err := p.client.CountTokens(ctx, p.modelName, toGeminiContents(messages))
	if err != nil {
		return 0, mapGeminiError(err)
	}
	return int(resp.TotalTokens), nil
}
