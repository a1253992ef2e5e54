package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/quillhart/genui/internal/provider"
	"github.com/quillhart/genui/internal/tool"
)

// mockClient records calls and returns canned responses.
type mockClient struct {
	lastModel    string
	lastContents []*genai.Content
	lastConfig   *genai.GenerateContentConfig

	generateResp *genai.GenerateContentResponse
	generateErr  error
	countResp    *genai.CountTokensResponse
}

func (m *mockClient) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.lastModel = model
	m.lastContents = contents
	m.lastConfig = config
	return m.generateResp, m.generateErr
}

func (m *mockClient) CountTokens(ctx context.Context, model string, contents []*genai.Content) (*genai.CountTokensResponse, error) {
	m.lastModel = model
	m.lastContents = contents
	return m.countResp, nil
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Role:  "model",
					Parts: []*genai.Part{{Text: text}},
				},
			},
		},
	}
}

func TestGeneratePassesModelToolsAndSystemPrompt(t *testing.T) {
	client := &mockClient{generateResp: textResponse("ok")}
	p := New(client, "gemini-2.0-flash", "You build UI components.")
	decls := []tool.Declaration{{Name: "view", Description: "View a file"}}

	msg, err := p.Generate(context.Background(), []provider.Message{
		{Role: provider.RoleUser, Content: "hi"},
	}, decls)

	require.NoError(t, err)
	assert.Equal(t, "ok", msg.Content)
	assert.Equal(t, "gemini-2.0-flash", client.lastModel)
	require.NotNil(t, client.lastConfig.SystemInstruction)
	assert.Equal(t, "You build UI components.", client.lastConfig.SystemInstruction.Parts[0].Text)
	require.Len(t, client.lastConfig.Tools, 1)
	assert.Equal(t, "view", client.lastConfig.Tools[0].FunctionDeclarations[0].Name)
	assert.NotEmpty(t, client.lastConfig.SafetySettings)
}

func TestGenerateMapsClientError(t *testing.T) {
	client := &mockClient{generateErr: &genai.APIError{Code: 429, Message: "slow down"}}
	p := New(client, "gemini-2.0-flash", "")

	_, err := p.Generate(context.Background(), nil, nil)

	require.Error(t, err)
	assert.True(t, provider.IsRetryable(err))
}

func TestCountTokens(t *testing.T) {
	client := &mockClient{countResp: &genai.CountTokensResponse{TotalTokens: 123}}
	p := New(client, "gemini-2.0-flash", "")

	n, err := p.CountTokens(context.Background(), []provider.Message{
		{Role: provider.RoleUser, Content: "hello"},
	})

	require.NoError(t, err)
	assert.Equal(t, 123, n)
}
