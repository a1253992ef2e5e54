package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/quillhart/genui/internal/provider"
	"github.com/quillhart/genui/internal/workflow"
)

const (
	// maxGenerateAttempts bounds retries of one generate call on
	// retryable provider errors (rate limits, transient outages).
	maxGenerateAttempts = 3
	baseRetryDelay      = 500 * time.Millisecond
)

// Loop runs the conversation: each user turn is sent to the provider,
// requested tool calls are executed against the workspace, and the
// preview is refreshed after every batch of mutations. History persists
// across turns so follow-up requests see earlier context.
type Loop struct {
	provider      llmProvider
	tools         toolManager
	preview       previewRefresher
	events        chan<- workflow.Event
	maxIterations int

	messages []provider.Message
}

func NewLoop(provider llmProvider, tools toolManager, preview previewRefresher, events chan<- workflow.Event, maxIterations int) *Loop {
	if provider == nil {
		panic("provider is required")
	}
	if tools == nil {
		panic("tools is required")
	}
	return &Loop{
		provider:      provider,
		tools:         tools,
		preview:       preview,
		events:        events,
		maxIterations: maxIterations,
	}
}

// Run processes one user message to completion: the model responds,
// tool calls execute, and the cycle repeats until the model produces a
// turn with no tool calls or the iteration cap is hit.
func (l *Loop) Run(ctx context.Context, userMessage string) error {
	l.messages = append(l.messages, provider.Message{
		Role:    provider.RoleUser,
		Content: userMessage,
	})

	defer func() {
		if l.events != nil {
			l.events <- workflow.DoneEvent{}
		}
	}()

	for i := 0; i < l.maxIterations; i++ {
		if err := ctx.Err(); err != nil {
			l.messages = append(l.messages, provider.Message{
				Role:    provider.RoleUser,
				Content: "[Session cancelled by user]",
			})
			return err
		}

		if l.events != nil {
			l.events <- workflow.ThinkingEvent{}
		}

		resp, err := l.generate(ctx)
		if err != nil {
			return fmt.Errorf("provider.Generate: %w", err)
		}

		l.messages = append(l.messages, *resp)

		if resp.Content != "" && l.events != nil {
			l.events <- workflow.TextEvent{Text: resp.Content}
		}

		if len(resp.ToolCalls) == 0 {
			l.emitTokenCount(ctx)
			return nil
		}

		for _, tc := range resp.ToolCalls {
			toolResp, err := l.tools.Execute(ctx, tc, l.events)
			if err != nil {
				return fmt.Errorf("tools.Execute (%s): %w", tc.Name, err)
			}
			l.messages = append(l.messages, toolResp)
		}

		if err := l.refreshPreview(); err != nil {
			return err
		}
	}

	l.messages = append(l.messages, provider.Message{
		Role:    provider.RoleUser,
		Content: "[Max iterations reached]",
	})
	return fmt.Errorf("max iterations (%d) reached", l.maxIterations)
}

// generate calls the provider, retrying on retryable errors with the
// server-suggested delay when one is given.
func (l *Loop) generate(ctx context.Context) (*provider.Message, error) {
	var lastErr error
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		if attempt > 0 {
			delay := baseRetryDelay * time.Duration(attempt)
			if d := provider.RetryAfter(lastErr); d != nil {
				delay = *d
			}
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		resp, err := l.provider.Generate(ctx, l.messages, l.tools.Declarations())
		if err == nil {
			return resp, nil
		}
		if !provider.IsRetryable(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

// emitTokenCount reports the context size when the provider supports
// counting. Best effort: a counting failure never fails the turn.
func (l *Loop) emitTokenCount(ctx context.Context) {
	counter, ok := l.provider.(tokenCounter)
	if !ok || l.events == nil {
		return
	}
	count, err := counter.CountTokens(ctx, l.messages)
	if err != nil {
		return
	}
	l.events <- workflow.TokenCountEvent{Tokens: count}
}

// Messages returns the conversation so far.
func (l *Loop) Messages() []provider.Message {
	return l.messages
}

func (l *Loop) refreshPreview() error {
	if l.preview == nil {
		return nil
	}
	status, err := l.preview.Refresh()
	if err != nil {
		return fmt.Errorf("preview.Refresh: %w", err)
	}
	if !status.Skipped && l.events != nil {
		l.events <- workflow.PreviewEvent{
			Revision:   status.Revision,
			Entry:      status.Entry,
			ErrorCount: status.ErrorCount,
		}
	}
	return nil
}
