// Package main wires the chat UI, the Gemini-backed agent loop, the
// in-memory workspace, and the browser preview pipeline together.
package main

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"

	"github.com/quillhart/genui/internal/buildmap"
	"github.com/quillhart/genui/internal/config"
	"github.com/quillhart/genui/internal/preview"
	"github.com/quillhart/genui/internal/provider/gemini"
	"github.com/quillhart/genui/internal/store"
	"github.com/quillhart/genui/internal/tool/editor"
	"github.com/quillhart/genui/internal/tool/filemanager"
	"github.com/quillhart/genui/internal/ui"
	uiservices "github.com/quillhart/genui/internal/ui/services"
	"github.com/quillhart/genui/internal/vfs"
	"github.com/quillhart/genui/internal/workflow/loop"
	"github.com/quillhart/genui/internal/workflow/toolmanager"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load configuration (from defaults + ~/.config/genui/config.json)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}

	prov, err := createProvider(ctx, cfg)
	if err != nil {
		return err
	}

	st := store.NewStore(cfg)
	fs, err := st.LoadSession()
	if err != nil {
		return err
	}

	assembler := preview.NewWithOptions(preview.Options{Title: cfg.Preview.Title})
	previewService := preview.NewService(fs, buildmap.New(), assembler, st)

	tools := toolmanager.NewToolManager(
		editor.NewViewTool(fs),
		editor.NewCreateTool(fs, cfg),
		editor.NewStrReplaceTool(fs, cfg),
		editor.NewInsertTool(fs, cfg),
		filemanager.NewRenameTool(fs),
		filemanager.NewDeleteTool(fs),
	)

	// Render the preview once up front so the restored (or starter)
	// workspace is visible before the first prompt.
	if _, err := previewService.Refresh(); err != nil {
		return fmt.Errorf("failed to render initial preview: %w", err)
	}

	channels := ui.NewChannels()
	agent := loop.NewLoop(prov, tools, previewService, channels.Events, cfg.Workflow.MaxIterations)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go runAgent(runCtx, agent, st, fs, channels)

	userInterface := ui.NewUI(channels, ui.Options{
		PreviewPath: st.PreviewPath(),
		Renderer:    uiservices.NewGlamourRenderer(100),
	})
	if err := userInterface.Start(); err != nil {
		return fmt.Errorf("UI exited with error: %w", err)
	}

	// Persist whatever state the session reached before quitting.
	return st.SaveSession(fs)
}

// runAgent feeds UI prompts into the agent loop and saves the workspace
// after every completed turn.
func runAgent(ctx context.Context, agent *loop.Loop, st *store.Store, fs *vfs.FS, channels *ui.Channels) {
	for {
		select {
		case <-ctx.Done():
			return
		case prompt := <-channels.Prompts:
			if err := agent.Run(ctx, prompt); err != nil {
				select {
				case channels.Errors <- err:
				default:
				}
			}
			if err := st.SaveSession(fs); err != nil {
				select {
				case channels.Errors <- err:
				default:
				}
			}
		}
	}
}

func createProvider(ctx context.Context, cfg *config.Config) (*gemini.Provider, error) {
	apiKey := os.Getenv(cfg.Provider.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%s environment variable is required", cfg.Provider.APIKeyEnv)
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return gemini.New(gemini.NewSDKClient(genaiClient), cfg.Provider.Model, systemPrompt), nil
}
