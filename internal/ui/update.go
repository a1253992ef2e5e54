package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillhart/genui/internal/ui/models"
	"github.com/quillhart/genui/internal/ui/services"
	"github.com/quillhart/genui/internal/ui/views"
	"github.com/quillhart/genui/internal/workflow"
)

// chatModel implements tea.Model
type chatModel struct {
	state models.State

	renderer services.MarkdownRenderer

	events  <-chan workflow.Event
	errors  <-chan error
	prompts chan<- string
}

// Internal messages
type tickMsg time.Time
type eventMsg struct{ event workflow.Event }
type errorMsg struct{ err error }

func newChatModel(channels *Channels, opts Options) chatModel {
	ti := textinput.New()
	ti.Placeholder = "Describe the interface you want..."
	ti.Focus()

	vp := viewport.New(80, 20)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return chatModel{
		state: models.State{
			Input:       ti,
			Viewport:    vp,
			Spinner:     sp,
			Messages:    []models.Message{},
			PreviewPath: opts.PreviewPath,
		},
		renderer: opts.Renderer,
		events:   channels.Events,
		errors:   channels.Errors,
		prompts:  channels.Prompts,
	}
}

// View renders the UI
func (m chatModel) View() string {
	return views.RenderRoot(m.state)
}

// Init initializes the model
func (m chatModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.state.Spinner.Tick,
		tick(),
		listenForEvents(m.events),
		listenForErrors(m.errors),
	)
}

// Update handles messages
func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.state.Viewport.Width = msg.Width
		m.state.Viewport.Height = msg.Height - 6 // Reserve space for input and status
		m.updateViewport()

	case tickMsg:
		// Update dot animation
		m.state.DotCount = (m.state.DotCount + 1) % 4
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, tea.Batch(cmd, tick())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, cmd

	case eventMsg:
		m.applyEvent(msg.event)
		return m, listenForEvents(m.events)

	case errorMsg:
		m.state.Messages = append(m.state.Messages, models.Message{
			Role:    models.RoleError,
			Content: msg.err.Error(),
		})
		m.updateViewport()
		return m, listenForErrors(m.errors)
	}

	// Update input
	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// applyEvent folds one agent event into the view state.
func (m *chatModel) applyEvent(event workflow.Event) {
	switch e := event.(type) {
	case workflow.ThinkingEvent:
		m.state.StatusPhase = "thinking"
		m.state.StatusMessage = ""

	case workflow.TextEvent:
		m.state.Messages = append(m.state.Messages, models.Message{
			Role:    models.RoleAssistant,
			Content: e.Text,
		})
		m.updateViewport()

	case workflow.ToolStartEvent:
		m.state.StatusPhase = "executing"
		m.state.StatusMessage = e.RequestDisplay

	case workflow.ToolEndEvent:
		content := services.FormatToolDisplay(e.Display)
		if content != "" {
			m.state.Messages = append(m.state.Messages, models.Message{
				Role:    models.RoleTool,
				Content: content,
			})
			m.updateViewport()
		}

	case workflow.PreviewEvent:
		m.state.PreviewRevision = e.Revision
		m.state.PreviewErrors = e.ErrorCount

	case workflow.TokenCountEvent:
		m.state.ContextTokens = e.Tokens

	case workflow.DoneEvent:
		m.state.Busy = false
		m.state.StatusPhase = "done"
		m.state.StatusMessage = ""
	}
}

// handleKeyPress handles keyboard input
func (m chatModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		if !m.state.Busy && m.state.Input.Value() != "" {
			input := m.state.Input.Value()

			m.state.Messages = append(m.state.Messages, models.Message{
				Role:    models.RoleUser,
				Content: input,
			})
			m.updateViewport()

			m.state.Input.SetValue("")
			m.state.Busy = true
			m.state.StatusPhase = "thinking"
			return m, submitPrompt(m.prompts, input)
		}
	}

	return m, nil
}

// updateViewport updates the viewport content
func (m *chatModel) updateViewport() {
	content := views.FormatChatContent(m.state.Messages, m.renderer)
	m.state.Viewport.SetContent(content)
	m.state.Viewport.GotoBottom()
}

// Helper commands for listening to channels
func listenForEvents(ch <-chan workflow.Event) tea.Cmd {
	return func() tea.Msg {
		return eventMsg{event: <-ch}
	}
}

func listenForErrors(ch <-chan error) tea.Cmd {
	return func() tea.Msg {
		return errorMsg{err: <-ch}
	}
}

func submitPrompt(ch chan<- string, prompt string) tea.Cmd {
	return func() tea.Msg {
		ch <- prompt
		return nil
	}
}

func tick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
