// Package services holds rendering helpers used by the views.
package services

import "github.com/charmbracelet/glamour"

// MarkdownRenderer renders markdown into terminal output.
type MarkdownRenderer interface {
	Render(content string) (string, error)
}

// GlamourRenderer is the production MarkdownRenderer.
type GlamourRenderer struct {
	width int
}

func NewGlamourRenderer(width int) *GlamourRenderer {
	return &GlamourRenderer{width: width}
}

func (r *GlamourRenderer) Render(content string) (string, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(r.width),
	)
	if err != nil {
		return "", err
	}
	return tr.Render(content)
}

// RenderMarkdown renders content through the given renderer, falling back
// to the raw text when rendering fails or no renderer is available.
func RenderMarkdown(content string, renderer MarkdownRenderer) string {
	if renderer == nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
