package preview

import (
	"fmt"

	"github.com/quillhart/genui/internal/buildmap"
)

// Source is the file tree the preview is built from.
type Source interface {
	Files() map[string]string
	Revision() uint64
}

// Sink receives the assembled document.
type Sink interface {
	WritePreview(html string) error
}

// Status describes the outcome of a Refresh call.
type Status struct {
	// Revision is the source revision the preview reflects.
	Revision uint64
	// Entry is the mounted entry module, empty for the placeholder page.
	Entry string
	// ErrorCount is the number of build diagnostics rendered into the page.
	ErrorCount int
	// Skipped is true when the source had not changed since the last
	// refresh and no document was written.
	Skipped bool
}

// Service rebuilds the preview document when the source tree changes.
// Refresh is cheap to call after every tool run: it compares revisions
// and only rebuilds when a mutation actually happened.
type Service struct {
	source    Source
	builder   *buildmap.Builder
	assembler *Assembler
	sink      Sink

	lastRevision uint64
	rendered     bool
}

func NewService(source Source, builder *buildmap.Builder, assembler *Assembler, sink Sink) *Service {
	if source == nil {
		panic("preview: source is nil")
	}
	if builder == nil {
		panic("preview: builder is nil")
	}
	if assembler == nil {
		panic("preview: assembler is nil")
	}
	if sink == nil {
		panic("preview: sink is nil")
	}
	return &Service{source: source, builder: builder, assembler: assembler, sink: sink}
}

// Refresh rebuilds and writes the preview if the source revision moved
// since the last call. The first call always renders.
func (s *Service) Refresh() (Status, error) {
	rev := s.source.Revision()
	if s.rendered && rev == s.lastRevision {
		return Status{Revision: rev, Skipped: true}, nil
	}

	files := s.source.Files()
	entry, ok := SelectEntryPoint(files)
	if !ok {
		doc := s.assembler.BuildEmptyHTML("")
		if err := s.sink.WritePreview(doc); err != nil {
			return Status{}, fmt.Errorf("write preview: %w", err)
		}
		s.lastRevision = rev
		s.rendered = true
		return Status{Revision: rev}, nil
	}

	result := s.builder.Build(files)
	doc, err := s.assembler.BuildHTML(entry, result)
	if err != nil {
		return Status{}, fmt.Errorf("assemble preview: %w", err)
	}
	if err := s.sink.WritePreview(doc); err != nil {
		return Status{}, fmt.Errorf("write preview: %w", err)
	}
	s.lastRevision = rev
	s.rendered = true
	return Status{Revision: rev, Entry: entry, ErrorCount: len(result.Errors)}, nil
}
