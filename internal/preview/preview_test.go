package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhart/genui/internal/buildmap"
	"github.com/quillhart/genui/internal/vfs"
)

func TestSelectEntryPointPriority(t *testing.T) {
	files := map[string]string{
		"/src/App.tsx": "",
		"/index.tsx":   "",
		"/App.tsx":     "",
	}

	entry, ok := SelectEntryPoint(files)

	require.True(t, ok)
	assert.Equal(t, "/App.tsx", entry)
}

func TestSelectEntryPointPrefersJSXOverTSX(t *testing.T) {
	files := map[string]string{
		"/App.tsx": "",
		"/App.jsx": "",
	}

	entry, ok := SelectEntryPoint(files)

	require.True(t, ok)
	assert.Equal(t, "/App.jsx", entry)
}

func TestSelectEntryPointFallsBackLexicographically(t *testing.T) {
	files := map[string]string{
		"/widgets/Card.jsx": "",
		"/pages/Home.tsx":   "",
		"/lib/util.js":      "",
	}

	entry, ok := SelectEntryPoint(files)

	require.True(t, ok)
	assert.Equal(t, "/pages/Home.tsx", entry)
}

func TestSelectEntryPointNone(t *testing.T) {
	files := map[string]string{
		"/lib/util.js": "",
		"/styles.css":  "",
	}

	_, ok := SelectEntryPoint(files)

	assert.False(t, ok)
}

func TestBuildHTMLEmbedsImportMapAndEntry(t *testing.T) {
	a := New()
	result := buildmap.New().Build(map[string]string{
		"/App.jsx": "export default () => <div>hi</div>;\n",
	})

	doc, err := a.BuildHTML("/App.jsx", result)

	require.NoError(t, err)
	assert.Contains(t, doc, `<script type="importmap">`)
	assert.Contains(t, doc, "data:text/javascript;base64,")
	assert.Contains(t, doc, `import("/App.jsx")`)
	assert.Contains(t, doc, `<div id="root">`)
	assert.Contains(t, doc, "react-dom")
	assert.Contains(t, doc, `<div id="preview-errors" hidden>`)
}

func TestBuildHTMLIncludesStyles(t *testing.T) {
	a := New()
	result := buildmap.Result{
		ImportMap: buildmap.ImportMap{Imports: map[string]string{}},
		Styles:    "body { margin: 0; }",
	}

	doc, err := a.BuildHTML("/App.jsx", result)

	require.NoError(t, err)
	assert.Contains(t, doc, "body { margin: 0; }")
}

func TestBuildHTMLRendersEscapedErrors(t *testing.T) {
	a := New()
	result := buildmap.Result{
		ImportMap: buildmap.ImportMap{Imports: map[string]string{}},
		Errors:    []string{"/Bad.jsx: mismatched closing tag: expected </div>, found </span>"},
	}

	doc, err := a.BuildHTML("/App.jsx", result)

	require.NoError(t, err)
	assert.Contains(t, doc, `<div id="preview-errors">`)
	assert.Contains(t, doc, "&lt;/div&gt;")
	assert.NotContains(t, doc, "expected </div>")
}

func TestBuildEmptyHTML(t *testing.T) {
	a := New()

	doc := a.BuildEmptyHTML("")

	assert.Contains(t, doc, "No component to preview yet.")
	assert.NotContains(t, doc, "importmap")
}

type memorySink struct {
	docs []string
}

func (m *memorySink) WritePreview(html string) error {
	m.docs = append(m.docs, html)
	return nil
}

func newTestService(t *testing.T) (*vfs.FS, *memorySink, *Service) {
	t.Helper()
	fs := vfs.New()
	sink := &memorySink{}
	svc := NewService(fs, buildmap.New(), New(), sink)
	return fs, sink, svc
}

func TestServiceRendersPlaceholderForEmptyTree(t *testing.T) {
	_, sink, svc := newTestService(t)

	status, err := svc.Refresh()

	require.NoError(t, err)
	assert.False(t, status.Skipped)
	assert.Empty(t, status.Entry)
	require.Len(t, sink.docs, 1)
	assert.Contains(t, sink.docs[0], "No component to preview")
}

func TestServiceSkipsWhenRevisionUnchanged(t *testing.T) {
	fs, sink, svc := newTestService(t)
	require.NoError(t, fs.CreateFile("/App.jsx", "export default () => <p>ok</p>;\n"))

	first, err := svc.Refresh()
	require.NoError(t, err)
	second, err := svc.Refresh()
	require.NoError(t, err)

	assert.False(t, first.Skipped)
	assert.Equal(t, "/App.jsx", first.Entry)
	assert.True(t, second.Skipped)
	assert.Equal(t, first.Revision, second.Revision)
	assert.Len(t, sink.docs, 1)
}

func TestServiceRebuildsAfterMutation(t *testing.T) {
	fs, sink, svc := newTestService(t)
	require.NoError(t, fs.CreateFile("/App.jsx", "export default () => <p>one</p>;\n"))

	_, err := svc.Refresh()
	require.NoError(t, err)
	require.NoError(t, fs.UpdateFile("/App.jsx", "export default () => <p>two</p>;\n"))
	status, err := svc.Refresh()
	require.NoError(t, err)

	assert.False(t, status.Skipped)
	require.Len(t, sink.docs, 2)
	assert.NotEqual(t, sink.docs[0], sink.docs[1])
}

func TestServiceReportsBuildErrorCount(t *testing.T) {
	fs, _, svc := newTestService(t)
	require.NoError(t, fs.CreateFile("/App.jsx", "export default () => <p>ok</p>;\n"))
	require.NoError(t, fs.CreateFile("/Bad.jsx", "const a = <div>oops;"))

	status, err := svc.Refresh()

	require.NoError(t, err)
	assert.Equal(t, 1, status.ErrorCount)
}

func TestServiceFirstRefreshAlwaysRenders(t *testing.T) {
	_, sink, svc := newTestService(t)

	_, err := svc.Refresh()
	require.NoError(t, err)

	assert.NotEmpty(t, sink.docs)
	assert.True(t, strings.HasPrefix(sink.docs[0], "<!DOCTYPE html>"))
}
