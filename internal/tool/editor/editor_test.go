package editor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhart/genui/internal/config"
	"github.com/quillhart/genui/internal/tool"
	"github.com/quillhart/genui/internal/vfs"
)

func newTestFS(t *testing.T, files map[string]string) *vfs.FS {
	t.Helper()
	fs := vfs.New()
	for path, content := range files {
		require.NoError(t, fs.CreateFile(path, content))
	}
	return fs
}

func TestViewTool_File_NumbersLines(t *testing.T) {
	fs := newTestFS(t, map[string]string{"/App.jsx": "line one\nline two\n"})
	vt := NewViewTool(fs)

	res, err := vt.Execute(context.Background(), &ViewRequest{Path: "/App.jsx"})
	require.NoError(t, err)

	resp := res.(*ViewResponse)
	assert.Empty(t, resp.Err)
	assert.Equal(t, "     1\tline one\n     2\tline two", resp.Listing)
	assert.Equal(t, resp.Listing, resp.LLMContent())
	assert.Equal(t, tool.StringDisplay("Viewed /App.jsx"), resp.Display())
}

func TestViewTool_File_Range(t *testing.T) {
	fs := newTestFS(t, map[string]string{"/App.jsx": "a\nb\nc\nd\n"})
	vt := NewViewTool(fs)

	t.Run("window", func(t *testing.T) {
		res, err := vt.Execute(context.Background(), &ViewRequest{Path: "/App.jsx", ViewRange: []int{2, 3}})
		require.NoError(t, err)
		assert.Equal(t, "     2\tb\n     3\tc", res.(*ViewResponse).Listing)
	})

	t.Run("open end", func(t *testing.T) {
		res, err := vt.Execute(context.Background(), &ViewRequest{Path: "/App.jsx", ViewRange: []int{3, -1}})
		require.NoError(t, err)
		assert.Equal(t, "     3\tc\n     4\td", res.(*ViewResponse).Listing)
	})

	t.Run("start past end", func(t *testing.T) {
		res, err := vt.Execute(context.Background(), &ViewRequest{Path: "/App.jsx", ViewRange: []int{9, -1}})
		require.NoError(t, err)
		assert.Contains(t, res.(*ViewResponse).Err, "past the end")
	})

	t.Run("invalid range", func(t *testing.T) {
		res, err := vt.Execute(context.Background(), &ViewRequest{Path: "/App.jsx", ViewRange: []int{3, 1}})
		require.NoError(t, err)
		assert.Equal(t, ErrInvalidRange.Error(), res.(*ViewResponse).Err)
	})
}

func TestViewTool_Directory_ListsEntries(t *testing.T) {
	fs := newTestFS(t, map[string]string{
		"/src/App.jsx":           "x",
		"/src/components/btn.js": "y",
	})
	vt := NewViewTool(fs)

	res, err := vt.Execute(context.Background(), &ViewRequest{Path: "/src"})
	require.NoError(t, err)

	resp := res.(*ViewResponse)
	assert.Equal(t, "[FILE] App.jsx\n[DIR]  components", resp.Listing)
}

func TestViewTool_EmptyDirectory(t *testing.T) {
	fs := vfs.New()
	require.NoError(t, fs.CreateDirectory("/empty"))
	vt := NewViewTool(fs)

	res, err := vt.Execute(context.Background(), &ViewRequest{Path: "/empty"})
	require.NoError(t, err)
	assert.Equal(t, "(empty directory)", res.(*ViewResponse).Listing)
}

func TestViewTool_NotFound(t *testing.T) {
	vt := NewViewTool(vfs.New())

	res, err := vt.Execute(context.Background(), &ViewRequest{Path: "/nope.jsx"})
	require.NoError(t, err)

	resp := res.(*ViewResponse)
	assert.Equal(t, "path not found: /nope.jsx", resp.Err)
	assert.Equal(t, "Error: path not found: /nope.jsx", resp.LLMContent())
}

func TestCreateTool_NewFile(t *testing.T) {
	fs := vfs.New()
	ct := NewCreateTool(fs, config.DefaultConfig())

	res, err := ct.Execute(context.Background(), &CreateRequest{Path: "/src/App.jsx", FileText: "hello"})
	require.NoError(t, err)

	resp := res.(*CreateResponse)
	assert.Empty(t, resp.Err)
	assert.Equal(t, "Created /src/App.jsx (5 bytes)", resp.LLMContent())

	content, rerr := fs.ReadFile("/src/App.jsx")
	require.NoError(t, rerr)
	assert.Equal(t, "hello", content)
}

func TestCreateTool_ExistingPath_Fails(t *testing.T) {
	fs := newTestFS(t, map[string]string{"/App.jsx": "old"})
	ct := NewCreateTool(fs, config.DefaultConfig())

	res, err := ct.Execute(context.Background(), &CreateRequest{Path: "/App.jsx", FileText: "new body"})
	require.NoError(t, err)

	resp := res.(*CreateResponse)
	assert.Contains(t, resp.Err, vfs.ErrExists.Error())
	assert.Contains(t, resp.LLMContent(), "Error: ")

	content, rerr := fs.ReadFile("/App.jsx")
	require.NoError(t, rerr)
	assert.Equal(t, "old", content)
}

func TestCreateTool_ExistingDirectory_Fails(t *testing.T) {
	fs := newTestFS(t, map[string]string{"/src/App.jsx": "x"})
	ct := NewCreateTool(fs, config.DefaultConfig())

	res, err := ct.Execute(context.Background(), &CreateRequest{Path: "/src", FileText: "body"})
	require.NoError(t, err)
	assert.Contains(t, res.(*CreateResponse).Err, vfs.ErrExists.Error())
}

func TestCreateTool_TooLarge(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Tools.MaxFileSize = 4
	ct := NewCreateTool(vfs.New(), cfg)

	res, err := ct.Execute(context.Background(), &CreateRequest{Path: "/big.js", FileText: "12345"})
	require.NoError(t, err)
	assert.Equal(t, ErrContentTooLarge.Error(), res.(*CreateResponse).Err)
}

func TestStrReplaceTool_ReplacesAllOccurrences(t *testing.T) {
	fs := newTestFS(t, map[string]string{"/App.jsx": "Hello world\nHello again\n"})
	st := NewStrReplaceTool(fs, config.DefaultConfig())

	res, err := st.Execute(context.Background(), &StrReplaceRequest{
		Path:   "/App.jsx",
		OldStr: "Hello",
		NewStr: "Hi",
	})
	require.NoError(t, err)

	resp := res.(*StrReplaceResponse)
	assert.Empty(t, resp.Err)
	assert.Equal(t, 2, resp.Replacements)
	assert.Contains(t, resp.Diff, "-Hello world")
	assert.Contains(t, resp.Diff, "+Hi world")
	assert.Equal(t, 2, resp.AddedLines)
	assert.Equal(t, 2, resp.RemovedLines)

	content, rerr := fs.ReadFile("/App.jsx")
	require.NoError(t, rerr)
	assert.Equal(t, "Hi world\nHi again\n", content)

	display, ok := resp.Display().(tool.DiffDisplay)
	require.True(t, ok)
	assert.Equal(t, resp.Diff, display.Diff)
}

func TestStrReplaceTool_OldStrMissing(t *testing.T) {
	fs := newTestFS(t, map[string]string{"/App.jsx": "nothing here"})
	st := NewStrReplaceTool(fs, config.DefaultConfig())

	res, err := st.Execute(context.Background(), &StrReplaceRequest{
		Path:   "/App.jsx",
		OldStr: "absent",
		NewStr: "x",
	})
	require.NoError(t, err)

	resp := res.(*StrReplaceResponse)
	assert.Equal(t, `old_str not found in /App.jsx: "absent"`, resp.Err)

	content, rerr := fs.ReadFile("/App.jsx")
	require.NoError(t, rerr)
	assert.Equal(t, "nothing here", content)
}

func TestStrReplaceTool_EmptyOldStrRejected(t *testing.T) {
	fs := newTestFS(t, map[string]string{"/App.jsx": "x"})
	st := NewStrReplaceTool(fs, config.DefaultConfig())

	res, err := st.Execute(context.Background(), &StrReplaceRequest{Path: "/App.jsx"})
	require.NoError(t, err)
	assert.Equal(t, ErrOldStrRequired.Error(), res.(*StrReplaceResponse).Err)
}

func TestInsertTool_AtTop(t *testing.T) {
	fs := newTestFS(t, map[string]string{"/App.jsx": "b\nc\n"})
	it := NewInsertTool(fs, config.DefaultConfig())

	res, err := it.Execute(context.Background(), &InsertRequest{Path: "/App.jsx", InsertLine: 0, NewStr: "a"})
	require.NoError(t, err)

	resp := res.(*InsertResponse)
	assert.Empty(t, resp.Err)

	content, rerr := fs.ReadFile("/App.jsx")
	require.NoError(t, rerr)
	assert.Equal(t, "a\nb\nc\n", content)
}

func TestInsertTool_AfterLine(t *testing.T) {
	fs := newTestFS(t, map[string]string{"/App.jsx": "a\nc\n"})
	it := NewInsertTool(fs, config.DefaultConfig())

	res, err := it.Execute(context.Background(), &InsertRequest{Path: "/App.jsx", InsertLine: 1, NewStr: "b"})
	require.NoError(t, err)
	require.Empty(t, res.(*InsertResponse).Err)

	content, rerr := fs.ReadFile("/App.jsx")
	require.NoError(t, rerr)
	assert.Equal(t, "a\nb\nc\n", content)
}

func TestInsertTool_AtEnd(t *testing.T) {
	fs := newTestFS(t, map[string]string{"/App.jsx": "a\nb\n"})
	it := NewInsertTool(fs, config.DefaultConfig())

	res, err := it.Execute(context.Background(), &InsertRequest{Path: "/App.jsx", InsertLine: 2, NewStr: "c"})
	require.NoError(t, err)
	require.Empty(t, res.(*InsertResponse).Err)

	content, rerr := fs.ReadFile("/App.jsx")
	require.NoError(t, rerr)
	assert.Equal(t, "a\nb\nc\n", content)
}

func TestInsertTool_PastEnd(t *testing.T) {
	fs := newTestFS(t, map[string]string{"/App.jsx": "a\nb\n"})
	it := NewInsertTool(fs, config.DefaultConfig())

	res, err := it.Execute(context.Background(), &InsertRequest{Path: "/App.jsx", InsertLine: 5, NewStr: "x"})
	require.NoError(t, err)
	assert.Equal(t, "insert_line 5 is past the end of /App.jsx (2 lines)", res.(*InsertResponse).Err)
}

func TestInsertTool_NoTrailingNewlinePreserved(t *testing.T) {
	fs := newTestFS(t, map[string]string{"/App.jsx": "a\nb"})
	it := NewInsertTool(fs, config.DefaultConfig())

	res, err := it.Execute(context.Background(), &InsertRequest{Path: "/App.jsx", InsertLine: 1, NewStr: "mid"})
	require.NoError(t, err)
	require.Empty(t, res.(*InsertResponse).Err)

	content, rerr := fs.ReadFile("/App.jsx")
	require.NoError(t, rerr)
	assert.Equal(t, "a\nmid\nb", content)
}

func TestRequestStrings(t *testing.T) {
	assert.Equal(t, "Viewing /a", (&ViewRequest{Path: "/a"}).String())
	assert.Equal(t, "Creating /a", (&CreateRequest{Path: "/a"}).String())
	assert.Equal(t, "Editing /a", (&StrReplaceRequest{Path: "/a"}).String())
	assert.Equal(t, "Inserting into /a at line 3", (&InsertRequest{Path: "/a", InsertLine: 3}).String())
}
