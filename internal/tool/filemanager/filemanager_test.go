package filemanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhart/genui/internal/tool"
	"github.com/quillhart/genui/internal/vfs"
)

func TestRenameTool_MovesSubtree(t *testing.T) {
	fs := vfs.New()
	require.NoError(t, fs.CreateFile("/src/App.jsx", "app"))
	require.NoError(t, fs.CreateFile("/src/components/Button.jsx", "btn"))
	rt := NewRenameTool(fs)

	res, err := rt.Execute(context.Background(), &RenameRequest{OldPath: "/src", NewPath: "/app"})
	require.NoError(t, err)

	resp := res.(*RenameResponse)
	assert.Empty(t, resp.Err)
	assert.Equal(t, "Renamed /src to /app", resp.LLMContent())

	assert.False(t, fs.Exists("/src"))
	content, rerr := fs.ReadFile("/app/components/Button.jsx")
	require.NoError(t, rerr)
	assert.Equal(t, "btn", content)
}

func TestRenameTool_MissingSource(t *testing.T) {
	rt := NewRenameTool(vfs.New())

	res, err := rt.Execute(context.Background(), &RenameRequest{OldPath: "/nope", NewPath: "/other"})
	require.NoError(t, err)

	resp := res.(*RenameResponse)
	assert.NotEmpty(t, resp.Err)
	assert.Contains(t, resp.LLMContent(), "Error: ")
}

func TestRenameTool_MissingNewPath(t *testing.T) {
	rt := NewRenameTool(vfs.New())

	res, err := rt.Execute(context.Background(), &RenameRequest{OldPath: "/a"})
	require.NoError(t, err)
	assert.Equal(t, ErrNewPathRequired.Error(), res.(*RenameResponse).Err)
}

func TestDeleteTool_File(t *testing.T) {
	fs := vfs.New()
	require.NoError(t, fs.CreateFile("/App.jsx", "x"))
	dt := NewDeleteTool(fs)

	res, err := dt.Execute(context.Background(), &DeleteRequest{Path: "/App.jsx"})
	require.NoError(t, err)

	resp := res.(*DeleteResponse)
	assert.Empty(t, resp.Err)
	assert.Equal(t, "Deleted /App.jsx", resp.LLMContent())
	assert.Equal(t, tool.StringDisplay("Deleted /App.jsx"), resp.Display())
	assert.False(t, fs.Exists("/App.jsx"))
}

func TestDeleteTool_DirectoryRecursive(t *testing.T) {
	fs := vfs.New()
	require.NoError(t, fs.CreateFile("/src/a.js", "a"))
	require.NoError(t, fs.CreateFile("/src/nested/b.js", "b"))
	dt := NewDeleteTool(fs)

	res, err := dt.Execute(context.Background(), &DeleteRequest{Path: "/src"})
	require.NoError(t, err)
	require.Empty(t, res.(*DeleteResponse).Err)

	assert.False(t, fs.Exists("/src"))
	assert.False(t, fs.Exists("/src/nested/b.js"))
}

func TestDeleteTool_RootRejected(t *testing.T) {
	dt := NewDeleteTool(vfs.New())

	res, err := dt.Execute(context.Background(), &DeleteRequest{Path: "/"})
	require.NoError(t, err)
	assert.Contains(t, res.(*DeleteResponse).Err, vfs.ErrRootReserved.Error())
}

func TestRequestStrings(t *testing.T) {
	assert.Equal(t, "Renaming /a to /b", (&RenameRequest{OldPath: "/a", NewPath: "/b"}).String())
	assert.Equal(t, "Deleting /a", (&DeleteRequest{Path: "/a"}).String())
}
