package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/goshapes/pkg/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

const squareDoc = `version: 1
handle_radius: 0.5
shapes:
  - id: square
    points: [[0, 0, 0], [4, 0, 0], [4, 0, 4], [0, 0, 4]]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewThenInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")

	out, err := execute(t, "new", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	doc, err := shape.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Shapes.Len())

	_, err = execute(t, "new", path)
	assert.Error(t, err, "existing documents are not overwritten")

	out, err = execute(t, "info", path)
	require.NoError(t, err)
	assert.Contains(t, out, "(none)")
}

func TestInfoListsShapes(t *testing.T) {
	path := writeFile(t, t.TempDir(), "doc.yaml", squareDoc)

	out, err := execute(t, "info", path)
	require.NoError(t, err)
	assert.Contains(t, out, "square")
	assert.Contains(t, out, "area: 16.0000")
	assert.Contains(t, out, "Triangles: 2")
}

func TestExportWritesSTL(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.yaml", squareDoc)

	out, err := execute(t, "export", path, "--binary=false", "-o", "", "-f", "stl", "--extrude", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 2 triangles")

	data, err := os.ReadFile(filepath.Join(dir, "doc.stl"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("solid")))
}

func TestExportWritesSCAD(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.yaml", squareDoc)

	out, err := execute(t, "export", path, "-o", "", "-f", "scad", "--extrude", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 1 shapes")

	data, err := os.ReadFile(filepath.Join(dir, "doc.scad"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "linear_extrude(height = 3)")
	assert.Contains(t, string(data), "[4, -4]")
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "doc.yaml", squareDoc)

	_, err := execute(t, "export", path, "-f", "obj")
	assert.ErrorContains(t, err, "unknown format")
}

func TestReplayScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yaml")
	script := writeFile(t, dir, "script.yaml", `
viewport: {scale: 1, origin: [0, 0, 0]}
steps:
  - {action: click, x: 0, y: 0}
  - {action: click, x: 4, y: 0}
  - {action: click, x: 0, y: 4}
`)
	output := filepath.Join(dir, "out.yaml")

	out, err := execute(t, "replay", path, "--script", script, "-o", output)
	require.NoError(t, err)
	assert.Contains(t, out, "1 shapes, 3 points, 1 triangles")

	doc, err := shape.Load(output)
	require.NoError(t, err)
	require.Equal(t, 1, doc.Shapes.Len())
}

func TestMissingDocumentFails(t *testing.T) {
	_, err := execute(t, "info", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
