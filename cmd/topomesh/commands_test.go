package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/topomesh/internal/config"
)

func writeGrid(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

const block = `# 2x2 plateau
nan nan nan nan
nan 3   4   nan
nan 5   6   nan
nan nan nan nan
`

func TestRunInfo(t *testing.T) {
	grid := writeGrid(t, t.TempDir(), "block.grid", block)

	var out bytes.Buffer
	require.NoError(t, run(&out, config.Default(), "info", []string{grid}))

	assert.Contains(t, out.String(), "Size:   4 x 4")
	assert.Contains(t, out.String(), "Valid:  4 of 16 cells")
	assert.Contains(t, out.String(), "Range:  3 .. 6")
}

func TestRunBuild(t *testing.T) {
	grid := writeGrid(t, t.TempDir(), "block.grid", block)

	cfg := config.Default()
	cfg.Mesh.Scale = 2
	cfg.Mesh.BaseHeight = 1

	var out bytes.Buffer
	require.NoError(t, run(&out, cfg, "build", []string{grid}))

	assert.Contains(t, out.String(), "Mesh(vertices: 8, surface: 2, base: 2, wall: 8)")
	assert.Contains(t, out.String(), "Bounds: (2, 2, 1) .. (4, 4, 6)")
	assert.Contains(t, out.String(), "Watertight: true")
}

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	grid := writeGrid(t, dir, "block.grid", block)

	var out bytes.Buffer
	require.NoError(t, run(&out, config.Default(), "check", []string{grid}))

	var rep map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &rep))
	assert.Equal(t, 8, rep["vertices"])
	assert.Equal(t, 12, rep["triangles"])
	assert.Equal(t, 0, rep["boundary_edges"])
	assert.Equal(t, true, rep["watertight"])
}

func TestRunCheckStrict(t *testing.T) {
	dir := t.TempDir()
	// A single-row strip is walled on both sides but encloses no volume.
	grid := writeGrid(t, dir, "strip.grid", "1 2 3\n")

	cfg := config.Default()
	var out bytes.Buffer
	require.NoError(t, run(&out, cfg, "check", []string{grid}))

	cfg.Check.RequireWatertight = true
	err := run(&out, cfg, "check", []string{grid})
	assert.ErrorIs(t, err, errNotWatertight)
}

func TestRunBuildWithBaseGrid(t *testing.T) {
	dir := t.TempDir()
	grid := writeGrid(t, dir, "block.grid", block)
	base := writeGrid(t, dir, "base.grid", "0 0 0 0\n0 1 1 0\n0 2 2 0\n0 0 0 0\n")
	short := writeGrid(t, dir, "short.grid", "0 0\n")

	var out bytes.Buffer
	require.NoError(t, run(&out, config.Default(), "build", []string{grid, base}))
	assert.Contains(t, out.String(), "Bounds: (1, 1, 1) .. (2, 2, 6)")

	err := run(&out, config.Default(), "build", []string{grid, short})
	assert.Error(t, err)
}

func TestRunStack(t *testing.T) {
	dir := t.TempDir()
	terrain := writeGrid(t, dir, "terrain.grid", "5 5\n5 5\n")
	roofs := writeGrid(t, dir, "roofs.grid", "6 6\nnan nan\n")

	var out bytes.Buffer
	require.NoError(t, run(&out, config.Default(), "stack", []string{terrain, roofs}))

	assert.Contains(t, out.String(), "Mesh(vertices: 8, surface: 2, base: 2, wall: 8)")
	assert.Contains(t, out.String(), "Mesh(vertices: 4, surface: 0, base: 0, wall: 4)")
}

func TestRunErrors(t *testing.T) {
	cfg := config.Default()
	var out bytes.Buffer

	assert.ErrorIs(t, run(&out, cfg, "frobnicate", nil), errUnknownCommand)
	assert.ErrorIs(t, run(&out, cfg, "info", nil), errUsage)
	assert.ErrorIs(t, run(&out, cfg, "build", []string{"a", "b", "c"}), errUsage)
	assert.ErrorIs(t, run(&out, cfg, "stack", []string{"only-terrain"}), errUsage)
	assert.Error(t, run(&out, cfg, "info", []string{filepath.Join(t.TempDir(), "missing.grid")}))
}

func TestRunHelp(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, config.Default(), "help", nil))

	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "stack <terrain> <layer>...")
}
