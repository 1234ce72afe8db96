package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wirecanvasrc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg := loadConfigFrom(filepath.Join(t.TempDir(), "nope"))
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigFrom_ParsesKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, `# wirecanvas settings
save_directory = `+dir+`
width=1024
canvas_height = 768
bg = #f8f9fa
colour = #e03131
brush_size = 4
fontsize = 20
cell_width = 8
cellheight = 16
logfile = `+filepath.Join(dir, "wirecanvas.log")+`
not a setting
height = -5
`)

	cfg := loadConfigFrom(path)
	assert.Equal(t, dir, cfg.SaveDirectory)
	assert.Equal(t, 1024, cfg.CanvasWidth)
	assert.Equal(t, 768, cfg.CanvasHeight, "negative height ignored")
	assert.Equal(t, "#f8f9fa", cfg.Background)
	assert.Equal(t, "#e03131", cfg.Color)
	assert.Equal(t, 4.0, cfg.BrushSize)
	assert.Equal(t, 20.0, cfg.FontSize)
	assert.Equal(t, 8.0, cfg.CellWidth)
	assert.Equal(t, 16.0, cfg.CellHeight)
	assert.Equal(t, filepath.Join(dir, "wirecanvas.log"), cfg.LogFile)
}

func TestGetSavePath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "drawings")
	cfg := defaultConfig()
	assert.Equal(t, "a.json", cfg.GetSavePath("a.json"))

	cfg.SaveDirectory = dir
	assert.Equal(t, filepath.Join(dir, "a.json"), cfg.GetSavePath("a.json"))
	assert.DirExists(t, dir)

	abs := filepath.Join(t.TempDir(), "b.json")
	assert.Equal(t, abs, cfg.GetSavePath(abs))
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger("", false)
	require.NoError(t, err)
	log.Info("discarded")

	path := filepath.Join(t.TempDir(), "wirecanvas.log")
	log, err = newLogger(path, true)
	require.NoError(t, err)
	log.Debug("hello")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
