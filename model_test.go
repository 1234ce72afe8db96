package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	cfg := defaultConfig()
	cfg.SaveDirectory = t.TempDir()
	m := newModel(newTestEditor(), cfg, nil)
	return update(m, tea.WindowSizeMsg{Width: 80, Height: 31})
}

func update(m model, msg tea.Msg) model {
	next, _ := m.Update(msg)
	return next.(model)
}

func keys(m model, s string) model {
	for _, r := range s {
		m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func enter(m model) model {
	return update(m, tea.KeyMsg{Type: tea.KeyEnter})
}

func mouse(m model, action tea.MouseAction, x, y int) model {
	return update(m, tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft})
}

func TestModel_AddSelectAndDrag(t *testing.T) {
	m := newTestModel(t)
	m = keys(m, "R")
	require.Len(t, m.editor.Document().Elements, 1)
	id := m.editor.Document().Elements[0].ID

	m = mouse(m, tea.MouseActionPress, 12, 6)
	assert.True(t, m.editor.IsSelected(id))
	m = mouse(m, tea.MouseActionMotion, 14, 6)
	m = mouse(m, tea.MouseActionRelease, 14, 6)
	assert.False(t, m.editor.Dragging())

	r := rectAt(t, m.editor, id)
	assert.Equal(t, 120.0, r.X)
	assert.Equal(t, 100.0, r.Y)

	m = keys(m, "d")
	assert.Empty(t, m.editor.Document().Elements)
}

func TestModel_PressOnStatusRowIgnored(t *testing.T) {
	m := newTestModel(t)
	m = keys(m, "p")
	m = mouse(m, tea.MouseActionPress, 5, 30)
	m = mouse(m, tea.MouseActionRelease, 5, 30)
	assert.Empty(t, m.editor.Document().Elements)
}

func TestModel_TextEntry(t *testing.T) {
	m := newTestModel(t)
	m = keys(m, "t")
	m = mouse(m, tea.MouseActionPress, 30, 10)
	require.Equal(t, ModeTextInput, m.mode)

	m = keys(m, "Hi")
	m = update(m, tea.KeyMsg{Type: tea.KeySpace})
	m = keys(m, "theree")
	m = update(m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "Hi there", m.textInput)
	assert.Contains(t, m.View(), "Hi there")
	m = enter(m)

	assert.Equal(t, ModeNormal, m.mode)
	els := m.editor.Document().Elements
	require.Len(t, els, 1)
	l, ok := els[0].Shape.(*Label)
	require.True(t, ok)
	assert.Equal(t, "Hi there", l.Content)
	assert.Equal(t, Point{300, 200}, Point{l.X, l.Y})
}

func TestModel_TextEscapeCancels(t *testing.T) {
	m := newTestModel(t)
	m = keys(m, "t")
	m = mouse(m, tea.MouseActionPress, 30, 10)
	m = keys(m, "draft")
	m = update(m, tea.KeyMsg{Type: tea.KeyEscape})

	assert.Equal(t, ModeNormal, m.mode)
	assert.Empty(t, m.editor.Document().Elements)
	_, open := m.editor.TextAnchor()
	assert.False(t, open)
}

func TestModel_SaveClearOpen(t *testing.T) {
	m := newTestModel(t)
	m = keys(m, "RC")
	want := m.editor.ExportDocument()

	m = keys(m, "wdoc")
	m = enter(m)
	path := filepath.Join(m.config.SaveDirectory, "doc.json")
	assert.FileExists(t, path)
	assert.Equal(t, "Saved "+path, m.successMessage)

	m = keys(m, "Xn")
	assert.Len(t, m.editor.Document().Elements, 2, "declined clear keeps elements")
	m = keys(m, "Xy")
	assert.Empty(t, m.editor.Document().Elements)

	m = keys(m, "odoc")
	m = enter(m)
	assert.Empty(t, m.errorMessage)
	assert.Equal(t, want, m.editor.ExportDocument())
}

func TestModel_OpenMalformedKeepsCanvas(t *testing.T) {
	m := newTestModel(t)
	m = keys(m, "R")
	bad := filepath.Join(m.config.SaveDirectory, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"width":800,"height":600,"elements":[{"id":1,"type":"star"}]}`), 0644))

	m = keys(m, "obad")
	m = enter(m)
	assert.NotEmpty(t, m.errorMessage)
	assert.Len(t, m.editor.Document().Elements, 1)
}

func TestModel_EmptyFilename(t *testing.T) {
	m := newTestModel(t)
	m = keys(m, "w")
	m = enter(m)
	assert.Equal(t, "No filename given", m.errorMessage)
	assert.Equal(t, ModeNormal, m.mode)
}

func TestModel_ExportText(t *testing.T) {
	m := newTestModel(t)
	m = keys(m, "T")
	m = keys(m, "empty")
	m = enter(m)
	assert.Equal(t, "nothing to export", m.errorMessage)
	assert.NoFileExists(t, filepath.Join(m.config.SaveDirectory, "empty.txt"))

	m = keys(m, "R")
	m = keys(m, "Tsketch")
	m = enter(m)
	data, err := os.ReadFile(filepath.Join(m.config.SaveDirectory, "sketch.txt"))
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")
	require.Greater(t, len(lines), 9)
	assert.Equal(t, "+", string([]rune(lines[5])[10]))
}

func TestModel_ToolsAndSettings(t *testing.T) {
	m := newTestModel(t)
	m = keys(m, "l")
	assert.Equal(t, ToolLine, m.editor.Tool())
	m = keys(m, "++")
	assert.Equal(t, defaultBrushSize+2, m.editor.BrushSize())
	m = keys(m, "]")
	assert.Equal(t, defaultFontSize+2, m.editor.FontSize())
	m = keys(m, "3")
	assert.Equal(t, palette[2], m.editor.Color())
	assert.Contains(t, m.View(), "line")
}

func TestModel_Help(t *testing.T) {
	m := newTestModel(t)
	m = keys(m, "?")
	assert.True(t, m.help)
	assert.Contains(t, m.View(), "Wirecanvas Help")
	m = keys(m, "r")
	assert.False(t, m.help)
	assert.Equal(t, ToolSelect, m.editor.Tool(), "dismissing help swallows the key")
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_ResizeCanvas(t *testing.T) {
	m := newTestModel(t)
	m = keys(m, "R")
	m = keys(m, "Z640x480")
	require.Equal(t, ModeSizeInput, m.mode)
	m = enter(m)

	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, "Canvas resized to 640x480", m.successMessage)
	assert.Equal(t, 640, m.editor.Document().Width)
	assert.Equal(t, 480, m.editor.Document().Height)
	assert.Empty(t, m.editor.Document().Elements)
	assert.Equal(t, 640, m.config.CanvasWidth)
}

func TestModel_ResizeRejectsBadInput(t *testing.T) {
	tests := map[string]string{
		"not a size": "big",
		"zero width": "0x480",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			m := newTestModel(t)
			m = keys(m, "R")
			m = keys(m, "Z"+in)
			m = enter(m)

			assert.NotEmpty(t, m.errorMessage)
			assert.Equal(t, 800, m.editor.Document().Width)
			assert.Len(t, m.editor.Document().Elements, 1)
		})
	}
}

func TestModel_FilenameWithSpace(t *testing.T) {
	m := newTestModel(t)
	m = keys(m, "R")
	m = keys(m, "wmy")
	m = update(m, tea.KeyMsg{Type: tea.KeySpace})
	m = keys(m, "page")
	m = enter(m)

	assert.Empty(t, m.errorMessage)
	assert.FileExists(t, filepath.Join(m.config.SaveDirectory, "my page.json"))
}
