package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f8f9fa")).Background(lipgloss.Color("#343a40"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#51cf66"))
)

type model struct {
	width          int
	height         int
	editor         *Editor
	config         *Config
	log            *zap.Logger
	mode           Mode
	help           bool
	textInput      string
	filename       string
	sizeInput      string
	fileOp         FileOperation
	errorMessage   string
	successMessage string
}

func newModel(editor *Editor, config *Config, log *zap.Logger) model {
	if log == nil {
		log = zap.NewNop()
	}
	return model{
		editor: editor,
		config: config,
		log:    log,
		mode:   ModeNormal,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// canvasPoint maps a terminal cell to canvas units.
func (m *model) canvasPoint(x, y int) Point {
	return Point{X: float64(x) * m.config.CellWidth, Y: float64(y) * m.config.CellHeight}
}

func (m *model) canvasRows() int {
	rows := m.height - 1
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.help {
			m.help = false
			return m, nil
		}
		switch m.mode {
		case ModeTextInput:
			return m.handleTextInput(msg)
		case ModeFileInput:
			return m.handleFileInput(msg)
		case ModeSizeInput:
			return m.handleSizeInput(msg)
		case ModeConfirm:
			if msg.String() == "y" {
				m.editor.Clear()
				m.successMessage = "Canvas cleared"
			}
			m.mode = ModeNormal
			return m, nil
		}
		return m.handleNormalKey(msg)
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeNormal || m.help {
		return m, nil
	}
	if msg.Y >= m.canvasRows() && msg.Action == tea.MouseActionPress {
		return m, nil
	}
	pos := m.canvasPoint(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.clearMessages()
		m.editor.PointerDown(pos)
		if _, ok := m.editor.TextAnchor(); ok {
			m.mode = ModeTextInput
			m.textInput = ""
		}
	case tea.MouseActionMotion:
		m.editor.PointerMove(pos)
	case tea.MouseActionRelease:
		m.editor.PointerUp(pos)
	}
	return m, nil
}

func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if m.handleNudge(key) {
		return m, nil
	}
	m.clearMessages()

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.help = true
	case "s":
		m.editor.SetTool(ToolSelect)
	case "p":
		m.editor.SetTool(ToolPen)
	case "e":
		m.editor.SetTool(ToolEraser)
	case "r":
		m.editor.SetTool(ToolRectangle)
	case "c":
		m.editor.SetTool(ToolCircle)
	case "t":
		m.editor.SetTool(ToolText)
	case "l":
		m.editor.SetTool(ToolLine)
	case "R", "C":
		kind := KindRectangle
		if key == "C" {
			kind = KindCircle
		}
		if _, err := m.editor.AddShape(kind); err != nil {
			m.errorMessage = err.Error()
		}
	case "d", "delete", "backspace":
		m.editor.DeleteSelected()
	case "X":
		m.mode = ModeConfirm
	case "Z":
		m.mode = ModeSizeInput
		m.sizeInput = ""
	case "+", "=":
		m.editor.SetBrushSize(m.editor.BrushSize() + 1)
	case "-":
		m.editor.SetBrushSize(m.editor.BrushSize() - 1)
	case "]":
		m.editor.SetFontSize(m.editor.FontSize() + 2)
	case "[":
		m.editor.SetFontSize(m.editor.FontSize() - 2)
	case "1", "2", "3", "4", "5", "6", "7", "8":
		i, _ := strconv.Atoi(key)
		if err := m.editor.SetColor(palette[i-1]); err != nil {
			m.errorMessage = err.Error()
		}
	case "w":
		m.startFileInput(FileOpSave)
	case "o":
		m.startFileInput(FileOpOpen)
	case "P":
		m.startFileInput(FileOpSavePNG)
	case "T":
		m.startFileInput(FileOpSaveVisualTXT)
	case "y":
		if err := m.copyDocument(); err != nil {
			m.errorMessage = fmt.Sprintf("Copy failed: %v", err)
		} else {
			m.successMessage = "Document copied to clipboard"
		}
	case "v":
		if err := m.pasteDocument(); err != nil {
			m.errorMessage = fmt.Sprintf("Import failed: %v", err)
		} else {
			m.successMessage = "Document imported from clipboard"
		}
	}
	return m, nil
}

func (m model) handleTextInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.editor.ConfirmText(m.textInput)
		m.textInput = ""
		m.mode = ModeNormal
	case tea.KeyEscape:
		m.editor.CancelText()
		m.textInput = ""
		m.mode = ModeNormal
	case tea.KeyBackspace:
		if r := []rune(m.textInput); len(r) > 0 {
			m.textInput = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.textInput += " "
	case tea.KeyRunes:
		m.textInput += string(msg.Runes)
	}
	return m, nil
}

func (m *model) startFileInput(op FileOperation) {
	m.mode = ModeFileInput
	m.fileOp = op
	m.filename = ""
}

func fileExtension(op FileOperation) string {
	switch op {
	case FileOpSavePNG:
		return ".png"
	case FileOpSaveVisualTXT:
		return ".txt"
	}
	return ".json"
}

func (m model) handleFileInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.filename = ""
		return m, nil
	case tea.KeyBackspace:
		if len(m.filename) > 0 {
			m.filename = m.filename[:len(m.filename)-1]
		}
		return m, nil
	case tea.KeySpace:
		m.filename += " "
		return m, nil
	case tea.KeyRunes:
		m.filename += string(msg.Runes)
		return m, nil
	case tea.KeyEnter:
	default:
		return m, nil
	}

	m.mode = ModeNormal
	name := strings.TrimSpace(m.filename)
	if name == "" {
		m.errorMessage = "No filename given"
		return m, nil
	}
	if filepath.Ext(name) == "" {
		name += fileExtension(m.fileOp)
	}
	path := m.config.GetSavePath(name)

	var err error
	switch m.fileOp {
	case FileOpSave:
		err = SaveDocument(path, m.editor.ExportDocument())
	case FileOpOpen:
		err = m.openFile(path)
	case FileOpSavePNG:
		err = m.exportPNG(path)
	case FileOpSaveVisualTXT:
		err = m.exportVisualTXT(path)
	}
	if err != nil {
		m.log.Warn("file operation failed", zap.String("path", path), zap.Error(err))
		m.errorMessage = err.Error()
		return m, nil
	}
	m.log.Info("file operation done", zap.String("path", path))
	if m.fileOp == FileOpOpen {
		m.successMessage = "Opened " + path
	} else {
		m.successMessage = "Saved " + path
	}
	return m, nil
}

// handleSizeInput reads a WIDTHxHEIGHT answer and reinitializes the canvas.
func (m model) handleSizeInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.sizeInput = ""
		return m, nil
	case tea.KeyBackspace:
		if len(m.sizeInput) > 0 {
			m.sizeInput = m.sizeInput[:len(m.sizeInput)-1]
		}
		return m, nil
	case tea.KeyRunes:
		m.sizeInput += string(msg.Runes)
		return m, nil
	case tea.KeyEnter:
	default:
		return m, nil
	}

	m.mode = ModeNormal
	var width, height int
	if _, err := fmt.Sscanf(strings.TrimSpace(m.sizeInput), "%dx%d", &width, &height); err != nil {
		m.errorMessage = "Size must look like 800x600"
		return m, nil
	}
	if err := m.editor.Resize(width, height); err != nil {
		m.errorMessage = err.Error()
		return m, nil
	}
	m.config.CanvasWidth = width
	m.config.CanvasHeight = height
	m.log.Info("canvas resized", zap.Int("width", width), zap.Int("height", height))
	m.successMessage = fmt.Sprintf("Canvas resized to %dx%d", width, height)
	return m, nil
}

// openFile imports a saved document. The canvas is untouched on failure.
func (m *model) openFile(path string) error {
	doc, err := LoadDocument(path)
	if err != nil {
		return err
	}
	return m.editor.ImportDocument(doc)
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	width := m.width
	if width < 1 {
		width = 1
	}
	lines := m.editor.Preview(previewOptions{
		cols:      width,
		rows:      m.canvasRows(),
		cellW:     m.config.CellWidth,
		cellH:     m.config.CellHeight,
		inputText: m.textInput,
		colored:   true,
	})

	var result strings.Builder
	for _, line := range lines {
		result.WriteString(line)
		result.WriteString("\n")
	}
	result.WriteString(m.statusLine(width))
	return result.String()
}

func (m model) statusLine(width int) string {
	var status string
	switch m.mode {
	case ModeTextInput:
		status = "TEXT: " + m.textInput + "  (Enter confirm, Esc cancel)"
	case ModeFileInput:
		status = fmt.Sprintf("%s file: %s", m.fileOpString(), m.filename)
	case ModeConfirm:
		status = "Clear the whole canvas? (y/n)"
	case ModeSizeInput:
		status = "Canvas size (WxH, clears canvas): " + m.sizeInput
	default:
		status = fmt.Sprintf("%s | color %s | brush %.0f | font %.0f | %d elements | ? help",
			m.editor.Tool(), m.editor.Color(), m.editor.BrushSize(), m.editor.FontSize(),
			len(m.editor.Document().Elements))
	}
	line := statusStyle.Width(width).Render(status)
	if m.errorMessage != "" {
		return errorStyle.Render(m.errorMessage)
	}
	if m.successMessage != "" {
		return successStyle.Render(m.successMessage)
	}
	return line
}

func (m model) fileOpString() string {
	switch m.fileOp {
	case FileOpSave:
		return "Save"
	case FileOpOpen:
		return "Open"
	case FileOpSavePNG:
		return "Export PNG"
	case FileOpSaveVisualTXT:
		return "Export text"
	}
	return ""
}

func (m model) helpView() string {
	helpLines := []string{
		"Wirecanvas Help",
		"===============",
		"",
		"Tools:",
		"  s  select / move / resize      p  pen",
		"  e  eraser                      l  line",
		"  r  rectangle (click to place)  c  circle (click to place)",
		"  t  text (click, type, Enter)",
		"",
		"Editing:",
		"  R / C        add default rectangle / circle",
		"  d            delete selected element",
		"  X            clear canvas",
		"  Z            resize canvas (clears it)",
		"  arrows       nudge selected element (shift: one grid step)",
		"  + / -        brush size      ] / [  font size",
		"  1-8          pick color",
		"",
		"Files:",
		"  w  save document (JSON)        o  open document",
		"  P  export PNG                  T  export text preview",
		"  y  copy document to clipboard  v  import from clipboard",
		"",
		"  q  quit                        ?  toggle help",
	}
	return strings.Join(helpLines, "\n")
}
