package main

type Tool int

const (
	ToolSelect Tool = iota
	ToolPen
	ToolEraser
	ToolRectangle
	ToolCircle
	ToolText
	ToolLine
)

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolPen:
		return "pen"
	case ToolEraser:
		return "eraser"
	case ToolRectangle:
		return "rectangle"
	case ToolCircle:
		return "circle"
	case ToolText:
		return "text"
	case ToolLine:
		return "line"
	}
	return "unknown"
}

type Kind string

const (
	KindDrawing   Kind = "drawing"
	KindRectangle Kind = "rectangle"
	KindCircle    Kind = "circle"
	KindText      Kind = "text"
	KindLine      Kind = "line"
)

// Handle names a corner resize handle of a rectangle or circle.
type Handle int

const (
	HandleTopLeft Handle = iota
	HandleTopRight
	HandleBottomLeft
	HandleBottomRight
)

type Mode int

const (
	ModeNormal Mode = iota
	ModeTextInput
	ModeFileInput
	ModeConfirm
	ModeSizeInput
)

type FileOperation int

const (
	FileOpSave FileOperation = iota
	FileOpOpen
	FileOpSavePNG
	FileOpSaveVisualTXT
)

const (
	minShapeSize     = 20.0
	handleRadius     = 8.0
	gridSpacing      = 20.0
	textHitWidth     = 100.0
	textHitHeight    = 20.0
	defaultBrushSize = 2.0
	defaultFontSize  = 16.0
	minBrushSize     = 1.0
	maxBrushSize     = 50.0
	minFontSize      = 8.0
	maxFontSize      = 96.0
	defaultColor     = "#000000"
	defaultBg        = "#ffffff"
)

var defaultRectangle = Rectangle{X: 100, Y: 100, Width: 120, Height: 80}
var defaultCircle = Circle{X: 100, Y: 100, Width: 80, Height: 80}

// palette backs the 1-8 color keys in the terminal shell.
var palette = []string{
	"#000000",
	"#e03131",
	"#2f9e44",
	"#1971c2",
	"#f08c00",
	"#9c36b5",
	"#0c8599",
	"#868e96",
}
