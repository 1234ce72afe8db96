package main

import (
	"fmt"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"
)

// interaction is the transient pointer state between PointerDown and
// PointerUp. A nil interaction means the pointer is idle.
type interaction interface {
	isInteraction()
}

type dragging struct {
	offset Point
}

type resizing struct {
	handle Handle
	anchor Point // opposite corner, fixed while resizing
	offset Point // pointer minus grabbed corner at press time
}

type stroking struct {
	path  []Point
	erase bool
}

type lining struct {
	from, to Point
}

func (dragging) isInteraction()  {}
func (resizing) isInteraction()  {}
func (*stroking) isInteraction() {}
func (*lining) isInteraction()   {}

// Editor owns one document and applies pointer and tool input to it.
type Editor struct {
	doc         *Document
	tool        Tool
	selected    int64
	interaction interaction
	textAnchor  *Point
	brushSize   float64
	fontSize    float64
	color       string
	nextID      int64
	surface     *Surface
	log         *zap.Logger
}

func NewEditor(width, height int, background string, log *zap.Logger) *Editor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Editor{
		doc:       NewDocument(width, height, background),
		tool:      ToolSelect,
		brushSize: defaultBrushSize,
		fontSize:  defaultFontSize,
		color:     defaultColor,
		nextID:    1,
		log:       log,
	}
}

// AttachSurface makes every state change repaint s. The surface is resized
// to the document if needed.
func (e *Editor) AttachSurface(s *Surface) {
	e.surface = s
	e.fitSurface()
	e.changed()
}

func (e *Editor) fitSurface() {
	if e.surface == nil {
		return
	}
	if e.surface.Width() != e.doc.Width || e.surface.Height() != e.doc.Height {
		e.surface.Resize(e.doc.Width, e.doc.Height)
	}
}

func (e *Editor) changed() {
	if e.surface != nil {
		e.Render(e.surface)
	}
}

func (e *Editor) Tool() Tool          { return e.tool }
func (e *Editor) Color() string       { return e.color }
func (e *Editor) BrushSize() float64  { return e.brushSize }
func (e *Editor) FontSize() float64   { return e.fontSize }
func (e *Editor) Document() *Document { return e.doc }

// SetTool switches the interaction mode. Existing elements are untouched.
func (e *Editor) SetTool(t Tool) {
	e.tool = t
}

func (e *Editor) SetColor(hex string) error {
	if _, err := colorful.Hex(hex); err != nil {
		return fmt.Errorf("invalid color %q", hex)
	}
	e.color = hex
	return nil
}

func (e *Editor) SetBrushSize(size float64) {
	e.brushSize = clamp(size, minBrushSize, maxBrushSize)
}

func (e *Editor) SetFontSize(size float64) {
	e.fontSize = clamp(size, minFontSize, maxFontSize)
}

// Selected returns the selected element, if any.
func (e *Editor) Selected() (Element, bool) {
	if e.selected == 0 {
		return Element{}, false
	}
	if i := e.doc.indexOf(e.selected); i >= 0 {
		return e.doc.Elements[i], true
	}
	return Element{}, false
}

func (e *Editor) IsSelected(id int64) bool {
	return id != 0 && id == e.selected
}

// Pending returns the in-progress pen or line path, nil when idle.
func (e *Editor) Pending() []Point {
	switch it := e.interaction.(type) {
	case *stroking:
		return it.path
	case *lining:
		return []Point{it.from, it.to}
	}
	return nil
}

// TextAnchor returns where a text prompt is open, if one is.
func (e *Editor) TextAnchor() (Point, bool) {
	if e.textAnchor == nil {
		return Point{}, false
	}
	return *e.textAnchor, true
}

func (e *Editor) Dragging() bool {
	_, ok := e.interaction.(dragging)
	return ok
}

func (e *Editor) Resizing() bool {
	_, ok := e.interaction.(resizing)
	return ok
}

func (e *Editor) PointerDown(pos Point) {
	switch e.tool {
	case ToolSelect:
		e.pick(pos)
	case ToolPen, ToolEraser:
		e.interaction = &stroking{path: []Point{pos}, erase: e.tool == ToolEraser}
	case ToolLine:
		e.interaction = &lining{from: pos, to: pos}
	case ToolText:
		anchor := pos
		e.textAnchor = &anchor
	case ToolRectangle:
		r := defaultRectangle
		r.X, r.Y = pos.X, pos.Y
		e.add(&r)
	case ToolCircle:
		c := defaultCircle
		c.X, c.Y = pos.X, pos.Y
		e.add(&c)
	}
	e.changed()
}

func (e *Editor) pick(pos Point) {
	e.interaction = nil

	// Handle zones extend past the shape edge, so the current selection
	// gets the first look.
	if sel, ok := e.Selected(); ok {
		if handle, ok := handleAt(sel.Shape, pos); ok {
			e.beginResize(sel, handle, pos)
			return
		}
	}

	i := e.doc.hitTest(pos)
	if i < 0 {
		e.selected = 0
		return
	}
	el := e.doc.Elements[i]
	e.selected = el.ID
	if handle, ok := handleAt(el.Shape, pos); ok {
		e.beginResize(el, handle, pos)
		return
	}
	if o, ok := origin(el.Shape); ok {
		e.interaction = dragging{offset: pos.Sub(o)}
	}
}

func (e *Editor) beginResize(el Element, handle Handle, pos Point) {
	x, y, w, h, _ := bounds(el.Shape)
	grabbed := corner(x, y, w, h, handle)
	e.interaction = resizing{
		handle: handle,
		anchor: corner(x, y, w, h, opposite(handle)),
		offset: pos.Sub(grabbed),
	}
}

func (e *Editor) PointerMove(pos Point) {
	switch it := e.interaction.(type) {
	case dragging:
		if sel := e.selectedShape(); sel != nil {
			setOrigin(sel, pos.Sub(it.offset))
		}
	case resizing:
		sel := e.selectedShape()
		if sel == nil {
			return
		}
		x, y, w, h, ok := resizeTo(it.handle, it.anchor, pos.Sub(it.offset))
		if !ok {
			return
		}
		setBounds(sel, x, y, w, h)
	case *stroking:
		it.path = append(it.path, pos)
	case *lining:
		it.to = pos
	default:
		return
	}
	e.changed()
}

func (e *Editor) PointerUp(pos Point) {
	switch it := e.interaction.(type) {
	case *stroking:
		path := it.path
		if last := path[len(path)-1]; last != pos {
			path = append(path, pos)
		}
		e.add(&Drawing{Points: path, Size: e.brushSize, Erase: it.erase})
	case *lining:
		e.add(&Line{From: it.from, To: pos})
	}
	e.interaction = nil
	e.changed()
}

func (e *Editor) selectedShape() Shape {
	if i := e.doc.indexOf(e.selected); i >= 0 {
		return e.doc.Elements[i].Shape
	}
	return nil
}

func (e *Editor) add(s Shape) int64 {
	el := Element{ID: e.nextID, Color: e.color, Shape: s}
	e.nextID++
	e.doc.Elements = append(e.doc.Elements, el)
	e.log.Debug("element added", zap.Int64("id", el.ID), zap.String("kind", string(s.Kind())))
	return el.ID
}

// AddShape appends a default rectangle or circle, unselected.
func (e *Editor) AddShape(kind Kind) (int64, error) {
	var id int64
	switch kind {
	case KindRectangle:
		r := defaultRectangle
		id = e.add(&r)
	case KindCircle:
		c := defaultCircle
		id = e.add(&c)
	default:
		return 0, fmt.Errorf("cannot add shape of kind %q", kind)
	}
	e.changed()
	return id, nil
}

// ConfirmText commits a label at the open text anchor. Empty content
// discards the prompt.
func (e *Editor) ConfirmText(content string) {
	if e.textAnchor == nil {
		return
	}
	anchor := *e.textAnchor
	e.textAnchor = nil
	if content != "" {
		e.add(&Label{X: anchor.X, Y: anchor.Y, Content: content, FontSize: e.fontSize})
	}
	e.changed()
}

func (e *Editor) CancelText() {
	e.textAnchor = nil
}

func (e *Editor) DeleteSelected() {
	i := e.doc.indexOf(e.selected)
	if i < 0 {
		return
	}
	id := e.selected
	e.doc.Elements = append(e.doc.Elements[:i], e.doc.Elements[i+1:]...)
	e.selected = 0
	e.interaction = nil
	e.log.Debug("element deleted", zap.Int64("id", id))
	e.changed()
}

func (e *Editor) Clear() {
	e.doc.Elements = e.doc.Elements[:0]
	e.selected = 0
	e.interaction = nil
	e.textAnchor = nil
	e.log.Debug("canvas cleared")
	e.changed()
}

// Nudge moves the selected shape or label by a fixed delta.
func (e *Editor) Nudge(dx, dy float64) {
	sel := e.selectedShape()
	if sel == nil {
		return
	}
	if o, ok := origin(sel); ok {
		setOrigin(sel, o.Add(Point{dx, dy}))
		e.changed()
	}
}

// ExportDocument returns a deep copy of the current document.
func (e *Editor) ExportDocument() *Document {
	return e.doc.Clone()
}

// ImportDocument replaces the whole editor state with doc. On error the
// current state is kept.
func (e *Editor) ImportDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: nil document", ErrMalformedDocument)
	}
	if err := validateDocument(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	next := doc.Clone()
	var maxID int64
	for _, el := range next.Elements {
		if el.ID > maxID {
			maxID = el.ID
		}
	}
	e.doc = next
	e.nextID = maxID + 1
	e.selected = 0
	e.interaction = nil
	e.textAnchor = nil
	e.fitSurface()
	e.log.Debug("document imported",
		zap.Int("elements", len(next.Elements)),
		zap.Int("width", next.Width),
		zap.Int("height", next.Height))
	e.changed()
	return nil
}

// ImportFrom decodes r and imports the result.
func (e *Editor) ImportFrom(r io.Reader) error {
	doc, err := DecodeDocument(r)
	if err != nil {
		e.log.Warn("import rejected", zap.Error(err))
		return err
	}
	return e.ImportDocument(doc)
}

// Resize reinitializes the canvas at new dimensions, dropping all elements.
func (e *Editor) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	e.doc = NewDocument(width, height, e.doc.Background)
	e.selected = 0
	e.interaction = nil
	e.textAnchor = nil
	e.fitSurface()
	e.changed()
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
