package main

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Shape is the geometry of one element. The concrete types are Drawing,
// Rectangle, Circle, Label and Line.
type Shape interface {
	Kind() Kind
	clone() Shape
}

// Drawing is a committed freehand stroke. Erase strokes paint in the
// document background color.
type Drawing struct {
	Points []Point
	Size   float64
	Erase  bool
}

type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

type Circle struct {
	X, Y          float64
	Width, Height float64
}

// Label is a text element. X,Y is the left end of the baseline.
type Label struct {
	X, Y     float64
	Content  string
	FontSize float64
}

type Line struct {
	From, To Point
}

func (*Drawing) Kind() Kind   { return KindDrawing }
func (*Rectangle) Kind() Kind { return KindRectangle }
func (*Circle) Kind() Kind    { return KindCircle }
func (*Label) Kind() Kind     { return KindText }
func (*Line) Kind() Kind      { return KindLine }

func (d *Drawing) clone() Shape {
	c := *d
	c.Points = append([]Point(nil), d.Points...)
	return &c
}

func (r *Rectangle) clone() Shape { c := *r; return &c }
func (c *Circle) clone() Shape    { n := *c; return &n }
func (l *Label) clone() Shape     { c := *l; return &c }
func (l *Line) clone() Shape      { c := *l; return &c }

// bounds returns origin and size for the kinds that have them.
func bounds(s Shape) (x, y, w, h float64, ok bool) {
	switch s := s.(type) {
	case *Rectangle:
		return s.X, s.Y, s.Width, s.Height, true
	case *Circle:
		return s.X, s.Y, s.Width, s.Height, true
	}
	return 0, 0, 0, 0, false
}

func setBounds(s Shape, x, y, w, h float64) {
	switch s := s.(type) {
	case *Rectangle:
		s.X, s.Y, s.Width, s.Height = x, y, w, h
	case *Circle:
		s.X, s.Y, s.Width, s.Height = x, y, w, h
	}
}

// origin returns the movable anchor of a shape. Drawings and lines have none.
func origin(s Shape) (Point, bool) {
	switch s := s.(type) {
	case *Rectangle:
		return Point{s.X, s.Y}, true
	case *Circle:
		return Point{s.X, s.Y}, true
	case *Label:
		return Point{s.X, s.Y}, true
	}
	return Point{}, false
}

func setOrigin(s Shape, p Point) {
	switch s := s.(type) {
	case *Rectangle:
		s.X, s.Y = p.X, p.Y
	case *Circle:
		s.X, s.Y = p.X, p.Y
	case *Label:
		s.X, s.Y = p.X, p.Y
	}
}

func resizable(s Shape) bool {
	_, _, _, _, ok := bounds(s)
	return ok
}

type Element struct {
	ID    int64
	Color string
	Shape Shape
}

func (e Element) Kind() Kind {
	return e.Shape.Kind()
}

func (e Element) clone() Element {
	e.Shape = e.Shape.clone()
	return e
}

// Document is the unit of export and import.
type Document struct {
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Background string    `json:"background"`
	Elements   []Element `json:"elements"`
}

func NewDocument(width, height int, background string) *Document {
	return &Document{
		Width:      width,
		Height:     height,
		Background: background,
		Elements:   make([]Element, 0),
	}
}

func (d *Document) Clone() *Document {
	c := *d
	c.Elements = make([]Element, len(d.Elements))
	for i, el := range d.Elements {
		c.Elements[i] = el.clone()
	}
	return &c
}

func (d *Document) indexOf(id int64) int {
	for i, el := range d.Elements {
		if el.ID == id {
			return i
		}
	}
	return -1
}
