package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrMalformedDocument = errors.New("malformed document")

// elementJSON is the flat wire form of an Element. Type selects which of the
// optional fields are meaningful.
type elementJSON struct {
	ID       int64   `json:"id"`
	Type     Kind    `json:"type"`
	Color    string  `json:"color"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Points   []Point `json:"points,omitempty"`
	Size     float64 `json:"size,omitempty"`
	Erase    bool    `json:"erase,omitempty"`
	Text     string  `json:"text,omitempty"`
	FontSize float64 `json:"fontSize,omitempty"`
}

func (e Element) MarshalJSON() ([]byte, error) {
	w := elementJSON{ID: e.ID, Color: e.Color}
	switch s := e.Shape.(type) {
	case *Drawing:
		w.Type = KindDrawing
		w.Points = s.Points
		w.Size = s.Size
		w.Erase = s.Erase
	case *Rectangle:
		w.Type = KindRectangle
		w.X, w.Y, w.Width, w.Height = s.X, s.Y, s.Width, s.Height
	case *Circle:
		w.Type = KindCircle
		w.X, w.Y, w.Width, w.Height = s.X, s.Y, s.Width, s.Height
	case *Label:
		w.Type = KindText
		w.X, w.Y = s.X, s.Y
		w.Text = s.Content
		w.FontSize = s.FontSize
	case *Line:
		w.Type = KindLine
		w.Points = []Point{s.From, s.To}
	default:
		return nil, fmt.Errorf("element %d has no shape", e.ID)
	}
	return json.Marshal(w)
}

func (e *Element) UnmarshalJSON(data []byte) error {
	var w elementJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	e.ID = w.ID
	e.Color = w.Color
	switch w.Type {
	case KindDrawing:
		e.Shape = &Drawing{Points: w.Points, Size: w.Size, Erase: w.Erase}
	case KindRectangle:
		e.Shape = &Rectangle{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height}
	case KindCircle:
		e.Shape = &Circle{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height}
	case KindText:
		e.Shape = &Label{X: w.X, Y: w.Y, Content: w.Text, FontSize: w.FontSize}
	case KindLine:
		if len(w.Points) != 2 {
			return fmt.Errorf("line %d needs exactly 2 points, got %d", w.ID, len(w.Points))
		}
		e.Shape = &Line{From: w.Points[0], To: w.Points[1]}
	default:
		return fmt.Errorf("element %d has unknown type %q", w.ID, w.Type)
	}
	return nil
}

func EncodeDocument(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// DecodeDocument parses and validates a document. Any failure wraps
// ErrMalformedDocument and no partial document is returned.
func DecodeDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if err := validateDocument(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if doc.Elements == nil {
		doc.Elements = make([]Element, 0)
	}
	return &doc, nil
}

func validateDocument(doc *Document) error {
	if doc.Width <= 0 || doc.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", doc.Width, doc.Height)
	}
	if _, err := colorful.Hex(doc.Background); err != nil {
		return fmt.Errorf("invalid background %q", doc.Background)
	}
	seen := make(map[int64]bool, len(doc.Elements))
	for _, el := range doc.Elements {
		if el.ID <= 0 {
			return fmt.Errorf("invalid element id %d", el.ID)
		}
		if seen[el.ID] {
			return fmt.Errorf("duplicate element id %d", el.ID)
		}
		seen[el.ID] = true
		if _, err := colorful.Hex(el.Color); err != nil {
			return fmt.Errorf("element %d has invalid color %q", el.ID, el.Color)
		}
		if err := validateShape(el.ID, el.Shape); err != nil {
			return err
		}
	}
	return nil
}

// validateShape checks the geometry of a single element. Decoded and
// programmatically built documents go through the same checks.
func validateShape(id int64, s Shape) error {
	switch s := s.(type) {
	case nil:
		return fmt.Errorf("element %d has no shape", id)
	case *Drawing:
		if len(s.Points) == 0 {
			return fmt.Errorf("drawing %d has no points", id)
		}
	case *Rectangle:
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("rectangle %d has non-positive size", id)
		}
	case *Circle:
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("circle %d has non-positive size", id)
		}
	case *Label:
		if s.FontSize <= 0 {
			return fmt.Errorf("text %d has non-positive font size", id)
		}
	}
	return nil
}

func SaveDocument(filename string, doc *Document) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := EncodeDocument(file, doc); err != nil {
		return err
	}
	return file.Close()
}

func LoadDocument(filename string) (*Document, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return DecodeDocument(file)
}
