package main

import "math"

// hitTest returns the index of the topmost element under p, or -1.
func (d *Document) hitTest(p Point) int {
	for i := len(d.Elements) - 1; i >= 0; i-- {
		if contains(d.Elements[i].Shape, p) {
			return i
		}
	}
	return -1
}

// contains reports whether p lies on s. Drawings and lines never match, so
// they cannot be picked with the select tool.
func contains(s Shape, p Point) bool {
	switch s := s.(type) {
	case *Rectangle:
		return p.X >= s.X && p.X <= s.X+s.Width &&
			p.Y >= s.Y && p.Y <= s.Y+s.Height
	case *Circle:
		// Inscribed circle, not the ellipse that gets painted.
		cx := s.X + s.Width/2
		cy := s.Y + s.Height/2
		r := math.Min(s.Width, s.Height) / 2
		return math.Hypot(p.X-cx, p.Y-cy) <= r
	case *Label:
		return p.X >= s.X && p.X <= s.X+textHitWidth &&
			p.Y >= s.Y-textHitHeight && p.Y <= s.Y
	}
	return false
}

func corner(x, y, w, h float64, handle Handle) Point {
	switch handle {
	case HandleTopLeft:
		return Point{x, y}
	case HandleTopRight:
		return Point{x + w, y}
	case HandleBottomLeft:
		return Point{x, y + h}
	}
	return Point{x + w, y + h}
}

func opposite(handle Handle) Handle {
	switch handle {
	case HandleTopLeft:
		return HandleBottomRight
	case HandleTopRight:
		return HandleBottomLeft
	case HandleBottomLeft:
		return HandleTopRight
	}
	return HandleTopLeft
}

var handles = []Handle{HandleTopLeft, HandleTopRight, HandleBottomLeft, HandleBottomRight}

// handleAt finds the corner handle zone of a rectangle or circle that holds p.
func handleAt(s Shape, p Point) (Handle, bool) {
	x, y, w, h, ok := bounds(s)
	if !ok {
		return 0, false
	}
	for _, handle := range handles {
		c := corner(x, y, w, h, handle)
		if math.Abs(p.X-c.X) <= handleRadius && math.Abs(p.Y-c.Y) <= handleRadius {
			return handle, true
		}
	}
	return 0, false
}

// resizeTo computes the bounds after dragging handle to p with the opposite
// corner anchor held in place. ok is false when either side would fall
// below minShapeSize.
func resizeTo(handle Handle, anchor, p Point) (x, y, w, h float64, ok bool) {
	switch handle {
	case HandleBottomRight:
		x, y, w, h = anchor.X, anchor.Y, p.X-anchor.X, p.Y-anchor.Y
	case HandleTopLeft:
		x, y, w, h = p.X, p.Y, anchor.X-p.X, anchor.Y-p.Y
	case HandleTopRight:
		x, y, w, h = anchor.X, p.Y, p.X-anchor.X, anchor.Y-p.Y
	case HandleBottomLeft:
		x, y, w, h = p.X, anchor.Y, anchor.X-p.X, p.Y-anchor.Y
	}
	if w < minShapeSize || h < minShapeSize {
		return 0, 0, 0, 0, false
	}
	return x, y, w, h, true
}
