package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		p     Point
		want  bool
	}{
		{"rect inside", &Rectangle{X: 10, Y: 10, Width: 50, Height: 30}, Point{30, 20}, true},
		{"rect edge", &Rectangle{X: 10, Y: 10, Width: 50, Height: 30}, Point{60, 40}, true},
		{"rect outside", &Rectangle{X: 10, Y: 10, Width: 50, Height: 30}, Point{61, 20}, false},
		{"circle center", &Circle{X: 0, Y: 0, Width: 40, Height: 40}, Point{20, 20}, true},
		{"circle corner of box", &Circle{X: 0, Y: 0, Width: 40, Height: 40}, Point{2, 2}, false},
		// Wide ellipse: the inscribed circle has radius 20 around (50,20).
		{"ellipse inside painted but outside inscribed", &Circle{X: 0, Y: 0, Width: 100, Height: 40}, Point{85, 20}, false},
		{"ellipse inside inscribed", &Circle{X: 0, Y: 0, Width: 100, Height: 40}, Point{65, 20}, true},
		{"label box", &Label{X: 10, Y: 50, Content: "a much longer label than the box", FontSize: 16}, Point{100, 40}, true},
		{"label past fixed width", &Label{X: 10, Y: 50, Content: "a much longer label than the box", FontSize: 16}, Point{150, 40}, false},
		{"label below baseline", &Label{X: 10, Y: 50, Content: "x", FontSize: 16}, Point{20, 55}, false},
		{"line", &Line{From: Point{0, 0}, To: Point{100, 100}}, Point{50, 50}, false},
		{"drawing", &Drawing{Points: []Point{{0, 0}, {10, 10}}}, Point{0, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, contains(tt.shape, tt.p))
		})
	}
}

func TestHitTest_ReverseCreationOrder(t *testing.T) {
	doc := NewDocument(800, 600, "#ffffff")
	doc.Elements = []Element{
		{ID: 1, Shape: &Rectangle{X: 0, Y: 0, Width: 100, Height: 100}},
		{ID: 2, Shape: &Rectangle{X: 50, Y: 50, Width: 100, Height: 100}},
		{ID: 3, Shape: &Line{From: Point{0, 75}, To: Point{200, 75}}},
	}
	assert.Equal(t, 1, doc.hitTest(Point{75, 75}))
	assert.Equal(t, 0, doc.hitTest(Point{25, 25}))
	assert.Equal(t, -1, doc.hitTest(Point{300, 300}))
}

func TestHandleAt(t *testing.T) {
	r := &Rectangle{X: 100, Y: 100, Width: 120, Height: 80}
	tests := []struct {
		p      Point
		want   Handle
		wantOK bool
	}{
		{Point{100, 100}, HandleTopLeft, true},
		{Point{226, 94}, HandleTopRight, true},
		{Point{95, 185}, HandleBottomLeft, true},
		{Point{220, 180}, HandleBottomRight, true},
		{Point{160, 140}, 0, false},
		{Point{229, 180}, 0, false},
	}
	for _, tt := range tests {
		got, ok := handleAt(r, tt.p)
		assert.Equal(t, tt.wantOK, ok, "%v", tt.p)
		if tt.wantOK {
			assert.Equal(t, tt.want, got, "%v", tt.p)
		}
	}

	_, ok := handleAt(&Label{X: 0, Y: 0}, Point{0, 0})
	assert.False(t, ok, "labels have no handles")
}

func TestResizeTo_Floor(t *testing.T) {
	_, _, _, _, ok := resizeTo(HandleBottomRight, Point{0, 0}, Point{20, 20})
	assert.True(t, ok)
	_, _, _, _, ok = resizeTo(HandleBottomRight, Point{0, 0}, Point{19.5, 40})
	assert.False(t, ok)
	_, _, _, _, ok = resizeTo(HandleTopLeft, Point{100, 100}, Point{150, 50})
	assert.False(t, ok, "dragging past the anchor flips the size negative")
}
