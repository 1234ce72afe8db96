package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// previewOptions controls how the document is drawn as a character grid.
type previewOptions struct {
	cols, rows   int
	cellW, cellH float64 // canvas units per terminal cell
	inputText    string  // text being typed at the open text anchor
	colored      bool
}

type cellGrid struct {
	runes  [][]rune
	colors [][]string
}

func newCellGrid(cols, rows int) *cellGrid {
	g := &cellGrid{
		runes:  make([][]rune, rows),
		colors: make([][]string, rows),
	}
	for i := range g.runes {
		g.runes[i] = make([]rune, cols)
		g.colors[i] = make([]string, cols)
		for j := range g.runes[i] {
			g.runes[i][j] = ' '
		}
	}
	return g
}

func (g *cellGrid) set(x, y int, r rune, color string) {
	if y < 0 || y >= len(g.runes) || x < 0 || x >= len(g.runes[y]) {
		return
	}
	g.runes[y][x] = r
	g.colors[y][x] = color
}

// line plots a Bresenham run between two cells.
func (g *cellGrid) line(x0, y0, x1, y1 int, r rune, color string) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		g.set(x0, y0, r, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (g *cellGrid) box(x0, y0, x1, y1 int, selected bool, color string) {
	corner, horizontal, vertical := '+', '-', '|'
	if selected {
		corner, horizontal, vertical = '#', '#', '#'
	}
	for x := x0; x <= x1; x++ {
		g.set(x, y0, horizontal, color)
		g.set(x, y1, horizontal, color)
	}
	for y := y0; y <= y1; y++ {
		g.set(x0, y, vertical, color)
		g.set(x1, y, vertical, color)
	}
	g.set(x0, y0, corner, color)
	g.set(x1, y0, corner, color)
	g.set(x0, y1, corner, color)
	g.set(x1, y1, corner, color)
}

func (g *cellGrid) text(x, y int, s string, color string) {
	for i, r := range []rune(s) {
		g.set(x+i, y, r, color)
	}
}

func (g *cellGrid) lines(colored bool) []string {
	out := make([]string, len(g.runes))
	for i, row := range g.runes {
		if !colored {
			out[i] = string(row)
			continue
		}
		var b strings.Builder
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && g.colors[i][j] == g.colors[i][start] {
				continue
			}
			run := string(row[start:j])
			if c := g.colors[i][start]; c != "" {
				run = lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(run)
			}
			b.WriteString(run)
			start = j
		}
		out[i] = b.String()
	}
	return out
}

// Preview draws the document as a character grid for the terminal.
func (e *Editor) Preview(opts previewOptions) []string {
	if opts.rows < 1 {
		opts.rows = 1
	}
	if opts.cols < 1 {
		opts.cols = 1
	}
	g := newCellGrid(opts.cols, opts.rows)
	cell := func(p Point) (int, int) {
		return int(math.Floor(p.X / opts.cellW)), int(math.Floor(p.Y / opts.cellH))
	}

	for _, el := range e.doc.Elements {
		selected := e.IsSelected(el.ID)
		switch sh := el.Shape.(type) {
		case *Drawing:
			r := '.'
			if sh.Erase {
				r = ' '
			}
			drawCellPath(g, sh.Points, cell, r, el.Color)
		case *Rectangle:
			x0, y0 := cell(Point{sh.X, sh.Y})
			x1, y1 := cell(Point{sh.X + sh.Width, sh.Y + sh.Height})
			g.box(x0, y0, x1, y1, selected, el.Color)
		case *Circle:
			r := 'o'
			if selected {
				r = '#'
			}
			cx, cy := sh.X+sh.Width/2, sh.Y+sh.Height/2
			for step := 0; step < 72; step++ {
				a := float64(step) * math.Pi / 36
				x, y := cell(Point{cx + math.Cos(a)*sh.Width/2, cy + math.Sin(a)*sh.Height/2})
				g.set(x, y, r, el.Color)
			}
		case *Label:
			x, y := cell(Point{sh.X, sh.Y - 1})
			g.text(x, y, sh.Content, el.Color)
			if selected {
				g.set(x-1, y, '>', selectionHex)
			}
		case *Line:
			x0, y0 := cell(sh.From)
			x1, y1 := cell(sh.To)
			g.line(x0, y0, x1, y1, '*', el.Color)
		}
		if selected && resizable(el.Shape) {
			x, y, w, h, _ := bounds(el.Shape)
			for _, handle := range handles {
				cx, cy := cell(corner(x, y, w, h, handle))
				g.set(cx, cy, '■', selectionHex)
			}
		}
	}

	switch it := e.interaction.(type) {
	case *stroking:
		r := '.'
		if it.erase {
			r = ' '
		}
		drawCellPath(g, it.path, cell, r, e.color)
	case *lining:
		x0, y0 := cell(it.from)
		x1, y1 := cell(it.to)
		g.line(x0, y0, x1, y1, '*', e.color)
	}

	if anchor, ok := e.TextAnchor(); ok {
		x, y := cell(Point{anchor.X, anchor.Y - 1})
		g.text(x, y, opts.inputText, e.color)
		g.set(x+len([]rune(opts.inputText)), y, '█', "")
	}

	return g.lines(opts.colored)
}

const selectionHex = "#228be6"

func drawCellPath(g *cellGrid, points []Point, cell func(Point) (int, int), r rune, color string) {
	if len(points) == 0 {
		return
	}
	px, py := cell(points[0])
	g.set(px, py, r, color)
	for _, p := range points[1:] {
		x, y := cell(p)
		g.line(px, py, x, y, r, color)
		px, py = x, y
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
