package main

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	gridColor      = color.RGBA{0xe9, 0xec, 0xef, 0xff}
	selectionColor = color.RGBA{0x22, 0x8b, 0xe6, 0xff}
	overlayColor   = color.NRGBA{0x22, 0x8b, 0xe6, 0x33}
)

// Surface is a fixed-resolution raster the editor paints into.
type Surface struct {
	dc    *gg.Context
	font  *truetype.Font
	faces map[float64]font.Face
}

func NewSurface(width, height int) (*Surface, error) {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	return &Surface{
		dc:    gg.NewContext(width, height),
		font:  ttf,
		faces: make(map[float64]font.Face),
	}, nil
}

func (s *Surface) Width() int  { return s.dc.Width() }
func (s *Surface) Height() int { return s.dc.Height() }

// Resize drops the current raster and starts a blank one.
func (s *Surface) Resize(width, height int) {
	s.dc = gg.NewContext(width, height)
}

func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

func (s *Surface) SavePNG(filename string) error {
	return s.dc.SavePNG(filename)
}

func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

func (s *Surface) face(size float64) font.Face {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(s.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	s.faces[size] = f
	return f
}

// Render repaints the whole surface: background, grid, then every element
// in creation order, then any stroke or line still under the pointer.
func (e *Editor) Render(s *Surface) {
	dc := s.dc
	bg := parseColor(e.doc.Background, color.White)
	dc.SetDash()
	dc.SetColor(bg)
	dc.Clear()
	drawGrid(dc)

	for _, el := range e.doc.Elements {
		drawElement(dc, s, el, bg)
		if e.IsSelected(el.ID) {
			drawSelection(dc, el)
		}
	}

	switch it := e.interaction.(type) {
	case *stroking:
		c := parseColor(e.color, color.Black)
		if it.erase {
			c = bg
		}
		drawPath(dc, it.path, e.brushSize, c)
	case *lining:
		dc.SetColor(parseColor(e.color, color.Black))
		dc.SetLineWidth(2)
		dc.DrawLine(it.from.X, it.from.Y, it.to.X, it.to.Y)
		dc.Stroke()
	}
}

func drawGrid(dc *gg.Context) {
	w := float64(dc.Width())
	h := float64(dc.Height())
	dc.SetColor(gridColor)
	dc.SetLineWidth(1)
	for x := 0.0; x <= w; x += gridSpacing {
		dc.DrawLine(x, 0, x, h)
	}
	for y := 0.0; y <= h; y += gridSpacing {
		dc.DrawLine(0, y, w, y)
	}
	dc.Stroke()
}

func drawElement(dc *gg.Context, s *Surface, el Element, bg color.Color) {
	c := parseColor(el.Color, color.Black)
	switch sh := el.Shape.(type) {
	case *Drawing:
		if sh.Erase {
			c = bg
		}
		drawPath(dc, sh.Points, sh.Size, c)
	case *Rectangle:
		dc.SetColor(c)
		dc.SetLineWidth(2)
		dc.DrawRectangle(sh.X, sh.Y, sh.Width, sh.Height)
		dc.Stroke()
	case *Circle:
		dc.SetColor(c)
		dc.SetLineWidth(2)
		dc.DrawEllipse(sh.X+sh.Width/2, sh.Y+sh.Height/2, sh.Width/2, sh.Height/2)
		dc.Stroke()
	case *Label:
		dc.SetColor(c)
		dc.SetFontFace(s.face(sh.FontSize))
		dc.DrawString(sh.Content, sh.X, sh.Y)
	case *Line:
		dc.SetColor(c)
		dc.SetLineWidth(2)
		dc.DrawLine(sh.From.X, sh.From.Y, sh.To.X, sh.To.Y)
		dc.Stroke()
	}
}

func drawPath(dc *gg.Context, points []Point, size float64, c color.Color) {
	if len(points) == 0 {
		return
	}
	dc.SetColor(c)
	if len(points) == 1 {
		dc.DrawCircle(points[0].X, points[0].Y, math.Max(size/2, 0.5))
		dc.Fill()
		return
	}
	dc.SetLineWidth(size)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.Stroke()
}

// drawSelection paints the dashed outline and translucent overlay of the
// selected element, plus corner handles for rectangles and circles.
func drawSelection(dc *gg.Context, el Element) {
	var x, y, w, h float64
	switch sh := el.Shape.(type) {
	case *Rectangle, *Circle:
		x, y, w, h, _ = bounds(sh)
	case *Label:
		x, y, w, h = sh.X, sh.Y-textHitHeight, textHitWidth, textHitHeight
	default:
		return
	}

	dc.SetColor(overlayColor)
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()

	dc.SetColor(selectionColor)
	dc.SetLineWidth(1)
	dc.SetDash(5, 5)
	dc.DrawRectangle(x-2, y-2, w+4, h+4)
	dc.Stroke()
	dc.SetDash()

	if !resizable(el.Shape) {
		return
	}
	for _, handle := range handles {
		c := corner(x, y, w, h, handle)
		dc.DrawRectangle(c.X-handleRadius/2, c.Y-handleRadius/2, handleRadius, handleRadius)
	}
	dc.Fill()
}

func parseColor(hex string, fallback color.Color) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return c
}
