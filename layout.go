package main

import (
	"fmt"
	"sort"
	"strings"
)

type Region string

const (
	RegionHeader  Region = "header"
	RegionNav     Region = "nav"
	RegionSidebar Region = "sidebar"
	RegionContent Region = "content"
	RegionFooter  Region = "footer"
)

// Fractions of the canvas used to classify elements by position.
const (
	headerBand   = 0.15
	navBand      = 0.25
	navMinWidth  = 0.60
	sidebarBand  = 0.20
	sidebarTall  = 0.40
	footerCutoff = 0.85
)

// LayoutSummary is the coarse description handed to the design generator.
type LayoutSummary struct {
	Counts  map[Kind]int
	Regions map[Region][]int64
	Labels  map[Region][]string
}

// DescribeLayout buckets every element into a region from where it sits on
// the canvas. It only looks at positions and sizes.
func DescribeLayout(doc *Document) LayoutSummary {
	sum := LayoutSummary{
		Counts:  make(map[Kind]int),
		Regions: make(map[Region][]int64),
		Labels:  make(map[Region][]string),
	}
	w := float64(doc.Width)
	h := float64(doc.Height)
	for _, el := range doc.Elements {
		sum.Counts[el.Kind()]++
		region := classify(el.Shape, w, h)
		sum.Regions[region] = append(sum.Regions[region], el.ID)
		if l, ok := el.Shape.(*Label); ok {
			sum.Labels[region] = append(sum.Labels[region], l.Content)
		}
	}
	return sum
}

func classify(s Shape, w, h float64) Region {
	x, y, sw, sh := extent(s)
	switch {
	case y < h*headerBand:
		return RegionHeader
	case y >= h*footerCutoff:
		return RegionFooter
	case y < h*navBand && sw >= w*navMinWidth:
		return RegionNav
	case x < w*sidebarBand && sh > h*sidebarTall:
		return RegionSidebar
	}
	return RegionContent
}

// extent is the top-left corner and size of any shape.
func extent(s Shape) (x, y, w, h float64) {
	switch s := s.(type) {
	case *Rectangle:
		return s.X, s.Y, s.Width, s.Height
	case *Circle:
		return s.X, s.Y, s.Width, s.Height
	case *Label:
		return s.X, s.Y - textHitHeight, textHitWidth, textHitHeight
	case *Line:
		return pointsExtent([]Point{s.From, s.To})
	case *Drawing:
		return pointsExtent(s.Points)
	}
	return 0, 0, 0, 0
}

func pointsExtent(points []Point) (x, y, w, h float64) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return minX, minY, maxX - minX, maxY - minY
}

var regionOrder = []Region{RegionHeader, RegionNav, RegionSidebar, RegionContent, RegionFooter}

// Prompt renders the summary as a few plain lines of layout hints.
func (s LayoutSummary) Prompt() string {
	var b strings.Builder
	kinds := make([]string, 0, len(s.Counts))
	for k, n := range s.Counts {
		kinds = append(kinds, fmt.Sprintf("%d %s", n, k))
	}
	sort.Strings(kinds)
	if len(kinds) == 0 {
		b.WriteString("Wireframe is empty.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "Wireframe elements: %s.\n", strings.Join(kinds, ", "))
	for _, r := range regionOrder {
		ids := s.Regions[r]
		if len(ids) == 0 {
			continue
		}
		fmt.Fprintf(&b, "- %s: %d element(s)", r, len(ids))
		if labels := s.Labels[r]; len(labels) > 0 {
			fmt.Fprintf(&b, " labelled %q", strings.Join(labels, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}
