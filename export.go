package main

import (
	"fmt"
	"math"
	"os"
)

// exportVisualTXT writes the character preview of the whole canvas to a
// file. Selection and in-progress input are left out.
func (m *model) exportVisualTXT(filename string) error {
	doc := m.editor.ExportDocument()
	if len(doc.Elements) == 0 {
		return fmt.Errorf("nothing to export")
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	snapshot := NewEditor(doc.Width, doc.Height, doc.Background, nil)
	if err := snapshot.ImportDocument(doc); err != nil {
		return err
	}
	rendered := snapshot.Preview(previewOptions{
		cols:  int(math.Ceil(float64(doc.Width)/m.config.CellWidth)) + 1,
		rows:  int(math.Ceil(float64(doc.Height)/m.config.CellHeight)) + 1,
		cellW: m.config.CellWidth,
		cellH: m.config.CellHeight,
	})

	for _, line := range rendered {
		fmt.Fprintln(file, line)
	}
	return file.Close()
}

// exportPNG writes the raster surface, rendered without any selection.
func (m *model) exportPNG(filename string) error {
	doc := m.editor.ExportDocument()
	return renderDocumentPNG(doc, filename)
}

func renderDocumentPNG(doc *Document, filename string) error {
	surface, err := NewSurface(doc.Width, doc.Height)
	if err != nil {
		return err
	}
	snapshot := NewEditor(doc.Width, doc.Height, doc.Background, nil)
	snapshot.AttachSurface(surface)
	if err := snapshot.ImportDocument(doc); err != nil {
		return err
	}
	return surface.SavePNG(filename)
}
