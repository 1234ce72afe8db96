package main

import (
	"bytes"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

// cleanClipboardText drops control characters other than whitespace and
// normalizes line endings. Some terminals paste JSON with stray \r or NULs.
func cleanClipboardText(text string) string {
	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' || r >= 32 {
			result.WriteRune(r)
		}
	}
	normalized := result.String()
	normalized = strings.ReplaceAll(normalized, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return normalized
}

// copyDocument puts the exported document JSON on the system clipboard.
func (m *model) copyDocument() error {
	var buf bytes.Buffer
	if err := EncodeDocument(&buf, m.editor.ExportDocument()); err != nil {
		return err
	}
	return clipboard.WriteAll(buf.String())
}

// pasteDocument imports a document from the clipboard. A malformed
// document leaves the canvas as it was.
func (m *model) pasteDocument() error {
	text, err := readClipboardText()
	if err != nil {
		return err
	}
	return m.editor.ImportFrom(strings.NewReader(cleanClipboardText(text)))
}
