// Package export renders tracker content as downloadable PDF documents.
package export

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
)

// RecordPDF renders a single block of text as an A4 PDF. The built-in fonts
// only cover Latin-1, so runes outside that range are substituted with '?'
// rather than failing the export.
func RecordPDF(content string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Arial", "", 11)
	doc.MultiCell(0, 10, toLatin1(content), "", "L", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toLatin1(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r > 0xFF {
			b.WriteByte('?')
			continue
		}
		b.WriteByte(byte(r))
	}
	return b.String()
}
