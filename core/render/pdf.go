package render

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/animalpage/core"
)

// PDFRenderer lays the animals out as a PDF document, one block per card.
type PDFRenderer struct {
	extended bool
}

// NewPDFRenderer creates a PDFRenderer. With extended set, taxonomy and
// characteristics lines are written after the base lines.
func NewPDFRenderer(extended bool) *PDFRenderer {
	return &PDFRenderer{extended: extended}
}

// Render writes the page title followed by every animal in order.
func (r *PDFRenderer) Render(page core.Page) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts are cp1252; translate so accented names survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if page.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, tr(page.Title), "", "L", false)
		pdf.Ln(4)
	}

	for _, a := range page.Animals {
		if a.Name != nil {
			pdf.SetFont("Helvetica", "B", 13)
			pdf.MultiCell(0, 7, tr(*a.Name), "", "L", false)
		}

		pdf.SetFont("Helvetica", "", 10)
		for _, l := range cardLines(a, r.extended) {
			pdf.MultiCell(0, 5, tr(l.label+": "+l.value), "", "L", false)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}
