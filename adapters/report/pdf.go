package report

import (
	"io"

	"github.com/go-pdf/fpdf"

	"watermetal/domain/risk"
)

// WritePDF renders the report body as a PDF.
func WritePDF(w io.Writer, bundle *risk.Bundle) error {
	body := BuildBody(bundle)

	pdf := fpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; the title carries an en dash.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(body.Title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, section := range body.Sections {
		pdf.SetFont("Arial", "B", 13)
		pdf.CellFormat(0, 8, tr(section.Heading), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		for _, line := range section.Lines {
			pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	return pdf.Output(w)
}
