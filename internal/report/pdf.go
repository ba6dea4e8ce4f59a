package report

import (
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// PDFContentType is the MIME type of PDF documents.
const PDFContentType = "application/pdf"

const (
	pdfFont       = "Helvetica"
	pdfLineHeight = 6.0
)

// WritePDF renders the table as a landscape A4 PDF document.
func WritePDF(w io.Writer, t Table) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(t.Header.Title, true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// The core fonts are cp1252 encoded
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	widths := columnWidths(t.Columns, pageWidth-left-right)

	pdf.SetFont(pdfFont, "B", 13)
	for _, line := range []string{t.Header.AppName, t.Header.Title, t.Header.Period} {
		if line == "" {
			continue
		}
		pdf.CellFormat(0, 7, tr(line), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	header := func() {
		pdf.SetFont(pdfFont, "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for i, c := range t.Columns {
			pdf.CellFormat(widths[i], pdfLineHeight, tr(c.Title), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	header()

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()

	rows := func(rows []Row, style string) {
		pdf.SetFont(pdfFont, style, 9)
		for _, r := range rows {
			// Repeat the column titles on every page
			if pdf.GetY()+pdfLineHeight > pageHeight-bottom-15 {
				pdf.AddPage()
				header()
				pdf.SetFont(pdfFont, style, 9)
			}

			for i := range t.Columns {
				var v any
				if i < len(r) {
					v = r[i]
				}

				align := "L"
				if _, ok := v.(decimal.Decimal); ok || t.Columns[i].Numeric {
					align = "R"
				}
				pdf.CellFormat(widths[i], pdfLineHeight, tr(cellText(v)), "1", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}
	}
	rows(t.Rows, "")
	rows(t.Footer, "B")

	if t.Signatures {
		pdf.Ln(10)
		pdf.SetFont(pdfFont, "", 10)

		half := (pageWidth - left - right) / 2
		l, r := t.Header.signatures()
		for _, line := range [][2]string{
			{l.Place, r.Place},
			{l.Role, r.Role},
			{"", ""},
			{"", ""},
			{l.Name, r.Name},
		} {
			pdf.CellFormat(half, pdfLineHeight, tr(line[0]), "", 0, "C", false, 0, "")
			pdf.CellFormat(half, pdfLineHeight, tr(line[1]), "", 1, "C", false, 0, "")
		}
	}

	return pdf.Output(w)
}

// columnWidths distributes the available width by the relative column widths.
func columnWidths(columns []Column, available float64) []float64 {
	total := 0.0
	for _, c := range columns {
		total += c.Width
	}

	widths := make([]float64, len(columns))
	for i, c := range columns {
		if total == 0 {
			widths[i] = available / float64(len(columns))
			continue
		}
		widths[i] = available * c.Width / total
	}

	return widths
}
