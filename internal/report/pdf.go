package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// RenderError wraps a document backend failure.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render document: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Page geometry and typography in points: US-letter portrait, Helvetica,
// heading sizes stepping down from 16pt with matching trailing space.
const (
	pageMargin  = 54
	bodySize    = 11
	spacerGap   = 12
	listIndent  = 14
	lineSpacing = 1.4
)

// RenderPDF lays the block sequence out as a US-letter PDF and returns the
// document bytes.
func RenderPDF(blocks []Block) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	for _, block := range blocks {
		switch block.Kind {
		case KindHeading:
			size, after := headingStyle(block.Level)
			pdf.SetFont("Helvetica", "B", size)
			pdf.MultiCell(0, size*1.3, tr(stripInlineBold(block.Text)), "", "L", false)
			pdf.Ln(after)
		case KindList:
			for _, item := range block.Items {
				pdf.SetX(pageMargin + listIndent)
				writeRichLine(pdf, tr, "• "+item)
			}
		case KindParagraph:
			writeRichLine(pdf, tr, block.Text)
		case KindSpacer:
			pdf.Ln(spacerGap)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Err: err}
	}
	return buf.Bytes(), nil
}

// headingStyle maps a heading level to its font size and trailing space.
func headingStyle(level int) (size, after float64) {
	switch level {
	case 1:
		return 16, 20
	case 2:
		return 14, 10
	default:
		return 12, 8
	}
}

// writeRichLine writes one flowing line, switching to a bold face for
// **spans** and back.
func writeRichLine(pdf *fpdf.Fpdf, tr func(string) string, text string) {
	lineHt := bodySize * lineSpacing
	for _, seg := range splitBold(text) {
		style := ""
		if seg.bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, bodySize)
		pdf.Write(lineHt, tr(seg.text))
	}
	pdf.Ln(lineHt)
}
