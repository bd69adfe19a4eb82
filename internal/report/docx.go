package report

import (
	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	docxFont     = "Calibri"
	docxBodySize = 11
)

// WriteDOCX writes the block sequence as a Word document at outputPath.
func WriteDOCX(blocks []Block, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return &RenderError{Err: err}
	}

	for _, block := range blocks {
		switch block.Kind {
		case KindHeading:
			p := doc.AddParagraph("")
			p.AddText(stripInlineBold(block.Text)).
				Font(docxFont).
				Size(docxHeadingSize(block.Level)).
				Color("000000").
				Bold(true)
		case KindList:
			for _, item := range block.Items {
				addRichText(doc.AddParagraph(""), "• "+item)
			}
		case KindParagraph:
			if block.Text == "" {
				doc.AddParagraph("")
				continue
			}
			addRichText(doc.AddParagraph(""), block.Text)
		case KindSpacer:
			doc.AddParagraph("")
		}
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return &RenderError{Err: err}
	}
	return nil
}

// docxHeadingSize maps a heading level to its font size.
func docxHeadingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 14
	default:
		return 12
	}
}

// addRichText emits styled runs for one paragraph, bolding **spans**.
func addRichText(p *docx.Paragraph, text string) {
	for _, seg := range splitBold(text) {
		run := p.AddText(seg.text).
			Font(docxFont).
			Size(docxBodySize).
			Color("000000")
		if seg.bold {
			run.Bold(true)
		}
	}
}
