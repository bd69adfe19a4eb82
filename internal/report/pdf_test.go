package report

import (
	"bytes"
	"testing"

	"github.com/clinscribe/clinscribe/internal/analysis"
)

func TestRenderPDF(t *testing.T) {
	blocks := ParseBlocks(Render(analysis.Fallback()))

	got, err := RenderPDF(blocks)
	if err != nil {
		t.Fatalf("RenderPDF() error = %v", err)
	}
	if !bytes.HasPrefix(got, []byte("%PDF-")) {
		t.Errorf("RenderPDF() output does not start with a PDF header")
	}
	if len(got) < 1000 {
		t.Errorf("RenderPDF() output suspiciously small: %d bytes", len(got))
	}
}

func TestRenderPDFNoBlocks(t *testing.T) {
	got, err := RenderPDF(nil)
	if err != nil {
		t.Fatalf("RenderPDF() error = %v", err)
	}
	if !bytes.HasPrefix(got, []byte("%PDF-")) {
		t.Errorf("RenderPDF() output does not start with a PDF header")
	}
}
