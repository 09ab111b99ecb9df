package parser

import (
	"fmt"
	"io"
	"os"

	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/span"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFExtractor runs the styled-span classification pipeline over a PDF.
type PDFExtractor struct {
	Config outline.Config
}

func (p *PDFExtractor) Extract(r io.Reader, filename string) (*outline.Outline, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "outliner-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	return outline.Extract(span.NewPDFSource(reader), p.Config), nil
}
