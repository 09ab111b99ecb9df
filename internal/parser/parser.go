package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
)

// Extractor converts raw document bytes into an Outline.
type Extractor interface {
	Extract(r io.Reader, filename string) (*outline.Outline, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
}

// ForFile returns the appropriate extractor for a filename. The outline
// config only affects the PDF path; marked-up formats carry their own
// heading structure.
func ForFile(filename string, cfg outline.Config) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFExtractor{Config: cfg}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// levelFor maps a native markup heading depth (1-based) onto the
// three-level outline. Deeper headings are dropped.
func levelFor(depth int) (outline.Level, bool) {
	switch depth {
	case 1:
		return outline.LevelH1, true
	case 2:
		return outline.LevelH2, true
	case 3:
		return outline.LevelH3, true
	}
	return "", false
}
