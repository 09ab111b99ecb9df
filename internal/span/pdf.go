package span

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	pdflib "github.com/ledongthuc/pdf"
)

// defaultPageHeight is the US Letter height in points, used when a page
// carries no usable MediaBox.
const defaultPageHeight = 792.0

// PDFSource adapts a ledongthuc/pdf reader to the Source interface.
type PDFSource struct {
	reader *pdflib.Reader
	title  string
}

// NewPDFSource wraps an open PDF reader. The caller keeps ownership of
// the underlying file handle.
func NewPDFSource(r *pdflib.Reader) *PDFSource {
	return &PDFSource{
		reader: r,
		title:  metadataTitle(r),
	}
}

func (s *PDFSource) NumPages() int {
	return s.reader.NumPage()
}

func (s *PDFSource) Title() string {
	return s.title
}

// Page returns the styled spans of page i (0-based). The pdf library
// panics on some malformed content streams, so extraction is isolated
// behind a recover.
func (s *PDFSource) Page(i int) (spans []Span, err error) {
	defer func() {
		if r := recover(); r != nil {
			spans = nil
			err = fmt.Errorf("extract page %d: %v", i, r)
		}
	}()

	page := s.reader.Page(i + 1) // library pages are 1-based
	if page.V.IsNull() {
		return nil, nil
	}

	height := pageHeight(page)
	content := page.Content()
	spans = make([]Span, 0, len(content.Text))
	for _, t := range content.Text {
		if t.S == "" {
			continue
		}
		spans = append(spans, Span{
			Text:   t.S,
			Font:   t.Font,
			Size:   t.FontSize,
			Bold:   fontIsBold(t.Font),
			Italic: fontIsItalic(t.Font),
			Page:   i,
			X:      t.X,
			Y:      height - t.Y, // PDF user space is bottom-origin
			W:      t.W,
		})
	}
	return spans, nil
}

// pageHeight resolves the page's MediaBox height, walking up the page
// tree for inherited attributes.
func pageHeight(page pdflib.Page) float64 {
	v := page.V
	for depth := 0; depth < 16 && !v.IsNull(); depth++ {
		box := v.Key("MediaBox")
		if box.Kind() == pdflib.Array && box.Len() == 4 {
			if h := box.Index(3).Float64(); h > 0 {
				return h
			}
		}
		v = v.Key("Parent")
	}
	return defaultPageHeight
}

// metadataTitle reads the Info dictionary's Title entry. Unusable
// values (binary garbage, non-text) are treated as absent.
func metadataTitle(r *pdflib.Reader) (title string) {
	defer func() {
		if recover() != nil {
			title = ""
		}
	}()

	v := r.Trailer().Key("Info").Key("Title")
	if v.Kind() != pdflib.String {
		return ""
	}
	return sanitizeTitle(decodePDFString(v.RawString()))
}

// decodePDFString handles the two PDF text string encodings: UTF-16BE
// with BOM, and (approximately) Latin-1 otherwise.
func decodePDFString(s string) string {
	b := []byte(s)
	if len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF {
		u := make([]uint16, 0, (len(b)-2)/2)
		for i := 2; i+1 < len(b); i += 2 {
			u = append(u, uint16(b[i])<<8|uint16(b[i+1]))
		}
		return string(utf16.Decode(u))
	}
	if utf8.ValidString(s) {
		return s
	}
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}

// sanitizeTitle trims the decoded title and rejects values dominated by
// control or replacement characters.
func sanitizeTitle(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	printable := 0
	total := 0
	for _, r := range s {
		total++
		if r == utf8.RuneError || unicode.IsControl(r) {
			continue
		}
		printable++
	}
	if total == 0 || printable*2 < total {
		return ""
	}
	return s
}

func fontIsBold(font string) bool {
	f := strings.ToLower(font)
	return strings.Contains(f, "bold") || strings.Contains(f, "black") || strings.Contains(f, "heavy")
}

func fontIsItalic(font string) bool {
	f := strings.ToLower(font)
	return strings.Contains(f, "italic") || strings.Contains(f, "oblique")
}
