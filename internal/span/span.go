package span

// Span is the atomic unit of styled text emitted by a document source.
// Coordinates use a top-left origin: Y grows downward, so a smaller Y
// means higher on the page.
type Span struct {
	Text   string  // Raw text content, may contain whitespace.
	Font   string  // Font name as reported by the source.
	Size   float64 // Font size in points.
	Bold   bool
	Italic bool
	Page   int     // 0-based page index.
	X      float64 // Left edge.
	Y      float64 // Baseline position, top-origin.
	W      float64 // Advance width, 0 if unknown.
}

// Line is one visual row of text formed by merging contiguous spans.
// Derived by the normalizer; never mutated after creation.
type Line struct {
	Text string  // Whitespace-normalized text.
	Size float64 // Size of the majority of characters.
	Bold bool    // True if the majority of characters are bold.
	Page int
	X    float64
	Y    float64
}

// Source yields styled text spans per page, in rendering order.
// Sources are one-shot per document and are not required to be
// restartable.
type Source interface {
	// NumPages returns the page count, 0 for an empty document.
	NumPages() int
	// Page returns the spans of page i (0-based) in emission order.
	Page(i int) ([]Span, error)
	// Title returns the document's metadata title, or "" when absent.
	Title() string
}
