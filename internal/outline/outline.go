// Package outline turns a stream of styled text spans into a document
// title and a leveled H1/H2/H3 heading outline. Classification is a
// two-pass pipeline: a whole-document size profile is computed first,
// then every line is judged against it.
package outline

import (
	"sort"

	"github.com/dgallion1/outliner/internal/span"
)

// Level is a resolved heading depth.
type Level string

const (
	LevelH1 Level = "H1"
	LevelH2 Level = "H2"
	LevelH3 Level = "H3"
)

// Heading is one outline entry, in document order.
type Heading struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"` // 0-based
}

// Outline is the extraction result for one document.
type Outline struct {
	Title    string    `json:"title"`
	Headings []Heading `json:"outline"`
}

// Config holds the heuristic constants of the classifier. Zero values
// are replaced with defaults by Extract.
type Config struct {
	LineTolerance    float64 // Max Y distance between spans on the same visual row, in points.
	GapFactor        float64 // Max horizontal gap between contiguous spans, as a multiple of font size.
	WordGapFactor    float64 // Gap that separates words within a line, as a multiple of font size.
	SizeStep         float64 // Font size rounding step for building the size profile.
	MinHeadingChars  int     // Lines shorter than this are noise unless larger than body size.
	MaxHeadingChars  int     // Lines longer than this are never headings.
	RepeatTolerance  float64 // Y tolerance when matching running headers/footers across pages, in points.
	BoldHeadingWords int     // Word cap for bold body-size lines to qualify as H3.
	TitleGapFactor   float64 // Max vertical gap between joined title lines, as a multiple of font size.
	TitleMaxLines    int     // Max number of visual lines joined into a content-derived title.
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		LineTolerance:    2.0,
		GapFactor:        1.5,
		WordGapFactor:    0.25,
		SizeStep:         0.5,
		MinHeadingChars:  3,
		MaxHeadingChars:  200,
		RepeatTolerance:  5.0,
		BoldHeadingWords: 8,
		TitleGapFactor:   1.8,
		TitleMaxLines:    3,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.LineTolerance <= 0 {
		c.LineTolerance = d.LineTolerance
	}
	if c.GapFactor <= 0 {
		c.GapFactor = d.GapFactor
	}
	if c.WordGapFactor <= 0 {
		c.WordGapFactor = d.WordGapFactor
	}
	if c.SizeStep <= 0 {
		c.SizeStep = d.SizeStep
	}
	if c.MinHeadingChars <= 0 {
		c.MinHeadingChars = d.MinHeadingChars
	}
	if c.MaxHeadingChars <= 0 {
		c.MaxHeadingChars = d.MaxHeadingChars
	}
	if c.RepeatTolerance <= 0 {
		c.RepeatTolerance = d.RepeatTolerance
	}
	if c.BoldHeadingWords <= 0 {
		c.BoldHeadingWords = d.BoldHeadingWords
	}
	if c.TitleGapFactor <= 0 {
		c.TitleGapFactor = d.TitleGapFactor
	}
	if c.TitleMaxLines <= 0 {
		c.TitleMaxLines = d.TitleMaxLines
	}
	return c
}

// Extract runs the full pipeline over a span source. It never fails:
// unreadable pages are skipped and degenerate documents degrade to an
// empty outline with a best-effort title.
func Extract(src span.Source, cfg Config) *Outline {
	cfg = cfg.withDefaults()

	numPages := src.NumPages()
	var lines []span.Line
	for i := 0; i < numPages; i++ {
		spans, err := src.Page(i)
		if err != nil {
			continue // degraded page, keep the rest of the document
		}
		lines = append(lines, normalizePage(spans, i, cfg)...)
	}

	firstPage := 0
	for firstPage < len(lines) && lines[firstPage].Page == 0 {
		firstPage++
	}
	title, consumed := resolveTitle(src.Title(), lines[:firstPage], cfg)

	if len(consumed) > 0 {
		rest := make([]span.Line, 0, len(lines)-len(consumed))
		for i, l := range lines {
			if !consumed[i] {
				rest = append(rest, l)
			}
		}
		lines = rest
	}

	profile := BuildProfile(lines, cfg)
	kept := Filter(lines, profile, cfg, numPages)
	headings := Classify(kept, profile, cfg)

	// Normalization emits lines page by page in visual order already;
	// the sort pins the document-order invariant regardless of how
	// earlier stages were run.
	sort.SliceStable(headings, func(i, j int) bool {
		return headings[i].Page < headings[j].Page
	})

	return &Outline{Title: title, Headings: headings}
}

// roundSize buckets a font size to the profile's granularity.
func roundSize(size, step float64) float64 {
	if step <= 0 {
		return size
	}
	n := int(size/step + 0.5)
	return float64(n) * step
}
