package outline

import (
	"math"
	"regexp"
	"strings"

	"github.com/dgallion1/outliner/internal/span"
)

var (
	// "7", "42", "Page 3", "Page 3 of 12", "3/12".
	pageNumberRe = regexp.MustCompile(`(?i)^(page\s*)?\d+(\s*(of|/)\s*\d+)?$`)
	// Roman numeral folios ("iv", "xii"). Bounded in the caller so a
	// short real word built from numeral letters is the only exposure.
	romanRe = regexp.MustCompile(`(?i)^[ivxlcdm]+$`)
)

const maxRomanLen = 6

// Filter removes lines that are structurally unlikely to be headings:
// page numbers, very short or very long text, running headers/footers,
// and plain body text. Order is preserved. Runs after profiling, before
// classification.
func Filter(lines []span.Line, p SizeProfile, cfg Config, numPages int) []span.Line {
	repeats := repeatedLines(lines, numPages, cfg.RepeatTolerance)

	kept := make([]span.Line, 0, len(lines))
	for i, l := range lines {
		if isPageNumber(l.Text) {
			continue
		}
		n := len([]rune(l.Text))
		if n > cfg.MaxHeadingChars {
			continue
		}
		rounded := roundSize(l.Size, cfg.SizeStep)
		// Short lines are usually fragments, but a 1-2 word line set
		// larger than body text can be a genuine heading.
		if n < cfg.MinHeadingChars && rounded <= p.Body {
			continue
		}
		if repeats[i] {
			continue
		}
		if rounded == p.Body && !l.Bold {
			continue
		}
		kept = append(kept, l)
	}
	return kept
}

func isPageNumber(text string) bool {
	t := strings.TrimSpace(text)
	if t == "" {
		return true
	}
	if pageNumberRe.MatchString(t) {
		return true
	}
	return len(t) <= maxRomanLen && romanRe.MatchString(t)
}

// repeatedLines flags running headers/footers: identical normalized
// text occurring on more than half of the document's pages at a
// near-identical vertical position. Needs at least two sightings so a
// single-page document is never self-matching.
func repeatedLines(lines []span.Line, numPages int, yTol float64) map[int]bool {
	type sighting struct {
		page int
		y    float64
	}
	byText := make(map[string][]sighting)
	for _, l := range lines {
		key := strings.ToLower(l.Text)
		byText[key] = append(byText[key], sighting{page: l.Page, y: l.Y})
	}

	flagged := make(map[int]bool)
	for i, l := range lines {
		pages := make(map[int]bool)
		for _, s := range byText[strings.ToLower(l.Text)] {
			if math.Abs(s.y-l.Y) <= yTol {
				pages[s.page] = true
			}
		}
		if len(pages) >= 2 && len(pages)*2 > numPages {
			flagged[i] = true
		}
	}
	return flagged
}
