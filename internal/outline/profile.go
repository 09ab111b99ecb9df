package outline

import (
	"sort"

	"github.com/dgallion1/outliner/internal/span"
)

// maxTiers caps the number of candidate heading sizes. Larger sizes
// beyond the cap are treated as oversized decoration, not headings.
const maxTiers = 3

// SizeProfile is the document-wide font size statistic every
// classification decision is made against. Computed once, immutable.
type SizeProfile struct {
	// Body is the most frequent rounded size, weighted by character
	// count. Zero for a document with no lines.
	Body float64
	// Candidates are the distinct rounded sizes above Body, largest
	// first, capped at maxTiers. Index 0 maps to H1.
	Candidates []float64
}

// BuildProfile scans all lines and computes the body size and the
// candidate heading sizes. A document with fewer than two distinct
// sizes yields no candidates: without size contrast there is nothing
// to classify against.
func BuildProfile(lines []span.Line, cfg Config) SizeProfile {
	chars := make(map[float64]int)
	for _, l := range lines {
		chars[roundSize(l.Size, cfg.SizeStep)] += len([]rune(l.Text))
	}
	if len(chars) == 0 {
		return SizeProfile{}
	}

	body, bodyChars := 0.0, -1
	for size, n := range chars {
		// Ties go to the smaller size: body text is typically the
		// smallest common size.
		if n > bodyChars || (n == bodyChars && size < body) {
			body, bodyChars = size, n
		}
	}

	if len(chars) < 2 {
		return SizeProfile{Body: body}
	}

	var candidates []float64
	for size := range chars {
		if size > body {
			candidates = append(candidates, size)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(candidates)))
	if len(candidates) > maxTiers {
		candidates = candidates[:maxTiers]
	}
	return SizeProfile{Body: body, Candidates: candidates}
}

// Tier returns the 0-based rank of a rounded size among the candidate
// heading sizes (0 = largest = H1), or -1 when the size is not a
// candidate.
func (p SizeProfile) Tier(rounded float64) int {
	for i, c := range p.Candidates {
		if rounded == c {
			return i
		}
	}
	return -1
}
