package outline

import (
	"sort"
	"strings"

	"github.com/dgallion1/outliner/internal/span"
)

// normalizePage merges a page's raw spans into Lines: spans within
// LineTolerance vertically form one visual row, and contiguous spans
// within a row (horizontal gap below GapFactor x size) form one Line.
// No heading judgment happens here.
func normalizePage(spans []span.Span, page int, cfg Config) []span.Line {
	clean := make([]span.Span, 0, len(spans))
	for _, s := range spans {
		if strings.TrimSpace(s.Text) == "" {
			continue
		}
		clean = append(clean, s)
	}
	if len(clean) == 0 {
		return nil
	}

	// Top-to-bottom, then left-to-right.
	sort.SliceStable(clean, func(i, j int) bool {
		if clean[i].Y != clean[j].Y {
			return clean[i].Y < clean[j].Y
		}
		return clean[i].X < clean[j].X
	})

	var lines []span.Line
	row := []span.Span{clean[0]}
	for _, s := range clean[1:] {
		if s.Y-row[0].Y <= cfg.LineTolerance {
			row = append(row, s)
			continue
		}
		lines = append(lines, mergeRow(row, page, cfg)...)
		row = []span.Span{s}
	}
	lines = append(lines, mergeRow(row, page, cfg)...)
	return lines
}

// mergeRow splits one visual row into contiguous segments and builds a
// Line per segment.
func mergeRow(row []span.Span, page int, cfg Config) []span.Line {
	sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })

	var lines []span.Line
	seg := []span.Span{row[0]}
	for _, s := range row[1:] {
		prev := seg[len(seg)-1]
		gap := s.X - (prev.X + prev.W)
		if gap > cfg.GapFactor*maxSize(prev.Size, s.Size) {
			if l, ok := buildLine(seg, page, cfg); ok {
				lines = append(lines, l)
			}
			seg = []span.Span{s}
			continue
		}
		seg = append(seg, s)
	}
	if l, ok := buildLine(seg, page, cfg); ok {
		lines = append(lines, l)
	}
	return lines
}

// buildLine concatenates a contiguous segment, normalizes whitespace
// and aggregates font attributes by character count. Returns false for
// lines that are empty after normalization.
func buildLine(seg []span.Span, page int, cfg Config) (span.Line, bool) {
	var b strings.Builder
	sizeChars := make(map[float64]int)
	boldChars, totalChars := 0, 0

	for i, s := range seg {
		if i > 0 {
			prev := seg[i-1]
			gap := s.X - (prev.X + prev.W)
			if gap > cfg.WordGapFactor*maxSize(prev.Size, s.Size) {
				b.WriteByte(' ')
			}
		}
		b.WriteString(s.Text)

		n := len([]rune(strings.TrimSpace(s.Text)))
		sizeChars[s.Size] += n
		totalChars += n
		if s.Bold {
			boldChars += n
		}
	}

	text := collapseWhitespace(b.String())
	if text == "" {
		return span.Line{}, false
	}

	return span.Line{
		Text: text,
		Size: dominantSize(sizeChars),
		Bold: boldChars*2 > totalChars,
		Page: page,
		X:    seg[0].X,
		Y:    seg[0].Y,
	}, true
}

// dominantSize picks the size covering the most characters, ties broken
// by the smaller size.
func dominantSize(sizeChars map[float64]int) float64 {
	best, bestCount := 0.0, -1
	for size, count := range sizeChars {
		if count > bestCount || (count == bestCount && size < best) {
			best, bestCount = size, count
		}
	}
	return best
}

// collapseWhitespace trims and reduces internal whitespace runs to a
// single space.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func maxSize(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
