package outline

import (
	"strings"

	"github.com/dgallion1/outliner/internal/span"
)

var tierLevels = [maxTiers]Level{LevelH1, LevelH2, LevelH3}

// Classify assigns a level to each surviving line. It is a pure
// function of (size tier, boldness): the largest candidate size is H1,
// the next H2, the next H3. A short bold line at body size is the
// lowest-confidence case and always maps to H3. Everything else is
// excluded. Input order is preserved.
func Classify(lines []span.Line, p SizeProfile, cfg Config) []Heading {
	headings := make([]Heading, 0, len(lines))
	for _, l := range lines {
		level, ok := classifyLine(l, p, cfg)
		if !ok {
			continue
		}
		headings = append(headings, Heading{
			Level: level,
			Text:  l.Text,
			Page:  l.Page,
		})
	}
	return headings
}

func classifyLine(l span.Line, p SizeProfile, cfg Config) (Level, bool) {
	rounded := roundSize(l.Size, cfg.SizeStep)
	if tier := p.Tier(rounded); tier >= 0 {
		return tierLevels[tier], true
	}
	// Bold-but-not-enlarged subheadings: short bold lines at body size.
	if rounded == p.Body && p.Body > 0 && l.Bold && wordCount(l.Text) <= cfg.BoldHeadingWords {
		return LevelH3, true
	}
	return "", false
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
