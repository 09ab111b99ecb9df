package outline

import (
	"strings"

	"github.com/dgallion1/outliner/internal/span"
)

// resolveTitle picks the document title. A usable metadata title wins
// verbatim (trimmed). Otherwise the largest text on the first page is
// used, joining immediately following lines that share the exact same
// size and sit close enough vertically (titles split across visual
// lines). Content-derived title lines are reported in consumed, keyed
// by index into firstPage, so the caller can keep them out of the
// outline.
func resolveTitle(meta string, firstPage []span.Line, cfg Config) (string, map[int]bool) {
	if t := strings.TrimSpace(meta); t != "" {
		return t, nil
	}
	if len(firstPage) == 0 {
		return "", nil
	}

	largest := 0.0
	for _, l := range firstPage {
		if l.Size > largest {
			largest = l.Size
		}
	}

	// Topmost line at the largest size; firstPage is in visual order.
	start := -1
	for i, l := range firstPage {
		if l.Size == largest {
			start = i
			break
		}
	}
	if start < 0 {
		return "", nil
	}

	consumed := map[int]bool{start: true}
	parts := []string{firstPage[start].Text}
	prev := firstPage[start]
	for i := start + 1; i < len(firstPage) && len(parts) < cfg.TitleMaxLines; i++ {
		l := firstPage[i]
		if l.Size != largest {
			break // an intervening differently-sized line ends the title
		}
		if l.Y-prev.Y > cfg.TitleGapFactor*largest {
			break
		}
		consumed[i] = true
		parts = append(parts, l.Text)
		prev = l
	}

	return strings.Join(parts, " "), consumed
}
