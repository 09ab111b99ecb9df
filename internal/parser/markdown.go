package parser

import (
	"io"

	"github.com/dgallion1/outliner/internal/outline"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownExtractor reads the heading structure of a Markdown document
// using goldmark. Markdown has no page geometry, so every heading
// reports page 0.
type MarkdownExtractor struct{}

func (p *MarkdownExtractor) Extract(r io.Reader, filename string) (*outline.Outline, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	result := &outline.Outline{Headings: []outline.Heading{}}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		heading, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		title := string(heading.Text(src))
		if title == "" {
			continue
		}
		level, ok := levelFor(heading.Level)
		if !ok {
			continue
		}
		result.Headings = append(result.Headings, outline.Heading{
			Level: level,
			Text:  title,
			Page:  0,
		})
	}

	// A leading H1 doubles as the document title and leaves the
	// outline, mirroring how a content-derived PDF title is consumed.
	if len(result.Headings) > 0 && result.Headings[0].Level == outline.LevelH1 {
		result.Title = result.Headings[0].Text
		result.Headings = result.Headings[1:]
	}

	return result, nil
}
