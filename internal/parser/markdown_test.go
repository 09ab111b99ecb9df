package parser

import (
	"strings"
	"testing"

	"github.com/dgallion1/outliner/internal/outline"
)

func TestMarkdownExtractor_HeadingLevels(t *testing.T) {
	input := "# Document\n\nintro text\n\n## Section One\n\nbody\n\n### Detail\n\nmore body\n\n## Section Two\n"
	p := &MarkdownExtractor{}
	got, err := p.Extract(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Title != "Document" {
		t.Errorf("expected title %q, got %q", "Document", got.Title)
	}
	want := []outline.Heading{
		{Level: outline.LevelH2, Text: "Section One", Page: 0},
		{Level: outline.LevelH3, Text: "Detail", Page: 0},
		{Level: outline.LevelH2, Text: "Section Two", Page: 0},
	}
	if len(got.Headings) != len(want) {
		t.Fatalf("expected %d headings, got %+v", len(want), got.Headings)
	}
	for i, w := range want {
		if got.Headings[i] != w {
			t.Errorf("heading[%d]: expected %+v, got %+v", i, w, got.Headings[i])
		}
	}
}

func TestMarkdownExtractor_LeadingH1ConsumedAsTitle(t *testing.T) {
	input := "# Only Title\n\njust text, no other headings\n"
	p := &MarkdownExtractor{}
	got, err := p.Extract(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Only Title" {
		t.Errorf("expected title %q, got %q", "Only Title", got.Title)
	}
	if len(got.Headings) != 0 {
		t.Errorf("title heading must not repeat in the outline, got %+v", got.Headings)
	}
}

func TestMarkdownExtractor_DeepHeadingsDropped(t *testing.T) {
	input := "## Kept\n\n#### Too Deep\n\n###### Way Too Deep\n"
	p := &MarkdownExtractor{}
	got, err := p.Extract(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Headings) != 1 || got.Headings[0].Text != "Kept" {
		t.Errorf("expected only h2 kept, got %+v", got.Headings)
	}
}

func TestMarkdownExtractor_NoHeadings(t *testing.T) {
	p := &MarkdownExtractor{}
	got, err := p.Extract(strings.NewReader("plain paragraph text\n"), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "" || len(got.Headings) != 0 {
		t.Errorf("expected empty outline, got %+v", got)
	}
}
