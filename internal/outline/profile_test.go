package outline

import (
	"testing"

	"github.com/dgallion1/outliner/internal/span"
)

func line(text string, size float64) span.Line {
	return span.Line{Text: text, Size: size}
}

func TestBuildProfile_BodyIsCharWeightedMode(t *testing.T) {
	cfg := DefaultConfig()
	lines := []span.Line{
		line("Short Heading", 18),
		line("this is a much longer stretch of ordinary body text", 10),
		line("and another long paragraph continues down the page here", 10),
	}
	p := BuildProfile(lines, cfg)
	if p.Body != 10 {
		t.Errorf("expected body size 10, got %v", p.Body)
	}
	if len(p.Candidates) != 1 || p.Candidates[0] != 18 {
		t.Errorf("expected candidates [18], got %v", p.Candidates)
	}
}

func TestBuildProfile_TieBreaksToSmallerSize(t *testing.T) {
	cfg := DefaultConfig()
	lines := []span.Line{
		line("aaaaaaaaaa", 12),
		line("bbbbbbbbbb", 10),
	}
	p := BuildProfile(lines, cfg)
	if p.Body != 10 {
		t.Errorf("expected tie to break to 10, got %v", p.Body)
	}
}

func TestBuildProfile_CandidatesDescendingCappedAtThree(t *testing.T) {
	cfg := DefaultConfig()
	lines := []span.Line{
		line("the dominant body text of the document lives here", 10),
		line("a", 12),
		line("b", 14),
		line("c", 16),
		line("d", 24),
		line("e", 32),
	}
	p := BuildProfile(lines, cfg)
	want := []float64{32, 24, 16}
	if len(p.Candidates) != len(want) {
		t.Fatalf("expected %d candidates, got %v", len(want), p.Candidates)
	}
	for i, w := range want {
		if p.Candidates[i] != w {
			t.Errorf("candidate[%d]: expected %v, got %v", i, w, p.Candidates[i])
		}
	}
	if p.Tier(32) != 0 || p.Tier(24) != 1 || p.Tier(16) != 2 {
		t.Error("tier ranks do not follow descending candidate order")
	}
	if p.Tier(14) != -1 || p.Tier(12) != -1 {
		t.Error("sizes beyond the three largest must not be tiers")
	}
}

func TestBuildProfile_SingleSizeYieldsNoCandidates(t *testing.T) {
	cfg := DefaultConfig()
	lines := []span.Line{
		line("everything in this document", 11),
		line("is set at the same size", 11),
	}
	p := BuildProfile(lines, cfg)
	if p.Body != 11 {
		t.Errorf("expected body 11, got %v", p.Body)
	}
	if len(p.Candidates) != 0 {
		t.Errorf("expected no candidates, got %v", p.Candidates)
	}
}

func TestBuildProfile_Empty(t *testing.T) {
	p := BuildProfile(nil, DefaultConfig())
	if p.Body != 0 || len(p.Candidates) != 0 {
		t.Errorf("expected zero profile, got %+v", p)
	}
}

func TestBuildProfile_RoundsSizes(t *testing.T) {
	cfg := DefaultConfig()
	// 10.1 and 10.2 fall into the same 0.5 bucket and must pool their
	// character weight.
	lines := []span.Line{
		line("half of the body text here", 10.1),
		line("other half of the body text", 10.2),
		line("HEADING AT FOURTEEN POINTS", 14),
		line("more at fourteen", 14),
		line("x", 9), // distinct smaller size, keeps the outline eligible
	}
	p := BuildProfile(lines, cfg)
	if p.Body != 10 {
		t.Errorf("expected rounded body 10, got %v", p.Body)
	}
}
