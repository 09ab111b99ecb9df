package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgallion1/outliner/internal/outline"
)

func testRunner() *Runner {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRunner(log, outline.DefaultConfig(), 2, NewStats(time.Hour))
}

func TestRunner_RunDirWritesOutlines(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()

	md := "# Guide\n\n## Setup\n\ntext\n\n## Usage\n"
	if err := os.WriteFile(filepath.Join(inDir, "guide.md"), []byte(md), 0o644); err != nil {
		t.Fatal(err)
	}
	// Unsupported files are ignored, not failed.
	if err := os.WriteFile(filepath.Join(inDir, "notes.txt"), []byte("plain"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := testRunner()
	res, err := r.RunDir(context.Background(), inDir, outDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Processed != 1 || res.Failed != 0 {
		t.Fatalf("expected 1 processed / 0 failed, got %+v", res)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "guide.json"))
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	var o outline.Outline
	if err := json.Unmarshal(data, &o); err != nil {
		t.Fatalf("invalid output JSON: %v", err)
	}
	if o.Title != "Guide" {
		t.Errorf("expected title %q, got %q", "Guide", o.Title)
	}
	if len(o.Headings) != 2 {
		t.Errorf("expected 2 headings, got %+v", o.Headings)
	}
}

func TestRunner_BadDocumentDoesNotAbortBatch(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()

	// Garbage bytes with a .pdf extension fail to open.
	if err := os.WriteFile(filepath.Join(inDir, "broken.pdf"), []byte("not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(inDir, "ok.md"), []byte("## Works\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := testRunner()
	res, err := r.RunDir(context.Background(), inDir, outDir)
	if err != nil {
		t.Fatalf("unexpected batch error: %v", err)
	}
	if res.Processed != 1 {
		t.Errorf("expected the good document to be processed, got %+v", res)
	}
	if res.Failed != 1 {
		t.Errorf("expected the bad document to be counted as failed, got %+v", res)
	}
	if _, err := os.Stat(filepath.Join(outDir, "ok.json")); err != nil {
		t.Errorf("expected ok.json to exist: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "broken.json")); !os.IsNotExist(err) {
		t.Errorf("expected no output for the broken document")
	}
}

func TestRunner_EmptyDirIsNotAnError(t *testing.T) {
	r := testRunner()
	res, err := r.RunDir(context.Background(), t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Processed != 0 || res.Failed != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func TestRunner_ExtractRecordsLatency(t *testing.T) {
	stats := NewStats(time.Hour)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := NewRunner(log, outline.DefaultConfig(), 1, stats)

	if _, err := r.Extract("doc.md", []byte("# T\n\n## S\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Snapshot().Count != 1 {
		t.Errorf("expected one latency sample, got %d", stats.Snapshot().Count)
	}
}

func TestRunner_ProcessJob(t *testing.T) {
	r := testRunner()

	job := NewJob("doc.md", []byte("# Title\n\n## Part One\n"))
	r.ProcessJob(job)
	snap := job.Snapshot()
	if snap.Status != StatusCompleted {
		t.Fatalf("expected completed, got %+v", snap)
	}
	if snap.Result == nil || snap.Result.Title != "Title" {
		t.Errorf("unexpected result: %+v", snap.Result)
	}

	bad := NewJob("broken.pdf", []byte("junk"))
	r.ProcessJob(bad)
	if bad.Snapshot().Status != StatusFailed {
		t.Errorf("expected failed job, got %+v", bad.Snapshot())
	}
}
