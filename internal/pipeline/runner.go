package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/parser"
)

// Runner processes batches of documents with a bounded worker pool.
// Each document is independent: one bad file never aborts the batch.
type Runner struct {
	log     *slog.Logger
	cfg     outline.Config
	workers int
	stats   *Stats
}

func NewRunner(log *slog.Logger, cfg outline.Config, workers int, stats *Stats) *Runner {
	if workers <= 0 {
		workers = 4
	}
	return &Runner{log: log, cfg: cfg, workers: workers, stats: stats}
}

// BatchResult summarizes a directory run.
type BatchResult struct {
	Processed int
	Failed    int
}

// RunDir extracts an outline from every supported file in inputDir and
// writes one <name>.json per document into outputDir.
func (r *Runner) RunDir(ctx context.Context, inputDir, outputDir string) (BatchResult, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return BatchResult{}, fmt.Errorf("read input dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !parser.IsSupportedExtension(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)

	if len(files) == 0 {
		r.log.Warn("no supported documents found", "dir", inputDir)
		return BatchResult{}, nil
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return BatchResult{}, fmt.Errorf("create output dir: %w", err)
	}

	var (
		mu     sync.Mutex
		result BatchResult
		wg     sync.WaitGroup
	)
	sem := make(chan struct{}, r.workers)

	for _, name := range files {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			defer func() { <-sem }()

			err := r.processFile(name, inputDir, outputDir)
			mu.Lock()
			if err != nil {
				result.Failed++
			} else {
				result.Processed++
			}
			mu.Unlock()
		}(name)
	}
	wg.Wait()

	r.log.Info("batch complete", "processed", result.Processed, "failed", result.Failed)
	return result, nil
}

func (r *Runner) processFile(name, inputDir, outputDir string) error {
	log := r.log.With("file", name)

	o, err := r.ExtractFile(filepath.Join(inputDir, name))
	if err != nil {
		log.Error("extraction failed", "error", err)
		return err
	}

	outName := strings.TrimSuffix(name, filepath.Ext(name)) + ".json"
	outPath := filepath.Join(outputDir, outName)
	if err := writeJSON(outPath, o); err != nil {
		log.Error("write failed", "path", outPath, "error", err)
		return err
	}

	log.Info("processed", "title", o.Title, "headings", len(o.Headings), "output", outName)
	return nil
}

// ExtractFile runs the outline pipeline for a single document on disk.
func (r *Runner) ExtractFile(path string) (*outline.Outline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return r.Extract(filepath.Base(path), data)
}

// Extract runs the outline pipeline over in-memory document bytes.
func (r *Runner) Extract(filename string, data []byte) (*outline.Outline, error) {
	e, err := parser.ForFile(filename, r.cfg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	o, err := e.Extract(bytes.NewReader(data), filename)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", filename, err)
	}
	if r.stats != nil {
		r.stats.Record(time.Since(start).Milliseconds())
	}
	if o.Headings == nil {
		o.Headings = []outline.Heading{}
	}
	return o, nil
}

// ProcessJob runs a queued job to completion, recording the result or
// the failure on the job itself.
func (r *Runner) ProcessJob(job *Job) {
	job.SetStatus(StatusExtracting)
	o, err := r.Extract(job.Filename, job.FileData())
	if err != nil {
		r.log.Error("job failed", "job_id", job.ID, "file", job.Filename, "error", err)
		job.SetError(err.Error())
		return
	}
	job.SetResult(o)
}

func writeJSON(path string, o *outline.Outline) error {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
