package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgallion1/outliner/internal/config"
	"github.com/dgallion1/outliner/internal/pipeline"
)

// outliner extracts document outlines.
//
//	outliner                      batch mode: INPUT_DIR -> OUTPUT_DIR
//	outliner <file>               print one document's outline to stdout
//	outliner <file> <out.json>    write one document's outline to a file
func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	runner := pipeline.NewRunner(log, cfg.Outline, cfg.WorkerCount, nil)

	switch len(os.Args) {
	case 1:
		runBatch(runner, cfg, log)
	case 2:
		runSingle(runner, os.Args[1], "", log)
	case 3:
		runSingle(runner, os.Args[1], os.Args[2], log)
	default:
		fmt.Fprintln(os.Stderr, "usage: outliner [input_file [output.json]]")
		os.Exit(2)
	}
}

func runBatch(runner *pipeline.Runner, cfg config.Config, log *slog.Logger) {
	res, err := runner.RunDir(context.Background(), cfg.InputDir, cfg.OutputDir)
	if err != nil {
		log.Error("batch failed", "error", err)
		os.Exit(1)
	}
	log.Info("done", "processed", res.Processed, "failed", res.Failed)
	if res.Processed == 0 && res.Failed > 0 {
		os.Exit(1)
	}
}

func runSingle(runner *pipeline.Runner, path, outPath string, log *slog.Logger) {
	o, err := runner.ExtractFile(path)
	if err != nil {
		log.Error("extraction failed", "file", path, "error", err)
		os.Exit(1)
	}

	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		log.Error("marshal failed", "error", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	if outPath == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		log.Error("write failed", "path", outPath, "error", err)
		os.Exit(1)
	}
	log.Info("processed", "file", path, "output", outPath, "title", o.Title, "headings", len(o.Headings))
}
