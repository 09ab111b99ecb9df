package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dgallion1/outliner/internal/outline"
)

type Config struct {
	Port string

	// Auth. Empty disables API authentication.
	APIKey string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Batch CLI defaults
	InputDir  string
	OutputDir string

	// Job state
	JobTTL time.Duration

	// Stats window
	StatsWindow time.Duration

	// Classifier heuristics
	Outline outline.Config
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("OUTLINER_API_KEY"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		InputDir:  envOr("INPUT_DIR", "input"),
		OutputDir: envOr("OUTPUT_DIR", "output"),

		JobTTL:      envDuration("JOB_TTL", 1*time.Hour),
		StatsWindow: envDuration("STATS_WINDOW", 1*time.Hour),

		Outline: outlineFromEnv(),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

// outlineFromEnv overlays env-tuned heuristics on the classifier
// defaults.
func outlineFromEnv() outline.Config {
	o := outline.DefaultConfig()
	o.LineTolerance = envFloat("LINE_Y_TOLERANCE", o.LineTolerance)
	o.GapFactor = envFloat("GAP_SIZE_FACTOR", o.GapFactor)
	o.SizeStep = envFloat("SIZE_ROUND_STEP", o.SizeStep)
	o.MinHeadingChars = envInt("MIN_HEADING_CHARS", o.MinHeadingChars)
	o.MaxHeadingChars = envInt("MAX_HEADING_CHARS", o.MaxHeadingChars)
	o.RepeatTolerance = envFloat("REPEAT_Y_TOLERANCE", o.RepeatTolerance)
	o.BoldHeadingWords = envInt("BOLD_HEADING_MAX_WORDS", o.BoldHeadingWords)
	return o
}

func (c Config) Validate() error {
	if c.Outline.MinHeadingChars > c.Outline.MaxHeadingChars {
		return fmt.Errorf("MIN_HEADING_CHARS (%d) exceeds MAX_HEADING_CHARS (%d)",
			c.Outline.MinHeadingChars, c.Outline.MaxHeadingChars)
	}
	if c.Outline.LineTolerance <= 0 || c.Outline.RepeatTolerance <= 0 {
		return fmt.Errorf("tolerances must be positive")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
