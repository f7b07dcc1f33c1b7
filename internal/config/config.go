package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/vedanth-raj/sectionize/internal/analyzer"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Persistence
	DataDir string

	// Job state
	JobTTL time.Duration

	// Analysis defaults
	MaxKeyPhrases int
	MaxHeadingLen int
	Lookahead     int
	StrictSummary bool
	PatternsFile  string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8085"),

		APIKey: os.Getenv("SECTIONIZE_API_KEY"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 16777216), // 16MB

		DataDir: envOr("DATA_DIR", "data/sections"),

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		MaxKeyPhrases: envInt("MAX_KEY_PHRASES", 10),
		MaxHeadingLen: envInt("MAX_HEADING_LEN", 60),
		Lookahead:     envInt("HEADING_LOOKAHEAD", 5),
		StrictSummary: envBool("STRICT_SUMMARY", false),
		PatternsFile:  os.Getenv("PATTERNS_FILE"),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 16777216
	}
	if cfg.MaxKeyPhrases <= 0 {
		cfg.MaxKeyPhrases = 10
	}
	if cfg.MaxHeadingLen <= 0 {
		cfg.MaxHeadingLen = 60
	}
	if cfg.Lookahead <= 0 {
		cfg.Lookahead = 5
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("SECTIONIZE_API_KEY is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR must not be empty")
	}
	return nil
}

// Analyzer builds the analysis configuration from the service settings.
// Custom patterns from PatternsFile are attached by the caller after
// loading, so this stays free of file I/O.
func (c Config) Analyzer() analyzer.Config {
	a := analyzer.DefaultConfig()
	a.MaxKeyPhrases = c.MaxKeyPhrases
	a.MaxHeadingLen = c.MaxHeadingLen
	a.Lookahead = c.Lookahead
	a.StrictSummary = c.StrictSummary
	return a
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

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
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
