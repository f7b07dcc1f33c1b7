package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "WORKER_COUNT", "MAX_QUEUE_SIZE", "MAX_UPLOAD_BYTES",
		"JOB_TTL", "MAX_KEY_PHRASES", "MAX_HEADING_LEN", "HEADING_LOOKAHEAD",
	} {
		t.Setenv(key, "")
	}
	cfg := Load()

	if cfg.Port != "8085" {
		t.Errorf("Port = %q, want 8085", cfg.Port)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("WorkerCount = %d, want 4", cfg.WorkerCount)
	}
	if cfg.MaxUploadBytes != 16777216 {
		t.Errorf("MaxUploadBytes = %d", cfg.MaxUploadBytes)
	}
	if cfg.JobTTL != time.Hour {
		t.Errorf("JobTTL = %v", cfg.JobTTL)
	}
	if cfg.MaxKeyPhrases != 10 || cfg.MaxHeadingLen != 60 || cfg.Lookahead != 5 {
		t.Errorf("analysis defaults = %d/%d/%d", cfg.MaxKeyPhrases, cfg.MaxHeadingLen, cfg.Lookahead)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("WORKER_COUNT", "2")
	t.Setenv("JOB_TTL", "30m")
	t.Setenv("STRICT_SUMMARY", "true")
	t.Setenv("MAX_KEY_PHRASES", "5")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.WorkerCount != 2 {
		t.Errorf("WorkerCount = %d", cfg.WorkerCount)
	}
	if cfg.JobTTL != 30*time.Minute {
		t.Errorf("JobTTL = %v", cfg.JobTTL)
	}
	if !cfg.StrictSummary {
		t.Error("StrictSummary not set")
	}
	if cfg.MaxKeyPhrases != 5 {
		t.Errorf("MaxKeyPhrases = %d", cfg.MaxKeyPhrases)
	}
}

func TestLoadClampsBadValues(t *testing.T) {
	t.Setenv("WORKER_COUNT", "-3")
	t.Setenv("MAX_QUEUE_SIZE", "0")
	t.Setenv("JOB_TTL", "not-a-duration")

	cfg := Load()
	if cfg.WorkerCount != 4 {
		t.Errorf("WorkerCount = %d, want default", cfg.WorkerCount)
	}
	if cfg.MaxQueueSize != 100 {
		t.Errorf("MaxQueueSize = %d, want default", cfg.MaxQueueSize)
	}
	if cfg.JobTTL != time.Hour {
		t.Errorf("JobTTL = %v, want default", cfg.JobTTL)
	}
}

func TestValidate(t *testing.T) {
	cfg := Load()
	cfg.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing API key accepted")
	}

	cfg.APIKey = "secret"
	cfg.DataDir = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty data dir accepted")
	}

	cfg.DataDir = "data/sections"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestAnalyzerConfig(t *testing.T) {
	cfg := Load()
	cfg.MaxKeyPhrases = 3
	cfg.StrictSummary = true

	a := cfg.Analyzer()
	if a.MaxKeyPhrases != 3 || !a.StrictSummary {
		t.Fatalf("analyzer config = %+v", a)
	}
	if a.Stopwords == nil || a.Abbreviations == nil {
		t.Fatal("analyzer defaults not carried over")
	}
}
