package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vedanth-raj/sectionize/internal/paper"
)

func TestLoadPatternsFile(t *testing.T) {
	yaml := `patterns:
  - type: methodology
    match:
      - '(?i)\bexperimental design\b'
  - type: results
    match:
      - '(?i)\bablation stud(y|ies)\b'
`
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	entries, err := LoadPatternsFile(path)
	if err != nil {
		t.Fatalf("LoadPatternsFile: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	cfg := DefaultConfig()
	cfg.Custom = entries
	table := cfg.table()

	if got := Classify("Experimental Design", table); got != paper.TypeMethodology {
		t.Errorf("custom pattern: got %q, want %q", got, paper.TypeMethodology)
	}
	if got := Classify("Ablation Studies", table); got != paper.TypeResults {
		t.Errorf("custom pattern: got %q, want %q", got, paper.TypeResults)
	}
	if got := Classify("References", table); got != paper.TypeReferences {
		t.Errorf("default fallback: got %q, want %q", got, paper.TypeReferences)
	}
}

func TestLoadPatternsFileMissing(t *testing.T) {
	if _, err := LoadPatternsFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestBuildPatternsValidation(t *testing.T) {
	cases := []struct {
		name     string
		patterns []CustomPattern
	}{
		{"unknown type", []CustomPattern{{Type: "prologue", Match: []string{"x"}}}},
		{"empty match list", []CustomPattern{{Type: "results", Match: nil}}},
		{"bad regexp", []CustomPattern{{Type: "results", Match: []string{"("}}}},
	}
	for _, tc := range cases {
		if _, err := BuildPatterns(tc.patterns); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}
