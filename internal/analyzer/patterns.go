package analyzer

import (
	"fmt"
	"os"
	"regexp"

	"github.com/vedanth-raj/sectionize/internal/paper"
	"gopkg.in/yaml.v3"
)

// PatternEntry maps heading synonyms to one canonical section type. The
// table is ordered: the first entry whose pattern matches wins.
type PatternEntry struct {
	Type     paper.SectionType
	Patterns []*regexp.Regexp
}

// defaultPatterns is the built-in classification table. Patterns are
// case-insensitive and word-boundary anchored, so numeric prefixes like
// "3. Methodology" still match. The slice and its regexps are never
// mutated after initialization.
var defaultPatterns = []PatternEntry{
	{paper.TypeAbstract, compileAll(
		`(?i)\babstract\b`,
		`(?i)^\s*a\s+b\s+s\s+t\s+r\s+a\s+c\s+t\s*$`,
		`(?i)\bsummary\b`,
	)},
	{paper.TypeIntroduction, compileAll(
		`(?i)\bintroduction\b`,
	)},
	{paper.TypeRelatedWork, compileAll(
		`(?i)\brelated\s+works?\b`,
		`(?i)\bliterature\s+review\b`,
		`(?i)\bbackground\b`,
		`(?i)\bprior\s+work\b`,
	)},
	{paper.TypeMethodology, compileAll(
		`(?i)\bmethodology\b`,
		`(?i)\bmethods?\b`,
		`(?i)\bmaterials\s+and\s+methods\b`,
		`(?i)\bapproach\b`,
	)},
	{paper.TypeResults, compileAll(
		`(?i)\bresults?\b`,
		`(?i)\bfindings\b`,
		`(?i)\bexperiments?\b`,
		`(?i)\bexperimental\s+setup\b`,
		`(?i)\bevaluation\b`,
	)},
	{paper.TypeDiscussion, compileAll(
		`(?i)\bdiscussion\b`,
		`(?i)\banalysis\b`,
	)},
	{paper.TypeConclusion, compileAll(
		`(?i)\bconclusions?\b`,
		`(?i)\bconcluding\s+remarks\b`,
		`(?i)\bfuture\s+work\b`,
	)},
	{paper.TypeReferences, compileAll(
		`(?i)\breferences\b`,
		`(?i)\bbibliography\b`,
		`(?i)\bworks\s+cited\b`,
	)},
	{paper.TypeAppendix, compileAll(
		`(?i)\bappendix\b`,
		`(?i)\bappendices\b`,
		`(?i)\bsupplementary\s+material\b`,
	)},
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

// table returns the effective ordered pattern table for this config:
// custom entries first, defaults as fallback.
func (c Config) table() []PatternEntry {
	if len(c.Custom) == 0 {
		return defaultPatterns
	}
	out := make([]PatternEntry, 0, len(c.Custom)+len(defaultPatterns))
	out = append(out, c.Custom...)
	out = append(out, defaultPatterns...)
	return out
}

// CustomPattern is the serializable form of one pattern table entry, as
// it appears in YAML pattern files and API requests.
type CustomPattern struct {
	Type  string   `yaml:"type" json:"type"`
	Match []string `yaml:"match" json:"match"`
}

// patternFile is the YAML shape for user-supplied pattern tables:
//
//	patterns:
//	  - type: methodology
//	    match:
//	      - '(?i)\bexperimental design\b'
type patternFile struct {
	Patterns []CustomPattern `yaml:"patterns"`
}

// LoadPatternsFile reads custom classification patterns from a YAML file.
// Entries keep file order, so earlier entries take precedence.
func LoadPatternsFile(path string) ([]PatternEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pf patternFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse patterns: %w", err)
	}
	return BuildPatterns(pf.Patterns)
}

// BuildPatterns validates and compiles custom pattern entries, keeping
// their order.
func BuildPatterns(patterns []CustomPattern) ([]PatternEntry, error) {
	var entries []PatternEntry
	for i, p := range patterns {
		st := paper.SectionType(p.Type)
		if !st.Valid() {
			return nil, fmt.Errorf("patterns[%d]: unknown section type %q", i, p.Type)
		}
		if len(p.Match) == 0 {
			return nil, fmt.Errorf("patterns[%d]: no match expressions for %q", i, p.Type)
		}
		entry := PatternEntry{Type: st}
		for _, expr := range p.Match {
			re, err := regexp.Compile(expr)
			if err != nil {
				return nil, fmt.Errorf("patterns[%d]: %w", i, err)
			}
			entry.Patterns = append(entry.Patterns, re)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
