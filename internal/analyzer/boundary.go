package analyzer

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/vedanth-raj/sectionize/internal/paper"
)

// Boundary is a confirmed heading position within the raw text.
type Boundary struct {
	LineIndex   int
	HeadingText string
	Page        int
	Synthetic   bool // True for the whole-document fallback boundary.
}

var (
	// Page markers inserted by the upstream text extractor.
	pageMarkerRe = regexp.MustCompile(`^---\s*Page\s+(\d+)\s*---$`)

	// Numbered headings: "1. Introduction", "2.3 Setup", "III. Methods".
	numberedHeadingRe = regexp.MustCompile(`^(?:\d+(?:\.\d+)*|[IVXLCivxlc]+)[.)]?\s+\S`)
)

// DetectBoundaries scans raw text line by line and returns confirmed
// heading positions. Absence of structure is not an error: when nothing
// is confirmed the result is a single synthetic boundary covering the
// whole text, which later classifies to other.
func DetectBoundaries(raw string, cfg Config) []Boundary {
	cfg = cfg.normalize()
	table := cfg.table()

	lines := strings.Split(raw, "\n")
	pages := pageIndex(lines)

	var out []Boundary
	inReferences := false

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || pageMarkerRe.MatchString(trimmed) {
			continue
		}
		if len([]rune(trimmed)) > cfg.MaxHeadingLen {
			continue
		}

		matchedType, matched := matchTable(trimmed, table)
		if !matched && !numberedHeadingRe.MatchString(trimmed) && !isAllCapsLine(trimmed) {
			continue
		}

		// Inside a reference list, only explicit keyword matches count as
		// headings; numbered and capitalized citation entries would
		// otherwise produce a run of false positives.
		if inReferences && !matched {
			continue
		}

		if !confirmedByContent(lines, i, trimmed, cfg.Lookahead) {
			continue
		}

		out = append(out, Boundary{
			LineIndex:   i,
			HeadingText: trimmed,
			Page:        pages[i],
		})
		if matched {
			inReferences = matchedType == paper.TypeReferences
		}
	}

	if len(out) == 0 {
		return []Boundary{{LineIndex: -1, HeadingText: "", Page: 1, Synthetic: true}}
	}
	return out
}

// confirmedByContent requires a following paragraph strictly longer than
// the heading within the lookahead window. Figure and table captions
// that resemble headings usually fail this check.
func confirmedByContent(lines []string, idx int, heading string, lookahead int) bool {
	headingLen := len([]rune(heading))
	for j := idx + 1; j <= idx+lookahead && j < len(lines); j++ {
		t := strings.TrimSpace(lines[j])
		if t == "" || pageMarkerRe.MatchString(t) {
			continue
		}
		if len([]rune(t)) > headingLen {
			return true
		}
	}
	return false
}

// isAllCapsLine reports whether every letter in a short line is
// uppercase, e.g. "METHODS" or "RESULTS AND DISCUSSION".
func isAllCapsLine(line string) bool {
	if len(strings.Fields(line)) > 8 {
		return false
	}
	hasLetter := false
	for _, r := range line {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// pageIndex assigns a page number to every line, driven by page markers
// and form feeds. Page numbers never decrease, which keeps the produced
// sections non-overlapping even for malformed marker sequences.
func pageIndex(lines []string) []int {
	pages := make([]int, len(lines))
	current := 1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if m := pageMarkerRe.FindStringSubmatch(trimmed); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > current {
				current = n
			}
		}
		pages[i] = current
		current += strings.Count(line, "\f")
	}
	return pages
}
