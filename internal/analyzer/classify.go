package analyzer

import (
	"strings"

	"github.com/vedanth-raj/sectionize/internal/paper"
)

// Classify maps a heading line to a canonical section type using an
// ordered pattern table. The first entry with a matching pattern wins;
// unmatched headings classify to other, never discarding content.
func Classify(heading string, table []PatternEntry) paper.SectionType {
	if t, ok := matchTable(heading, table); ok {
		return t
	}
	return paper.TypeOther
}

// matchTable reports the first table entry matching the heading, if any.
func matchTable(heading string, table []PatternEntry) (paper.SectionType, bool) {
	h := strings.TrimSpace(heading)
	if h == "" {
		return paper.TypeOther, false
	}
	for _, entry := range table {
		for _, re := range entry.Patterns {
			if re.MatchString(h) {
				return entry.Type, true
			}
		}
	}
	return paper.TypeOther, false
}
