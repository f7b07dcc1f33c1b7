package analyzer

import (
	"fmt"

	"github.com/vedanth-raj/sectionize/internal/paper"
)

// Aggregate assembles classified sections into a DocumentSectionSet with
// tallied type counts and the exact word-count sum.
func Aggregate(sections []paper.Section, meta paper.Metadata) paper.DocumentSectionSet {
	counts := make(map[paper.SectionType]int)
	total := 0
	for _, s := range sections {
		counts[s.Type]++
		total += s.WordCount
	}
	return paper.DocumentSectionSet{
		Metadata: meta,
		Sections: sections,
		Summary: paper.Summary{
			TotalSections: len(sections),
			SectionTypes:  counts,
			TotalWords:    total,
		},
	}
}

// VerifySummary recomputes the summary from the sections list and checks
// it against the stored values. A mismatch indicates an internal defect:
// in strict mode it is returned as an error, otherwise the summary is
// corrected in place from the sections, which remain the source of truth.
func VerifySummary(set *paper.DocumentSectionSet, strict bool) error {
	fresh := Aggregate(set.Sections, set.Metadata).Summary

	if set.Summary.TotalWords != fresh.TotalWords {
		if strict {
			return fmt.Errorf("summary total_words %d != recomputed %d",
				set.Summary.TotalWords, fresh.TotalWords)
		}
		set.Summary = fresh
		return nil
	}
	if set.Summary.TotalSections != fresh.TotalSections {
		if strict {
			return fmt.Errorf("summary total_sections %d != recomputed %d",
				set.Summary.TotalSections, fresh.TotalSections)
		}
		set.Summary = fresh
	}
	return nil
}
