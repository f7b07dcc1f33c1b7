package corpus

import (
	"github.com/vedanth-raj/sectionize/internal/paper"
)

// Compare reduces a list of per-document section sets into corpus-wide
// statistics. Every reduction is independent of document order except
// the documented extremal tie-break (earliest document index, then
// earliest section position). Malformed entries are skipped with an
// explicit record; one bad document never aborts the whole comparison.
func Compare(sets []paper.DocumentSectionSet) paper.CorpusComparison {
	cmp := paper.CorpusComparison{
		SectionTypeFrequency:   make(map[paper.SectionType]int),
		AverageWordCountByType: make(map[paper.SectionType]float64),
	}

	wordTotals := make(map[paper.SectionType]int)
	sectionCounts := make(map[paper.SectionType]int)
	var presence []map[paper.SectionType]bool
	totalSections := 0

	for i := range sets {
		set := &sets[i]
		if reason := malformed(set); reason != "" {
			cmp.Skipped = append(cmp.Skipped, paper.SkipRecord{
				Index:   i,
				Title:   set.Metadata.Title,
				Skipped: true,
				Reason:  reason,
			})
			continue
		}

		seen := make(map[paper.SectionType]bool)
		for j := range set.Sections {
			sec := &set.Sections[j]
			seen[sec.Type] = true
			wordTotals[sec.Type] += sec.WordCount
			sectionCounts[sec.Type]++
			totalSections++

			ref := paper.SectionRef{
				DocumentIndex: i,
				DocumentTitle: set.Metadata.Title,
				SectionIndex:  j,
				SectionTitle:  sec.Title,
				Type:          sec.Type,
				WordCount:     sec.WordCount,
			}
			if cmp.LongestSection == nil || sec.WordCount > cmp.LongestSection.WordCount {
				r := ref
				cmp.LongestSection = &r
			}
			if cmp.ShortestSection == nil || sec.WordCount < cmp.ShortestSection.WordCount {
				r := ref
				cmp.ShortestSection = &r
			}
		}
		for t := range seen {
			cmp.SectionTypeFrequency[t]++
		}
		presence = append(presence, seen)
		cmp.DocumentCount++
	}

	for t, total := range wordTotals {
		cmp.AverageWordCountByType[t] = float64(total) / float64(sectionCounts[t])
	}

	cmp.CommonSectionTypes = commonTypes(presence)
	cmp.StructuralOverlapRatio = overlapRatio(presence)
	if cmp.DocumentCount > 0 {
		cmp.AverageSectionsPerDocument = float64(totalSections) / float64(cmp.DocumentCount)
	}

	return cmp
}

// malformed returns a skip reason for corpus entries that cannot be
// compared, or the empty string for valid entries.
func malformed(set *paper.DocumentSectionSet) string {
	if set.Sections == nil {
		return "nil sections list"
	}
	m := set.Metadata
	if m.Title == "" && len(m.Authors) == 0 && m.PageCount == 0 {
		return "missing metadata"
	}
	return ""
}

// commonTypes returns the types present in every document, in canonical
// order so the output is stable.
func commonTypes(presence []map[paper.SectionType]bool) []paper.SectionType {
	if len(presence) == 0 {
		return nil
	}
	var out []paper.SectionType
	for _, t := range paper.CanonicalTypes {
		inAll := true
		for _, seen := range presence {
			if !seen[t] {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, t)
		}
	}
	return out
}

// overlapRatio is |intersection| / |union| of the section type sets
// across all documents; zero when the union is empty.
func overlapRatio(presence []map[paper.SectionType]bool) float64 {
	union := make(map[paper.SectionType]bool)
	for _, seen := range presence {
		for t := range seen {
			union[t] = true
		}
	}
	if len(union) == 0 {
		return 0
	}
	return float64(len(commonTypes(presence))) / float64(len(union))
}
