package report

import (
	"fmt"
	"strings"

	"github.com/vedanth-raj/sectionize/internal/paper"
)

// Document renders a human-readable section report for one analyzed
// paper. Every number comes straight from the DocumentSectionSet; nothing
// is recomputed, so the text can never drift from the JSON form.
func Document(set *paper.DocumentSectionSet) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Section Analysis Report\n%s\n\n", strings.Repeat("=", 50))
	fmt.Fprintf(&b, "Title:   %s\n", orUnknown(set.Metadata.Title))
	fmt.Fprintf(&b, "Authors: %s\n", orUnknown(strings.Join(set.Metadata.Authors, ", ")))
	fmt.Fprintf(&b, "Pages:   %d\n\n", set.Metadata.PageCount)

	fmt.Fprintf(&b, "Total sections: %d\n", set.Summary.TotalSections)
	fmt.Fprintf(&b, "Total words:    %d\n\n", set.Summary.TotalWords)

	fmt.Fprintf(&b, "Section types:\n")
	for _, t := range paper.CanonicalTypes {
		if n := set.Summary.SectionTypes[t]; n > 0 {
			fmt.Fprintf(&b, "  %-14s %d\n", t, n)
		}
	}

	fmt.Fprintf(&b, "\nSections:\n")
	for i, sec := range set.Sections {
		title := sec.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(&b, "  %2d. [%s] %s — %d words, pages %d-%d\n",
			i+1, sec.Type, title, sec.WordCount, sec.StartPage, sec.EndPage)
		if len(sec.KeyPhrases) > 0 {
			fmt.Fprintf(&b, "      key phrases: %s\n", strings.Join(sec.KeyPhrases, ", "))
		}
	}

	return b.String()
}

// Corpus renders the cross-document comparison summary from a
// CorpusComparison structure.
func Corpus(cmp *paper.CorpusComparison) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Cross-Paper Comparison\n%s\n\n", strings.Repeat("=", 50))
	fmt.Fprintf(&b, "Documents compared: %d\n", cmp.DocumentCount)
	fmt.Fprintf(&b, "Average sections per document: %.2f\n", cmp.AverageSectionsPerDocument)
	fmt.Fprintf(&b, "Structural overlap ratio: %.2f\n\n", cmp.StructuralOverlapRatio)

	fmt.Fprintf(&b, "Section type frequency (documents containing type):\n")
	for _, t := range paper.CanonicalTypes {
		if n := cmp.SectionTypeFrequency[t]; n > 0 {
			fmt.Fprintf(&b, "  %-14s %d", t, n)
			if avg, ok := cmp.AverageWordCountByType[t]; ok {
				fmt.Fprintf(&b, "  (avg %.0f words)", avg)
			}
			fmt.Fprintf(&b, "\n")
		}
	}

	if len(cmp.CommonSectionTypes) > 0 {
		names := make([]string, 0, len(cmp.CommonSectionTypes))
		for _, t := range cmp.CommonSectionTypes {
			names = append(names, string(t))
		}
		fmt.Fprintf(&b, "\nCommon section types: %s\n", strings.Join(names, ", "))
	} else {
		fmt.Fprintf(&b, "\nCommon section types: none\n")
	}

	if cmp.LongestSection != nil {
		fmt.Fprintf(&b, "Longest section:  %s\n", refLine(cmp.LongestSection))
	}
	if cmp.ShortestSection != nil {
		fmt.Fprintf(&b, "Shortest section: %s\n", refLine(cmp.ShortestSection))
	}

	if len(cmp.Skipped) > 0 {
		fmt.Fprintf(&b, "\nSkipped entries:\n")
		for _, s := range cmp.Skipped {
			fmt.Fprintf(&b, "  #%d %s: %s\n", s.Index, orUnknown(s.Title), s.Reason)
		}
	}

	return b.String()
}

func refLine(ref *paper.SectionRef) string {
	title := ref.SectionTitle
	if title == "" {
		title = "(untitled)"
	}
	return fmt.Sprintf("[%s] %q in %q (%d words)",
		ref.Type, title, orUnknown(ref.DocumentTitle), ref.WordCount)
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
