package report

import (
	"strings"
	"testing"

	"github.com/vedanth-raj/sectionize/internal/paper"
)

func sampleSet() *paper.DocumentSectionSet {
	return &paper.DocumentSectionSet{
		Metadata: paper.Metadata{
			Title:     "Deep Parsing",
			Authors:   []string{"Jane Doe", "John Smith"},
			PageCount: 7,
		},
		Sections: []paper.Section{
			{Title: "", Type: paper.TypeOther, WordCount: 12, StartPage: 1, EndPage: 1},
			{Title: "Abstract", Type: paper.TypeAbstract, WordCount: 80, StartPage: 1, EndPage: 1,
				KeyPhrases: []string{"Transformer", "LSTM"}},
			{Title: "References", Type: paper.TypeReferences, WordCount: 200, StartPage: 6, EndPage: 7},
		},
		Summary: paper.Summary{
			TotalSections: 3,
			SectionTypes: map[paper.SectionType]int{
				paper.TypeOther:      1,
				paper.TypeAbstract:   1,
				paper.TypeReferences: 1,
			},
			TotalWords: 292,
		},
	}
}

func TestDocumentReport(t *testing.T) {
	out := Document(sampleSet())

	for _, want := range []string{
		"Deep Parsing",
		"Jane Doe, John Smith",
		"Pages:   7",
		"Total sections: 3",
		"Total words:    292",
		"(untitled)",
		"Abstract",
		"key phrases: Transformer, LSTM",
		"pages 6-7",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestDocumentReportUnknownFields(t *testing.T) {
	set := &paper.DocumentSectionSet{Summary: paper.Summary{}}
	out := Document(set)
	if !strings.Contains(out, "Title:   Unknown") || !strings.Contains(out, "Authors: Unknown") {
		t.Fatalf("placeholders missing:\n%s", out)
	}
}

func TestCorpusReport(t *testing.T) {
	cmp := &paper.CorpusComparison{
		DocumentCount: 2,
		SectionTypeFrequency: map[paper.SectionType]int{
			paper.TypeAbstract:   2,
			paper.TypeReferences: 1,
		},
		AverageWordCountByType: map[paper.SectionType]float64{
			paper.TypeAbstract:   115,
			paper.TypeReferences: 200,
		},
		CommonSectionTypes:         []paper.SectionType{paper.TypeAbstract},
		StructuralOverlapRatio:     0.5,
		AverageSectionsPerDocument: 2.5,
		LongestSection: &paper.SectionRef{
			DocumentTitle: "B", SectionTitle: "Introduction",
			Type: paper.TypeIntroduction, WordCount: 500,
		},
		ShortestSection: &paper.SectionRef{
			DocumentTitle: "A", SectionTitle: "",
			Type: paper.TypeOther, WordCount: 12,
		},
		Skipped: []paper.SkipRecord{
			{Index: 3, Skipped: true, Reason: "nil sections list"},
		},
	}

	out := Corpus(cmp)
	for _, want := range []string{
		"Documents compared: 2",
		"Average sections per document: 2.50",
		"Structural overlap ratio: 0.50",
		"Common section types: abstract",
		`"Introduction" in "B" (500 words)`,
		`"(untitled)" in "A" (12 words)`,
		"#3 Unknown: nil sections list",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestCorpusReportNoCommonTypes(t *testing.T) {
	out := Corpus(&paper.CorpusComparison{DocumentCount: 2})
	if !strings.Contains(out, "Common section types: none") {
		t.Fatalf("placeholder missing:\n%s", out)
	}
}
