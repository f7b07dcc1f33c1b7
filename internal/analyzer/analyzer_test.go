package analyzer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vedanth-raj/sectionize/internal/paper"
)

var sampleDoc = strings.Join([]string{
	"Deep Learning for Parsing",
	"Jane Doe, John Smith",
	"",
	"Abstract",
	"We study neural approaches to parsing and report strong results on standard benchmarks.",
	"",
	"1. Introduction",
	"Parsing has a long history in natural language processing research and remains active.",
	"",
	"--- Page 2 ---",
	"2. Methodology",
	"Our method builds on encoder decoder architectures with attention over the input tokens.",
	"",
	"References",
	"1. Smith, J. A survey of parsing techniques for natural language. 2019.",
}, "\n")

func TestDetectSectionsFullDocument(t *testing.T) {
	meta := paper.Metadata{Title: "Deep Learning for Parsing", Authors: []string{"Jane Doe", "John Smith"}}
	set := analyzeDoc(t, sampleDoc, meta)

	// Document order: the title block becomes an untitled other section,
	// then one section per confirmed heading.
	wantTypes := []paper.SectionType{
		paper.TypeOther,
		paper.TypeAbstract,
		paper.TypeIntroduction,
		paper.TypeMethodology,
		paper.TypeReferences,
	}
	var gotTypes []paper.SectionType
	for _, s := range set.Sections {
		gotTypes = append(gotTypes, s.Type)
	}
	if !reflect.DeepEqual(gotTypes, wantTypes) {
		t.Fatalf("section types = %v, want %v", gotTypes, wantTypes)
	}

	if set.Sections[0].Title != "" {
		t.Errorf("preamble section has title %q", set.Sections[0].Title)
	}
	if !strings.Contains(set.Sections[0].Content, "Jane Doe") {
		t.Errorf("preamble lost the author line: %q", set.Sections[0].Content)
	}
	if set.Sections[1].Title != "Abstract" {
		t.Errorf("abstract title = %q", set.Sections[1].Title)
	}
	if set.Sections[3].StartPage != 2 {
		t.Errorf("methodology starts on page %d, want 2", set.Sections[3].StartPage)
	}
	for _, s := range set.Sections {
		if strings.Contains(s.Content, "--- Page") {
			t.Errorf("page marker leaked into section %q content", s.Title)
		}
	}
}

func TestDetectSectionsSummaryInvariants(t *testing.T) {
	set := analyzeDoc(t, sampleDoc, paper.Metadata{})

	if set.Summary.TotalSections != len(set.Sections) {
		t.Fatalf("TotalSections = %d, sections = %d", set.Summary.TotalSections, len(set.Sections))
	}
	sum := 0
	counts := map[paper.SectionType]int{}
	for _, s := range set.Sections {
		sum += s.WordCount
		counts[s.Type]++
		if s.WordCount != WordCount(s.Content) {
			t.Errorf("section %q word count %d, recomputed %d", s.Title, s.WordCount, WordCount(s.Content))
		}
	}
	if set.Summary.TotalWords != sum {
		t.Fatalf("TotalWords = %d, sum of sections = %d", set.Summary.TotalWords, sum)
	}
	if !reflect.DeepEqual(set.Summary.SectionTypes, counts) {
		t.Fatalf("SectionTypes = %v, recomputed %v", set.Summary.SectionTypes, counts)
	}
}

func TestDetectSectionsOrderedAndNonOverlapping(t *testing.T) {
	set := analyzeDoc(t, sampleDoc, paper.Metadata{})

	prevStart := 0
	for i, s := range set.Sections {
		if s.StartPage < 1 || s.EndPage < s.StartPage {
			t.Errorf("section %d has page range [%d, %d]", i, s.StartPage, s.EndPage)
		}
		if s.StartPage < prevStart {
			t.Errorf("section %d starts on page %d before previous start %d", i, s.StartPage, prevStart)
		}
		prevStart = s.StartPage
	}
}

func TestDetectSectionsDeterministic(t *testing.T) {
	meta := paper.Metadata{Title: "Sample", PageCount: 2}
	first := analyzeDoc(t, sampleDoc, meta)
	for i := 0; i < 5; i++ {
		if got := analyzeDoc(t, sampleDoc, meta); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}

func TestDetectSectionsNoHeadings(t *testing.T) {
	raw := "just prose with no structure at all\nspread over two short lines"
	set := analyzeDoc(t, raw, paper.Metadata{})

	if len(set.Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(set.Sections))
	}
	s := set.Sections[0]
	if s.Type != paper.TypeOther || s.Title != "" {
		t.Fatalf("fallback section = {%q %q}", s.Title, s.Type)
	}
	if s.WordCount != WordCount(raw) {
		t.Fatalf("fallback section dropped words: %d != %d", s.WordCount, WordCount(raw))
	}
	if set.Summary.TotalWords != s.WordCount {
		t.Fatalf("summary words %d != section words %d", set.Summary.TotalWords, s.WordCount)
	}
}

func TestDetectSectionsEmptyInput(t *testing.T) {
	set := analyzeDoc(t, "", paper.Metadata{})

	if len(set.Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(set.Sections))
	}
	if set.Sections[0].Type != paper.TypeOther {
		t.Errorf("empty input section type = %q", set.Sections[0].Type)
	}
	if set.Summary.TotalWords != 0 || set.Sections[0].WordCount != 0 {
		t.Errorf("empty input produced words: %+v", set.Summary)
	}
}

func analyzeDoc(t *testing.T, raw string, meta paper.Metadata) paper.DocumentSectionSet {
	t.Helper()
	set := DetectSections(raw, meta, DefaultConfig())
	if err := VerifySummary(&set, true); err != nil {
		t.Fatalf("summary invariant: %v", err)
	}
	return set
}
