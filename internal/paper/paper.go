package paper

import (
	"encoding/json"
	"strings"
)

// SectionType is one of the canonical academic paper section categories.
type SectionType string

const (
	TypeAbstract     SectionType = "abstract"
	TypeIntroduction SectionType = "introduction"
	TypeRelatedWork  SectionType = "related_work"
	TypeMethodology  SectionType = "methodology"
	TypeResults      SectionType = "results"
	TypeDiscussion   SectionType = "discussion"
	TypeConclusion   SectionType = "conclusion"
	TypeReferences   SectionType = "references"
	TypeAppendix     SectionType = "appendix"
	TypeOther        SectionType = "other"
)

// CanonicalTypes lists every section type in document order, most
// specific categories first. Iteration over this slice keeps map-derived
// output deterministic.
var CanonicalTypes = []SectionType{
	TypeAbstract,
	TypeIntroduction,
	TypeRelatedWork,
	TypeMethodology,
	TypeResults,
	TypeDiscussion,
	TypeConclusion,
	TypeReferences,
	TypeAppendix,
	TypeOther,
}

// Valid reports whether t is a member of the closed enumeration.
func (t SectionType) Valid() bool {
	for _, c := range CanonicalTypes {
		if t == c {
			return true
		}
	}
	return false
}

// Metadata describes a source document. Supplied by the text extraction
// side alongside the raw text; never modified here.
type Metadata struct {
	Title     string
	Authors   []string
	PageCount int
}

// The serialized form collapses the author list into a single
// comma-separated string. Downstream consumers index into the JSON by
// these exact keys, so the shape is a stability contract.
type metadataJSON struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	PageCount int    `json:"page_count"`
}

func (m Metadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(metadataJSON{
		Title:     m.Title,
		Author:    strings.Join(m.Authors, ", "),
		PageCount: m.PageCount,
	})
}

func (m *Metadata) UnmarshalJSON(data []byte) error {
	var raw metadataJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Title = raw.Title
	m.PageCount = raw.PageCount
	m.Authors = nil
	if raw.Author != "" {
		m.Authors = strings.Split(raw.Author, ", ")
	}
	return nil
}

// Section is a contiguous classified span of document text. Built once
// during the analysis pass and never mutated afterward.
type Section struct {
	Title      string      `json:"title"`
	Type       SectionType `json:"type"`
	Content    string      `json:"content"`
	StartPage  int         `json:"start_page"`
	EndPage    int         `json:"end_page"`
	WordCount  int         `json:"word_count"`
	KeyPhrases []string    `json:"key_phrases"`
	Sentences  []string    `json:"sentences"`
}

// Summary holds per-document aggregate counts. TotalWords is always the
// exact sum of the section word counts.
type Summary struct {
	TotalSections int                 `json:"total_sections"`
	SectionTypes  map[SectionType]int `json:"section_types"`
	TotalWords    int                 `json:"total_words"`
}

// DocumentSectionSet is the complete structured decomposition of one
// document: metadata, position-ordered sections, and summary counts.
type DocumentSectionSet struct {
	Metadata Metadata  `json:"metadata"`
	Sections []Section `json:"sections"`
	Summary  Summary   `json:"section_summary"`
}

// Types returns the distinct section types present in the set, in
// canonical order.
func (d *DocumentSectionSet) Types() []SectionType {
	var out []SectionType
	for _, t := range CanonicalTypes {
		if d.Summary.SectionTypes[t] > 0 {
			out = append(out, t)
		}
	}
	return out
}

// SectionRef points at one section within a corpus, used for the
// longest/shortest extremes in a comparison.
type SectionRef struct {
	DocumentIndex int         `json:"document_index"`
	DocumentTitle string      `json:"document_title"`
	SectionIndex  int         `json:"section_index"`
	SectionTitle  string      `json:"section_title"`
	Type          SectionType `json:"type"`
	WordCount     int         `json:"word_count"`
}

// SkipRecord marks a corpus entry that could not be compared. The rest
// of the corpus is still processed; skips are reported, never silent.
type SkipRecord struct {
	Index   int    `json:"index"`
	Title   string `json:"title,omitempty"`
	Skipped bool   `json:"skipped"`
	Reason  string `json:"reason"`
}

// CorpusComparison is the corpus-wide reduction over a list of
// DocumentSectionSets. Recomputed on every call; callers may cache it
// but it is never a hidden source of truth.
type CorpusComparison struct {
	DocumentCount              int                         `json:"document_count"`
	SectionTypeFrequency       map[SectionType]int         `json:"section_type_frequency"`
	AverageWordCountByType     map[SectionType]float64     `json:"average_word_count_by_type"`
	LongestSection             *SectionRef                 `json:"longest_section_ref"`
	ShortestSection            *SectionRef                 `json:"shortest_section_ref"`
	CommonSectionTypes         []SectionType               `json:"common_section_types"`
	StructuralOverlapRatio     float64                     `json:"structural_overlap_ratio"`
	AverageSectionsPerDocument float64                     `json:"average_sections_per_document"`
	Skipped                    []SkipRecord                `json:"skipped,omitempty"`
}
