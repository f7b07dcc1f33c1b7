package analyzer

import (
	"strings"

	"github.com/vedanth-raj/sectionize/internal/paper"
)

// DetectSections runs the full single-pass decomposition of raw document
// text: boundary detection, classification, per-section content analysis
// and aggregation. It is a pure function of its inputs; identical calls
// return identical results, and degenerate input is never an error.
func DetectSections(raw string, meta paper.Metadata, cfg Config) paper.DocumentSectionSet {
	cfg = cfg.normalize()
	table := cfg.table()

	lines := strings.Split(raw, "\n")
	pages := pageIndex(lines)
	boundaries := DetectBoundaries(raw, cfg)

	var sections []paper.Section

	if len(boundaries) == 1 && boundaries[0].Synthetic {
		content := joinContent(lines, 0, len(lines))
		sections = append(sections, buildSection("", paper.TypeOther, content, 1, pages[len(pages)-1], cfg))
		return Aggregate(sections, meta)
	}

	// Text before the first confirmed heading (title block, author list)
	// is kept as an untitled section rather than dropped.
	first := boundaries[0]
	if pre := joinContent(lines, 0, first.LineIndex); pre != "" {
		endPage := pages[0]
		if first.LineIndex > 0 {
			endPage = pages[first.LineIndex-1]
		}
		sections = append(sections, buildSection("", paper.TypeOther, pre, pages[0], endPage, cfg))
	}

	for k, b := range boundaries {
		end := len(lines)
		if k+1 < len(boundaries) {
			end = boundaries[k+1].LineIndex
		}
		content := joinContent(lines, b.LineIndex+1, end)
		endPage := b.Page
		if end-1 > b.LineIndex {
			endPage = pages[end-1]
		}
		sections = append(sections, buildSection(b.HeadingText, Classify(b.HeadingText, table), content, b.Page, endPage, cfg))
	}

	return Aggregate(sections, meta)
}

func buildSection(title string, t paper.SectionType, content string, startPage, endPage int, cfg Config) paper.Section {
	return paper.Section{
		Title:      title,
		Type:       t,
		Content:    content,
		StartPage:  startPage,
		EndPage:    endPage,
		WordCount:  WordCount(content),
		KeyPhrases: KeyPhrases(content, cfg),
		Sentences:  SplitSentences(content, cfg),
	}
}

// joinContent joins lines[from:to], dropping page markers, and trims the
// surrounding whitespace.
func joinContent(lines []string, from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(lines) {
		to = len(lines)
	}
	var b strings.Builder
	for i := from; i < to; i++ {
		if pageMarkerRe.MatchString(strings.TrimSpace(lines[i])) {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(lines[i])
	}
	return strings.TrimSpace(b.String())
}
