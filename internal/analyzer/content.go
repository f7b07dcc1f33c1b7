package analyzer

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// WordCount counts whitespace-delimited tokens. Purely lexical and
// locale-independent.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// SplitSentences splits text on terminal punctuation followed by
// whitespace and an uppercase letter, or end of text. A fixed
// abbreviation list suppresses splits after tokens like "et al." and
// "Fig.". This is a heuristic; occasional false splits are expected.
func SplitSentences(text string, cfg Config) []string {
	cfg = cfg.normalize()

	runes := []rune(text)
	var sentences []string
	var cur strings.Builder

	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			sentences = append(sentences, s)
		}
		cur.Reset()
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		cur.WriteRune(r)
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if r == '.' && endsWithAbbreviation(cur.String(), cfg.Abbreviations) {
			continue
		}

		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j >= len(runes) {
			flush()
			i = j - 1
			continue
		}
		if j > i+1 && unicode.IsUpper(runes[j]) {
			flush()
			i = j - 1
		}
	}
	flush()

	return sentences
}

// endsWithAbbreviation checks whether s ends with one of the known
// abbreviations as a whole token, so "config." is not mistaken for "fig.".
func endsWithAbbreviation(s string, abbreviations []string) bool {
	lower := strings.ToLower(s)
	for _, a := range abbreviations {
		if !strings.HasSuffix(lower, a) {
			continue
		}
		rest := lower[:len(lower)-len(a)]
		if rest == "" {
			return true
		}
		r, _ := utf8.DecodeLastRuneInString(rest)
		if unicode.IsSpace(r) || r == '(' || r == '[' {
			return true
		}
	}
	return false
}

// KeyPhrases extracts the top-K salient 1-3 word phrases by frequency.
// Stopwords are removed first; a phrase is retained only if each word is
// capitalized or has an acronym shape. Ties rank by first occurrence in
// the token stream, so the result is deterministic for identical input.
func KeyPhrases(text string, cfg Config) []string {
	cfg = cfg.normalize()

	var words []string
	for _, tok := range strings.Fields(text) {
		tok = strings.TrimFunc(tok, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if tok == "" || cfg.Stopwords[strings.ToLower(tok)] {
			continue
		}
		words = append(words, tok)
	}

	type phraseStat struct {
		phrase string
		count  int
		first  int
	}
	stats := make(map[string]*phraseStat)
	seq := 0

	for i := range words {
		for n := 1; n <= 3 && i+n <= len(words); n++ {
			gram := words[i : i+n]
			if !eligiblePhrase(gram) {
				continue
			}
			phrase := strings.Join(gram, " ")
			if st, ok := stats[phrase]; ok {
				st.count++
			} else {
				stats[phrase] = &phraseStat{phrase: phrase, count: 1, first: seq}
				seq++
			}
		}
	}

	ranked := make([]*phraseStat, 0, len(stats))
	for _, st := range stats {
		ranked = append(ranked, st)
	}
	sort.Slice(ranked, func(a, b int) bool {
		if ranked[a].count != ranked[b].count {
			return ranked[a].count > ranked[b].count
		}
		return ranked[a].first < ranked[b].first
	})

	k := cfg.MaxKeyPhrases
	if k > len(ranked) {
		k = len(ranked)
	}
	out := make([]string, 0, k)
	for _, st := range ranked[:k] {
		out = append(out, st.phrase)
	}
	return out
}

// eligiblePhrase requires every word to start uppercase or contain an
// acronym run, the shapes that mark domain terms in academic text.
func eligiblePhrase(gram []string) bool {
	for _, w := range gram {
		r, _ := utf8.DecodeRuneInString(w)
		if unicode.IsUpper(r) || hasAcronymRun(w) {
			continue
		}
		return false
	}
	return true
}

// hasAcronymRun reports two or more consecutive uppercase letters
// anywhere in the word, e.g. "LSTM" or "mRNA".
func hasAcronymRun(w string) bool {
	run := 0
	for _, r := range w {
		if unicode.IsUpper(r) {
			run++
			if run >= 2 {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}
