package analyzer

// Config controls section detection and content analysis. It is passed
// explicitly through every call; the package keeps no mutable state, so
// concurrent analyses with different configs are safe.
type Config struct {
	MaxHeadingLen int  // Lines longer than this are never heading candidates.
	Lookahead     int  // Window (in lines) to confirm a heading with following content.
	MaxKeyPhrases int  // K: maximum key phrases retained per section.
	StrictSummary bool // Report summary invariant violations instead of self-correcting.

	Stopwords     map[string]bool // Lowercased tokens excluded from key-phrase n-grams.
	Abbreviations []string        // Suffixes that suppress sentence splits, e.g. "et al."

	// Custom pattern entries are prepended to the default table, so callers
	// can override classification without losing the defaults as fallback.
	Custom []PatternEntry
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxHeadingLen: 60,
		Lookahead:     5,
		MaxKeyPhrases: 10,
		Stopwords:     defaultStopwords(),
		Abbreviations: defaultAbbreviations(),
	}
}

// normalize clamps zero/negative fields back to defaults, mirroring how
// callers may pass a partially filled Config.
func (c Config) normalize() Config {
	if c.MaxHeadingLen <= 0 {
		c.MaxHeadingLen = 60
	}
	if c.Lookahead <= 0 {
		c.Lookahead = 5
	}
	if c.MaxKeyPhrases <= 0 {
		c.MaxKeyPhrases = 10
	}
	if c.Stopwords == nil {
		c.Stopwords = defaultStopwords()
	}
	if c.Abbreviations == nil {
		c.Abbreviations = defaultAbbreviations()
	}
	return c
}

func defaultStopwords() map[string]bool {
	words := []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "as", "is", "are", "was", "were", "be", "been",
		"being", "have", "has", "had", "do", "does", "did", "will", "would",
		"could", "should", "may", "might", "must", "can", "this", "that",
		"these", "those", "it", "its", "we", "our", "their", "such", "than",
		"from", "into", "over", "under", "between", "both", "each", "more",
		"most", "other", "some", "any", "not", "no", "also",
	}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

func defaultAbbreviations() []string {
	return []string{
		"et al.", "e.g.", "i.e.", "etc.", "cf.", "vs.", "fig.", "figs.",
		"eq.", "eqs.", "sec.", "no.", "vol.", "pp.", "dr.", "prof.",
	}
}
