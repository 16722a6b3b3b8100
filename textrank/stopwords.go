package textrank

import (
	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"

	"github.com/az-ai-labs/textrank/internal/textcase"
)

// englishStopwords is bleve's Snowball English stop list, loaded once and
// read-only afterwards.
var englishStopwords = loadEnglishStopwords()

func loadEnglishStopwords() analysis.TokenMap {
	tm := analysis.NewTokenMap()
	if err := tm.LoadBytes(en.EnglishStopWords); err != nil {
		panic("textrank: loading english stop words: " + err.Error())
	}
	return tm
}

// stopwordSet resolves the stop list for c. Custom entries are normalized
// the same way tokens are, so "The" in a config file matches "the".
func (c Config) stopwordSet() analysis.TokenMap {
	if c.DisableStopwords {
		return nil
	}
	if c.Stopwords == nil {
		return englishStopwords
	}
	tm := analysis.NewTokenMap()
	for _, w := range c.Stopwords {
		if norm := textcase.Normalize(w); norm != "" {
			tm.AddToken(norm)
		}
	}
	return tm
}

// IsStopword reports whether word is in the built-in English stop list.
func IsStopword(word string) bool {
	return englishStopwords[textcase.Normalize(word)]
}
