// Package tagger defines the part-of-speech tagging boundary used by the
// textrank package and ships a rule-based English tagger.
//
// A Tagger turns raw text into an ordered sequence of (surface, normalized,
// tag) triples. The ranking core only inspects tag prefixes, so any tag set
// works as long as the configured POS filter uses the same vocabulary. The
// built-in Rules tagger emits Penn Treebank tags (NN, NNS, NNP, JJ, VB, ...).
//
// All taggers in this package are safe for concurrent use.
//
// Known limitations of Rules:
//
//   - Tags are assigned from a closed-class lexicon and suffix heuristics,
//     not a trained model. Noun/verb homographs ("set", "use") are tagged
//     as nouns.
//   - Capitalized words that do not start a sentence are tagged NNP.
package tagger

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/az-ai-labs/textrank/internal/textcase"
	"github.com/az-ai-labs/textrank/tokenizer"
)

// Tagged is one token produced by a Tagger.
type Tagged struct {
	Surface    string `json:"surface"`
	Normalized string `json:"normalized"`
	Tag        string `json:"tag"`
}

// Tagger tokenizes and tags raw text.
type Tagger interface {
	Tag(text string) ([]Tagged, error)
}

// Func adapts an ordinary function to the Tagger interface.
type Func func(text string) ([]Tagged, error)

// Tag calls f(text).
func (f Func) Tag(text string) ([]Tagged, error) {
	return f(text)
}

// Rules is a lexicon and suffix based English tagger built on the
// tokenizer package. The zero value is ready to use.
type Rules struct{}

// NewRules returns a Rules tagger.
func NewRules() Rules {
	return Rules{}
}

// Tag splits text with tokenizer.WordTokens and tags every non-space token.
// It never returns an error.
func (Rules) Tag(text string) ([]Tagged, error) {
	tokens := tokenizer.WordTokens(text)
	out := make([]Tagged, 0, len(tokens)/2+1)

	sentenceStart := true
	for _, tok := range tokens {
		var tag string
		switch tok.Type {
		case tokenizer.Space:
			continue
		case tokenizer.Word:
			tag = wordTag(tok.Text, sentenceStart)
			sentenceStart = false
		case tokenizer.Number:
			tag = "CD"
			sentenceStart = false
		case tokenizer.Punctuation:
			tag = punctTag(tok.Text)
			if tag == "." {
				sentenceStart = true
			}
		default:
			tag = symbolTag(tok.Text)
		}
		out = append(out, Tagged{
			Surface:    tok.Text,
			Normalized: textcase.Normalize(tok.Text),
			Tag:        tag,
		})
	}
	return out, nil
}

// wordTag assigns a tag to a single word. Lexicon entries win, then
// proper-noun capitalization, then suffix rules, then NN.
func wordTag(word string, sentenceStart bool) string {
	lower := textcase.ToLower(word)
	if tag, ok := lexicon[lower]; ok {
		return tag
	}
	if !sentenceStart && isCapitalized(word) {
		return "NNP"
	}

	n := utf8.RuneCountInString(lower)
	for _, rule := range suffixRules {
		if n >= rule.minRunes && strings.HasSuffix(lower, rule.suffix) {
			return rule.tag
		}
	}
	if n > 3 && strings.HasSuffix(lower, "s") && !hasAnySuffix(lower, "ss", "us", "is") {
		return "NNS"
	}
	return "NN"
}

func isCapitalized(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

func punctTag(p string) string {
	switch p {
	case ".", "!", "?", "...":
		return "."
	case ",":
		return ","
	case ":", ";", "-", "--", "–", "—":
		return ":"
	case "(", "[", "{":
		return "("
	case ")", "]", "}":
		return ")"
	case "\"", "“", "'", "‘":
		return "``"
	case "”", "’":
		return "''"
	case "#":
		return "#"
	default:
		return "SYM"
	}
}

func symbolTag(s string) string {
	switch s {
	case "$", "€", "£":
		return "$"
	default:
		return "SYM"
	}
}
