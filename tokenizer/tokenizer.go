// Package tokenizer splits text into structured tokens with byte offsets.
//
// The package provides two API layers:
//
//   - Structured: WordTokens returns []Token with byte offsets and type
//     metadata. The invariant s[t.Start:t.End] == t.Text holds for every
//     token, and concatenating all token texts reconstructs the original
//     string.
//
//   - Convenience: Words returns the Word token texts only.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Dotted abbreviations are joined only when every segment is a single
//     letter (i.e, U.S.A). The trailing period stays a separate token.
//   - URLs and e-mail addresses are split on their punctuation.
package tokenizer

import "fmt"

// wordsPerTokenEstimate is the estimated ratio of total tokens to word tokens,
// used to pre-allocate the words slice in the Words convenience function.
const wordsPerTokenEstimate = 2

// TokenType classifies a token.
type TokenType int

const (
	Word        TokenType = iota // Letter-started run, including joined hyphens, apostrophes and dotted abbreviations
	Number                       // Digits, with '.' or ',' between digit groups
	Punctuation                  // Punctuation marks: . , ! ? : ; ( ) etc.
	Space                        // Contiguous whitespace (spaces, tabs, newlines)
	Symbol                       // Everything else: emoji, math and currency symbols, etc.
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Number:
		return "Number"
	case Punctuation:
		return "Punctuation"
	case Space:
		return "Space"
	case Symbol:
		return "Symbol"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token represents a unit of text with its position and classification.
type Token struct {
	Text  string    // The token text
	Start int       // Byte offset in the original string (inclusive)
	End   int       // Byte offset in the original string (exclusive)
	Type  TokenType // Classification of the token
}

// String returns a debug representation, e.g. Word("graph")[0:5].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// WordTokens splits text into all tokens with metadata.
// The byte offset invariant s[t.Start:t.End] == t.Text holds for every token.
// Concatenating all token texts reconstructs the original string.
func WordTokens(s string) []Token {
	if s == "" {
		return nil
	}
	return wordTokens(s)
}

// Words returns only Word-type token texts from the text.
// For full control, use WordTokens and filter by Type.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	tokens := wordTokens(s)
	words := make([]string, 0, len(tokens)/wordsPerTokenEstimate)
	for _, t := range tokens {
		if t.Type == Word {
			words = append(words, t.Text)
		}
	}
	return words
}
