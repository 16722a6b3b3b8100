// Package textcase provides the token normalization used to derive vertex
// identities: Unicode NFC composition, language-neutral lowercasing and
// punctuation and symbol stripping.
//
// All functions are safe for concurrent use. A cases.Caser is stateful, so
// a fresh one is created per call instead of being shared.
package textcase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// ComposeNFC returns s in Unicode Normalization Form C.
func ComposeNFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}

// ToLower returns the lowercase form of s using undetermined-language rules.
func ToLower(s string) string {
	if s == "" {
		return s
	}
	return cases.Lower(language.Und).String(s)
}

// StripPunct removes punctuation and symbol runes from s. A hyphen or
// apostrophe that joins two letters or digits is kept, so "in-equations"
// and "don't" survive intact while "(systems)," becomes "systems" and a
// lone "+" becomes "".
func StripPunct(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if (unicode.IsPunct(r) || unicode.IsSymbol(r)) && !(isJoiner(r) && joinsWords(s, i, size)) {
			i += size
			continue
		}
		b.WriteRune(r)
		i += size
	}
	return b.String()
}

// Normalize composes, lowercases and strips punctuation and surrounding
// whitespace from s. The result is empty for punctuation-only input.
func Normalize(s string) string {
	return strings.TrimSpace(StripPunct(ToLower(ComposeNFC(s))))
}

func isJoiner(r rune) bool {
	return r == '-' || r == '\'' || r == '’' || r == 'ʼ'
}

// joinsWords reports whether the rune at s[i:i+size] sits between two
// letters or digits.
func joinsWords(s string, i, size int) bool {
	if i == 0 || i+size >= len(s) {
		return false
	}
	prev, _ := utf8.DecodeLastRuneInString(s[:i])
	next, _ := utf8.DecodeRuneInString(s[i+size:])
	return isWordRune(prev) && isWordRune(next)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}
