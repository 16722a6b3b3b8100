package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// wordTokens splits s into tokens using a rune-by-rune state machine.
// The caller guarantees s is non-empty.
//
// Rule priority (highest first):
//   - Whitespace merging
//   - Number grouping (dot or comma between digit groups)
//   - Word scanning with joiners (hyphen, apostrophe, abbreviation dot)
//   - Punctuation, with consecutive hyphens merged
//   - Symbol fallback
func wordTokens(s string) []Token {
	tokens := make([]Token, 0, len(s)/4+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		start := i

		switch {
		case unicode.IsSpace(r):
			i = skipWhile(s, i+size, unicode.IsSpace)
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Space})

		case unicode.IsDigit(r):
			i = scanNumber(s, i)
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Number})

		case unicode.IsLetter(r):
			i = scanWord(s, i)
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Word})

		case unicode.IsPunct(r):
			i += size
			if r == '-' {
				i = skipWhile(s, i, func(nr rune) bool { return nr == '-' })
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Punctuation})

		default:
			i += size
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Symbol})
		}
	}

	return tokens
}

// scanNumber reads digits starting at pos. A single '.' or ',' followed by
// another digit continues the number, so "3.14" and "1,000,000" are one token.
func scanNumber(s string, pos int) int {
	i := skipWhile(s, pos, unicode.IsDigit)
	for i+1 < len(s) && (s[i] == '.' || s[i] == ',') && isDigitByte(s[i+1]) {
		i = skipWhile(s, i+1, unicode.IsDigit)
	}
	return i
}

// scanWord reads a word token starting at pos. A word begins with a letter
// and may contain digits and combining marks. It continues across:
//   - a single hyphen (U+002D) between letters/digits ("non-strict", "F-16")
//   - an apostrophe (U+0027, U+2019) between letters ("don't")
//   - a dot between single letters ("i.e", "U.S.A")
func scanWord(s string, pos int) int {
	i := pos
	for {
		segStart := i
		i = skipWhile(s, i, isWordRune)
		if i >= len(s) {
			return i
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if i+size >= len(s) {
			return i
		}
		next, _ := utf8.DecodeRuneInString(s[i+size:])

		switch {
		case r == '-' && isWordRune(next):
		case (r == '\'' || r == '’') && unicode.IsLetter(next):
		case r == '.' && unicode.IsLetter(next) && utf8.RuneCountInString(s[segStart:i]) == 1 &&
			singleLetterSegment(s, i+size):
		default:
			return i
		}
		i += size
	}
}

// singleLetterSegment reports whether the run starting at pos is exactly one
// letter, which keeps "numbers.Criteria" split while joining "i.e".
func singleLetterSegment(s string, pos int) bool {
	_, size := utf8.DecodeRuneInString(s[pos:])
	if pos+size >= len(s) {
		return true
	}
	after, _ := utf8.DecodeRuneInString(s[pos+size:])
	return !isWordRune(after)
}

func skipWhile(s string, pos int, pred func(rune) bool) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !pred(r) {
			break
		}
		pos += size
	}
	return pos
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

// isDigitByte returns true for ASCII digit bytes.
func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
