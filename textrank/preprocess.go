package textrank

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/az-ai-labs/textrank/internal/textcase"
)

// Token is one kept position of the analyzed text.
type Token struct {
	Surface    string `json:"surface"`
	Normalized string `json:"normalized"`
	Tag        string `json:"tag"`
	Position   int    `json:"position"`
	// Vertex is set when the token passed the POS, stopword and length filters.
	Vertex bool `json:"vertex"`
	// Boundary is set when dropped punctuation separated this token from
	// the previous one. Phrases never span a boundary.
	Boundary bool `json:"boundary,omitempty"`
}

// checkInput rejects text that has nothing to rank.
func checkInput(text string, maxBytes int) error {
	switch {
	case len(text) > maxBytes:
		return &InvalidInputError{Reason: fmt.Sprintf("text is %d bytes, limit is %d", len(text), maxBytes)}
	case !utf8.ValidString(text):
		return &InvalidInputError{Reason: "text is not valid UTF-8"}
	case strings.TrimSpace(text) == "":
		return &InvalidInputError{Reason: "text is empty"}
	}
	return nil
}

// preprocess tags text and returns the kept token sequence together with
// the distinct vertex identities in first-occurrence order.
//
// Tokens whose normalized form is empty are dropped; every other token is
// kept, vertex or not, so window distances match the original text.
func preprocess(text string, cfg Config) ([]Token, []string, error) {
	if err := checkInput(text, cfg.MaxInputBytes); err != nil {
		return nil, nil, err
	}

	tagged, err := cfg.tagger().Tag(text)
	if err != nil {
		return nil, nil, fmt.Errorf("textrank: tagging: %w", err)
	}

	stop := cfg.stopwordSet()
	tokens := make([]Token, 0, len(tagged))
	vertices := make([]string, 0, len(tagged)/2+1)
	seen := make(map[string]struct{}, len(tagged)/2+1)

	boundary := false
	for _, tt := range tagged {
		src := tt.Normalized
		if src == "" {
			src = tt.Surface
		}
		norm := textcase.Normalize(src)
		if norm == "" {
			if strings.TrimSpace(tt.Surface) != "" {
				boundary = true
			}
			continue
		}

		tok := Token{
			Surface:    tt.Surface,
			Normalized: norm,
			Tag:        tt.Tag,
			Position:   len(tokens),
			Boundary:   boundary && len(tokens) > 0,
		}
		boundary = false

		tok.Vertex = hasTagPrefix(tt.Tag, cfg.POSTags) &&
			!stop[norm] &&
			utf8.RuneCountInString(norm) >= cfg.MinTokenRunes
		if tok.Vertex {
			if _, ok := seen[norm]; !ok {
				seen[norm] = struct{}{}
				vertices = append(vertices, norm)
			}
		}
		tokens = append(tokens, tok)
	}

	return tokens, vertices, nil
}

func hasTagPrefix(tag string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(tag, p) {
			return true
		}
	}
	return false
}
