package textrank

import (
	"strings"

	"github.com/az-ai-labs/textrank/tagger"
)

// slashTagger reads pre-tagged text: whitespace separated "surface/TAG"
// fields. A field without a slash is tagged SYM.
var slashTagger = tagger.Func(func(text string) ([]tagger.Tagged, error) {
	fields := strings.Fields(text)
	out := make([]tagger.Tagged, 0, len(fields))
	for _, f := range fields {
		surface, tag, ok := strings.Cut(f, "/")
		if !ok {
			tag = "SYM"
		}
		out = append(out, tagger.Tagged{Surface: surface, Tag: tag})
	}
	return out, nil
})

// pretagged returns the default configuration with slashTagger installed.
func pretagged() Config {
	cfg := DefaultConfig()
	cfg.Tagger = slashTagger
	return cfg
}

func keywordTexts(kws []RankedKeyword) []string {
	out := make([]string, len(kws))
	for i, kw := range kws {
		out[i] = kw.Text
	}
	return out
}

func phraseTexts(ps []RankedPhrase) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Text
	}
	return out
}
