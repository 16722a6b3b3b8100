package tagger

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagsOf(t *testing.T, text string) []string {
	t.Helper()
	tagged, err := NewRules().Tag(text)
	require.NoError(t, err)
	tags := make([]string, len(tagged))
	for i, tt := range tagged {
		tags[i] = tt.Surface + "/" + tt.Tag
	}
	return tags
}

func TestRulesTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "noun phrase sentence",
			input: "Compatibility of systems of linear constraints over the set of natural numbers.",
			want: []string{
				"Compatibility/NN", "of/IN", "systems/NNS", "of/IN", "linear/JJ",
				"constraints/NNS", "over/IN", "the/DT", "set/NN", "of/IN",
				"natural/JJ", "numbers/NNS", "./.",
			},
		},
		{
			name:  "proper noun mid sentence",
			input: "linear Diophantine equations",
			want:  []string{"linear/JJ", "Diophantine/NNP", "equations/NNS"},
		},
		{
			name:  "capitalized sentence start is not proper",
			input: "Criteria are considered. Upper bounds",
			want:  []string{"Criteria/NN", "are/VBP", "considered/VBN", "./.", "Upper/JJ", "bounds/NNS"},
		},
		{
			name:  "hyphenated plural",
			input: "strict in-equations",
			want:  []string{"strict/JJ", "in-equations/NNS"},
		},
		{
			name:  "numbers and punctuation",
			input: "3 (solutions), $5",
			want:  []string{"3/CD", "(/(", "solutions/NNS", ")/)", ",/,", "$/$", "5/CD"},
		},
		{
			name:  "suffix rules",
			input: "quickly solving decoupled numerical abstract",
			want:  []string{"quickly/RB", "solving/VBG", "decoupled/VBN", "numerical/JJ", "abstract/JJ"},
		},
		{
			name:  "singular words ending in s",
			input: "analysis process status",
			want:  []string{"analysis/NN", "process/NN", "status/NN"},
		},
		{
			name:  "empty",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tagsOf(t, tt.input))
		})
	}
}

func TestRulesNormalized(t *testing.T) {
	t.Parallel()

	tagged, err := NewRules().Tag("Linear, SYSTEMS.")
	require.NoError(t, err)
	require.Len(t, tagged, 4)

	assert.Equal(t, "linear", tagged[0].Normalized)
	assert.Equal(t, "", tagged[1].Normalized)
	assert.Equal(t, "systems", tagged[2].Normalized)
	assert.Equal(t, "SYSTEMS", tagged[2].Surface)
	assert.Equal(t, "", tagged[3].Normalized)
}

func TestRulesDeterministic(t *testing.T) {
	t.Parallel()

	input := "Low index linear systems with those properly stated leading terms are considered in detail."
	first := tagsOf(t, input)
	for range 10 {
		assert.Equal(t, first, tagsOf(t, input))
	}
}

func TestFunc(t *testing.T) {
	t.Parallel()

	want := []Tagged{{Surface: "graph", Normalized: "graph", Tag: "NN"}}
	var tg Tagger = Func(func(text string) ([]Tagged, error) {
		assert.Equal(t, "graph", text)
		return want, nil
	})

	got, err := tg.Tag("graph")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	boom := errors.New("model not loaded")
	_, err = Func(func(string) ([]Tagged, error) { return nil, boom }).Tag("x")
	assert.ErrorIs(t, err, boom)
}

func TestRulesConcurrentSafety(t *testing.T) {
	input := "Abstract differential algebraic equations in infinite-dimensional Hilbert spaces are introduced."
	want := tagsOf(t, input)

	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			assert.Equal(t, want, tagsOf(t, input))
		})
	}
	wg.Wait()
}

func FuzzRulesTag(f *testing.F) {
	f.Add("Compatibility of systems of linear constraints.")
	f.Add("")
	f.Add("\xff\xfe")
	f.Add("i.e. U.S.A. don't")
	f.Fuzz(func(t *testing.T, text string) {
		tagged, err := NewRules().Tag(text)
		if err != nil {
			t.Fatalf("Tag(%q) error: %v", text, err)
		}
		for i, tt := range tagged {
			if tt.Tag == "" {
				t.Errorf("token %d (%q) has empty tag", i, tt.Surface)
			}
		}
	})
}
