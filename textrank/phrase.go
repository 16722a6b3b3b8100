package textrank

import (
	"slices"
	"strings"
)

// RankedPhrase is a run of adjacent keywords, merged across occurrences.
type RankedPhrase struct {
	// Text joins the surface forms of the first occurrence with single spaces.
	Text  string  `json:"text"`
	Score float64 `json:"score"`
	// Occurrences counts the runs merged into this entry.
	Occurrences int `json:"occurrences"`
}

// collapse scans tokens for maximal runs of consecutive selected words.
// A run ends at a non-selected token, at a boundary token, or at the end of
// the sequence. Each run scores the sum of its members; runs with the same
// normalized text are merged by summing. Runs shorter than minWords words
// are dropped.
func collapse(tokens []Token, selected map[string]float64, minWords int) []RankedPhrase {
	out := make([]RankedPhrase, 0)
	index := make(map[string]int)

	var run []Token
	flush := func() {
		if len(run) == 0 || len(run) < minWords {
			run = run[:0]
			return
		}
		surface := make([]string, len(run))
		key := make([]string, len(run))
		score := 0.0
		for i, t := range run {
			surface[i] = t.Surface
			key[i] = t.Normalized
			score += selected[t.Normalized]
		}
		k := strings.Join(key, " ")
		if i, ok := index[k]; ok {
			out[i].Score += score
			out[i].Occurrences++
		} else {
			index[k] = len(out)
			out = append(out, RankedPhrase{
				Text:        strings.Join(surface, " "),
				Score:       score,
				Occurrences: 1,
			})
		}
		run = run[:0]
	}

	for _, t := range tokens {
		if t.Boundary {
			flush()
		}
		if _, ok := selected[t.Normalized]; ok && t.Vertex {
			run = append(run, t)
			continue
		}
		flush()
	}
	flush()

	slices.SortStableFunc(out, func(a, b RankedPhrase) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	return out
}
