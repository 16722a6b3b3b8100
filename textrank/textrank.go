// Package textrank extracts keywords and key phrases from a single document
// with the TextRank algorithm.
//
// The pipeline runs in five steps:
//
//  1. Tag the text and keep every token whose normalized form is not empty.
//     Tokens whose tag starts with an allowed prefix and that are not
//     stopwords become graph vertices.
//  2. Link vertices that co-occur within a window over the full token
//     sequence. Filtered tokens still occupy positions.
//  3. Rank vertices by weighted PageRank until the scores settle.
//  4. Select the top T vertices as keywords; by default T is a third of the
//     vertex count.
//  5. Collapse runs of adjacent keywords in the text into phrases.
//
// Tagging is pluggable through tagger.Tagger. The default tagger.Rules
// handles English.
//
// Every call builds its own state, so all functions are safe for concurrent
// use by multiple goroutines.
package textrank

import "maps"

// Analysis is the full result of ranking one text.
type Analysis struct {
	Tokens []Token
	Graph  *Graph
	// Scores maps each vertex to its final score.
	Scores map[string]float64
	// Ranking lists every vertex by descending score.
	Ranking    []RankedKeyword
	Iterations int
	Converged  bool

	minPhraseWords int
}

// Analyze validates cfg, then tags, links and ranks text.
func Analyze(text string, cfg Config) (*Analysis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tokens, vertices, err := preprocess(text, cfg)
	if err != nil {
		return nil, err
	}

	g := buildGraph(tokens, vertices, cfg.Window, cfg.Weighting)
	res := rank(g, cfg)

	scores := make(map[string]float64, g.Len())
	for i, v := range g.vertices {
		scores[v] = res.scores[i]
	}
	return &Analysis{
		Tokens:         tokens,
		Graph:          g,
		Scores:         scores,
		Ranking:        rankVertices(g, res.scores),
		Iterations:     res.iterations,
		Converged:      res.converged,
		minPhraseWords: cfg.MinPhraseWords,
	}, nil
}

// Keywords returns the top vertices. A non-positive top selects the default
// third of the vertex count.
func (a *Analysis) Keywords(top int) []RankedKeyword {
	n := clampTop(top, len(a.Ranking))
	out := make([]RankedKeyword, n)
	copy(out, a.Ranking[:n])
	return out
}

// Phrases collapses the top keywords into phrases and returns at most top of
// them, or the default count when top is not positive.
func (a *Analysis) Phrases(top int) []RankedPhrase {
	n := clampTop(top, len(a.Ranking))
	selected := make(map[string]float64, n)
	for _, kw := range a.Ranking[:n] {
		selected[kw.Text] = kw.Score
	}
	phrases := collapse(a.Tokens, selected, a.minPhraseWords)
	if len(phrases) > n {
		phrases = phrases[:n]
	}
	return phrases
}

// Export returns the graph with final scores attached.
func (a *Analysis) Export() *GraphExport {
	x := a.Graph.Export()
	x.Scores = maps.Clone(a.Scores)
	return x
}

// Rank returns every vertex of text with its score, highest first.
func Rank(text string, cfg Config) ([]RankedKeyword, error) {
	a, err := Analyze(text, cfg)
	if err != nil {
		return nil, err
	}
	return a.Ranking, nil
}

// Keywords returns the top keywords of text. A non-positive top selects a
// third of the vertex count, rounded half up.
func Keywords(text string, top int, cfg Config) ([]RankedKeyword, error) {
	a, err := Analyze(text, cfg)
	if err != nil {
		return nil, err
	}
	return a.Keywords(top), nil
}

// MultiKeywords returns key phrases built from the top keywords of text.
func MultiKeywords(text string, top int, cfg Config) ([]RankedPhrase, error) {
	a, err := Analyze(text, cfg)
	if err != nil {
		return nil, err
	}
	return a.Phrases(top), nil
}

// BuildGraph returns the scored co-occurrence graph of text.
func BuildGraph(text string, cfg Config) (*GraphExport, error) {
	a, err := Analyze(text, cfg)
	if err != nil {
		return nil, err
	}
	return a.Export(), nil
}
