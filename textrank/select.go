package textrank

import "slices"

// RankedKeyword is a vertex and its final score.
type RankedKeyword struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// defaultTop is one third of the vertex count, rounded half up, at least 1.
func defaultTop(n int) int {
	return max(1, (n+1)/3)
}

// clampTop resolves a requested keyword count against n vertices.
// Non-positive requests fall back to defaultTop.
func clampTop(top, n int) int {
	if n == 0 {
		return 0
	}
	if top <= 0 {
		top = defaultTop(n)
	}
	return min(max(top, 1), n)
}

// rankVertices orders every vertex by score descending. The stable sort
// over first-occurrence order breaks ties by earliest appearance.
func rankVertices(g *Graph, scores []float64) []RankedKeyword {
	out := make([]RankedKeyword, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = RankedKeyword{Text: v, Score: scores[i]}
	}
	slices.SortStableFunc(out, func(a, b RankedKeyword) int {
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
