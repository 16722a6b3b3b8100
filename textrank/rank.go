package textrank

import (
	"math"

	"go.uber.org/zap"
)

// rankResult holds the outcome of power iteration.
type rankResult struct {
	scores     []float64 // indexed like Graph.vertices
	iterations int
	converged  bool
	maxDelta   float64
}

// rank runs weighted TextRank on g:
//
//	S(v) = (1-d) + d * sum_{u in N(v)} S(u) * w(u,v) / W(u)
//
// where W(u) is the total weight of u's edges. Every score starts at 1.
// Updates are computed from the previous vector only, and iteration stops
// when the largest absolute change drops below cfg.Epsilon or after
// cfg.MaxIterations rounds. Hitting the cap is not an error.
func rank(g *Graph, cfg Config) rankResult {
	n := g.Len()
	if n == 0 {
		return rankResult{converged: true}
	}

	d := cfg.Damping
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1
	}

	total := make([]float64, n)
	for i, neighbors := range g.edges {
		for _, e := range neighbors {
			total[i] += e.weight
		}
	}

	next := make([]float64, n)
	res := rankResult{}
	for res.iterations < cfg.MaxIterations {
		maxDelta := 0.0
		for v := range n {
			sum := 0.0
			for _, e := range g.edges[v] {
				// A neighbor without outgoing weight contributes nothing.
				if total[e.to] > 0 {
					sum += scores[e.to] * e.weight / total[e.to]
				}
			}
			next[v] = (1 - d) + d*sum
			maxDelta = max(maxDelta, math.Abs(next[v]-scores[v]))
		}

		scores, next = next, scores
		res.iterations++
		res.maxDelta = maxDelta
		if maxDelta < cfg.Epsilon {
			res.converged = true
			break
		}
	}
	res.scores = scores

	log := cfg.logger()
	if !res.converged {
		log.Debug("textrank: iteration cap reached",
			zap.Int("vertices", n),
			zap.Int("iterations", res.iterations),
			zap.Float64("max_delta", res.maxDelta))
	} else {
		log.Debug("textrank: converged",
			zap.Int("vertices", n),
			zap.Int("edges", g.EdgeCount()),
			zap.Int("iterations", res.iterations))
	}
	return res
}
