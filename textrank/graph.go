package textrank

import "slices"

// edge points at a neighbor by vertex index.
type edge struct {
	to     int
	weight float64
}

// Graph is an undirected, loop-free co-occurrence graph. Vertices are kept
// in first-occurrence order and every neighbor list is sorted by index, so
// iteration order never depends on map layout.
type Graph struct {
	vertices []string
	index    map[string]int
	edges    [][]edge
}

// buildGraph links every vertex token to the vertex tokens found in the
// next window positions of the full sequence. Non-vertex tokens still
// occupy positions, so they count toward the distance.
func buildGraph(tokens []Token, vertices []string, window int, weighting Weighting) *Graph {
	g := &Graph{
		vertices: vertices,
		index:    make(map[string]int, len(vertices)),
	}
	for i, v := range vertices {
		g.index[v] = i
	}

	adj := make([]map[int]float64, len(vertices))
	for i := range adj {
		adj[i] = make(map[int]float64)
	}

	for i, tok := range tokens {
		if !tok.Vertex {
			continue
		}
		vi := g.index[tok.Normalized]
		end := len(tokens) - 1
		if window < end-i {
			end = i + window
		}
		for j := i + 1; j <= end; j++ {
			other := tokens[j]
			if !other.Vertex {
				continue
			}
			vj := g.index[other.Normalized]
			if vi == vj {
				continue
			}
			switch weighting {
			case WeightBinary:
				adj[vi][vj] = 1
				adj[vj][vi] = 1
			default:
				adj[vi][vj]++
				adj[vj][vi]++
			}
		}
	}

	g.edges = make([][]edge, len(vertices))
	for i, m := range adj {
		list := make([]edge, 0, len(m))
		for to, w := range m {
			list = append(list, edge{to: to, weight: w})
		}
		slices.SortFunc(list, byIndex)
		g.edges[i] = list
	}

	return g
}

func byIndex(a, b edge) int { return a.to - b.to }

// Len returns the number of vertices.
func (g *Graph) Len() int {
	return len(g.vertices)
}

// Vertices returns the vertex identities in first-occurrence order.
func (g *Graph) Vertices() []string {
	return slices.Clone(g.vertices)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, es := range g.edges {
		n += len(es)
	}
	return n / 2
}

// Weight returns the weight of edge (u, v), or 0 when there is none.
func (g *Graph) Weight(u, v string) float64 {
	ui, ok := g.index[u]
	if !ok {
		return 0
	}
	vi, ok := g.index[v]
	if !ok {
		return 0
	}
	es := g.edges[ui]
	if k, found := slices.BinarySearchFunc(es, vi, func(e edge, target int) int {
		return e.to - target
	}); found {
		return es[k].weight
	}
	return 0
}

// Neighbors returns a copy of v's adjacency as neighbor -> weight.
func (g *Graph) Neighbors(v string) map[string]float64 {
	vi, ok := g.index[v]
	if !ok {
		return nil
	}
	out := make(map[string]float64, len(g.edges[vi]))
	for _, e := range g.edges[vi] {
		out[g.vertices[e.to]] = e.weight
	}
	return out
}
