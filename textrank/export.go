package textrank

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// GraphExport is a renderer-neutral snapshot of a co-occurrence graph.
type GraphExport struct {
	Vertices []string           `json:"vertices"`
	Edges    []ExportEdge       `json:"edges"`
	Scores   map[string]float64 `json:"scores,omitempty"`
}

// ExportEdge is one undirected edge. Source precedes Target in vertex order.
type ExportEdge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

// Export lists every vertex and every edge once, in vertex order.
func (g *Graph) Export() *GraphExport {
	out := &GraphExport{
		Vertices: g.Vertices(),
		Edges:    make([]ExportEdge, 0, g.EdgeCount()),
	}
	for u, es := range g.edges {
		for _, e := range es {
			if e.to <= u {
				continue
			}
			out.Edges = append(out.Edges, ExportEdge{
				Source: g.vertices[u],
				Target: g.vertices[e.to],
				Weight: e.weight,
			})
		}
	}
	return out
}

// Gonum converts the export into a gonum weighted undirected graph. Node IDs
// are vertex indexes.
func (x *GraphExport) Gonum() (*simple.WeightedUndirectedGraph, error) {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	ids := make(map[string]int64, len(x.Vertices))
	for i, v := range x.Vertices {
		if _, dup := ids[v]; dup {
			return nil, fmt.Errorf("textrank: export: duplicate vertex %q", v)
		}
		n := vertexNode{id: int64(i), text: v}
		if x.Scores != nil {
			s, ok := x.Scores[v]
			n.score, n.scored = s, ok
		}
		ids[v] = n.id
		g.AddNode(n)
	}
	for _, e := range x.Edges {
		from, ok := ids[e.Source]
		if !ok {
			return nil, fmt.Errorf("textrank: export: edge source %q is not a vertex", e.Source)
		}
		to, ok := ids[e.Target]
		if !ok {
			return nil, fmt.Errorf("textrank: export: edge target %q is not a vertex", e.Target)
		}
		if from == to {
			return nil, fmt.Errorf("textrank: export: self loop on %q", e.Source)
		}
		g.SetWeightedEdge(weightedEdge{
			from:   g.Node(from),
			to:     g.Node(to),
			weight: e.Weight,
		})
	}
	return g, nil
}

// DOT renders the graph in Graphviz format. Edges carry a weight attribute
// and, when scores are present, nodes carry a score attribute.
func (x *GraphExport) DOT(name string) ([]byte, error) {
	g, err := x.Gonum()
	if err != nil {
		return nil, err
	}
	b, err := dot.Marshal(g, name, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("textrank: export: %w", err)
	}
	return b, nil
}

type vertexNode struct {
	id     int64
	text   string
	score  float64
	scored bool
}

func (n vertexNode) ID() int64 { return n.id }
func (n vertexNode) DOTID() string { return n.text }

func (n vertexNode) Attributes() []encoding.Attribute {
	if !n.scored {
		return nil
	}
	return []encoding.Attribute{{Key: "score", Value: strconv.FormatFloat(n.score, 'f', 6, 64)}}
}

type weightedEdge struct {
	from, to graph.Node
	weight   float64
}

func (e weightedEdge) From() graph.Node { return e.from }
func (e weightedEdge) To() graph.Node { return e.to }
func (e weightedEdge) Weight() float64 { return e.weight }

func (e weightedEdge) ReversedEdge() graph.Edge {
	return weightedEdge{from: e.to, to: e.from, weight: e.weight}
}

func (e weightedEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "weight", Value: strconv.FormatFloat(e.weight, 'g', -1, 64)}}
}
