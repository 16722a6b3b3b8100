package textrank

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGraphExport(t *testing.T) {
	t.Parallel()

	cfg := pretagged()
	cfg.Window = 1
	x, err := BuildGraph("alpha/NN beta/NN gamma/NN alpha/NN", cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, x.Vertices)
	assert.Equal(t, []ExportEdge{
		{Source: "alpha", Target: "beta", Weight: 1},
		{Source: "alpha", Target: "gamma", Weight: 1},
		{Source: "beta", Target: "gamma", Weight: 1},
	}, x.Edges)
	assert.Len(t, x.Scores, 3)
}

func TestExportJSON(t *testing.T) {
	t.Parallel()

	x, err := BuildGraph("alpha/NN beta/NN", pretagged())
	require.NoError(t, err)

	b, err := json.Marshal(x)
	require.NoError(t, err)

	var back GraphExport
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, x.Vertices, back.Vertices)
	assert.Equal(t, x.Edges, back.Edges)
	assert.Contains(t, string(b), `"source":"alpha"`)
}

func TestExportGonum(t *testing.T) {
	t.Parallel()

	cfg := pretagged()
	cfg.Window = 1
	x, err := BuildGraph("alpha/NN beta/NN alpha/NN beta/NN runs/VBZ omega/NN", cfg)
	require.NoError(t, err)

	g, err := x.Gonum()
	require.NoError(t, err)
	assert.Equal(t, 3, g.Nodes().Len())
	assert.Equal(t, 1, g.Edges().Len())

	w, ok := g.Weight(0, 1)
	assert.True(t, ok)
	assert.Equal(t, 3.0, w)
	assert.Equal(t, 0, g.From(2).Len())
}

func TestExportGonumRejectsBadEdges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		x    GraphExport
	}{
		{"duplicate vertex", GraphExport{Vertices: []string{"a", "a"}}},
		{"unknown source", GraphExport{Vertices: []string{"a"}, Edges: []ExportEdge{{Source: "z", Target: "a", Weight: 1}}}},
		{"unknown target", GraphExport{Vertices: []string{"a"}, Edges: []ExportEdge{{Source: "a", Target: "z", Weight: 1}}}},
		{"self loop", GraphExport{Vertices: []string{"a"}, Edges: []ExportEdge{{Source: "a", Target: "a", Weight: 1}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.x.Gonum()
			assert.Error(t, err)
		})
	}
}

func TestExportDOT(t *testing.T) {
	t.Parallel()

	x, err := BuildGraph("linear systems are linear systems, important", DefaultConfig())
	require.NoError(t, err)

	b, err := x.DOT("textrank")
	require.NoError(t, err)
	out := string(b)

	assert.True(t, strings.Contains(out, "graph textrank {"), out)
	for _, v := range x.Vertices {
		assert.Contains(t, out, v)
	}
	assert.Contains(t, out, "--")
	assert.Contains(t, out, "weight=3")
	assert.Contains(t, out, "score=")
}

func TestBuildGraphDeterministic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		cfg   Config
	}{
		{"abstract", mihalcea, DefaultConfig()},
		{"pretagged", "alpha/NN beta/JJ gamma/NN runs/VBZ beta/JJ alpha/NN ,/, delta/NNS gamma/NN", pretagged()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			first, err := BuildGraph(tt.input, tt.cfg)
			require.NoError(t, err)
			require.NotEmpty(t, first.Edges)
			for range 5 {
				again, err := BuildGraph(tt.input, tt.cfg)
				require.NoError(t, err)
				assert.Equal(t, first.Vertices, again.Vertices)
				assert.Equal(t, first.Edges, again.Edges)
				assert.Equal(t, first.Scores, again.Scores)
			}
		})
	}
}

func TestRankDeterministic(t *testing.T) {
	t.Parallel()

	want, err := Rank(mihalcea, DefaultConfig())
	require.NoError(t, err)
	require.NotEmpty(t, want)
	for range 5 {
		got, err := Rank(mihalcea, DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
