package mincut_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypercut/hypergraph"
	"github.com/katalvlaran/hypercut/mincut"
)

func TestRun_RejectsTooSmallGraph(t *testing.T) {
	g := hypergraph.New()
	require.NoError(t, g.AddEdge(1, hypergraph.VIDSet(1, 2), 1))
	require.NoError(t, g.Merge(1, 2))

	_, err := mincut.Run(g)
	assert.ErrorIs(t, err, mincut.ErrEmptyGraph)
}

// Triangle of unit-weight ordinary edges: every 2-way split costs 2, so
// the minimum cut value is 2, isolating whichever single vertex the
// ordering contracts last.
func TestRun_Triangle(t *testing.T) {
	g := hypergraph.New()
	require.NoError(t, g.AddEdge(1, hypergraph.VIDSet(1, 2), 1))
	require.NoError(t, g.AddEdge(2, hypergraph.VIDSet(2, 3), 1))
	require.NoError(t, g.AddEdge(3, hypergraph.VIDSet(1, 3), 1))

	cut, err := mincut.Run(g)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cut.Value)
	assert.Equal(t, 3, len(cut.Left)+len(cut.Right))
}

// A single hyperedge spanning every vertex: any non-trivial bipartition
// crosses it exactly once, so the minimum cut value is the edge weight.
func TestRun_SingleHyperedgeSpanningAll(t *testing.T) {
	g := hypergraph.New()
	require.NoError(t, g.AddEdge(1, hypergraph.VIDSet(1, 2, 3, 4), 7))

	cut, err := mincut.Run(g)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cut.Value)
	assert.Equal(t, 4, len(cut.Left)+len(cut.Right))
}

// Two components joined by a single bridge edge: the minimum cut must be
// the bridge's weight, isolating one whole component from the other.
func TestRun_TwoComponentsBridge(t *testing.T) {
	g := hypergraph.New()
	require.NoError(t, g.AddEdge(1, hypergraph.VIDSet(1, 2), 10))
	require.NoError(t, g.AddEdge(2, hypergraph.VIDSet(3, 4), 10))
	require.NoError(t, g.AddEdge(3, hypergraph.VIDSet(2, 3), 1)) // the bridge

	cut, err := mincut.Run(g)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cut.Value)
}

// Two components with no edge at all between them: the bipartition that
// isolates one whole component from the other crosses no hyperedge, so
// the minimum cut value is 0.
func TestRun_DisconnectedGraphHasZeroCut(t *testing.T) {
	g := hypergraph.New()
	require.NoError(t, g.AddEdge(1, hypergraph.VIDSet(1, 2), 10))
	require.NoError(t, g.AddEdge(2, hypergraph.VIDSet(3, 4), 10))

	cut, err := mincut.Run(g)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cut.Value)
}

// Pinning the start vertex makes the maximum-adjacency ordering, and
// hence the result, reproducible for a fixed small graph.
func TestRun_WithStartVertexIsDeterministic(t *testing.T) {
	build := func() *hypergraph.HyperGraph {
		g := hypergraph.New()
		_ = g.AddEdge(1, hypergraph.VIDSet(1, 2), 2)
		_ = g.AddEdge(2, hypergraph.VIDSet(2, 3), 3)
		_ = g.AddEdge(3, hypergraph.VIDSet(1, 3), 4)
		return g
	}

	cut1, err := mincut.Run(build(), mincut.WithStartVertex(1))
	require.NoError(t, err)
	cut2, err := mincut.Run(build(), mincut.WithStartVertex(1))
	require.NoError(t, err)

	assert.True(t, cut1.Equal(cut2))
}

// Brute-force verifier: for small graphs, exhaustively check every
// non-trivial bipartition and confirm mincut.Run found one with minimal
// value (ties on balance are not required to match exactly).
func bruteForceMinCutValue(t *testing.T, g *hypergraph.HyperGraph) int64 {
	t.Helper()
	ids := g.VertexIDs()
	n := len(ids)
	require.LessOrEqual(t, n, 12)

	best := int64(1) << 62
	for mask := 1; mask < (1 << n); mask++ {
		if mask == (1<<n)-1 {
			continue
		}
		left := make(map[hypergraph.VID]struct{})
		for i, v := range ids {
			if mask&(1<<i) != 0 {
				left[v] = struct{}{}
			}
		}
		cut, err := g.Cut(left)
		require.NoError(t, err)
		if cut.Value < best {
			best = cut.Value
		}
	}

	return best
}

func TestRun_MatchesBruteForceOnSmallGraphs(t *testing.T) {
	scenarios := []func() *hypergraph.HyperGraph{
		func() *hypergraph.HyperGraph {
			g := hypergraph.New()
			_ = g.AddEdge(1, hypergraph.VIDSet(1, 2), 5)
			_ = g.AddEdge(2, hypergraph.VIDSet(2, 3), 2)
			_ = g.AddEdge(3, hypergraph.VIDSet(3, 4), 6)
			_ = g.AddEdge(4, hypergraph.VIDSet(4, 1), 1)
			_ = g.AddEdge(5, hypergraph.VIDSet(1, 3), 3)
			return g
		},
		func() *hypergraph.HyperGraph {
			g := hypergraph.New()
			_ = g.AddEdge(1, hypergraph.VIDSet(1, 2, 3), 4)
			_ = g.AddEdge(2, hypergraph.VIDSet(3, 4, 5), 2)
			_ = g.AddEdge(3, hypergraph.VIDSet(1, 5), 9)
			return g
		},
	}

	for i, scenario := range scenarios {
		g := scenario()
		want := bruteForceMinCutValue(t, g.Clone())

		got, err := mincut.Run(g)
		require.NoError(t, err)
		assert.Equal(t, want, got.Value, "scenario %d", i)
	}
}
