package paths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gdsgo/core"
	"github.com/katalvlaran/gdsgo/paths"
)

// diamond: 0-1, 0-2, 1-3, 2-3 (two shortest paths 0→3).
func diamond(t *testing.T) *core.CSR {
	t.Helper()
	g, err := core.FromEdges(4, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	require.NoError(t, err)
	return g
}

func TestBFS_CountsShortestPaths(t *testing.T) {
	g := diamond(t)
	w := paths.NewWorkspace(g.NodeCount())

	require.NoError(t, paths.BFS(g, 0, w))
	assert.Equal(t, []int{0, 1, 2, 3}, w.Order)
	assert.Equal(t, []float64{1, 1, 1, 2}, w.Sigma)
	assert.Equal(t, []float64{0, 1, 1, 2}, w.Dist)
	assert.Equal(t, []int{1, 2}, w.Preds[3])
}

func TestBFS_ResetBetweenSources(t *testing.T) {
	g, err := core.FromEdges(5, [][2]int{{0, 1}, {2, 3}})
	require.NoError(t, err)
	w := paths.NewWorkspace(5)

	require.NoError(t, paths.BFS(g, 0, w))
	require.Equal(t, []int{0, 1}, w.Order)

	require.NoError(t, paths.BFS(g, 3, w))
	assert.Equal(t, []int{3, 2}, w.Order)
	assert.Equal(t, -1.0, w.Dist[0], "previous component cleared")
	assert.Zero(t, w.Sigma[1])
	assert.Empty(t, w.Preds[1])

	require.NoError(t, paths.BFS(g, 4, w))
	assert.Equal(t, []int{4}, w.Order, "isolated source settles alone")
}

func TestAccumulate_Diamond(t *testing.T) {
	g := diamond(t)
	w := paths.NewWorkspace(4)
	require.NoError(t, paths.BFS(g, 0, w))

	got := make(map[int]float64)
	paths.Accumulate(w, 0, func(node int, dep float64) { got[node] = dep })

	assert.NotContains(t, got, 0, "source is never reported")
	assert.InDelta(t, 0.5, got[1], 1e-12)
	assert.InDelta(t, 0.5, got[2], 1e-12)
	assert.InDelta(t, 0.0, got[3], 1e-12)
}

func TestDijkstra_WeightedTies(t *testing.T) {
	// 0→1 (1), 1→2 (1), 0→2 (2): two shortest paths of length 2 into node 2.
	b := core.NewBuilder(4, core.WithDirected(true), core.WithWeighted())
	require.NoError(t, b.AddEdge(0, 1, 1))
	require.NoError(t, b.AddEdge(1, 2, 1))
	require.NoError(t, b.AddEdge(0, 2, 2))
	require.NoError(t, b.AddEdge(2, 3, 5))
	g, err := b.Build()
	require.NoError(t, err)

	w := paths.NewWorkspace(4)
	require.NoError(t, paths.Dijkstra(g, 0, w))
	assert.Equal(t, []int{0, 1, 2, 3}, w.Order)
	assert.Equal(t, []float64{0, 1, 2, 7}, w.Dist)
	assert.Equal(t, 2.0, w.Sigma[2])
	assert.ElementsMatch(t, []int{0, 1}, w.Preds[2])
	assert.Equal(t, 2.0, w.Sigma[3])
}

func TestDijkstra_ShorterPathReplacesPredecessors(t *testing.T) {
	// 0→2 (10) is discovered first, then improved via 0→1→2 (1+1).
	b := core.NewBuilder(3, core.WithDirected(true), core.WithWeighted())
	require.NoError(t, b.AddEdge(0, 2, 10))
	require.NoError(t, b.AddEdge(0, 1, 1))
	require.NoError(t, b.AddEdge(1, 2, 1))
	g, err := b.Build()
	require.NoError(t, err)

	w := paths.NewWorkspace(3)
	require.NoError(t, paths.Dijkstra(g, 0, w))
	assert.Equal(t, 2.0, w.Dist[2])
	assert.Equal(t, []int{1}, w.Preds[2])
	assert.Equal(t, 1.0, w.Sigma[2])
}

func TestDijkstra_NonPositiveWeight(t *testing.T) {
	for _, wt := range []float64{-1, 0} {
		b := core.NewBuilder(2, core.WithWeighted())
		require.NoError(t, b.AddEdge(0, 1, wt))
		g, err := b.Build()
		require.NoError(t, err)

		err = paths.Dijkstra(g, 0, paths.NewWorkspace(2))
		assert.ErrorIs(t, err, paths.ErrNonPositiveWeight, "weight %v", wt)
	}
}

// brokenGraph reports a neighbour outside its node range.
type brokenGraph struct{ n int }

func (b brokenGraph) NodeCount() int        { return b.n }
func (b brokenGraph) Degree(int) int        { return 1 }
func (b brokenGraph) Neighbors(int) []int   { return []int{b.n + 7} }
func (b brokenGraph) Directed() bool        { return true }
func (b brokenGraph) Weights(int) []float64 { return []float64{1} }

func TestSweepErrors(t *testing.T) {
	g := brokenGraph{n: 3}
	w := paths.NewWorkspace(3)

	assert.ErrorIs(t, paths.BFS(g, 0, w), paths.ErrCorruptGraph)
	assert.ErrorIs(t, paths.Dijkstra(g, 0, w), paths.ErrCorruptGraph)
	assert.ErrorIs(t, paths.BFS(g, 3, w), paths.ErrSourceOutOfRange)
	assert.ErrorIs(t, paths.BFS(g, 0, paths.NewWorkspace(2)), paths.ErrWorkspaceSize)

	// a failed sweep must not leak state into the next one
	ok := diamond(t)
	w4 := paths.NewWorkspace(4)
	require.ErrorIs(t, paths.BFS(brokenGraph{n: 4}, 1, w4), paths.ErrCorruptGraph)
	require.NoError(t, paths.BFS(ok, 0, w4))
	assert.Equal(t, []float64{1, 1, 1, 2}, w4.Sigma)
}
