package selection_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gdsgo/builder"
	"github.com/katalvlaran/gdsgo/core"
	"github.com/katalvlaran/gdsgo/errkind"
	"github.com/katalvlaran/gdsgo/selection"
)

// tenNodes has degrees 0:4 1:1 2:3 3:3 4:2 5:1 6:2 7:1 8:1 9:2.
func tenNodes(t *testing.T) core.Graph {
	t.Helper()
	g, err := core.FromEdges(10, [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {0, 4},
		{2, 3}, {2, 6}, {3, 9}, {4, 5}, {6, 7}, {8, 9},
	})
	require.NoError(t, err)

	return g
}

func TestAllSelectsEveryNode(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)
	pivots, err := selection.Select(g, selection.NewAll())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, pivots)
}

func TestRandomDegreeTopHalf(t *testing.T) {
	s, err := selection.NewRandomDegree(0.5, 0, 42)
	require.NoError(t, err)
	pivots, err := selection.Select(tenNodes(t), s)
	require.NoError(t, err)
	// Degrees 4,3,3 then the three nodes of degree 2 (4, 6, 9); lower ids win.
	assert.Equal(t, []int{0, 2, 3, 4, 6}, pivots)
}

func TestRandomDegreeRoundsHalfAwayFromZero(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(5))
	require.NoError(t, err)
	s, err := selection.NewRandomDegree(0.5, 0, 1) // 2.5 → 3
	require.NoError(t, err)
	pivots, err := selection.Select(g, s)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, pivots)

	s, err = selection.NewRandomDegree(0, 0, 1)
	require.NoError(t, err)
	pivots, err = selection.Select(g, s)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, pivots, "at least one pivot")
}

func TestRandomDegreeBiasIsSeeded(t *testing.T) {
	g := tenNodes(t)
	s, err := selection.NewRandomDegree(0.3, 0.7, 9)
	require.NoError(t, err)
	a, err := selection.Select(g, s)
	require.NoError(t, err)
	b, err := selection.Select(g, s)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 3)
	assert.IsIncreasing(t, a)
}

func TestRandomUniformReproducible(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(10, 10))
	require.NoError(t, err)
	s, err := selection.NewRandomUniform(0.3, 1234)
	require.NoError(t, err)
	first, err := selection.Select(g, s)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := selection.Select(g, s)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
	assert.NotEmpty(t, first)
	assert.IsIncreasing(t, first)

	other, err := selection.NewRandomUniform(0.3, 4321)
	require.NoError(t, err)
	diff, err := selection.Select(g, other)
	require.NoError(t, err)
	assert.NotEqual(t, first, diff)
}

func TestRandomUniformNeverEmpty(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(6))
	require.NoError(t, err)
	s, err := selection.NewRandomUniform(0, 5)
	require.NoError(t, err)
	pivots, err := selection.Select(g, s)
	require.NoError(t, err)
	require.Len(t, pivots, 1)
	assert.True(t, pivots[0] >= 0 && pivots[0] < 6)
}

func TestDefaultProbability(t *testing.T) {
	assert.Equal(t, 0.0, selection.DefaultProbability(0))
	assert.Equal(t, 1.0, selection.DefaultProbability(1), "1/n floor")
	assert.Equal(t, 0.5, selection.DefaultProbability(2), "floor 1/n beats log10(2)/e²")
	assert.InDelta(t, 1/math.Exp(2), selection.DefaultProbability(10), 1e-12)
	assert.InDelta(t, 3/math.Exp(2), selection.DefaultProbability(1000), 1e-12)
}

func TestParse(t *testing.T) {
	s, err := selection.Parse(" Degree ", math.NaN(), 3)
	require.NoError(t, err)
	assert.Equal(t, selection.RandomDegree, s.Kind)
	assert.Equal(t, "degree", s.Kind.String())

	s, err = selection.Parse("RANDOM", 0.25, 3)
	require.NoError(t, err)
	assert.Equal(t, selection.RandomUniform, s.Kind)

	_, err = selection.Parse("closeness", math.NaN(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errkind.ErrConfiguration)
	assert.Contains(t, err.Error(), "unknown selection strategy")

	_, err = selection.Parse("random", 1.5, 0)
	assert.ErrorIs(t, err, errkind.ErrConfiguration)
	_, err = selection.NewRandomDegree(0.5, -0.1, 0)
	assert.ErrorIs(t, err, errkind.ErrConfiguration)
}

func TestEmptyGraph(t *testing.T) {
	g, err := core.FromEdges(0, nil)
	require.NoError(t, err)
	for _, name := range []string{"all", "degree", "random"} {
		s, err := selection.Parse(name, math.NaN(), 1)
		require.NoError(t, err)
		pivots, err := selection.Select(g, s)
		require.NoError(t, err)
		assert.Empty(t, pivots, name)
	}
}
