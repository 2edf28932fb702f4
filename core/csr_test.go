package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gdsgo/core"
)

type CSRSuite struct {
	suite.Suite
}

func TestCSRSuite(t *testing.T) {
	suite.Run(t, new(CSRSuite))
}

func (s *CSRSuite) TestUndirectedMirrorsAndSorts() {
	require := require.New(s.T())

	b := core.NewBuilder(4)
	require.NoError(b.AddEdge(2, 0, 0))
	require.NoError(b.AddEdge(0, 1, 0))
	require.NoError(b.AddEdge(3, 0, 0))
	g, err := b.Build()
	require.NoError(err)

	require.Equal(4, g.NodeCount())
	require.False(g.Directed())
	require.Equal([]int{1, 2, 3}, g.Neighbors(0), "neighbours sorted ascending")
	require.Equal([]int{0}, g.Neighbors(2), "undirected edge mirrored")
	require.Equal(3, g.Degree(0))
	require.Equal(6, g.RelationshipCount())
}

func (s *CSRSuite) TestDirectedKeepsOrientation() {
	require := require.New(s.T())

	g, err := core.FromEdges(3, [][2]int{{0, 1}, {1, 2}}, core.WithDirected(true))
	require.NoError(err)
	require.True(g.Directed())
	require.Equal([]int{1}, g.Neighbors(0))
	require.Empty(g.Neighbors(2))
}

func (s *CSRSuite) TestParallelEdgesCollapseUnlessMulti() {
	require := require.New(s.T())

	g, err := core.FromEdges(2, [][2]int{{0, 1}, {0, 1}, {1, 0}})
	require.NoError(err)
	require.Equal(1, g.Degree(0))

	m, err := core.FromEdges(2, [][2]int{{0, 1}, {0, 1}}, core.WithMultiEdges())
	require.NoError(err)
	require.Equal([]int{1, 1}, m.Neighbors(0))
}

func (s *CSRSuite) TestWeights() {
	require := require.New(s.T())

	b := core.NewBuilder(3, core.WithWeighted(), core.WithDirected(true))
	require.NoError(b.AddEdge(0, 2, 2.5))
	require.NoError(b.AddEdge(0, 1, 1.5))
	g, err := b.Build()
	require.NoError(err)
	require.True(g.Weighted())
	require.Equal([]int{1, 2}, g.Neighbors(0))
	require.Equal([]float64{1.5, 2.5}, g.Weights(0), "weights follow the neighbour sort")

	u, err := core.FromEdges(2, [][2]int{{0, 1}})
	require.NoError(err)
	require.Equal([]float64{1}, u.Weights(0), "unweighted graphs report unit weights")
}

func (s *CSRSuite) TestValidation() {
	require := require.New(s.T())

	b := core.NewBuilder(2)
	require.ErrorIs(b.AddEdge(0, 2, 0), core.ErrNodeOutOfRange)
	require.ErrorIs(b.AddEdge(-1, 0, 0), core.ErrNodeOutOfRange)
	require.ErrorIs(b.AddEdge(1, 1, 0), core.ErrLoopNotAllowed)
	require.ErrorIs(b.AddEdge(0, 1, 3), core.ErrBadWeight)

	_, err := b.Build()
	require.NoError(err)
	_, err = b.Build()
	require.ErrorIs(err, core.ErrAlreadyBuilt)
	require.ErrorIs(b.AddEdge(0, 1, 0), core.ErrAlreadyBuilt)

	_, err = core.NewBuilder(-1).Build()
	require.ErrorIs(err, core.ErrNegativeNodeCount)
}

func (s *CSRSuite) TestLoopsAndEmptyGraph() {
	require := require.New(s.T())

	g, err := core.FromEdges(1, [][2]int{{0, 0}}, core.WithLoops())
	require.NoError(err)
	require.Equal([]int{0}, g.Neighbors(0), "undirected loop stored once")

	empty, err := core.NewBuilder(0).Build()
	require.NoError(err)
	require.Equal(0, empty.NodeCount())
	require.Equal(core.GraphStats{}, core.Stats(empty))
}

func (s *CSRSuite) TestStats() {
	g, err := core.FromEdges(4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	s.Require().NoError(err)

	st := core.Stats(g)
	s.Equal(4, st.NodeCount)
	s.Equal(6, st.RelationshipCount)
	s.Equal(3, st.MaxDegree)
	s.InDelta(1.5, st.MeanDegree, 1e-12)
	s.True(core.HasNode(g, 3))
	s.False(core.HasNode(g, 4))
}
