package graphsage_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gdsgo/builder"
	"github.com/katalvlaran/gdsgo/graphsage"
)

func TestDegreeFeatures(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(4))
	require.NoError(t, err)
	f, err := graphsage.DegreeFeatures(g, 3)
	require.NoError(t, err)

	r, c := f.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 3, c)
	x := math.Log1p(3)
	assert.InDelta(t, 1, f.At(0, 0), 1e-15)
	assert.InDelta(t, x, f.At(0, 1), 1e-15)
	assert.InDelta(t, x*x/2, f.At(0, 2), 1e-15)
	assert.InDelta(t, math.Log1p(1), f.At(1, 1), 1e-15)

	_, err = graphsage.DegreeFeatures(g, 0)
	assert.Error(t, err)
}

func TestEstimateMemory(t *testing.T) {
	layers := []graphsage.LayerConfig{{SampleSize: 10, OutputDim: 64}, {SampleSize: 5, OutputDim: 32}}
	small := graphsage.EstimateMemory(10_000, 10_000, 100, 4, 16, layers)
	wide := graphsage.EstimateMemory(10_000, 10_000, 100, 8, 16, layers)
	deep := graphsage.EstimateMemory(10_000, 10_000, 100, 4, 16,
		append(layers, graphsage.LayerConfig{SampleSize: 5, OutputDim: 32}))

	assert.Equal(t, "graphsage", small.Description)
	assert.LessOrEqual(t, small.Min, small.Max)
	assert.Greater(t, wide.Max, small.Max)
	assert.Greater(t, deep.Max, small.Max)
	assert.Contains(t, small.Render(), "batches in flight (x4)")

	// the tree is capped by the graph size
	tiny := graphsage.EstimateMemory(10, 10, 100, 1, 16, layers)
	assert.Less(t, tiny.Max, small.Max)
}
