// SPDX-License-Identifier: MIT

package graphsage

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gdsgo/core"
	"github.com/katalvlaran/gdsgo/errkind"
	"github.com/katalvlaran/gdsgo/rng"
)

// Layer is one hop of propagation. Layer i consumes the vectors produced by
// layer i-1, or the raw features for i = 0.
type Layer struct {
	SampleSize  int
	Aggregator  *Aggregator
	Sampler     UniformSampler
	RandomState int64
}

// NewLayer validates and assembles a layer.
func NewLayer(sampleSize int, agg *Aggregator, sampler UniformSampler, randomState int64) (Layer, error) {
	if sampleSize < 1 {
		return Layer{}, errkind.Configf(opConfigure, "sample size must be positive, got %d", sampleSize)
	}
	if agg == nil {
		return Layer{}, errkind.Configf(opConfigure, "layer needs an aggregator")
	}

	return Layer{SampleSize: sampleSize, Aggregator: agg, Sampler: sampler, RandomState: randomState}, nil
}

// GenerateNewRandomState advances the layer's random state. Call it between
// epochs or independent runs; nothing else changes the state.
func (l *Layer) GenerateNewRandomState() {
	l.RandomState = rng.Advance(l.RandomState)
}

// Weights returns the weight tensors of the layer's aggregator.
func Weights(l Layer) []*mat.Dense {
	return l.Aggregator.Weights()
}

// Neighborhood samples the neighbourhood of node that l aggregates over.
func Neighborhood(l Layer, g core.Graph, node int) []int {
	return l.Sampler.Sample(g, node, l.SampleSize, l.RandomState)
}

// LayerConfig describes one layer for NewLayers.
type LayerConfig struct {
	SampleSize int
	OutputDim  int
	Aggregator string // mean | pool
	Activation string // sigmoid | relu | identity
	Isolated   string // self | empty
}

// NewLayers builds a layer stack whose first layer reads inputDim-wide
// features. Layer i draws its weights from rng.DeriveSeed(seed, 2i) and its
// random state from rng.DeriveSeed(seed, 2i+1).
func NewLayers(cfgs []LayerConfig, inputDim int, seed int64) ([]Layer, error) {
	if len(cfgs) == 0 {
		return nil, errkind.Configf(opConfigure, "at least one layer is required")
	}
	layers := make([]Layer, 0, len(cfgs))
	in := inputDim
	for i, c := range cfgs {
		kind, err := ParseAggregatorKind(c.Aggregator)
		if err != nil {
			return nil, err
		}
		act, err := ParseActivation(c.Activation)
		if err != nil {
			return nil, err
		}
		policy, err := ParseIsolatedPolicy(c.Isolated)
		if err != nil {
			return nil, err
		}
		agg, err := NewAggregator(kind, in, c.OutputDim, act, rng.DeriveSeed(seed, uint64(2*i)))
		if err != nil {
			return nil, err
		}
		l, err := NewLayer(c.SampleSize, agg, UniformSampler{Isolated: policy}, rng.DeriveSeed(seed, uint64(2*i+1)))
		if err != nil {
			return nil, err
		}
		layers = append(layers, l)
		in = c.OutputDim
	}

	return layers, nil
}
