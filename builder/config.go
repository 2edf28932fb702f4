// SPDX-License-Identifier: MIT
// Package: gdsgo/builder
//
// config.go - resolved builder configuration and its functional options.
//
// Contract:
//   - Options resolve left-to-right into an immutable builderConfig (last wins).
//   - Without WithSeed the rng.DefaultSeed stream is used, so output is
//     still deterministic.
//   - A weight function makes BuildGraph produce a weighted graph.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/gdsgo/rng"
)

// WeightFn draws one edge weight.
type WeightFn func(r *rand.Rand) float64

// BuilderOption customizes builderConfig.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	rng      *rand.Rand // stochastic choices and weights
	weightFn WeightFn   // nil ⇒ unweighted graph
	err      error      // first invalid option, surfaced by BuildGraph
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rng.New(0)
	}

	return cfg
}

// WithSeed freezes every stochastic path (RandomSparse, weight draws).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rng.New(seed) }
}

// WithConstantWeight makes the graph weighted with every weight equal to w.
func WithConstantWeight(w float64) BuilderOption {
	return func(c *builderConfig) {
		if w < 0 {
			c.err = wrapf("WithConstantWeight", ErrInvalidWeightRange, "w=%v", w)
			return
		}
		c.weightFn = func(*rand.Rand) float64 { return w }
	}
}

// WithUniformWeight makes the graph weighted with weights drawn uniformly
// from [min, max).
func WithUniformWeight(min, max float64) BuilderOption {
	return func(c *builderConfig) {
		if min < 0 || max < min {
			c.err = wrapf("WithUniformWeight", ErrInvalidWeightRange, "min=%v max=%v", min, max)
			return
		}
		c.weightFn = func(r *rand.Rand) float64 { return min + r.Float64()*(max-min) }
	}
}
