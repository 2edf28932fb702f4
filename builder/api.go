// SPDX-License-Identifier: MIT
// Package: gdsgo/builder
//
// api.go - the BuildGraph orchestrator and the Constructor contract.
//
// Design contract:
//   - Each Constructor produces a fragment over local ids [0, nodes).
//   - BuildGraph lays fragments side by side (disjoint union) in call order,
//     offsetting each fragment's ids by the nodes emitted before it.
//   - Determinism: same constructors, options and seed ⇒ identical CSR.

// Package builder generates deterministic test and benchmark graphs
// (paths, cycles, stars, cliques, grids, Erdős–Rényi) as core.CSR values.
package builder

import (
	"fmt"

	"github.com/katalvlaran/gdsgo/core"
)

// fragment is a constructor's output over local ids.
type fragment struct {
	nodes int
	edges [][2]int
}

// Constructor emits one graph fragment using the resolved configuration.
type Constructor func(cfg builderConfig) (fragment, error)

// BuildGraph composes the fragments of cons into one CSR built with gopts.
// If a weight option was given, core.WithWeighted is added and one weight is
// drawn per emitted edge in emission order.
//
// Errors: option errors first, then constructor errors wrapped as "BuildGraph: %w".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.CSR, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", cfg.err)
	}

	frags := make([]fragment, 0, len(cons))
	total := 0
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		f, err := fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
		frags = append(frags, f)
		total += f.nodes
	}

	opts := gopts
	if cfg.weightFn != nil {
		opts = append(append([]core.GraphOption{}, gopts...), core.WithWeighted())
	}
	b := core.NewBuilder(total, opts...)

	offset := 0
	for _, f := range frags {
		for _, e := range f.edges {
			w := 0.0
			if cfg.weightFn != nil {
				w = cfg.weightFn(cfg.rng)
			}
			if err := b.AddEdge(e[0]+offset, e[1]+offset, w); err != nil {
				return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
			}
		}
		offset += f.nodes
	}

	return b.Build()
}
