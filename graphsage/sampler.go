// SPDX-License-Identifier: MIT
// Package: gdsgo/graphsage
//
// sampler.go - UniformSampler.Sample(g, node, size, state): fixed-size
// neighbourhoods.
//
// Contract:
//   - Returns exactly size ids for every node with at least one neighbour.
//   - degree ≥ size: distinct neighbours in adjacency order.
//   - degree < size: every neighbour once, then draws with replacement.
//   - Isolated nodes: size self ids (IsolatedSelfLoop) or none (IsolatedEmpty).
//   - Never mutates the random state; a Layer advances it only through
//     GenerateNewRandomState.
//
// Complexity:
//   - Time: O(degree + size). Space: O(size).
//
// Determinism:
//   - The stream is rng.New(rng.DeriveSeed(state, node)), so concurrent
//     calls need no locking and repeat bit-for-bit.

package graphsage

import (
	"github.com/katalvlaran/gdsgo/core"
	"github.com/katalvlaran/gdsgo/rng"
)

// UniformSampler draws fixed-size neighbourhoods uniformly at random.
// The zero value pads isolated nodes with self-loops.
type UniformSampler struct {
	Isolated IsolatedPolicy
}

// Sample returns exactly size ids drawn from the neighbours of node (fewer
// only for an isolated node under IsolatedEmpty). It is a pure function of its
// arguments: the stream is seeded by rng.DeriveSeed(randomState, node).
//
//   - degree ≥ size: size distinct neighbours, in adjacency order
//     (selection sampling, Knuth's algorithm S).
//   - 0 < degree < size: every neighbour once, then size-degree draws with
//     replacement.
//   - degree = 0: size copies of node, or nothing.
//
// Complexity: O(degree + size).
func (s UniformSampler) Sample(g core.Graph, node, size int, randomState int64) []int {
	if size <= 0 {
		return nil
	}
	nbrs := g.Neighbors(node)
	deg := len(nbrs)

	if deg == 0 {
		if s.Isolated == IsolatedEmpty {
			return []int{}
		}
		out := make([]int, size)
		for i := range out {
			out[i] = node
		}

		return out
	}

	r := rng.New(rng.DeriveSeed(randomState, uint64(node)))
	out := make([]int, 0, size)

	if deg >= size {
		needed := size
		for i, nbr := range nbrs {
			remaining := deg - i
			if r.Intn(remaining) < needed {
				out = append(out, nbr)
				needed--
				if needed == 0 {
					break
				}
			}
		}

		return out
	}

	out = append(out, nbrs...)
	for len(out) < size {
		out = append(out, nbrs[r.Intn(deg)])
	}

	return out
}
