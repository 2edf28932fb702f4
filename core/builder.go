// SPDX-License-Identifier: MIT

package core

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// edgeRecord is one AddEdge call, kept until Build.
type edgeRecord struct {
	from, to int
	weight   float64
}

// Builder accumulates edges for a fixed node count and freezes them into a CSR.
// A Builder is single-use and not safe for concurrent use.
type Builder struct {
	nodeCount  int
	directed   bool
	weighted   bool
	allowLoops bool
	allowMulti bool

	edges []edgeRecord
	built bool
	err   error // recorded by NewBuilder, surfaced on first use
}

// NewBuilder creates a Builder for nodeCount nodes with ids [0, nodeCount).
// Defaults: undirected, unweighted, no loops, parallel edges collapsed.
// A negative nodeCount is reported as ErrNegativeNodeCount by AddEdge and Build.
func NewBuilder(nodeCount int, opts ...GraphOption) *Builder {
	b := &Builder{nodeCount: nodeCount}
	if nodeCount < 0 {
		b.err = fmt.Errorf("NewBuilder(%d): %w", nodeCount, ErrNegativeNodeCount)
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// AddEdge records the relationship from→to with the given weight.
// Unweighted builders require weight == 0.
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(from, to int, weight float64) error {
	if b.err != nil {
		return b.err
	}
	if b.built {
		return ErrAlreadyBuilt
	}
	if from < 0 || from >= b.nodeCount || to < 0 || to >= b.nodeCount {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrNodeOutOfRange)
	}
	if from == to && !b.allowLoops {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrLoopNotAllowed)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || (!b.weighted && weight != 0) {
		return fmt.Errorf("AddEdge(%d,%d) weight=%v: %w", from, to, weight, ErrBadWeight)
	}
	b.edges = append(b.edges, edgeRecord{from: from, to: to, weight: weight})

	return nil
}

// adjEntry is a (target, weight) pair used while sorting a node's neighbour list.
type adjEntry struct {
	target int
	weight float64
}

// Build freezes the recorded edges into an immutable CSR.
//
// Stages:
//  1. Bucket entries per source node (mirroring undirected edges).
//  2. Stable-sort each bucket by target id; drop repeats unless multi-edges are allowed.
//  3. Lay the buckets out contiguously in offsets/targets/weights.
//
// The first-added weight wins when parallel edges are collapsed.
func (b *Builder) Build() (*CSR, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.built {
		return nil, ErrAlreadyBuilt
	}
	b.built = true

	// 1) Bucket.
	buckets := make([][]adjEntry, b.nodeCount)
	for _, e := range b.edges {
		buckets[e.from] = append(buckets[e.from], adjEntry{target: e.to, weight: e.weight})
		if !b.directed && e.from != e.to {
			buckets[e.to] = append(buckets[e.to], adjEntry{target: e.from, weight: e.weight})
		}
	}
	b.edges = nil

	// 2) Sort + dedupe.
	total := 0
	for i, bucket := range buckets {
		slices.SortStableFunc(bucket, func(x, y adjEntry) int { return cmp.Compare(x.target, y.target) })
		if !b.allowMulti {
			bucket = slices.CompactFunc(bucket, func(x, y adjEntry) bool { return x.target == y.target })
		}
		buckets[i] = bucket
		total += len(bucket)
	}

	// 3) Layout.
	g := &CSR{
		offsets:  make([]int, b.nodeCount+1),
		targets:  make([]int, 0, total),
		directed: b.directed,
	}
	if b.weighted {
		g.weights = make([]float64, 0, total)
	}
	for i, bucket := range buckets {
		for _, entry := range bucket {
			g.targets = append(g.targets, entry.target)
			if b.weighted {
				g.weights = append(g.weights, entry.weight)
			}
		}
		g.offsets[i+1] = len(g.targets)
	}

	return g, nil
}

// FromEdges is a convenience wrapper: it adds every [from, to] pair with zero
// weight and builds the graph.
func FromEdges(nodeCount int, pairs [][2]int, opts ...GraphOption) (*CSR, error) {
	b := NewBuilder(nodeCount, opts...)
	for _, p := range pairs {
		if err := b.AddEdge(p[0], p[1], 0); err != nil {
			return nil, err
		}
	}

	return b.Build()
}
