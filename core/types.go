// SPDX-License-Identifier: MIT

package core

import "errors"

// Sentinel errors for graph construction and access.
var (
	// ErrNegativeNodeCount indicates a builder was asked for fewer than zero nodes.
	ErrNegativeNodeCount = errors.New("core: node count is negative")

	// ErrNodeOutOfRange indicates a node id outside [0, NodeCount()).
	ErrNodeOutOfRange = errors.New("core: node id out of range")

	// ErrLoopNotAllowed indicates a self-loop was added without WithLoops.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a non-zero weight on an unweighted graph, or a NaN/Inf weight.
	ErrBadWeight = errors.New("core: bad weight for graph mode")

	// ErrAlreadyBuilt indicates the Builder was used after Build.
	ErrAlreadyBuilt = errors.New("core: builder already built")
)

// Graph is the read-only accessor every algorithm consumes.
//
// Implementations must be safe for concurrent reads and must not change while an
// algorithm runs. Neighbors returns a view that callers must not modify.
type Graph interface {
	// NodeCount returns the number of nodes; ids are dense in [0, NodeCount()).
	NodeCount() int

	// Degree returns the number of entries Neighbors(node) yields.
	Degree(node int) int

	// Neighbors returns the adjacent node ids of node.
	Neighbors(node int) []int

	// Directed reports whether edges are one-way.
	Directed() bool
}

// WeightedGraph is a Graph whose relationships carry float64 weights.
// Weights(node)[i] belongs to the relationship node→Neighbors(node)[i].
type WeightedGraph interface {
	Graph
	Weights(node int) []float64
}

// GraphOption configures a Builder before any edge is added.
type GraphOption func(b *Builder)

// WithDirected sets the orientation of every edge (true = directed).
func WithDirected(directed bool) GraphOption {
	return func(b *Builder) { b.directed = directed }
}

// WithWeighted allows non-zero edge weights and makes the built CSR weighted.
func WithWeighted() GraphOption {
	return func(b *Builder) { b.weighted = true }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(b *Builder) { b.allowLoops = true }
}

// WithMultiEdges keeps parallel edges instead of collapsing them.
func WithMultiEdges() GraphOption {
	return func(b *Builder) { b.allowMulti = true }
}

// GraphStats is a read-only summary used for admission checks, estimates and logs.
type GraphStats struct {
	NodeCount         int
	RelationshipCount int // sum of degrees (undirected edges count twice)
	MaxDegree         int
	MeanDegree        float64
	Directed          bool
}
