// SPDX-License-Identifier: MIT

package core

// CSR is an immutable compressed-sparse-row graph.
//
// The neighbours of node v are targets[offsets[v]:offsets[v+1]], sorted ascending.
// weights is nil for unweighted graphs, otherwise aligned with targets.
type CSR struct {
	offsets  []int
	targets  []int
	weights  []float64
	directed bool
}

// compile-time checks
var (
	_ Graph         = (*CSR)(nil)
	_ WeightedGraph = (*CSR)(nil)
)

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *CSR) NodeCount() int {
	return len(g.offsets) - 1
}

// Degree returns the number of neighbour entries of node.
// Complexity: O(1).
func (g *CSR) Degree(node int) int {
	return g.offsets[node+1] - g.offsets[node]
}

// Neighbors returns the read-only neighbour view of node.
// Complexity: O(1), no allocation.
func (g *CSR) Neighbors(node int) []int {
	lo, hi := g.offsets[node], g.offsets[node+1]

	return g.targets[lo:hi:hi]
}

// Weights returns the weights aligned with Neighbors(node).
// For unweighted graphs every weight is reported as 1.
func (g *CSR) Weights(node int) []float64 {
	lo, hi := g.offsets[node], g.offsets[node+1]
	if g.weights == nil {
		unit := make([]float64, hi-lo)
		for i := range unit {
			unit[i] = 1
		}
		return unit
	}

	return g.weights[lo:hi:hi]
}

// Directed reports the orientation policy the graph was built with.
func (g *CSR) Directed() bool {
	return g.directed
}

// Weighted reports whether the graph was built WithWeighted.
func (g *CSR) Weighted() bool {
	return g.weights != nil
}

// RelationshipCount returns the number of stored neighbour entries
// (an undirected edge is stored twice).
func (g *CSR) RelationshipCount() int {
	return len(g.targets)
}

// HasNode reports whether node is a valid id of g.
func HasNode(g Graph, node int) bool {
	return node >= 0 && node < g.NodeCount()
}

// Stats computes a GraphStats summary of any Graph.
// Complexity: O(V).
func Stats(g Graph) GraphStats {
	n := g.NodeCount()
	s := GraphStats{NodeCount: n, Directed: g.Directed()}
	for v := 0; v < n; v++ {
		d := g.Degree(v)
		s.RelationshipCount += d
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}
	if n > 0 {
		s.MeanDegree = float64(s.RelationshipCount) / float64(n)
	}

	return s
}
