// SPDX-License-Identifier: MIT
// Package: gdsgo/builder
//
// impl_path.go - Path(n): 0-1-2-…-(n-1).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Edges (i-1, i) for i = 1..n-1 in increasing order.

package builder

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(builderConfig) (fragment, error) {
		if n < minPathNodes {
			return fragment{}, wrapf(methodPath, ErrTooFewVertices, "n=%d < min=%d", n, minPathNodes)
		}
		edges := make([][2]int, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, [2]int{i - 1, i})
		}

		return fragment{nodes: n, edges: edges}, nil
	}
}
