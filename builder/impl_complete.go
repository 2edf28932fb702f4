// SPDX-License-Identifier: MIT
// Package: gdsgo/builder
//
// impl_complete.go - Complete(n): every unordered pair {i<j} once.
// On a directed graph this yields the transitive tournament i→j (i<j).

package builder

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the clique K_n.
func Complete(n int) Constructor {
	return func(builderConfig) (fragment, error) {
		if n < minCompleteNodes {
			return fragment{}, wrapf(methodComplete, ErrTooFewVertices, "n=%d < min=%d", n, minCompleteNodes)
		}
		edges := make([][2]int, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				edges = append(edges, [2]int{i, j})
			}
		}

		return fragment{nodes: n, edges: edges}, nil
	}
}
