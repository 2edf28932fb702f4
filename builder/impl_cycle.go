// SPDX-License-Identifier: MIT
// Package: gdsgo/builder
//
// impl_cycle.go - Cycle(n): a path closed by the edge (n-1, 0).

package builder

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the cycle C_n (n ≥ 3).
func Cycle(n int) Constructor {
	return func(builderConfig) (fragment, error) {
		if n < minCycleNodes {
			return fragment{}, wrapf(methodCycle, ErrTooFewVertices, "n=%d < min=%d", n, minCycleNodes)
		}
		edges := make([][2]int, 0, n)
		for i := 0; i < n; i++ {
			edges = append(edges, [2]int{i, (i + 1) % n})
		}

		return fragment{nodes: n, edges: edges}, nil
	}
}
