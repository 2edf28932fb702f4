// SPDX-License-Identifier: MIT
// Package: gdsgo/builder
//
// impl_star.go - Star(n): hub 0 joined to leaves 1..n-1.

package builder

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with hub 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(builderConfig) (fragment, error) {
		if n < minStarNodes {
			return fragment{}, wrapf(methodStar, ErrTooFewVertices, "n=%d < min=%d", n, minStarNodes)
		}
		edges := make([][2]int, 0, n-1)
		for leaf := 1; leaf < n; leaf++ {
			edges = append(edges, [2]int{0, leaf})
		}

		return fragment{nodes: n, edges: edges}, nil
	}
}
