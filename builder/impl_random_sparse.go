// SPDX-License-Identifier: MIT
// Package: gdsgo/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n, p).
//
// Contract:
//   - n ≥ 1, 0 ≤ p ≤ 1.
//   - One Bernoulli trial per unordered pair {i<j}, in (i asc, j asc) order,
//     consuming cfg.rng; the result is fixed by WithSeed.

package builder

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that includes each pair with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (fragment, error) {
		if n < minRandomSparseVertices {
			return fragment{}, wrapf(methodRandomSparse, ErrTooFewVertices, "n=%d < min=%d", n, minRandomSparseVertices)
		}
		if !(p >= 0 && p <= 1) {
			return fragment{}, wrapf(methodRandomSparse, ErrInvalidProbability, "p=%v", p)
		}
		var edges [][2]int
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					edges = append(edges, [2]int{i, j})
				}
			}
		}

		return fragment{nodes: n, edges: edges}, nil
	}
}
