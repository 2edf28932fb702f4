// SPDX-License-Identifier: MIT

// Package selection chooses the pivot nodes a betweenness run uses as
// shortest-path sources.
//
// A Strategy is a tagged value (Kind + parameters) evaluated by one function,
// Select. Three kinds exist:
//
//	All            every node is a pivot (exact betweenness).
//	RandomDegree   the top round(p·n) nodes by degree, optionally perturbed by a
//	               seeded bias; ties go to the lower id.
//	RandomUniform  an independent Bernoulli(p) trial per node, in id order, from
//	               a seeded stream.
//
// Probability policy:
//
//   - NaN means "unspecified": DefaultProbability(n) = log10(n)/e², clamped to
//     [1/n, 1] so a non-empty graph always yields pivots.
//   - Any other value must lie in [0, 1]; otherwise construction fails with an
//     errkind Configuration error.
//   - RandomUniform falls back to one uniformly drawn node when every trial
//     fails; RandomDegree always takes at least one node.
//
// Select is a pure function of (graph, strategy): equal inputs give equal pivot
// sets. Pivots are returned sorted ascending.
//
// Complexity:
//
//	All, RandomUniform  O(n)
//	RandomDegree        O(n log n)
package selection
