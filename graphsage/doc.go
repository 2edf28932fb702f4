// SPDX-License-Identifier: MIT

// Package graphsage runs the forward pass of a GraphSAGE-style embedding
// model: every layer samples a fixed number of neighbours per node and
// aggregates their vectors with the node's own through learned weights.
//
// Building blocks
//
//   - UniformSampler: Sample(g, node, size, randomState) returns exactly size
//     ids. Without replacement (selection sampling) when the degree allows it,
//     otherwise every neighbour once and the rest drawn with replacement.
//     Isolated nodes yield size copies of themselves (IsolatedSelfLoop) or
//     nothing (IsolatedEmpty).
//   - Aggregator: a tagged variant (Mean, Pool) holding gonum weight matrices
//     initialised with seeded Glorot-uniform values. Aggregate is a pure
//     function of its inputs and the current weights.
//   - Layer: a sample size, an Aggregator, a sampler and a random state.
//     Weights and Neighborhood are free functions of a Layer; the random state
//     changes only through GenerateNewRandomState.
//
// Forward pass
//
// Embed processes the requested nodes in batches. For each batch it first
// expands neighbourhoods backwards from the last layer to the first, keeping
// one entry per distinct node per level, and then applies the layers forward
// from the raw features. A node reached through several branches is therefore
// computed once per level. Batches run on a concurrency.Pool and cancellation
// is checked between batches.
//
// Reproducibility
//
// Sampling derives a per-call seed from (randomState, node) with
// rng.DeriveSeed, so it needs no lock and returns the same ids for the same
// inputs regardless of batch layout or worker count. With fixed weights and
// random states, Embed is bit-for-bit deterministic.
//
// Training the weights is out of scope; Weights exposes the matrices to an
// external trainer.
package graphsage
