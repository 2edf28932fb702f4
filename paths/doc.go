// SPDX-License-Identifier: MIT

// Package paths runs single-source shortest-path sweeps over a core.Graph and
// records what Brandes' algorithm needs: shortest-path counts (σ), predecessor
// lists, and the settle order.
//
// What
//
//   - BFS: unweighted sweep, O(V + E).
//   - Dijkstra: weighted sweep over a core.WeightedGraph, O((V + E) log V),
//     binary heap with lazy decrease-key; weights must be non-negative.
//   - Accumulate: the backward dependency sweep, visiting nodes in reverse settle
//     order and reporting δ(v) for every node except the source.
//
// Workspace
//
//	A Workspace is allocated once per worker and reused for every source. Reset
//	touches only the nodes the previous sweep reached, so a sweep over a small
//	component costs O(component), not O(V).
//
// Determinism
//
//	Neighbours are visited in the order the graph yields them (ascending id for
//	core.CSR), so settle order and σ are reproducible for a fixed graph.
//
// Errors
//
//   - ErrSourceOutOfRange  if the source id is not a node of the graph.
//   - ErrCorruptGraph      if a neighbour id is outside [0, NodeCount()).
//   - ErrNonPositiveWeight if Dijkstra meets a zero, negative or NaN weight.
//   - ErrWorkspaceSize     if the workspace was sized for a different graph.

package paths
