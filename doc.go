// SPDX-License-Identifier: MIT

// Package gdsgo is a parallel graph-analytics toolkit over read-only,
// dense-id graphs.
//
// Packages:
//   - core: the Graph accessor, the CSR representation and its Builder
//   - builder: deterministic synthetic graphs (path, cycle, star, complete, grid, random)
//   - paths: Brandes BFS and Dijkstra sweeps over a reusable workspace
//   - selection: pivot selection strategies for sampled betweenness
//   - centrality: exact and sampled betweenness centrality
//   - graphsage: GraphSAGE inference (sampling, mean and pool aggregation)
//   - concurrency: the shared worker pool and partitioning helpers
//   - memory: memory estimate trees and budget admission
//   - errkind: the Configuration / ResourceExceeded / Execution taxonomy
//   - config, metrics, graphio: configuration, Prometheus collectors and file I/O
//
// The gds command (cmd/gds) exposes the engines on edge-list files.
package gdsgo
