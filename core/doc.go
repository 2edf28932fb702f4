// SPDX-License-Identifier: MIT

// Package core defines the read-only graph accessor consumed by every analytics
// package in this module, and an immutable compressed-sparse-row (CSR) graph that
// implements it.
//
// Node identifiers are dense integers in [0, NodeCount()). They are assigned by
// whoever builds the graph and never change for the lifetime of a CSR value.
//
// The accessor surface is deliberately small:
//
//	NodeCount() int            // number of nodes
//	Degree(node int) int       // out-degree (undirected: incident edges)
//	Neighbors(node int) []int  // read-only view, ascending by target id
//	Directed() bool            // orientation policy of the whole graph
//
// WeightedGraph adds Weights(node), aligned index-by-index with Neighbors(node).
//
// Building graphs:
//
//	b := core.NewBuilder(5)                   // undirected, unweighted by default
//	_ = b.AddEdge(0, 1, 0)
//	_ = b.AddEdge(1, 2, 0)
//	g, err := b.Build()                       // *core.CSR
//
// Graph options: WithDirected, WithWeighted, WithLoops and WithMultiEdges.
// Undirected edges are mirrored on Build; parallel edges collapse
// into one unless WithMultiEdges was given.
//
// Concurrency:
//
//	A built CSR is never mutated, so any number of goroutines may read it without
//	locks. A Builder is not safe for concurrent use.
//
// Complexity:
//
//	Build:     O(V + E log E) time (per-node neighbour sort), O(V + E) memory.
//	Degree:    O(1).
//	Neighbors: O(1), no allocation.
package core
