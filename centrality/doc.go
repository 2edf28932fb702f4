// SPDX-License-Identifier: MIT

// Package centrality computes betweenness centrality with Brandes' algorithm
// over a pivot set chosen by a selection.Strategy.
//
// Run lifecycle:
//
//	Idle → Estimating → Partitioning → Accumulating → Merging → Done
//	                                         └─────→ Cancelled | Failed
//
//   - Estimating: the memory estimate is checked against the Budget before
//     anything is allocated; over budget aborts with ResourceExceeded.
//   - Partitioning: pivots (ascending ids) are split into contiguous ranges,
//     one per worker, by count or, WithDegreeBalancing, by pivot degree.
//   - Accumulating: every worker owns a local score array and a
//     paths.Workspace; for each pivot it runs BFS (or Dijkstra WithWeighted)
//     followed by the backward dependency sweep. Cancellation is checked
//     between pivots.
//   - Merging: local arrays are summed once all workers finished. Undirected
//     graphs are then halved, since each pair is reached from both ends.
//
// Execution is all-or-nothing: a failed or cancelled run returns a nil
// Result. Cancellation is reported as errkind.ErrCancelled.
//
// Complexity:
//
//	Time:   O(P·(V + E)) unweighted, O(P·(V + E) log V) weighted, P = pivots.
//	Memory: O(W·(V + E)) for W workers, see EstimateMemory.
//
// Example:
//
//	res, err := centrality.Betweenness(g, selection.NewAll(),
//	    centrality.WithConcurrency(4),
//	    centrality.WithContext(ctx),
//	)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Stats.Max)
package centrality
