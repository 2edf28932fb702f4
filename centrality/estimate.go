// SPDX-License-Identifier: MIT

package centrality

import "github.com/katalvlaran/gdsgo/memory"

// heapItemSize is one (node, distance) heap entry.
const heapItemSize = memory.IntSize + memory.Float64Size

// EstimateMemory predicts the peak footprint of a run over a graph with nodes
// nodes and rels stored relationships using concurrency workers.
//
// Per worker: a local score array plus a workspace (σ, distance, δ, settle
// order, touched list, settled flags, predecessor lists). Predecessor entries
// range from one per reached node to one per relationship; the Dijkstra heap
// is empty for BFS and holds at most one entry per relationship.
func EstimateMemory(nodes, rels, concurrency int) memory.Estimate {
	if concurrency < 1 {
		concurrency = 1
	}
	preds := memory.Between("predecessor entries",
		uint64(nodes)*memory.IntSize, uint64(max(rels, nodes))*memory.IntSize)

	workspace := memory.Sum("workspace",
		memory.Fixed("sigma", memory.SizeOfFloat64Array(nodes)),
		memory.Fixed("distance", memory.SizeOfFloat64Array(nodes)),
		memory.Fixed("delta", memory.SizeOfFloat64Array(nodes)),
		memory.Fixed("order", memory.SizeOfIntArray(nodes)),
		memory.Fixed("touched", memory.SizeOfIntArray(nodes)),
		memory.Fixed("settled", memory.SizeOfBoolArray(nodes)),
		memory.Fixed("predecessor lists", memory.SizeOfObjectArray(nodes)),
		preds,
		memory.Between("dijkstra heap", 0, uint64(rels)*heapItemSize),
	)
	worker := memory.Sum("worker",
		memory.Fixed("local scores", memory.SizeOfFloat64Array(nodes)),
		workspace,
	)

	return memory.Sum(algorithm,
		memory.Fixed("result", memory.SizeOfFloat64Array(nodes)),
		memory.Times("workers", concurrency, worker),
	)
}
