// SPDX-License-Identifier: MIT

package paths

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gdsgo/core"
)

// heapItem is one lazy priority-queue entry; stale entries are skipped on pop.
type heapItem struct {
	node int
	dist float64
}

// distHeap is a min-heap of heapItem by dist, ties broken by node id so the
// settle order is deterministic.
type distHeap []heapItem

func (h distHeap) Len() int { return len(h) }
func (h distHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].node < h[j].node
}
func (h distHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x any)   { *h = append(*h, x.(heapItem)) }
func (h *distHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Dijkstra sweeps the weighted graph g from source.
//
// A node's σ and predecessor list are final when it is popped: every
// predecessor of a node at distance d has distance < d (weights > 0) and was
// settled first. Equal tentative distances are detected by exact comparison.
//
// Weights must be strictly positive: with a zero-weight edge two nodes share a
// distance and neither is guaranteed to settle before the other, so σ would
// miss paths.
//
// Returns ErrWorkspaceSize, ErrSourceOutOfRange, ErrCorruptGraph or ErrNonPositiveWeight.
// Complexity: O((V' + E') log V') over the reached component.
func Dijkstra(g core.WeightedGraph, source int, w *Workspace) error {
	n := g.NodeCount()
	if err := w.check(n, source); err != nil {
		return err
	}
	w.Reset()

	w.Sigma[source] = 1
	w.discover(source, 0)
	heap.Push(&w.heap, heapItem{node: source, dist: 0})

	for w.heap.Len() > 0 {
		item := heap.Pop(&w.heap).(heapItem)
		v := item.node
		// stale entry or already settled
		if w.settled[v] || item.dist > w.Dist[v] {
			continue
		}
		w.settled[v] = true
		w.Order = append(w.Order, v)

		nbrs, weights := g.Neighbors(v), g.Weights(v)
		for i, nbr := range nbrs {
			if nbr < 0 || nbr >= n {
				return fmt.Errorf("node %d -> %d: %w", v, nbr, ErrCorruptGraph)
			}
			wt := weights[i]
			if !(wt > 0) {
				return fmt.Errorf("node %d -> %d weight=%v: %w", v, nbr, wt, ErrNonPositiveWeight)
			}
			if w.settled[nbr] {
				continue
			}
			alt := item.dist + wt
			switch {
			case w.Dist[nbr] == unreached:
				w.discover(nbr, alt)
				w.Sigma[nbr] = w.Sigma[v]
				w.Preds[nbr] = append(w.Preds[nbr][:0], v)
				heap.Push(&w.heap, heapItem{node: nbr, dist: alt})
			case alt < w.Dist[nbr]:
				w.Dist[nbr] = alt
				w.Sigma[nbr] = w.Sigma[v]
				w.Preds[nbr] = append(w.Preds[nbr][:0], v)
				heap.Push(&w.heap, heapItem{node: nbr, dist: alt})
			case alt == w.Dist[nbr]:
				w.Sigma[nbr] += w.Sigma[v]
				w.Preds[nbr] = append(w.Preds[nbr], v)
			}
		}
	}

	return nil
}
