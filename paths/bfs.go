// SPDX-License-Identifier: MIT

package paths

import (
	"fmt"

	"github.com/katalvlaran/gdsgo/core"
)

// BFS sweeps g from source, treating every relationship as length 1.
// The workspace is Reset first, so it may be reused across sources.
//
// Returns ErrWorkspaceSize, ErrSourceOutOfRange or ErrCorruptGraph.
// Complexity: O(V' + E') over the reached component.
func BFS(g core.Graph, source int, w *Workspace) error {
	n := g.NodeCount()
	if err := w.check(n, source); err != nil {
		return err
	}
	w.Reset()

	// touched doubles as the FIFO queue: BFS discovers nodes in visit order.
	w.Sigma[source] = 1
	w.discover(source, 0)

	for head := 0; head < len(w.touched); head++ {
		v := w.touched[head]
		w.Order = append(w.Order, v)
		next := w.Dist[v] + 1

		for _, nbr := range g.Neighbors(v) {
			if nbr < 0 || nbr >= n {
				return fmt.Errorf("node %d -> %d: %w", v, nbr, ErrCorruptGraph)
			}
			// first discovery
			if w.Dist[nbr] == unreached {
				w.discover(nbr, next)
			}
			// shortest path via v?
			if w.Dist[nbr] == next {
				w.Sigma[nbr] += w.Sigma[v]
				w.Preds[nbr] = append(w.Preds[nbr], v)
			}
		}
	}

	return nil
}
