// SPDX-License-Identifier: MIT

package paths

import (
	"errors"
	"fmt"
)

// Sentinel errors for shortest-path sweeps.
var (
	// ErrSourceOutOfRange indicates a source id outside the graph.
	ErrSourceOutOfRange = errors.New("paths: source out of range")

	// ErrCorruptGraph indicates the graph yielded a neighbour id outside its node range.
	ErrCorruptGraph = errors.New("paths: neighbour id out of range")

	// ErrNonPositiveWeight indicates a zero, negative or NaN relationship weight.
	ErrNonPositiveWeight = errors.New("paths: non-positive edge weight encountered")

	// ErrWorkspaceSize indicates a workspace sized for a different node count.
	ErrWorkspaceSize = errors.New("paths: workspace size does not match graph")
)

// unreached marks a node the current sweep has not discovered.
const unreached = -1.0

// Workspace holds per-node sweep state, indexed by node id.
//
// After a sweep:
//   - Order lists settled nodes in non-decreasing distance.
//   - Sigma[v] is the number of shortest paths source→v.
//   - Dist[v] is the distance (hop count for BFS), or -1 if unreached.
//   - Preds[v] lists v's predecessors on shortest paths.
//
// Delta is scratch space for Accumulate.
type Workspace struct {
	Sigma []float64
	Dist  []float64
	Delta []float64
	Preds [][]int
	Order []int

	settled []bool
	touched []int // every node given a distance, in discovery order
	heap    distHeap
}

// NewWorkspace allocates a workspace for graphs with n nodes.
// Complexity: O(n) time and memory.
func NewWorkspace(n int) *Workspace {
	w := &Workspace{
		Sigma:   make([]float64, n),
		Dist:    make([]float64, n),
		Delta:   make([]float64, n),
		Preds:   make([][]int, n),
		Order:   make([]int, 0, n),
		settled: make([]bool, n),
		touched: make([]int, 0, n),
	}
	for i := range w.Dist {
		w.Dist[i] = unreached
	}

	return w
}

// Size returns the node count the workspace was allocated for.
func (w *Workspace) Size() int {
	return len(w.Sigma)
}

// Reset clears the state left by the previous sweep, including a sweep that
// stopped early with an error.
// Complexity: O(nodes reached by the previous sweep).
func (w *Workspace) Reset() {
	for _, v := range w.touched {
		w.Sigma[v] = 0
		w.Dist[v] = unreached
		w.Delta[v] = 0
		w.Preds[v] = w.Preds[v][:0]
		w.settled[v] = false
	}
	w.Order = w.Order[:0]
	w.touched = w.touched[:0]
	w.heap = w.heap[:0]
}

// check validates the workspace against a graph of n nodes and the source.
func (w *Workspace) check(n, source int) error {
	if w.Size() != n {
		return fmt.Errorf("workspace %d, graph %d: %w", w.Size(), n, ErrWorkspaceSize)
	}
	if source < 0 || source >= n {
		return fmt.Errorf("source %d: %w", source, ErrSourceOutOfRange)
	}

	return nil
}

// discover gives node its first tentative distance.
func (w *Workspace) discover(node int, dist float64) {
	w.Dist[node] = dist
	w.touched = append(w.touched, node)
}

// Accumulate runs the Brandes backward sweep over the state of the last sweep
// from source and calls visit(v, δ(v)) for every settled node except source.
//
// δ(v) = Σ_{w : v ∈ Preds[w]} σ(v)/σ(w) · (1 + δ(w))
//
// Complexity: O(settled nodes + predecessor entries).
func Accumulate(w *Workspace, source int, visit func(node int, dependency float64)) {
	for i := len(w.Order) - 1; i >= 0; i-- {
		node := w.Order[i]
		coeff := (1 + w.Delta[node]) / w.Sigma[node]
		for _, pred := range w.Preds[node] {
			w.Delta[pred] += w.Sigma[pred] * coeff
		}
		if node != source {
			visit(node, w.Delta[node])
		}
	}
}
