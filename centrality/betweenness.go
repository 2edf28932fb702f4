// SPDX-License-Identifier: MIT
// Package: gdsgo/centrality
//
// betweenness.go - Betweenness(g, strategy, opts...): Brandes accumulation over
// a pivot set on the shared worker pool.
//
// Contract:
//   - Options are resolved first; an invalid option fails before any work.
//   - The memory estimate is checked against the Budget before selection.
//   - Pivots are split into at most Concurrency partitions, one pool task each.
//   - Every task owns its score array and workspace; nothing is shared while
//     tasks run. Arrays are summed once after all tasks return.
//   - Undirected graphs: merged scores are halved.
//   - All-or-nothing: on error or cancellation the Result is nil.
//
// Complexity:
//   - Time: O(k·(V+E)) unweighted, O(k·(V+E)·log V) weighted, for k pivots.
//   - Space: O(workers·(V+E)) for local arrays and workspaces.
//
// Determinism:
//   - Pivots depend only on the graph and the strategy seed.
//   - Scores are sums of per-pivot dependencies; partitioning changes only
//     the summation order.

package centrality

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/gdsgo/concurrency"
	"github.com/katalvlaran/gdsgo/core"
	"github.com/katalvlaran/gdsgo/errkind"
	"github.com/katalvlaran/gdsgo/metrics"
	"github.com/katalvlaran/gdsgo/paths"
	"github.com/katalvlaran/gdsgo/selection"
)

// run carries the resolved state of one Betweenness call.
type run struct {
	id     string
	opts   Options
	logger *log.Logger
	g      core.Graph
	wg     core.WeightedGraph // non-nil iff opts.Weighted
	state  State
}

func (r *run) enter(s State) {
	r.logger.Debug("state change", "from", r.state, "to", s)
	r.state = s
	r.opts.OnStateChange(r.id, s)
}

// Betweenness computes betweenness centrality of every node of g, using the
// pivots chosen by strategy as shortest-path sources.
//
// Errors:
//   - errkind Configuration: invalid option, strategy or graph mode.
//   - errkind ResourceExceeded: estimate above the Budget; nothing allocated.
//   - errkind Execution: a worker failed (e.g. paths.ErrCorruptGraph).
//   - errkind.ErrCancelled: the context ended; matches ctx.Err() too.
//
// The Result is nil whenever err is non-nil.
func Betweenness(g core.Graph, strategy selection.Strategy, opts ...Option) (res *Result, err error) {
	start := time.Now()
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &run{id: uuid.NewString(), opts: o, g: g}
	r.logger = o.Logger.With("algorithm", algorithm, "run", r.id)

	defer func() {
		elapsed := time.Since(start)
		metrics.ObserveRun(algorithm, elapsed, err)
		switch {
		case err == nil:
			r.enter(Done)
			r.logger.Info("run finished", "pivots", res.Pivots, "elapsed", elapsed, "max", res.Stats.Max)
		case errkind.IsCancelled(err):
			r.enter(Cancelled)
			r.logger.Warn("run cancelled", "elapsed", elapsed)
		default:
			r.enter(Failed)
			r.logger.Error("run failed", "err", err)
		}
	}()

	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, errkind.Configf(opConfigure, "graph is nil")
	}
	if o.Weighted {
		wg, ok := g.(core.WeightedGraph)
		if !ok {
			return nil, errkind.Configf(opConfigure, "weighted run requires a graph with relationship weights")
		}
		r.wg = wg
	}
	workers := o.Concurrency
	if workers == 0 {
		workers = o.Pool.Size()
	}

	// 1) Estimating.
	r.enter(Estimating)
	st := core.Stats(g)
	est := EstimateMemory(st.NodeCount, st.RelationshipCount, workers)
	metrics.EstimatedBytes.WithLabelValues(algorithm).Set(float64(est.Max))
	if err := o.Budget.Check(opEstimate, est); err != nil {
		return nil, err
	}
	r.logger.Debug("estimate admitted", "nodes", st.NodeCount, "rels", st.RelationshipCount, "peak", est)

	pivots, err := selection.Select(g, strategy)
	if err != nil {
		return nil, err
	}

	// 2) Partitioning.
	r.enter(Partitioning)
	var parts []concurrency.Range
	if o.DegreeBalancing {
		parts = concurrency.WeightedPartitions(len(pivots), workers, func(i int) int { return g.Degree(pivots[i]) })
	} else {
		parts = concurrency.Partitions(len(pivots), workers)
	}
	r.logger.Debug("pivots partitioned", "pivots", len(pivots), "partitions", len(parts), "strategy", strategy.Kind)

	// 3) Accumulating.
	r.enter(Accumulating)
	locals, err := r.accumulate(pivots, parts)
	if err != nil {
		return nil, err
	}

	// 4) Merging.
	r.enter(Merging)
	scores := merge(st.NodeCount, locals, g.Directed())

	return &Result{
		Centrality: scores,
		Stats:      ComputeStats(scores),
		Pivots:     len(pivots),
		RunID:      r.id,
		Elapsed:    time.Since(start),
	}, nil
}

// accumulate runs one task per partition on the pool and returns the
// worker-local score arrays. Nothing is returned unless every task succeeded.
func (r *run) accumulate(pivots []int, parts []concurrency.Range) ([][]float64, error) {
	n := r.g.NodeCount()
	locals := make([][]float64, len(parts))

	err := r.opts.Pool.Run(r.opts.Ctx, len(parts), func(ctx context.Context, task int) error {
		local := make([]float64, n)
		ws := paths.NewWorkspace(n)
		add := func(node int, dep float64) { local[node] += dep }

		for _, pivot := range pivots[parts[task].Start:parts[task].End] {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := r.sweep(pivot, ws); err != nil {
				return errkind.ExecutionWrap(opAccumulate, fmt.Errorf("pivot %d: %w", pivot, err))
			}
			paths.Accumulate(ws, pivot, add)
			metrics.PivotsProcessed.Inc()
		}
		locals[task] = local

		return nil
	})
	if err == nil {
		return locals, nil
	}
	if r.opts.Ctx.Err() != nil {
		return nil, errkind.Cancelled(context.Cause(r.opts.Ctx))
	}

	return nil, err
}

func (r *run) sweep(pivot int, ws *paths.Workspace) error {
	if r.wg != nil {
		return paths.Dijkstra(r.wg, pivot, ws)
	}

	return paths.BFS(r.g, pivot, ws)
}

// merge sums the local arrays elementwise; undirected scores are halved.
func merge(n int, locals [][]float64, directed bool) []float64 {
	scores := make([]float64, n)
	for _, local := range locals {
		for v, x := range local {
			scores[v] += x
		}
	}
	if !directed {
		for v := range scores {
			scores[v] /= 2
		}
	}

	return scores
}
