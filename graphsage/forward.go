// SPDX-License-Identifier: MIT
// Package: gdsgo/graphsage
//
// forward.go - Embed(g, features, layers, nodes, opts...): batched GraphSAGE
// inference.
//
// Contract:
//   - The layer chain must read the feature width and feed each output width
//     into the next layer (else Configuration).
//   - Requested nodes are split into batches; batches are grouped per worker
//     and run on the shared pool. Cancellation is checked between batches.
//   - Per batch, neighbourhoods are expanded from the last layer back to the
//     input, each node sampled once per level; vectors are then aggregated
//     forward, each node computed once per level.
//   - All-or-nothing: on error or cancellation no embeddings are returned.
//
// Complexity:
//   - Time: O(Σ_l |level_l|·(s_l+1)·d_in·d_out) per batch, |level_l| bounded by
//     batch·Π(1+s) and by V.
//   - Space: one computation tree per batch in flight.
//
// Determinism:
//   - Samples are pure in (layer random state, node); weights are seeded.
//   - Output rows do not depend on batch size, concurrency or the sample cache.

package graphsage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gdsgo/concurrency"
	"github.com/katalvlaran/gdsgo/core"
	"github.com/katalvlaran/gdsgo/errkind"
	"github.com/katalvlaran/gdsgo/metrics"
)

// Embed computes the final-layer embedding of every node in nodes (all nodes
// in id order when nodes is nil). features holds one raw input row per node
// of g. Row i of the result belongs to Nodes[i].
//
// Stages:
//  1. Validate the layer chain against the feature width; estimate memory.
//  2. Split the requested nodes into batches; group batches per worker.
//  3. Per batch: expand neighbourhoods backwards, then aggregate forwards.
//
// Errors: Configuration (bad options, broken dimension chain, unknown node),
// ResourceExceeded, Execution (e.g. ErrNeighborOutOfRange) and
// errkind.ErrCancelled. No partial embeddings are returned.
func Embed(g core.Graph, features *mat.Dense, layers []Layer, nodes []int, opts ...Option) (emb *Embeddings, err error) {
	start := time.Now()
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	runID := uuid.NewString()
	logger := o.Logger.With("algorithm", algorithm, "run", runID)
	defer func() {
		elapsed := time.Since(start)
		metrics.ObserveRun(algorithm, elapsed, err)
		switch {
		case err == nil:
			logger.Info("run finished", "nodes", len(emb.Nodes), "elapsed", elapsed)
		case errkind.IsCancelled(err):
			logger.Warn("run cancelled", "elapsed", elapsed)
		default:
			logger.Error("run failed", "err", err)
		}
	}()

	// 1) Validate and estimate.
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, errkind.Configf(opConfigure, "graph is nil")
	}
	n := g.NodeCount()
	if err := validateChain(n, features, layers); err != nil {
		return nil, err
	}
	if nodes == nil {
		nodes = make([]int, n)
		for i := range nodes {
			nodes[i] = i
		}
	}
	for _, v := range nodes {
		if !core.HasNode(g, v) {
			return nil, errkind.Configf(opConfigure, "requested node %d outside [0, %d)", v, n)
		}
	}
	workers := o.Concurrency
	if workers == 0 {
		workers = o.Pool.Size()
	}
	est := EstimateMemory(n, len(nodes), o.BatchSize, workers, inputWidth(features), configsOf(layers))
	metrics.EstimatedBytes.WithLabelValues(algorithm).Set(float64(est.Max))
	if err := o.Budget.Check(opEstimate, est); err != nil {
		return nil, err
	}

	outDim := layers[len(layers)-1].Aggregator.OutputDim()
	emb = &Embeddings{Nodes: nodes, Vectors: &mat.Dense{}, RunID: runID}
	if len(nodes) == 0 {
		return emb, nil
	}
	emb.Vectors = mat.NewDense(len(nodes), outDim, nil)

	// 2) Batch.
	batches := concurrency.Batches(len(nodes), o.BatchSize)
	parts := concurrency.Partitions(len(batches), workers)
	logger.Debug("forward pass planned", "nodes", len(nodes), "batches", len(batches), "workers", len(parts), "peak", est)

	fw := &forward{g: g, features: features, layers: layers, cache: o.Cache}
	err = o.Pool.Run(o.Ctx, len(parts), func(ctx context.Context, task int) error {
		for _, b := range batches[parts[task].Start:parts[task].End] {
			if err := ctx.Err(); err != nil {
				return err
			}
			// 3) Expand + aggregate.
			rows, err := fw.batch(nodes[b.Start:b.End])
			if err != nil {
				return errkind.ExecutionWrap(opForward, err)
			}
			for i, row := range rows {
				if o.Normalize {
					row = append([]float64(nil), row...)
					normalize(row)
				}
				emb.Vectors.SetRow(b.Start+i, row)
			}
			metrics.EmbeddingBatches.Inc()
		}

		return nil
	})
	if err != nil {
		if o.Ctx.Err() != nil {
			return nil, errkind.Cancelled(context.Cause(o.Ctx))
		}

		return nil, err
	}

	return emb, nil
}

// Vector returns a copy of row i.
func (e *Embeddings) Vector(i int) []float64 {
	return mat.Row(nil, i, e.Vectors)
}

func inputWidth(features *mat.Dense) int {
	if features == nil {
		return 0
	}
	_, c := features.Dims()

	return c
}

// validateChain checks that features cover the graph and that every layer
// reads what the previous one writes.
func validateChain(n int, features *mat.Dense, layers []Layer) error {
	if len(layers) == 0 {
		return errkind.Configf(opConfigure, "at least one layer is required")
	}
	for i, l := range layers {
		if l.Aggregator == nil || l.SampleSize < 1 {
			return errkind.Configf(opConfigure, "layer %d is incomplete (sample size %d)", i, l.SampleSize)
		}
		if i > 0 && l.Aggregator.InputDim() != layers[i-1].Aggregator.OutputDim() {
			return errkind.Configf(opConfigure, "layer %d reads %d values but layer %d writes %d",
				i, l.Aggregator.InputDim(), i-1, layers[i-1].Aggregator.OutputDim())
		}
	}
	if n == 0 {
		return nil
	}
	if features == nil {
		return errkind.Configf(opConfigure, "features are required for %d nodes", n)
	}
	rows, cols := features.Dims()
	if rows != n {
		return errkind.Configf(opConfigure, "features have %d rows for %d nodes", rows, n)
	}
	if cols != layers[0].Aggregator.InputDim() {
		return errkind.Configf(opConfigure, "features are %d wide but layer 0 reads %d", cols, layers[0].Aggregator.InputDim())
	}

	return nil
}

func configsOf(layers []Layer) []LayerConfig {
	out := make([]LayerConfig, len(layers))
	for i, l := range layers {
		out[i] = LayerConfig{SampleSize: l.SampleSize, OutputDim: l.Aggregator.OutputDim()}
	}

	return out
}

func normalize(row []float64) {
	if norm := floats.Norm(row, 2); norm > 0 {
		floats.Scale(1/norm, row)
	}
}

// forward holds the read-only inputs shared by every batch.
type forward struct {
	g        core.Graph
	features *mat.Dense
	layers   []Layer
	cache    *SampleCache
}

// tree is the computation tree of one batch. levels[l] lists the distinct
// nodes whose layer-l input is needed; levels[len(layers)] is the batch.
// samples[l][v] is the neighbourhood layer l aggregates for v.
type tree struct {
	levels  [][]int
	samples []map[int][]int
}

func (f *forward) neighborhood(l Layer, node int) []int {
	if f.cache != nil {
		return f.cache.Neighborhood(l, f.g, node)
	}

	return Neighborhood(l, f.g, node)
}

// expand walks the layers from last to first, sampling each needed node once.
func (f *forward) expand(batch []int) (*tree, error) {
	depth := len(f.layers)
	n := f.g.NodeCount()
	t := &tree{levels: make([][]int, depth+1), samples: make([]map[int][]int, depth)}
	t.levels[depth] = distinct(batch)

	for l := depth - 1; l >= 0; l-- {
		upper := t.levels[l+1]
		seen := make(map[int]struct{}, len(upper)*(1+f.layers[l].SampleSize))
		level := make([]int, 0, cap(upper))
		add := func(v int) {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				level = append(level, v)
			}
		}
		t.samples[l] = make(map[int][]int, len(upper))
		for _, v := range upper {
			add(v)
			ids := f.neighborhood(f.layers[l], v)
			for _, u := range ids {
				if u < 0 || u >= n {
					return nil, fmt.Errorf("node %d -> %d: %w", v, u, ErrNeighborOutOfRange)
				}
				add(u)
			}
			t.samples[l][v] = ids
		}
		t.levels[l] = level
	}

	return t, nil
}

// batch returns one output row per entry of batch, in order.
func (f *forward) batch(batch []int) ([][]float64, error) {
	t, err := f.expand(batch)
	if err != nil {
		return nil, err
	}

	// 1) Raw features for the deepest level.
	h := make(map[int][]float64, len(t.levels[0]))
	for _, v := range t.levels[0] {
		h[v] = mat.Row(nil, v, f.features)
	}
	// 2) One aggregation per distinct node and layer; h is replaced level by level.
	for l, layer := range f.layers {
		next := make(map[int][]float64, len(t.levels[l+1]))
		for _, v := range t.levels[l+1] {
			ids := t.samples[l][v]
			nbrs := make([][]float64, len(ids))
			for i, u := range ids {
				nbrs[i] = h[u]
			}
			out, err := layer.Aggregator.Aggregate(h[v], nbrs)
			if err != nil {
				return nil, fmt.Errorf("layer %d node %d: %w", l, v, err)
			}
			next[v] = out
		}
		h = next
	}

	// 3) Duplicated batch entries share a row.
	rows := make([][]float64, len(batch))
	for i, v := range batch {
		rows[i] = h[v]
	}

	return rows, nil
}

func distinct(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, v := range ids {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}
