// SPDX-License-Identifier: MIT

package graphsage

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gdsgo/concurrency"
	"github.com/katalvlaran/gdsgo/errkind"
	"github.com/katalvlaran/gdsgo/memory"
)

const (
	algorithm   = "graphsage"
	opConfigure = "graphsage.configure"
	opEstimate  = "graphsage.estimate"
	opForward   = "graphsage.forward"
)

// Sentinel errors.
var (
	// ErrDimensionMismatch indicates a vector whose width differs from the
	// aggregator's input dimension.
	ErrDimensionMismatch = errors.New("graphsage: vector dimension mismatch")

	// ErrNeighborOutOfRange indicates the graph yielded a neighbour id outside
	// [0, NodeCount()).
	ErrNeighborOutOfRange = errors.New("graphsage: neighbour id out of range")
)

// DefaultBatchSize is the number of requested nodes computed per batch.
const DefaultBatchSize = 100

// IsolatedPolicy decides what the sampler returns for a node without neighbours.
type IsolatedPolicy int

const (
	// IsolatedSelfLoop pads with copies of the node itself.
	IsolatedSelfLoop IsolatedPolicy = iota
	// IsolatedEmpty returns no samples; aggregators then see only the node.
	IsolatedEmpty
)

// String returns the configuration name of p.
func (p IsolatedPolicy) String() string {
	if p == IsolatedEmpty {
		return "empty"
	}

	return "self"
}

// ParseIsolatedPolicy maps "self" (or "") and "empty" to a policy.
func ParseIsolatedPolicy(name string) (IsolatedPolicy, error) {
	switch strings.ToLower(name) {
	case "", "self":
		return IsolatedSelfLoop, nil
	case "empty":
		return IsolatedEmpty, nil
	default:
		return 0, errkind.Configf(opConfigure, "unknown isolated-node policy %q (want self or empty)", name)
	}
}

// Embeddings holds one row of Vectors per entry of Nodes.
type Embeddings struct {
	Nodes   []int
	Vectors *mat.Dense
	RunID   string
}

// Option configures Embed. An invalid Option is reported as a Configuration
// error when Embed starts.
type Option func(*Options)

// Options holds the forward-pass parameters.
type Options struct {
	// Ctx is checked between batches.
	Ctx context.Context

	// Pool supplies worker slots.
	Pool *concurrency.Pool

	// Concurrency bounds the batches in flight; 0 means Pool.Size().
	Concurrency int

	// BatchSize is the number of requested nodes per batch.
	BatchSize int

	// Logger receives progress (debug) and the completion line (info).
	Logger *log.Logger

	// Budget rejects runs whose estimate exceeds it.
	Budget memory.Budget

	// Normalize scales every output row to unit L2 norm.
	Normalize bool

	// Cache memoizes neighbourhood samples across runs over the same graph.
	Cache *SampleCache

	err error
}

// DefaultOptions returns Options with a background context, the default pool,
// DefaultBatchSize, a discarding logger and no budget.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Pool:      concurrency.Default(),
		BatchSize: DefaultBatchSize,
		Logger:    log.New(io.Discard),
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPool runs batches on pool.
func WithPool(pool *concurrency.Pool) Option {
	return func(o *Options) {
		if pool != nil {
			o.Pool = pool
		}
	}
}

// WithConcurrency bounds the batches in flight; n must be positive.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = errkind.Configf(opConfigure, "concurrency must be positive, got %d", n)
			return
		}
		o.Concurrency = n
	}
}

// WithBatchSize sets the batch size; n must be positive.
func WithBatchSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = errkind.Configf(opConfigure, "batch size must be positive, got %d", n)
			return
		}
		o.BatchSize = n
	}
}

// WithLogger routes run logs to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithBudget enables the pre-flight memory check.
func WithBudget(b memory.Budget) Option {
	return func(o *Options) {
		o.Budget = b
	}
}

// WithNormalize L2-normalizes the output rows.
func WithNormalize() Option {
	return func(o *Options) {
		o.Normalize = true
	}
}

// WithSampleCache memoizes samples in c. A cache must only ever see one graph.
func WithSampleCache(c *SampleCache) Option {
	return func(o *Options) {
		o.Cache = c
	}
}
