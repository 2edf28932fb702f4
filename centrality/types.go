// SPDX-License-Identifier: MIT

package centrality

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gdsgo/concurrency"
	"github.com/katalvlaran/gdsgo/errkind"
	"github.com/katalvlaran/gdsgo/memory"
)

const (
	algorithm    = "betweenness"
	opConfigure  = "betweenness.configure"
	opEstimate   = "betweenness.estimate"
	opAccumulate = "betweenness.accumulate"
)

// State is a phase of a betweenness run.
type State int

const (
	Idle State = iota
	Estimating
	Partitioning
	Accumulating
	Merging
	Done
	Cancelled
	Failed
)

// String returns the state name used in logs.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Estimating:
		return "estimating"
	case Partitioning:
		return "partitioning"
	case Accumulating:
		return "accumulating"
	case Merging:
		return "merging"
	case Done:
		return "done"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Stats summarizes a score array. On an empty graph Min is +Inf, Max is -Inf
// and Sum is 0: no centrality was computed.
type Stats struct {
	Min, Max, Sum float64
}

// Result is the outcome of a successful run. Centrality is indexed by node id
// and owned by the caller.
type Result struct {
	Centrality []float64
	Stats      Stats
	Pivots     int
	RunID      string
	Elapsed    time.Duration
}

// Option configures a run. An invalid Option is recorded and reported as a
// Configuration error when Betweenness starts.
type Option func(*Options)

// Options holds the run parameters.
type Options struct {
	// Ctx is checked between pivots.
	Ctx context.Context

	// Pool supplies worker slots; shared with other runs.
	Pool *concurrency.Pool

	// Concurrency is the number of partitions; 0 means Pool.Size().
	Concurrency int

	// Logger receives phase transitions (debug) and the completion line (info).
	Logger *log.Logger

	// Budget rejects runs whose estimate exceeds it.
	Budget memory.Budget

	// Weighted selects Dijkstra sweeps; the graph must be a core.WeightedGraph.
	Weighted bool

	// DegreeBalancing partitions pivots by degree instead of by count.
	DegreeBalancing bool

	// OnStateChange is called on every transition, from the calling goroutine.
	OnStateChange func(runID string, s State)

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - the process-wide concurrency.Default() pool
//   - a logger writing to io.Discard
//   - no memory limit, unweighted sweeps, count-based partitions
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Pool:          concurrency.Default(),
		Logger:        log.New(io.Discard),
		OnStateChange: func(string, State) {},
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

// WithPool runs workers on pool instead of the default pool.
func WithPool(pool *concurrency.Pool) Option {
	return func(o *Options) {
		if pool != nil {
			o.Pool = pool
		}
	}
}

// WithConcurrency sets the number of worker partitions; n must be positive.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = errkind.Configf(opConfigure, "concurrency must be positive, got %d", n)
			return
		}
		o.Concurrency = n
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

// WithWeighted switches to Dijkstra sweeps over relationship weights.
func WithWeighted() Option {
	return func(o *Options) {
		o.Weighted = true
	}
}

// WithDegreeBalancing partitions pivots so every worker sweeps a similar
// total degree.
func WithDegreeBalancing() Option {
	return func(o *Options) {
		o.DegreeBalancing = true
	}
}

// WithOnStateChange registers a transition callback.
func WithOnStateChange(fn func(runID string, s State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStateChange = fn
		}
	}
}
