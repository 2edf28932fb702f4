// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gdsgo/centrality"
	"github.com/katalvlaran/gdsgo/core"
	"github.com/katalvlaran/gdsgo/graphio"
	"github.com/katalvlaran/gdsgo/metrics"
)

// betweennessOpts holds the flags of the betweenness command. Flags that were
// not set leave the configuration file values in place.
type betweennessOpts struct {
	graph           string  // edge-list path
	directed        bool    // read edges as one-way
	strategy        string  // all | degree | random
	probability     float64 // pivot sampling probability
	bias            float64 // degree-strategy randomness in [0, 1]
	seed            int64   // selection seed
	concurrency     int     // worker partitions
	weighted        bool    // Dijkstra sweeps over edge weights
	degreeBalancing bool    // partition pivots by degree
	memoryLimit     string  // e.g. "2GiB"
	out             string  // CSV destination, stdout when empty
	metricsOut      string  // Prometheus textfile destination
}

func newBetweennessCmd() *cobra.Command {
	var opts betweennessOpts

	cmd := &cobra.Command{
		Use:   "betweenness",
		Short: "Compute betweenness centrality of every node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBetweenness(cmd, &opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.graph, "graph", "g", "", "edge-list file")
	f.BoolVar(&opts.directed, "directed", false, "treat edges as directed")
	f.StringVar(&opts.strategy, "strategy", "", "pivot selection: all, degree, random")
	f.Float64Var(&opts.probability, "probability", 0, "pivot sampling probability in [0, 1] (default log10(n)/e²)")
	f.Float64Var(&opts.bias, "bias", 0, "randomness mixed into degree selection, in [0, 1]")
	f.Int64Var(&opts.seed, "seed", 0, "pivot selection seed")
	f.IntVar(&opts.concurrency, "concurrency", 0, "worker partitions (default: pool size)")
	f.BoolVar(&opts.weighted, "weighted", false, "use edge weights (Dijkstra sweeps)")
	f.BoolVar(&opts.degreeBalancing, "degree-balancing", false, "balance worker partitions by pivot degree")
	f.StringVar(&opts.memoryLimit, "memory-limit", "", "reject runs estimated above this size, e.g. 2GiB")
	f.StringVarP(&opts.out, "out", "o", "", "output CSV file (default stdout)")
	f.StringVar(&opts.metricsOut, "metrics-out", "", "write Prometheus metrics to this textfile after the run")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

func runBetweenness(cmd *cobra.Command, opts *betweennessOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	// 1) Flags over configuration.
	c := &cfg.Centrality
	f := cmd.Flags()
	if f.Changed("strategy") {
		c.Strategy = opts.strategy
	}
	if f.Changed("probability") {
		p := opts.probability
		c.Probability = &p
	}
	if f.Changed("bias") {
		c.Bias = opts.bias
	}
	if f.Changed("seed") {
		c.Seed = opts.seed
	}
	if f.Changed("concurrency") {
		c.Concurrency = opts.concurrency
	}
	if f.Changed("weighted") {
		c.Weighted = opts.weighted
	}
	if f.Changed("degree-balancing") {
		c.DegreeBalancing = opts.degreeBalancing
	}
	if f.Changed("memory-limit") {
		cfg.Memory.Limit = opts.memoryLimit
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	strategy, err := c.SelectionStrategy()
	if err != nil {
		return err
	}
	budget, err := cfg.Memory.Budget()
	if err != nil {
		return err
	}

	// 2) Load.
	p := newProgress(logger)
	el, err := graphio.ReadEdgeListFile(opts.graph, core.WithDirected(opts.directed))
	if err != nil {
		return err
	}
	p.done("Loaded graph", "path", opts.graph, "nodes", el.Graph.NodeCount(), "relationships", el.Graph.RelationshipCount())

	// 3) Run.
	copts := []centrality.Option{
		centrality.WithContext(ctx),
		centrality.WithLogger(logger),
		centrality.WithBudget(budget),
		centrality.WithOnStateChange(func(runID string, s centrality.State) {
			logger.Debug("state", "run", runID, "state", s)
		}),
	}
	if c.Concurrency > 0 {
		copts = append(copts, centrality.WithConcurrency(c.Concurrency))
	}
	if c.Weighted {
		copts = append(copts, centrality.WithWeighted())
	}
	if c.DegreeBalancing {
		copts = append(copts, centrality.WithDegreeBalancing())
	}
	p = newProgress(logger)
	res, err := centrality.Betweenness(el.Graph, strategy, copts...)
	if opts.metricsOut != "" {
		if merr := metrics.WriteTextfile(opts.metricsOut); merr != nil {
			logger.Warn("writing metrics failed", "path", opts.metricsOut, "err", merr)
		}
	}
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Computed betweenness from %d pivots", res.Pivots),
		"strategy", strategy.Kind, "min", res.Stats.Min, "max", res.Stats.Max, "sum", res.Stats.Sum)

	// 4) Write.
	return writeOutput(opts.out, cmd.OutOrStdout(), func(w io.Writer) error {
		return graphio.WriteScores(w, "betweenness", el.Labels, res.Centrality)
	})
}
