// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gdsgo/centrality"
	"github.com/katalvlaran/gdsgo/concurrency"
	"github.com/katalvlaran/gdsgo/errkind"
	"github.com/katalvlaran/gdsgo/graphsage"
	"github.com/katalvlaran/gdsgo/memory"
)

const opEstimate = "cli.estimate"

// estimateOpts holds the flags of the estimate command.
type estimateOpts struct {
	nodes       int    // graph size
	rels        int    // stored relationships (undirected edges count twice)
	concurrency int    // workers / batches in flight
	algorithm   string // betweenness | graphsage | all
	memoryLimit string // checked against every estimate when set
}

func newEstimateCmd() *cobra.Command {
	opts := estimateOpts{algorithm: "all"}

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the peak memory of a run without a graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd, &opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.nodes, "nodes", 0, "number of nodes")
	f.IntVar(&opts.rels, "rels", 0, "number of stored relationships")
	f.IntVar(&opts.concurrency, "concurrency", 0, "workers (default: pool size)")
	f.StringVar(&opts.algorithm, "algorithm", opts.algorithm, "betweenness, graphsage or all")
	f.StringVar(&opts.memoryLimit, "memory-limit", "", "report whether each estimate fits this size, e.g. 2GiB")
	_ = cmd.MarkFlagRequired("nodes")

	return cmd
}

func runEstimate(cmd *cobra.Command, opts *estimateOpts) error {
	cfg := configFromContext(cmd.Context())
	if opts.nodes < 0 || opts.rels < 0 {
		return errkind.Configf(opEstimate, "--nodes and --rels must not be negative")
	}
	if cmd.Flags().Changed("memory-limit") {
		cfg.Memory.Limit = opts.memoryLimit
	}
	budget, err := cfg.Memory.Budget()
	if err != nil {
		return err
	}
	workers := opts.concurrency
	if workers < 1 {
		workers = concurrency.Default().Size()
	}

	var estimates []memory.Estimate
	switch opts.algorithm {
	case "betweenness", "all":
		estimates = append(estimates, centrality.EstimateMemory(opts.nodes, opts.rels, workers))
	}
	switch opts.algorithm {
	case "graphsage", "all":
		e := cfg.Embedding
		estimates = append(estimates, graphsage.EstimateMemory(opts.nodes, opts.nodes, e.BatchSize, workers, e.FeatureDim, e.LayerConfigs()))
	}
	if len(estimates) == 0 {
		return errkind.Configf(opEstimate, "unknown algorithm %q (want betweenness, graphsage or all)", opts.algorithm)
	}

	return writeEstimates(cmd.OutOrStdout(), estimates, budget)
}

// writeEstimates renders every estimate tree, followed by a verdict line
// when budget has a limit.
func writeEstimates(w io.Writer, estimates []memory.Estimate, budget memory.Budget) error {
	for i, e := range estimates {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, e.Render()); err != nil {
			return err
		}
		if budget.Limit == 0 {
			continue
		}
		verdict := fmt.Sprintf("fits within %s", humanize.IBytes(budget.Limit))
		if err := budget.Check(e.Description, e); err != nil {
			verdict = err.Error()
		}
		if _, err := fmt.Fprintln(w, verdict); err != nil {
			return err
		}
	}

	return nil
}
