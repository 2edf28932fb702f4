// SPDX-License-Identifier: MIT

package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gdsgo/config"
	"github.com/katalvlaran/gdsgo/core"
	"github.com/katalvlaran/gdsgo/errkind"
	"github.com/katalvlaran/gdsgo/graphio"
	"github.com/katalvlaran/gdsgo/graphsage"
)

const opEmbed = "cli.embed"

// embedOpts holds the flags of the embed command.
type embedOpts struct {
	graph       string // edge-list path
	directed    bool   // read edges as one-way
	samples     []int  // sample size per layer
	dims        []int  // output dimension per layer
	aggregator  string // mean | pool, applied to every layer
	activation  string // sigmoid | relu | identity, applied to every layer
	featureDim  int    // width of the degree features
	batch       int    // nodes per batch
	concurrency int    // batches in flight
	seed        int64  // weight and sampling seed
	normalize   bool   // unit-length output rows
	cacheSize   int    // sampled neighbourhoods kept in memory
	memoryLimit string // e.g. "2GiB"
	out         string // CSV destination, stdout when empty
}

func newEmbedCmd() *cobra.Command {
	var opts embedOpts

	cmd := &cobra.Command{
		Use:   "embed",
		Short: "Compute GraphSAGE embeddings of every node",
		Long:  `embed runs the GraphSAGE forward pass with freshly initialised weights over degree-derived input features.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmbed(cmd, &opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.graph, "graph", "g", "", "edge-list file")
	f.BoolVar(&opts.directed, "directed", false, "treat edges as directed")
	f.IntSliceVar(&opts.samples, "layers", nil, "neighbour sample size per layer, e.g. 10,5")
	f.IntSliceVar(&opts.dims, "dims", nil, "output dimension per layer, e.g. 64,64")
	f.StringVar(&opts.aggregator, "aggregator", "", "aggregator for every layer: mean, pool")
	f.StringVar(&opts.activation, "activation", "", "activation for every layer: sigmoid, relu, identity")
	f.IntVar(&opts.featureDim, "feature-dim", 0, "number of degree-derived input features")
	f.IntVar(&opts.batch, "batch", 0, "nodes per batch")
	f.IntVar(&opts.concurrency, "concurrency", 0, "batches in flight (default: pool size)")
	f.Int64Var(&opts.seed, "seed", 0, "weight and sampling seed")
	f.BoolVar(&opts.normalize, "normalize", false, "scale every embedding to unit length")
	f.IntVar(&opts.cacheSize, "cache-size", 0, "sampled neighbourhoods to memoize (0 disables)")
	f.StringVar(&opts.memoryLimit, "memory-limit", "", "reject runs estimated above this size, e.g. 2GiB")
	f.StringVarP(&opts.out, "out", "o", "", "output CSV file (default stdout)")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

func runEmbed(cmd *cobra.Command, opts *embedOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	// 1) Flags over configuration.
	e := &cfg.Embedding
	f := cmd.Flags()
	var samples, dims []int
	if f.Changed("layers") {
		samples = opts.samples
	}
	if f.Changed("dims") {
		dims = opts.dims
	}
	layers, err := overrideLayers(e.Layers, samples, dims)
	if err != nil {
		return err
	}
	for i := range layers {
		if f.Changed("aggregator") {
			layers[i].Aggregator = opts.aggregator
		}
		if f.Changed("activation") {
			layers[i].Activation = opts.activation
		}
	}
	e.Layers = layers
	if f.Changed("feature-dim") {
		e.FeatureDim = opts.featureDim
	}
	if f.Changed("batch") {
		e.BatchSize = opts.batch
	}
	if f.Changed("concurrency") {
		e.Concurrency = opts.concurrency
	}
	if f.Changed("seed") {
		e.Seed = opts.seed
	}
	if f.Changed("normalize") {
		e.Normalize = opts.normalize
	}
	if f.Changed("cache-size") {
		e.CacheSize = opts.cacheSize
	}
	if f.Changed("memory-limit") {
		cfg.Memory.Limit = opts.memoryLimit
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	budget, err := cfg.Memory.Budget()
	if err != nil {
		return err
	}

	// 2) Load and derive features.
	p := newProgress(logger)
	el, err := graphio.ReadEdgeListFile(opts.graph, core.WithDirected(opts.directed))
	if err != nil {
		return err
	}
	features, err := graphsage.DegreeFeatures(el.Graph, e.FeatureDim)
	if err != nil {
		return err
	}
	stack, err := graphsage.NewLayers(e.LayerConfigs(), e.FeatureDim, e.Seed)
	if err != nil {
		return err
	}
	p.done("Loaded graph", "path", opts.graph, "nodes", el.Graph.NodeCount(), "layers", len(stack))

	// 3) Run.
	eopts := []graphsage.Option{
		graphsage.WithContext(ctx),
		graphsage.WithLogger(logger),
		graphsage.WithBudget(budget),
		graphsage.WithBatchSize(e.BatchSize),
	}
	if e.Concurrency > 0 {
		eopts = append(eopts, graphsage.WithConcurrency(e.Concurrency))
	}
	if e.Normalize {
		eopts = append(eopts, graphsage.WithNormalize())
	}
	if e.CacheSize > 0 {
		cache, err := graphsage.NewSampleCache(e.CacheSize)
		if err != nil {
			return err
		}
		eopts = append(eopts, graphsage.WithSampleCache(cache))
	}
	p = newProgress(logger)
	emb, err := graphsage.Embed(el.Graph, features, stack, nil, eopts...)
	if err != nil {
		return err
	}
	p.done("Computed embeddings", "nodes", len(emb.Nodes), "run", emb.RunID)

	// 4) Write.
	return writeOutput(opts.out, cmd.OutOrStdout(), func(w io.Writer) error {
		return graphio.WriteEmbeddings(w, el.Labels, emb.Nodes, emb.Vectors)
	})
}

// overrideLayers returns a fresh layer list with the given per-layer sample
// sizes and output dimensions. A nil slice keeps base's values; layers added
// beyond base copy base's last layer. Both slices, when set, must agree in length.
func overrideLayers(base []config.LayerConfig, samples, dims []int) ([]config.LayerConfig, error) {
	n := len(base)
	switch {
	case samples != nil && dims != nil && len(samples) != len(dims):
		return nil, errkind.Configf(opEmbed, "--layers has %d entries but --dims has %d", len(samples), len(dims))
	case samples != nil:
		n = len(samples)
	case dims != nil:
		n = len(dims)
	}

	template := config.LayerConfig{Aggregator: "mean", Activation: "sigmoid"}
	if len(base) > 0 {
		template = base[len(base)-1]
	}
	out := make([]config.LayerConfig, n)
	for i := range out {
		out[i] = template
		if i < len(base) {
			out[i] = base[i]
		}
		if samples != nil {
			out[i].SampleSize = samples[i]
		}
		if dims != nil {
			out[i].OutputDim = dims[i]
		}
	}

	return out, nil
}
