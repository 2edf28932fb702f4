// SPDX-License-Identifier: MIT

// Package cli implements the gds command-line interface.
//
// Commands:
//   - betweenness: exact or sampled betweenness centrality of an edge list
//   - embed: GraphSAGE forward-pass embeddings of an edge list
//   - estimate: memory estimates for a graph of a given size
//   - generate: synthetic graphs in edge-list format
//
// Every command reads the optional --config file (YAML or TOML) and lets its
// flags override the loaded values. The logger is built from the log section
// and travels through the command context; --verbose forces debug level.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gdsgo/config"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the build information printed by --version.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// Execute runs gds with os.Args under ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Results go to stdout unless --out
// is given; logs go to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	root := &cobra.Command{
		Use:           "gds",
		Short:         "gds runs parallel graph analytics over edge lists",
		Long:          `gds computes betweenness centrality and GraphSAGE embeddings over graphs read from edge-list files, with memory estimation and admission control.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = withLogger(ctx, cfg.Log.NewLogger(stderr, verbose))
			cmd.SetContext(withConfig(ctx, cfg))

			return nil
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("gds %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "configuration file (.yaml, .yml or .toml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newBetweennessCmd())
	root.AddCommand(newEmbedCmd())
	root.AddCommand(newEstimateCmd())
	root.AddCommand(newGenerateCmd())

	return root
}

// writeOutput runs write against path, or against stdout when path is "" or "-".
func writeOutput(path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
