// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gdsgo/errkind"
	"github.com/katalvlaran/gdsgo/graphsage"
)

// Validate checks every section and returns nil or one Configuration error
// listing all violations.
func (c Config) Validate() error {
	var v violations

	// 1) Centrality.
	if _, err := c.Centrality.SelectionStrategy(); err != nil {
		v.add("centrality: %s", message(err))
	}
	if c.Centrality.Concurrency < 0 {
		v.add("centrality.concurrency must not be negative, got %d", c.Centrality.Concurrency)
	}

	// 2) Embedding.
	e := c.Embedding
	if len(e.Layers) == 0 {
		v.add("embedding.layers must not be empty")
	}
	for i, l := range e.Layers {
		if l.SampleSize < 1 {
			v.add("embedding.layers[%d].sample_size must be positive, got %d", i, l.SampleSize)
		}
		if l.OutputDim < 1 {
			v.add("embedding.layers[%d].output_dim must be positive, got %d", i, l.OutputDim)
		}
		if _, err := graphsage.ParseAggregatorKind(l.Aggregator); err != nil {
			v.add("embedding.layers[%d]: %s", i, message(err))
		}
		if _, err := graphsage.ParseActivation(l.Activation); err != nil {
			v.add("embedding.layers[%d]: %s", i, message(err))
		}
		if _, err := graphsage.ParseIsolatedPolicy(l.Isolated); err != nil {
			v.add("embedding.layers[%d]: %s", i, message(err))
		}
	}
	if e.FeatureDim < 1 {
		v.add("embedding.feature_dim must be positive, got %d", e.FeatureDim)
	}
	if e.BatchSize < 1 {
		v.add("embedding.batch_size must be positive, got %d", e.BatchSize)
	}
	if e.Concurrency < 0 {
		v.add("embedding.concurrency must not be negative, got %d", e.Concurrency)
	}
	if e.CacheSize < 0 {
		v.add("embedding.cache_size must not be negative, got %d", e.CacheSize)
	}

	// 3) Memory.
	if _, err := c.Memory.Budget(); err != nil {
		v.add("memory: %s", message(err))
	}

	// 4) Log.
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		v.add("log.level: %s", err)
	}
	if _, ok := formatters[strings.ToLower(c.Log.Format)]; !ok {
		v.add("log.format %q is not one of text, json, logfmt", c.Log.Format)
	}

	return v.err()
}

// violations collects validation messages.
type violations []string

func (v *violations) add(format string, args ...any) {
	*v = append(*v, fmt.Sprintf(format, args...))
}

func (v violations) err() error {
	switch len(v) {
	case 0:
		return nil
	case 1:
		return errkind.Configf(opValidate, "%s", v[0])
	default:
		return errkind.Configf(opValidate, "multiple errors in configuration arguments:\n\t%s", strings.Join(v, "\n\t"))
	}
}

// message strips the taxonomy prefix of a nested Configuration error.
func message(err error) string {
	var e *errkind.Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}

	return err.Error()
}
