// SPDX-License-Identifier: MIT

// Package config is the configuration surface of the analytics engines.
//
// A Config is loaded from YAML (strict: unknown keys fail) or TOML (unknown
// keys fail), chosen by file extension, on top of Default(). Validate checks
// every field and reports all violations at once as one errkind Configuration
// error. The conversion helpers (Strategy, Layers, Budget, NewLogger) turn the
// validated values into the types the engines consume.
package config

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gdsgo/errkind"
	"github.com/katalvlaran/gdsgo/graphsage"
	"github.com/katalvlaran/gdsgo/memory"
	"github.com/katalvlaran/gdsgo/selection"
)

const (
	opLoad     = "config.load"
	opValidate = "config.validate"
)

// Config is the full configuration of a CLI invocation.
type Config struct {
	Centrality CentralityConfig `yaml:"centrality" toml:"centrality"`
	Embedding  EmbeddingConfig  `yaml:"embedding" toml:"embedding"`
	Memory     MemoryConfig     `yaml:"memory" toml:"memory"`
	Log        LogConfig        `yaml:"log" toml:"log"`
}

// CentralityConfig configures betweenness runs.
type CentralityConfig struct {
	Strategy        string   `yaml:"strategy" toml:"strategy"`
	Probability     *float64 `yaml:"probability" toml:"probability"` // nil ⇒ computed default
	Bias            float64  `yaml:"bias" toml:"bias"`
	Seed            int64    `yaml:"seed" toml:"seed"`
	Concurrency     int      `yaml:"concurrency" toml:"concurrency"` // 0 ⇒ GOMAXPROCS
	Weighted        bool     `yaml:"weighted" toml:"weighted"`
	DegreeBalancing bool     `yaml:"degree_balancing" toml:"degree_balancing"`
}

// LayerConfig configures one embedding layer.
type LayerConfig struct {
	SampleSize int    `yaml:"sample_size" toml:"sample_size"`
	OutputDim  int    `yaml:"output_dim" toml:"output_dim"`
	Aggregator string `yaml:"aggregator" toml:"aggregator"`
	Activation string `yaml:"activation" toml:"activation"`
	Isolated   string `yaml:"isolated" toml:"isolated"`
}

// EmbeddingConfig configures the GraphSAGE forward pass.
type EmbeddingConfig struct {
	Layers      []LayerConfig `yaml:"layers" toml:"layers"`
	FeatureDim  int           `yaml:"feature_dim" toml:"feature_dim"`
	BatchSize   int           `yaml:"batch_size" toml:"batch_size"`
	Concurrency int           `yaml:"concurrency" toml:"concurrency"`
	Seed        int64         `yaml:"seed" toml:"seed"`
	Normalize   bool          `yaml:"normalize" toml:"normalize"`
	CacheSize   int           `yaml:"cache_size" toml:"cache_size"` // 0 ⇒ no sample cache
}

// MemoryConfig is the memory budget in human units ("2GiB", "512 MB").
type MemoryConfig struct {
	Limit    string `yaml:"limit" toml:"limit"`
	GrabSize string `yaml:"grab_size" toml:"grab_size"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`   // debug | info | warn | error
	Format string `yaml:"format" toml:"format"` // text | json | logfmt
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Centrality: CentralityConfig{Strategy: "all", Seed: 1},
		Embedding: EmbeddingConfig{
			Layers: []LayerConfig{
				{SampleSize: 25, OutputDim: 64, Aggregator: "mean", Activation: "sigmoid"},
				{SampleSize: 10, OutputDim: 64, Aggregator: "mean", Activation: "sigmoid"},
			},
			FeatureDim: 8,
			BatchSize:  graphsage.DefaultBatchSize,
			Seed:       1,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over Default(). ".yaml"/".yml" use yaml.v3 with
// KnownFields; ".toml" uses BurntSushi/toml and rejects undecoded keys.
// The result is not validated.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errkind.ConfigWrap(opLoad, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		// An empty document leaves the defaults in place.
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, errkind.ConfigWrap(opLoad, err)
		}
	case ".toml":
		md, err := toml.Decode(string(raw), &cfg)
		if err != nil {
			return cfg, errkind.ConfigWrap(opLoad, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}

			return cfg, errkind.Configf(opLoad, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
		}
	default:
		return cfg, errkind.Configf(opLoad, "unsupported config format %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}

	return cfg, nil
}

// ProbabilityOrNaN returns the configured probability or the NaN sentinel.
func (c CentralityConfig) ProbabilityOrNaN() float64 {
	if c.Probability == nil {
		return math.NaN()
	}

	return *c.Probability
}

// SelectionStrategy converts the centrality section into a selection.Strategy.
func (c CentralityConfig) SelectionStrategy() (selection.Strategy, error) {
	if p := c.ProbabilityOrNaN(); !math.IsNaN(p) && !(p >= 0 && p <= 1) {
		return selection.Strategy{}, errkind.Configf(opValidate, "probability %v outside [0, 1]", p)
	}
	s, err := selection.Parse(c.Strategy, c.ProbabilityOrNaN(), c.Seed)
	if err != nil {
		return s, err
	}
	if s.Kind == selection.RandomDegree && c.Bias != 0 {
		return selection.NewRandomDegree(s.Probability, c.Bias, c.Seed)
	}

	return s, nil
}

// LayerConfigs converts the layer list for graphsage.NewLayers.
func (c EmbeddingConfig) LayerConfigs() []graphsage.LayerConfig {
	out := make([]graphsage.LayerConfig, len(c.Layers))
	for i, l := range c.Layers {
		out[i] = graphsage.LayerConfig(l)
	}

	return out
}

// Budget parses the memory section.
func (c MemoryConfig) Budget() (memory.Budget, error) {
	return memory.ParseBudget(c.Limit, c.GrabSize)
}
