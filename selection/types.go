// SPDX-License-Identifier: MIT

package selection

import (
	"math"
	"strings"

	"github.com/katalvlaran/gdsgo/errkind"
)

const opParse = "selection.parse"

// Kind tags the strategy variant.
type Kind int

const (
	// All selects every node.
	All Kind = iota
	// RandomDegree selects the highest-degree fraction of nodes.
	RandomDegree
	// RandomUniform selects each node independently with a fixed probability.
	RandomUniform
)

// String returns the configuration name of k.
func (k Kind) String() string {
	switch k {
	case All:
		return "all"
	case RandomDegree:
		return "degree"
	case RandomUniform:
		return "random"
	default:
		return "unknown"
	}
}

// Strategy is an immutable pivot-selection recipe.
type Strategy struct {
	Kind        Kind
	Probability float64 // NaN ⇒ DefaultProbability(n)
	Bias        float64 // RandomDegree only; 0 ⇒ pure degree ranking
	Seed        int64   // drives RandomUniform trials and RandomDegree bias
}

// NewAll returns the exact strategy.
func NewAll() Strategy {
	return Strategy{Kind: All, Probability: math.NaN()}
}

// NewRandomDegree returns a degree-ranked strategy.
// probability may be NaN; bias must lie in [0, 1].
func NewRandomDegree(probability, bias float64, seed int64) (Strategy, error) {
	s := Strategy{Kind: RandomDegree, Probability: probability, Bias: bias, Seed: seed}

	return s, s.Validate()
}

// NewRandomUniform returns a Bernoulli strategy. probability may be NaN.
func NewRandomUniform(probability float64, seed int64) (Strategy, error) {
	s := Strategy{Kind: RandomUniform, Probability: probability, Seed: seed}

	return s, s.Validate()
}

// Parse maps a configuration name (all, degree, random; case-insensitive) to a
// Strategy. Unknown names and out-of-range probabilities are Configuration errors.
func Parse(name string, probability float64, seed int64) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "all":
		return NewAll(), nil
	case "degree":
		return NewRandomDegree(probability, 0, seed)
	case "random":
		return NewRandomUniform(probability, seed)
	default:
		return Strategy{}, errkind.Configf(opParse, "unknown selection strategy %q (want all, degree or random)", name)
	}
}

// Validate checks the parameters of s.
func (s Strategy) Validate() error {
	switch s.Kind {
	case All:
		return nil
	case RandomDegree:
		if !(s.Bias >= 0 && s.Bias <= 1) {
			return errkind.Configf(opParse, "bias %v outside [0, 1]", s.Bias)
		}
	case RandomUniform:
	default:
		return errkind.Configf(opParse, "unknown strategy kind %d", int(s.Kind))
	}
	if !math.IsNaN(s.Probability) && !(s.Probability >= 0 && s.Probability <= 1) {
		return errkind.Configf(opParse, "probability %v outside [0, 1]", s.Probability)
	}

	return nil
}

// DefaultProbability is the sampling rate used when none is configured:
// log10(n)/e², clamped to [1/n, 1]. It returns 0 for an empty graph.
func DefaultProbability(n int) float64 {
	if n <= 0 {
		return 0
	}
	p := math.Log10(float64(n)) / math.Exp(2)
	lo := 1 / float64(n)

	return math.Min(1, math.Max(lo, p))
}
