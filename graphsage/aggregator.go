// SPDX-License-Identifier: MIT

package graphsage

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gdsgo/errkind"
	"github.com/katalvlaran/gdsgo/rng"
)

// Activation is the element-wise non-linearity applied by an Aggregator.
type Activation int

const (
	Sigmoid Activation = iota
	ReLU
	Identity
)

// String returns the configuration name of a.
func (a Activation) String() string {
	switch a {
	case ReLU:
		return "relu"
	case Identity:
		return "identity"
	default:
		return "sigmoid"
	}
}

// ParseActivation maps "sigmoid" (or ""), "relu" and "identity" to an Activation.
func ParseActivation(name string) (Activation, error) {
	switch strings.ToLower(name) {
	case "", "sigmoid":
		return Sigmoid, nil
	case "relu":
		return ReLU, nil
	case "identity", "linear":
		return Identity, nil
	default:
		return 0, errkind.Configf(opConfigure, "unknown activation %q (want sigmoid, relu or identity)", name)
	}
}

func (a Activation) apply(v *mat.VecDense) {
	data := v.RawVector().Data
	switch a {
	case Sigmoid:
		for i, x := range data {
			data[i] = 1 / (1 + math.Exp(-x))
		}
	case ReLU:
		for i, x := range data {
			if x < 0 {
				data[i] = 0
			}
		}
	}
}

// AggregatorKind tags the aggregation rule.
type AggregatorKind int

const (
	// Mean: act(W · mean(h_self, h_1..h_k)).
	Mean AggregatorKind = iota
	// Pool: act(W_self·h_self + W_neigh · max_j act(W_pool·h_j + b)).
	Pool
)

// String returns the configuration name of k.
func (k AggregatorKind) String() string {
	if k == Pool {
		return "pool"
	}

	return "mean"
}

// ParseAggregatorKind maps "mean" (or "") and "pool" to a kind.
func ParseAggregatorKind(name string) (AggregatorKind, error) {
	switch strings.ToLower(name) {
	case "", "mean":
		return Mean, nil
	case "pool", "pooling", "max":
		return Pool, nil
	default:
		return 0, errkind.Configf(opConfigure, "unknown aggregator %q (want mean or pool)", name)
	}
}

// Weight tensor positions in Aggregator.Weights.
const (
	meanW = 0

	poolSelf  = 0
	poolNeigh = 1
	poolW     = 2
	poolBias  = 3
)

// Aggregator combines a node vector with its sampled neighbours' vectors.
// It owns its weights; Aggregate only reads them, so one Aggregator may be
// shared by concurrent batches as long as nobody trains it meanwhile.
type Aggregator struct {
	Kind       AggregatorKind
	Activation Activation

	in, out int
	weights []*mat.Dense
}

// NewAggregator allocates an aggregator mapping in-wide vectors to out-wide
// vectors, with Glorot-uniform weights drawn from seed. The Pool hidden width
// equals out.
func NewAggregator(kind AggregatorKind, in, out int, act Activation, seed int64) (*Aggregator, error) {
	if in < 1 || out < 1 {
		return nil, errkind.Configf(opConfigure, "aggregator dimensions must be positive, got %dx%d", in, out)
	}
	r := rng.New(seed)
	a := &Aggregator{Kind: kind, Activation: act, in: in, out: out}
	switch kind {
	case Mean:
		a.weights = []*mat.Dense{glorot(out, in, r)}
	case Pool:
		a.weights = []*mat.Dense{
			glorot(out, in, r),  // self
			glorot(out, out, r), // neighbour
			glorot(out, in, r),  // pool
			mat.NewDense(out, 1, nil),
		}
	default:
		return nil, errkind.Configf(opConfigure, "unknown aggregator kind %d", int(kind))
	}

	return a, nil
}

// glorot returns a rows×cols matrix with entries uniform in ±sqrt(6/(rows+cols)).
func glorot(rows, cols int, r *rand.Rand) *mat.Dense {
	limit := math.Sqrt(6 / float64(rows+cols))
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = (2*r.Float64() - 1) * limit
	}

	return mat.NewDense(rows, cols, data)
}

// InputDim is the width of accepted vectors.
func (a *Aggregator) InputDim() int { return a.in }

// OutputDim is the width of produced vectors.
func (a *Aggregator) OutputDim() int { return a.out }

// Weights returns the weight tensors for an external trainer: [W] for Mean,
// [W_self, W_neigh, W_pool, b] for Pool. The matrices are live, not copies.
func (a *Aggregator) Weights() []*mat.Dense {
	return a.weights
}

// Aggregate maps (self, neighbours) to a new OutputDim-wide vector. Inputs are
// not modified. Equal inputs and weights give bit-identical outputs.
func (a *Aggregator) Aggregate(self []float64, neighbors [][]float64) ([]float64, error) {
	if len(self) != a.in {
		return nil, fmt.Errorf("self vector has %d values, want %d: %w", len(self), a.in, ErrDimensionMismatch)
	}
	for i, nb := range neighbors {
		if len(nb) != a.in {
			return nil, fmt.Errorf("neighbour %d has %d values, want %d: %w", i, len(nb), a.in, ErrDimensionMismatch)
		}
	}

	switch a.Kind {
	case Pool:
		return a.pool(self, neighbors), nil
	default:
		return a.mean(self, neighbors), nil
	}
}

func (a *Aggregator) mean(self []float64, neighbors [][]float64) []float64 {
	avg := mat.NewVecDense(a.in, nil)
	avg.CopyVec(mat.NewVecDense(a.in, self))
	for _, nb := range neighbors {
		avg.AddVec(avg, mat.NewVecDense(a.in, nb))
	}
	avg.ScaleVec(1/float64(1+len(neighbors)), avg)

	out := mat.NewVecDense(a.out, nil)
	out.MulVec(a.weights[meanW], avg)
	a.Activation.apply(out)

	return out.RawVector().Data
}

func (a *Aggregator) pool(self []float64, neighbors [][]float64) []float64 {
	// 1) Element-wise max over transformed neighbours; zero without neighbours.
	pooled := mat.NewVecDense(a.out, nil)
	if len(neighbors) > 0 {
		acc := pooled.RawVector().Data
		for i := range acc {
			acc[i] = math.Inf(-1)
		}
		hidden := mat.NewVecDense(a.out, nil)
		for _, nb := range neighbors {
			hidden.MulVec(a.weights[poolW], mat.NewVecDense(a.in, nb))
			hidden.AddVec(hidden, a.weights[poolBias].ColView(0))
			a.Activation.apply(hidden)
			for i, x := range hidden.RawVector().Data {
				if x > acc[i] {
					acc[i] = x
				}
			}
		}
	}

	// 2) Combine with the node's own transform.
	out := mat.NewVecDense(a.out, nil)
	out.MulVec(a.weights[poolSelf], mat.NewVecDense(a.in, self))
	var neigh mat.VecDense
	neigh.MulVec(a.weights[poolNeigh], pooled)
	out.AddVec(out, &neigh)
	a.Activation.apply(out)

	return out.RawVector().Data
}
