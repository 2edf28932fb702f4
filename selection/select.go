// SPDX-License-Identifier: MIT

package selection

import (
	"cmp"
	"math"
	"slices"

	"github.com/katalvlaran/gdsgo/core"
	"github.com/katalvlaran/gdsgo/rng"
)

// Select evaluates s on g and returns the pivot ids in ascending order.
// The result is empty only when g has no nodes.
func Select(g core.Graph, s Strategy) ([]int, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	n := g.NodeCount()
	if n == 0 {
		return []int{}, nil
	}

	switch s.Kind {
	case RandomDegree:
		return selectByDegree(g, s.probability(n), s.Bias, s.Seed), nil
	case RandomUniform:
		return selectUniform(n, s.probability(n), s.Seed), nil
	default:
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}

		return all, nil
	}
}

// probability resolves the NaN sentinel for a graph of n nodes.
func (s Strategy) probability(n int) float64 {
	if math.IsNaN(s.Probability) {
		return DefaultProbability(n)
	}

	return s.Probability
}

// pivotCount is round(p·n), half away from zero, at least 1.
func pivotCount(p float64, n int) int {
	k := int(math.Round(p * float64(n)))
	if k < 1 {
		k = 1
	}
	if k > n {
		k = n
	}

	return k
}

func selectUniform(n int, p float64, seed int64) []int {
	r := rng.New(seed)
	pivots := make([]int, 0, int(p*float64(n))+1)
	for v := 0; v < n; v++ {
		if r.Float64() < p {
			pivots = append(pivots, v)
		}
	}
	if len(pivots) == 0 {
		pivots = append(pivots, r.Intn(n))
	}

	return pivots
}

type ranked struct {
	node  int
	score float64
}

func selectByDegree(g core.Graph, p, bias float64, seed int64) []int {
	n := g.NodeCount()
	nodes := make([]ranked, n)
	maxDeg := 0
	for v := 0; v < n; v++ {
		d := g.Degree(v)
		nodes[v] = ranked{node: v, score: float64(d)}
		if d > maxDeg {
			maxDeg = d
		}
	}

	// 1) Perturb.
	if bias > 0 {
		r := rng.New(seed)
		for i := range nodes {
			nodes[i].score = nodes[i].score*(1-bias) + bias*r.Float64()*float64(maxDeg)
		}
	}

	// 2) Rank: score descending, id ascending.
	slices.SortFunc(nodes, func(a, b ranked) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}

		return cmp.Compare(a.node, b.node)
	})

	// 3) Cut and restore id order.
	k := pivotCount(p, n)
	pivots := make([]int, k)
	for i := 0; i < k; i++ {
		pivots[i] = nodes[i].node
	}
	slices.Sort(pivots)

	return pivots
}
