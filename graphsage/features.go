// SPDX-License-Identifier: MIT

package graphsage

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gdsgo/core"
	"github.com/katalvlaran/gdsgo/errkind"
)

// DegreeFeatures derives dim deterministic input features per node for graphs
// without properties: column j holds x^j / j! with x = log(1 + degree).
// Column 0 is therefore a constant bias of 1.
func DegreeFeatures(g core.Graph, dim int) (*mat.Dense, error) {
	if dim < 1 {
		return nil, errkind.Configf(opConfigure, "feature dimension must be positive, got %d", dim)
	}
	n := g.NodeCount()
	if n == 0 {
		return &mat.Dense{}, nil
	}
	data := make([]float64, n*dim)
	for v := 0; v < n; v++ {
		x := math.Log1p(float64(g.Degree(v)))
		term := 1.0
		row := data[v*dim : (v+1)*dim]
		for j := range row {
			if j > 0 {
				term *= x / float64(j)
			}
			row[j] = term
		}
	}

	return mat.NewDense(n, dim, data), nil
}
