// SPDX-License-Identifier: MIT
// Package: gdsgo/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighbour lattice, node id = r*cols + c.
//
// Edge emission: for each cell in row-major order, right neighbour then down
// neighbour.

package builder

const methodGrid = "Grid"

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(builderConfig) (fragment, error) {
		if rows < 1 || cols < 1 {
			return fragment{}, wrapf(methodGrid, ErrTooFewVertices, "rows=%d cols=%d", rows, cols)
		}
		edges := make([][2]int, 0, 2*rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					edges = append(edges, [2]int{id, id + 1})
				}
				if r+1 < rows {
					edges = append(edges, [2]int{id, id + cols})
				}
			}
		}

		return fragment{nodes: rows * cols, edges: edges}, nil
	}
}
