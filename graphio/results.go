// SPDX-License-Identifier: MIT

package graphio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func label(labels []string, id int) string {
	if labels == nil {
		return strconv.Itoa(id)
	}

	return labels[id]
}

// WriteScores writes "node,<column>" rows, one per node id. labels may be nil
// (numeric ids) or must have one entry per score.
func WriteScores(w io.Writer, column string, labels []string, scores []float64) error {
	if labels != nil && len(labels) != len(scores) {
		return fmt.Errorf("%d labels for %d scores: %w", len(labels), len(scores), ErrLabelCount)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"node", column}); err != nil {
		return err
	}
	for v, x := range scores {
		if err := cw.Write([]string{label(labels, v), formatFloat(x)}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteEmbeddings writes "node,e0,e1,..." rows; row i of vectors belongs to
// node id nodes[i]. labels may be nil or must cover every node id.
func WriteEmbeddings(w io.Writer, labels []string, nodes []int, vectors mat.Matrix) error {
	rows, cols := 0, 0
	if len(nodes) > 0 {
		rows, cols = vectors.Dims()
	}
	if rows != len(nodes) {
		return fmt.Errorf("%d rows for %d nodes: %w", rows, len(nodes), ErrLabelCount)
	}
	for _, v := range nodes {
		if labels != nil && (v < 0 || v >= len(labels)) {
			return fmt.Errorf("node %d has no label: %w", v, ErrLabelCount)
		}
	}

	cw := csv.NewWriter(w)
	header := make([]string, cols+1)
	header[0] = "node"
	for j := 0; j < cols; j++ {
		header[j+1] = "e" + strconv.Itoa(j)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	record := make([]string, cols+1)
	for i, v := range nodes {
		record[0] = label(labels, v)
		for j := 0; j < cols; j++ {
			record[j+1] = formatFloat(vectors.At(i, j))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
