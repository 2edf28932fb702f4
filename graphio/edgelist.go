// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gdsgo/core"
)

// Sentinel errors.
var (
	// ErrSyntax indicates a malformed edge-list line.
	ErrSyntax = errors.New("graphio: malformed edge list")

	// ErrLabelCount indicates a label slice that does not match the result length.
	ErrLabelCount = errors.New("graphio: label count does not match rows")
)

// maxLine bounds a single edge-list line.
const maxLine = 1 << 20

// EdgeList is a parsed graph with the label of every node id.
type EdgeList struct {
	Graph  *core.CSR
	Labels []string
}

type rawEdge struct {
	from, to int
	weight   float64
}

// ReadEdgeList parses r. opts are applied to the core.Builder; WithWeighted is
// added automatically when a weight column is present.
func ReadEdgeList(r io.Reader, opts ...core.GraphOption) (*EdgeList, error) {
	ids := make(map[string]int)
	var labels []string
	id := func(label string) int {
		if v, ok := ids[label]; ok {
			return v
		}
		ids[label] = len(labels)
		labels = append(labels, label)

		return ids[label]
	}

	// 1) Tokenize.
	var edges []rawEdge
	weighted := false
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(c rune) bool { return c == ' ' || c == '\t' || c == ',' })
		if len(fields) > 3 {
			return nil, fmt.Errorf("line %d: want \"from [to [weight]]\", got %d fields: %w", line, len(fields), ErrSyntax)
		}
		if len(fields) == 1 {
			id(fields[0])
			continue
		}
		e := rawEdge{from: id(fields[0]), to: id(fields[1]), weight: 1}
		if len(fields) == 3 {
			w, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: weight %q: %w", line, fields[2], ErrSyntax)
			}
			e.weight = w
			weighted = true
		}
		edges = append(edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read edge list: %w", err)
	}

	// 2) Build.
	if weighted {
		opts = append(append([]core.GraphOption{}, opts...), core.WithWeighted())
	}
	b := core.NewBuilder(len(labels), opts...)
	for _, e := range edges {
		w := 0.0
		if weighted {
			w = e.weight
		}
		if err := b.AddEdge(e.from, e.to, w); err != nil {
			return nil, fmt.Errorf("edge %s -> %s: %w", labels[e.from], labels[e.to], err)
		}
	}
	g, err := b.Build()
	if err != nil {
		return nil, err
	}

	return &EdgeList{Graph: g, Labels: labels}, nil
}

// ReadEdgeListFile opens path and parses it with ReadEdgeList.
func ReadEdgeListFile(path string, opts ...core.GraphOption) (*EdgeList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadEdgeList(f, opts...)
}

// WriteEdgeList writes g in edge-list format with numeric labels. Undirected
// relationships are written once (from ≤ to); weights only for weighted graphs.
// A node that takes part in no relationship is written as a bare id line so
// the node count survives a round trip.
func WriteEdgeList(w io.Writer, g core.Graph) error {
	bw := bufio.NewWriter(w)
	wg, weighted := g.(interface {
		core.WeightedGraph
		Weighted() bool
	})
	weighted = weighted && wg.Weighted()

	n := g.NodeCount()
	linked := make([]bool, n)
	for v := 0; v < n; v++ {
		for _, u := range g.Neighbors(v) {
			linked[v] = true
			if u >= 0 && u < n {
				linked[u] = true
			}
		}
	}

	for v := 0; v < n; v++ {
		if !linked[v] {
			if _, err := fmt.Fprintf(bw, "%d\n", v); err != nil {
				return err
			}
			continue
		}
		var ws []float64
		if weighted {
			ws = wg.Weights(v)
		}
		for i, u := range g.Neighbors(v) {
			if !g.Directed() && u < v {
				continue
			}
			var err error
			if weighted {
				_, err = fmt.Fprintf(bw, "%d %d %s\n", v, u, strconv.FormatFloat(ws[i], 'g', -1, 64))
			} else {
				_, err = fmt.Fprintf(bw, "%d %d\n", v, u)
			}
			if err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
