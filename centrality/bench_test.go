package centrality_test

import (
	"testing"

	"github.com/katalvlaran/gdsgo/builder"
	"github.com/katalvlaran/gdsgo/centrality"
	"github.com/katalvlaran/gdsgo/selection"
)

func BenchmarkBetweennessGrid(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(40, 40))
	if err != nil {
		b.Fatal(err)
	}
	strategy, err := selection.NewRandomDegree(0.1, 0, 1)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := centrality.Betweenness(g, strategy); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkComputeStats(b *testing.B) {
	values := make([]float64, 1<<16)
	for i := range values {
		values[i] = float64(i % 97)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = centrality.ComputeStats(values)
	}
}
