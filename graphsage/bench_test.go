package graphsage_test

import (
	"testing"

	"github.com/katalvlaran/gdsgo/builder"
	"github.com/katalvlaran/gdsgo/graphsage"
)

func BenchmarkEmbedGrid(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(50, 50))
	if err != nil {
		b.Fatal(err)
	}
	features, err := graphsage.DegreeFeatures(g, 16)
	if err != nil {
		b.Fatal(err)
	}
	layers, err := graphsage.NewLayers([]graphsage.LayerConfig{
		{SampleSize: 10, OutputDim: 32, Aggregator: "mean"},
		{SampleSize: 5, OutputDim: 16, Aggregator: "pool"},
	}, 16, 1)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := graphsage.Embed(g, features, layers, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSample(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(200))
	if err != nil {
		b.Fatal(err)
	}
	s := graphsage.UniformSampler{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Sample(g, i%200, 25, 7)
	}
}
