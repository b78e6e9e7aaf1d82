package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/metro/builder"
	"github.com/katalvlaran/metro/dijkstra"
)

// BenchmarkShortestPath_Grid measures corner-to-corner routing on a 30×30
// grid with random transfer links.
func BenchmarkShortestPath_Grid(b *testing.B) {
	n := newNetwork()
	err := builder.Apply(n,
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithDistanceFn(builder.UniformWeightFn(0.5, 3))},
		builder.Grid(30, 30), builder.RandomLinks(0.002),
	)
	if err != nil {
		b.Fatal(err)
	}
	src, dst := builder.DefaultName("R0", 0), builder.DefaultName("R29", 29)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dijkstra.ShortestPath(n, src, dst)
	}
}
