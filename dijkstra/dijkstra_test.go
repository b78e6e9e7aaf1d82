package dijkstra_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/dijkstra"
)

func newNetwork() *core.Network {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return core.NewNetwork(core.WithLogger(l))
}

// triangle: A–B(1), B–C(1), A–C(5). A,B on Red, C on Blue.
func triangle(t *testing.T) *core.Network {
	t.Helper()
	n := newNetwork()
	n.AddStation("A", "Red", 1, 0, 0)
	n.AddStation("B", "Red", 2, 0, 0)
	n.AddStation("C", "Blue", 3, 0, 0)
	require.True(t, n.AddEdge("A", "B", 1).OK())
	require.True(t, n.AddEdge("B", "C", 1).OK())
	require.True(t, n.AddEdge("A", "C", 5).OK())

	return n
}

func TestShortestPath_PrefersCheaperDetour(t *testing.T) {
	res := dijkstra.ShortestPath(triangle(t), "A", "C")

	require.True(t, res.Found())
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.InDelta(t, 2.0, res.Distance, 1e-9)
	assert.Equal(t, []string{"Blue", "Red"}, res.Lines)
	assert.Equal(t, 1, res.Transfers)
	assert.Equal(t, 3, res.MaxZone)
	assert.Equal(t, dijkstra.EstimateFare(2, 3), res.Fare)
	assert.Equal(t, 22, res.Fare) // 10 + 9 + 3
}

func TestShortestPath_SameStation(t *testing.T) {
	res := dijkstra.ShortestPath(triangle(t), "B", "B")

	require.True(t, res.Found())
	assert.Equal(t, []string{"B"}, res.Path)
	assert.Zero(t, res.Distance)
	assert.Zero(t, res.Transfers)
	assert.Equal(t, []string{"Red"}, res.Lines)
}

func TestShortestPath_NoPathSentinel(t *testing.T) {
	n := triangle(t)
	n.AddStation("X", "Green", 1, 0, 0)
	n.AddStation("Y", "Green", 1, 0, 0)
	n.AddEdge("X", "Y", 1)

	for _, tc := range []struct{ name, src, dst string }{
		{"disconnected", "A", "Y"},
		{"unknown source", "Nope", "A"},
		{"unknown destination", "A", "Nope"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res := dijkstra.ShortestPath(n, tc.src, tc.dst)
			assert.False(t, res.Found())
			assert.Equal(t, dijkstra.NoPath, res.Distance)
			assert.Empty(t, res.Path)
			assert.Empty(t, res.Lines)
			assert.Zero(t, res.Fare)
		})
	}

	assert.False(t, dijkstra.ShortestPath(nil, "A", "B").Found())
}

func TestShortestPath_ParallelEdgesUseLightest(t *testing.T) {
	n := newNetwork()
	n.AddStation("A", "L", 1, 0, 0)
	n.AddStation("B", "L", 1, 0, 0)
	n.AddEdge("A", "B", 4)
	n.AddEdge("A", "B", 1.5)
	n.AddEdge("A", "B", 3)

	res := dijkstra.ShortestPath(n, "A", "B")
	assert.InDelta(t, 1.5, res.Distance, 1e-9)
	assert.Zero(t, res.Transfers)
}

func TestShortestPath_TransfersCountLineChanges(t *testing.T) {
	// Red → Red → Blue → Blue → Red : two changes
	n := newNetwork()
	lines := []string{"Red", "Red", "Blue", "Blue", "Red"}
	names := []string{"S1", "S2", "S3", "S4", "S5"}
	for i, name := range names {
		n.AddStation(name, lines[i], i+1, 0, 0)
	}
	for i := 1; i < len(names); i++ {
		n.AddEdge(names[i-1], names[i], 1)
	}

	res := dijkstra.ShortestPath(n, "S1", "S5")
	assert.Equal(t, names, res.Path)
	assert.Equal(t, 2, res.Transfers)
	assert.Equal(t, []string{"Blue", "Red"}, res.Lines)
	assert.Equal(t, 5, res.MaxZone)
}

func TestShortestPath_WithFare(t *testing.T) {
	var gotDist float64
	var gotZone int
	fare := func(d float64, z int) int {
		gotDist, gotZone = d, z
		return 42
	}

	res := dijkstra.ShortestPath(triangle(t), "A", "C", dijkstra.WithFare(fare), dijkstra.WithFare(nil))
	assert.Equal(t, 42, res.Fare)
	assert.InDelta(t, 2.0, gotDist, 1e-9)
	assert.Equal(t, 3, gotZone)
}

func TestShortestPath_ZeroWeightEdges(t *testing.T) {
	n := newNetwork()
	for _, s := range []string{"A", "B", "C"} {
		n.AddStation(s, "L", 1, 0, 0)
	}
	n.AddEdge("A", "B", 0)
	n.AddEdge("B", "C", 0)

	res := dijkstra.ShortestPath(n, "A", "C")
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Zero(t, res.Distance)
}

func TestEstimateFare(t *testing.T) {
	assert.Equal(t, 10, dijkstra.EstimateFare(0, 0))
	assert.Equal(t, 13, dijkstra.EstimateFare(0.5, 1))
	assert.Equal(t, 31, dijkstra.EstimateFare(10, 2)) // 10 + 6 + 15
	assert.Equal(t, 32, dijkstra.EstimateFare(10.9, 2), "distance part truncates")
}
