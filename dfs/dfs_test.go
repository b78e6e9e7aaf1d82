package dfs_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/dfs"
)

// build creates a network with the given stations and unit-distance edges.
func build(t *testing.T, stations []string, edges [][2]string) *core.Network {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	n := core.NewNetwork(core.WithLogger(l))
	for _, s := range stations {
		require.Equal(t, core.Added, n.AddStation(s, "L", 1, 0, 0))
	}
	for _, e := range edges {
		require.Equal(t, core.Added, n.AddEdge(e[0], e[1], 1))
	}

	return n
}

func diamond(t *testing.T) *core.Network {
	return build(t,
		[]string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}},
	)
}

func TestDFS_StackOrder(t *testing.T) {
	// Last neighbour pushed is explored first.
	assert.Equal(t, []string{"A", "C", "D", "B"}, dfs.DFS(diamond(t), "A"))
}

func TestDFS_UnknownStartAndIsolated(t *testing.T) {
	n := build(t, []string{"A", "B"}, nil)
	assert.Empty(t, dfs.DFS(n, "Z"))
	assert.Empty(t, dfs.DFS(nil, "A"))
	assert.Equal(t, []string{"A"}, dfs.DFS(n, "A"))
}

func TestAllPaths_Diamond(t *testing.T) {
	paths := dfs.AllPaths(diamond(t), "A", "D")
	assert.Equal(t, [][]string{{"A", "B", "D"}, {"A", "C", "D"}}, paths)
}

func TestAllPaths_SameStation(t *testing.T) {
	assert.Equal(t, [][]string{{"A"}}, dfs.AllPaths(diamond(t), "A", "A"))
}

func TestAllPaths_UnknownEndpoints(t *testing.T) {
	n := diamond(t)
	assert.Empty(t, dfs.AllPaths(n, "A", "Z"))
	assert.Empty(t, dfs.AllPaths(n, "Z", "A"))
}

func TestAllPaths_Unreachable(t *testing.T) {
	n := build(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}})
	assert.Empty(t, dfs.AllPaths(n, "A", "C"))
}

func TestAllPaths_MaxPaths(t *testing.T) {
	paths := dfs.AllPaths(diamond(t), "A", "D", dfs.WithMaxPaths(1))
	assert.Equal(t, [][]string{{"A", "B", "D"}}, paths)

	// Non-positive means unbounded.
	assert.Len(t, dfs.AllPaths(diamond(t), "A", "D", dfs.WithMaxPaths(0)), 2)
}

func TestAllPaths_MaxStops(t *testing.T) {
	n := diamond(t)
	require.Equal(t, core.Added, n.AddEdge("A", "D", 7))
	paths := dfs.AllPaths(n, "A", "D", dfs.WithMaxStops(1))
	assert.Equal(t, [][]string{{"A", "D"}}, paths)
}

func TestAllPaths_ParallelEdgesCountOnce(t *testing.T) {
	n := build(t, []string{"A", "B"}, [][2]string{{"A", "B"}, {"A", "B"}})
	assert.Equal(t, [][]string{{"A", "B"}}, dfs.AllPaths(n, "A", "B"))
}

func TestAllPaths_ResultsAreIndependent(t *testing.T) {
	paths := dfs.AllPaths(diamond(t), "A", "D")
	require.Len(t, paths, 2)
	paths[0][1] = "mutated"
	assert.Equal(t, "C", paths[1][1])
}

func TestHasCycle(t *testing.T) {
	cases := []struct {
		name     string
		stations []string
		edges    [][2]string
		want     bool
	}{
		{"empty", nil, nil, false},
		{"triangle", []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}}, true},
		{"star", []string{"H", "A", "B", "C"}, [][2]string{{"H", "A"}, {"H", "B"}, {"H", "C"}}, false},
		{"path", []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}}, false},
		{"parallel edges", []string{"A", "B"}, [][2]string{{"A", "B"}, {"A", "B"}}, true},
		{"parallel edges off the root", []string{"R", "A", "B"}, [][2]string{{"R", "A"}, {"A", "B"}, {"B", "A"}}, true},
		{"self loop", []string{"A"}, [][2]string{{"A", "A"}}, true},
		{"cycle in second component", []string{"X", "Y", "A", "B", "C", "D"},
			[][2]string{{"X", "Y"}, {"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dfs.HasCycle(build(t, tc.stations, tc.edges)))
		})
	}
	assert.False(t, dfs.HasCycle(nil))
}

func TestHasCycle_ParallelDistances(t *testing.T) {
	// Two services between the same pair at different distances.
	l := logrus.New()
	l.SetOutput(io.Discard)
	n := core.NewNetwork(core.WithLogger(l))
	n.AddStation("A", "Red", 1, 0, 0)
	n.AddStation("B", "Red", 1, 0, 0)
	require.Equal(t, core.Added, n.AddEdge("A", "B", 1))
	assert.False(t, dfs.HasCycle(n))

	require.Equal(t, core.Added, n.AddEdge("A", "B", 2))
	assert.True(t, dfs.HasCycle(n))

	removed, err := n.RemoveEdge("A", "B")
	require.NoError(t, err)
	require.True(t, removed)
	assert.False(t, dfs.HasCycle(n))
}

func TestHasCycle_LongChain(t *testing.T) {
	// Deep enough that a naive recursive walk would be a concern.
	const size = 20000
	l := logrus.New()
	l.SetOutput(io.Discard)
	n := core.NewNetwork(core.WithLogger(l))
	names := make([]string, size)
	for i := range names {
		names[i] = fmt.Sprintf("S%d", i)
		n.AddStation(names[i], "L", 1, 0, 0)
		if i > 0 {
			n.AddEdge(names[i-1], names[i], 1)
		}
	}
	assert.False(t, dfs.HasCycle(n))
	assert.Len(t, dfs.DFS(n, names[0]), size)

	n.AddEdge(names[size-1], names[0], 1)
	assert.True(t, dfs.HasCycle(n))
}
