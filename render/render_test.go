package render_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/dijkstra"
	"github.com/katalvlaran/metro/fare"
	"github.com/katalvlaran/metro/prim_kruskal"
	"github.com/katalvlaran/metro/render"
)

func plain() (*render.Printer, *bytes.Buffer) {
	var buf bytes.Buffer

	return render.New(&buf, false), &buf
}

func TestRoute(t *testing.T) {
	p, buf := plain()
	res := dijkstra.PathResult{
		Path:      []string{"Central", "Museum", "Park"},
		Lines:     []string{"Blue", "Green"},
		Distance:  5.5,
		Fare:      21,
		Transfers: 1,
		MaxZone:   2,
	}
	require.NoError(t, p.Route(res, nil))
	out := buf.String()
	assert.Contains(t, out, "Central -> Museum -> Park\n")
	assert.Contains(t, out, "Distance:  5.50 km\n")
	assert.Contains(t, out, "Lines:     Blue, Green\n")
	assert.Contains(t, out, "Transfers: 1\n")
	assert.Contains(t, out, "Fare:      21\n")
	assert.NotContains(t, out, "Category")
}

func TestRoute_WithBreakdown(t *testing.T) {
	p, buf := plain()
	b := fare.Default().Breakdown(12.5, 2)
	res := dijkstra.PathResult{Path: []string{"A", "B"}, Lines: []string{"L"}, Distance: 12.5, Fare: b.Total}
	require.NoError(t, p.Route(res, &b))
	out := buf.String()
	assert.Contains(t, out, "distance  10.00\n")
	assert.Contains(t, out, "total     21\n")
	assert.Contains(t, out, "Category: Standard\n")
}

func TestRoute_NotFound(t *testing.T) {
	p, buf := plain()
	res := dijkstra.PathResult{Path: []string{}, Distance: dijkstra.NoPath}
	require.NoError(t, p.Route(res, nil))
	assert.Equal(t, "No route found\n", buf.String())
}

func TestStationTable(t *testing.T) {
	l := logrus.New()
	l.SetOutput(io.Discard)
	n := core.NewNetwork(core.WithLogger(l))
	n.AddStation("Central", "Blue", 1, 40.7128, -74.006)

	p, buf := plain()
	require.NoError(t, p.StationTable([]string{"Central", "Ghost"}, n.Station))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Equal(t, []string{"Central", "Blue", "1", "40.7128", "-74.0060"}, strings.Fields(lines[1]))
	assert.Equal(t, "Ghost", strings.TrimSpace(lines[2]))

	buf.Reset()
	require.NoError(t, p.StationTable(nil, n.Station))
	assert.Equal(t, "No stations\n", buf.String())
}

func TestOrderAndPaths(t *testing.T) {
	p, buf := plain()
	require.NoError(t, p.Order("BFS from A", []string{"A", "B"}))
	assert.Equal(t, "BFS from A\n  1. A\n  2. B\n", buf.String())

	buf.Reset()
	require.NoError(t, p.Paths([][]string{{"A", "B", "D"}, {"A", "C", "D"}}))
	assert.Equal(t, "Paths (2)\n  1. A -> B -> D\n  2. A -> C -> D\n", buf.String())
}

func TestComponents(t *testing.T) {
	p, buf := plain()
	require.NoError(t, p.Components([][]string{{"A", "B"}, {"C"}}))
	assert.Equal(t, "Components (2)\n  1. [2] A, B\n  2. [1] C\n", buf.String())
}

func TestTree_Partial(t *testing.T) {
	l := logrus.New()
	l.SetOutput(io.Discard)
	n := core.NewNetwork(core.WithLogger(l))
	for _, s := range []string{"A", "B", "C"} {
		n.AddStation(s, "L", 1, 0, 0)
	}
	n.AddEdge("A", "B", 2)

	p, buf := plain()
	require.NoError(t, p.Tree(prim_kruskal.Prim(n)))
	out := buf.String()
	assert.Contains(t, out, "Total: 2.00 km over 1 connections")
	assert.Contains(t, out, "Partial: prim_kruskal: network is disconnected")
}

func TestLinesAndStats(t *testing.T) {
	p, buf := plain()
	counts := map[string]int{"Blue": 3, "Green": 1}
	require.NoError(t, p.Lines([]string{"Blue", "Green"}, func(l string) int { return counts[l] }))
	assert.Equal(t, []string{"Blue", "3"}, strings.Fields(strings.Split(buf.String(), "\n")[1]))

	buf.Reset()
	require.NoError(t, p.Stats(render.NetworkStats{Stations: 4, Connections: 3, Lines: 2, Components: 1}))
	assert.Contains(t, buf.String(), "Network statistics\n")
	assert.Contains(t, buf.String(), "cycles       false\n")
}

func TestCycle(t *testing.T) {
	p, buf := plain()
	require.NoError(t, p.Cycle(true))
	require.NoError(t, p.Cycle(false))
	assert.Equal(t, "The network contains at least one cycle\nThe network is acyclic\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteErrorIsSticky(t *testing.T) {
	p := render.New(failWriter{}, false)
	assert.EqualError(t, p.Message("x"), "disk full")
	assert.EqualError(t, p.Order("t", []string{"a"}), "disk full")
	assert.EqualError(t, p.Err(), "disk full")
}

func TestColorOutputKeepsText(t *testing.T) {
	var buf bytes.Buffer
	p := render.New(&buf, true)
	require.NoError(t, p.Order("Title", []string{"A"}))
	assert.Contains(t, buf.String(), "Title")
	assert.Contains(t, buf.String(), "1. A")
}
