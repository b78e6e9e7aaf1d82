// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metro/core"
)

// Station names used across core tests.
const (
	StationA = "A"
	StationB = "B"
	StationC = "C"
	StationD = "D"
	StationX = "X"
)

// quietNetwork returns a Network whose logger discards output.
func quietNetwork() *core.Network {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return core.NewNetwork(core.WithLogger(l))
}

// triangle builds A–B(1), B–C(1), A–C(5), every station on its own line.
func triangle(t *testing.T) *core.Network {
	t.Helper()
	n := quietNetwork()
	require.Equal(t, core.Added, n.AddStation(StationA, "Red", 1, 0, 0))
	require.Equal(t, core.Added, n.AddStation(StationB, "Red", 1, 0, 1))
	require.Equal(t, core.Added, n.AddStation(StationC, "Blue", 2, 1, 1))
	require.Equal(t, core.Added, n.AddEdge(StationA, StationB, 1))
	require.Equal(t, core.Added, n.AddEdge(StationB, StationC, 1))
	require.Equal(t, core.Added, n.AddEdge(StationA, StationC, 5))

	return n
}

// adjacencyTotal sums the lengths of every neighbour list.
func adjacencyTotal(n *core.Network) int {
	total := 0
	for _, name := range n.Stations() {
		list, _ := n.Neighbors(name)
		total += len(list)
	}

	return total
}
