package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRemoveEdge_Asymmetric corrupts the adjacency by hand and checks that
// RemoveEdge refuses to touch it.
func TestRemoveEdge_Asymmetric(t *testing.T) {
	n := NewNetwork()
	require.Equal(t, Added, n.AddStation("A", "L", 1, 0, 0))
	require.Equal(t, Added, n.AddStation("B", "L", 1, 0, 0))
	n.adjacency["A"] = append(n.adjacency["A"], Neighbor{Name: "B", Distance: 1})

	removed, err := n.RemoveEdge("A", "B")
	assert.False(t, removed)
	assert.ErrorIs(t, err, ErrAsymmetricEdge)
	assert.Len(t, n.adjacency["A"], 1, "corrupt state is left for inspection")
}
