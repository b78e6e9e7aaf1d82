// File: methods_edges.go
// Role: Edge lifecycle: AddEdge / RemoveEdge. Both directions are written
//       under one write lock so the symmetry invariant is never observable
//       as broken.

package core

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// AddEdge connects a and b with an undirected track of the given distance.
//
// The edge is dropped (lenient policy) when either endpoint is unknown
// (Missing) or the distance is negative or NaN (Rejected). Parallel edges
// are appended, never merged. A self-loop is stored twice in its own list.
//
// Complexity: O(1) amortized.
func (n *Network) AddEdge(a, b string, distance float64) Outcome {
	fields := logrus.Fields{"from": a, "to": b, "distance": distance}
	if distance < 0 || math.IsNaN(distance) {
		n.log.WithFields(fields).Debug("core: rejected edge")
		return Rejected
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	_, okA := n.stations[a]
	_, okB := n.stations[b]
	if !okA || !okB {
		n.log.WithFields(fields).Debug("core: edge between unknown stations dropped")
		return Missing
	}
	n.adjacency[a] = append(n.adjacency[a], Neighbor{Name: b, Distance: distance})
	n.adjacency[b] = append(n.adjacency[b], Neighbor{Name: a, Distance: distance})
	n.version++

	return Added
}

// RemoveEdge deletes every a–b edge from both adjacency lists.
//
// Returns (false, nil) when no such edge exists. When exactly one side
// references the other the adjacency is corrupt: nothing is mutated and
// ErrAsymmetricEdge is returned.
//
// Complexity: O(deg(a) + deg(b)).
func (n *Network) RemoveEdge(a, b string) (bool, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	listA, okA := n.adjacency[a]
	listB, okB := n.adjacency[b]
	if !okA || !okB {
		return false, nil
	}
	fwd, back := count(listA, b), count(listB, a)
	if a == b {
		// a self-loop is stored twice in one list
		back = fwd
	}
	switch {
	case fwd == 0 && back == 0:
		return false, nil
	case fwd != back:
		return false, fmt.Errorf("%w: %s→%s has %d entries, %s→%s has %d",
			ErrAsymmetricEdge, a, b, fwd, b, a, back)
	}
	n.adjacency[a] = without(listA, b)
	if a != b {
		n.adjacency[b] = without(listB, a)
	}
	n.version++

	return true, nil
}
