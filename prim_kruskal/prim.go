// Package prim_kruskal provides an implementation of Prim's Minimum Spanning
// Tree algorithm that grows a tree from a root station using a min-heap.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/metro/core"
)

// Prim computes the minimum spanning tree of the component containing the
// root station (default: the first station added to the network).
//
// Steps:
//  1. Resolve the root; an empty network yields an empty spanning Tree, an
//     unknown root yields an empty Tree whose Err is ErrRootNotFound.
//  2. Mark the root visited and push its connections onto the heap.
//  3. Pop the lightest connection; skip it if its far end is visited,
//     otherwise take it, mark the far end and push its connections.
//  4. Stop when the heap drains or V-1 edges are taken.
//  5. Spanning reports whether V-1 edges were taken.
//
// Equal weights are resolved by push order, so the result is deterministic.
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(n *core.Network, opts ...Option) *Tree {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Resolve root.
	stations := []string{}
	if n != nil {
		stations = n.Stations()
	}
	root := o.Root
	if root == "" && len(stations) > 0 {
		root = stations[0]
	}
	switch {
	case root == "":
		return &Tree{Edges: []TreeEdge{}, Spanning: true}
	case n == nil || !n.HasStation(root):
		return &Tree{Edges: []TreeEdge{}, err: ErrRootNotFound}
	}

	w := &primWalker{
		net:     n,
		visited: make(map[string]bool, len(stations)),
		pq:      &edgePQ{},
	}
	want := len(stations) - 1
	tree := &Tree{Edges: make([]TreeEdge, 0, want)}

	// 2. Seed with the root.
	heap.Init(w.pq)
	w.enter(root)

	// 3–4. Grow.
	for w.pq.Len() > 0 && len(tree.Edges) < want {
		it := heap.Pop(w.pq).(*edgeItem)
		if w.visited[it.to] {
			continue
		}
		tree.Edges = append(tree.Edges, TreeEdge{From: it.from, To: it.to, Weight: it.weight})
		tree.Total += it.weight
		w.enter(it.to)
	}

	// 5.
	tree.Spanning = len(tree.Edges) == want

	return tree
}

// primWalker carries Prim's frontier state.
type primWalker struct {
	net     *core.Network
	visited map[string]bool
	pq      *edgePQ
	seq     int
}

// enter marks name visited and pushes every connection to an unvisited
// neighbour. Self-loops never qualify.
func (w *primWalker) enter(name string) {
	w.visited[name] = true
	neighbors, _ := w.net.Neighbors(name)
	for _, nb := range neighbors {
		if w.visited[nb.Name] {
			continue
		}
		heap.Push(w.pq, &edgeItem{from: name, to: nb.Name, weight: nb.Distance, seq: w.seq})
		w.seq++
	}
}

// edgeItem is a candidate connection in the heap.
type edgeItem struct {
	from, to string
	weight   float64
	seq      int
}

// edgePQ implements heap.Interface for a min-heap of *edgeItem, ordered by
// weight and then push order.
type edgePQ []*edgeItem

// Len returns the number of candidates. Complexity: O(1).
func (pq edgePQ) Len() int { return len(pq) }

// Less compares by weight, then by push sequence.
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new *edgeItem. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*edgeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}
