// Package prim_kruskal provides an implementation of Kruskal's Minimum
// Spanning Tree algorithm, producing a minimum spanning forest when the
// network is disconnected.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/metro/core"
)

// Kruskal computes the minimum spanning forest of the network. It uses a
// disjoint-set (union-find) structure with path compression and union by rank.
//
// Steps:
//  1. Collect each undirected connection once (from the endpoint added
//     earlier), skipping self-loops. Parallel connections are all kept; the
//     sort and union-find discard the heavier ones.
//  2. Stable-sort by ascending weight; ties keep collection order.
//  3. Take every connection whose endpoints lie in different sets.
//  4. Spanning reports whether the forest is a single tree.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(n *core.Network) *Tree {
	stations := []string{}
	if n != nil {
		stations = n.Stations()
	}
	if len(stations) == 0 {
		return &Tree{Edges: []TreeEdge{}, Spanning: true}
	}

	// 1. Collect.
	index := make(map[string]int, len(stations))
	for i, s := range stations {
		index[s] = i
	}
	edges := make([]TreeEdge, 0)
	for _, u := range stations {
		neighbors, _ := n.Neighbors(u)
		for _, nb := range neighbors {
			j, ok := index[nb.Name]
			if !ok || j <= index[u] {
				continue
			}
			edges = append(edges, TreeEdge{From: u, To: nb.Name, Weight: nb.Distance})
		}
	}

	// 2. Sort.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. Union-find over station indices.
	ds := newDisjointSet(len(stations))
	want := len(stations) - 1
	tree := &Tree{Edges: make([]TreeEdge, 0, want)}
	for _, e := range edges {
		if len(tree.Edges) == want {
			break
		}
		if ds.union(index[e.From], index[e.To]) {
			tree.Edges = append(tree.Edges, e)
			tree.Total += e.Weight
		}
	}

	// 4.
	tree.Spanning = len(tree.Edges) == want

	return tree
}

// Compute dispatches on opts Method. Unknown methods return ErrUnknownMethod.
func Compute(n *core.Network, opts ...Option) (*Tree, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodPrim:
		return Prim(n, WithRoot(o.Root)), nil
	case MethodKruskal:
		return Kruskal(n), nil
	default:
		return nil, ErrUnknownMethod
	}
}

// disjointSet is union-find over dense integer ids.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(size int) *disjointSet {
	ds := &disjointSet{parent: make([]int, size), rank: make([]int, size)}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find returns the set representative, halving paths as it walks.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v, reporting false if they were already one.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
