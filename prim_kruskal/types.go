// Package prim_kruskal defines configuration options, result types and
// sentinel errors for minimum spanning tree computation over a metro network.
package prim_kruskal

import (
	"errors"
)

// ErrDisconnected indicates that the network is not fully connected, so the
// returned tree covers only the component reachable from the root (Prim) or
// is a forest (Kruskal).
var ErrDisconnected = errors.New("prim_kruskal: network is disconnected")

// ErrRootNotFound indicates that the requested Prim root is not a station.
var ErrRootNotFound = errors.New("prim_kruskal: root station not found")

// ErrUnknownMethod is returned by Compute for a method name it does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// TreeEdge is one connection chosen for the tree. From is the endpoint that
// was already in the tree when the edge was taken (Prim) or the endpoint that
// was inserted first into the network (Kruskal).
type TreeEdge struct {
	From   string
	To     string
	Weight float64
}

// Tree is the result of an MST computation.
//
// Fields:
//
//	Edges   : chosen connections, in the order they were taken.
//	Total   : sum of Edges weights.
//	Spanning: true when the edges connect every station of the network.
//
// A non-spanning Tree is still a valid minimum tree of the part it covers;
// Err explains why it does not cover the rest.
type Tree struct {
	Edges    []TreeEdge
	Total    float64
	Spanning bool

	err error
}

// Err returns nil for a spanning tree, ErrRootNotFound when Prim was given an
// unknown root, and ErrDisconnected otherwise.
func (t *Tree) Err() error {
	if t.err != nil {
		return t.err
	}
	if !t.Spanning {
		return ErrDisconnected
	}

	return nil
}

// Stations returns the distinct stations touched by the tree, in edge order.
func (t *Tree) Stations() []string {
	seen := make(map[string]bool, len(t.Edges)+1)
	out := make([]string, 0, len(t.Edges)+1)
	for _, e := range t.Edges {
		for _, s := range [2]string{e.From, e.To} {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}

	return out
}

// MSTOptions configures which MST algorithm to run, and for Prim, which
// starting station to use.
//
// Fields:
//
//	Method string: one of MethodPrim or MethodKruskal (Compute only).
//	Root   string: start station for Prim; "" means the first station added.
type MSTOptions struct {
	Method string
	Root   string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm used by Compute.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting station for Prim's algorithm; Kruskal ignores it.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns Prim from the first station.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodPrim,
		Root:   "",
	}
}
