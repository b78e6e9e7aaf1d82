package bfs

import (
	"errors"
	"fmt"
)

// ErrNoPath is returned by Result.PathTo for a station the traversal never reached.
var ErrNoPath = errors.New("bfs: no path")

// Option configures BFS behaviour via functional arguments.
type Option func(*Options)

// Options holds BFS parameters.
type Options struct {
	// MaxDepth, if > 0, stops expanding beyond this many hops.
	// 0 means no limit; negative values are treated as 0.
	MaxDepth int

	// OnVisit, if non-nil, is called for every station as it is dequeued.
	OnVisit func(name string, depth int)
}

// DefaultOptions returns Options with no depth limit and no hook.
func DefaultOptions() Options {
	return Options{}
}

// WithMaxDepth limits the traversal to d hops from the start.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			d = 0
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a callback run when each station is visited.
func WithOnVisit(fn func(name string, depth int)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// Result holds the outcome of a traversal:
//   - Order: stations in visit sequence.
//   - Depth: hop count from the start.
//   - Parent: predecessor in the BFS tree (absent for the start).
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the fewest-stops path from the start to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
