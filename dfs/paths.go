package dfs

import (
	"github.com/katalvlaran/metro/core"
)

// AllPaths enumerates every simple path (no repeated station) from src to
// dst. Returns an empty slice when either endpoint is unknown; src == dst
// yields the single path [src].
func AllPaths(n *core.Network, src, dst string, opts ...PathsOption) [][]string {
	o := DefaultPathsOptions()
	for _, opt := range opts {
		opt(&o)
	}
	paths := [][]string{}
	if n == nil || !n.HasStation(src) || !n.HasStation(dst) {
		return paths
	}

	onPath := map[string]bool{src: true}
	path := []string{src}
	stack := []*frame{{name: src, neighbors: neighborNames(n, src)}}

	pop := func() {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		delete(onPath, top.name)
		path = path[:len(path)-1]
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.name == dst {
			found := make([]string, len(path))
			copy(found, path)
			paths = append(paths, found)
			if o.MaxPaths > 0 && len(paths) >= o.MaxPaths {
				return paths
			}
			pop()
			continue
		}
		if top.next >= len(top.neighbors) || (o.MaxStops > 0 && len(path)-1 >= o.MaxStops) {
			pop()
			continue
		}

		next := top.neighbors[top.next]
		top.next++
		if onPath[next] {
			continue
		}
		onPath[next] = true
		path = append(path, next)
		stack = append(stack, &frame{name: next, parent: top.name, neighbors: neighborNames(n, next)})
	}

	return paths
}
