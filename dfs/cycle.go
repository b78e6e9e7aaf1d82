package dfs

import (
	"github.com/katalvlaran/metro/core"
)

// HasCycle reports whether the undirected network contains a cycle
// anywhere. It walks every component once and stops at the first cycle.
// Complexity: O(V + E).
func HasCycle(n *core.Network) bool {
	if n == nil {
		return false
	}
	visited := map[string]bool{}
	for _, root := range n.Stations() {
		if visited[root] {
			continue
		}
		if cycleFrom(n, root, visited) {
			return true
		}
	}

	return false
}

// cycleFrom explores root's component, marking stations in visited. It walks
// the raw adjacency lists, so a second connection between the same pair is a
// cycle; only the single entry leading back to the parent is skipped.
func cycleFrom(n *core.Network, root string, visited map[string]bool) bool {
	visited[root] = true
	stack := []*frame{{name: root, neighbors: adjacentNames(n, root)}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next >= len(top.neighbors) {
			stack = stack[:len(stack)-1]
			continue
		}
		next := top.neighbors[top.next]
		top.next++

		switch {
		case !visited[next]:
			visited[next] = true
			stack = append(stack, &frame{name: next, parent: top.name, hasParent: true, neighbors: adjacentNames(n, next)})
		case top.hasParent && !top.parentSkipped && next == top.parent:
			top.parentSkipped = true
		default:
			return true
		}
	}

	return false
}
