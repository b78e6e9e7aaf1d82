package dfs

import (
	"github.com/katalvlaran/metro/core"
)

// DFS returns the stations reachable from start in LIFO-stack pop order.
// An unknown start yields an empty slice.
// Complexity: O(V + E).
func DFS(n *core.Network, start string) []string {
	order := []string{}
	if n == nil || !n.HasStation(start) {
		return order
	}

	visited := map[string]bool{}
	stack := []string{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		order = append(order, cur)

		neighbors, _ := n.Neighbors(cur)
		for _, nb := range neighbors {
			if !visited[nb.Name] {
				stack = append(stack, nb.Name)
			}
		}
	}

	return order
}

// adjacentNames returns name's adjacency list as names, one entry per
// connection. A self-loop appears twice.
func adjacentNames(n *core.Network, name string) []string {
	list, _ := n.Neighbors(name)
	out := make([]string, len(list))
	for i, nb := range list {
		out[i] = nb.Name
	}

	return out
}

// neighborNames returns the distinct names in name's adjacency list, in
// first-seen order. Parallel edges collapse to one entry.
func neighborNames(n *core.Network, name string) []string {
	list, _ := n.Neighbors(name)
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, nb := range list {
		if seen[nb.Name] {
			continue
		}
		seen[nb.Name] = true
		out = append(out, nb.Name)
	}

	return out
}
