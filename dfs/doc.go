// Package dfs implements the depth-first family of queries over a
// core.Network: stack-order traversal, simple-path enumeration and
// undirected cycle detection.
//
// All three use an explicit stack instead of recursion, so path length is
// bounded by memory rather than goroutine stack depth.
//
//   - DFS(n, start): LIFO frontier, a station is marked when popped. The
//     Order is the pop order, which for stations with several unvisited
//     neighbours differs from recursive preorder (the last neighbour pushed
//     is explored first).
//   - AllPaths(n, src, dst, opts...): backtracking over a frame stack with an
//     on-path set; every simple path is cloned into the result when dst is
//     reached. The output order equals recursive preorder. Cost is
//     exponential in general; use WithMaxPaths on anything but small
//     networks.
//   - HasCycle(n): per unvisited component, a depth-first walk that carries
//     each station's parent; reaching an already-visited station that is not
//     the direct parent means a cycle. Parallel edges between one pair are
//     therefore not a cycle; a self-loop is.
//
// Unknown stations never raise errors: traversals and path lists come back
// empty.
//
// Complexity:
//
//   - DFS, HasCycle: O(V + E) time, O(V) memory.
//   - AllPaths: O(P·L) output plus exponential search in the worst case.
package dfs
