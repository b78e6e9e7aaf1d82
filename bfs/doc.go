// Package bfs provides breadth-first traversal and connected-component
// discovery over a core.Network.
//
// What
//
//   - BFS(n, start, opts...) visits stations in non-decreasing hop count from
//     start. Stations are marked when enqueued, so each is queued once.
//     The Result carries the visit Order plus Depth (hops) and Parent links,
//     from which PathTo rebuilds a fewest-stops route.
//   - Components(n) runs BFS from every not-yet-visited station and returns
//     one station list per connected component.
//
// Unknown start stations are not an error: the Result is simply empty.
//
// Determinism
//
//	core.Network iterates stations in insertion order and neighbours in edge
//	insertion order, so Order and component layout are reproducible. Tests
//	should still compare components as sets.
//
// Complexity (V = stations, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
