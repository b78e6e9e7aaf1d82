// Package prim_kruskal computes minimum spanning trees over a metro network
// with two classic algorithms: Prim's and Kruskal's.
//
// What & Why
//
//   - An MST is the cheapest set of connections that keeps every station
//     reachable. For a transit operator it answers "what is the minimum track
//     we could keep while still serving everyone".
//
// Algorithms Provided
//
//   - Prim(n, opts...) *Tree
//
//   - Strategy: grow one tree from a root station (WithRoot, default the
//     first station added) by repeatedly taking the lightest connection that
//     reaches a new station. Candidates live in a container/heap min-heap;
//     equal weights resolve by push order.
//
//   - Disconnected networks: the tree covers the root's component only;
//     Spanning is false and Err returns ErrDisconnected.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Kruskal(n) *Tree
//
//   - Strategy: sort all connections by weight and join components with a
//     disjoint-set structure (path halving, union by rank).
//
//   - Disconnected networks: the result is the minimum spanning forest.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Compute(n, opts...) dispatches on WithMethod(MethodPrim|MethodKruskal).
//
// Both algorithms skip self-loops and keep only the lightest of parallel
// connections. On a connected network both produce the same Total; the edge
// sets may differ when weights tie.
package prim_kruskal
