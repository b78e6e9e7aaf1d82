// Package planner serves route queries with a bounded result cache in front
// of dijkstra.ShortestPath.
//
// Keys combine the network's Version with the endpoints, so any mutation of
// the network makes earlier entries unreachable; they age out through LRU
// eviction or the TTL. Results are copied on the way in and out, and the
// cache itself is safe for concurrent use, so one Planner can be shared by
// many goroutines.
package planner
