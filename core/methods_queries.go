// File: methods_queries.go
// Role: Read-only queries. Every method takes the read lock and returns
//       copies, so callers never alias internal slices.

package core

import "sort"

// HasStation reports whether a station with the given name exists.
// Complexity: O(1).
func (n *Network) HasStation(name string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.stations[name]

	return ok
}

// Station returns the station with the given name and whether it exists.
// Complexity: O(1).
func (n *Network) Station(name string) (Station, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	s, ok := n.stations[name]

	return s, ok
}

// StationCount returns the number of stations.
func (n *Network) StationCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.stations)
}

// EdgeCount returns the number of undirected edges: the sum of all adjacency
// list lengths divided by two. Parallel edges count individually.
// Complexity: O(V).
func (n *Network) EdgeCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	total := 0
	for _, list := range n.adjacency {
		total += len(list)
	}

	return total / 2
}

// Neighbors returns a copy of the adjacency list of name in edge insertion
// order, and false when the station does not exist.
// Complexity: O(deg).
func (n *Network) Neighbors(name string) ([]Neighbor, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	list, ok := n.adjacency[name]
	if !ok {
		return nil, false
	}
	out := make([]Neighbor, len(list))
	copy(out, list)

	return out, true
}

// Stations returns all station names in insertion order.
// Complexity: O(V).
func (n *Network) Stations() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]string, len(n.order))
	copy(out, n.order)

	return out
}

// Each calls fn for every station in insertion order until fn returns false.
// fn runs under the read lock and must not mutate the Network. A nil
// Network has no stations.
func (n *Network) Each(fn func(Station) bool) {
	if n == nil {
		return
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, name := range n.order {
		if !fn(n.stations[name]) {
			return
		}
	}
}

// Lines returns the distinct line labels, sorted ascending.
// Complexity: O(V log V).
func (n *Network) Lines() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, s := range n.stations {
		if _, ok := seen[s.Line]; ok {
			continue
		}
		seen[s.Line] = struct{}{}
		out = append(out, s.Line)
	}
	sort.Strings(out)

	return out
}

// StationsByLine returns the names of stations whose line equals line
// exactly (case-sensitive), sorted ascending.
func (n *Network) StationsByLine(line string) []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]string, 0)
	for _, s := range n.stations {
		if s.Line == line {
			out = append(out, s.Name)
		}
	}
	sort.Strings(out)

	return out
}

// Version returns a counter bumped by every applied mutation. Two equal
// versions of one Network observe identical contents.
func (n *Network) Version() uint64 {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.version
}
