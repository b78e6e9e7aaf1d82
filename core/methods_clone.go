// File: methods_clone.go
// Role: Snapshotting. A clone is fully independent of its source.

package core

// Clone returns a deep copy of the Network (stations, order, adjacency,
// version, logger). Use it to run several algorithms over one consistent
// state while the source keeps changing.
// Complexity: O(V + E).
func (n *Network) Clone() *Network {
	n.mu.RLock()
	defer n.mu.RUnlock()

	c := &Network{
		log:       n.log,
		stations:  make(map[string]Station, len(n.stations)),
		order:     make([]string, len(n.order)),
		adjacency: make(map[string][]Neighbor, len(n.adjacency)),
		version:   n.version,
	}
	copy(c.order, n.order)
	for name, s := range n.stations {
		c.stations[name] = s
	}
	for name, list := range n.adjacency {
		cl := make([]Neighbor, len(list))
		copy(cl, list)
		c.adjacency[name] = cl
	}

	return c
}
