// File: methods_stations.go
// Role: Station lifecycle: AddStation / RemoveStation.
// Concurrency:
//   - Both take the write lock for their whole duration.

package core

import (
	"github.com/sirupsen/logrus"
)

// AddStation inserts a station unless one with the same name already exists.
// The first write wins: re-adding a name never updates its attributes.
// An adjacency entry is created for every new station.
//
// Returns Added, Duplicate, or Rejected (empty name, zone < 1).
// Complexity: O(1) amortized.
func (n *Network) AddStation(name, line string, zone int, lat, lon float64) Outcome {
	if name == "" || zone < 1 {
		n.log.WithFields(logrus.Fields{"station": name, "zone": zone}).
			Debug("core: rejected station")
		return Rejected
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, exists := n.stations[name]; exists {
		n.log.WithField("station", name).Debug("core: duplicate station ignored")
		return Duplicate
	}
	n.stations[name] = Station{Name: name, Line: line, Zone: zone, Latitude: lat, Longitude: lon}
	n.order = append(n.order, name)
	if _, ok := n.adjacency[name]; !ok {
		n.adjacency[name] = []Neighbor{}
	}
	n.version++

	return Added
}

// RemoveStation deletes the station, its adjacency list, and every reference
// to it from other stations' lists. Reports whether the station existed.
// Complexity: O(V + E).
func (n *Network) RemoveStation(name string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, exists := n.stations[name]; !exists {
		return false
	}
	delete(n.stations, name)
	delete(n.adjacency, name)
	for i, id := range n.order {
		if id == name {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
	for id, list := range n.adjacency {
		n.adjacency[id] = without(list, name)
	}
	n.version++

	return true
}

// without returns list with every entry pointing at name removed.
// It filters in place; callers must own list.
func without(list []Neighbor, name string) []Neighbor {
	kept := list[:0]
	for _, nb := range list {
		if nb.Name != name {
			kept = append(kept, nb)
		}
	}

	return kept
}

// count returns how many entries of list point at name.
func count(list []Neighbor, name string) int {
	c := 0
	for _, nb := range list {
		if nb.Name == name {
			c++
		}
	}

	return c
}
