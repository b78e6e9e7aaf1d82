// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Station, Neighbor, Outcome, Network declarations, sentinel errors and
//       the NewNetwork constructor.

package core

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for core network operations.
var (
	// ErrStationNotFound indicates an operation referenced a non-existent station.
	ErrStationNotFound = errors.New("core: station not found")

	// ErrAsymmetricEdge indicates that only one direction of an undirected edge
	// is present. The Network never produces this state itself; seeing it means
	// the adjacency was corrupted and nothing was mutated.
	ErrAsymmetricEdge = errors.New("core: asymmetric adjacency")
)

// Station is an immutable description of one stop.
type Station struct {
	// Name is the unique key of the station inside its Network.
	Name string

	// Line is the label of the service route the station is assigned to.
	Line string

	// Zone is the fare band (>= 1).
	Zone int

	// Latitude and Longitude are used for nearest-station lookups only.
	Latitude  float64
	Longitude float64
}

// Neighbor is one entry of a station's adjacency list.
type Neighbor struct {
	Name     string
	Distance float64
}

// Outcome reports what a lenient mutation actually did.
type Outcome int

const (
	// Added means the station or edge was stored.
	Added Outcome = iota

	// Duplicate means a station with that name already existed; nothing changed.
	Duplicate

	// Missing means an edge referenced an unknown station and was dropped.
	Missing

	// Rejected means the input was invalid (empty name, zone < 1,
	// negative or NaN distance) and was dropped.
	Rejected
)

// OK reports whether the mutation was applied.
func (o Outcome) OK() bool { return o == Added }

// String returns the lower-case outcome name.
func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case Duplicate:
		return "duplicate"
	case Missing:
		return "missing"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Option configures a Network before first use.
type Option func(n *Network)

// WithLogger sets the logger used to report dropped input.
// A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(n *Network) {
		if l != nil {
			n.log = l
		}
	}
}

// Network is the station store plus the undirected adjacency relation.
//
// mu guards every field below it. order keeps station names in insertion
// order; version is bumped on every applied mutation.
type Network struct {
	mu  sync.RWMutex
	log logrus.FieldLogger

	stations  map[string]Station
	order     []string
	adjacency map[string][]Neighbor
	version   uint64
}

// NewNetwork creates an empty Network.
// Complexity: O(1)
func NewNetwork(opts ...Option) *Network {
	n := &Network{
		log:       logrus.StandardLogger(),
		stations:  make(map[string]Station),
		adjacency: make(map[string][]Neighbor),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}
