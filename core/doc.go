// Package core provides the in-memory transit Network: a weighted,
// undirected multigraph of named Stations with a symmetric adjacency relation.
//
// The Network G = (S, A) holds:
//
//   - stations: name → Station (name is the unique key; first write wins)
//   - adjacency: name → ordered []Neighbor{Name, Distance}
//
// Invariants:
//
//   - Symmetry: an edge (a, b, d) is stored as a→(b, d) and b→(a, d).
//     AddEdge and RemoveEdge update both directions under one write lock.
//   - Coverage: every station has an adjacency entry (possibly empty) and no
//     adjacency entry exists for an unknown station.
//   - Parallel edges are kept (no dedup); algorithms take the lightest one
//     naturally through relaxation order.
//
// Lenient policy:
//
// Bulk loading never fails. Instead of errors, mutations report an Outcome:
//
//	AddStation(name, line, zone, lat, lon) Outcome // Added | Duplicate | Rejected
//	AddEdge(a, b, distance) Outcome                // Added | Missing | Rejected
//	RemoveStation(name) bool                       // existed?
//	RemoveEdge(a, b) (bool, error)                 // both sides or neither
//
// Dropped input is logged at Debug level through the logrus.FieldLogger
// supplied with WithLogger.
//
// Determinism:
//
// Stations() and Each() iterate in insertion order, Neighbors() in edge
// insertion order, so every algorithm built on top of the Network yields
// stable output across runs and platforms.
//
// Concurrency:
//
// One sync.RWMutex guards stations and adjacency. Mutations take the write
// lock; queries take the read lock and return copies.
package core
