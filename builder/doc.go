// SPDX-License-Identifier: MIT

// Package builder generates synthetic metro networks for tests, benchmarks
// and demos.
//
// A network is assembled by BuildNetwork from an ordered list of
// Constructors, each of which adds stations and connections to the same
// core.Network:
//
//   - Line(name, n):      n stations in a row on one line.
//   - Ring(name, n):      n stations in a loop on one line (n ≥ 3).
//   - Grid(rows, cols):   a rows×cols mesh; each row is its own line.
//   - Transfer(a, b, d):  one connection between two existing stations.
//   - RandomLinks(p):     extra connections between existing stations,
//     each pair drawn with probability p (requires WithSeed or WithRand).
//
// Options tune names, zones and distances:
//
//   - WithSeed / WithRand:  reproducible randomness.
//   - WithDistanceFn:       per-connection distance (default 1 km).
//   - WithNameScheme:       station names from (line, index).
//   - WithZoneFn:           zone from a station's index along its line.
//
// Determinism: the same options, seed and constructor order always yield an
// identical network, station order included.
//
// Errors: constructors return sentinel errors wrapped with context; option
// constructors panic on meaningless input (nil functions, negative values).
package builder
