// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/metro/core"
)

const (
	methodLine   = "Line"
	methodRing   = "Ring"
	minLineNodes = 2
	minRingNodes = 3

	// spacing is the coordinate step between neighbouring generated stations.
	spacing = 0.01
)

// Line returns a Constructor that adds n stations on line name, laid out
// west to east, and connects each to the next.
// Complexity: O(n).
func Line(name string, n int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if n < minLineNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLine, n, minLineNodes, ErrTooFewStations)
		}
		for i := 0; i < n; i++ {
			if err := addStation(net, methodLine, cfg.nameFn(name, i), name, cfg.zoneFn(i), 0, float64(i)*spacing); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := addEdge(net, methodLine, cfg.nameFn(name, i-1), cfg.nameFn(name, i), cfg.distance()); err != nil {
				return err
			}
		}

		return nil
	}
}

// Ring returns a Constructor that adds n stations on line name around a
// circle and closes the loop.
// Complexity: O(n).
func Ring(name string, n int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewStations)
		}
		radius := float64(n) * spacing / (2 * math.Pi)
		for i := 0; i < n; i++ {
			angle := 2 * math.Pi * float64(i) / float64(n)
			lat, lon := radius*math.Sin(angle), radius*math.Cos(angle)
			if err := addStation(net, methodRing, cfg.nameFn(name, i), name, cfg.zoneFn(i), lat, lon); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			if err := addEdge(net, methodRing, cfg.nameFn(name, i), cfg.nameFn(name, (i+1)%n), cfg.distance()); err != nil {
				return err
			}
		}

		return nil
	}
}
