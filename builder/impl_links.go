// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/metro/core"
)

const (
	methodTransfer    = "Transfer"
	methodRandomLinks = "RandomLinks"
)

// Transfer returns a Constructor that connects two existing stations, for
// example the interchange between two generated lines. A negative distance
// means "draw from the configured distance function".
func Transfer(a, b string, distance float64) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		d := distance
		if d < 0 {
			d = cfg.distance()
		}

		return addEdge(net, methodTransfer, a, b, d)
	}
}

// RandomLinks returns a Constructor that visits every unordered pair of
// existing stations (in station order) and connects it with probability p.
// Requires an RNG (WithSeed or WithRand).
// Complexity: O(V²).
func RandomLinks(p float64) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", methodRandomLinks, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomLinks, ErrNeedRandSource)
		}
		stations := net.Stations()
		for i := 0; i < len(stations); i++ {
			for j := i + 1; j < len(stations); j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(net, methodRandomLinks, stations[i], stations[j], cfg.distance()); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
