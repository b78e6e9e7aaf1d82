// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/metro/core"
)

// Constructor applies a deterministic mutation to n using the resolved
// builderConfig. Constructors validate parameters first and return wrapped
// sentinel errors; they never panic.
type Constructor func(n *core.Network, cfg builderConfig) error

// BuildNetwork creates a core.Network with nopts, resolves the builder
// configuration from bopts and applies every constructor in order. The first
// constructor error is returned wrapped as "BuildNetwork: %w".
func BuildNetwork(nopts []core.Option, bopts []BuilderOption, cons ...Constructor) (*core.Network, error) {
	n := core.NewNetwork(nopts...)
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(n, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return n, nil
}

// Apply runs constructors against an existing network.
func Apply(n *core.Network, bopts []BuilderOption, cons ...Constructor) error {
	if n == nil {
		return fmt.Errorf("Apply: nil network: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(n, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// addStation adds one station and turns any outcome but Added into an error.
func addStation(n *core.Network, method, name, line string, zone int, lat, lon float64) error {
	if o := n.AddStation(name, line, zone, lat, lon); !o.OK() {
		return fmt.Errorf("%s: AddStation(%s): %s: %w", method, name, o, ErrConstructFailed)
	}

	return nil
}

// addEdge adds one connection and turns any outcome but Added into an error.
func addEdge(n *core.Network, method, a, b string, d float64) error {
	if o := n.AddEdge(a, b, d); !o.OK() {
		return fmt.Errorf("%s: AddEdge(%s, %s): %s: %w", method, a, b, o, ErrConstructFailed)
	}

	return nil
}
