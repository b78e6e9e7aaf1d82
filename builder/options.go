// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
)

// BuilderOption customizes the resolved builderConfig.
type BuilderOption func(*builderConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithDistanceFn overrides the per-connection distance. Panics on nil.
func WithDistanceFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithDistanceFn(nil)")
	}

	return func(c *builderConfig) {
		c.distanceFn = fn
	}
}

// WithNameScheme overrides station naming. Panics on nil.
func WithNameScheme(fn func(line string, i int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}

	return func(c *builderConfig) {
		c.nameFn = fn
	}
}

// WithZoneFn overrides zone assignment. Results below 1 are raised to 1.
// Panics on nil.
func WithZoneFn(fn func(i int) int) BuilderOption {
	if fn == nil {
		panic("builder: WithZoneFn(nil)")
	}

	return func(c *builderConfig) {
		c.zoneFn = func(i int) int {
			if z := fn(i); z > 0 {
				return z
			}

			return 1
		}
	}
}
