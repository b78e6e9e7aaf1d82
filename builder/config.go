// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// builderConfig is resolved once per BuildNetwork call and passed by value.
type builderConfig struct {
	rng        *rand.Rand
	distanceFn WeightFn
	nameFn     func(line string, i int) string
	zoneFn     func(i int) int
}

// stationsPerZone is the default zone width along a line.
const stationsPerZone = 5

// DefaultName names the i-th station of a line "Line-i".
func DefaultName(line string, i int) string {
	return fmt.Sprintf("%s-%d", line, i)
}

// DefaultZone puts every five consecutive stations in one zone, starting at 1.
func DefaultZone(i int) int {
	return 1 + i/stationsPerZone
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		distanceFn: DefaultWeightFn,
		nameFn:     DefaultName,
		zoneFn:     DefaultZone,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (c builderConfig) distance() float64 {
	return c.distanceFn(c.rng)
}
