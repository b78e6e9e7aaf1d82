// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
)

// ErrTooFewStations indicates a size parameter below the constructor's minimum.
var ErrTooFewStations = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the network refused a station or connection
// the constructor needed (duplicate name, unknown endpoint, bad distance).
var ErrConstructFailed = errors.New("builder: construction failed")
