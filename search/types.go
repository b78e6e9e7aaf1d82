package search

import (
	"github.com/katalvlaran/metro/core"
)

// Source yields stations one at a time until fn returns false.
// *core.Network satisfies it.
type Source interface {
	Each(fn func(core.Station) bool)
}

// Engine runs lookups against a Source.
type Engine struct {
	src Source
}

// New returns an Engine bound to src. A nil src, including a nil
// *core.Network, behaves as an empty one.
func New(src Source) *Engine {
	return &Engine{src: src}
}

// Match is a station together with its distance from a query point.
type Match struct {
	Station  core.Station
	Distance float64
}
