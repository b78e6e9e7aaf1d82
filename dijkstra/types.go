package dijkstra

// NoPath is the Distance of a PathResult when no route exists.
const NoPath = -1.0

// FareFunc prices a resolved path from its total distance (km) and the
// highest zone it touches.
type FareFunc func(distance float64, maxZone int) int

// EstimateFare is the built-in estimate: 10 + 3·maxZone + ⌊1.5·distance⌋.
func EstimateFare(distance float64, maxZone int) int {
	return 10 + maxZone*3 + int(distance*1.5)
}

// PathResult is the outcome of one route query. It is never persisted.
type PathResult struct {
	// Path lists station names from source to destination, inclusive.
	Path []string

	// Lines are the distinct line labels touched by Path, sorted ascending.
	Lines []string

	// Distance is the summed edge distance, or NoPath.
	Distance float64

	// Fare is the FareFunc output for Distance and MaxZone.
	Fare int

	// Transfers counts positions where consecutive stations change line.
	Transfers int

	// MaxZone is the highest zone along Path.
	MaxZone int
}

// Found reports whether the result describes an actual route.
func (r PathResult) Found() bool { return r.Distance >= 0 }

// noPath returns the sentinel result.
func noPath() PathResult {
	return PathResult{Path: []string{}, Lines: []string{}, Distance: NoPath}
}

// Options configures ShortestPath.
type Options struct {
	// Fare prices the resolved path. Defaults to EstimateFare.
	Fare FareFunc
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithFare replaces the fare function. A nil fn is ignored.
func WithFare(fn FareFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Fare = fn
		}
	}
}

// DefaultOptions returns Options with EstimateFare.
func DefaultOptions() Options {
	return Options{Fare: EstimateFare}
}
