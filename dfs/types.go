package dfs

// PathsOption configures AllPaths.
type PathsOption func(*PathsOptions)

// PathsOptions holds AllPaths parameters.
type PathsOptions struct {
	// MaxPaths stops the search once this many paths are collected.
	// Values <= 0 mean unbounded.
	MaxPaths int

	// MaxStops, if > 0, prunes paths longer than this many edges.
	MaxStops int
}

// DefaultPathsOptions returns unbounded options.
func DefaultPathsOptions() PathsOptions {
	return PathsOptions{}
}

// WithMaxPaths caps the number of returned paths.
func WithMaxPaths(k int) PathsOption {
	return func(o *PathsOptions) { o.MaxPaths = k }
}

// WithMaxStops prunes paths with more than k edges.
func WithMaxStops(k int) PathsOption {
	return func(o *PathsOptions) { o.MaxStops = k }
}

// frame is one level of an explicit depth-first stack: the station, the
// station we arrived from, its neighbour snapshot and the next index to try.
// parentSkipped records that the connection back to parent was consumed.
type frame struct {
	name          string
	parent        string
	hasParent     bool
	parentSkipped bool
	neighbors     []string
	next          int
}
