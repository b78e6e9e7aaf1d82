package loader

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/metro/core"
)

// Kind selects the CSV layout for LoadFile.
type Kind int

const (
	// Stations rows are Name,Line,Zone,Latitude,Longitude.
	Stations Kind = iota
	// Connections rows are StationA,StationB,Distance.
	Connections
)

func (k Kind) String() string {
	switch k {
	case Stations:
		return "stations"
	case Connections:
		return "connections"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Stats tallies one load.
type Stats struct {
	// Read counts data rows seen (comments and blank lines excluded).
	Read int

	Added     int
	Duplicate int
	Missing   int
	Rejected  int

	// Skipped counts rows that could not be parsed.
	Skipped int
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Read += o.Read
	s.Added += o.Added
	s.Duplicate += o.Duplicate
	s.Missing += o.Missing
	s.Rejected += o.Rejected
	s.Skipped += o.Skipped
}

func (s *Stats) record(o core.Outcome) {
	switch o {
	case core.Added:
		s.Added++
	case core.Duplicate:
		s.Duplicate++
	case core.Missing:
		s.Missing++
	case core.Rejected:
		s.Rejected++
	}
}

func (s Stats) fields() logrus.Fields {
	return logrus.Fields{
		"read":      s.Read,
		"added":     s.Added,
		"duplicate": s.Duplicate,
		"missing":   s.Missing,
		"rejected":  s.Rejected,
		"skipped":   s.Skipped,
	}
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger for per-row diagnostics and load summaries.
func WithLogger(l logrus.FieldLogger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.log = l
		}
	}
}

// Loader reads network files. The zero value is not usable; call New.
type Loader struct {
	log logrus.FieldLogger
}

// New returns a Loader logging to the standard logrus logger by default.
func New(opts ...Option) *Loader {
	ld := &Loader{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(ld)
	}

	return ld
}
