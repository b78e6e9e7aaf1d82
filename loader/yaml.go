package loader

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metro/core"
)

// networkFile is the YAML document layout.
type networkFile struct {
	Stations    []stationRecord    `yaml:"stations"`
	Connections []connectionRecord `yaml:"connections"`
}

type stationRecord struct {
	Name string  `yaml:"name"`
	Line string  `yaml:"line"`
	Zone int     `yaml:"zone"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
}

type connectionRecord struct {
	From     string  `yaml:"from"`
	To       string  `yaml:"to"`
	Distance float64 `yaml:"distance"`
}

// Network reads a YAML document with both stations and connections.
// Stations are applied first, so connections may reference any of them.
func (ld *Loader) Network(r io.Reader, n *core.Network) (Stats, error) {
	var doc networkFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return Stats{}, errors.Wrap(err, "decoding network yaml")
	}

	var st Stats
	for _, s := range doc.Stations {
		st.Read++
		st.record(n.AddStation(s.Name, s.Line, s.Zone, s.Lat, s.Lon))
	}
	stations := st.Added
	for _, c := range doc.Connections {
		st.Read++
		st.record(n.AddEdge(c.From, c.To, c.Distance))
	}
	ld.log.WithField("kind", "network").WithFields(st.fields()).Infof("Loaded %d stations and %d connections", stations, st.Added-stations)

	return st, nil
}
