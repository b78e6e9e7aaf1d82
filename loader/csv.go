package loader

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/metro/core"
)

// Stations reads Name,Line,Zone,Latitude,Longitude rows into n.
func (ld *Loader) Stations(r io.Reader, n *core.Network) (Stats, error) {
	return ld.readCSV(r, Stations, func(rec []string) (core.Outcome, error) {
		if len(rec) < 5 {
			return 0, errors.Errorf("want 5 fields, got %d", len(rec))
		}
		zone, err := strconv.Atoi(rec[2])
		if err != nil {
			return 0, errors.Wrap(err, "zone")
		}
		lat, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return 0, errors.Wrap(err, "latitude")
		}
		lon, err := strconv.ParseFloat(rec[4], 64)
		if err != nil {
			return 0, errors.Wrap(err, "longitude")
		}

		return n.AddStation(rec[0], rec[1], zone, lat, lon), nil
	})
}

// Connections reads StationA,StationB,Distance rows into n.
func (ld *Loader) Connections(r io.Reader, n *core.Network) (Stats, error) {
	return ld.readCSV(r, Connections, func(rec []string) (core.Outcome, error) {
		if len(rec) < 3 {
			return 0, errors.Errorf("want 3 fields, got %d", len(rec))
		}
		d, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return 0, errors.Wrap(err, "distance")
		}

		return n.AddEdge(rec[0], rec[1], d), nil
	})
}

// readCSV drives apply over every data row of r.
func (ld *Loader) readCSV(r io.Reader, kind Kind, apply func([]string) (core.Outcome, error)) (Stats, error) {
	var st Stats
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	log := ld.log.WithField("kind", kind.String())
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			st.Read++
			st.Skipped++
			log.WithError(err).WithField("line", perr.Line).Warn("skipping malformed row")
			continue
		}
		if err != nil {
			return st, errors.Wrapf(err, "reading %s", kind)
		}

		st.Read++
		line, _ := cr.FieldPos(0)
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		outcome, err := apply(rec)
		if err != nil {
			st.Skipped++
			log.WithError(err).WithField("line", line).Warn("skipping row")
			continue
		}
		st.record(outcome)
		if !outcome.OK() {
			log.WithFields(logrus.Fields{"line": line, "outcome": outcome.String()}).Debug("row not applied")
		}
	}
	log.WithFields(st.fields()).Infof("Loaded %d %s", st.Added, kind)

	return st, nil
}
