package loader

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/metro/core"
)

// WriteStations writes n's stations as CSV in the format Stations reads,
// preceded by a '#' header comment.
func WriteStations(w io.Writer, n *core.Network) error {
	if _, err := io.WriteString(w, "# Name,Line,Zone,Latitude,Longitude\n"); err != nil {
		return errors.Wrap(err, "writing stations")
	}
	cw := csv.NewWriter(w)
	var err error
	n.Each(func(s core.Station) bool {
		err = cw.Write([]string{
			s.Name, s.Line, strconv.Itoa(s.Zone),
			strconv.FormatFloat(s.Latitude, 'f', -1, 64),
			strconv.FormatFloat(s.Longitude, 'f', -1, 64),
		})

		return err == nil
	})
	if err != nil {
		return errors.Wrap(err, "writing stations")
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "writing stations")
}

// WriteConnections writes every connection of n once, as CSV in the format
// Connections reads. Connections are listed from the endpoint added first;
// parallel connections are all written.
func WriteConnections(w io.Writer, n *core.Network) error {
	if _, err := io.WriteString(w, "# StationA,StationB,Distance\n"); err != nil {
		return errors.Wrap(err, "writing connections")
	}
	stations := n.Stations()
	index := make(map[string]int, len(stations))
	for i, s := range stations {
		index[s] = i
	}

	cw := csv.NewWriter(w)
	for i, a := range stations {
		list, _ := n.Neighbors(a)
		selfLoops := 0
		for _, nb := range list {
			j, ok := index[nb.Name]
			switch {
			case !ok || j < i:
				continue
			case j == i:
				// a self-loop appears twice in its own list
				selfLoops++
				if selfLoops%2 == 0 {
					continue
				}
			}
			if err := cw.Write([]string{a, nb.Name, strconv.FormatFloat(nb.Distance, 'f', -1, 64)}); err != nil {
				return errors.Wrap(err, "writing connections")
			}
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "writing connections")
}
