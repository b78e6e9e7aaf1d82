package cli

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// route prints the shortest route between two known stations.
func (a *app) route(from, to string) error {
	if err := a.requireStations(from, to); err != nil {
		return err
	}
	res := a.routes.Route(from, to)
	if !res.Found() {
		return a.out.Route(res, nil)
	}
	b := a.tariff.Breakdown(res.Distance, res.MaxZone)

	return a.out.Route(res, &b)
}

// routeBatch answers every FROM,TO row of path through the shared planner,
// so repeated pairs come from its cache. Unknown stations are reported per
// row and do not stop the run.
func (a *app) routeBatch(path string, stdin io.Reader) error {
	queries, err := readQueries(path, stdin)
	if err != nil {
		return err
	}
	for _, q := range queries {
		if err := a.report(a.route(q[0], q[1])); err != nil {
			return err
		}
	}
	s := a.routes.Stats()
	a.log.WithField("queries", len(queries)).
		WithField("hits", s.Hits).
		WithField("misses", s.Misses).
		Debug("batch done")

	return nil
}

// readQueries reads FROM,TO pairs. '#' starts a comment line.
func readQueries(path string, stdin io.Reader) ([][2]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "opening batch file")
		}
		defer f.Close()
		r = f
	}

	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out [][2]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}
		if len(rec) != 2 {
			line, _ := cr.FieldPos(0)

			return nil, errors.Errorf("%s line %d: want FROM,TO, got %d fields", path, line, len(rec))
		}
		out = append(out, [2]string{strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1])})
	}
}
