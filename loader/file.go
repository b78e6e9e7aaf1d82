package loader

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/metro/core"
)

// LoadFile opens path and loads it into n. Files ending in .yaml or .yml are
// read as a whole network and kind is ignored; anything else is read as CSV
// of the given kind.
func (ld *Loader) LoadFile(path string, kind Kind, n *core.Network) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	sub := &Loader{log: ld.log.WithField("file", path)}
	var st Stats
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		st, err = sub.Network(f, n)
	case ".csv", ".txt", "":
		if kind == Connections {
			st, err = sub.Connections(f, n)
		} else {
			st, err = sub.Stations(f, n)
		}
	default:
		return Stats{}, errors.Errorf("unsupported file type %q", filepath.Ext(path))
	}

	return st, errors.Wrapf(err, "loading %s", path)
}

// Files describes a set of inputs. Network, if set, is loaded first.
type Files struct {
	Network     string
	Stations    string
	Connections string
}

// LoadFiles loads every non-empty path of f into n and returns the combined
// Stats.
func (ld *Loader) LoadFiles(f Files, n *core.Network) (Stats, error) {
	var total Stats
	steps := []struct {
		path string
		kind Kind
	}{
		{f.Network, Stations},
		{f.Stations, Stations},
		{f.Connections, Connections},
	}
	for _, s := range steps {
		if s.path == "" {
			continue
		}
		st, err := ld.LoadFile(s.path, s.kind, n)
		total.Add(st)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}
