package search

import (
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/metro/core"
)

// ByName returns stations whose name contains query, ignoring case.
// An empty query matches every station.
func (e *Engine) ByName(query string) []string {
	q := strings.ToLower(query)

	return e.collect(func(s core.Station) bool {
		return strings.Contains(strings.ToLower(s.Name), q)
	})
}

// ByLine returns stations whose line equals line, ignoring case.
func (e *Engine) ByLine(line string) []string {
	return e.collect(func(s core.Station) bool {
		return strings.EqualFold(s.Line, line)
	})
}

// ByZone returns stations in zone.
func (e *Engine) ByZone(zone int) []string {
	return e.collect(func(s core.Station) bool {
		return s.Zone == zone
	})
}

// Autocomplete returns stations whose name starts with prefix, ignoring case.
func (e *Engine) Autocomplete(prefix string) []string {
	p := strings.ToLower(prefix)

	return e.collect(func(s core.Station) bool {
		return strings.HasPrefix(strings.ToLower(s.Name), p)
	})
}

// Nearest returns the name of the station closest to (lat, lon), or "" when
// there are no stations.
func (e *Engine) Nearest(lat, lon float64) string {
	m, ok := e.NearestMatch(lat, lon)
	if !ok {
		return ""
	}

	return m.Station.Name
}

// NearestMatch is Nearest with the full station and its distance. It
// reports false only when there are no stations; with non-finite
// coordinates the distance may be NaN or +Inf.
// The flat-plane distance is fine for a single city's network.
func (e *Engine) NearestMatch(lat, lon float64) (Match, bool) {
	var best Match
	found := false
	e.each(func(s core.Station) bool {
		d := math.Hypot(s.Latitude-lat, s.Longitude-lon)
		// strict: first seen wins ties; a NaN distance loses to any number
		if !found || d < best.Distance || (math.IsNaN(best.Distance) && !math.IsNaN(d)) {
			best = Match{Station: s, Distance: d}
			found = true
		}

		return true
	})

	return best, found
}

// Within returns every station no farther than radius from (lat, lon),
// closest first; equal distances are ordered by name.
func (e *Engine) Within(lat, lon, radius float64) []Match {
	out := []Match{}
	e.each(func(s core.Station) bool {
		if d := math.Hypot(s.Latitude-lat, s.Longitude-lon); d <= radius {
			out = append(out, Match{Station: s, Distance: d})
		}

		return true
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}

		return out[i].Station.Name < out[j].Station.Name
	})

	return out
}

// collect returns the sorted names of stations accepted by keep.
func (e *Engine) collect(keep func(core.Station) bool) []string {
	out := []string{}
	e.each(func(s core.Station) bool {
		if keep(s) {
			out = append(out, s.Name)
		}

		return true
	})
	sort.Strings(out)

	return out
}

func (e *Engine) each(fn func(core.Station) bool) {
	if e == nil || e.src == nil {
		return
	}
	e.src.Each(fn)
}
