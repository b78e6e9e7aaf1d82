package render

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/dijkstra"
	"github.com/katalvlaran/metro/fare"
	"github.com/katalvlaran/metro/prim_kruskal"
)

// Route writes a shortest-path result. b, if non-nil, adds a fare breakdown.
func (p *Printer) Route(res dijkstra.PathResult, b *fare.Breakdown) error {
	if !res.Found() {
		return p.Warning("No route found")
	}
	p.title("Route")
	p.printf("  %s\n", p.accent(joinOrNone(res.Path, " -> ")))
	p.printf("  Stops:     %d\n", len(res.Path)-1)
	p.printf("  Distance:  %.2f km\n", res.Distance)
	p.printf("  Lines:     %s\n", joinOrNone(res.Lines, ", "))
	p.printf("  Transfers: %d\n", res.Transfers)
	p.printf("  Max zone:  %d\n", res.MaxZone)
	p.printf("  Fare:      %d\n", res.Fare)
	if b != nil {
		return p.FareBreakdown(*b, fare.Category(b.Total))
	}

	return p.err
}

// FareBreakdown writes the components of one fare.
func (p *Printer) FareBreakdown(b fare.Breakdown, category string) error {
	p.title("Fare")
	p.table([][]string{
		{"item", "amount"},
		{"base", fmt.Sprintf("%.2f", b.Base)},
		{"distance", fmt.Sprintf("%.2f", b.Distance)},
		{"zone", fmt.Sprintf("%.2f", b.Zone)},
		{"total", strconv.Itoa(b.Total)},
	})
	p.printf("  Category: %s\n", category)

	return p.err
}

// StationTable writes one row per name. Names lookup cannot resolve are
// listed with empty attributes.
func (p *Printer) StationTable(names []string, lookup func(string) (core.Station, bool)) error {
	if len(names) == 0 {
		return p.Message("%s", p.muted("No stations"))
	}
	rows := [][]string{{"name", "line", "zone", "lat", "lon"}}
	for _, name := range names {
		s, ok := lookup(name)
		if !ok {
			rows = append(rows, []string{name, "", "", "", ""})
			continue
		}
		rows = append(rows, []string{
			s.Name, s.Line, strconv.Itoa(s.Zone),
			strconv.FormatFloat(s.Latitude, 'f', 4, 64),
			strconv.FormatFloat(s.Longitude, 'f', 4, 64),
		})
	}
	p.table(rows)

	return p.err
}

// Order writes a numbered traversal order.
func (p *Printer) Order(title string, names []string) error {
	p.title(title)
	if len(names) == 0 {
		p.printf("  %s\n", p.muted("(empty)"))
	}
	for i, name := range names {
		p.printf("  %d. %s\n", i+1, name)
	}

	return p.err
}

// Paths writes one path per line.
func (p *Printer) Paths(paths [][]string) error {
	p.title(fmt.Sprintf("Paths (%d)", len(paths)))
	for i, path := range paths {
		p.printf("  %d. %s\n", i+1, joinOrNone(path, " -> "))
	}

	return p.err
}

// Components writes each connected component on its own line.
func (p *Printer) Components(comps [][]string) error {
	p.title(fmt.Sprintf("Components (%d)", len(comps)))
	for i, c := range comps {
		p.printf("  %d. [%d] %s\n", i+1, len(c), joinOrNone(c, ", "))
	}

	return p.err
}

// Tree writes a spanning tree and flags a partial one.
func (p *Printer) Tree(t *prim_kruskal.Tree) error {
	p.title("Minimum spanning tree")
	rows := [][]string{{"from", "to", "distance"}}
	for _, e := range t.Edges {
		rows = append(rows, []string{e.From, e.To, strconv.FormatFloat(e.Weight, 'f', 2, 64)})
	}
	p.table(rows)
	p.printf("  Total: %.2f km over %d connections\n", t.Total, len(t.Edges))
	if err := t.Err(); err != nil {
		return p.Warning("  Partial: %v", err)
	}

	return p.err
}

// Cycle writes the cycle check verdict.
func (p *Printer) Cycle(has bool) error {
	if has {
		return p.Message("The network contains at least one cycle")
	}

	return p.Message("The network is acyclic")
}

// Lines writes the line labels with their station counts.
func (p *Printer) Lines(lines []string, count func(string) int) error {
	if len(lines) == 0 {
		return p.Message("%s", p.muted("No lines"))
	}
	rows := [][]string{{"line", "stations"}}
	for _, l := range lines {
		rows = append(rows, []string{l, strconv.Itoa(count(l))})
	}
	p.table(rows)

	return p.err
}

// NetworkStats summarises the size of a network.
type NetworkStats struct {
	Stations    int
	Connections int
	Lines       int
	Components  int
	HasCycle    bool
}

// Stats writes a NetworkStats block.
func (p *Printer) Stats(s NetworkStats) error {
	p.title("Network statistics")
	p.table([][]string{
		{"metric", "value"},
		{"stations", strconv.Itoa(s.Stations)},
		{"connections", strconv.Itoa(s.Connections)},
		{"lines", strconv.Itoa(s.Lines)},
		{"components", strconv.Itoa(s.Components)},
		{"cycles", strconv.FormatBool(s.HasCycle)},
	})

	return p.err
}
