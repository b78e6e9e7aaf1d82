// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/metro/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that adds a rows×cols mesh. Row r is line
// "R<r>"; station (r, c) is named cfg.nameFn("R<r>", c) and sits at
// (r, c)·spacing. Horizontal connections are emitted row by row, then
// vertical ones column by column. Zones follow the column index.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewStations)
		}
		name := func(r, c int) string { return cfg.nameFn(rowLine(r), c) }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addStation(net, methodGrid, name(r, c), rowLine(r), cfg.zoneFn(c), float64(r)*spacing, float64(c)*spacing); err != nil {
					return err
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 1; c < cols; c++ {
				if err := addEdge(net, methodGrid, name(r, c-1), name(r, c), cfg.distance()); err != nil {
					return err
				}
			}
		}
		for c := 0; c < cols; c++ {
			for r := 1; r < rows; r++ {
				if err := addEdge(net, methodGrid, name(r-1, c), name(r, c), cfg.distance()); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

func rowLine(r int) string { return fmt.Sprintf("R%d", r) }
