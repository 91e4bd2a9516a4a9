// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_grid.go — Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows*cols ≥ 2 (else ErrTooFewVertices).
//   • Cell (r,c) has index r*cols+c and label cfg.idFn(index).
//   • Row-major emission: for each cell, the edge to its right neighbour,
//     then the edge to the neighbour below.

package builder

const methodGrid = "Grid"

// Grid returns a Constructor for a rows×cols lattice with edges pointing
// right and down (both ways with WithBidirectional).
func Grid(rows, cols int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if rows < 1 || cols < 1 || rows*cols < 2 {
			return builderErrorf(methodGrid, "rows=%d cols=%d: %w", rows, cols, ErrTooFewVertices)
		}
		addNodes(d, cfg, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := d.Edge(cfg, cfg.idFn(u), cfg.idFn(u+1), cfg.weightFn(cfg.rng)); err != nil {
						return builderErrorf(methodGrid, "edge %d→%d: %w", u, u+1, err)
					}
				}
				if r+1 < rows {
					if err := d.Edge(cfg, cfg.idFn(u), cfg.idFn(u+cols), cfg.weightFn(cfg.rng)); err != nil {
						return builderErrorf(methodGrid, "edge %d→%d: %w", u, u+cols, err)
					}
				}
			}
		}

		return nil
	}
}
