// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_basic.go — Path, Cycle, Star and Complete constructors.
//
// Contract shared by all four:
//   • Nodes are added via cfg.idFn in ascending index order.
//   • Edges are emitted in a stable order, lower source index first.
//   • Every edge weight is drawn from cfg.weightFn(cfg.rng).

package builder

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
)

// addNodes registers n nodes so isolated indexes still appear in the graph.
func addNodes(d *Draft, cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		d.Node(cfg.idFn(i))
	}
}

// Path returns a Constructor for the chain 0→1→…→n-1.
func Path(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minPathNodes {
			return builderErrorf(methodPath, "n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		addNodes(d, cfg, n)
		for i := 0; i+1 < n; i++ {
			if err := d.Edge(cfg, cfg.idFn(i), cfg.idFn(i+1), cfg.weightFn(cfg.rng)); err != nil {
				return builderErrorf(methodPath, "edge %d→%d: %w", i, i+1, err)
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring 0→1→…→n-1→0.
func Cycle(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minCycleNodes {
			return builderErrorf(methodCycle, "n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		addNodes(d, cfg, n)
		for i := 0; i < n; i++ {
			if err := d.Edge(cfg, cfg.idFn(i), cfg.idFn((i+1)%n), cfg.weightFn(cfg.rng)); err != nil {
				return builderErrorf(methodCycle, "edge %d→%d: %w", i, (i+1)%n, err)
			}
		}

		return nil
	}
}

// Star returns a Constructor for a hub (index 0) with edges 0→i to n-1 leaves.
func Star(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minStarNodes {
			return builderErrorf(methodStar, "n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		addNodes(d, cfg, n)
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := d.Edge(cfg, hub, cfg.idFn(i), cfg.weightFn(cfg.rng)); err != nil {
				return builderErrorf(methodStar, "edge 0→%d: %w", i, err)
			}
		}

		return nil
	}
}

// Complete returns a Constructor for the complete digraph on n nodes: an
// edge u→v for every ordered pair u ≠ v.
func Complete(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minCompleteNodes {
			return builderErrorf(methodComplete, "n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}
		addNodes(d, cfg, n)
		plain := cfg
		plain.bidirectional = false // both directions are emitted anyway
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v {
					continue
				}
				if err := d.Edge(plain, cfg.idFn(u), cfg.idFn(v), cfg.weightFn(cfg.rng)); err != nil {
					return builderErrorf(methodComplete, "edge %d→%d: %w", u, v, err)
				}
			}
		}

		return nil
	}
}
