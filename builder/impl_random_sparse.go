// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_random_sparse.go — Erdős–Rényi style RandomSparse(n, p) constructor.
//
// Contract:
//   • n ≥ 1, p ∈ [0,1], and WithSeed must be set.
//   • Ordered pairs (u,v), u ≠ v, are scanned in lexicographic order; each
//     edge is kept with probability p. Same seed ⇒ same graph.

package builder

const (
	methodRandomSparse = "RandomSparse"
	minRandomNodes     = 1
)

// RandomSparse returns a Constructor that keeps each ordered pair u→v with
// probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minRandomNodes {
			return builderErrorf(methodRandomSparse, "n=%d < min=%d: %w", n, minRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return builderErrorf(methodRandomSparse, "p=%g: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return builderErrorf(methodRandomSparse, "%w", ErrNeedRandSource)
		}
		addNodes(d, cfg, n)
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v || cfg.rng.Float64() >= p {
					continue
				}
				if err := d.Edge(cfg, cfg.idFn(u), cfg.idFn(v), cfg.weightFn(cfg.rng)); err != nil {
					return builderErrorf(methodRandomSparse, "edge %d→%d: %w", u, v, err)
				}
			}
		}

		return nil
	}
}
