// Package lvpath computes single-source shortest paths over weighted
// directed graphs with non-negative edge weights.
//
// 🚀 What is lvpath?
//
//	A small, generic library built around Dijkstra's algorithm:
//		• core/      – immutable Node, Edge and WeightedGraph types
//		• dijkstra/  – the reusable Engine: single-target and all-targets runs
//		• builder/   – deterministic graph generators (path, cycle, grid, …)
//		• graphfile/ – YAML and CSV graph documents with validation
//		• metrics/   – Prometheus collectors fed by engine runs
//		• cmd/lvpath – command-line front end
//
// ✨ Guarantees
//
//   - Nodes and graphs are read-only after construction; one graph can be
//     shared by many engines.
//   - Per-run state lives inside the Engine and is rebuilt on every run.
//   - Invalid input is reported as an error matching core.ErrInvalidArgument.
//
// Quick ASCII example:
//
//	    A──2──▶B
//	    │      │
//	    4      1
//	    ▼      ▼
//	    C──1──▶D
//
// The shortest path A → D is A B D with distance 3.
//
//	go install github.com/katalvlaran/lvpath/cmd/lvpath@latest
package lvpath
