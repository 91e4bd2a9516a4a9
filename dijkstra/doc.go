// Package dijkstra provides a single-source shortest-path engine (Dijkstra's
// algorithm) over core.WeightedGraph values with non-negative edge weights.
//
// Overview:
//
//   - Engine[T] owns the visited/unvisited partition and the per-run side
//     tables (distance and predecessor per node index). Nodes and graphs are
//     never mutated, so one graph can back many engines.
//   - FindShortestPath(g, start, end) stops as soon as end is settled.
//   - FindAllShortestPaths(g, start) runs until nothing reachable is left.
//   - Distance, Path, Reachable, VisitedNodes and UnvisitedNodes answer
//     questions about the last run.
//   - MarkNodeAsVisited, SetPreviousNode, IsDestinationNodeUnvisited and
//     SelectMinimumUnvisited expose the individual loop steps; Reset prepares
//     a run without executing it so they can be driven by hand.
//
// The loop:
//
//  1. unvisited = all nodes, visited = ∅, distance[start] = 0.
//  2. u = unvisited node with the smallest distance below Unreached;
//     stop if there is none.
//  3. move u to visited; in single-target mode stop if u == end.
//  4. for every edge u→v with v unvisited: if distance[u]+w < distance[v],
//     set distance[v] and record u as v's predecessor.
//
// Unreachable nodes keep the distance Unreached (math.MaxFloat64) and the
// single-element path [node]. Self-loops never change a distance because
// their destination is already settled when they are examined.
//
// Tie-breaking:
//
//	When several unvisited nodes share the minimum distance, the one listed
//	first in the graph's node list is selected. This only affects which of
//	several equally short paths Path returns.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) with an indexed min-heap keyed by
//     (distance, node index): decrease-key in place, no duplicate entries,
//     and ties resolved by the key itself.
//   - Space: O(V) for distances, predecessors, visited set and heap.
//
// Error handling (all match core.ErrInvalidArgument, returned before any
// state change):
//
//   - ErrNilGraph:    a nil graph was passed.
//   - ErrNilNode:     a nil start, end or query node was passed.
//   - ErrNilEdge:     a nil edge was passed to SetPreviousNode.
//   - ErrUnknownNode: a node outside the loaded graph was passed.
//
// Observability:
//
//	WithLogger emits Debug records at run start and finish. WithOnSettle,
//	WithOnRelax and WithOnFinish hooks expose the loop to callers; package
//	metrics builds Prometheus collectors on top of WithOnFinish.
//
// Thread safety:
//
//	An Engine is not safe for concurrent use. Run independent engines for
//	concurrent queries; they may share the same *core.WeightedGraph.
package dijkstra
