// Package core defines the immutable building blocks of a weighted digraph:
// Node, Edge and WeightedGraph.
//
// Overview:
//
//   - Node[T] wraps a caller-chosen label of any comparable type T. Nodes are
//     identified by pointer, so two nodes may share a label.
//   - Edge[T] is a directed, weighted connection Source → Destination. The
//     weight is a non-negative float64 and is validated at construction.
//   - WeightedGraph[T] owns the node and edge lists and precomputes an
//     adjacency index, so OutgoingEdges(u) is an O(1) lookup.
//
// Nothing in this package is mutable after construction. Traversal state such
// as tentative distances or predecessors belongs to the algorithm that walks
// the graph (see package dijkstra), never to the nodes themselves. A single
// *WeightedGraph may therefore be shared freely between goroutines.
//
// Errors:
//
//	ErrInvalidArgument - umbrella sentinel matched by every argument error.
//	ErrNilEndpoint     - NewEdge got a nil source or destination.
//	ErrNegativeWeight  - NewEdge got a weight below zero.
//	ErrInvalidWeight   - NewEdge got NaN.
//	ErrNilNode         - nil node passed where a node is required.
//	ErrNilEdge         - nil edge in the edge list.
//	ErrDuplicateNode   - the same *Node listed twice.
//	ErrUnknownNode     - an edge endpoint that is not part of the node list.
//
// Example:
//
//	a, b := core.NewNode("A"), core.NewNode("B")
//	ab, err := core.NewEdge(a, b, 2.5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g, err := core.NewWeightedGraph([]*core.Node[string]{a, b}, []*core.Edge[string]{ab})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(g.OutgoingEdges(a))) // 1
package core
