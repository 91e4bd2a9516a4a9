package dijkstra

import "github.com/katalvlaran/lvpath/core"

// The primitives below are the individual steps of the relaxation loop,
// exported so that each effect can be driven and observed on its own after
// Reset (or after a run).

// MarkNodeAsVisited moves node from the unvisited to the visited set.
// Marking an already visited node is a no-op.
func (e *Engine[T]) MarkNodeAsVisited(node *core.Node[T]) error {
	if node == nil {
		return ErrNilNode
	}
	i, ok := e.indexOf(node)
	if !ok {
		return ErrUnknownNode
	}
	e.settle(i)

	return nil
}

// SetPreviousNode records source as the predecessor of edge's destination.
// Distances are left untouched.
func (e *Engine[T]) SetPreviousNode(source *core.Node[T], edge *core.Edge[T]) error {
	if source == nil {
		return ErrNilNode
	}
	if edge == nil {
		return ErrNilEdge
	}
	from, ok := e.indexOf(source)
	if !ok {
		return ErrUnknownNode
	}
	to, ok := e.indexOf(edge.Destination())
	if !ok {
		return ErrUnknownNode
	}
	e.prev[to] = from

	return nil
}

// IsDestinationNodeUnvisited reports whether edge leads to a node of the
// loaded graph that has not been settled yet. It is false for a nil edge or
// a destination outside the graph.
func (e *Engine[T]) IsDestinationNodeUnvisited(edge *core.Edge[T]) bool {
	if edge == nil {
		return false
	}
	i, ok := e.indexOf(edge.Destination())

	return ok && !e.visited.Contains(i)
}

// SelectMinimumUnvisited returns the unvisited node with the smallest
// distance, provided that distance is below Unreached. Ties go to the node
// listed first in the graph. It reports false when every unvisited node is
// unreached or nothing is left unvisited. The node is not marked visited.
func (e *Engine[T]) SelectMinimumUnvisited() (*core.Node[T], bool) {
	i, ok := e.selectMinimum()
	if !ok {
		return nil, false
	}

	return e.graph.Node(i), true
}

// indexOf resolves node against the loaded graph.
func (e *Engine[T]) indexOf(node *core.Node[T]) (int, bool) {
	if e.graph == nil {
		return noPrev, false
	}

	return e.graph.IndexOf(node)
}
