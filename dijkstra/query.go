package dijkstra

import "github.com/katalvlaran/lvpath/core"

// Distance returns the shortest known distance to node from the start of
// the last run, or Unreached if node was not reached (including nodes of
// another graph and calls made before any run).
func (e *Engine[T]) Distance(node *core.Node[T]) (float64, error) {
	if node == nil {
		return 0, ErrNilNode
	}
	i, ok := e.indexOf(node)
	if !ok {
		return Unreached, nil
	}

	return e.dist[i], nil
}

// Reachable reports whether the last run found a path to node.
func (e *Engine[T]) Reachable(node *core.Node[T]) bool {
	d, err := e.Distance(node)

	return err == nil && d < Unreached
}

// Path returns the nodes on the recorded shortest path ending at node, in
// start-to-node order and inclusive of both ends. It follows predecessors
// backwards from node until a node without predecessor, so an unreached node
// yields the single-element path [node].
func (e *Engine[T]) Path(node *core.Node[T]) ([]*core.Node[T], error) {
	if node == nil {
		return nil, ErrNilNode
	}
	cur, ok := e.indexOf(node)
	if !ok {
		return []*core.Node[T]{node}, nil
	}

	// Walk back at most |V| hops; SetPreviousNode can create cycles.
	path := []*core.Node[T]{node}
	for hops := 0; e.prev[cur] != noPrev && hops < len(e.prev); hops++ {
		cur = e.prev[cur]
		path = append(path, e.graph.Node(cur))
	}

	// reverse to get start → node
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// VisitedNodes returns the settled nodes in the order they were settled.
func (e *Engine[T]) VisitedNodes() []*core.Node[T] {
	if e.graph == nil {
		return nil
	}
	content := e.visited.Content()
	out := make([]*core.Node[T], len(content))
	for k, i := range content {
		out[k] = e.graph.Node(i)
	}

	return out
}

// UnvisitedNodes returns the nodes not settled yet, in graph order.
func (e *Engine[T]) UnvisitedNodes() []*core.Node[T] {
	if e.graph == nil {
		return nil
	}
	out := make([]*core.Node[T], 0, e.graph.Len())
	for i := 0; i < e.graph.Len(); i++ {
		if !e.visited.Contains(i) {
			out = append(out, e.graph.Node(i))
		}
	}

	return out
}

// Stats returns the statistics of the last completed run. Reset clears them.
func (e *Engine[T]) Stats() Stats { return e.stats }
