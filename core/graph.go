package core

import "fmt"

// WeightedGraph is a read-only directed graph. It owns copies of the node and
// edge lists it was built from and an adjacency index keyed by dense node
// index (0..Len()-1, insertion order).
type WeightedGraph[T comparable] struct {
	nodes []*Node[T]
	edges []*Edge[T]

	// index maps a node to its position in nodes.
	index map[*Node[T]]int

	// byLabel maps a label to the first node carrying it.
	byLabel map[T]int

	// adjacency[i] lists the edges leaving nodes[i], in edge insertion order.
	adjacency [][]*Edge[T]
}

// NewWeightedGraph builds the graph and its adjacency index in O(V + E).
//
// Preconditions (each violation matches ErrInvalidArgument):
//  1. No nil entry in nodes (ErrNilNode).
//  2. No node listed twice (ErrDuplicateNode).
//  3. No nil entry in edges (ErrNilEdge).
//  4. Both endpoints of every edge appear in nodes (ErrUnknownNode).
//
// Edge endpoints and weights are not re-validated; NewEdge already did that.
func NewWeightedGraph[T comparable](nodes []*Node[T], edges []*Edge[T]) (*WeightedGraph[T], error) {
	g := &WeightedGraph[T]{
		nodes:     make([]*Node[T], len(nodes)),
		edges:     make([]*Edge[T], len(edges)),
		index:     make(map[*Node[T]]int, len(nodes)),
		byLabel:   make(map[T]int, len(nodes)),
		adjacency: make([][]*Edge[T], len(nodes)),
	}
	copy(g.nodes, nodes)
	copy(g.edges, edges)

	for i, n := range g.nodes {
		if n == nil {
			return nil, fmt.Errorf("node #%d: %w", i, ErrNilNode)
		}
		if _, dup := g.index[n]; dup {
			return nil, fmt.Errorf("node #%d (%v): %w", i, n, ErrDuplicateNode)
		}
		g.index[n] = i
		if _, seen := g.byLabel[n.label]; !seen {
			g.byLabel[n.label] = i
		}
	}

	for i, e := range g.edges {
		if e == nil {
			return nil, fmt.Errorf("edge #%d: %w", i, ErrNilEdge)
		}
		from, ok := g.index[e.source]
		if !ok {
			return nil, fmt.Errorf("edge #%d (%v): source: %w", i, e, ErrUnknownNode)
		}
		if _, ok = g.index[e.destination]; !ok {
			return nil, fmt.Errorf("edge #%d (%v): destination: %w", i, e, ErrUnknownNode)
		}
		g.adjacency[from] = append(g.adjacency[from], e)
	}

	return g, nil
}

// Len returns the number of nodes.
func (g *WeightedGraph[T]) Len() int { return len(g.nodes) }

// EdgeCount returns the number of edges without copying them.
func (g *WeightedGraph[T]) EdgeCount() int { return len(g.edges) }

// Nodes returns the nodes in insertion order. The slice is a copy.
func (g *WeightedGraph[T]) Nodes() []*Node[T] {
	out := make([]*Node[T], len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns the edges in insertion order. The slice is a copy.
func (g *WeightedGraph[T]) Edges() []*Edge[T] {
	out := make([]*Edge[T], len(g.edges))
	copy(out, g.edges)

	return out
}

// Node returns the node at index i. It panics if i is out of range, like a
// slice access would.
func (g *WeightedGraph[T]) Node(i int) *Node[T] { return g.nodes[i] }

// IndexOf returns the dense index of n, or false if n is nil or not part of g.
func (g *WeightedGraph[T]) IndexOf(n *Node[T]) (int, bool) {
	if n == nil {
		return 0, false
	}
	i, ok := g.index[n]

	return i, ok
}

// Has reports whether n is one of the graph's nodes.
func (g *WeightedGraph[T]) Has(n *Node[T]) bool {
	_, ok := g.IndexOf(n)

	return ok
}

// NodeByLabel returns the first node (in insertion order) carrying label.
func (g *WeightedGraph[T]) NodeByLabel(label T) (*Node[T], bool) {
	i, ok := g.byLabel[label]
	if !ok {
		return nil, false
	}

	return g.nodes[i], true
}

// OutgoingEdges returns the edges whose source is n, in insertion order.
// The result is empty for nodes without outgoing edges and for nodes that
// are not part of g. The returned slice must not be modified.
func (g *WeightedGraph[T]) OutgoingEdges(n *Node[T]) []*Edge[T] {
	i, ok := g.IndexOf(n)
	if !ok {
		return nil
	}

	return g.adjacency[i]
}

// OutgoingEdgesAt is OutgoingEdges addressed by dense node index.
func (g *WeightedGraph[T]) OutgoingEdgesAt(i int) []*Edge[T] { return g.adjacency[i] }
