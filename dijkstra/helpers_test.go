package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/core"
)

// fixture bundles a graph with the node and edge slices it was built from,
// so tests can address both by position.
type fixture[T comparable] struct {
	nodes []*core.Node[T]
	edges []*core.Edge[T]
	graph *core.WeightedGraph[T]
}

// arc is a directed edge between node positions.
type arc struct {
	from, to int
	w        float64
}

// build creates one node per label and one edge per arc, in order.
func build[T comparable](t testing.TB, labels []T, arcs []arc) fixture[T] {
	t.Helper()
	f := fixture[T]{nodes: make([]*core.Node[T], len(labels))}
	for i, l := range labels {
		f.nodes[i] = core.NewNode(l)
	}
	for _, a := range arcs {
		e, err := core.NewEdge(f.nodes[a.from], f.nodes[a.to], a.w)
		require.NoError(t, err)
		f.edges = append(f.edges, e)
	}
	g, err := core.NewWeightedGraph(f.nodes, f.edges)
	require.NoError(t, err)
	f.graph = g

	return f
}

// sixNodeArcs is the A–F network used across the tests:
//
//	A→C:2, A→B:5, B→C:1, B→D:4, B→E:2, C→E:7, D→E:6, D→F:3, E→F:1
var sixNodeArcs = []arc{
	{0, 2, 2}, {0, 1, 5}, {1, 2, 1}, {1, 3, 4}, {1, 4, 2},
	{2, 4, 7}, {3, 4, 6}, {3, 5, 3}, {4, 5, 1},
}

func sixNodes(t testing.TB) fixture[string] {
	return build(t, []string{"A", "B", "C", "D", "E", "F"}, sixNodeArcs)
}

// labels maps nodes to their labels for readable comparisons.
func labels[T comparable](nodes []*core.Node[T]) []T {
	out := make([]T, len(nodes))
	for i, n := range nodes {
		out[i] = n.Label()
	}

	return out
}
