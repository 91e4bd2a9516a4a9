package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
)

func TestReset_InitialState(t *testing.T) {
	f := sixNodes(t)
	e := dijkstra.New[string]()
	require.NoError(t, e.Reset(f.graph, f.nodes[0]))

	assert.Empty(t, e.VisitedNodes())
	assert.Equal(t, f.nodes, e.UnvisitedNodes())
	first, ok := e.SelectMinimumUnvisited()
	require.True(t, ok)
	assert.Same(t, f.nodes[0], first)
	for i, n := range f.nodes {
		d, err := e.Distance(n)
		require.NoError(t, err)
		if i == 0 {
			assert.Zero(t, d)
		} else {
			assert.Equal(t, dijkstra.Unreached, d)
		}
	}
}

func TestMarkNodeAsVisited(t *testing.T) {
	f := sixNodes(t)
	e := dijkstra.New[string]()
	require.NoError(t, e.Reset(f.graph, f.nodes[0]))

	a := f.nodes[0]
	require.NoError(t, e.MarkNodeAsVisited(a))
	assert.Contains(t, e.VisitedNodes(), a)
	assert.NotContains(t, e.UnvisitedNodes(), a)

	// Marking twice is harmless.
	require.NoError(t, e.MarkNodeAsVisited(a))
	assert.Len(t, e.VisitedNodes(), 1)
	assert.Len(t, e.UnvisitedNodes(), 5)
}

func TestMarkNodeAsVisited_Errors(t *testing.T) {
	f := sixNodes(t)
	e := dijkstra.New[string]()

	// Nothing loaded yet.
	assert.ErrorIs(t, e.MarkNodeAsVisited(f.nodes[0]), dijkstra.ErrUnknownNode)

	require.NoError(t, e.Reset(f.graph, f.nodes[0]))
	assert.ErrorIs(t, e.MarkNodeAsVisited(nil), dijkstra.ErrNilNode)
	assert.ErrorIs(t, e.MarkNodeAsVisited(core.NewNode("A")), core.ErrInvalidArgument)
}

func TestSetPreviousNode(t *testing.T) {
	f := sixNodes(t)
	e := dijkstra.New[string]()
	require.NoError(t, e.Reset(f.graph, f.nodes[0]))

	// edges[0] is A→C.
	require.NoError(t, e.SetPreviousNode(f.nodes[0], f.edges[0]))
	path, err := e.Path(f.nodes[2])
	require.NoError(t, err)
	assert.Equal(t, []*core.Node[string]{f.nodes[0], f.nodes[2]}, path)

	// Only the predecessor changes.
	d, _ := e.Distance(f.nodes[2])
	assert.Equal(t, dijkstra.Unreached, d)

	assert.ErrorIs(t, e.SetPreviousNode(nil, f.edges[0]), dijkstra.ErrNilNode)
	assert.ErrorIs(t, e.SetPreviousNode(f.nodes[0], nil), dijkstra.ErrNilEdge)
	assert.ErrorIs(t, e.SetPreviousNode(core.NewNode("A"), f.edges[0]), dijkstra.ErrUnknownNode)
}

func TestSetPreviousNode_CycleDoesNotHangPath(t *testing.T) {
	f := build(t, []string{"A", "B"}, []arc{{0, 1, 1}, {1, 0, 1}})
	e := dijkstra.New[string]()
	require.NoError(t, e.Reset(f.graph, f.nodes[0]))

	require.NoError(t, e.SetPreviousNode(f.nodes[0], f.edges[0])) // B ← A
	require.NoError(t, e.SetPreviousNode(f.nodes[1], f.edges[1])) // A ← B

	path, err := e.Path(f.nodes[1])
	require.NoError(t, err)
	assert.LessOrEqual(t, len(path), 3)
	assert.Same(t, f.nodes[1], path[len(path)-1])
}

func TestIsDestinationNodeUnvisited(t *testing.T) {
	f := sixNodes(t)
	e := dijkstra.New[string]()

	assert.False(t, e.IsDestinationNodeUnvisited(f.edges[0]), "nothing loaded")

	require.NoError(t, e.FindShortestPath(f.graph, f.nodes[0], f.nodes[1]))

	// edges[5] is C→E: E was never settled.
	assert.True(t, e.IsDestinationNodeUnvisited(f.edges[5]))
	// edges[0] is A→C: C was settled before B.
	assert.False(t, e.IsDestinationNodeUnvisited(f.edges[0]))
	assert.False(t, e.IsDestinationNodeUnvisited(nil))

	foreign, err := core.NewEdge(f.nodes[0], core.NewNode("Z"), 1)
	require.NoError(t, err)
	assert.False(t, e.IsDestinationNodeUnvisited(foreign))
}

func TestSelectMinimumUnvisited(t *testing.T) {
	f := sixNodes(t)
	e := dijkstra.New[string]()
	require.NoError(t, e.Reset(f.graph, f.nodes[0]))

	n, ok := e.SelectMinimumUnvisited()
	require.True(t, ok)
	assert.Same(t, f.nodes[0], n)

	// Selecting does not visit.
	n, ok = e.SelectMinimumUnvisited()
	require.True(t, ok)
	assert.Same(t, f.nodes[0], n)

	// Once the start is settled nothing else has been reached.
	require.NoError(t, e.MarkNodeAsVisited(f.nodes[0]))
	_, ok = e.SelectMinimumUnvisited()
	assert.False(t, ok)
}

func TestSelectMinimumUnvisited_SkipsManuallyVisited(t *testing.T) {
	f := sixNodes(t)
	e := dijkstra.New[string]()
	require.NoError(t, e.FindShortestPath(f.graph, f.nodes[0], f.nodes[2]))

	// B(5) is next; settle it by hand and the frontier moves on to E(9).
	require.NoError(t, e.MarkNodeAsVisited(f.nodes[1]))
	n, ok := e.SelectMinimumUnvisited()
	require.True(t, ok)
	assert.Same(t, f.nodes[4], n)
}

func TestPrimitives_DriveLoopByHand(t *testing.T) {
	f := build(t, []string{"A", "B", "C"}, []arc{{0, 1, 1}, {1, 2, 2}, {0, 2, 5}})
	e := dijkstra.New[string]()
	require.NoError(t, e.Reset(f.graph, f.nodes[0]))

	var order []string
	for {
		u, ok := e.SelectMinimumUnvisited()
		if !ok {
			break
		}
		require.NoError(t, e.MarkNodeAsVisited(u))
		order = append(order, u.Label())
		for _, edge := range f.graph.OutgoingEdges(u) {
			if e.IsDestinationNodeUnvisited(edge) {
				require.NoError(t, e.SetPreviousNode(u, edge))
			}
		}
	}

	// Without relaxation only the start is ever reached.
	assert.Equal(t, []string{"A"}, order)
	path, _ := e.Path(f.nodes[2])
	assert.Equal(t, []string{"A", "C"}, labels(path))
}
