package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/builder"
	"github.com/katalvlaran/lvpath/core"
)

// edgeStrings renders every edge of g for order-sensitive comparison.
func edgeStrings(g *core.WeightedGraph[string]) []string {
	var out []string
	for _, e := range g.Edges() {
		out = append(out, e.String())
	}

	return out
}

func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, []string{"0→1(1)", "1→2(1)", "2→3(1)"}, edgeStrings(g))
}

func TestCycle_SymbolIDs(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn), builder.WithWeightFn(builder.ConstantWeightFn(2))},
		builder.Cycle(3),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A→B(2)", "B→C(2)", "C→A(2)"}, edgeStrings(g))
}

func TestStar_Bidirectional(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithBidirectional()}, builder.Star(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"0→1(1)", "1→0(1)", "0→2(1)", "2→0(1)"}, edgeStrings(g))
}

func TestComplete(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(3))
	require.NoError(t, err)
	assert.Len(t, g.Edges(), 6)
	for _, n := range g.Nodes() {
		assert.Len(t, g.OutgoingEdges(n), 2)
	}

	single, err := builder.BuildGraph(nil, builder.Complete(1))
	require.NoError(t, err)
	assert.Equal(t, 1, single.Len())
	assert.Empty(t, single.Edges())
}

func TestGrid(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(2, 3))
	require.NoError(t, err)
	assert.Equal(t, 6, g.Len())
	// 2 rows × 2 right-edges + 3 down-edges.
	assert.Len(t, g.Edges(), 7)
	assert.Equal(t, []string{"0→1(1)", "0→3(1)"}, edgeStrings(mustSub(t, g, "0")))
}

// mustSub returns a graph holding only the edges leaving label.
func mustSub(t *testing.T, g *core.WeightedGraph[string], label string) *core.WeightedGraph[string] {
	t.Helper()
	n, ok := g.NodeByLabel(label)
	require.True(t, ok)
	sub, err := core.NewWeightedGraph(g.Nodes(), g.OutgoingEdges(n))
	require.NoError(t, err)

	return sub
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.IntegerWeightFn(1, 9))}
	g1, err := builder.BuildGraph(opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)

	opts = []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.IntegerWeightFn(1, 9))}
	g2, err := builder.BuildGraph(opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)

	assert.Equal(t, edgeStrings(g1), edgeStrings(g2))
	for _, e := range g1.Edges() {
		assert.False(t, e.IsLoop())
		assert.GreaterOrEqual(t, e.Weight(), 1.0)
		assert.LessOrEqual(t, e.Weight(), 9.0)
	}
}

func TestComposedConstructorsShareNodes(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Star(3))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())
	assert.Len(t, g.Edges(), 4)
}

func TestBuildGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		opts []builder.BuilderOption
		con  builder.Constructor
		want error
	}{
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
		{"path too small", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"cycle too small", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"star too small", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"complete empty", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"grid degenerate", nil, builder.Grid(1, 1), builder.ErrTooFewVertices},
		{"bad probability", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"no rng", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"negative weight", []builder.BuilderOption{builder.WithWeightFn(func(*rand.Rand) float64 { return -1 })}, builder.Path(2), core.ErrNegativeWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.opts, tc.con)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "AZ", builder.ExcelColumnIDFn(51))
	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
}

func TestWeightFns(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, 3.0, builder.ConstantWeightFn(3)(rng))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(2, 5)(nil))
	assert.Equal(t, 2.0, builder.UniformWeightFn(2, 2)(rng))
	u := builder.UniformWeightFn(2, 5)(rng)
	assert.True(t, u >= 2 && u < 5)
	assert.Equal(t, 4.0, builder.IntegerWeightFn(4, 8)(nil))

	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(3, 2) })
	assert.Panics(t, func() { builder.IntegerWeightFn(-1, 2) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
}
