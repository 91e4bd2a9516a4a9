package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// ExampleNewWeightedGraph builds a three-node graph and lists the edges
// leaving its first node.
func ExampleNewWeightedGraph() {
	a, b, c := core.NewNode("A"), core.NewNode("B"), core.NewNode("C")
	ab, _ := core.NewEdge(a, b, 1)
	ac, _ := core.NewEdge(a, c, 4)
	bc, _ := core.NewEdge(b, c, 2)

	g, err := core.NewWeightedGraph([]*core.Node[string]{a, b, c}, []*core.Edge[string]{ab, ac, bc})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.OutgoingEdges(a) {
		fmt.Println(e)
	}
	// Output:
	// A→B(1)
	// A→C(4)
}

// ExampleNewEdge shows the error returned for a negative weight.
func ExampleNewEdge() {
	a := core.NewNode("A")
	_, err := core.NewEdge(a, a, -0.1)
	fmt.Println(err)
	// Output: Weight can't be a negative number
}
