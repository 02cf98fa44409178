// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ParseString + Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Neighbors parses a small maze and lists the moves available
// from the start cell. Moves are always enumerated Up, Down, Left, Right.
func ExampleGrid_Neighbors() {
	g, err := gridgraph.ParseString("#B#\n A \n###")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, st := range g.Neighbors(g.Start) {
		fmt.Println(st.Action, st.State)
	}
	// Output:
	// up (0,1)
	// left (1,0)
	// right (1,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_ConnectedComponents shows how to detect that start and goal sit
// in separate rooms before running any search.
//
// Complexity: O(W·H), Memory: O(W·H)
func ExampleGrid_ConnectedComponents() {
	g, _ := gridgraph.ParseString("A # \n  #B")

	comps := g.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, c := range comp {
			fmt.Printf(" %v", c)
		}
		fmt.Println()
	}
	fmt.Println("reachable:", g.Reachable(g.Start, g.Goal))

	// Output:
	// components: 2
	// component 0: (0,0) (1,0) (0,1) (1,1)
	// component 1: (0,3) (1,3)
	// reachable: false
}
