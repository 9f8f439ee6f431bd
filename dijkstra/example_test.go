// Package dijkstra_test provides examples of the constrained search.
// Each example is runnable via “go test -run Example”.
package dijkstra_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/grid"
)

// ExampleMinHeatLoss runs the reference grid under the standard (0..3)
// and the ultra (3..10) constraints.
func ExampleMinHeatLoss() {
	g, err := grid.ParseLines(scenarioGrid)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	standard, _ := dijkstra.MinHeatLoss(g, 0, 3)
	ultra, _ := dijkstra.MinHeatLoss(g, 3, 10)
	fmt.Println("standard:", standard)
	fmt.Println("ultra:", ultra)
	// Output:
	// standard: 102
	// ultra: 94
}

// ExampleResult_Path rebuilds the cheapest route on a 3×3 grid.
//
//	1 2 3
//	4 5 6
//	7 8 9
//
// Going right along the top row and then down costs 20 whichever start is
// used; the Down start turning Right at the origin settles first.
func ExampleResult_Path() {
	g, _ := grid.ParseLines([]string{"123", "456", "789"})
	res, err := dijkstra.Search(g, dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	cost, _ := res.MinCost()
	path, _ := res.Path()

	fmt.Println("cost:", cost)
	for _, s := range path {
		fmt.Println(s)
	}
	// Output:
	// cost: 20
	// (0,0 down×1)
	// (1,0 right×1)
	// (2,0 right×2)
	// (2,1 down×1)
	// (2,2 down×2)
}

// ExampleResult_MinCost_unreachable shows the explicit unreachable outcome.
func ExampleResult_MinCost_unreachable() {
	g, _ := grid.ParseLines([]string{"11", "11"})
	res, _ := dijkstra.Search(g, dijkstra.WithRuns(5, 5))

	_, err := res.MinCost()
	fmt.Println("reachable:", res.Reachable())
	fmt.Println("unreachable:", errors.Is(err, dijkstra.ErrUnreachable))
	// Output:
	// reachable: false
	// unreachable: true
}
