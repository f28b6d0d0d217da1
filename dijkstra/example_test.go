// Package dijkstra_test provides runnable examples for the dijkstra package.
package dijkstra_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/graph"
)

// ExampleShortestPath demonstrates the triangle case: the two-hop route
// A→B→C (1+2) beats the direct edge A—C (4).
func ExampleShortestPath() {
	g, err := graph.FromMap(map[graph.Pair]float64{
		{A: "A", B: "B"}: 1,
		{A: "B", B: "C"}: 2,
		{A: "A", B: "C"}: 4,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := dijkstra.ShortestPath(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.Join(res.Path, ""))
	fmt.Println(res.Distance)
	// Output:
	// ABC
	// 3
}

// ExampleSolve_houseGraph solves once and reconstructs several paths from
// the same table.
func ExampleSolve_houseGraph() {
	//	    (E)
	//	  3/   \4
	//	  /     \
	//	(C)──10─(D)
	//	 |       |
	//	2|       |5
	//	 |       |
	//	(A)──4──(B)
	g, _ := graph.Build([]graph.Edge{
		{A: "A", B: "B", Weight: 4},
		{A: "A", B: "C", Weight: 2},
		{A: "B", B: "D", Weight: 5},
		{A: "C", B: "D", Weight: 10},
		{A: "C", B: "E", Weight: 3},
		{A: "E", B: "D", Weight: 4},
	})

	table, err := dijkstra.Solve(g, "A", dijkstra.WithStrategy(dijkstra.StrategyHeap))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, end := range []string{"D", "E"} {
		path, dist, _ := dijkstra.Path(table, "A", end)
		fmt.Printf("%s: %v (%g)\n", end, path, dist)
	}
	// Output:
	// D: [A B D] (9)
	// E: [A C E] (5)
}

// ExamplePath_unreachable shows how an isolated node is reported.
func ExamplePath_unreachable() {
	g, _ := graph.Build([]graph.Edge{{A: "A", B: "B", Weight: 1}}, graph.WithNodes("D"))
	table, _ := dijkstra.Solve(g, "A")

	_, _, err := dijkstra.Path(table, "A", "D")
	fmt.Println(errors.Is(err, dijkstra.ErrUnreachable))
	fmt.Println(table["D"].Distance, table["D"].Predecessor == "")
	// Output:
	// true
	// +Inf true
}
