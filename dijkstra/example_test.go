// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via "go test -run Example", showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/taxisim/core"
	"github.com/katalvlaran/taxisim/dijkstra"
)

// ExampleDijkstra demonstrates that a cheap detour beats an expensive direct edge.
// Complexity: O((V+E) log V).
func ExampleDijkstra() {
	// 1) Build A→B(1), B→C(1), C→D(1) and the direct A→D(5).
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("C", "D", 1)
	_ = g.AddEdge("A", "D", 5)

	// 2) Run from A.
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Read the cost and the route to D.
	d, _ := res.Distance("D")
	path, _ := res.Path("D")
	fmt.Printf("dist[D]=%g path=%v\n", d, path)
	// Output: dist[D]=3 path=[A B C D]
}

// ExampleResult_Tied shows tie detection when two equal-cost routes meet.
func ExampleResult_Tied() {
	//	  (B)
	//	 1/  \1
	//	(A)  (D)
	//	 1\  /1
	//	  (C)
	g := core.NewGraph()
	for _, e := range []struct {
		U, V string
		W    float64
	}{
		{"A", "B", 1},
		{"A", "C", 1},
		{"B", "D", 1},
		{"C", "D", 1},
	} {
		_ = g.AddEdge(e.U, e.V, e.W)
	}
	res, _ := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	d, _ := res.Distance("D")
	fmt.Printf("dist[D]=%g tied=%t\n", d, res.Tied("D"))
	// Output: dist[D]=2 tied=true
}
