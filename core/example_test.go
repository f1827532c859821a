package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/taxisim/core"
)

// ExampleGraph demonstrates building a small road network and tagging roles.
func ExampleGraph() {
	// 1) Create an empty directed graph:
	g := core.NewGraph()

	// 2) Add edges (auto-adds vertices 0, 1, 2):
	_ = g.AddEdge("0", "1", 4)
	_ = g.AddEdge("1", "2", 3)
	_ = g.AddEdge("2", "0", 5)

	// 3) Tag a shop and a client:
	_ = g.SetRole("0", core.Shop("QnQ"))
	_ = g.SetRole("2", core.Client())

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("QnQ shops:", g.Shops("qnq"))
	fmt.Println("Clients:", g.Clients())
	fmt.Println("Edge 1→0 exists?", g.HasEdge("1", "0"))

	// Output:
	// Vertices: [0 1 2]
	// QnQ shops: [0]
	// Clients: [2]
	// Edge 1→0 exists? false
}

// ExampleGraph_AddEdge shows construction-time rejection of negative weights.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()
	err := g.AddEdge("A", "B", -2)
	fmt.Println(errors.Is(err, core.ErrNegativeWeight))
	// Output: true
}
