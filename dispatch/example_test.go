package dispatch_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/taxisim/core"
	"github.com/katalvlaran/taxisim/dispatch"
)

// ExampleMatcher_NearestMatching finds the nearest QnQ taxi for client D.
func ExampleMatcher_NearestMatching() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("C", "D", 1)
	_ = g.AddEdge("A", "D", 5)
	_ = g.SetRole("A", core.Shop("QnQ"))
	_ = g.SetRole("D", core.Client())

	m, _ := dispatch.NewMatcher(g)
	match, _ := m.NearestMatching(context.Background(), dispatch.ShopsOf("QnQ"), "D", dispatch.ToClient)
	for _, c := range match.Candidates {
		fmt.Printf("%s cost=%g path=%v\n", c.ID, c.Cost, c.Path)
	}
	// Output: A cost=3 path=[A B C D]
}
