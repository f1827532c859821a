// Package taxisim simulates a taxi service run by supermarket chains over a
// weighted, directed road network.
//
// What is in the module?
//
//	• core       – the road graph: vertices, directed edges, shop/client roles
//	               and per-company role indices
//	• dijkstra   – single-source shortest paths with equal-cost tie detection,
//	               returned as a per-run Result table
//	• dispatch   – nearest-candidate matching (taxi → client, client → shop),
//	               plus Cost and DescribePath queries
//	• fare       – tariffs per company and the fare formula
//	• simulator  – plays client calls: match, accept/decline, report, price
//	• scenario   – reader for the text scenario format
//	• config     – YAML configuration with defaults, validation and hot reload
//	• logging    – slog logger factory with optional rotating file output
//	• metrics    – Prometheus collectors for runs, matches and calls
//
// The command in cmd/taxisim wires these together:
//
//	taxisim -config taxisim.yaml -input Input.txt
//
// Quick start as a library:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "D", 1)
//	_ = g.AddEdge("D", "A", 2)
//	_ = g.SetRole("A", core.Shop("QnQ"))
//	_ = g.SetRole("D", core.Client())
//
//	sim, _ := simulator.New(g, simulator.Config{
//		Calls: []simulator.Call{{Client: "D", Company: "QnQ"}},
//	}, simulator.WithDecider(simulator.AlwaysAccept{}))
//	_, _ = sim.Run(context.Background(), os.Stdout)
package taxisim
