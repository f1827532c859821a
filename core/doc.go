// Package core provides the thread-safe in-memory road network used by the
// dispatch simulator.
//
// The Graph G = (V,E) is:
//
//   - Directed: AddEdge(u, v, w) creates u→v only.
//   - Weighted with non-negative float64 costs, validated at AddEdge time
//     (ErrNegativeWeight, ErrBadWeight) unless WithUncheckedWeights is given.
//   - Role-tagged: every Vertex carries a Role (None, Shop(company), Client).
//     SetRole keeps the shop-per-company and client indices in sync, so
//     Shops(company) and Clients() are index lookups rather than scans.
//
// Lifecycle:
//
//	Build once (AddVertex / AddEdge / SetRole), then share read-only.
//	Nothing in the query path mutates the graph; shortest-path state lives in
//	per-run tables owned by package dijkstra.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) (*Vertex, error)    // O(1), upsert
//	Vertex(id string) (*Vertex, error)       // O(1), ErrVertexNotFound
//	HasVertex(id string) bool                // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) error // O(1)†
//	Neighbors(id string) ([]*Edge, error)          // O(deg)
//
//	// Roles
//	SetRole(id string, role Role) error // O(1)
//	Shops(company string) []string      // sorted
//	Clients() []string                  // sorted
//
// † amortized.
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.SetRole("A", core.Shop("QnQ"))
//	_ = g.SetRole("B", core.Client())
package core
