// File: api.go
// Role: Read-only diagnostics facade.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	ShopCount   int
	ClientCount int
	Companies   int
	Unchecked   bool
}

// Stats produces a read-only snapshot of catalog sizes and role counts.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot vertex and role counts, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, snapshot the edge count, then release.
//
// Behavior highlights:
//   - Avoids holding both locks simultaneously.
//
// Complexity:
//   - Time O(C) for C companies, Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		VertexCount: len(g.vertices),
		ShopCount:   len(g.shops),
		ClientCount: len(g.clients),
		Unchecked:   g.unchecked,
	}
	for _, shops := range g.shopsByCompany {
		if len(shops) > 0 {
			stats.Companies++
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = g.edgeCount
	g.muEdgeAdj.RUnlock()

	return &stats
}
