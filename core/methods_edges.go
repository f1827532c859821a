// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Neighbors/Edges/EdgeCount.
// Determinism:
//   - Neighbors(id) returns outgoing edges in insertion order.
//   - Edges() returns edges grouped by source ID asc, insertion order within a source.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge appends a directed edge from→to with the given weight.
//
// Steps:
//  1. Validate IDs.
//  2. Validate weight (NaN ⇒ ErrBadWeight, < 0 ⇒ ErrNegativeWeight) unless WithUncheckedWeights.
//  3. Ensure endpoints via AddVertex.
//  4. Lock muEdgeAdj and append to adjacency[from].
//
// Parallel edges and self-loops are accepted; the engine simply relaxes each of them.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	// 2) Weight constraint, fail fast before any query runs
	if !g.unchecked {
		if math.IsNaN(weight) {
			return fmt.Errorf("%w: edge %s→%s", ErrBadWeight, from, to)
		}
		if weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, from, to, weight)
		}
	}
	// 3) Ensure both endpoints exist (idempotent)
	if _, err := g.AddVertex(from); err != nil {
		return err
	}
	if _, err := g.AddVertex(to); err != nil {
		return err
	}

	// 4) Store the edge
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	g.adjacency[from] = append(g.adjacency[from], &Edge{From: from, To: to, Weight: weight})
	g.edgeCount++

	return nil
}

// HasEdge reports true if at least one edge from 'from' to 'to' exists.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for _, e := range g.adjacency[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// Neighbors returns the outgoing edges of id in insertion order.
// The returned slice is a copy; the *Edge values are shared and must be treated as read-only.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out, nil
}

// Edges returns every edge, grouped by source vertex ID ascending.
// Complexity: O(V log V + E).
func (g *Graph) Edges() []*Edge {
	ids := g.Vertices()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, g.edgeCount)
	var id string
	for _, id = range ids {
		out = append(out, g.adjacency[id]...)
	}

	return out
}

// EdgeCount returns the number of edges in the graph.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}
