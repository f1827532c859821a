// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted road networks,
// recording equal-cost ties along the way.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - Every edge examined during the run is checked for a negative weight; the
//     first one aborts the run and no partial result is returned.
//   - A relaxation that exactly matches the current best distance marks the
//     target as tied without replacing its predecessor.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - All run state lives in a Result owned by the caller, so concurrent runs on
//     one shared graph never interfere.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/taxisim/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in g.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge reached from Source may have negative weight (ErrNegativeWeight).
//
// Returns the per-vertex Result table, or an error and no table.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	// 3) Prepare a fresh table: nothing from an earlier run can leak in.
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		total:   len(vertices),
		states:  make(map[string]State, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	r.init(vertices)

	// 4) Main loop
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{source: cfg.Source, states: r.states, visited: r.seen}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph      // The input graph; read-only within Dijkstra.
	options Options          // Configuration options (Source, context, cap).
	total   int              // Number of vertices in the graph.
	seen    int              // Number of vertices finalized so far.
	states  map[string]State // Vertex ID → distance / predecessor / visited / tie.
	pq      nodePQ           // Min-heap of *nodeItem for lazy priority queue.
}

// init resets every vertex to (Inf, "", false, false) and seeds the heap with (Source, 0).
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.states[v] = State{Distance: math.Inf(1)}
	}
	r.states[r.options.Source] = State{Distance: 0}

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the vertex
// with the minimum distance from the source and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - Every vertex of the graph has been visited.
//   - The minimum distance in the heap exceeds MaxDistance.
//
// Returns the context error if the run is cancelled, or ErrNegativeWeight.
func (r *runner) process() error {
	ctx := r.options.Context
	for r.pq.Len() > 0 && r.seen < r.total {
		// 1) Honor cancellation between vertex expansions.
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("dijkstra: run from %q aborted: %w", r.options.Source, err)
		}

		// 2) Pop the smallest-distance item; skip stale entries.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		st := r.states[u]
		if st.Visited {
			continue
		}

		// 3) Beyond the cap nothing further can be finalized.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Finalize u and relax its outgoing edges.
		st.Visited = true
		r.states[u] = st
		r.seen++
		if err := r.relax(u, st.Distance); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge outgoing from vertex u and attempts to improve distances to its neighbors.
//
//   - newDist <  dist[v]: update distance and predecessor, clear the tie flag, push.
//   - newDist == dist[v]: mark v tied, keep the predecessor.
func (r *runner) relax(u string, du float64) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	var e *core.Edge
	for _, e = range neighbors {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}

		newDist := du + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}

		sv := r.states[e.To]
		switch {
		case newDist < sv.Distance:
			sv.Distance = newDist
			sv.Predecessor = u
			sv.HasTie = false
			r.states[e.To] = sv
			heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
		case newDist == sv.Distance:
			sv.HasTie = true
			r.states[e.To] = sv
		}
	}

	return nil
}

// nodeItem represents a vertex and its distance at insertion time.
type nodeItem struct {
	id   string  // vertex ID
	dist float64 // distance from source
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by nodeItem.dist ascending.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
