// Package dijkstra provides the single-source shortest-path engine used by
// dispatch: Dijkstra's algorithm on directed graphs with non-negative weights,
// extended with equal-cost tie detection.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Every run returns its own Result table (distance, predecessor, visited, tie
//     per vertex). The graph is only read, so runs are repeatable and may share
//     one graph across goroutines.
//
// Tie detection:
//
//   - When relaxing u→v yields exactly the current best distance of v, v is
//     marked tied (State.HasTie) and its predecessor is left as it was.
//   - A strictly shorter route clears the flag again.
//   - Which of the tied predecessors is kept depends on heap order and is not
//     part of the contract; only Distance and HasTie are.
//
// Key features:
//
//   - Functional options: Source (required), WithContext, WithMaxDistance.
//   - Result.Path rebuilds the route source → … → target from predecessors.
//   - Context cancellation is checked between vertex expansions.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:    Source option missing or "".
//   - ErrNilGraph:       nil graph.
//   - ErrVertexNotFound: Source (or a queried vertex) not in the graph; matches core.ErrVertexNotFound.
//   - ErrNegativeWeight: an edge with weight < 0 was reached; matches core.ErrNegativeWeight.
//     The run is aborted and no partial Result is returned.
//   - ErrUnreachable:    Result.Path on a vertex with infinite distance.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, _ := res.Distance("D")
//	path, _ := res.Path("D")
//	fmt.Println(d, path, res.Tied("D"))
package dijkstra
