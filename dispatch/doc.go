// Package dispatch matches clients to the nearest role-matching vertices.
//
// For each candidate chosen by a Selector the matcher runs the shortest-path
// engine once, from the candidate when measuring candidate → client
// (ToClient, e.g. a taxi driving to a client) or from the client when
// measuring client → candidate (FromClient, e.g. the drive on to a shop).
// The cheapest candidates form the Match; equal costs all stay in it and
// unreachable candidates never enter it. A candidate whose route is not
// unique carries Tied and no Path.
//
// Candidates come from the graph's role indices (ShopsOf, Clients) or from
// a full scan with an arbitrary predicate (Where), always in ID order, so
// results are deterministic.
//
// Errors:
//   - core.ErrVertexNotFound when the client or a queried endpoint is absent.
//   - dijkstra.ErrNegativeWeight when any run reaches a negative edge.
//   - ErrNoRoute from DescribePath when the destination is unreachable.
package dispatch
