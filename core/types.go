// Package core defines the central Graph, Vertex, Edge and Role types,
// and provides thread-safe primitives for building and querying the
// road network a dispatch simulation runs on.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for
// vertices and role indices, muEdgeAdj for edges and adjacency), so a graph
// that is fully built can be shared read-only by any number of readers.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrNegativeWeight - edge weight below zero.
//	ErrBadWeight      - edge weight is NaN.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates an edge weight below zero. Shortest paths
	// over negative edges are not supported anywhere in this module.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates a weight that is not a number.
	ErrBadWeight = errors.New("core: edge weight is NaN")
)

// Vertex represents a named location in the road network.
//
// ID uniquely identifies this Vertex within its Graph.
// Role tags the vertex as a shop (taxi rank), a client, or neither.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Role is the dispatch role of this vertex. Change it through
	// Graph.SetRole so the role indices stay consistent.
	Role Role
}

// Edge represents a directed, weighted connection From→To.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the travel cost of the edge.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithUncheckedWeights skips the construction-time weight check in AddEdge.
// Negative edges are then stored as given; the shortest-path engine still
// rejects every negative edge it reaches.
func WithUncheckedWeights() GraphOption {
	return func(g *Graph) { g.unchecked = true }
}

// Graph is the in-memory directed road network.
//
// muVert protects vertices and the role indices; muEdgeAdj protects the
// adjacency lists and the edge counter. Lock order is muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, shops, shopsByCompany, clients, companies
	muEdgeAdj sync.RWMutex // guards adjacency and edgeCount

	// Configuration flags
	unchecked bool // skip weight validation in AddEdge

	// Storage
	vertices  map[string]*Vertex // vertex ID → Vertex
	adjacency map[string][]*Edge // vertex ID → outgoing edges in insertion order
	edgeCount int

	// Role indices, built as roles are assigned.
	shops          map[string]struct{}            // every shop
	shopsByCompany map[string]map[string]struct{} // companyKey → shop IDs
	companies      map[string]string              // companyKey → first-seen spelling
	clients        map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:       make(map[string]*Vertex),
		adjacency:      make(map[string][]*Edge),
		shops:          make(map[string]struct{}),
		shopsByCompany: make(map[string]map[string]struct{}),
		companies:      make(map[string]string),
		clients:        make(map[string]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
