// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted road networks.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is reached during the run.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrUnreachable     if a path is requested to a vertex the run never reached.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/taxisim/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a vertex does not exist in the graph.
	// It wraps core.ErrVertexNotFound so either sentinel matches with errors.Is.
	ErrVertexNotFound = fmt.Errorf("dijkstra: %w", core.ErrVertexNotFound)

	// ErrNegativeWeight indicates that a negative edge weight was reached.
	// It wraps core.ErrNegativeWeight.
	ErrNegativeWeight = fmt.Errorf("dijkstra: %w", core.ErrNegativeWeight)

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrUnreachable indicates that no route exists from the run's source.
	ErrUnreachable = errors.New("dijkstra: vertex unreachable from source")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting vertex ID (must be non-empty and present in the graph).
// Context     – checked between vertex expansions; a cancelled run returns ctx.Err().
// MaxDistance – optional cap on distances to explore (vertices beyond are unreachable).
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Source      string          // The ID of the source vertex
	Context     context.Context // Cancellation and deadline for the run
	MaxDistance float64         // Maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithContext attaches ctx to the run. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Context = ctx
		}
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		// Panic at construction so the bad option never reaches a run.
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source vertex ID.
//
// Defaults:
//   - Source:      <as passed> (validated in Dijkstra).
//   - Context:     context.Background().
//   - MaxDistance: +Inf (explore all reachable).
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		Context:     context.Background(),
		MaxDistance: math.Inf(1),
	}
}

// State is the per-vertex outcome of one run.
//
// Distance is math.Inf(1) for unreachable vertices and Predecessor is "" for
// the source and for unreachable vertices. HasTie is set when more than one
// minimal-cost route to the vertex was discovered; Predecessor then holds the
// first one found, which is an artifact of heap order and carries no meaning.
type State struct {
	Distance    float64
	Predecessor string
	Visited     bool
	HasTie      bool
}

// Result is the table produced by one run, keyed by vertex ID.
// It is owned by the caller; the graph is never written to.
type Result struct {
	source  string
	states  map[string]State
	visited int
}

// Source returns the vertex the run started from.
func (r *Result) Source() string { return r.source }

// Visited returns how many vertices were finalized during the run.
func (r *Result) Visited() int { return r.visited }

// State returns the recorded state of id and whether id was part of the graph.
func (r *Result) State(id string) (State, bool) {
	st, ok := r.states[id]
	return st, ok
}

// Distance returns the shortest distance from the source to id,
// math.Inf(1) when unreachable.
func (r *Result) Distance(id string) (float64, error) {
	st, ok := r.states[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return st.Distance, nil
}

// Reachable reports whether id has a finite distance.
func (r *Result) Reachable(id string) bool {
	st, ok := r.states[id]
	return ok && !math.IsInf(st.Distance, 1)
}

// Tied reports whether more than one minimal-cost route to id exists.
func (r *Result) Tied(id string) bool {
	return r.states[id].HasTie
}

// Path reconstructs the route source → … → id by following predecessors.
//
// Errors:
//   - ErrVertexNotFound if id is unknown.
//   - ErrUnreachable if id has no route from the source.
//
// Complexity: O(len(path)).
func (r *Result) Path(id string) ([]string, error) {
	st, ok := r.states[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	if math.IsInf(st.Distance, 1) {
		return nil, fmt.Errorf("%w: %s→%s", ErrUnreachable, r.source, id)
	}

	// Walk back to the source; predecessor chains form a tree, so at most V steps.
	rev := []string{id}
	for cur := id; cur != r.source; {
		cur = r.states[cur].Predecessor
		if cur == "" || len(rev) > len(r.states) {
			return nil, fmt.Errorf("%w: broken predecessor chain at %q", ErrUnreachable, id)
		}
		rev = append(rev, cur)
	}
	path := make([]string, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}

	return path, nil
}
