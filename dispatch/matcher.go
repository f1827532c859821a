package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/taxisim/core"
	"github.com/katalvlaran/taxisim/dijkstra"
	"github.com/katalvlaran/taxisim/metrics"
)

// Matcher answers cost, path and nearest-candidate queries over one graph.
// Every query runs the engine afresh and the graph is only read, so a
// Matcher may be shared between goroutines.
type Matcher struct {
	g   *core.Graph
	log *slog.Logger
}

// NewMatcher returns a Matcher over g.
func NewMatcher(g *core.Graph, opts ...Option) (*Matcher, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Matcher{g: g, log: o.Logger}, nil
}

// Graph returns the graph the matcher queries.
func (m *Matcher) Graph() *core.Graph { return m.g }

// NearestMatching finds the candidates chosen by sel at minimum cost
// relative to client, in direction dir.
//
// Steps:
//  1. Validate the selector, the direction and that client exists.
//  2. For each candidate, run the engine once: from the candidate for
//     ToClient, from the client for FromClient.
//  3. Skip unreachable candidates. A strictly smaller cost resets the
//     result set; an equal cost joins it.
//
// An empty Match (no candidate reachable) is a normal result, not an error.
// Engine failures such as a reachable negative edge abort the whole match.
//
// Complexity: O(C · (V+E) log V) for C candidates.
func (m *Matcher) NearestMatching(ctx context.Context, sel Selector, client string, dir Direction) (Match, error) {
	// 1) Validate inputs
	if sel == nil {
		return Match{}, ErrNilSelector
	}
	if dir != ToClient && dir != FromClient {
		return Match{}, fmt.Errorf("%w: %v", ErrBadDirection, dir)
	}
	if !m.g.HasVertex(client) {
		return Match{}, fmt.Errorf("%w: client %q", core.ErrVertexNotFound, client)
	}

	match := emptyMatch(client, dir)
	evaluated := metrics.CandidatesEvaluated.WithLabelValues(dir.String())

	// 2) One independent engine run per candidate
	for _, id := range sel.Candidates(m.g) {
		src, dst := id, client
		if dir == FromClient {
			src, dst = client, id
		}
		res, err := m.run(ctx, src)
		if err != nil {
			return Match{}, err
		}
		evaluated.Inc()

		// 3) Fold into the running minimum
		st, _ := res.State(dst)
		if math.IsInf(st.Distance, 1) {
			continue
		}
		cand := Candidate{ID: id, Cost: st.Distance, Tied: st.HasTie}
		if !cand.Tied {
			if cand.Path, err = res.Path(dst); err != nil {
				return Match{}, err
			}
		}
		switch {
		case st.Distance < match.Cost:
			match.Cost = st.Distance
			match.Candidates = []Candidate{cand}
		case st.Distance == match.Cost:
			match.Candidates = append(match.Candidates, cand)
		}
	}

	for _, c := range match.Candidates {
		if c.Tied {
			match.Tied = true
			metrics.TiedMatches.Inc()
			break
		}
	}
	m.log.Debug("nearest matching",
		"client", client,
		"direction", dir.String(),
		"candidates", match.IDs(),
		"cost", match.Cost,
		"tied", match.Tied)

	return match, nil
}

// Cost returns the shortest-route cost from src to dst, math.Inf(1) when
// dst is unreachable. Both vertices must exist.
func (m *Matcher) Cost(ctx context.Context, src, dst string) (float64, error) {
	res, err := m.runTo(ctx, src, dst)
	if err != nil {
		return 0, err
	}

	return res.Distance(dst)
}

// DescribePath returns the vertices of a shortest route from src to dst,
// or ErrNoRoute. With tied routes the one returned is arbitrary.
func (m *Matcher) DescribePath(ctx context.Context, src, dst string) ([]string, error) {
	res, err := m.runTo(ctx, src, dst)
	if err != nil {
		return nil, err
	}
	if !res.Reachable(dst) {
		return nil, fmt.Errorf("%w: %s→%s", ErrNoRoute, src, dst)
	}

	return res.Path(dst)
}

func (m *Matcher) runTo(ctx context.Context, src, dst string) (*dijkstra.Result, error) {
	if !m.g.HasVertex(dst) {
		return nil, fmt.Errorf("%w: %q", core.ErrVertexNotFound, dst)
	}

	return m.run(ctx, src)
}

// run executes one engine run from src and records it.
func (m *Matcher) run(ctx context.Context, src string) (*dijkstra.Result, error) {
	start := time.Now()
	res, err := dijkstra.Dijkstra(m.g, dijkstra.Source(src), dijkstra.WithContext(ctx))
	metrics.EngineRunDuration.Observe(time.Since(start).Seconds())
	metrics.EngineRuns.WithLabelValues(runStatus(err)).Inc()
	if err != nil {
		m.log.Warn("engine run failed", "source", src, "err", err)
		return nil, err
	}

	return res, nil
}

func runStatus(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, dijkstra.ErrNegativeWeight):
		return "negative_edge"
	default:
		return "error"
	}
}
