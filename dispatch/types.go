package dispatch

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/taxisim/dijkstra"
	"github.com/katalvlaran/taxisim/logging"
)

// Sentinel errors returned by the matcher.
var (
	// ErrNilGraph indicates that NewMatcher was given a nil graph.
	ErrNilGraph = errors.New("dispatch: graph is nil")

	// ErrNilSelector indicates that NearestMatching was given a nil Selector.
	ErrNilSelector = errors.New("dispatch: selector is nil")

	// ErrBadDirection indicates a Direction other than ToClient or FromClient.
	ErrBadDirection = errors.New("dispatch: unknown direction")

	// ErrNoRoute indicates that DescribePath found no route between two vertices.
	// It wraps dijkstra.ErrUnreachable.
	ErrNoRoute = fmt.Errorf("dispatch: no route: %w", dijkstra.ErrUnreachable)
)

// Direction says which way a matched trip runs. Edges are directed, so the
// cost from a candidate to the client generally differs from the reverse.
type Direction int

const (
	// ToClient measures candidate → client; the engine runs from the candidate.
	ToClient Direction = iota
	// FromClient measures client → candidate; the engine runs from the client.
	FromClient
)

func (d Direction) String() string {
	switch d {
	case ToClient:
		return "to_client"
	case FromClient:
		return "from_client"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Candidate is one member of a match result set.
type Candidate struct {
	ID   string
	Cost float64
	// Tied is the engine's tie flag on the matched endpoint: more than one
	// route achieves Cost, so no single path describes the trip.
	Tied bool
	// Path is the route in travel order (candidate first for ToClient,
	// client first for FromClient). Nil when Tied.
	Path []string
}

// Match is the set of candidates at minimum cost for one client.
type Match struct {
	Client     string
	Direction  Direction
	Cost       float64 // math.Inf(1) when Empty
	Candidates []Candidate
	Tied       bool // any candidate is Tied
}

// Empty reports whether no candidate could reach (or be reached from) the client.
func (m Match) Empty() bool { return len(m.Candidates) == 0 }

// IDs returns the candidate IDs in result order.
func (m Match) IDs() []string {
	ids := make([]string, len(m.Candidates))
	for i, c := range m.Candidates {
		ids[i] = c.ID
	}

	return ids
}

func emptyMatch(client string, dir Direction) Match {
	return Match{Client: client, Direction: dir, Cost: math.Inf(1)}
}

// Options configures a Matcher.
type Options struct {
	Logger *slog.Logger // debug-level trace of every match; discarded by default
}

// Option represents a functional option for configuring a Matcher.
type Option func(*Options)

// WithLogger routes matcher diagnostics to log. A nil log is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(o *Options) {
		if log != nil {
			o.Logger = log
		}
	}
}

// DefaultOptions returns Options with a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: logging.Discard()}
}
