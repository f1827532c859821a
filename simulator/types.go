package simulator

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/taxisim/dispatch"
	"github.com/katalvlaran/taxisim/fare"
	"github.com/katalvlaran/taxisim/logging"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates that New was given a nil graph.
	ErrNilGraph = errors.New("simulator: graph is nil")

	// ErrEmptyClient indicates a Call without a client ID.
	ErrEmptyClient = errors.New("simulator: call has no client")
)

// Call is one client's request for a taxi, optionally restricted to the
// taxis and shops of one company.
type Call struct {
	Client  string
	Company string // "" = any company, priced with the default tariff
}

func (c Call) String() string {
	if c.Company == "" {
		return c.Client
	}
	return c.Client + "@" + c.Company
}

// Config is the fixed input of a simulation.
type Config struct {
	Calls    []Call
	Tariffs  *fare.Tariffs // nil = fare.DefaultTariffs()
	Currency string        // "" = "R"
}

// Outcome classifies how a call ended.
type Outcome string

const (
	Served   Outcome = "served"   // taxi accepted; paths and fare reported
	Declined Outcome = "declined" // taxi driver declined the call
	Unserved Outcome = "unserved" // no reachable taxi or no reachable shop
)

// Report is everything the simulator decided for one call.
// Taxis and Shops are the raw match results; Lines is the printable account.
type Report struct {
	CallID  uuid.UUID
	Call    Call
	Outcome Outcome
	Taxis   dispatch.Match
	Shops   dispatch.Match
	Fare    float64 // zero unless Served
	Lines   []string
}

// WriteTo writes Lines, one per line, to w.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	for _, l := range r.Lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	n, err := io.WriteString(w, sb.String())
	if err != nil {
		return int64(n), fmt.Errorf("simulator: write report %s: %w", r.CallID, err)
	}

	return int64(n), nil
}

// Options configures a Simulator.
type Options struct {
	Decider     Decider
	Logger      *slog.Logger
	CallTimeout time.Duration // 0 = no per-call deadline
}

// Option represents a functional option for configuring a Simulator.
type Option func(*Options)

// WithDecider sets the accept/decline source. A nil d is ignored.
func WithDecider(d Decider) Option {
	return func(o *Options) {
		if d != nil {
			o.Decider = d
		}
	}
}

// WithLogger routes per-call logs to log. A nil log is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(o *Options) {
		if log != nil {
			o.Logger = log
		}
	}
}

// WithCallTimeout bounds the matching work of each call. Non-positive d disables it.
func WithCallTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.CallTimeout = d
		}
	}
}

// DefaultOptions returns Options with a 30% random decline rate seeded from
// the clock and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Decider: NewRandomDecider(0, DefaultDeclineProbability),
		Logger:  logging.Discard(),
	}
}
