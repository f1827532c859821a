package simulator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/taxisim/core"
	"github.com/katalvlaran/taxisim/dispatch"
	"github.com/katalvlaran/taxisim/fare"
	"github.com/katalvlaran/taxisim/metrics"
)

// Report line texts.
const (
	lineCannotHelp = "cannot be helped"
	lineDeclined   = "taxi driver declined the call"
)

// Simulator plays client calls against a graph: it finds the nearest taxis
// and shops, asks a Decider whether the driver takes the call, and prices
// the trip.
type Simulator struct {
	cfg     Config
	matcher *dispatch.Matcher
	decider Decider
	log     *slog.Logger
	timeout time.Duration
}

// New returns a Simulator over g. cfg is copied; later changes to the
// caller's slice do not affect the simulation.
func New(g *core.Graph, cfg Config, opts ...Option) (*Simulator, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	m, err := dispatch.NewMatcher(g, dispatch.WithLogger(o.Logger))
	if err != nil {
		return nil, err
	}

	cfg.Calls = append([]Call(nil), cfg.Calls...)
	if cfg.Tariffs == nil {
		cfg.Tariffs = fare.DefaultTariffs()
	}
	if cfg.Currency == "" {
		cfg.Currency = "R"
	}

	return &Simulator{cfg: cfg, matcher: m, decider: o.Decider, log: o.Logger, timeout: o.CallTimeout}, nil
}

// Calls returns a copy of the configured calls.
func (s *Simulator) Calls() []Call { return append([]Call(nil), s.cfg.Calls...) }

// Run simulates every configured call in order, writing each report to w as
// soon as it is complete. It stops at the first failing call and returns
// the reports finished so far.
func (s *Simulator) Run(ctx context.Context, w io.Writer) ([]*Report, error) {
	reports := make([]*Report, 0, len(s.cfg.Calls))
	for _, call := range s.cfg.Calls {
		r, err := s.Simulate(ctx, call)
		if err != nil {
			return reports, err
		}
		reports = append(reports, r)
		if w != nil {
			if _, err := r.WriteTo(w); err != nil {
				return reports, err
			}
		}
	}

	return reports, nil
}

// Simulate processes a single call.
//
// Steps:
//  1. Match the nearest taxis (taxi → client) and shops (client → shop)
//     among the shops of the call's company, or all shops without one.
//  2. Either set empty: the call cannot be helped.
//  3. The driver may decline; nothing more is reported then.
//  4. Report each taxi's path to the client, or only its cost when tied.
//  5. Same for each shop, from the client.
//  6. Sum the fare over every (taxi, shop) pair.
//
// Errors (unknown client, unknown company tariff, engine failures,
// cancellation) leave no report and count as a failed call.
func (s *Simulator) Simulate(ctx context.Context, call Call) (*Report, error) {
	r := &Report{CallID: uuid.New(), Call: call}
	log := s.log.With("call_id", r.CallID.String(), "client", call.Client, "company", call.Company)

	if err := s.simulate(ctx, call, r); err != nil {
		metrics.CallsTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		log.Error("call failed", "err", err)
		return nil, fmt.Errorf("simulator: call %s: %w", call, err)
	}

	metrics.CallsTotal.WithLabelValues(string(r.Outcome)).Inc()
	if r.Outcome == Served {
		metrics.FareAmount.Observe(r.Fare)
	}
	log.Info("call processed",
		"outcome", string(r.Outcome),
		"taxis", r.Taxis.IDs(),
		"shops", r.Shops.IDs(),
		"fare", r.Fare)

	return r, nil
}

func (s *Simulator) simulate(ctx context.Context, call Call, r *Report) error {
	if call.Client == "" {
		return ErrEmptyClient
	}
	tariff, err := s.cfg.Tariffs.Lookup(call.Company)
	if err != nil {
		return err
	}
	if d := s.timeout; d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	r.Lines = append(r.Lines, "client "+call.Client)
	if call.Company != "" {
		r.Lines = append(r.Lines, "company "+strings.ToLower(call.Company))
	}

	// 1) Nearest taxis and shops of the company
	sel := dispatch.ShopsOf(call.Company)
	if r.Taxis, err = s.matcher.NearestMatching(ctx, sel, call.Client, dispatch.ToClient); err != nil {
		return err
	}
	if r.Shops, err = s.matcher.NearestMatching(ctx, sel, call.Client, dispatch.FromClient); err != nil {
		return err
	}

	// 2) Nobody can reach the client, or the client can reach no shop
	if r.Taxis.Empty() || r.Shops.Empty() {
		r.Outcome = Unserved
		r.Lines = append(r.Lines, lineCannotHelp)
		return nil
	}

	// 3) Driver decision
	if !s.decider.Accept(call) {
		r.Outcome = Declined
		r.Lines = append(r.Lines, lineDeclined)
		return nil
	}

	// 4-5) Routes
	for _, t := range r.Taxis.Candidates {
		r.Lines = append(r.Lines, "taxi "+t.ID, routeLine(t))
	}
	for _, sh := range r.Shops.Candidates {
		r.Lines = append(r.Lines, "shop "+sh.ID, routeLine(sh))
	}

	// 6) Fare over the cross product
	legs := make([]fare.Leg, 0, len(r.Taxis.Candidates)*len(r.Shops.Candidates))
	for _, t := range r.Taxis.Candidates {
		for _, sh := range r.Shops.Candidates {
			legs = append(legs, fare.Leg{Pickup: t.Cost, Dropoff: sh.Cost})
		}
	}
	r.Fare = fare.Total(legs, tariff)
	r.Outcome = Served
	r.Lines = append(r.Lines, fmt.Sprintf("amount due for this client is %s%.2f", s.cfg.Currency, r.Fare))

	return nil
}

// routeLine is the path in travel order, or the cost alone when the route is tied.
func routeLine(c dispatch.Candidate) string {
	if c.Tied {
		return fmt.Sprintf("multiple solutions cost %.0f", c.Cost)
	}
	return strings.Join(c.Path, " ")
}
