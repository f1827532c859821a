package simulator

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// DefaultDeclineProbability is the chance a taxi driver declines a call.
const DefaultDeclineProbability = 0.3

// Decider decides whether the matched taxi driver accepts a call.
type Decider interface {
	Accept(call Call) bool
}

// DeciderFunc adapts a function to the Decider interface.
type DeciderFunc func(call Call) bool

// Accept calls f(call).
func (f DeciderFunc) Accept(call Call) bool { return f(call) }

// AlwaysAccept is a Decider whose drivers accept every call.
type AlwaysAccept struct{}

// Accept returns true.
func (AlwaysAccept) Accept(Call) bool { return true }

// AlwaysDecline is a Decider whose drivers decline every call.
type AlwaysDecline struct{}

// Accept returns false.
func (AlwaysDecline) Accept(Call) bool { return false }

// RandomDecider declines each call independently with a fixed probability.
// It is safe for concurrent use.
type RandomDecider struct {
	mu      sync.Mutex
	rng     *rand.Rand
	decline float64
}

// NewRandomDecider returns a RandomDecider declining with probability
// declineProb, clamped to [0,1]. Seed 0 seeds from the clock; any other
// seed makes the sequence of decisions reproducible.
func NewRandomDecider(seed int64, declineProb float64) *RandomDecider {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	switch {
	case declineProb < 0 || math.IsNaN(declineProb):
		declineProb = 0
	case declineProb > 1:
		declineProb = 1
	}

	return &RandomDecider{rng: rand.New(rand.NewSource(seed)), decline: declineProb}
}

// Accept draws once; calls are accepted when the draw is at least the
// decline probability.
func (d *RandomDecider) Accept(Call) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.Float64() >= d.decline
}
