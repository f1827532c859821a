// Package fare prices a served client call.
//
// A call pays the company's booking fee, a pickup-rate fraction of the
// taxi's route cost to the client, and the full route cost from the client
// to the shop. Tariffs are looked up by company name, case-insensitively;
// calls with no company use the default tariff.
package fare

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
)

// Sentinel errors.
var (
	// ErrUnknownCompany indicates that no tariff is registered for a company.
	ErrUnknownCompany = errors.New("fare: unknown company")

	// ErrBadTariff indicates a negative or non-finite fee, or a rate outside [0,1].
	ErrBadTariff = errors.New("fare: invalid tariff")
)

// Tariff is one company's pricing.
type Tariff struct {
	BookingFee float64 // flat amount charged per fare
	PickupRate float64 // fraction of the pickup cost charged, in [0,1]
}

// Validate reports ErrBadTariff for a negative or non-finite booking fee
// or a pickup rate outside [0,1].
func (t Tariff) Validate() error {
	if !(t.BookingFee >= 0) || math.IsInf(t.BookingFee, 1) {
		return fmt.Errorf("%w: booking fee %v", ErrBadTariff, t.BookingFee)
	}
	if !(t.PickupRate >= 0 && t.PickupRate <= 1) {
		return fmt.Errorf("%w: pickup rate %v not in [0,1]", ErrBadTariff, t.PickupRate)
	}

	return nil
}

// Fare returns the amount due for one (taxi, shop) pairing.
//
//	fare = BookingFee + PickupRate*pickupCost + dropoffCost
//
// pickupCost is the taxi→client route cost and dropoffCost the
// client→shop route cost.
func Fare(pickupCost, dropoffCost float64, t Tariff) float64 {
	return t.BookingFee + t.PickupRate*pickupCost + dropoffCost
}

// Leg is the pair of route costs of one (taxi, shop) pairing.
type Leg struct {
	Pickup  float64
	Dropoff float64
}

// Total sums Fare over every leg under the same tariff.
func Total(legs []Leg, t Tariff) float64 {
	var sum float64
	for _, l := range legs {
		sum += Fare(l.Pickup, l.Dropoff, t)
	}

	return sum
}

// Tariffs maps company names to tariffs, case-insensitively.
// It is safe for concurrent use.
type Tariffs struct {
	mu    sync.RWMutex
	def   Tariff
	byKey map[string]Tariff
	names map[string]string // key → spelling as first registered
}

// NewTariffs returns an empty table whose default tariff is def.
func NewTariffs(def Tariff) *Tariffs {
	return &Tariffs{
		def:   def,
		byKey: make(map[string]Tariff),
		names: make(map[string]string),
	}
}

// DefaultTariffs returns the QnQ and Shopify tariffs; the default tariff
// matches QnQ.
func DefaultTariffs() *Tariffs {
	t := NewTariffs(Tariff{BookingFee: 14.50, PickupRate: 0.20})
	t.Set("QnQ", Tariff{BookingFee: 14.50, PickupRate: 0.20})
	t.Set("Shopify", Tariff{BookingFee: 16.00, PickupRate: 0.15})

	return t
}

func key(company string) string { return strings.ToLower(strings.TrimSpace(company)) }

// Set registers or replaces the tariff for company.
func (t *Tariffs) Set(company string, tariff Tariff) {
	k := key(company)
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.names[k]; !ok {
		t.names[k] = strings.TrimSpace(company)
	}
	t.byKey[k] = tariff
}

// Lookup returns the tariff for company. An empty company yields the
// default tariff; an unregistered one yields ErrUnknownCompany.
func (t *Tariffs) Lookup(company string) (Tariff, error) {
	k := key(company)
	t.mu.RLock()
	defer t.mu.RUnlock()
	if k == "" {
		return t.def, nil
	}
	tariff, ok := t.byKey[k]
	if !ok {
		return Tariff{}, fmt.Errorf("%w: %q", ErrUnknownCompany, company)
	}

	return tariff, nil
}

// Default returns the tariff used for calls without a company.
func (t *Tariffs) Default() Tariff {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.def
}

// Companies returns the registered company names, sorted.
func (t *Tariffs) Companies() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.names))
	for _, n := range t.names {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}
