package simulator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/taxisim/simulator"
)

func draws(d simulator.Decider, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = d.Accept(simulator.Call{Client: "C"})
	}
	return out
}

func TestRandomDecider_SeedIsReproducible(t *testing.T) {
	a := draws(simulator.NewRandomDecider(42, 0.3), 200)
	b := draws(simulator.NewRandomDecider(42, 0.3), 200)
	assert.Equal(t, a, b)

	declined := 0
	for _, ok := range a {
		if !ok {
			declined++
		}
	}
	// 200 draws at 30%: well inside [20, 100].
	assert.Greater(t, declined, 20)
	assert.Less(t, declined, 100)
}

func TestRandomDecider_Bounds(t *testing.T) {
	for _, ok := range draws(simulator.NewRandomDecider(1, 0), 100) {
		assert.True(t, ok)
	}
	for _, ok := range draws(simulator.NewRandomDecider(1, 1), 100) {
		assert.False(t, ok)
	}
	for _, ok := range draws(simulator.NewRandomDecider(1, 7), 10) {
		assert.False(t, ok, "probability above 1 clamps to always decline")
	}
	for _, ok := range draws(simulator.NewRandomDecider(1, -2), 10) {
		assert.True(t, ok, "negative probability clamps to never decline")
	}
}

func TestFixedDeciders(t *testing.T) {
	assert.True(t, simulator.AlwaysAccept{}.Accept(simulator.Call{}))
	assert.False(t, simulator.AlwaysDecline{}.Accept(simulator.Call{}))
	assert.True(t, simulator.DeciderFunc(func(c simulator.Call) bool { return c.Company == "QnQ" }).
		Accept(simulator.Call{Company: "QnQ"}))
}
