// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/taxisim/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls
// are safe and all neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200 // number of concurrent adds
	var wg sync.WaitGroup
	wg.Add(num)

	// Launch num goroutines to add edges from X to V{i}
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge("X", fmt.Sprintf("V%d", id), float64(id)))
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num, "expected %d neighbors", num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentRolesAndReads mixes SetRole writers with index and adjacency
// readers to verify no races or panics occur.
func TestConcurrentRolesAndReads(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddEdge("Hub", fmt.Sprintf("V%d", i), 1))
	}

	const rounds = 50
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			role := core.Shop("QnQ")
			if id%2 == 1 {
				role = core.Client()
			}
			_ = g.SetRole(fmt.Sprintf("V%d", id), role)
		}(i)

		go func() {
			defer wg.Done()
			_ = g.Shops("QnQ")
			_ = g.Clients()
			_, _ = g.Neighbors("Hub")
			_ = g.Stats()
		}()
	}
	wg.Wait()

	require.Len(t, g.Shops("qnq"), rounds/2)
	require.Len(t, g.Clients(), rounds/2)
}
