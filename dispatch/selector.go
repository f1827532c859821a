package dispatch

import "github.com/katalvlaran/taxisim/core"

// Selector yields the candidate vertex IDs a match is taken over,
// in a deterministic order.
type Selector interface {
	Candidates(g *core.Graph) []string
}

// SelectorFunc adapts a function to the Selector interface.
type SelectorFunc func(g *core.Graph) []string

// Candidates calls f(g).
func (f SelectorFunc) Candidates(g *core.Graph) []string { return f(g) }

// ShopsOf selects the shops of company from the graph's role index.
// An empty company selects every shop.
func ShopsOf(company string) Selector {
	return SelectorFunc(func(g *core.Graph) []string { return g.Shops(company) })
}

// Clients selects every client from the graph's role index.
func Clients() Selector {
	return SelectorFunc(func(g *core.Graph) []string { return g.Clients() })
}

// Where selects every vertex satisfying pred, scanning the whole graph.
// pred receives a copy of each vertex.
func Where(pred func(v *core.Vertex) bool) Selector {
	return SelectorFunc(func(g *core.Graph) []string {
		var out []string
		for _, id := range g.Vertices() {
			v, err := g.Vertex(id)
			if err != nil {
				continue
			}
			cp := *v
			if pred(&cp) {
				out = append(out, id)
			}
		}

		return out
	})
}
