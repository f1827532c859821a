package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/taxisim/core"
)

// buildRoleGraph returns a line 0→1→2→3→4 with two QnQ shops, one Shopify shop
// and one unaffiliated shop.
func buildRoleGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}, {"3", "4"}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}
	require.NoError(t, g.SetRole("0", core.Shop("QnQ")))
	require.NoError(t, g.SetRole("2", core.Shop("qnq")))
	require.NoError(t, g.SetRole("3", core.Shop("Shopify")))
	require.NoError(t, g.SetRole("4", core.Shop("")))
	require.NoError(t, g.SetRole("1", core.Client()))

	return g
}

func TestShopsIndexIsCaseInsensitive(t *testing.T) {
	g := buildRoleGraph(t)

	assert.Equal(t, []string{"0", "2"}, g.Shops("QNQ"))
	assert.Equal(t, []string{"3"}, g.Shops("shopify"))
	assert.Equal(t, []string{"0", "2", "3", "4"}, g.Shops(""), "empty company lists every shop")
	assert.Empty(t, g.Shops("Checkers"))
	assert.Equal(t, []string{"1"}, g.Clients())
	assert.Equal(t, []string{"QnQ", "Shopify"}, g.Companies())
}

func TestSetRoleReindexes(t *testing.T) {
	g := buildRoleGraph(t)

	// Shop → client moves the vertex between indices.
	require.NoError(t, g.SetRole("3", core.Client()))
	assert.Empty(t, g.Shops("Shopify"))
	assert.Equal(t, []string{"1", "3"}, g.Clients())
	assert.Equal(t, []string{"QnQ"}, g.Companies(), "companies without shops are not listed")

	// Company change.
	require.NoError(t, g.SetRole("0", core.Shop("Shopify")))
	assert.Equal(t, []string{"2"}, g.Shops("QnQ"))
	assert.Equal(t, []string{"0"}, g.Shops("Shopify"))

	// Back to none.
	require.NoError(t, g.SetRole("1", core.None()))
	assert.Equal(t, []string{"3"}, g.Clients())

	assert.ErrorIs(t, g.SetRole("missing", core.Client()), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.SetRole("", core.Client()), core.ErrEmptyVertexID)
}

func TestRolePredicates(t *testing.T) {
	cases := []struct {
		role    core.Role
		company string
		shopOf  bool
		str     string
	}{
		{core.None(), "", false, "none"},
		{core.Client(), "", false, "client"},
		{core.Shop(""), "", true, "shop"},
		{core.Shop(""), "QnQ", false, "shop"},
		{core.Shop("QnQ"), "qnq", true, "shop(QnQ)"},
		{core.Shop("QnQ"), "", true, "shop(QnQ)"},
		{core.Shop("QnQ"), "Shopify", false, "shop(QnQ)"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.shopOf, tc.role.ShopOf(tc.company), "%s.ShopOf(%q)", tc.role, tc.company)
		assert.Equal(t, tc.str, tc.role.String())
	}
	assert.Equal(t, "RoleKind(9)", core.RoleKind(9).String())
}
