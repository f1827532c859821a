package scenario_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/taxisim/core"
	"github.com/katalvlaran/taxisim/scenario"
	"github.com/katalvlaran/taxisim/simulator"
)

func TestParseFile_TwoCompanies(t *testing.T) {
	sc, err := scenario.ParseFile(filepath.Join("testdata", "two_companies.txt"), scenario.WithCompanies("QnQ", "Shopify"))
	require.NoError(t, err)

	g := sc.Graph
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 8, g.EdgeCount())
	assert.True(t, g.HasEdge("0", "2"))
	assert.Equal(t, []string{"0"}, g.Shops("qnq"))
	assert.Equal(t, []string{"5"}, g.Shops("Shopify"))
	assert.Equal(t, []string{"3", "4"}, g.Clients())
	assert.Equal(t, []string{"QnQ", "Shopify"}, sc.Companies)
	assert.Equal(t, []simulator.Call{
		{Client: "3", Company: "QnQ"},
		{Client: "4", Company: "Shopify"},
		{Client: "3", Company: "Shopify"},
	}, sc.Calls)
}

func TestParseFile_Unaffiliated(t *testing.T) {
	sc, err := scenario.ParseFile(filepath.Join("testdata", "unaffiliated.txt"))
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, sc.Graph.Shops(""))
	assert.Equal(t, []simulator.Call{{Client: "D"}, {Client: "C"}}, sc.Calls)
	v, err := sc.Graph.Vertex("A")
	require.NoError(t, err)
	assert.Equal(t, core.Shop(""), v.Role)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := scenario.ParseFile(filepath.Join(t.TempDir(), "none.txt"))
	assert.Error(t, err)
}

func TestParse_CallsAcrossLines(t *testing.T) {
	in := "2\nA B 1\nB A 1\n1\nA\n3\nB\nB\n\nB\n"
	sc, err := scenario.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Len(t, sc.Calls, 3)
}

func TestParse_ZeroShops(t *testing.T) {
	in := "1\nA\n0\n1\nA\n"
	sc, err := scenario.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Empty(t, sc.Graph.Shops(""))
	assert.Equal(t, []string{"A"}, sc.Graph.Clients())
}

func TestParse_UncheckedWeights(t *testing.T) {
	in := "2\nA B -3\nB\n1\nA\n1\nB\n"
	_, err := scenario.Parse(strings.NewReader(in))
	assert.ErrorIs(t, err, scenario.ErrBadCost)

	sc, err := scenario.Parse(strings.NewReader(in), scenario.WithUncheckedWeights())
	require.NoError(t, err)
	assert.True(t, sc.Graph.Stats().Unchecked)
	assert.True(t, sc.Graph.HasEdge("A", "B"))
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		opts  []scenario.Option
		want  error
		line  int
		field string
	}{
		{"empty", "", nil, scenario.ErrUnexpectedEOF, 0, "vertex count"},
		{"bad vertex count", "two\n", nil, scenario.ErrBadCount, 1, "vertex count"},
		{"negative count", "-1\n", nil, scenario.ErrBadCount, 1, "vertex count"},
		{"two tokens count", "1 2\n", nil, scenario.ErrBadCount, 1, "vertex count"},
		{"too few edge lines", "3\nA B 1\nB\n", nil, scenario.ErrUnexpectedEOF, 3, "edges"},
		{"dangling edge", "1\nA B 1 C\n", nil, scenario.ErrDanglingEdge, 2, "edges of A"},
		{"bad cost", "1\nA B x\n", nil, scenario.ErrBadCost, 2, "edge A→B"},
		{"fractional cost", "1\nA B 1.5\n", nil, scenario.ErrBadCost, 2, "edge A→B"},
		{"shop count mismatch", "1\nA\n2\nA\n", nil, scenario.ErrCountMismatch, 4, "shops"},
		{"unknown shop", "1\nA\n1\nZ\n", nil, scenario.ErrUnknownVertex, 4, "shops"},
		{"missing shop line", "1\nA\n1\n", nil, scenario.ErrUnexpectedEOF, 3, "shops"},
		{"unknown client", "1\nA\n1\nA\n1\nZ\n", nil, scenario.ErrUnknownVertex, 6, "calls"},
		{"too few calls", "2\nA\nB\n1\nA\n2\nB\n", nil, scenario.ErrUnexpectedEOF, 7, "calls"},
		{"too many calls", "2\nA\nB\n1\nA\n1\nB B\n", nil, scenario.ErrCountMismatch, 7, "calls"},
		{"trailing", "2\nA\nB\n1\nA\n1\nB\nextra\n", nil, scenario.ErrCountMismatch, 8, "trailing input"},
		{"shop is client", "1\nA\n1\nA\n1\nA\n", nil, scenario.ErrRoleConflict, 6, "calls"},
		{"unknown company", "2\nA\nB\n1\nA\n1\nB Checkers\n", []scenario.Option{scenario.WithCompanies("QnQ")},
			scenario.ErrUnknownCompany, 7, "calls"},
		{"shop in two companies", "1\nA\n1\nA\n1\nA\n0\n", []scenario.Option{scenario.WithCompanies("QnQ", "Shopify")},
			scenario.ErrRoleConflict, 6, "shops of Shopify"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Parse(strings.NewReader(tc.in), tc.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)

			var pe *scenario.ParseError
			require.True(t, errors.As(err, &pe), "want *ParseError, got %T", err)
			assert.Equal(t, tc.line, pe.Line)
			assert.Equal(t, tc.field, pe.Field)
		})
	}
}

func TestParseError_Message(t *testing.T) {
	err := &scenario.ParseError{Line: 4, Field: "shops", Err: scenario.ErrCountMismatch}
	assert.Equal(t, "scenario: line 4: shops: scenario: item count does not match its header", err.Error())

	err = &scenario.ParseError{Field: "vertex count", Err: scenario.ErrUnexpectedEOF}
	assert.Equal(t, "scenario: vertex count: scenario: unexpected end of input", err.Error())
}
