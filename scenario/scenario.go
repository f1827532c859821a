// Package scenario reads a simulation scenario: the road graph, the shops of
// each company, and the ordered client calls.
//
// Format (blank lines are ignored, tokens are whitespace-separated):
//
//	<N>
//	<src> [<dst> <cost>]...     N lines, integer costs
//	<count>                     one shop section per configured company,
//	<shop>...                   in order; a single section of unaffiliated
//	                            shops when no company is configured
//	<count>
//	<client> [<company>]...     the calls; a company follows every client
//	                            when companies are configured
//
// Every named shop and client must already appear in the graph section.
package scenario

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/taxisim/core"
	"github.com/katalvlaran/taxisim/simulator"
)

const maxLine = 1 << 20

// Scenario is a parsed simulation input.
type Scenario struct {
	Graph     *core.Graph
	Companies []string // as configured; empty for unaffiliated shops
	Calls     []simulator.Call
}

// Options configures parsing.
type Options struct {
	Companies []string
	Unchecked bool
}

// Option represents a functional option for configuring Parse.
type Option func(*Options)

// WithCompanies names the company of each shop section, in input order.
func WithCompanies(names ...string) Option {
	return func(o *Options) {
		o.Companies = append([]string(nil), names...)
	}
}

// WithUncheckedWeights accepts negative costs and builds the graph with
// core.WithUncheckedWeights, leaving their detection to the engine.
func WithUncheckedWeights() Option {
	return func(o *Options) {
		o.Unchecked = true
	}
}

// ParseFile opens path and parses it.
func ParseFile(path string, opts ...Option) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	defer f.Close()

	return Parse(f, opts...)
}

// Parse reads a scenario from r. Any structural problem fails with a
// *ParseError naming the offending line.
func Parse(r io.Reader, opts ...Option) (*Scenario, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	var gopts []core.GraphOption
	if o.Unchecked {
		gopts = append(gopts, core.WithUncheckedWeights())
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	p := &parser{
		lr:        &lineReader{sc: sc},
		opts:      o,
		g:         core.NewGraph(gopts...),
		companies: make(map[string]string, len(o.Companies)),
	}
	for _, c := range o.Companies {
		p.companies[core.CompanyKey(c)] = c
	}

	if err := p.parse(); err != nil {
		return nil, err
	}

	return &Scenario{Graph: p.g, Companies: append([]string(nil), o.Companies...), Calls: p.calls}, nil
}

type parser struct {
	lr        *lineReader
	opts      Options
	g         *core.Graph
	companies map[string]string // key → configured spelling
	calls     []simulator.Call
}

func (p *parser) parse() error {
	// 1) Graph
	n, err := p.count("vertex count")
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := p.edgeLine(); err != nil {
			return err
		}
	}

	// 2) Shops, one section per company
	sections := p.opts.Companies
	if len(sections) == 0 {
		sections = []string{""}
	}
	for _, company := range sections {
		if err := p.shopSection(company); err != nil {
			return err
		}
	}

	// 3) Calls
	if err := p.callSection(); err != nil {
		return err
	}
	if fields, line, err := p.lr.next(); err == nil {
		return &ParseError{Line: line, Field: "trailing input", Err: fmt.Errorf("%w: unexpected %q", ErrCountMismatch, fields[0])}
	} else if !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// count reads a line holding exactly one non-negative integer.
func (p *parser) count(field string) (int, error) {
	fields, line, err := p.lr.next()
	if err != nil {
		return 0, p.eof(field, err)
	}
	if len(fields) != 1 {
		return 0, &ParseError{Line: line, Field: field, Err: fmt.Errorf("%w: got %d tokens", ErrBadCount, len(fields))}
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0, &ParseError{Line: line, Field: field, Err: fmt.Errorf("%w: %q", ErrBadCount, fields[0])}
	}

	return n, nil
}

func (p *parser) edgeLine() error {
	fields, line, err := p.lr.next()
	if err != nil {
		return p.eof("edges", err)
	}
	src, rest := fields[0], fields[1:]
	if len(rest)%2 != 0 {
		return &ParseError{Line: line, Field: "edges of " + src, Err: fmt.Errorf("%w: %q", ErrDanglingEdge, rest[len(rest)-1])}
	}
	if _, err := p.g.AddVertex(src); err != nil {
		return &ParseError{Line: line, Field: "edges", Err: err}
	}
	for i := 0; i < len(rest); i += 2 {
		dst := rest[i]
		cost, err := strconv.Atoi(rest[i+1])
		if err != nil || (cost < 0 && !p.opts.Unchecked) {
			return &ParseError{Line: line, Field: "edge " + src + "→" + dst, Err: fmt.Errorf("%w: %q", ErrBadCost, rest[i+1])}
		}
		if err := p.g.AddEdge(src, dst, float64(cost)); err != nil {
			return &ParseError{Line: line, Field: "edge " + src + "→" + dst, Err: err}
		}
	}

	return nil
}

func (p *parser) shopSection(company string) error {
	field := "shops"
	if company != "" {
		field = "shops of " + company
	}
	k, err := p.count(field + " count")
	if err != nil {
		return err
	}
	if k == 0 {
		return nil
	}
	fields, line, err := p.lr.next()
	if err != nil {
		return p.eof(field, err)
	}
	if len(fields) != k {
		return &ParseError{Line: line, Field: field, Err: fmt.Errorf("%w: header says %d, line has %d", ErrCountMismatch, k, len(fields))}
	}
	for _, id := range fields {
		if err := p.assign(id, core.Shop(company)); err != nil {
			return &ParseError{Line: line, Field: field, Err: err}
		}
	}

	return nil
}

// callSection reads the call count and then as many lines as it takes to
// collect that many calls.
func (p *parser) callSection() error {
	k, err := p.count("call count")
	if err != nil {
		return err
	}
	perCall := 1
	if len(p.opts.Companies) > 0 {
		perCall = 2
	}

	p.calls = make([]simulator.Call, 0, k)
	var pending []string
	for len(p.calls) < k {
		fields, line, err := p.lr.next()
		if err != nil {
			return p.eof("calls", err)
		}
		pending = append(pending, fields...)
		for len(pending) >= perCall && len(p.calls) < k {
			call, err := p.call(pending[:perCall])
			if err != nil {
				return &ParseError{Line: line, Field: "calls", Err: err}
			}
			p.calls = append(p.calls, call)
			pending = pending[perCall:]
		}
		if len(p.calls) == k && len(pending) > 0 {
			return &ParseError{Line: line, Field: "calls", Err: fmt.Errorf("%w: header says %d calls, %d tokens left over", ErrCountMismatch, k, len(pending))}
		}
	}

	return nil
}

func (p *parser) call(tokens []string) (simulator.Call, error) {
	call := simulator.Call{Client: tokens[0]}
	if len(tokens) > 1 {
		name, ok := p.companies[core.CompanyKey(tokens[1])]
		if !ok {
			return call, fmt.Errorf("%w: %q", ErrUnknownCompany, tokens[1])
		}
		call.Company = name
	}
	if err := p.assign(call.Client, core.Client()); err != nil {
		return call, err
	}

	return call, nil
}

// assign tags an existing vertex with role. Re-tagging with an equal role
// is allowed since one client may call repeatedly.
func (p *parser) assign(id string, role core.Role) error {
	v, err := p.g.Vertex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}
	if v.Role.Kind != core.RoleNone && v.Role != role {
		return fmt.Errorf("%w: %q is %s, not %s", ErrRoleConflict, id, v.Role, role)
	}

	return p.g.SetRole(id, role)
}

func (p *parser) eof(field string, err error) error {
	if errors.Is(err, io.EOF) {
		return &ParseError{Line: p.lr.line, Field: field, Err: ErrUnexpectedEOF}
	}
	return err
}

// lineReader yields the fields of successive non-blank lines.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (l *lineReader) next() ([]string, int, error) {
	for l.sc.Scan() {
		l.line++
		if fields := strings.Fields(l.sc.Text()); len(fields) > 0 {
			return fields, l.line, nil
		}
	}
	if err := l.sc.Err(); err != nil {
		return nil, l.line, fmt.Errorf("scenario: read line %d: %w", l.line+1, err)
	}

	return nil, l.line, io.EOF
}
