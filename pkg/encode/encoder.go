package encode

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/layerlp/layerlp/pkg/lp"
	"github.com/layerlp/layerlp/pkg/sgf"
)

// ErrUnknownObjective is returned by Build when the requested objective is
// not one of the recognized names.
var ErrUnknownObjective = errors.New("unknown objective")

// tolerance loosens the absolute-value stretch constraints so a solution
// sitting exactly on the fold is not rejected by solver rounding.
const tolerance = 1e-9

// Objective selects the quantity a program minimizes.
type Objective string

const (
	Total        Objective = "total"
	Bottleneck   Objective = "bottleneck"
	Stretch      Objective = "stretch"
	BNStretch    Objective = "bn_stretch"
	QuadStretch  Objective = "quad_stretch"
	Vertical     Objective = "vertical"
	BNVertical   Objective = "bn_vertical"
	QuadVertical Objective = "quad_vertical"
)

// Objectives lists the recognized objectives in display order.
func Objectives() []Objective {
	return []Objective{Total, Bottleneck, Stretch, BNStretch, QuadStretch, Vertical, BNVertical, QuadVertical}
}

// ParseObjective maps a user-supplied name to an Objective.
func ParseObjective(name string) (Objective, error) {
	for _, o := range Objectives() {
		if name == string(o) {
			return o, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownObjective)
}

func (o Objective) String() string { return string(o) }

// quadratic reports whether o is minimized as a sum of squares rather than
// through an aggregate scalar.
func (o Objective) quadratic() bool {
	return o == QuadStretch || o == QuadVertical
}

// verticality reports whether o measures position offsets between edge
// endpoints, which requires relaxed (non-contiguous) positions.
func (o Objective) verticality() bool {
	return o == Vertical || o == BNVertical || o == QuadVertical
}

// Options configures Build.
type Options struct {
	Objective Objective

	// Caps bound an aggregate even when the objective lies elsewhere; a set
	// cap forces its defining constraint family into the program.
	TotalCap      *int
	BottleneckCap *int
	StretchCap    *float64
	BNStretchCap  *float64
	VerticalCap   *int
	BNVerticalCap *int

	// Seed, when set, permutes constraint and term order; the same seed
	// always produces the same arrangement.
	Seed *uint64

	// CommandLine is echoed into the program's first header comment.
	CommandLine string

	// Progress, when non-nil, is called after each constraint family with
	// the family name and the running constraint count.
	Progress func(stage string, constraints int)
}

// Build translates a layered graph into a program minimizing opts.Objective.
// The graph must validate: at least one node and no empty layer below the
// topmost populated one.
func Build(g *sgf.Graph, opts Options) (*lp.Program, error) {
	if _, err := ParseObjective(string(opts.Objective)); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("graph %s: %w", g.Name(), err)
	}

	e := &encoder{
		g:    g,
		p:    lp.New(opts.CommandLine),
		opts: opts,
	}
	for _, c := range g.Comments() {
		e.p.AddComment(c)
	}

	e.ordering()
	e.positions()
	e.edgeMarks()

	if e.needCrossings() {
		e.crossings()
	}
	if e.needRawStretch() {
		e.rawStretch()
	}
	if e.needAbsStretch() {
		e.absStretch()
	}

	if opts.Objective == Total || opts.TotalCap != nil {
		e.totalCrossings()
	}
	if opts.Objective == Bottleneck || opts.BottleneckCap != nil {
		e.bottleneckCrossings()
	}
	if opts.Objective == Stretch || opts.StretchCap != nil {
		e.totalStretch()
	}
	if opts.Objective == BNStretch || opts.BNStretchCap != nil {
		e.bottleneckStretch()
	}

	if opts.Objective == Vertical || opts.VerticalCap != nil {
		e.distances()
		e.linearize()
		e.nonverticalities()
		e.degreeBounds()
		e.totalNonverticality()
	}
	if opts.Objective == BNVertical || opts.BNVerticalCap != nil {
		e.distances()
		e.bottleneckVertical()
	}
	if opts.Objective == QuadVertical {
		e.distances()
	}

	e.caps()
	e.objective()

	if opts.Seed != nil {
		seed := *opts.Seed
		e.p.Permute(rand.New(rand.NewPCG(seed, seed^0xdeadbeef)))
	}
	return e.p, nil
}

// encoder accumulates program state across the constraint families.
type encoder struct {
	g    *sgf.Graph
	p    *lp.Program
	opts Options

	crossVars   []lp.Crossing
	rawVars     []lp.RawStretch
	stretchVars []lp.Stretch
	distVars    []lp.Distance
	nonvertVars []lp.Nonvert

	distancesDone bool
}

func (e *encoder) needCrossings() bool {
	return e.opts.Objective == Total || e.opts.Objective == Bottleneck ||
		e.opts.TotalCap != nil || e.opts.BottleneckCap != nil
}

func (e *encoder) needRawStretch() bool {
	return e.needAbsStretch() || e.opts.Objective == QuadStretch
}

func (e *encoder) needAbsStretch() bool {
	return e.opts.Objective == Stretch || e.opts.Objective == BNStretch ||
		e.opts.StretchCap != nil || e.opts.BNStretchCap != nil
}

// relaxedPositions reports whether position variables range over the whole
// widest layer instead of staying contiguous. Verticality needs the slack to
// trade horizontal spread for vertical alignment; a bn_vertical cap alone
// keeps positions contiguous.
func (e *encoder) relaxedPositions() bool {
	return e.opts.Objective.verticality() || e.opts.VerticalCap != nil
}

func (e *encoder) report(stage string) {
	if e.opts.Progress != nil {
		e.opts.Progress(stage, e.p.Len())
	}
}

// caps appends one bound per configured cap, after every family has run.
func (e *encoder) caps() {
	add := func(name string, limit float64) {
		e.p.Add(lp.LE, limit, lp.Plus(lp.Scalar(name)))
	}
	if c := e.opts.TotalCap; c != nil {
		add("total", float64(*c))
	}
	if c := e.opts.BottleneckCap; c != nil {
		add("bottleneck", float64(*c))
	}
	if c := e.opts.StretchCap; c != nil {
		add("stretch", *c)
	}
	if c := e.opts.BNStretchCap; c != nil {
		add("bn_stretch", *c)
	}
	if c := e.opts.VerticalCap; c != nil {
		add("vertical", float64(*c))
	}
	if c := e.opts.BNVerticalCap; c != nil {
		add("bn_vertical", float64(*c))
	}
	e.report("caps")
}

// objective sets the minimization target; the aggregate scalars were
// declared by their defining families.
func (e *encoder) objective() {
	switch e.opts.Objective {
	case QuadStretch:
		vars := make([]lp.Var, len(e.rawVars))
		for i, v := range e.rawVars {
			vars[i] = v
		}
		e.p.MinimizeSquares(vars...)
	case QuadVertical:
		vars := make([]lp.Var, len(e.distVars))
		for i, v := range e.distVars {
			vars[i] = v
		}
		e.p.MinimizeSquares(vars...)
	default:
		e.p.Minimize(lp.Scalar(e.opts.Objective))
	}
}
