package lp

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

var (
	// ErrNoObjective is returned by Write when neither Minimize nor
	// MinimizeSquares was called.
	ErrNoObjective = errors.New("no objective set")
	// ErrUndeclaredVariable is returned by Write when a constraint or the
	// objective references a variable missing from every section.
	ErrUndeclaredVariable = errors.New("undeclared variable")
	// ErrRedeclaredVariable is returned by Write when a variable is declared
	// in more than one section.
	ErrRedeclaredVariable = errors.New("variable declared in multiple sections")
)

// Rel is a constraint relation.
type Rel string

const (
	LE Rel = "<="
	GE Rel = ">="
	EQ Rel = "="
)

// Term is one signed coefficient-variable pair on a constraint's left side.
type Term struct {
	Coef float64
	Var  Var
}

// Plus returns the term +v.
func Plus(v Var) Term { return Term{Coef: 1, Var: v} }

// Minus returns the term -v.
func Minus(v Var) Term { return Term{Coef: -1, Var: v} }

// Weighted returns the term c*v.
func Weighted(c float64, v Var) Term { return Term{Coef: c, Var: v} }

// Constraint is a left-hand term sum related to a right-hand constant.
type Constraint struct {
	Terms []Term
	Rel   Rel
	RHS   float64
}

// bucket is an insertion-ordered set of variables, deduplicated by name.
type bucket struct {
	order []Var
	seen  map[string]struct{}
}

func newBucket() *bucket {
	return &bucket{seen: make(map[string]struct{})}
}

func (b *bucket) add(v Var) {
	name := v.Name()
	if _, ok := b.seen[name]; ok {
		return
	}
	b.seen[name] = struct{}{}
	b.order = append(b.order, v)
}

func (b *bucket) names() []string {
	names := make([]string, len(b.order))
	for i, v := range b.order {
		names[i] = v.Name()
	}
	return names
}

// Program is an integer linear or quadratic program assembled constraint by
// constraint and serialized in CPLEX LP format. The zero value is not usable;
// call New.
type Program struct {
	commandLine string
	stamp       time.Time
	comments    []string

	objective Var   // linear objective; nil when quadratic
	quadratic []Var // squared variables of a quadratic objective

	constraints []Constraint

	binary  *bucket
	general *bucket
	nonvert *bucket
	semi    *bucket
	bounded *bucket
}

// New returns an empty program stamped with the current UTC time. The command
// line appears verbatim in the first header comment.
func New(commandLine string) *Program {
	return &Program{
		commandLine: commandLine,
		stamp:       time.Now().UTC(),
		binary:      newBucket(),
		general:     newBucket(),
		nonvert:     newBucket(),
		semi:        newBucket(),
		bounded:     newBucket(),
	}
}

// SetTimestamp overrides the header timestamp, making output reproducible.
func (p *Program) SetTimestamp(t time.Time) { p.stamp = t.UTC() }

// AddComment carries a source-graph comment into the LP header.
func (p *Program) AddComment(text string) {
	p.comments = append(p.comments, text)
}

// DeclareBinary declares v in the Binary section. Declaring the same name
// again is a no-op.
func (p *Program) DeclareBinary(v Var) { p.binary.add(v) }

// DeclareGeneral declares v in the General (integer) section.
func (p *Program) DeclareGeneral(v Var) { p.general.add(v) }

// DeclareNonvert declares v in the nonverticality group, an integer group
// rendered as a second line of the General section.
func (p *Program) DeclareNonvert(v Var) { p.nonvert.add(v) }

// DeclareSemi declares v in the Semi (semi-continuous) section.
func (p *Program) DeclareSemi(v Var) { p.semi.add(v) }

// DeclareBounded declares v as a continuous variable ranged [-1, 1] through
// the Bounds section.
func (p *Program) DeclareBounded(v Var) { p.bounded.add(v) }

// Minimize sets a linear objective. The variable must also be declared in
// the section matching its family.
func (p *Program) Minimize(v Var) {
	p.objective = v
	p.quadratic = nil
}

// MinimizeSquares sets a quadratic objective minimizing the sum of squares
// of vars.
func (p *Program) MinimizeSquares(vars ...Var) {
	p.objective = nil
	p.quadratic = vars
}

// Add appends the constraint sum(terms) rel rhs.
func (p *Program) Add(rel Rel, rhs float64, terms ...Term) {
	p.constraints = append(p.constraints, Constraint{Terms: terms, Rel: rel, RHS: rhs})
}

// Len reports the number of constraints added so far.
func (p *Program) Len() int { return len(p.constraints) }

// Counts summarizes a program for display: declared variables per section
// and the number of constraints. The nonverticality group counts toward
// Integer since it renders inside the General section.
type Counts struct {
	Binary      int
	Integer     int
	SemiCont    int
	Bounded     int
	Constraints int
}

// Counts returns the program's declaration and constraint counts.
func (p *Program) Counts() Counts {
	return Counts{
		Binary:      len(p.binary.order),
		Integer:     len(p.general.order) + len(p.nonvert.order),
		SemiCont:    len(p.semi.order),
		Bounded:     len(p.bounded.order),
		Constraints: len(p.constraints),
	}
}

// Permute shuffles the constraint order and each constraint's term order
// using rng. The same generator state always produces the same arrangement.
func (p *Program) Permute(rng *rand.Rand) {
	rng.Shuffle(len(p.constraints), func(i, j int) {
		p.constraints[i], p.constraints[j] = p.constraints[j], p.constraints[i]
	})
	for i := range p.constraints {
		terms := p.constraints[i].Terms
		rng.Shuffle(len(terms), func(a, b int) {
			terms[a], terms[b] = terms[b], terms[a]
		})
	}
}

// check verifies that the objective is set and that every referenced
// variable is declared in exactly one section.
func (p *Program) check() error {
	if p.objective == nil && len(p.quadratic) == 0 {
		return ErrNoObjective
	}

	declared := make(map[string]struct{})
	for _, b := range []*bucket{p.binary, p.general, p.nonvert, p.semi, p.bounded} {
		for name := range b.seen {
			if _, ok := declared[name]; ok {
				return fmt.Errorf("%s: %w", name, ErrRedeclaredVariable)
			}
			declared[name] = struct{}{}
		}
	}

	if p.objective != nil {
		if _, ok := declared[p.objective.Name()]; !ok {
			return fmt.Errorf("objective %s: %w", p.objective.Name(), ErrUndeclaredVariable)
		}
	}
	for _, v := range p.quadratic {
		if _, ok := declared[v.Name()]; !ok {
			return fmt.Errorf("objective %s: %w", v.Name(), ErrUndeclaredVariable)
		}
	}
	for i := range p.constraints {
		for _, t := range p.constraints[i].Terms {
			if _, ok := declared[t.Var.Name()]; !ok {
				return fmt.Errorf("constraint %d: %s: %w", i, t.Var.Name(), ErrUndeclaredVariable)
			}
		}
	}
	return nil
}
