package encode

import "github.com/layerlp/layerlp/pkg/lp"

// rawStretch ties one signed displacement to each edge: the difference
// between its endpoints' normalized layer coordinates. Displacements live in
// [-1, 1] through the program's Bounds section.
func (e *encoder) rawStretch() {
	factors := e.g.LayerFactors()
	for _, edge := range e.g.Edges() {
		src, _ := e.g.Node(edge.Source)
		tgt, _ := e.g.Node(edge.Target)
		z := lp.RawStretch{U: src.ID, V: tgt.ID}
		e.p.DeclareBounded(z)
		e.rawVars = append(e.rawVars, z)
		e.p.Add(lp.EQ, 0,
			lp.Plus(z),
			lp.Weighted(factors[src.Layer], lp.Position{Node: src.ID, Layer: src.Layer}),
			lp.Weighted(-factors[tgt.Layer], lp.Position{Node: tgt.ID, Layer: tgt.Layer}))
	}
	e.report("raw stretch")
}

// absStretch linearizes s = |z| per edge. Two lower bounds keep s at least
// |z|; the sign binary selects which upper bound binds so s cannot float
// above it. The tolerance keeps exact-fold solutions feasible.
func (e *encoder) absStretch() {
	for _, edge := range e.g.Edges() {
		u, v := edge.Source, edge.Target
		z := lp.RawStretch{U: u, V: v}
		s := lp.Stretch{U: u, V: v}
		sign := lp.SignBit{U: u, V: v}
		e.p.DeclareSemi(s)
		e.p.DeclareBinary(sign)
		e.stretchVars = append(e.stretchVars, s)

		e.p.Add(lp.GE, -tolerance, lp.Plus(s), lp.Minus(z))
		e.p.Add(lp.GE, -tolerance, lp.Plus(s), lp.Plus(z))
		e.p.Add(lp.GE, -tolerance, lp.Plus(z), lp.Weighted(2, sign), lp.Minus(s))
		e.p.Add(lp.GE, -2-tolerance, lp.Minus(z), lp.Weighted(-2, sign), lp.Minus(s))
	}
	e.report("stretch")
}

// totalStretch defines the stretch aggregate as an upper bound on the sum
// of per-edge stretches.
func (e *encoder) totalStretch() {
	total := lp.Scalar("stretch")
	e.p.DeclareSemi(total)
	terms := make([]lp.Term, 0, len(e.stretchVars)+1)
	terms = append(terms, lp.Plus(total))
	for _, s := range e.stretchVars {
		terms = append(terms, lp.Minus(s))
	}
	e.p.Add(lp.GE, 0, terms...)
	e.report("total stretch")
}

// bottleneckStretch bounds the bn_stretch aggregate below by every edge's
// stretch.
func (e *encoder) bottleneckStretch() {
	bn := lp.Scalar("bn_stretch")
	e.p.DeclareSemi(bn)
	for _, s := range e.stretchVars {
		e.p.Add(lp.GE, 0, lp.Plus(bn), lp.Minus(s))
	}
	e.report("bottleneck stretch")
}
