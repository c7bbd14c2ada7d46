package encode

import "github.com/layerlp/layerlp/pkg/lp"

// distances introduces the per-edge position offset d_u_v_0 >= |p_u - p_v|.
// The verticality families share these definitions; they are emitted once no
// matter how many families are active.
func (e *encoder) distances() {
	if e.distancesDone {
		return
	}
	e.distancesDone = true

	for _, edge := range e.g.Edges() {
		src, _ := e.g.Node(edge.Source)
		tgt, _ := e.g.Node(edge.Target)
		d := lp.Distance{U: src.ID, V: tgt.ID, I: 0}
		e.p.DeclareGeneral(d)
		e.distVars = append(e.distVars, d)

		pu := lp.Position{Node: src.ID, Layer: src.Layer}
		pv := lp.Position{Node: tgt.ID, Layer: tgt.Layer}
		e.p.Add(lp.GE, 0, lp.Plus(d), lp.Plus(pu), lp.Minus(pv))
		e.p.Add(lp.GE, 0, lp.Plus(d), lp.Minus(pu), lp.Plus(pv))
	}
	e.report("distances")
}

// linearize bounds each auxiliary distance d_i below by d_0 - i. Minimizing
// presses d_i down to max(d_0 - i, 0), and d_0 + 2*sum(d_i) then equals
// d_0 squared, which is what the q variables capture.
func (e *encoder) linearize() {
	steps := e.g.MaxLayerSize() - 1
	for _, edge := range e.g.Edges() {
		d0 := lp.Distance{U: edge.Source, V: edge.Target, I: 0}
		for i := 1; i <= steps; i++ {
			di := lp.Distance{U: edge.Source, V: edge.Target, I: i}
			e.p.DeclareGeneral(di)
			e.p.Add(lp.LE, float64(i), lp.Plus(d0), lp.Minus(di))
		}
	}
	e.report("linearization")
}

// nonverticalities defines q_u_v = d_0 + 2*sum(d_i), the linearized square
// of edge (u,v)'s offset.
func (e *encoder) nonverticalities() {
	steps := e.g.MaxLayerSize() - 1
	for _, edge := range e.g.Edges() {
		q := lp.Nonvert{U: edge.Source, V: edge.Target}
		e.p.DeclareNonvert(q)
		e.nonvertVars = append(e.nonvertVars, q)

		terms := make([]lp.Term, 0, steps+2)
		terms = append(terms, lp.Plus(lp.Distance{U: edge.Source, V: edge.Target, I: 0}))
		for i := 1; i <= steps; i++ {
			terms = append(terms, lp.Weighted(2, lp.Distance{U: edge.Source, V: edge.Target, I: i}))
		}
		terms = append(terms, lp.Minus(q))
		e.p.Add(lp.EQ, 0, terms...)
	}
	e.report("nonverticality")
}

// degreeBounds adds combinatorial lower bounds per node and side: with D
// distinct neighbors on one side, the outermost edges must reach offsets up
// to ceil(D/2), so the summed auxiliary distances cannot all sit at zero.
func (e *encoder) degreeBounds() {
	for _, node := range e.g.Nodes() {
		e.neighborBounds(node.ID, unique(e.g.Up(node.ID)), true)
		e.neighborBounds(node.ID, unique(e.g.Down(node.ID)), false)
	}
	e.report("degree bounds")
}

// neighborBounds emits the bounds for one node and one side. Distance
// variables orient with their edge: upward edges read d_node_neighbor,
// downward edges d_neighbor_node.
func (e *encoder) neighborBounds(node int, neighbors []int, up bool) {
	degree := len(neighbors)
	if degree < 2 {
		return
	}
	lo, hi := degree/2, (degree+1)/2
	for i := range degree / 2 {
		terms := make([]lp.Term, 0, degree)
		for _, nb := range neighbors {
			d := lp.Distance{U: nb, V: node, I: i}
			if up {
				d = lp.Distance{U: node, V: nb, I: i}
			}
			terms = append(terms, lp.Plus(d))
		}
		e.p.Add(lp.GE, float64((lo-i)*(hi-i)), terms...)
	}
}

// totalNonverticality defines the vertical aggregate as the exact sum of
// all linearized squares.
func (e *encoder) totalNonverticality() {
	terms := make([]lp.Term, 0, len(e.nonvertVars)+1)
	for _, q := range e.nonvertVars {
		terms = append(terms, lp.Plus(q))
	}
	terms = append(terms, lp.Minus(lp.Scalar("vertical")))
	e.p.Add(lp.EQ, 0, terms...)
	e.p.DeclareNonvert(lp.Scalar("vertical"))
	e.report("total nonverticality")
}

// bottleneckVertical bounds the bn_vertical aggregate below by every edge's
// offset.
func (e *encoder) bottleneckVertical() {
	bn := lp.Scalar("bn_vertical")
	e.p.DeclareGeneral(bn)
	for _, d := range e.distVars {
		e.p.Add(lp.GE, 0, lp.Plus(bn), lp.Minus(d))
	}
	e.report("bottleneck verticality")
}

// unique keeps the first occurrence of each id, preserving order. Parallel
// edges would otherwise inflate a node's degree and tighten its bounds past
// feasibility.
func unique(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	var out []int
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
