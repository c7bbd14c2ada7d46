package encode

import "github.com/layerlp/layerlp/pkg/lp"

// crossings introduces one binary indicator per pair of edges sharing a
// channel. Channels enumerate bottom-up; within a channel, source pairs are
// taken once by id comparison and their edges in adjacency order.
func (e *encoder) crossings() {
	for layer := 0; layer < e.g.LayerCount()-1; layer++ {
		nodes := e.g.Layer(layer)
		for _, i := range nodes {
			for _, k := range nodes {
				if i < k {
					e.crossingPair(i, k)
				}
			}
		}
	}
	e.report("crossings")
}

// crossingPair emits the indicators for every edge pair rising from nodes i
// and k. The pair crosses when the source order and target order disagree;
// one cut per disagreement direction forces the indicator up.
func (e *encoder) crossingPair(i, k int) {
	for _, j := range e.g.Up(i) {
		for _, l := range e.g.Up(k) {
			if j == l {
				continue
			}
			v := lp.Crossing{I: i, J: j, K: k, L: l}
			e.p.DeclareBinary(v)
			e.crossVars = append(e.crossVars, v)
			e.p.Add(lp.GE, -1,
				lp.Plus(v),
				lp.Minus(lp.Precedes{I: k, J: i}),
				lp.Minus(lp.Precedes{I: j, J: l}))
			e.p.Add(lp.GE, -1,
				lp.Plus(v),
				lp.Minus(lp.Precedes{I: l, J: j}),
				lp.Minus(lp.Precedes{I: i, J: k}))
		}
	}
}

// totalCrossings defines the total aggregate as an upper bound on the sum
// of every crossing indicator.
func (e *encoder) totalCrossings() {
	total := lp.Scalar("total")
	e.p.DeclareGeneral(total)
	terms := make([]lp.Term, 0, len(e.crossVars)+1)
	terms = append(terms, lp.Plus(total))
	for _, v := range e.crossVars {
		terms = append(terms, lp.Minus(v))
	}
	e.p.Add(lp.GE, 0, terms...)
	e.report("total")
}

// bottleneckCrossings bounds the bottleneck aggregate below by each edge's
// own crossing count: the sum of every indicator involving that edge, in
// either operand role. Edges with no potential partner in their channel get
// no constraint.
func (e *encoder) bottleneckCrossings() {
	bn := lp.Scalar("bottleneck")
	e.p.DeclareGeneral(bn)
	for layer := 0; layer < e.g.LayerCount()-1; layer++ {
		nodes := e.g.Layer(layer)
		for _, i := range nodes {
			for _, j := range e.g.Up(i) {
				e.bottleneckEdge(i, j, nodes)
			}
		}
	}
	e.report("bottleneck")
}

func (e *encoder) bottleneckEdge(i, j int, nodes []int) {
	terms := []lp.Term{lp.Plus(lp.Scalar("bottleneck"))}
	for _, k := range nodes {
		if k == i {
			continue
		}
		for _, l := range e.g.Up(k) {
			if l == j {
				continue
			}
			v := lp.Crossing{I: i, J: j, K: k, L: l}
			if k < i {
				v = lp.Crossing{I: k, J: l, K: i, L: j}
			}
			terms = append(terms, lp.Minus(v))
		}
	}
	if len(terms) > 1 {
		e.p.Add(lp.GE, 0, terms...)
	}
}
