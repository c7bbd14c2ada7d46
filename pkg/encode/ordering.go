package encode

import "github.com/layerlp/layerlp/pkg/lp"

// ordering emits the relative-order skeleton for every layer: one
// antisymmetry equality per unordered node pair and two transitivity cuts
// per triple. Nodes enumerate in insertion order, partners in layer order,
// each pair and triple taken once by id comparison.
func (e *encoder) ordering() {
	for _, node := range e.g.Nodes() {
		i := node.ID
		for _, j := range e.g.Layer(node.Layer) {
			if i >= j {
				continue
			}
			xij, xji := lp.Precedes{I: i, J: j}, lp.Precedes{I: j, J: i}
			e.p.DeclareBinary(xij)
			e.p.DeclareBinary(xji)
			e.p.Add(lp.EQ, 1, lp.Plus(xij), lp.Plus(xji))
		}
	}

	// x_i_j and x_j_k imply x_i_k. Two cuts per triple suffice because
	// antisymmetry fixes every reversed pair.
	for _, node := range e.g.Nodes() {
		i := node.ID
		layer := e.g.Layer(node.Layer)
		for _, j := range layer {
			if j <= i {
				continue
			}
			for _, k := range layer {
				if k <= j {
					continue
				}
				e.p.Add(lp.GE, -1,
					lp.Plus(lp.Precedes{I: i, J: k}),
					lp.Minus(lp.Precedes{I: i, J: j}),
					lp.Minus(lp.Precedes{I: j, J: k}))
				e.p.Add(lp.GE, -1,
					lp.Plus(lp.Precedes{I: i, J: j}),
					lp.Minus(lp.Precedes{I: i, J: k}),
					lp.Minus(lp.Precedes{I: k, J: j}))
			}
		}
	}
	e.report("ordering")
}

// positions pins each node to a 0-based slot on its layer, with slot order
// tied to the precedence variables. Contiguous mode bounds slots by the
// layer's own size; relaxed mode lets every layer use the widest layer's
// range so edges can line up vertically.
func (e *encoder) positions() {
	relaxed := e.relaxedPositions()
	widest := e.g.MaxLayerSize()
	for _, node := range e.g.Nodes() {
		span := e.g.LayerSize(node.Layer) - 1
		if relaxed {
			span = widest - 1
		}
		pos := lp.Position{Node: node.ID, Layer: node.Layer}
		e.p.DeclareGeneral(pos)
		e.p.Add(lp.LE, float64(span), lp.Plus(pos))

		for _, other := range e.g.Layer(node.Layer) {
			if other == node.ID {
				continue
			}
			e.p.Add(lp.GE, 1,
				lp.Plus(lp.Position{Node: other, Layer: node.Layer}),
				lp.Minus(pos),
				lp.Weighted(float64(span+1), lp.Precedes{I: other, J: node.ID}))
		}
	}
	e.report("positions")
}

// edgeMarks pins one zero-valued binary per edge into the crossing
// namespace so solution decoding recovers edges that cross nothing.
func (e *encoder) edgeMarks() {
	for _, edge := range e.g.Edges() {
		mark := lp.EdgeMark{U: edge.Source, V: edge.Target}
		e.p.DeclareBinary(mark)
		e.p.Add(lp.EQ, 0, lp.Plus(mark))
	}
	e.report("edges")
}
