package sgf

import "slices"

// Metrics summarizes the drawing aesthetics of a positioned layered graph.
// These are the quantities the generated programs minimize, measured
// directly on a concrete layout.
type Metrics struct {
	Crossings                int     // total edge crossings across all channels
	TotalStretch             float64 // sum of scaled edge lengths
	BottleneckStretch        float64 // largest scaled edge length
	TotalNonverticality      int     // sum of squared position offsets
	BottleneckNonverticality int     // largest absolute position offset
}

// Measure computes all layout metrics for the graph in one pass per family.
// Nodes without explicit positions are measured at their layer insertion
// order, so Measure is meaningful for raw inputs as well as decoded output.
func Measure(g *Graph) Metrics {
	return Metrics{
		Crossings:                CountCrossings(g),
		TotalStretch:             TotalStretch(g),
		BottleneckStretch:        BottleneckStretch(g),
		TotalNonverticality:      TotalNonverticality(g),
		BottleneckNonverticality: BottleneckNonverticality(g),
	}
}

// effectivePositions maps each node to its slot within its layer: the
// explicit position when the graph carries a full assignment, insertion
// order otherwise.
func effectivePositions(g *Graph) map[int]int {
	pos := make(map[int]int, g.NodeCount())
	if g.HasPositions() {
		for _, n := range g.Nodes() {
			pos[n.ID] = n.Position
		}
		return pos
	}
	for layer := 0; layer < g.LayerCount(); layer++ {
		for i, id := range g.Layer(layer) {
			pos[id] = i
		}
	}
	return pos
}

// CountCrossings returns the total number of edge crossings in the layout,
// summed over every channel (pair of adjacent layers).
func CountCrossings(g *Graph) int {
	pos := effectivePositions(g)
	crossings := 0
	for layer := 0; layer < g.LayerCount()-1; layer++ {
		crossings += countChannelCrossings(g, pos, layer)
	}
	return crossings
}

// CountChannelCrossings counts edge crossings in the channel between the
// given layer and the one above it.
func CountChannelCrossings(g *Graph, layer int) int {
	return countChannelCrossings(g, effectivePositions(g), layer)
}

// countChannelCrossings counts crossings between layer and layer+1 using a
// Fenwick tree (binary indexed tree) to count inversions in O(E log V).
//
// Two edges (u1,v1) and (u2,v2) cross if and only if:
//
//	pos(u1) < pos(u2) AND pos(v1) > pos(v2)
//
// Sorting the channel's edges by source position and counting inversions
// in the target positions yields exactly those pairs.
func countChannelCrossings(g *Graph, pos map[int]int, layer int) int {
	type channelEdge struct{ src, tgt int }
	var edges []channelEdge
	maxTgt := 0
	for _, id := range g.Layer(layer) {
		for _, up := range g.Up(id) {
			e := channelEdge{pos[id], pos[up]}
			if e.tgt > maxTgt {
				maxTgt = e.tgt
			}
			edges = append(edges, e)
		}
	}
	if len(edges) < 2 {
		return 0
	}

	// Sort edges by source position, then by target position, so edges
	// sharing a source never count as crossing each other.
	slices.SortFunc(edges, func(a, b channelEdge) int {
		if a.src != b.src {
			return a.src - b.src
		}
		return a.tgt - b.tgt
	})

	// Count inversions using Fenwick tree
	fenwick := make([]int, maxTgt+2)
	crossings, total := 0, 0
	for _, e := range edges {
		// Query: count edges seen so far with target <= e.tgt
		lessOrEqual := 0
		for q := e.tgt + 1; q > 0; q -= q & (-q) {
			lessOrEqual += fenwick[q]
		}
		// Crossings = edges seen so far with target > e.tgt
		crossings += total - lessOrEqual

		// Update: increment count at target position
		total++
		for idx := e.tgt + 1; idx < len(fenwick); idx += idx & (-idx) {
			fenwick[idx]++
		}
	}
	return crossings
}

// edgeStretch returns the scaled length of one edge: the difference of the
// endpoints' positions after scaling each by its layer factor, so a layer's
// positions span [0,1] regardless of its width.
func edgeStretch(g *Graph, factors []float64, pos map[int]int, e Edge) float64 {
	src, _ := g.Node(e.Source)
	tgt, _ := g.Node(e.Target)
	s := factors[src.Layer]*float64(pos[e.Source]) - factors[tgt.Layer]*float64(pos[e.Target])
	if s < 0 {
		return -s
	}
	return s
}

// TotalStretch returns the sum of scaled edge lengths of the layout.
func TotalStretch(g *Graph) float64 {
	factors := g.LayerFactors()
	pos := effectivePositions(g)
	total := 0.0
	for _, e := range g.Edges() {
		total += edgeStretch(g, factors, pos, e)
	}
	return total
}

// BottleneckStretch returns the largest scaled edge length of the layout.
func BottleneckStretch(g *Graph) float64 {
	factors := g.LayerFactors()
	pos := effectivePositions(g)
	max := 0.0
	for _, e := range g.Edges() {
		if s := edgeStretch(g, factors, pos, e); s > max {
			max = s
		}
	}
	return max
}

// TotalNonverticality returns the sum over edges of the squared position
// offset between the endpoints.
func TotalNonverticality(g *Graph) int {
	pos := effectivePositions(g)
	total := 0
	for _, e := range g.Edges() {
		d := pos[e.Source] - pos[e.Target]
		total += d * d
	}
	return total
}

// BottleneckNonverticality returns the largest absolute position offset
// across edges.
func BottleneckNonverticality(g *Graph) int {
	pos := effectivePositions(g)
	max := 0
	for _, e := range g.Edges() {
		d := pos[e.Source] - pos[e.Target]
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}
	return max
}
