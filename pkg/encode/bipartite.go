package encode

import (
	"maps"
	"slices"

	"github.com/layerlp/layerlp/pkg/sgf"
)

// bipartiteMinEdges is the smallest complete bipartite pattern worth
// reporting.
const bipartiteMinEdges = 6

// BipartiteCandidate is a dense pattern found in one channel: every source
// on the layer reaches every target above it.
type BipartiteCandidate struct {
	Layer   int
	Sources []int
	Targets []int
}

// Edges returns the number of edges the pattern covers.
func (c BipartiteCandidate) Edges() int {
	return len(c.Sources) * len(c.Targets)
}

// BipartiteDensities scans every channel for node sets sharing all their
// up-neighbors and reports complete bipartite patterns covering at least six
// edges. Such patterns admit tighter verticality bounds than the per-node
// degree bounds; the report is exploratory and produces no constraints.
//
// Subsets grow up to limit nodes per source set; limit below two means the
// widest layer. A layer stops growing once a size beyond two yields nothing,
// since every larger dense pattern embeds a smaller one.
func BipartiteDensities(g *sgf.Graph, limit int) []BipartiteCandidate {
	if limit < 2 {
		limit = g.MaxLayerSize()
	}

	var found []BipartiteCandidate
	for layer := 0; layer < g.LayerCount()-1; layer++ {
		nodes := g.Layer(layer)
		grow := true
		for size := 2; size <= min(len(nodes), limit); size++ {
			if size > 2 {
				grow = false
			}
			eachSubset(nodes, size, func(subset []int) {
				targets := sharedUpNeighbors(g, subset)
				if len(targets)*len(subset) < bipartiteMinEdges {
					return
				}
				grow = true
				found = append(found, BipartiteCandidate{
					Layer:   layer,
					Sources: slices.Clone(subset),
					Targets: targets,
				})
			})
			if !grow {
				break
			}
		}
	}
	return found
}

// eachSubset calls visit with every size-k combination of items, in
// lexicographic index order. The subset slice is reused between calls.
func eachSubset(items []int, k int, visit func(subset []int)) {
	subset := make([]int, k)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			visit(subset)
			return
		}
		for i := start; i+k-depth <= len(items); i++ {
			subset[depth] = items[i]
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
}

// sharedUpNeighbors intersects the up-neighbor sets of the subset's nodes,
// returning the shared targets in ascending id order.
func sharedUpNeighbors(g *sgf.Graph, subset []int) []int {
	shared := make(map[int]struct{})
	for _, t := range g.Up(subset[0]) {
		shared[t] = struct{}{}
	}
	for _, id := range subset[1:] {
		up := make(map[int]struct{})
		for _, t := range g.Up(id) {
			up[t] = struct{}{}
		}
		for t := range shared {
			if _, ok := up[t]; !ok {
				delete(shared, t)
			}
		}
	}
	return slices.Sorted(maps.Keys(shared))
}
