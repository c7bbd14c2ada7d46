package render

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/layerlp/layerlp/pkg/sgf"
)

// WriteDOT writes the graph as a Graphviz DOT document.
//
// Every layer becomes a rank=same group, and rankdir=BT puts layer 0 at
// the bottom of the drawing. When the graph carries positions, invisible
// edges chain each layer left to right so Graphviz keeps the computed
// order; without positions the layout engine orders nodes on its own.
func WriteDOT(w io.Writer, g *sgf.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %q {\n", g.Name())
	bw.WriteString("  rankdir=BT;\n")
	bw.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12, fixedsize=true, width=0.4];\n")
	bw.WriteString("  ranksep=0.7;\n")
	bw.WriteString("  nodesep=0.4;\n")
	bw.WriteString("\n")

	pinned := g.HasPositions()
	for layer := range g.LayerCount() {
		bw.WriteString("  { rank=same;")
		for _, id := range layerOrder(g, layer, pinned) {
			fmt.Fprintf(bw, " %d;", id)
		}
		bw.WriteString(" }\n")
	}

	if pinned {
		bw.WriteString("\n")
		for layer := range g.LayerCount() {
			ids := layerOrder(g, layer, true)
			for i := 1; i < len(ids); i++ {
				fmt.Fprintf(bw, "  %d -> %d [style=invis];\n", ids[i-1], ids[i])
			}
		}
	}

	bw.WriteString("\n")
	edges := g.Edges()
	slices.SortFunc(edges, func(a, b sgf.Edge) int {
		if c := cmp.Compare(a.Source, b.Source); c != 0 {
			return c
		}
		return cmp.Compare(a.Target, b.Target)
	})
	for _, e := range edges {
		fmt.Fprintf(bw, "  %d -> %d;\n", e.Source, e.Target)
	}

	bw.WriteString("}\n")
	return bw.Flush()
}

// layerOrder returns the layer's node IDs left to right: by position when
// pinned, by ID otherwise.
func layerOrder(g *sgf.Graph, layer int, pinned bool) []int {
	ids := slices.Clone(g.Layer(layer))
	if !pinned {
		slices.Sort(ids)
		return ids
	}
	slices.SortFunc(ids, func(a, b int) int {
		na, _ := g.Node(a)
		nb, _ := g.Node(b)
		if c := cmp.Compare(na.Position, nb.Position); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return ids
}
