package sgf

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Write emits the graph as SGF text: comments, the t line with node, edge
// and layer counts, nodes in insertion order (positions included when
// assigned), then edges in insertion order.
//
// A graph without a name is written as "graph".
func Write(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)

	for _, comment := range g.Comments() {
		fmt.Fprintf(bw, "c %s\n", comment)
	}

	name := g.Name()
	if name == "" {
		name = "graph"
	}
	fmt.Fprintf(bw, "t %s %d %d %d\n", name, g.NodeCount(), g.EdgeCount(), g.LayerCount())

	for _, n := range g.Nodes() {
		if n.Position >= 0 {
			fmt.Fprintf(bw, "n %d %d %d\n", n.ID, n.Layer, n.Position)
		} else {
			fmt.Fprintf(bw, "n %d %d\n", n.ID, n.Layer)
		}
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "e %d %d\n", e.Source, e.Target)
	}

	return bw.Flush()
}

// WriteFile writes the graph as SGF to the file at path, creating or
// truncating it.
func WriteFile(path string, g *Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, g); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
