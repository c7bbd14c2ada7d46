package sgf

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

type graphDoc struct {
	Name     string    `json:"name,omitempty"`
	Comments []string  `json:"comments,omitempty"`
	Nodes    []nodeDoc `json:"nodes"`
	Edges    []edgeDoc `json:"edges"`
}

type nodeDoc struct {
	ID       int  `json:"id"`
	Layer    int  `json:"layer"`
	Position *int `json:"position,omitempty"`
}

type edgeDoc struct {
	Source int `json:"source"`
	Target int `json:"target"`
}

// ReadJSON decodes a JSON graph from r.
//
// The input must be a JSON object with "nodes" and "edges" arrays:
//
//	{
//	  "name": "example",
//	  "nodes": [{"id": 0, "layer": 0}, {"id": 1, "layer": 1, "position": 0}],
//	  "edges": [{"source": 0, "target": 1}]
//	}
//
// Graph violations (duplicate IDs, unknown endpoints, non-adjacent edges)
// are reported with the offending node or edge for context. ReadJSON does
// not close r.
func ReadJSON(r io.Reader) (*Graph, error) {
	var doc graphDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := New(doc.Name)
	for _, c := range doc.Comments {
		g.AddComment(c)
	}
	for _, n := range doc.Nodes {
		node := Node{ID: n.ID, Layer: n.Layer, Position: -1}
		if n.Position != nil {
			node.Position = *n.Position
		}
		if err := g.AddNode(node); err != nil {
			return nil, err
		}
	}
	for _, e := range doc.Edges {
		if err := g.AddEdge(Edge{Source: e.Source, Target: e.Target}); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// WriteJSON encodes the graph as indented JSON and writes it to w.
// The output round-trips through [ReadJSON].
func WriteJSON(w io.Writer, g *Graph) error {
	doc := graphDoc{
		Name:     g.Name(),
		Comments: g.Comments(),
		Nodes:    make([]nodeDoc, 0, g.NodeCount()),
		Edges:    make([]edgeDoc, 0, g.EdgeCount()),
	}

	for _, n := range g.Nodes() {
		nd := nodeDoc{ID: n.ID, Layer: n.Layer}
		if n.Position >= 0 {
			pos := n.Position
			nd.Position = &pos
		}
		doc.Nodes = append(doc.Nodes, nd)
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, edgeDoc{Source: e.Source, Target: e.Target})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ImportJSON reads a JSON graph file at path.
func ImportJSON(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// ExportJSON writes the graph to a JSON file at path.
func ExportJSON(path string, g *Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(f, g)
}
