package sgf

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNegativeLayer is returned by [Graph.AddNode] when the layer index
	// is negative. Layers are numbered 0 upward.
	ErrNegativeLayer = errors.New("layer must not be negative")

	// ErrDuplicateNode is returned by [Graph.AddNode] when a node with the
	// same ID already exists in the graph. Node IDs must be unique.
	ErrDuplicateNode = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the Source
	// node does not exist in the graph.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the Target
	// node does not exist in the graph.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrNonAdjacentLayers is returned by [Graph.AddEdge] when an edge does
	// not connect a node to one on the layer directly above it. All edges
	// must satisfy target.Layer == source.Layer+1.
	ErrNonAdjacentLayers = errors.New("edges must connect adjacent layers")

	// ErrEmptyGraph is returned by [Graph.Validate] for a graph with no nodes.
	ErrEmptyGraph = errors.New("graph has no nodes")

	// ErrEmptyLayer is returned by [Graph.Validate] when an intermediate
	// layer contains no nodes. Layers must be contiguous; a gap means the
	// graph has no well-defined layered drawing.
	ErrEmptyLayer = errors.New("empty layer")
)

// Node represents a vertex in a layered graph.
//
// Position is the node's slot within its layer: -1 when unknown (pure
// input graphs) and >= 0 once a drawing has been computed or decoded.
// The zero value is usable as node 0 on layer 0 with no position only
// after setting Position to -1; prefer composite literals that set all
// three fields.
type Node struct {
	ID       int // Unique identifier, also used in derived variable names
	Layer    int // Layer assignment (0 = bottom)
	Position int // Slot within the layer, -1 if not yet assigned
}

// Edge represents a directed connection between nodes in adjacent layers.
// For a valid edge the target is exactly one layer above the source.
type Edge struct {
	Source int // Node ID on the lower layer
	Target int // Node ID on the upper layer
}

// Graph is a layered graph: every node lives on a layer, and edges climb
// exactly one layer. Insertion order of nodes and edges is preserved; it
// drives deterministic enumeration during constraint generation.
//
// The zero value is not usable - use [New].
// Graph is not safe for concurrent modification.
type Graph struct {
	name     string
	comments []string

	nodes  map[int]*Node
	order  []int     // node IDs in insertion order
	layers [][]int   // layer -> node IDs in insertion order
	edges  []Edge

	up   map[int][]int // node ID -> neighbor IDs one layer above, edge order
	down map[int][]int // node ID -> neighbor IDs one layer below, edge order
}

// New creates an empty layered graph with the given name.
func New(name string) *Graph {
	return &Graph{
		name:  name,
		nodes: make(map[int]*Node),
		up:    make(map[int][]int),
		down:  make(map[int][]int),
	}
}

// Name returns the graph name (the SGF "t" line).
func (g *Graph) Name() string { return g.name }

// SetName replaces the graph name.
func (g *Graph) SetName(name string) { g.name = name }

// Comments returns the comment lines attached to the graph, in order.
func (g *Graph) Comments() []string { return g.comments }

// AddComment appends a comment line to the graph.
// Comments survive into generated programs and decoded output.
func (g *Graph) AddComment(text string) { g.comments = append(g.comments, text) }

// AddNode adds a node to the graph and indexes it by layer.
// Returns ErrNegativeLayer for layer < 0 or ErrDuplicateNode if the ID is
// already in use. A Position of 0 is taken literally; use -1 for "unknown".
func (g *Graph) AddNode(n Node) error {
	if n.Layer < 0 {
		return fmt.Errorf("node %d: %w", n.ID, ErrNegativeLayer)
	}
	if _, exists := g.nodes[n.ID]; exists {
		return fmt.Errorf("node %d: %w", n.ID, ErrDuplicateNode)
	}

	node := &n
	g.nodes[node.ID] = node
	g.order = append(g.order, node.ID)
	for len(g.layers) <= node.Layer {
		g.layers = append(g.layers, nil)
	}
	g.layers[node.Layer] = append(g.layers[node.Layer], node.ID)
	return nil
}

// AddEdge adds a directed edge between two existing nodes on adjacent
// layers. Returns ErrUnknownSourceNode or ErrUnknownTargetNode for missing
// endpoints and ErrNonAdjacentLayers when the target is not exactly one
// layer above the source. Multi-edges between the same pair are allowed.
func (g *Graph) AddEdge(e Edge) error {
	src, ok := g.nodes[e.Source]
	if !ok {
		return fmt.Errorf("edge %d->%d: %w", e.Source, e.Target, ErrUnknownSourceNode)
	}
	dst, ok := g.nodes[e.Target]
	if !ok {
		return fmt.Errorf("edge %d->%d: %w", e.Source, e.Target, ErrUnknownTargetNode)
	}
	if dst.Layer != src.Layer+1 {
		return fmt.Errorf("edge %d->%d (layers %d->%d): %w",
			e.Source, e.Target, src.Layer, dst.Layer, ErrNonAdjacentLayers)
	}

	g.edges = append(g.edges, e)
	g.up[e.Source] = append(g.up[e.Source], e.Target)
	g.down[e.Target] = append(g.down[e.Target], e.Source)
	return nil
}

// Node returns the node with the given ID and true, or nil and false.
// The pointer refers to the node stored in the graph, so position updates
// through it are visible to metrics and writers.
func (g *Graph) Node(id int) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// LayerCount returns the number of layers, including empty ones below the
// highest occupied layer.
func (g *Graph) LayerCount() int { return len(g.layers) }

// Layer returns the node IDs on the given layer in insertion order.
// Returns nil for out-of-range layers. The returned slice is a read-only
// view; do not modify it.
func (g *Graph) Layer(layer int) []int {
	if layer < 0 || layer >= len(g.layers) {
		return nil
	}
	return g.layers[layer]
}

// LayerSize returns the number of nodes on the given layer.
func (g *Graph) LayerSize(layer int) int { return len(g.Layer(layer)) }

// MaxLayerSize returns the size of the widest layer, or 0 for an empty graph.
func (g *Graph) MaxLayerSize() int {
	max := 0
	for _, l := range g.layers {
		if len(l) > max {
			max = len(l)
		}
	}
	return max
}

// Up returns the IDs of neighbors one layer above the node, in edge
// insertion order. Returns nil for unknown nodes or nodes with no upward
// edges. Read-only view.
func (g *Graph) Up(id int) []int { return g.up[id] }

// Down returns the IDs of neighbors one layer below the node, in edge
// insertion order. Read-only view.
func (g *Graph) Down(id int) []int { return g.down[id] }

// UpDegree returns the number of edges leaving the node upward.
func (g *Graph) UpDegree(id int) int { return len(g.up[id]) }

// DownDegree returns the number of edges entering the node from below.
func (g *Graph) DownDegree(id int) int { return len(g.down[id]) }

// HasPositions reports whether every node carries an explicit position.
// Graphs decoded from solver output have positions; raw inputs may not.
func (g *Graph) HasPositions() bool {
	if len(g.nodes) == 0 {
		return false
	}
	for _, n := range g.nodes {
		if n.Position < 0 {
			return false
		}
	}
	return true
}

// Validate checks that the graph can be drawn: it must contain at least
// one node and every layer up to LayerCount-1 must be occupied. Edge
// adjacency is already enforced by AddEdge, so a validated graph is safe
// to feed to constraint generation.
func (g *Graph) Validate() error {
	if len(g.nodes) == 0 {
		return ErrEmptyGraph
	}
	for layer, ids := range g.layers {
		if len(ids) == 0 {
			return fmt.Errorf("layer %d: %w", layer, ErrEmptyLayer)
		}
	}
	return nil
}

// LayerFactors returns the per-layer position scaling factors used by the
// stretch aesthetics: 1/(size-1) for layers with two or more nodes, so
// scaled positions span [0,1], and 1/2 for singleton layers, centering the
// lone node. Call Validate first; factors for empty layers are undefined
// and returned as 0.
func (g *Graph) LayerFactors() []float64 {
	factors := make([]float64, len(g.layers))
	for layer, ids := range g.layers {
		switch len(ids) {
		case 0:
			factors[layer] = 0
		case 1:
			factors[layer] = 0.5
		default:
			factors[layer] = 1 / float64(len(ids)-1)
		}
	}
	return factors
}
