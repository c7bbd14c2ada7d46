// Package sgf provides the layered-graph model and the SGF text format
// used throughout layerlp.
//
// # Overview
//
// A layered graph assigns every node to a horizontal layer (0 at the
// bottom), with edges connecting nodes in adjacent layers only. This is
// the input shape for constraint generation: orderings within layers and
// positions along layers are the unknowns an external solver optimizes.
//
// # Basic Usage
//
// Create a new graph with [New], add nodes with [Graph.AddNode], and edges
// with [Graph.AddEdge]. Nodes must have unique integer IDs, and edges can
// only connect existing nodes in adjacent layers (target layer = source
// layer + 1):
//
//	g := sgf.New("example")
//	g.AddNode(sgf.Node{ID: 0, Layer: 0, Position: -1})
//	g.AddNode(sgf.Node{ID: 1, Layer: 1, Position: -1})
//	g.AddEdge(sgf.Edge{Source: 0, Target: 1})
//
// Use [Graph.Validate] before generating constraints: it rejects graphs
// with empty intermediate layers, which have no well-defined drawing.
//
// # The SGF Format
//
// SGF is a line-oriented text format for layered graphs:
//
//	c optional comment
//	t graph_name 4 3 2
//	n 0 0
//	n 1 0
//	n 2 1 0
//	e 0 2
//
// Tag lines: c = comment, t = graph name with optional node/edge/layer
// counts, n = node (id, layer, optional position), e = edge (source,
// target). [Read] parses the format, [Write] emits it. [ReadJSON] and
// [WriteJSON] provide an equivalent JSON encoding.
//
// # Layout Metrics
//
// For graphs that carry positions (typically decoded solver output), the
// package measures the drawing aesthetics the generated programs optimize:
// [CountCrossings], [TotalStretch], [BottleneckStretch],
// [TotalNonverticality] and [BottleneckNonverticality]. Crossing counts
// use a Fenwick tree to count inversions in O(E log V) per channel.
//
// # Concurrency
//
// Graph instances are not safe for concurrent modification. Read-only
// operations (metrics, serialization) can safely run in parallel.
package sgf
