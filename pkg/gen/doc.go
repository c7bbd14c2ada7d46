// Package gen creates layered graphs for experiments and tests.
//
// # Overview
//
// Two generators cover the usual needs: Random builds an arbitrary layered
// graph from a size/density configuration, Lattice builds the subset
// lattice of an n-element set, a worst-case family for crossing
// minimization. Both return graphs that pass [sgf.Graph.Validate] and carry
// a provenance comment.
//
// # Determinism
//
// Random is driven entirely by the seed in its configuration: the same
// configuration always produces byte-identical output. Lattice is fully
// determined by n.
package gen
