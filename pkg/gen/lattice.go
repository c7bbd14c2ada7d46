package gen

import (
	"fmt"
	"math/bits"

	"github.com/layerlp/layerlp/pkg/sgf"
)

// Lattice generates the subset lattice of an n-element set: one node per
// subset with the node id's binary representation as the membership vector,
// layered by cardinality, and an edge from each subset to every superset
// one element larger. Nodes appear in numeric order; positions follow that
// order within each layer.
func Lattice(n int) (*sgf.Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("lattice size %d: %w", n, ErrInvalidConfig)
	}

	g := sgf.New(fmt.Sprintf("lattice_%02d", n))
	g.AddComment(fmt.Sprintf("lattice on a set of %d elements", n))

	posInLayer := make([]int, n+1)
	for node := range 1 << n {
		layer := bits.OnesCount(uint(node))
		if err := g.AddNode(sgf.Node{ID: node, Layer: layer, Position: posInLayer[layer]}); err != nil {
			return nil, err
		}
		posInLayer[layer]++
	}

	for node := range 1 << n {
		for bit := range n {
			if node&(1<<bit) != 0 {
				continue
			}
			if err := g.AddEdge(sgf.Edge{Source: node, Target: node | 1<<bit}); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}
