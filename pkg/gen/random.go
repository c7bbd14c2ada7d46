package gen

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/layerlp/layerlp/pkg/sgf"
)

// ErrInvalidConfig is returned when a generator configuration cannot
// describe a graph.
var ErrInvalidConfig = errors.New("invalid generator config")

// Config describes a random layered graph.
type Config struct {
	// Layers is the number of layers, at least 1.
	Layers int
	// MinWidth and MaxWidth bound the nodes per layer; each layer's width
	// is drawn uniformly from [MinWidth, MaxWidth].
	MinWidth int
	MaxWidth int
	// EdgeDensity in [0, 1] is the probability of each optional edge
	// between adjacent layers, on top of the connectivity guarantee.
	EdgeDensity float64
	// Seed drives all random choices.
	Seed uint64
}

func (c Config) validate() error {
	switch {
	case c.Layers < 1:
		return fmt.Errorf("layers %d: %w", c.Layers, ErrInvalidConfig)
	case c.MinWidth < 1:
		return fmt.Errorf("min width %d: %w", c.MinWidth, ErrInvalidConfig)
	case c.MaxWidth < c.MinWidth:
		return fmt.Errorf("width range [%d, %d]: %w", c.MinWidth, c.MaxWidth, ErrInvalidConfig)
	case c.EdgeDensity < 0 || c.EdgeDensity > 1:
		return fmt.Errorf("edge density %g: %w", c.EdgeDensity, ErrInvalidConfig)
	}
	return nil
}

// Random generates a layered graph from cfg. Within each channel every
// upper node connects to at least one lower node and vice versa, so no node
// is isolated wherever an adjacent layer exists; additional edges appear
// with probability cfg.EdgeDensity.
func Random(cfg Config) (*sgf.Graph, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0xdeadbeef))

	g := sgf.New(fmt.Sprintf("random_l%d_s%d", cfg.Layers, cfg.Seed))
	g.AddComment(fmt.Sprintf("random layered graph: layers=%d width=[%d,%d] density=%g seed=%d",
		cfg.Layers, cfg.MinWidth, cfg.MaxWidth, cfg.EdgeDensity, cfg.Seed))

	id := 0
	for layer := range cfg.Layers {
		width := cfg.MinWidth + rng.IntN(cfg.MaxWidth-cfg.MinWidth+1)
		for pos := range width {
			node := sgf.Node{ID: id, Layer: layer, Position: pos}
			if err := g.AddNode(node); err != nil {
				return nil, err
			}
			id++
		}
	}

	for layer := 0; layer < cfg.Layers-1; layer++ {
		if err := connectChannel(g, rng, layer, cfg.EdgeDensity); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// connectChannel wires the channel between layer and layer+1: one partner
// per upper node, one per still-isolated lower node, then density extras.
// Iteration follows layer order so output depends only on the generator
// state.
func connectChannel(g *sgf.Graph, rng *rand.Rand, layer int, density float64) error {
	lower := g.Layer(layer)
	upper := g.Layer(layer + 1)
	wired := make(map[sgf.Edge]struct{})

	add := func(u, v int) error {
		e := sgf.Edge{Source: u, Target: v}
		if _, ok := wired[e]; ok {
			return nil
		}
		wired[e] = struct{}{}
		return g.AddEdge(e)
	}

	for _, v := range upper {
		if err := add(lower[rng.IntN(len(lower))], v); err != nil {
			return err
		}
	}
	for _, u := range lower {
		if g.UpDegree(u) > 0 {
			continue
		}
		if err := add(u, upper[rng.IntN(len(upper))]); err != nil {
			return err
		}
	}
	for _, u := range lower {
		for _, v := range upper {
			if _, ok := wired[sgf.Edge{Source: u, Target: v}]; ok {
				continue
			}
			if rng.Float64() < density {
				if err := add(u, v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
