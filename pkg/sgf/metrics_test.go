package sgf

import (
	"math"
	"testing"
)

// crossedPair builds the canonical two-layer graph whose only two edges
// cross: sources 0,1 at positions 0,1 and targets 2,3 at positions 0,1
// with edges 0->3 and 1->2.
func crossedPair(t *testing.T) *Graph {
	t.Helper()
	return buildGraph(t, "crossed", []Node{
		{ID: 0, Layer: 0, Position: 0},
		{ID: 1, Layer: 0, Position: 1},
		{ID: 2, Layer: 1, Position: 0},
		{ID: 3, Layer: 1, Position: 1},
	}, []Edge{
		{Source: 0, Target: 3},
		{Source: 1, Target: 2},
	})
}

func TestCountCrossings(t *testing.T) {
	t.Run("crossed pair", func(t *testing.T) {
		if got := CountCrossings(crossedPair(t)); got != 1 {
			t.Errorf("CountCrossings = %d, want 1", got)
		}
	})

	t.Run("parallel edges do not cross", func(t *testing.T) {
		g := buildGraph(t, "straight", []Node{
			{ID: 0, Layer: 0, Position: 0},
			{ID: 1, Layer: 0, Position: 1},
			{ID: 2, Layer: 1, Position: 0},
			{ID: 3, Layer: 1, Position: 1},
		}, []Edge{
			{Source: 0, Target: 2},
			{Source: 1, Target: 3},
		})
		if got := CountCrossings(g); got != 0 {
			t.Errorf("CountCrossings = %d, want 0", got)
		}
	})

	t.Run("shared endpoints never cross", func(t *testing.T) {
		g := buildGraph(t, "fan", []Node{
			{ID: 0, Layer: 0, Position: 0},
			{ID: 1, Layer: 0, Position: 1},
			{ID: 2, Layer: 1, Position: 0},
			{ID: 3, Layer: 1, Position: 1},
		}, []Edge{
			{Source: 0, Target: 2},
			{Source: 0, Target: 3},
			{Source: 1, Target: 3},
		})
		if got := CountCrossings(g); got != 0 {
			t.Errorf("CountCrossings = %d, want 0", got)
		}
	})

	t.Run("complete bipartite 2x2", func(t *testing.T) {
		g := buildGraph(t, "k22", []Node{
			{ID: 0, Layer: 0, Position: 0},
			{ID: 1, Layer: 0, Position: 1},
			{ID: 2, Layer: 1, Position: 0},
			{ID: 3, Layer: 1, Position: 1},
		}, []Edge{
			{Source: 0, Target: 2},
			{Source: 0, Target: 3},
			{Source: 1, Target: 2},
			{Source: 1, Target: 3},
		})
		if got := CountCrossings(g); got != 1 {
			t.Errorf("CountCrossings = %d, want 1", got)
		}
	})

	t.Run("three layers sum per channel", func(t *testing.T) {
		g := buildGraph(t, "tall", []Node{
			{ID: 0, Layer: 0, Position: 0},
			{ID: 1, Layer: 0, Position: 1},
			{ID: 2, Layer: 1, Position: 0},
			{ID: 3, Layer: 1, Position: 1},
			{ID: 4, Layer: 2, Position: 0},
			{ID: 5, Layer: 2, Position: 1},
		}, []Edge{
			{Source: 0, Target: 3}, // crosses 1->2
			{Source: 1, Target: 2},
			{Source: 2, Target: 5}, // crosses 3->4
			{Source: 3, Target: 4},
		})
		if got := CountCrossings(g); got != 2 {
			t.Errorf("CountCrossings = %d, want 2", got)
		}
		if got := CountChannelCrossings(g, 0); got != 1 {
			t.Errorf("CountChannelCrossings(0) = %d, want 1", got)
		}
		if got := CountChannelCrossings(g, 1); got != 1 {
			t.Errorf("CountChannelCrossings(1) = %d, want 1", got)
		}
	})

	t.Run("falls back to insertion order without positions", func(t *testing.T) {
		g := buildGraph(t, "nopos", []Node{
			{ID: 0, Layer: 0, Position: -1},
			{ID: 1, Layer: 0, Position: -1},
			{ID: 2, Layer: 1, Position: -1},
			{ID: 3, Layer: 1, Position: -1},
		}, []Edge{
			{Source: 0, Target: 3},
			{Source: 1, Target: 2},
		})
		if got := CountCrossings(g); got != 1 {
			t.Errorf("CountCrossings = %d, want 1", got)
		}
	})
}

func TestStretchMetrics(t *testing.T) {
	g := crossedPair(t)

	// Both layers have two nodes, so factors are 1 and each crossed edge
	// spans the full [0,1] range.
	if got := TotalStretch(g); math.Abs(got-2) > 1e-12 {
		t.Errorf("TotalStretch = %v, want 2", got)
	}
	if got := BottleneckStretch(g); math.Abs(got-1) > 1e-12 {
		t.Errorf("BottleneckStretch = %v, want 1", got)
	}
}

func TestStretchMetrics_SingletonLayer(t *testing.T) {
	g := buildGraph(t, "singleton", []Node{
		{ID: 0, Layer: 0, Position: 0},
		{ID: 1, Layer: 1, Position: 0},
		{ID: 2, Layer: 1, Position: 1},
	}, []Edge{
		{Source: 0, Target: 1},
		{Source: 0, Target: 2},
	})

	// The singleton source sits at scaled position 0.5*0 = 0; targets sit
	// at 0 and 1.
	if got := TotalStretch(g); math.Abs(got-1) > 1e-12 {
		t.Errorf("TotalStretch = %v, want 1", got)
	}
	if got := BottleneckStretch(g); math.Abs(got-1) > 1e-12 {
		t.Errorf("BottleneckStretch = %v, want 1", got)
	}
}

func TestNonverticalityMetrics(t *testing.T) {
	g := buildGraph(t, "vert", []Node{
		{ID: 0, Layer: 0, Position: 0},
		{ID: 1, Layer: 0, Position: 2},
		{ID: 2, Layer: 1, Position: 0},
		{ID: 3, Layer: 1, Position: 2},
	}, []Edge{
		{Source: 0, Target: 3}, // offset 2
		{Source: 1, Target: 2}, // offset 2
		{Source: 1, Target: 3}, // offset 0
	})

	if got := TotalNonverticality(g); got != 8 {
		t.Errorf("TotalNonverticality = %d, want 8", got)
	}
	if got := BottleneckNonverticality(g); got != 2 {
		t.Errorf("BottleneckNonverticality = %d, want 2", got)
	}
}

func TestMeasure(t *testing.T) {
	got := Measure(crossedPair(t))

	if got.Crossings != 1 {
		t.Errorf("Crossings = %d, want 1", got.Crossings)
	}
	if math.Abs(got.TotalStretch-2) > 1e-12 {
		t.Errorf("TotalStretch = %v, want 2", got.TotalStretch)
	}
	if got.TotalNonverticality != 2 {
		t.Errorf("TotalNonverticality = %d, want 2", got.TotalNonverticality)
	}
	if got.BottleneckNonverticality != 1 {
		t.Errorf("BottleneckNonverticality = %d, want 1", got.BottleneckNonverticality)
	}
}
