package encode

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/layerlp/layerlp/pkg/sgf"
)

var stamp = time.Date(2024, 5, 15, 21, 48, 23, 0, time.UTC)

func node(id, layer int) sgf.Node {
	return sgf.Node{ID: id, Layer: layer, Position: -1}
}

func mustGraph(t *testing.T, name string, nodes []sgf.Node, edges []sgf.Edge) *sgf.Graph {
	t.Helper()
	g := sgf.New(name)
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			t.Fatalf("AddNode(%+v): %v", n, err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e); err != nil {
			t.Fatalf("AddEdge(%+v): %v", e, err)
		}
	}
	return g
}

// crossedPair is two layers of two nodes with edges forced to cross in any
// left-to-right order that keeps 0 before 1 and 2 before 3.
func crossedPair(t *testing.T) *sgf.Graph {
	t.Helper()
	return mustGraph(t, "tiny",
		[]sgf.Node{node(0, 0), node(1, 0), node(2, 1), node(3, 1)},
		[]sgf.Edge{{Source: 0, Target: 3}, {Source: 1, Target: 2}})
}

// fan is two sources sharing a single sink: layer sizes 2 and 1.
func fan(t *testing.T) *sgf.Graph {
	t.Helper()
	return mustGraph(t, "fan",
		[]sgf.Node{node(0, 0), node(1, 0), node(2, 1)},
		[]sgf.Edge{{Source: 0, Target: 2}, {Source: 1, Target: 2}})
}

func buildLP(t *testing.T, g *sgf.Graph, opts Options) string {
	t.Helper()
	prog, err := Build(g, opts)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	prog.SetTimestamp(stamp)
	var buf bytes.Buffer
	if err := prog.Write(&buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return buf.String()
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func seedPtr(v uint64) *uint64 { return &v }

func TestBuild_TotalObjective(t *testing.T) {
	got := buildLP(t, crossedPair(t), Options{
		Objective:   Total,
		CommandLine: "layerlp compile --objective total",
	})

	want := strings.Join([]string{
		`\ layerlp compile --objective total`,
		`\ 2024/05/15 21:48:23`,
		"Min",
		"  total",
		"st",
		"  + x_0_1 + x_1_0 = 1",
		"  + x_2_3 + x_3_2 = 1",
		"  + p_0_0 <= 1",
		"  + p_1_0 - p_0_0 + 2 x_1_0 >= 1",
		"  + p_1_0 <= 1",
		"  + p_0_0 - p_1_0 + 2 x_0_1 >= 1",
		"  + p_2_1 <= 1",
		"  + p_3_1 - p_2_1 + 2 x_3_2 >= 1",
		"  + p_3_1 <= 1",
		"  + p_2_1 - p_3_1 + 2 x_2_3 >= 1",
		"  + c_0_3_0_3 = 0",
		"  + c_1_2_1_2 = 0",
		"  + c_0_3_1_2 - x_1_0 - x_3_2 >= -1",
		"  + c_0_3_1_2 - x_2_3 - x_0_1 >= -1",
		"  + total - c_0_3_1_2 >= 0",
		"Binary",
		"  x_0_1 x_1_0 x_2_3 x_3_2 c_0_3_0_3 c_1_2_1_2 c_0_3_1_2",
		"General",
		"  p_0_0 p_1_0 p_2_1 p_3_1 total",
		"End",
		"",
	}, "\n")
	if got != want {
		t.Errorf("Build(total) output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestBuild_CommentsCarryOver(t *testing.T) {
	g := crossedPair(t)
	g.AddComment("random graph, seed 7")
	got := buildLP(t, g, Options{Objective: Total})
	if !strings.Contains(got, "\\ random graph, seed 7\n") {
		t.Errorf("graph comment missing from header:\n%s", got)
	}
}

func TestBuild_UnknownObjective(t *testing.T) {
	for _, name := range []string{"", "crossings", "TOTAL"} {
		t.Run("objective "+name, func(t *testing.T) {
			_, err := Build(crossedPair(t), Options{Objective: Objective(name)})
			if !errors.Is(err, ErrUnknownObjective) {
				t.Fatalf("Build() error = %v, want ErrUnknownObjective", err)
			}
		})
	}
}

func TestBuild_InvalidGraph(t *testing.T) {
	empty := sgf.New("empty")
	if _, err := Build(empty, Options{Objective: Total}); !errors.Is(err, sgf.ErrEmptyGraph) {
		t.Fatalf("Build(empty) error = %v, want ErrEmptyGraph", err)
	}

	gap := mustGraph(t, "gap", []sgf.Node{node(0, 1)}, nil)
	if _, err := Build(gap, Options{Objective: Total}); !errors.Is(err, sgf.ErrEmptyLayer) {
		t.Fatalf("Build(gap) error = %v, want ErrEmptyLayer", err)
	}
}

func TestBuild_RelaxedPositions(t *testing.T) {
	// Node 0 sits alone on layer 0; the widest layer holds two nodes.
	g := func() *sgf.Graph {
		return mustGraph(t, "spread",
			[]sgf.Node{node(0, 0), node(1, 1), node(2, 1)},
			[]sgf.Edge{{Source: 0, Target: 1}, {Source: 0, Target: 2}})
	}

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"contiguous by default", Options{Objective: Total}, "  + p_0_0 <= 0\n"},
		{"vertical objective relaxes", Options{Objective: Vertical}, "  + p_0_0 <= 1\n"},
		{"quad_vertical relaxes", Options{Objective: QuadVertical}, "  + p_0_0 <= 1\n"},
		{"vertical cap relaxes", Options{Objective: Total, VerticalCap: intPtr(4)}, "  + p_0_0 <= 1\n"},
		{"bn_vertical cap stays contiguous", Options{Objective: Total, BNVerticalCap: intPtr(4)}, "  + p_0_0 <= 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildLP(t, g(), tt.opts)
			if !strings.Contains(got, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, got)
			}
		})
	}
}

func TestBuild_CapsForceFamilies(t *testing.T) {
	got := buildLP(t, crossedPair(t), Options{
		Objective:  Total,
		StretchCap: floatPtr(2.5),
	})

	for _, want := range []string{
		"  + s_0_3 - z_0_3 >= -1e-09\n", // absolute-value family forced in
		"  + stretch - s_0_3 - s_1_2 >= 0\n",
		"  + stretch <= 2.5\n",
		"Semi\n  s_0_3 s_1_2 stretch\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestBuild_CapOrder(t *testing.T) {
	got := buildLP(t, crossedPair(t), Options{
		Objective:     Total,
		TotalCap:      intPtr(3),
		BottleneckCap: intPtr(1),
	})
	totalAt := strings.Index(got, "  + total <= 3\n")
	bnAt := strings.Index(got, "  + bottleneck <= 1\n")
	if totalAt < 0 || bnAt < 0 {
		t.Fatalf("cap constraints missing:\n%s", got)
	}
	if totalAt > bnAt {
		t.Errorf("caps out of order: total at %d, bottleneck at %d", totalAt, bnAt)
	}
}

func TestBuild_SeedDeterminism(t *testing.T) {
	opts := Options{Objective: Total, Seed: seedPtr(99)}
	a := buildLP(t, crossedPair(t), opts)
	b := buildLP(t, crossedPair(t), opts)
	if a != b {
		t.Error("same seed produced different output")
	}
}

func TestBuild_Progress(t *testing.T) {
	var stages []string
	last := -1
	_, err := Build(crossedPair(t), Options{
		Objective: Total,
		Progress: func(stage string, constraints int) {
			stages = append(stages, stage)
			if constraints < last {
				t.Errorf("constraint count shrank at %s: %d -> %d", stage, last, constraints)
			}
			last = constraints
		},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := []string{"ordering", "positions", "edges", "crossings", "total", "caps"}
	if !slices.Equal(stages, want) {
		t.Errorf("stages = %v, want %v", stages, want)
	}
}

func TestParseObjective(t *testing.T) {
	for _, o := range Objectives() {
		got, err := ParseObjective(string(o))
		if err != nil || got != o {
			t.Errorf("ParseObjective(%q) = %v, %v", o, got, err)
		}
	}
	if _, err := ParseObjective("minimal"); !errors.Is(err, ErrUnknownObjective) {
		t.Errorf("ParseObjective(minimal) error = %v, want ErrUnknownObjective", err)
	}
}
