package render

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/layerlp/layerlp/pkg/sgf"
)

func buildGraph(t *testing.T, name string, nodes []sgf.Node, edges []sgf.Edge) *sgf.Graph {
	t.Helper()
	g := sgf.New(name)
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			t.Fatalf("AddNode(%d): %v", n.ID, err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e); err != nil {
			t.Fatalf("AddEdge(%d->%d): %v", e.Source, e.Target, err)
		}
	}
	return g
}

func renderDOT(t *testing.T, g *sgf.Graph) string {
	t.Helper()
	var buf strings.Builder
	if err := WriteDOT(&buf, g); err != nil {
		t.Fatalf("WriteDOT: %v", err)
	}
	return buf.String()
}

func TestWriteDOT_Unpositioned(t *testing.T) {
	g := buildGraph(t, "tiny",
		[]sgf.Node{
			{ID: 0, Layer: 0, Position: -1},
			{ID: 1, Layer: 0, Position: -1},
			{ID: 2, Layer: 1, Position: -1},
			{ID: 3, Layer: 1, Position: -1},
		},
		[]sgf.Edge{{Source: 0, Target: 3}, {Source: 1, Target: 2}},
	)

	want := strings.Join([]string{
		`digraph "tiny" {`,
		`  rankdir=BT;`,
		`  node [shape=circle, style=filled, fillcolor=white, fontsize=12, fixedsize=true, width=0.4];`,
		`  ranksep=0.7;`,
		`  nodesep=0.4;`,
		``,
		`  { rank=same; 0; 1; }`,
		`  { rank=same; 2; 3; }`,
		``,
		`  0 -> 3;`,
		`  1 -> 2;`,
		`}`,
		``,
	}, "\n")

	if got := renderDOT(t, g); got != want {
		t.Errorf("DOT mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteDOT_PinsPositions(t *testing.T) {
	g := buildGraph(t, "ordered",
		[]sgf.Node{
			{ID: 0, Layer: 0, Position: 1},
			{ID: 1, Layer: 0, Position: 0},
			{ID: 2, Layer: 1, Position: 0},
			{ID: 3, Layer: 1, Position: 1},
		},
		[]sgf.Edge{{Source: 1, Target: 3}, {Source: 0, Target: 2}},
	)

	want := strings.Join([]string{
		`digraph "ordered" {`,
		`  rankdir=BT;`,
		`  node [shape=circle, style=filled, fillcolor=white, fontsize=12, fixedsize=true, width=0.4];`,
		`  ranksep=0.7;`,
		`  nodesep=0.4;`,
		``,
		`  { rank=same; 1; 0; }`,
		`  { rank=same; 2; 3; }`,
		``,
		`  1 -> 0 [style=invis];`,
		`  2 -> 3 [style=invis];`,
		``,
		`  0 -> 2;`,
		`  1 -> 3;`,
		`}`,
		``,
	}, "\n")

	if got := renderDOT(t, g); got != want {
		t.Errorf("DOT mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteDOT_SingletonLayersNeedNoPins(t *testing.T) {
	g := buildGraph(t, "chain",
		[]sgf.Node{
			{ID: 0, Layer: 0, Position: 0},
			{ID: 1, Layer: 1, Position: 0},
		},
		[]sgf.Edge{{Source: 0, Target: 1}},
	)

	got := renderDOT(t, g)
	if strings.Contains(got, "style=invis") {
		t.Errorf("singleton layers should not produce pin edges:\n%s", got)
	}
	if !strings.Contains(got, "{ rank=same; 0; }") {
		t.Errorf("missing rank group for layer 0:\n%s", got)
	}
}

func TestWriteDOT_Deterministic(t *testing.T) {
	g := buildGraph(t, "repeat",
		[]sgf.Node{
			{ID: 5, Layer: 0, Position: -1},
			{ID: 3, Layer: 0, Position: -1},
			{ID: 8, Layer: 1, Position: -1},
		},
		[]sgf.Edge{{Source: 5, Target: 8}, {Source: 3, Target: 8}},
	)

	first := renderDOT(t, g)
	second := renderDOT(t, g)
	if first != second {
		t.Error("repeated renders differ")
	}
	if !strings.Contains(first, "{ rank=same; 3; 5; }") {
		t.Errorf("unpositioned layer should sort by ID:\n%s", first)
	}
	if strings.Index(first, "3 -> 8;") > strings.Index(first, "5 -> 8;") {
		t.Errorf("edges should sort by source:\n%s", first)
	}
}

func TestRender_DOT(t *testing.T) {
	g := buildGraph(t, "tiny",
		[]sgf.Node{
			{ID: 0, Layer: 0, Position: -1},
			{ID: 1, Layer: 1, Position: -1},
		},
		[]sgf.Edge{{Source: 0, Target: 1}},
	)

	got, err := Render(context.Background(), g, FormatDOT)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if want := renderDOT(t, g); string(got) != want {
		t.Errorf("Render(dot) = %q, want %q", got, want)
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	g := buildGraph(t, "tiny",
		[]sgf.Node{{ID: 0, Layer: 0, Position: -1}},
		nil,
	)

	_, err := Render(context.Background(), g, Format("gif"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Render(gif) error = %v, want ErrUnknownFormat", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{name: "dot", want: FormatDOT},
		{name: "svg", want: FormatSVG},
		{name: "png", want: FormatPNG},
		{name: "pdf", want: FormatPDF},
		{name: "gif", wantErr: true},
		{name: "DOT", wantErr: true},
		{name: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.name)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("ParseFormat(%q) error = %v, want ErrUnknownFormat", tt.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?>` + "\n" +
		`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg">` + "\n" +
		`<g></g></svg>`)

	got := string(normalizeViewBox(in))
	if !strings.Contains(got, `viewBox="0 0 62.00 116.00"`) {
		t.Errorf("viewBox not normalized:\n%s", got)
	}
	if !strings.Contains(got, `width="62" height="116"`) {
		t.Errorf("pixel dimensions missing:\n%s", got)
	}
	if strings.Contains(got, "pt") {
		t.Errorf("pt units should be gone from the svg tag:\n%s", got)
	}
}
