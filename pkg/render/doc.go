// Package render draws layered graphs as Graphviz diagrams.
//
// # Overview
//
// The package converts an [sgf.Graph] into DOT text and, on request,
// into SVG, PNG, or PDF images. Layers become Graphviz rank groups with
// rankdir=BT so that layer 0 sits at the bottom, matching the coordinate
// system of the constraint encoder. When the graph carries positions
// (decoded solver output), invisible edges pin the computed left-to-right
// order inside every layer; for raw inputs Graphviz orders the nodes
// itself.
//
// # Basic Usage
//
//	g, err := sgf.ReadFile("drawing.sgf")
//	if err != nil {
//		log.Fatal(err)
//	}
//	svg, err := render.Render(ctx, g, render.FormatSVG)
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("drawing.svg", svg, 0o644)
//
// [WriteDOT] emits plain DOT without invoking any layout engine and is
// the right entry point when the result is piped into external tooling.
//
// # Formats
//
// [FormatDOT] needs no external software. [FormatSVG] runs the Graphviz
// layout engine bundled with the graphviz bindings. [FormatPNG] and
// [FormatPDF] convert the SVG with rsvg-convert, which must be installed
// separately (librsvg2-bin on Debian, librsvg via Homebrew).
//
// # Determinism
//
// DOT output is deterministic: rank groups are ordered by layer, nodes
// within a group by position (or ID when positions are unknown), and
// edges by source then target. Rendering the same graph twice yields
// byte-identical DOT.
//
// [sgf.Graph]: github.com/layerlp/layerlp/pkg/sgf
package render
