package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/layerlp/layerlp/pkg/sgf"
)

// ErrUnknownFormat is returned for a render format name that is not dot,
// svg, png, or pdf.
var ErrUnknownFormat = errors.New("unknown render format")

// Format selects the output produced by [Render].
type Format string

// Recognized render formats.
const (
	FormatDOT Format = "dot"
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// Formats lists the recognized render formats.
func Formats() []Format {
	return []Format{FormatDOT, FormatSVG, FormatPNG, FormatPDF}
}

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats() {
		if name == string(f) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownFormat)
}

// PNGScale is the rasterization factor for PNG export. 2.0 doubles the
// pixel dimensions for high-DPI displays.
const PNGScale = 2.0

// Render draws the graph in the requested format.
//
// FormatDOT returns the output of [WriteDOT] unchanged. FormatSVG lays
// the graph out with Graphviz. FormatPNG and FormatPDF additionally
// convert the SVG through rsvg-convert, which must be on PATH.
func Render(ctx context.Context, g *sgf.Graph, format Format) ([]byte, error) {
	var dot bytes.Buffer
	if err := WriteDOT(&dot, g); err != nil {
		return nil, err
	}

	switch format {
	case FormatDOT:
		return dot.Bytes(), nil
	case FormatSVG:
		return renderSVG(ctx, dot.Bytes())
	case FormatPNG:
		svg, err := renderSVG(ctx, dot.Bytes())
		if err != nil {
			return nil, err
		}
		return ToPNG(ctx, svg, PNGScale)
	case FormatPDF:
		svg, err := renderSVG(ctx, dot.Bytes())
		if err != nil {
			return nil, err
		}
		return ToPDF(ctx, svg)
	}
	return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
}

func renderSVG(ctx context.Context, dot []byte) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	graph, err := graphviz.ParseBytes(dot)
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer graph.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the opening svg tag to an origin-based
// viewBox with explicit pixel dimensions. Graphviz emits pt units and a
// translated viewBox, which some SVG consumers misrender.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
