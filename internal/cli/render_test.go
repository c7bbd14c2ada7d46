package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/layerlp/layerlp/pkg/render"
)

func TestRender_DOTDefaultOutput(t *testing.T) {
	input := writeSampleGraph(t)

	stdout, _, err := runCLI(t, "render", input, "-f", "dot")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(stdout, "Rendered cli_sample") {
		t.Errorf("missing success line:\n%s", stdout)
	}

	output := strings.TrimSuffix(input, ".sgf") + ".dot"
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	text := string(data)
	if !strings.HasPrefix(text, "digraph \"cli_sample\" {") {
		t.Errorf("unexpected DOT preamble: %q", text[:min(len(text), 40)])
	}
	if !strings.Contains(text, "{ rank=same; 0; 1; }") {
		t.Error("layer 0 rank group missing")
	}
}

func TestRender_ExplicitOutput(t *testing.T) {
	input := writeSampleGraph(t)
	output := filepath.Join(t.TempDir(), "drawing.dot")

	_, _, err := runCLI(t, "render", input, "-f", "dot", "-o", output)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestRender_UnknownFormatFlag(t *testing.T) {
	input := writeSampleGraph(t)

	_, _, err := runCLI(t, "render", input, "-f", "gif")
	if !errors.Is(err, render.ErrUnknownFormat) {
		t.Fatalf("want ErrUnknownFormat, got %v", err)
	}
}
