package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/layerlp/layerlp/pkg/errors"
	"github.com/layerlp/layerlp/pkg/sgf"
)

func TestCompile_Stdout(t *testing.T) {
	input := writeSampleGraph(t)

	stdout, _, err := runCLI(t, "compile", input)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !strings.HasPrefix(stdout, "\\ ") {
		t.Errorf("program should start with a comment line, got %q", stdout[:min(len(stdout), 20)])
	}
	if !strings.Contains(stdout, "Min\n  total\n") {
		t.Error("default objective should minimize total")
	}
	if !strings.Contains(stdout, "+ x_0_1 + x_1_0 = 1") {
		t.Error("missing antisymmetry constraint")
	}
	if !strings.HasSuffix(stdout, "End\n") {
		t.Error("program should end with End")
	}
}

func TestCompile_ToFile(t *testing.T) {
	input := writeSampleGraph(t)
	output := filepath.Join(t.TempDir(), "sample.lp")

	stdout, _, err := runCLI(t, "compile", input, "-o", output)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !strings.Contains(stdout, "Compiled cli_sample") {
		t.Errorf("missing success line:\n%s", stdout)
	}
	if !strings.Contains(stdout, output) {
		t.Error("success output should name the file")
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "Min\n  total\n") || !strings.HasSuffix(text, "End\n") {
		t.Error("output file does not hold a complete program")
	}
}

func TestCompile_StretchCapPullsFamily(t *testing.T) {
	input := writeSampleGraph(t)

	stdout, _, err := runCLI(t, "compile", input, "--stretch", "2.5")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !strings.Contains(stdout, "+ stretch <= 2.5") {
		t.Error("missing stretch cap constraint")
	}
	if !strings.Contains(stdout, "Semi\n") {
		t.Error("stretch cap should declare semi-continuous magnitudes")
	}
	if !strings.Contains(stdout, "Min\n  total\n") {
		t.Error("objective should stay total when only a cap is set")
	}
}

func TestCompile_SeedShufflesDeterministically(t *testing.T) {
	input := writeSampleGraph(t)

	first, _, err := runCLI(t, "compile", input, "--seed", "7")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	second, _, err := runCLI(t, "compile", input, "--seed", "7")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	// The header carries a wall-clock timestamp; compare bodies.
	if stripComments(first) != stripComments(second) {
		t.Error("same seed should produce identical programs")
	}
}

// stripComments drops the \-prefixed header lines of an LP listing.
func stripComments(program string) string {
	var sb strings.Builder
	for _, line := range strings.Split(program, "\n") {
		if strings.HasPrefix(line, "\\") {
			continue
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestCompile_InvalidObjective(t *testing.T) {
	input := writeSampleGraph(t)

	_, _, err := runCLI(t, "compile", input, "--objective", "prettiness")
	if !errs.Is(err, errs.ErrCodeInvalidObjective) {
		t.Fatalf("want invalid objective error, got %v", err)
	}
}

func TestCompile_MissingInput(t *testing.T) {
	_, _, err := runCLI(t, "compile", filepath.Join(t.TempDir(), "absent.sgf"))
	if err == nil {
		t.Fatal("missing input should fail")
	}
}

// writeDenseGraph stores a complete bipartite channel of 2x3 nodes, the
// smallest pattern the density scan reports.
func writeDenseGraph(t *testing.T) string {
	t.Helper()
	g := sgf.New("dense")
	for id, layer := range []int{0, 0, 1, 1, 1} {
		if err := g.AddNode(sgf.Node{ID: id, Layer: layer, Position: -1}); err != nil {
			t.Fatalf("AddNode(%d): %v", id, err)
		}
	}
	for _, src := range []int{0, 1} {
		for _, tgt := range []int{2, 3, 4} {
			if err := g.AddEdge(sgf.Edge{Source: src, Target: tgt}); err != nil {
				t.Fatalf("AddEdge(%d->%d): %v", src, tgt, err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "dense.sgf")
	if err := sgf.WriteFile(path, g); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestCompile_BipartiteReport(t *testing.T) {
	input := writeDenseGraph(t)

	stdout, _, err := runCLI(t, "compile", input, "--bipartite", "2")
	if err != nil {
		t.Fatalf("compile --bipartite: %v", err)
	}
	if !strings.Contains(stdout, "channel 0: sources 0 1 targets 2 3 4 (6 edges)") {
		t.Errorf("report missing the 2x3 pattern:\n%s", stdout)
	}
	if strings.Contains(stdout, "Min") {
		t.Error("diagnostic run should not emit a program")
	}
}

func TestCompile_BipartiteNothingFound(t *testing.T) {
	input := writeSampleGraph(t)

	stdout, _, err := runCLI(t, "compile", input, "--bipartite", "0")
	if err != nil {
		t.Fatalf("compile --bipartite: %v", err)
	}
	if !strings.Contains(stdout, "no complete bipartite patterns") {
		t.Errorf("empty scan should say so:\n%s", stdout)
	}
}

func TestCompile_VerboseLogsStages(t *testing.T) {
	input := writeSampleGraph(t)

	_, stderr, err := runCLI(t, "--verbose", "compile", input)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !strings.Contains(stderr, "family encoded") {
		t.Errorf("verbose run should log encoding stages:\n%s", stderr)
	}
}
