package sgf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Read parses a layered graph from SGF text.
//
// Recognized tag lines:
//
//	c <text>                     comment, preserved in order
//	t <name> [nodes edges [layers]]  graph name; counts are ignored
//	n <id> <layer> [position]    node
//	e <source> <target>          edge
//
// Blank lines and unknown tags are skipped. Malformed node or edge records
// and graph violations (duplicate IDs, non-adjacent edges) are errors
// annotated with the offending line number.
//
// Read does not validate layer contiguity; call [Graph.Validate] before
// generating constraints. Read does not close r.
func Read(r io.Reader) (*Graph, error) {
	g := New("")
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "c":
			g.AddComment(strings.TrimSpace(strings.TrimPrefix(line, "c")))
		case "t":
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: t line is missing the graph name", lineno)
			}
			g.SetName(fields[1])
		case "n":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: n line needs an id and a layer", lineno)
			}
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: node id %q: %w", lineno, fields[1], err)
			}
			layer, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: node layer %q: %w", lineno, fields[2], err)
			}
			pos := -1
			if len(fields) >= 4 {
				pos, err = strconv.Atoi(fields[3])
				if err != nil {
					return nil, fmt.Errorf("line %d: node position %q: %w", lineno, fields[3], err)
				}
			}
			if err := g.AddNode(Node{ID: id, Layer: layer, Position: pos}); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
		case "e":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: e line needs a source and a target", lineno)
			}
			src, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: edge source %q: %w", lineno, fields[1], err)
			}
			tgt, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: edge target %q: %w", lineno, fields[2], err)
			}
			if err := g.AddEdge(Edge{Source: src, Target: tgt}); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read sgf: %w", err)
	}

	return g, nil
}

// ReadFile parses the SGF file at path.
// The error wraps the underlying cause with the file path for context.
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
