package solution

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/layerlp/layerlp/pkg/sgf"
)

var (
	// ErrMissingSentinel is returned by Parse when the BeginSolution or
	// EndSolution marker never appears. Truncated solver output is not
	// worth a partial graph.
	ErrMissingSentinel = errors.New("missing solution sentinel")
	// ErrMalformedLine is returned by Parse when a position or crossing
	// variable line cannot be decoded.
	ErrMalformedLine = errors.New("malformed solution line")
)

// fallbackName names the graph when the listing carries no InputFile field.
const fallbackName = "unknown_name"

// parser states, in the order the listing moves through them.
const (
	stateHeader = iota // preamble before the InputFile field
	stateMeta          // run metadata before BeginSolution
	stateBlock         // variable assignments
	stateDone
)

// Parse decodes a solver solution listing into a layered graph.
//
// Preamble lines and the recognized metadata fields (Runtime, TimedOut,
// ProvedOptimal, Objective) become graph comments. Inside the sentinel
// block, p_<id>_<layer> lines recover nodes with their solved positions
// (rounded to the nearest integer) and c_<i>_<j>_<k>_<l> lines recover the
// two edges they name, deduplicated in first-seen order. Other variable
// lines are ignored.
func Parse(r io.Reader) (*sgf.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	name := fallbackName
	var comments []string
	var nodes []sgf.Node
	var edges []sgf.Edge
	seen := make(map[sgf.Edge]struct{})

	state := stateHeader
	lineno := 0
	for state != stateDone && scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "BeginSolution" {
			state = stateBlock
			continue
		}
		fields := strings.Fields(line)

		switch state {
		case stateHeader:
			if fields[0] == "InputFile" {
				if len(fields) < 2 {
					return nil, fmt.Errorf("line %d: InputFile without a name: %w", lineno, ErrMalformedLine)
				}
				name = strings.TrimSuffix(fields[1], ".lp")
				state = stateMeta
				continue
			}
			comments = append(comments, line)

		case stateMeta:
			switch fields[0] {
			case "Runtime", "TimedOut", "ProvedOptimal", "Objective":
				comments = append(comments, line)
			}

		case stateBlock:
			if line == "EndSolution" {
				state = stateDone
				continue
			}
			switch key, _, _ := strings.Cut(fields[0], "_"); key {
			case "p":
				n, err := decodeNode(fields)
				if err != nil {
					return nil, fmt.Errorf("line %d: %q: %w", lineno, line, err)
				}
				nodes = append(nodes, n)
			case "c":
				a, b, err := decodeEdges(fields[0])
				if err != nil {
					return nil, fmt.Errorf("line %d: %q: %w", lineno, line, err)
				}
				for _, e := range []sgf.Edge{a, b} {
					if _, ok := seen[e]; ok {
						continue
					}
					seen[e] = struct{}{}
					edges = append(edges, e)
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read solution: %w", err)
	}
	switch state {
	case stateHeader, stateMeta:
		return nil, fmt.Errorf("BeginSolution: %w", ErrMissingSentinel)
	case stateBlock:
		return nil, fmt.Errorf("EndSolution: %w", ErrMissingSentinel)
	}

	g := sgf.New(name)
	for _, c := range comments {
		g.AddComment(c)
	}
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("decode solution: %w", err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e); err != nil {
			return nil, fmt.Errorf("decode solution: %w", err)
		}
	}
	return g, nil
}

// ParseFile decodes the solution file at path.
// The error wraps the underlying cause with the file path for context.
func ParseFile(path string) (*sgf.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// decodeNode recovers a node from a p_<id>_<layer> assignment. The solved
// position arrives as a float and rounds half up; solvers report integral
// variables with noise in either direction.
func decodeNode(fields []string) (sgf.Node, error) {
	parts := strings.Split(fields[0], "_")
	if len(parts) != 3 || len(fields) < 2 {
		return sgf.Node{}, ErrMalformedLine
	}
	id, err := strconv.Atoi(parts[1])
	if err != nil {
		return sgf.Node{}, fmt.Errorf("node id: %w", ErrMalformedLine)
	}
	layer, err := strconv.Atoi(parts[2])
	if err != nil {
		return sgf.Node{}, fmt.Errorf("node layer: %w", ErrMalformedLine)
	}
	value, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return sgf.Node{}, fmt.Errorf("position value: %w", ErrMalformedLine)
	}
	return sgf.Node{ID: id, Layer: layer, Position: int(math.Floor(value + 0.5))}, nil
}

// decodeEdges recovers the two edges a c_<i>_<j>_<k>_<l> variable names.
// The assigned value is irrelevant: a declared crossing variable proves both
// edges exist.
func decodeEdges(name string) (sgf.Edge, sgf.Edge, error) {
	parts := strings.Split(name, "_")
	if len(parts) != 5 {
		return sgf.Edge{}, sgf.Edge{}, ErrMalformedLine
	}
	var ids [4]int
	for i, p := range parts[1:] {
		id, err := strconv.Atoi(p)
		if err != nil {
			return sgf.Edge{}, sgf.Edge{}, fmt.Errorf("edge endpoint: %w", ErrMalformedLine)
		}
		ids[i] = id
	}
	return sgf.Edge{Source: ids[0], Target: ids[1]}, sgf.Edge{Source: ids[2], Target: ids[3]}, nil
}
