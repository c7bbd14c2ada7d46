// Package pkg provides the core libraries for layerlp graph drawing
// compilation.
//
// # Overview
//
// layerlp turns proper layered graphs into integer linear (or quadratic)
// programs in CPLEX LP format, hands them to an external solver, and decodes
// the solution listing back into a drawing. The pkg directory is organized
// into three main areas:
//
//  1. Graph model - [sgf] (format, validation, metrics) and [gen] (benchmark
//     instances)
//  2. Compilation - [encode] (constraint families) and [lp] (program model +
//     LP emission)
//  3. Results - [solution] (listing decoder), [render] (diagrams), and
//     [pareto] (front merging)
//
// # Architecture
//
// The typical round trip through layerlp:
//
//	SGF/JSON graph file
//	         ↓
//	    [sgf] package (model, validation, metrics)
//	         ↓
//	    [encode] package (constraint families + objective)
//	         ↓
//	    [lp] package (CPLEX LP text)
//	         ↓
//	    external solver → solution listing
//	         ↓
//	    [solution] package (positions back onto the graph)
//	         ↓
//	    [render] package (DOT/SVG/PNG/PDF)
//
// # Quick Start
//
// Compile a graph into a crossing-minimization program:
//
//	import (
//	    "os"
//	    "github.com/layerlp/layerlp/pkg/encode"
//	    "github.com/layerlp/layerlp/pkg/sgf"
//	)
//
//	// 1. Load and validate the graph
//	g, _ := sgf.ReadFile("graph.sgf")
//
//	// 2. Build the program
//	program, _ := encode.Build(g, encode.Options{Objective: encode.Total})
//
//	// 3. Emit CPLEX LP text for the solver
//	f, _ := os.Create("graph.lp")
//	defer f.Close()
//	program.Write(f)
//
// # Main Packages
//
// ## Graph Model
//
// [sgf] - The layered graph model and its text format: one node per line with
// a fixed layer and an optional position, one edge per line between adjacent
// layers. Includes JSON import/export, structural validation, and the layout
// metrics (crossings, stretch, nonverticality) the programs minimize.
//
// [gen] - Benchmark generators: seeded random layered graphs with guaranteed
// channel connectivity, and subset lattices, a classic worst case for
// crossing minimization.
//
// ## Compilation
//
// [encode] - Translates a graph into constraint families: ordering binaries
// with antisymmetry and transitivity, position variables, edge marks,
// crossing detection, stretch and verticality measures, caps, and the
// objective. Eight objectives cover total/bottleneck crossings, linear and
// quadratic stretch, and linear and quadratic verticality.
//
// [lp] - The program model and CPLEX LP emitter: typed variable sections
// (Binary, General, Semi, Bounds), folded constraint lines, quadratic
// objective brackets, and seeded constraint permutation for solver
// benchmarking.
//
// ## Results
//
// [solution] - Decodes solver solution listings (the BeginSolution /
// EndSolution block) back into positioned graphs.
//
// [render] - Draws layered graphs: deterministic DOT with one rank per
// layer, SVG via Graphviz, and PNG/PDF via rsvg-convert.
//
// [pareto] - Parses, merges, and writes Pareto fronts collected from
// bi-criteria compile sweeps.
//
// ## Support
//
// [errors] - Coded errors for CLI-facing classification.
//
// [buildinfo] - ldflags-injected version metadata.
//
// # Common Workflows
//
// Decode a solver listing and measure the result:
//
//	g, _ := solution.ParseFile("graph.sol")
//	m := sgf.Measure(g)
//	fmt.Printf("%d crossings, stretch %.2f\n", m.Crossings, m.TotalStretch)
//
// Sweep a Pareto front over crossings and stretch:
//
//	cap := 4
//	program, _ := encode.Build(g, encode.Options{
//	    Objective: encode.Stretch,
//	    TotalCap:  &cap,
//	})
//
// Render a decoded drawing:
//
//	data, _ := render.Render(ctx, g, render.FormatSVG)
//	os.WriteFile("drawing.svg", data, 0o644)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/encode/...       # Specific package
//	go test -run Example ./pkg/... # Examples only
//
// [sgf]: https://pkg.go.dev/github.com/layerlp/layerlp/pkg/sgf
// [gen]: https://pkg.go.dev/github.com/layerlp/layerlp/pkg/gen
// [encode]: https://pkg.go.dev/github.com/layerlp/layerlp/pkg/encode
// [lp]: https://pkg.go.dev/github.com/layerlp/layerlp/pkg/lp
// [solution]: https://pkg.go.dev/github.com/layerlp/layerlp/pkg/solution
// [render]: https://pkg.go.dev/github.com/layerlp/layerlp/pkg/render
// [pareto]: https://pkg.go.dev/github.com/layerlp/layerlp/pkg/pareto
// [errors]: https://pkg.go.dev/github.com/layerlp/layerlp/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/layerlp/layerlp/pkg/buildinfo
package pkg
