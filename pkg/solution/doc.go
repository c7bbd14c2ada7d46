// Package solution decodes CPLEX solution listings back into layered graphs.
//
// # Overview
//
// A solver run over a generated program produces a line-oriented listing:
// free-form preamble, an InputFile field naming the program file, run
// metadata (Runtime, TimedOut, ProvedOptimal, Objective), and the variable
// assignments between BeginSolution and EndSolution markers. Parse walks
// that listing once and rebuilds the graph the program was generated from:
// position variables recover nodes with their solved layer slots, crossing
// variables recover edges. Every edge is recoverable because the generator
// pins one zero-valued crossing variable per edge into the program.
//
// # Basic Usage
//
//	g, err := solution.ParseFile("tiny.sol")
//	if err != nil {
//		return err
//	}
//	sgf.Write(os.Stdout, g)
//
// The graph's name is the InputFile value minus its .lp suffix; preamble
// and metadata lines carry over as graph comments.
//
// # Errors
//
// Missing BeginSolution or EndSolution markers mean the solver output is
// unusable and Parse reports ErrMissingSentinel. Lines recognized as
// position or crossing variables that fail to decode report
// ErrMalformedLine. All other variable lines are ignored.
//
// # Concurrency
//
// Parse reads its input in a single pass and returns an independent graph;
// no shared state survives the call.
package solution
