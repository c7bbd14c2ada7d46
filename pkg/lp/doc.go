// Package lp models integer linear and quadratic programs over typed
// variables and serializes them in the CPLEX LP text format.
//
// # Overview
//
// Layerlp expresses layered-graph ordering problems as programs whose
// variables encode node precedence, positions, edge crossings, stretch, and
// verticality offsets. This package provides the shared vocabulary: every
// variable kind is a small comparable value type implementing [Var], so a
// variable is identified by its typed fields rather than by a formatted
// string. Serialization happens exactly once, in each type's Name method,
// which eliminates a whole class of name-drift bugs between the constraint
// builders and the solution decoder.
//
// # Basic Usage
//
// Create a program with [New], declare variables into their sections, add
// constraints, set an objective, and write:
//
//	p := lp.New("layerlp compile --objective total")
//	a, b := lp.Precedes{I: 0, J: 1}, lp.Precedes{I: 1, J: 0}
//	p.DeclareBinary(a)
//	p.DeclareBinary(b)
//	p.Add(lp.EQ, 1, lp.Plus(a), lp.Plus(b))
//	p.DeclareGeneral(lp.Scalar("total"))
//	p.Minimize(lp.Scalar("total"))
//	err := p.Write(os.Stdout)
//
// # Declarations
//
// The LP format declares variable domains in trailing sections. [Program]
// keeps one insertion-ordered, name-deduplicated bucket per section: Binary,
// General, a nonverticality group rendered as a second General line, Semi
// (semi-continuous), and the bounded group rendered as a Bounds section with
// range [-1, 1]. Declaring a variable twice in the same section is a no-op;
// every variable referenced by a constraint or the objective must be declared
// in exactly one section, and [Program.Write] refuses to serialize otherwise.
//
// # Objectives
//
// [Program.Minimize] sets a linear objective naming a single aggregate
// variable. [Program.MinimizeSquares] sets a quadratic objective minimizing
// the sum of squares of the given variables; coefficients are doubled on
// emission because CPLEX halves quadratic objective coefficients.
//
// # Determinism
//
// Emission order is fully determined by insertion order, so a program built
// from the same graph serializes to the same bytes. [Program.Permute]
// shuffles constraints and their terms with a caller-supplied generator for
// solver benchmarking; [Program.SetTimestamp] pins the header timestamp.
//
// # Concurrency
//
// Program instances are not safe for concurrent use. Build and write a
// program from a single goroutine, or synchronize externally.
package lp
