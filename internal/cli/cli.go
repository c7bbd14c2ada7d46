// Package cli implements the layerlp command-line interface.
//
// This package provides commands for compiling layered graphs into
// integer (quadratic) programs, decoding solver listings back into
// drawings, measuring layout quality, generating benchmark instances,
// rendering diagrams, and merging Pareto fronts. The CLI is built with
// cobra; logging uses charmbracelet/log and terminal styling lipgloss.
//
// # Commands
//
//   - compile: translate a graph into a CPLEX LP program
//   - decode: recover a drawing from a solver solution listing
//   - stats: report crossing/stretch/verticality metrics for a drawing
//   - generate: produce random or subset-lattice benchmark graphs
//   - render: draw a graph as DOT, SVG, PNG, or PDF
//   - view: browse a graph's layers interactively
//   - pareto: merge Pareto front files, dropping dominated points
//
// # Logging
//
// All commands support --verbose (-v) for debug logging, --quiet (-q)
// to suppress everything below errors, and --log-json for structured
// output. The logger travels through context.Context so long-running
// stages can report progress.
package cli

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/layerlp/layerlp/pkg/buildinfo"
	errs "github.com/layerlp/layerlp/pkg/errors"
	"github.com/layerlp/layerlp/pkg/sgf"
)

// appName is the binary name used in help text and generated headers.
const appName = "layerlp"

// CLI holds the streams and logger shared by all commands. Tests inject
// buffers; main wires the process streams.
type CLI struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	Logger *log.Logger
}

// New creates a CLI writing user output to out and logs to err.
func New(in io.Reader, out, err io.Writer) *CLI {
	return &CLI{
		In:     in,
		Out:    out,
		Err:    err,
		Logger: newLogger(err, false, false, false),
	}
}

// RootCommand assembles the root cobra command with every subcommand
// registered and the persistent logging flags bound.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose bool
		quiet   bool
		logJSON bool
	)

	root := &cobra.Command{
		Use:   appName,
		Short: "layerlp compiles layered graph drawing into integer programs",
		Long: `layerlp turns proper layered graphs into integer linear or quadratic
programs in CPLEX LP format. An external solver optimizes the drawing;
layerlp then decodes the solution listing back into node positions.

Typical round trip:

  layerlp compile graph.sgf -o graph.lp
  gurobi_cl ResultFile=graph.sol graph.lp   (or any LP solver)
  layerlp decode graph.sol -o drawing.sgf
  layerlp render drawing.sgf -f svg`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.Logger = newLogger(c.Err, verbose, quiet, logJSON)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetIn(c.In)
	root.SetOut(c.Out)
	root.SetErr(c.Err)

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")
	root.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit logs as JSON")

	root.AddCommand(c.compileCommand())
	root.AddCommand(c.decodeCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.paretoCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// readGraph loads a graph from an SGF or JSON file, chosen by extension.
func readGraph(path string) (*sgf.Graph, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return sgf.ImportJSON(path)
	}
	return sgf.ReadFile(path)
}

// validateGraphFormat checks a graph output format name up front, before
// any output file is created.
func validateGraphFormat(format string) error {
	switch format {
	case "sgf", "json":
		return nil
	}
	return errs.New(errs.ErrCodeInvalidFormat, "unknown graph format %q (want sgf or json)", format)
}

// writeGraph stores a graph as SGF or JSON, chosen by format.
func writeGraph(w io.Writer, g *sgf.Graph, format string) error {
	if err := validateGraphFormat(format); err != nil {
		return err
	}
	if format == "json" {
		return sgf.WriteJSON(w, g)
	}
	return sgf.Write(w, g)
}
