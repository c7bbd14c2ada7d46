package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/layerlp/layerlp/pkg/render"
)

// renderCommand creates the render command drawing graphs as diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output    string
		formatStr string
	)

	cmd := &cobra.Command{
		Use:   "render <graph.(sgf|json)>",
		Short: "Draw a graph as DOT, SVG, PNG, or PDF",
		Long: `Draw a layered graph as a Graphviz diagram.

Layers map to ranks with layer 0 at the bottom. When the graph carries
positions (decoded solver output), the computed left-to-right order is
pinned; raw inputs are ordered by Graphviz.

The dot format needs no external tooling. PNG and PDF require
rsvg-convert on PATH (librsvg2-bin on Debian, librsvg via Homebrew).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(formatStr)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], output, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&formatStr, "format", "f", "svg", "output format: dot, svg (default), png, pdf")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input, output string, format render.Format) error {
	g, err := readGraph(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	sp := c.newSpinner(ctx, fmt.Sprintf("Rendering %s...", format))
	sp.Start()

	data, err := render.Render(ctx, g, format)
	if err != nil {
		sp.StopWithError("Render failed")
		return fmt.Errorf("render %s: %w", input, err)
	}
	sp.Stop()

	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		output = base + "." + string(format)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	c.printSuccess("Rendered %s", g.Name())
	c.printFile(output)
	c.printGraphStats(g)

	return nil
}
