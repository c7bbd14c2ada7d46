package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/layerlp/layerlp/pkg/solution"
)

// decodeCommand creates the decode command mapping solver output back to
// a drawing.
func (c *CLI) decodeCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "decode <listing.sol>",
		Short: "Recover a drawing from a solver solution listing",
		Long: `Recover a positioned graph from a solver's solution listing.

The listing names the compiled program (InputFile), optional run
metadata, and variable assignments between BeginSolution and
EndSolution. Position variables become node slots; crossing variables
recover the edges. Variables from other constraint families are
ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateGraphFormat(format); err != nil {
				return err
			}
			return c.runDecode(args[0], output, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "sgf", "output format: sgf (default), json")

	return cmd
}

func (c *CLI) runDecode(input, output, format string) error {
	g, err := solution.ParseFile(input)
	if err != nil {
		return fmt.Errorf("decode %s: %w", input, err)
	}

	if output == "" {
		return writeGraph(c.Out, g, format)
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	if err := writeGraph(file, g, format); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", output, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	c.printSuccess("Decoded %s", g.Name())
	c.printFile(output)
	c.printGraphStats(g)
	c.printNewline()
	c.printNextStep("Inspect", appName+" stats "+output)

	return nil
}
