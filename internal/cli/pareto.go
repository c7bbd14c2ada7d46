package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/layerlp/layerlp/pkg/pareto"
)

// paretoCommand creates the pareto command merging front files.
func (c *CLI) paretoCommand() *cobra.Command {
	var (
		formatStr string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "pareto <front files...>",
		Short: "Merge Pareto front files, dropping dominated points",
		Long: `Merge files of Pareto points collected from bi-criteria compile runs.

Each non-empty line holds one front as semicolon-separated x^y pairs,
where x and y are the two objective values under minimization. The
merged front keeps only non-dominated points, sorted by the first
objective.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := pareto.ParseFormat(formatStr)
			if err != nil {
				return err
			}
			return c.runPareto(args, output, format)
		},
	}

	cmd.Flags().StringVarP(&formatStr, "format", "f", string(pareto.FormatList), "output format: list (default), lines, csv")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func (c *CLI) runPareto(files []string, output string, format pareto.Format) error {
	var fronts [][]pareto.Point
	for _, path := range files {
		read, err := readFronts(path)
		if err != nil {
			return err
		}
		fronts = append(fronts, read...)
	}

	merged := pareto.Merge(fronts...)

	if output == "" {
		return pareto.Write(c.Out, format, merged)
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	if err := pareto.Write(file, format, merged); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", output, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	c.printSuccess("Merged %d file(s)", len(files))
	c.printFile(output)
	c.printKeyValue("points", strconv.Itoa(len(merged)))

	return nil
}

// readFronts parses every non-empty line of a front file.
func readFronts(path string) ([][]pareto.Point, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open front %s: %w", path, err)
	}
	defer file.Close()

	var fronts [][]pareto.Point
	scanner := bufio.NewScanner(file)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		front, err := pareto.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineno, err)
		}
		fronts = append(fronts, front)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read front %s: %w", path, err)
	}

	return fronts, nil
}
