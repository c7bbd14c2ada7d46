package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/layerlp/layerlp/pkg/encode"
	errs "github.com/layerlp/layerlp/pkg/errors"
)

// compileFlags carries the compile command's flag values. Cap flags are
// turned into encoder options only when explicitly set or preset by a
// profile.
type compileFlags struct {
	objective string
	output    string
	profile   string

	total      int
	bottleneck int
	stretch    float64
	bnStretch  float64
	vertical   int
	bnVertical int
	seed       uint64
	bipartite  int
}

// compileCommand creates the compile command, the core of the tool.
func (c *CLI) compileCommand() *cobra.Command {
	var f compileFlags

	cmd := &cobra.Command{
		Use:   "compile <graph.(sgf|json)>",
		Short: "Translate a layered graph into a CPLEX LP program",
		Long: `Translate a proper layered graph into an integer linear (or, for the
quad_* objectives, quadratic) program in CPLEX LP format.

The program fixes the layer assignment and asks the solver for positions
minimizing the chosen objective. Setting a cap flag bounds that quantity
with a hard constraint and pulls its constraint family into the program
even when a different objective is minimized, which is how Pareto fronts
over two criteria are swept:

  layerlp compile g.sgf --objective stretch --total 4

A TOML profile (--config) can preset any of these flags; explicit flags
win over the profile.

With --bipartite the command only scans the graph for dense complete
bipartite channel patterns and reports them; no program is emitted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("bipartite") {
				return c.runBipartite(args[0], f.bipartite)
			}
			opts, err := buildEncodeOptions(cmd, &f)
			if err != nil {
				return err
			}
			return c.runCompile(cmd.Context(), args[0], f.output, opts)
		},
	}

	cmd.Flags().StringVar(&f.objective, "objective", string(encode.Total), "objective to minimize: "+objectiveList())
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&f.profile, "config", "", "TOML profile presetting these flags")
	cmd.Flags().IntVar(&f.total, "total", 0, "cap on total crossings")
	cmd.Flags().IntVar(&f.bottleneck, "bottleneck", 0, "cap on bottleneck crossings")
	cmd.Flags().Float64Var(&f.stretch, "stretch", 0, "cap on total stretch")
	cmd.Flags().Float64Var(&f.bnStretch, "bn-stretch", 0, "cap on bottleneck stretch")
	cmd.Flags().IntVar(&f.vertical, "vertical", 0, "cap on total nonverticality")
	cmd.Flags().IntVar(&f.bnVertical, "bn-vertical", 0, "cap on bottleneck nonverticality")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "shuffle constraint order with this seed")
	cmd.Flags().IntVar(&f.bipartite, "bipartite", 0, "report dense bipartite patterns up to this source-set size instead of compiling (0 = widest layer)")

	return cmd
}

// buildEncodeOptions merges profile values and explicit flags into
// encoder options. Flags beat the profile; the profile beats defaults.
func buildEncodeOptions(cmd *cobra.Command, f *compileFlags) (encode.Options, error) {
	opts := encode.Options{
		CommandLine: strings.Join(os.Args, " "),
	}

	objective := f.objective
	if f.profile != "" {
		p, err := loadProfile(f.profile)
		if err != nil {
			return opts, err
		}
		if p.Objective != "" && !cmd.Flags().Changed("objective") {
			objective = p.Objective
		}
		opts.TotalCap = p.Total
		opts.BottleneckCap = p.Bottleneck
		opts.StretchCap = p.Stretch
		opts.BNStretchCap = p.BNStretch
		opts.VerticalCap = p.Vertical
		opts.BNVerticalCap = p.BNVertical
		opts.Seed = p.Seed
	}

	obj, err := encode.ParseObjective(objective)
	if err != nil {
		return opts, errs.Wrap(errs.ErrCodeInvalidObjective, err, "parse objective")
	}
	opts.Objective = obj

	flags := cmd.Flags()
	if flags.Changed("total") {
		opts.TotalCap = &f.total
	}
	if flags.Changed("bottleneck") {
		opts.BottleneckCap = &f.bottleneck
	}
	if flags.Changed("stretch") {
		opts.StretchCap = &f.stretch
	}
	if flags.Changed("bn-stretch") {
		opts.BNStretchCap = &f.bnStretch
	}
	if flags.Changed("vertical") {
		opts.VerticalCap = &f.vertical
	}
	if flags.Changed("bn-vertical") {
		opts.BNVerticalCap = &f.bnVertical
	}
	if flags.Changed("seed") {
		opts.Seed = &f.seed
	}

	return opts, nil
}

func (c *CLI) runCompile(ctx context.Context, input, output string, opts encode.Options) error {
	g, err := readGraph(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	logger := loggerFromContext(ctx)
	opts.Progress = func(stage string, constraints int) {
		logger.Debug("family encoded", "stage", stage, "constraints", constraints)
	}

	sp := c.newSpinner(ctx, "Building constraint program...")
	sp.Start()

	start := time.Now()
	program, err := encode.Build(g, opts)
	if err != nil {
		sp.StopWithError("Compilation failed")
		return fmt.Errorf("compile %s: %w", input, err)
	}
	elapsed := time.Since(start).Round(time.Millisecond)
	sp.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if output == "" {
		logger.Debug("compiled to stdout", "constraints", program.Len(), "duration", elapsed)
		return program.Write(c.Out)
	}

	if err := errs.ValidateOutputPath(output); err != nil {
		return err
	}
	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	if err := program.Write(file); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", output, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	counts := program.Counts()
	c.printSuccess("Compiled %s", g.Name())
	c.printFile(output)
	c.printKeyValue("objective", string(opts.Objective))
	c.printKeyValue("constraints", strconv.Itoa(counts.Constraints))
	c.printKeyValue("binary", strconv.Itoa(counts.Binary))
	c.printKeyValue("integer", strconv.Itoa(counts.Integer))
	if counts.SemiCont > 0 {
		c.printKeyValue("semi-cont", strconv.Itoa(counts.SemiCont))
	}
	if counts.Bounded > 0 {
		c.printKeyValue("bounded", strconv.Itoa(counts.Bounded))
	}
	c.printKeyValue("duration", elapsed.String())
	c.printNewline()

	base := strings.TrimSuffix(output, filepath.Ext(output))
	c.printNextStep("Solve, then decode", appName+" decode "+base+".sol")

	return nil
}

// runBipartite scans the channels for complete bipartite patterns and
// reports them without compiling anything.
func (c *CLI) runBipartite(input string, limit int) error {
	g, err := readGraph(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}
	if err := g.Validate(); err != nil {
		return fmt.Errorf("graph %s: %w", g.Name(), err)
	}

	found := encode.BipartiteDensities(g, limit)

	fmt.Fprintln(c.Out, StyleTitle.Render(g.Name()))
	c.printGraphStats(g)
	c.printNewline()

	if len(found) == 0 {
		fmt.Fprintln(c.Out, "no complete bipartite patterns of 6+ edges")
		return nil
	}
	for _, cand := range found {
		fmt.Fprintf(c.Out, "channel %d: sources %s targets %s (%d edges)\n",
			cand.Layer,
			summarize(cand.Sources, len(cand.Sources)),
			summarize(cand.Targets, len(cand.Targets)),
			cand.Edges())
	}
	return nil
}

// objectiveList renders the known objectives for flag help.
func objectiveList() string {
	names := make([]string, len(encode.Objectives()))
	for i, o := range encode.Objectives() {
		names[i] = string(o)
	}
	return strings.Join(names, ", ")
}
