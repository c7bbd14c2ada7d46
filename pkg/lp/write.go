package lp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	indent       = "  "
	continuation = indent + indent
	maxLineTerms = 20
)

// Write validates the program and serializes it in CPLEX LP format.
func (p *Program) Write(w io.Writer) error {
	if err := p.check(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	p.writeHeader(bw)
	p.writeObjective(bw)
	p.writeConstraints(bw)
	p.writeBounds(bw)
	p.writeSections(bw)
	fmt.Fprintln(bw, "End")
	return bw.Flush()
}

func (p *Program) writeHeader(bw *bufio.Writer) {
	fmt.Fprintf(bw, "\\ %s\n", p.commandLine)
	fmt.Fprintf(bw, "\\ %s\n", p.stamp.Format("2006/01/02 15:04:05"))
	for _, c := range p.comments {
		fmt.Fprintf(bw, "\\ %s\n", c)
	}
}

func (p *Program) writeObjective(bw *bufio.Writer) {
	fmt.Fprintln(bw, "Min")
	if len(p.quadratic) > 0 {
		terms := make([]string, len(p.quadratic))
		for i, v := range p.quadratic {
			// CPLEX halves quadratic objective coefficients, hence the 2.
			terms[i] = "+ 2 " + v.Name() + "^2"
		}
		fmt.Fprintf(bw, "%s[ %s ]/2\n", indent, fold(terms))
		return
	}
	fmt.Fprintf(bw, "%s%s\n", indent, p.objective.Name())
}

func (p *Program) writeConstraints(bw *bufio.Writer) {
	fmt.Fprintln(bw, "st")
	for i := range p.constraints {
		c := &p.constraints[i]
		terms := make([]string, len(c.Terms))
		for j, t := range c.Terms {
			terms[j] = formatTerm(t)
		}
		fmt.Fprintf(bw, "%s%s %s %s\n", indent, fold(terms), c.Rel, formatNumber(c.RHS))
	}
}

func (p *Program) writeBounds(bw *bufio.Writer) {
	if len(p.bounded.order) == 0 {
		return
	}
	fmt.Fprintln(bw, "Bounds")
	for _, v := range p.bounded.order {
		fmt.Fprintf(bw, "%s-1 <= %s <= 1\n", indent, v.Name())
	}
}

// writeSections emits the variable declarations. Binary and General headers
// always print, even with nothing declared; downstream tooling keys on them.
func (p *Program) writeSections(bw *bufio.Writer) {
	fmt.Fprintln(bw, "Binary")
	fmt.Fprintf(bw, "%s%s\n", indent, fold(p.binary.names()))
	fmt.Fprintln(bw, "General")
	fmt.Fprintf(bw, "%s%s\n", indent, fold(p.general.names()))
	if len(p.nonvert.order) > 0 {
		fmt.Fprintf(bw, "%s%s\n", indent, fold(p.nonvert.names()))
	}
	if len(p.semi.order) > 0 {
		fmt.Fprintln(bw, "Semi")
		fmt.Fprintf(bw, "%s%s\n", indent, fold(p.semi.names()))
	}
}

func formatTerm(t Term) string {
	sign, mag := "+", t.Coef
	if mag < 0 {
		sign, mag = "-", -mag
	}
	if mag == 1 {
		return sign + " " + t.Var.Name()
	}
	return sign + " " + formatNumber(mag) + " " + t.Var.Name()
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// fold joins items with spaces, breaking onto an indented continuation line
// after every maxLineTerms items.
func fold(items []string) string {
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			if i%maxLineTerms == 0 {
				sb.WriteString("\n" + continuation)
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(item)
	}
	return sb.String()
}
