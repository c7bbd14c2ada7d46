// Package pareto merges Pareto fronts produced by repeated solver runs.
//
// A front is a set of (x, y) objective pairs under minimization on both
// axes. Runs over the same graph with different caps each yield a front;
// merging them keeps only the points no other point beats on both axes.
//
// The text form matches the solver wrapper's output: `x^y;x^y;…` on one
// line, with `lines` (tab-separated) and `csv` variants for plotting.
package pareto

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrBadPoint is returned by Parse for a pair that is not two numbers
	// joined by a caret.
	ErrBadPoint = errors.New("malformed pareto point")
	// ErrUnknownFormat is returned for an output format name that is not
	// list, lines, or csv.
	ErrUnknownFormat = errors.New("unknown pareto format")
)

// Point is one Pareto optimum: two objective values under minimization.
type Point struct {
	X, Y float64
}

// Dominates reports whether p is at least as good as q on both axes. A
// point dominates itself.
func (p Point) Dominates(q Point) bool {
	return p.X <= q.X && p.Y <= q.Y
}

func (p Point) String() string {
	return formatValue(p.X) + "^" + formatValue(p.Y)
}

// Format selects an output style for Write.
type Format string

const (
	// FormatList is the wrapper's own style: x^y pairs joined by semicolons.
	FormatList Format = "list"
	// FormatLines puts one tab-separated point per line.
	FormatLines Format = "lines"
	// FormatCSV puts one comma-separated point per line.
	FormatCSV Format = "csv"
)

// Formats lists the recognized output formats.
func Formats() []Format {
	return []Format{FormatList, FormatLines, FormatCSV}
}

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats() {
		if name == string(f) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownFormat)
}

// Parse reads one front line of the form `x^y;x^y;…`. Empty segments from
// trailing separators are skipped; anything else that is not two numbers
// around a caret is an error.
func Parse(line string) ([]Point, error) {
	var points []Point
	for _, pair := range strings.Split(line, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		xs, ys, ok := strings.Cut(pair, "^")
		if !ok {
			return nil, fmt.Errorf("%q: %w", pair, ErrBadPoint)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", pair, ErrBadPoint)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", pair, ErrBadPoint)
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points, nil
}

// Merge returns the non-dominated union of the given fronts, ascending by
// X. Duplicates collapse; the inputs are not modified.
func Merge(fronts ...[]Point) []Point {
	var front []Point
	for _, points := range fronts {
		for _, p := range points {
			front = insert(front, p)
		}
	}
	slices.SortFunc(front, func(a, b Point) int {
		return cmp.Compare(a.X, b.X)
	})
	return front
}

// insert adds p to a mutually non-dominating front. If any member
// dominates p, no member can be dominated by p, so the front is returned
// unchanged.
func insert(front []Point, p Point) []Point {
	out := make([]Point, 0, len(front)+1)
	for _, q := range front {
		if q.Dominates(p) {
			return front
		}
		if p.Dominates(q) {
			continue
		}
		out = append(out, q)
	}
	return append(out, p)
}

// Write emits the front in the given format. An empty front writes
// nothing.
func Write(w io.Writer, format Format, points []Point) error {
	switch format {
	case FormatList:
		if len(points) == 0 {
			return nil
		}
		parts := make([]string, len(points))
		for i, p := range points {
			parts[i] = p.String()
		}
		_, err := fmt.Fprintln(w, strings.Join(parts, ";"))
		return err
	case FormatLines, FormatCSV:
		sep := "\t"
		if format == FormatCSV {
			sep = ","
		}
		for _, p := range points {
			if _, err := fmt.Fprintf(w, "%s%s%s\n", formatValue(p.X), sep, formatValue(p.Y)); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
