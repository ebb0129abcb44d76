// Package driver orchestrates the sequential parse → plan → wrap → fill →
// render pipeline the core planner sits inside, translating its results and
// failures into the CLI's own error taxonomy.
package driver

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/coltab/coltab/pkg/input"
	"github.com/coltab/coltab/pkg/plan"
	"github.com/coltab/coltab/pkg/render"
	"github.com/coltab/coltab/pkg/util"
	"github.com/coltab/coltab/pkg/width"
)

// Options configures a single render run. It mirrors the CLI flags exactly
// so cmd/root.go can build one straight from parsed flag values.
type Options struct {
	Widths         string // raw -W value, e.g. "14,-,20"; empty means all unset
	TableWidth     int    // must be positive; cmd resolves the terminal-width default before calling Render
	Layout         string
	Strict         bool
	Delimiter      rune
	BreakLongWords bool
}

// Result is what a render run produced, for a caller that wants the text and
// whether any over-width warning needs surfacing before it decides whether
// to print it.
type Result struct {
	Output   string
	Warnings []string
}

// Render runs the full pipeline over r and returns the final table text.
// Every failure is returned as a *util.CLIError so the caller can read its
// exit code directly.
func Render(r io.Reader, opts Options) (Result, error) {
	layout, ok := render.Registry[opts.Layout]
	if !ok {
		return Result{}, suggestLayout(opts.Layout)
	}

	delim := opts.Delimiter
	if delim == 0 {
		delim = '\t'
	}
	rows, err := input.Parse(r, input.ParseOptions{Delimiter: delim})
	if err != nil {
		return Result{}, util.Inputf("reading input: %s", err)
	}
	if len(rows) == 0 {
		return Result{}, util.Argumentf("input has no rows")
	}

	table := plan.NewTable(rows, 0)

	userWidths, err := parseWidths(opts.Widths, table.NCols)
	if err != nil {
		return Result{}, err
	}

	tableWidth := opts.TableWidth
	if tableWidth <= 0 {
		return Result{}, util.Argumentf("table width must be positive")
	}
	budget := tableWidth - layout.Overhead(table.NCols)

	wrapOpts := width.Options{BreakLongWords: opts.BreakLongWords}

	result, err := plan.Plan(table, userWidths, budget, wrapOpts)
	if err != nil {
		if ie, ok := err.(*plan.InfeasibleError); ok {
			return Result{}, util.PlanningInfeasiblef("%s", ie.Error())
		}
		return Result{}, util.Argumentf("%s", err)
	}

	var warnings []string
	filled := make([][]render.Block, len(table.Rows))
	for ri, row := range table.Rows {
		blocks := render.FillRow(row, result.Widths, wrapOpts)
		for c, b := range blocks {
			for _, line := range b.Lines {
				if width.DW(line) > result.Widths[c] {
					w := fmt.Sprintf("row %d, column %d: line %q is wider than its column (%d > %d)",
						ri+1, c+1, line, width.DW(line), result.Widths[c])
					if opts.Strict {
						return Result{}, util.OverWidthf("%s", w)
					}
					warnings = append(warnings, w)
				}
			}
		}
		filled[ri] = blocks
	}

	// Input rows carry no header/data distinction; every row is a data row.
	out := layout.Render(filled, result.Widths, false)
	return Result{Output: out, Warnings: warnings}, nil
}

// parseWidths turns the raw "-W" value into the planner's UserWidths
// vector, defaulting every column to plan.Unset when the flag is absent.
func parseWidths(raw string, nCols int) ([]int, error) {
	out := make([]int, nCols)
	if raw == "" {
		return out, nil
	}

	items := strings.Split(raw, ",")
	if len(items) != nCols {
		return nil, util.Argumentf("--widths has %d entries, input has %d columns", len(items), nCols)
	}
	for i, item := range items {
		item = strings.TrimSpace(item)
		if item == "-" {
			out[i] = plan.Unset
			continue
		}
		n, err := strconv.Atoi(item)
		if err != nil || n <= 0 {
			return nil, util.Argumentf("--widths entry %q is not a positive integer or '-'", item)
		}
		out[i] = n
	}
	return out, nil
}

func suggestLayout(name string) *util.CLIError {
	if s, ok := render.Suggest(name); ok {
		return util.Argumentf("unknown layout %q; did you mean %q?", name, s)
	}
	return util.Argumentf("unknown layout %q; valid layouts: %s", name, strings.Join(render.Names(), ", "))
}
