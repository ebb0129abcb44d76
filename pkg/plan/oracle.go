package plan

import (
	"github.com/coltab/coltab/pkg/width"
)

// Inf is the sentinel line count for a row that cannot be wrapped within a
// given column width without producing an over-width line. It is kept well
// below the overflow range of int so that sums across rows can saturate
// without wrapping around.
const Inf = 1 << 30

// Table is the read-only view of cell contents the oracle and planner
// share. Rows are standardized to NCols entries by the caller.
type Table struct {
	Rows  [][]string
	NCols int
}

// Oracle answers nl(j, w): the per-row vector of line counts produced by
// wrapping column j at width w, with over-width rows promoted to Inf. It
// memoizes per (column, width) lazily; the planner relies on idempotence,
// not on any particular cache-sharing behavior.
type Oracle struct {
	table     Table
	opts      width.Options
	fixedCols map[int]bool // columns whose width is user-fixed: over-width is accepted, not Inf
	cache     map[oracleKey][]int
}

type oracleKey struct {
	col, w int
}

// NewOracle builds an oracle over table using opts for wrapping. fixedCols
// names the columns (by index) whose width is user-supplied; wrapping an
// over-width line in one of those columns is counted normally rather than
// promoted to Inf.
func NewOracle(table Table, opts width.Options, fixedCols map[int]bool) *Oracle {
	if fixedCols == nil {
		fixedCols = map[int]bool{}
	}
	return &Oracle{
		table:     table,
		opts:      opts,
		fixedCols: fixedCols,
		cache:     make(map[oracleKey][]int),
	}
}

// LineCounts returns nl(j, w): one entry per row, Inf where wrapping column
// j at width w would force an over-width line (unless column j is fixed).
func (o *Oracle) LineCounts(j, w int) []int {
	key := oracleKey{j, w}
	if v, ok := o.cache[key]; ok {
		return v
	}
	counts := make([]int, len(o.table.Rows))
	for r, row := range o.table.Rows {
		cell := row[j]
		lines := width.Wrap(cell, w, o.opts)
		overWidth := false
		for _, l := range lines {
			if width.DW(l) > w {
				overWidth = true
				break
			}
		}
		if overWidth && !o.fixedCols[j] {
			counts[r] = Inf
		} else {
			counts[r] = len(lines)
		}
	}
	o.cache[key] = counts
	return counts
}

// SumLineCounts is a convenience that returns Sigma_r nl(j, w)_r, saturating
// at Inf if any row is infeasible.
func (o *Oracle) SumLineCounts(j, w int) int {
	return sumVec(o.LineCounts(j, w))
}

func sumVec(v []int) int {
	total := 0
	for _, x := range v {
		total = addSat(total, x)
	}
	return total
}

func addSat(a, b int) int {
	if a >= Inf || b >= Inf {
		return Inf
	}
	s := a + b
	if s >= Inf {
		return Inf
	}
	return s
}

func maxVec(a, b []int) []int {
	out := make([]int, len(a))
	for i := range a {
		out[i] = maxInt(a[i], b[i])
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
