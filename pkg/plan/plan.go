// Package plan implements the column-width planner: given a table's cell
// contents, a total width budget, and a partial width vector that may leave
// some columns unspecified, it decides widths for the unspecified columns
// so the wrapped table uses the minimum possible number of output rows.
package plan

import (
	"errors"
	"fmt"

	"github.com/coltab/coltab/pkg/width"
)

// Unset marks a column whose width the planner should choose. User-supplied
// widths are otherwise positive integers.
const Unset = 0

// InfeasibleError is returned when no assignment of the unset columns'
// widths can keep the table within budget, or every candidate assignment
// yields an infinite (over-width) line count.
type InfeasibleError struct {
	Reason string
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("planning infeasible: %s", e.Reason)
}

var errInvalidInput = errors.New("plan: widths length must equal table column count")

// Result is the outcome of a successful plan.
type Result struct {
	// Widths is the final per-column width vector, length table.NCols, all
	// entries positive integers.
	Widths []int
	// Objective is the total number of output rows the wrapped table will
	// occupy: the sum over rows of the per-row maximum line count.
	Objective int
}

// Plan chooses widths for every Unset column of userWidths so the table
// wraps into the minimum number of total output lines, given a budget of W
// display columns for all columns together: the fixed columns' widths are
// taken out of W first and the rest is shared across the UNSET columns. It uses the
// bisect-accelerated decision rule; Plan and PlanBrute are guaranteed to
// agree on every input where a finite optimum exists.
func Plan(table Table, userWidths []int, w int, opts width.Options) (Result, error) {
	return planWith(table, userWidths, w, opts, decideBisect)
}

// PlanBrute is the reference decision rule: it tries every feasible
// candidate width at each step instead of bisecting. It is slower but
// easier to trust, and exists so the bisect-accelerated planner can be
// checked against it.
func PlanBrute(table Table, userWidths []int, w int, opts width.Options) (Result, error) {
	return planWith(table, userWidths, w, opts, decideBrute)
}

func planWith(table Table, userWidths []int, w int, opts width.Options, decide func(*dpPlanner, int, int, int, int, int) int) (Result, error) {
	if len(userWidths) != table.NCols {
		return Result{}, errInvalidInput
	}
	if len(table.Rows) == 0 {
		return Result{}, &InfeasibleError{Reason: "table has no rows"}
	}

	fixedCols := map[int]bool{}
	var unsetCols []int
	fixedWidthSum := 0
	for j, uw := range userWidths {
		if uw == Unset {
			unsetCols = append(unsetCols, j)
			continue
		}
		if uw < 1 {
			return Result{}, &InfeasibleError{Reason: fmt.Sprintf("column %d has non-positive fixed width %d", j, uw)}
		}
		fixedCols[j] = true
		fixedWidthSum += uw
	}

	oracle := NewOracle(table, opts, fixedCols)

	baseline := make([]int, len(table.Rows))
	for j := range fixedCols {
		baseline = maxVec(baseline, oracle.LineCounts(j, userWidths[j]))
	}

	widths := make([]int, table.NCols)
	for j, uw := range userWidths {
		if uw != Unset {
			widths[j] = uw
		}
	}

	n := len(unsetCols)
	if n == 0 {
		obj := sumVec(baseline)
		if obj >= Inf {
			return Result{}, &InfeasibleError{Reason: "every fixed-width column assignment forces an over-width line"}
		}
		if fixedWidthSum > w {
			return Result{}, &InfeasibleError{Reason: "fixed column widths exceed the available budget"}
		}
		return Result{Widths: widths, Objective: obj}, nil
	}

	wPrime := w - fixedWidthSum
	if wPrime < 2*n {
		return Result{}, &InfeasibleError{Reason: fmt.Sprintf("budget %d too small to give %d unset columns width >= 2 each", wPrime, n)}
	}

	dp := newDPPlanner(oracle, unsetCols, len(table.Rows), baseline, decide)
	finalVec := dp.cVec(n, wPrime)
	obj := sumVec(finalVec)
	if obj >= Inf {
		return Result{}, &InfeasibleError{Reason: "every candidate width assignment yields an over-width line"}
	}

	// Reverse walk: unwind the decision table from (n, wPrime) back to the
	// first unset step to recover each column's chosen width.
	curW := wPrime
	for k := n; k >= 1; k-- {
		i := dp.choice(k, curW)
		widths[unsetCols[k-1]] = i
		curW -= i
	}

	return Result{Widths: widths, Objective: obj}, nil
}
