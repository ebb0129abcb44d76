package plan

import (
	"math/rand"
	"testing"

	"github.com/coltab/coltab/pkg/width"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tbl(rows ...[]string) Table {
	return NewTable(rows, 0)
}

func TestPlanAllFixed(t *testing.T) {
	table := tbl([]string{"a", "b"}, []string{"c", "d"})
	res, err := Plan(table, []int{3, 3}, 6, width.Options{})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, res.Widths)
	assert.Equal(t, 2, res.Objective)
}

func TestPlanAllUnsetWithinBudget(t *testing.T) {
	table := tbl([]string{"ab", "cde"}, []string{"a", "cde"}, []string{"", "cde"})
	res, err := Plan(table, []int{Unset, Unset}, 50, width.Options{})
	require.NoError(t, err)
	for _, w := range res.Widths {
		assert.GreaterOrEqual(t, w, 2)
	}
	sum := 0
	for _, w := range res.Widths {
		sum += w
	}
	assert.LessOrEqual(t, sum, 50)
}

func TestPlanMixedFixedAndUnset(t *testing.T) {
	long := "this is a fairly long cell that will need to be wrapped across several lines at narrow widths"
	table := tbl(
		[]string{"row one", long},
		[]string{"row two", long},
	)
	budget := 72 - (3*2 + 1)
	res, err := Plan(table, []int{14, Unset}, budget, width.Options{})
	require.NoError(t, err)
	assert.Equal(t, 14, res.Widths[0])
	assert.LessOrEqual(t, res.Widths[0]+res.Widths[1], budget)

	bruteRes, err := PlanBrute(table, []int{14, Unset}, budget, width.Options{})
	require.NoError(t, err)
	assert.Equal(t, bruteRes.Widths, res.Widths)
	assert.Equal(t, bruteRes.Objective, res.Objective)
}

func TestPlanThreeUnsetTightBudget(t *testing.T) {
	long := "several words that wrap at almost any width the planner might pick"
	table := tbl([]string{long, long, long}, []string{long, long, long})
	res, err := Plan(table, []int{Unset, Unset, Unset}, 30, width.Options{BreakLongWords: true})
	require.NoError(t, err)
	sum := 0
	for _, w := range res.Widths {
		assert.GreaterOrEqual(t, w, 2)
		sum += w
	}
	assert.LessOrEqual(t, sum, 30)

	bruteRes, err := PlanBrute(table, []int{Unset, Unset, Unset}, 30, width.Options{BreakLongWords: true})
	require.NoError(t, err)
	assert.Equal(t, bruteRes.Widths, res.Widths)
}

func TestPlanInfeasibleBudgetTooSmall(t *testing.T) {
	table := tbl([]string{"a", "b", "c"})
	_, err := Plan(table, []int{Unset, Unset, Unset}, 4, width.Options{})
	require.Error(t, err)
	var infErr *InfeasibleError
	assert.ErrorAs(t, err, &infErr)
}

func TestPlanInfeasibleOverWidthEverywhere(t *testing.T) {
	table := tbl([]string{"supercalifragilisticexpialidocious"})
	_, err := Plan(table, []int{Unset}, 5, width.Options{BreakLongWords: false})
	require.Error(t, err)
}

func TestPlanNoRowsIsInfeasible(t *testing.T) {
	table := Table{Rows: nil, NCols: 2}
	_, err := Plan(table, []int{Unset, Unset}, 10, width.Options{})
	require.Error(t, err)
}

func TestPlanTieBreakSmallestWidth(t *testing.T) {
	// Every row is empty, so any width choice ties at 1 line per row; the
	// smallest feasible width must be chosen for every unset column.
	table := tbl([]string{"", "", ""})
	res, err := Plan(table, []int{Unset, Unset, Unset}, 40, width.Options{})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2}, res.Widths)
}

func TestPlanIdempotent(t *testing.T) {
	table := tbl([]string{"alpha beta gamma", "delta epsilon"}, []string{"zeta eta theta iota", "kappa"})
	r1, err1 := Plan(table, []int{Unset, Unset}, 20, width.Options{})
	require.NoError(t, err1)
	r2, err2 := Plan(table, []int{Unset, Unset}, 20, width.Options{})
	require.NoError(t, err2)
	assert.Equal(t, r1.Widths, r2.Widths)
	assert.Equal(t, r1.Objective, r2.Objective)
}

func TestPlanBruteBisectEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	words := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "a", "of", "the", "quick brown fox"}

	randomCell := func() string {
		n := rng.Intn(4) + 1
		s := ""
		for i := 0; i < n; i++ {
			if i > 0 {
				s += " "
			}
			s += words[rng.Intn(len(words))]
		}
		return s
	}

	for trial := 0; trial < 20; trial++ {
		nCols := rng.Intn(3) + 2
		nRows := rng.Intn(4) + 1
		var rows [][]string
		for r := 0; r < nRows; r++ {
			row := make([]string, nCols)
			for c := 0; c < nCols; c++ {
				row[c] = randomCell()
			}
			rows = append(rows, row)
		}
		table := tbl(rows...)

		userWidths := make([]int, nCols)
		budget := 10 + rng.Intn(40)
		for c := 0; c < nCols; c++ {
			if rng.Intn(3) == 0 {
				fw := 2 + rng.Intn(6)
				userWidths[c] = fw
				budget += fw
			}
		}

		bruteRes, bruteErr := PlanBrute(table, userWidths, budget, width.Options{BreakLongWords: true})
		bisectRes, bisectErr := Plan(table, userWidths, budget, width.Options{BreakLongWords: true})

		if bruteErr != nil {
			assert.Error(t, bisectErr, "trial %d: brute infeasible but bisect succeeded", trial)
			continue
		}
		require.NoError(t, bisectErr, "trial %d", trial)
		assert.Equal(t, bruteRes.Objective, bisectRes.Objective, "trial %d: objective mismatch", trial)
		assert.Equal(t, bruteRes.Widths, bisectRes.Widths, "trial %d: width mismatch", trial)
	}
}

func TestOracleMonotonic(t *testing.T) {
	table := tbl([]string{"the quick brown fox jumps over the lazy dog repeatedly and at length"})
	o := NewOracle(table, width.Options{BreakLongWords: true}, nil)
	prev := o.LineCounts(0, 1)
	for w := 2; w <= 40; w++ {
		cur := o.LineCounts(0, w)
		for r := range cur {
			assert.LessOrEqual(t, cur[r], prev[r], "width %d row %d regressed", w, r)
		}
		prev = cur
	}
}
