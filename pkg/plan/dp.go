package plan

// dpPlanner runs the dynamic program described by the width-planner
// recurrence: a baseline vector folds in every already-fixed column, and
// each remaining step chooses an integer width for one UNSET column so as
// to minimize the summed per-row maximum line count. decide selects, for a
// given step and remaining budget, which candidate width to commit to; it
// is the only thing that differs between the brute and bisect-accelerated
// planners, so both share the same recursion and memoization.
type dpPlanner struct {
	oracle    *Oracle
	unsetCols []int
	nRows     int
	baseline  []int
	decide    func(p *dpPlanner, k, w, j, iMin, iMax int) int

	vecMemo map[[2]int][]int
	decMemo map[[2]int]int
}

func newDPPlanner(oracle *Oracle, unsetCols []int, nRows int, baseline []int, decide func(*dpPlanner, int, int, int, int, int) int) *dpPlanner {
	return &dpPlanner{
		oracle:    oracle,
		unsetCols: unsetCols,
		nRows:     nRows,
		baseline:  baseline,
		decide:    decide,
		vecMemo:   make(map[[2]int][]int),
		decMemo:   make(map[[2]int]int),
	}
}

// cVec returns c_r^k(w): the vector of per-row running maxima after
// optimally choosing widths for the first k UNSET columns out of a budget
// of w, starting from the fixed-column baseline.
func (p *dpPlanner) cVec(k, w int) []int {
	if k == 0 {
		return p.baseline
	}
	key := [2]int{k, w}
	if v, ok := p.vecMemo[key]; ok {
		return v
	}

	j := p.unsetCols[k-1]
	// Steps 1..k-1 still need >= 2 columns each out of what this step leaves.
	iMin := 2
	iMax := w - 2*(k-1)

	if iMax < iMin {
		v := infVec(p.nRows)
		p.vecMemo[key] = v
		p.decMemo[key] = -1
		return v
	}

	iStar := p.decide(p, k, w, j, iMin, iMax)
	p.decMemo[key] = iStar

	v := maxVec(p.cVec(k-1, w-iStar), p.oracle.LineCounts(j, iStar))
	p.vecMemo[key] = v
	return v
}

// choice returns the width chosen for step k at budget w. cVec(k, w) must
// already have been computed (directly or as part of a reverse walk) for
// this to be populated.
func (p *dpPlanner) choice(k, w int) int {
	return p.decMemo[[2]int{k, w}]
}

func infVec(n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = Inf
	}
	return v
}

// gValue is the true objective g(w, i) = Sigma_r max(c_r^{k-1}(w-i), nl(j,i)_r)
// for committing width i to the column at step k.
func (p *dpPlanner) gValue(k, w, j, i int) int {
	prev := p.cVec(k-1, w-i)
	col := p.oracle.LineCounts(j, i)
	return sumVec(maxVec(prev, col))
}

// lowerBound is L(w, i) = max(Sigma_r c_r^{k-1}(w-i), Sigma_r nl(j,i)).
// Both summands are available without combining rows pairwise, so it is
// cheaper to evaluate than gValue and satisfies L <= g everywhere.
func (p *dpPlanner) lowerBound(k, w, j, i int) int {
	lhs := sumVec(p.cVec(k-1, w-i))
	rhs := p.oracle.SumLineCounts(j, i)
	return maxInt(lhs, rhs)
}

// decideBrute is the reference decision rule: try every feasible i and keep
// the smallest-i argmin of the true objective.
func decideBrute(p *dpPlanner, k, w, j, iMin, iMax int) int {
	best := iMin
	bestVal := p.gValue(k, w, j, best)
	for i := iMin + 1; i <= iMax; i++ {
		v := p.gValue(k, w, j, i)
		if v < bestVal {
			bestVal = v
			best = i
		}
	}
	return best
}

// decideBisect finds the same argmin as decideBrute without evaluating the
// true objective at every candidate width. Sigma_r c_r^{k-1}(w-i) is
// non-decreasing in i and Sigma_r nl(j,i) is non-increasing in i, so their
// max L(w,i) is minimized near the point where the two cross, and L is a
// lower bound for the true objective everywhere. decideBisect locates the
// crossing point by bisection, then widens outward only while L at the next
// candidate could still match or beat the best true objective seen so far,
// and finally brute-forces the true objective across that window.
func decideBisect(p *dpPlanner, k, w, j, iMin, iMax int) int {
	lhs := func(i int) int { return sumVec(p.cVec(k-1, w-i)) }
	rhs := func(i int) int { return p.oracle.SumLineCounts(j, i) }

	i0 := findCrossing(lhs, rhs, iMin, iMax)

	// The minimum of L sits at the crossing point or one left of it.
	candidates := make([]int, 0, 2)
	if i0-1 >= iMin {
		candidates = append(candidates, i0-1)
	}
	if i0 <= iMax {
		candidates = append(candidates, i0)
	}

	iStarL := candidates[0]
	bestL := p.lowerBound(k, w, j, iStarL)
	for _, c := range candidates[1:] {
		v := p.lowerBound(k, w, j, c)
		if v < bestL || (v == bestL && c < iStarL) {
			bestL = v
			iStarL = c
		}
	}

	il, ir := expandTightInterval(p, k, w, j, iStarL, iMin, iMax)

	best := il
	bestVal := p.gValue(k, w, j, best)
	for i := il + 1; i <= ir; i++ {
		v := p.gValue(k, w, j, i)
		if v < bestVal {
			bestVal = v
			best = i
		}
	}
	return best
}

// findCrossing returns the smallest i in [lo, hi] with rhs(i) <= lhs(i), or
// hi+1 if rhs never drops to or below lhs within the range.
func findCrossing(lhs, rhs func(int) int, lo, hi int) int {
	if rhs(lo) <= lhs(lo) {
		return lo
	}
	if rhs(hi) > lhs(hi) {
		return hi + 1
	}
	for lo < hi {
		mid := lo + (hi-lo)/2
		if rhs(mid) <= lhs(mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// expandTightInterval widens [center, center] into [il, ir] while the lower
// bound at the next candidate does not rule it out: leftward while L stays
// at or below the best true objective seen so far (a tie there wins, being
// the smaller width), rightward while L stays strictly below it. L grows
// monotonically away from the crossing point, so any i outside the returned
// window cannot beat the best candidate already found inside it.
func expandTightInterval(p *dpPlanner, k, w, j, center, iMin, iMax int) (int, int) {
	best := p.gValue(k, w, j, center)

	il, ir := center, center
	for il > iMin {
		cand := il - 1
		if p.lowerBound(k, w, j, cand) > best {
			break
		}
		if v := p.gValue(k, w, j, cand); v < best {
			best = v
		}
		il = cand
	}
	for ir < iMax {
		cand := ir + 1
		if p.lowerBound(k, w, j, cand) >= best {
			break
		}
		if v := p.gValue(k, w, j, cand); v < best {
			best = v
		}
		ir = cand
	}
	return il, ir
}
