package domain

import "fmt"

// CheckResult is the outcome of one structural check over a level.
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// ValidateLevel verifies the structural invariants every produced level
// must satisfy: axis-aligned walls, in-bounds geometry, a length-descending
// wall list, and no single-cell wall still covered by a vertical run.
func ValidateLevel(l Level) []CheckResult {
	return []CheckResult{
		checkAxisAligned(l),
		checkBounds(l),
		checkLengthOrdered(l),
		checkDeduplicated(l),
	}
}

// Failures counts the checks that did not pass.
func Failures(results []CheckResult) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}
	return n
}

func checkAxisAligned(l Level) CheckResult {
	for i, w := range l.Walls {
		if w.End == nil {
			continue
		}
		sameRow := w.Start.Y == w.End.Y
		sameCol := w.Start.X == w.End.X
		if sameRow == sameCol {
			return fail("axis_aligned", "wall %d (%s) varies along both axes or neither", i, w)
		}
		if w.End.X < w.Start.X || w.End.Y < w.Start.Y {
			return fail("axis_aligned", "wall %d (%s) runs backwards", i, w)
		}
	}
	return pass("axis_aligned", "%d walls axis-aligned", len(l.Walls))
}

func checkBounds(l Level) CheckResult {
	in := func(p Point) bool {
		return p.X >= 0 && p.X < l.Width && p.Y >= 0 && p.Y < l.Height
	}

	for i, w := range l.Walls {
		if !in(w.Start) {
			return fail("in_bounds", "wall %d start %s outside %dx%d", i, w.Start, l.Width, l.Height)
		}
		if w.End != nil && !in(*w.End) {
			return fail("in_bounds", "wall %d end %s outside %dx%d", i, w.End, l.Width, l.Height)
		}
	}
	if !in(l.Start) {
		return fail("in_bounds", "start %s outside %dx%d", l.Start, l.Width, l.Height)
	}
	if !in(l.End) {
		return fail("in_bounds", "end %s outside %dx%d", l.End, l.Width, l.Height)
	}
	for i, p := range l.Checkpoints {
		if !in(p) {
			return fail("in_bounds", "checkpoint %d (%s) outside %dx%d", i, p, l.Width, l.Height)
		}
	}
	return pass("in_bounds", "all geometry inside %dx%d", l.Width, l.Height)
}

func checkLengthOrdered(l Level) CheckResult {
	for i := 1; i < len(l.Walls); i++ {
		if l.Walls[i-1].Length() < l.Walls[i].Length() {
			return fail("length_ordered", "wall %d (len %d) before wall %d (len %d)",
				i-1, l.Walls[i-1].Length(), i, l.Walls[i].Length())
		}
	}
	return pass("length_ordered", "wall lengths are non-increasing")
}

func checkDeduplicated(l Level) CheckResult {
	var verticals []Wall
	for _, w := range l.Walls {
		if w.End != nil && w.Start.X == w.End.X {
			verticals = append(verticals, w)
		}
	}

	for i, w := range l.Walls {
		if w.End != nil {
			continue
		}
		for _, v := range verticals {
			if v.Contains(w.Start) {
				return fail("deduplicated", "single-cell wall %d (%s) covered by vertical wall %s", i, w.Start, v)
			}
		}
	}
	return pass("deduplicated", "no single-cell wall covered by a vertical run")
}

func pass(name, format string, args ...any) CheckResult {
	return CheckResult{Name: name, Passed: true, Message: fmt.Sprintf(format, args...)}
}

func fail(name, format string, args ...any) CheckResult {
	return CheckResult{Name: name, Passed: false, Message: fmt.Sprintf(format, args...)}
}
