package domain

import "sort"

// Reconcile merges the two scan outputs. A single-cell horizontal wall is
// dropped when its cell lies inside the inclusive bounding box of any
// vertical wall, since the vertical run already covers it. Multi-cell
// horizontal walls are kept unconditionally: overlapping coverage at
// L-junctions and crossings is accepted, only the literal single-cell
// duplicate is removed. The result is the surviving horizontal walls
// followed by all vertical walls.
func Reconcile(horiz, vert []Wall) []Wall {
	out := make([]Wall, 0, len(horiz)+len(vert))
	for _, hw := range horiz {
		if hw.End == nil && coveredBy(hw.Start, vert) {
			continue
		}
		out = append(out, hw)
	}
	return append(out, vert...)
}

func coveredBy(p Point, walls []Wall) bool {
	for _, w := range walls {
		if w.Contains(p) {
			return true
		}
	}
	return false
}

// RankWalls returns the walls ordered by geometric length descending.
// The sort is stable, so equal-length walls keep their reconciled order:
// horizontal before vertical, each group in scan order. Consumers that
// process walls greedily see the largest structural features first.
func RankWalls(walls []Wall) []Wall {
	out := make([]Wall, len(walls))
	copy(out, walls)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Length() > out[j].Length()
	})
	return out
}

// BuildLevel runs the whole pipeline over a grid: both scan passes,
// reconciliation, ranking, and final assembly. Any classification failure
// aborts with no partial Level.
func BuildLevel(g Grid, pal Palette) (Level, error) {
	horiz, marks, err := ScanRows(g, pal)
	if err != nil {
		return Level{}, err
	}

	vert, err := ScanColumns(g, pal)
	if err != nil {
		return Level{}, err
	}

	width, height := g.Size()
	return Level{
		Width:       width,
		Height:      height,
		Walls:       RankWalls(Reconcile(horiz, vert)),
		Start:       marks.Start,
		End:         marks.End,
		Checkpoints: marks.Checkpoints,
	}, nil
}
