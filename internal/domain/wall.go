package domain

import "fmt"

// Wall is an axis-aligned run of wall cells. A nil End denotes a single
// cell. When End is present it lies on the same row or the same column as
// Start, at equal or greater coordinates. Walls are immutable once built.
type Wall struct {
	Start Point  `json:"start"`
	End   *Point `json:"end"`
}

// CellWall builds a single-cell wall at p.
func CellWall(p Point) Wall {
	return Wall{Start: p}
}

// SpanWall builds a multi-cell wall from start to end, enforcing the
// colinearity invariant at construction: the endpoints vary along exactly
// one axis and end is not before start.
func SpanWall(start, end Point) (Wall, error) {
	sameRow := start.Y == end.Y
	sameCol := start.X == end.X
	if sameRow == sameCol {
		return Wall{}, fmt.Errorf("wall %s-%s is not axis-aligned: %w", start, end, ErrInvalidWall)
	}
	if end.X < start.X || end.Y < start.Y {
		return Wall{}, fmt.Errorf("wall %s-%s runs backwards: %w", start, end, ErrInvalidWall)
	}
	return Wall{Start: start, End: &end}, nil
}

// Length is the geometric length of the wall: the Manhattan extent along
// its single axis of variation, or 1 for a single cell.
func (w Wall) Length() int {
	if w.End == nil {
		return 1
	}
	return (w.End.X - w.Start.X) + (w.End.Y - w.Start.Y)
}

// Contains reports whether p falls inside the wall's inclusive bounding
// box. For a single-cell wall the box collapses to its start point.
func (w Wall) Contains(p Point) bool {
	end := w.Start
	if w.End != nil {
		end = *w.End
	}
	return w.Start.X <= p.X && p.X <= end.X &&
		w.Start.Y <= p.Y && p.Y <= end.Y
}

func (w Wall) String() string {
	if w.End == nil {
		return w.Start.String()
	}
	return fmt.Sprintf("%s-%s", w.Start, w.End)
}
