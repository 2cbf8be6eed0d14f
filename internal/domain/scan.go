package domain

import "fmt"

// classifyAt classifies one cell, attaching its coordinates to any
// palette failure so the caller can report the offending pixel.
func classifyAt(g Grid, pal Palette, x, y int) (SquareType, error) {
	st, err := pal.Classify(g.At(x, y))
	if err != nil {
		return st, fmt.Errorf("pixel (%d,%d): %w", x, y, err)
	}
	return st, nil
}

// ScanRows walks the grid in row-major order, emitting one Wall per
// maximal horizontal run and collecting the start, end, and checkpoint
// markers in the same traversal. A run of a single cell is emitted with a
// nil End. The column cursor jumps past each consumed run, so cells inside
// a recorded run never open a new one.
func ScanRows(g Grid, pal Palette) ([]Wall, Markers, error) {
	width, height := g.Size()
	walls := []Wall{}
	marks := Markers{Checkpoints: []Point{}}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			st, err := classifyAt(g, pal, x, y)
			if err != nil {
				return nil, Markers{}, err
			}

			switch st {
			case SquareWall:
				end := x
				for end+1 < width {
					next, nerr := classifyAt(g, pal, end+1, y)
					if nerr != nil {
						return nil, Markers{}, nerr
					}
					if next != SquareWall {
						break
					}
					end++
				}
				if end == x {
					walls = append(walls, CellWall(Point{X: x, Y: y}))
				} else {
					span, serr := SpanWall(Point{X: x, Y: y}, Point{X: end, Y: y})
					if serr != nil {
						return nil, Markers{}, serr
					}
					walls = append(walls, span)
				}
				// Resume after the consumed run.
				x = end

			case SquareStart:
				marks.Start = Point{X: x, Y: y}
			case SquareEnd:
				marks.End = Point{X: x, Y: y}
			case SquareCheckpoint:
				marks.Checkpoints = append(marks.Checkpoints, Point{X: x, Y: y})
			case SquareEmpty:
			}
		}
	}

	return walls, marks, nil
}

// ScanColumns walks the grid in column-major order, emitting one Wall per
// maximal vertical run of two or more cells. Isolated wall cells are
// skipped here: the row scan already emits them as single-cell walls.
func ScanColumns(g Grid, pal Palette) ([]Wall, error) {
	width, height := g.Size()
	walls := []Wall{}

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			st, err := classifyAt(g, pal, x, y)
			if err != nil {
				return nil, err
			}
			if st != SquareWall {
				continue
			}

			end := y
			for end+1 < height {
				next, nerr := classifyAt(g, pal, x, end+1)
				if nerr != nil {
					return nil, nerr
				}
				if next != SquareWall {
					break
				}
				end++
			}
			if end > y {
				span, serr := SpanWall(Point{X: x, Y: y}, Point{X: x, Y: end})
				if serr != nil {
					return nil, serr
				}
				walls = append(walls, span)
			}
			y = end
		}
	}

	return walls, nil
}
