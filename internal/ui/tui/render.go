package tui

import (
	"strings"

	"github.com/aalvaropc/lvlgrid/internal/domain"
)

// RenderLevel draws the assembled level as a block of styled cells, one
// two-column glyph per grid cell. Walls are painted from the ranked wall
// list, so what is shown is exactly what the JSON describes.
func RenderLevel(t Theme, lvl domain.Level) string {
	if lvl.Width == 0 || lvl.Height == 0 {
		return t.Subtitle.Render("(empty level)")
	}

	cells := make([][]domain.SquareType, lvl.Height)
	for y := range cells {
		cells[y] = make([]domain.SquareType, lvl.Width)
	}

	paint := func(p domain.Point, st domain.SquareType) {
		if p.X >= 0 && p.X < lvl.Width && p.Y >= 0 && p.Y < lvl.Height {
			cells[p.Y][p.X] = st
		}
	}

	for _, w := range lvl.Walls {
		end := w.Start
		if w.End != nil {
			end = *w.End
		}
		for y := w.Start.Y; y <= end.Y; y++ {
			for x := w.Start.X; x <= end.X; x++ {
				paint(domain.Point{X: x, Y: y}, domain.SquareWall)
			}
		}
	}
	for _, p := range lvl.Checkpoints {
		paint(p, domain.SquareCheckpoint)
	}
	paint(lvl.Start, domain.SquareStart)
	paint(lvl.End, domain.SquareEnd)

	var b strings.Builder
	for y, row := range cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, st := range row {
			b.WriteString(glyph(t, st))
		}
	}
	return b.String()
}

func glyph(t Theme, st domain.SquareType) string {
	switch st {
	case domain.SquareWall:
		return t.Wall.Render("██")
	case domain.SquareStart:
		return t.Start.Render("S ")
	case domain.SquareEnd:
		return t.End.Render("E ")
	case domain.SquareCheckpoint:
		return t.Checkpoint.Render("◆ ")
	default:
		return t.Empty.Render("··")
	}
}
