package tui

import (
	"strings"
	"testing"

	"github.com/aalvaropc/lvlgrid/internal/domain"
)

func TestRenderLevelShape(t *testing.T) {
	span, _ := domain.SpanWall(domain.Point{X: 0, Y: 0}, domain.Point{X: 2, Y: 0})
	lvl := domain.Level{
		Width:       3,
		Height:      2,
		Walls:       []domain.Wall{span},
		Start:       domain.Point{X: 0, Y: 1},
		End:         domain.Point{X: 2, Y: 1},
		Checkpoints: []domain.Point{{X: 1, Y: 1}},
	}

	out := RenderLevel(DefaultTheme(), lvl)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "██") {
		t.Fatalf("expected wall glyphs in first row: %q", lines[0])
	}
	if !strings.Contains(lines[1], "S ") || !strings.Contains(lines[1], "E ") || !strings.Contains(lines[1], "◆ ") {
		t.Fatalf("expected markers in second row: %q", lines[1])
	}
}

func TestRenderLevelEmpty(t *testing.T) {
	out := RenderLevel(DefaultTheme(), domain.Level{})
	if !strings.Contains(out, "empty level") {
		t.Fatalf("expected empty-level notice, got %q", out)
	}
}

func TestRenderLevelSingleCellWall(t *testing.T) {
	lvl := domain.Level{
		Width:  2,
		Height: 1,
		Walls:  []domain.Wall{domain.CellWall(domain.Point{X: 1, Y: 0})},
	}
	out := RenderLevel(DefaultTheme(), lvl)
	if !strings.Contains(out, "██") {
		t.Fatalf("expected a wall glyph, got %q", out)
	}
}
