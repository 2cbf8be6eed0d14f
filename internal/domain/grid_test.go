package domain

import "testing"

// textGrid builds a Grid from rows of cell runes:
// '#' wall, '.' empty, 'S' start, 'E' end, 'C' checkpoint.
type textGrid struct {
	rows []string
}

func (g textGrid) Size() (int, int) {
	if len(g.rows) == 0 {
		return 0, 0
	}
	return len(g.rows[0]), len(g.rows)
}

func (g textGrid) At(x, y int) RGBA {
	switch g.rows[y][x] {
	case '#':
		return RGBA{0, 0, 0, 255}
	case '.':
		return RGBA{255, 255, 255, 255}
	case 'S':
		return RGBA{0, 255, 0, 255}
	case 'E':
		return RGBA{255, 0, 0, 255}
	case 'C':
		return RGBA{0, 0, 255, 255}
	default:
		// Deliberately off-palette.
		return RGBA{128, 128, 128, 255}
	}
}

func mustBuild(t *testing.T, rows ...string) Level {
	t.Helper()
	lvl, err := BuildLevel(textGrid{rows}, DefaultPalette())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return lvl
}
