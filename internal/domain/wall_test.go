package domain

import (
	"errors"
	"testing"
)

func TestSpanWallInvariants(t *testing.T) {
	if _, err := SpanWall(Point{0, 0}, Point{3, 0}); err != nil {
		t.Fatalf("horizontal span should build: %v", err)
	}
	if _, err := SpanWall(Point{2, 1}, Point{2, 5}); err != nil {
		t.Fatalf("vertical span should build: %v", err)
	}

	// Diagonal: varies along both axes.
	if _, err := SpanWall(Point{0, 0}, Point{1, 1}); !errors.Is(err, ErrInvalidWall) {
		t.Fatalf("expected ErrInvalidWall for diagonal, got %v", err)
	}
	// Degenerate: varies along neither axis.
	if _, err := SpanWall(Point{2, 2}, Point{2, 2}); !errors.Is(err, ErrInvalidWall) {
		t.Fatalf("expected ErrInvalidWall for zero span, got %v", err)
	}
	// Backwards.
	if _, err := SpanWall(Point{3, 0}, Point{0, 0}); !errors.Is(err, ErrInvalidWall) {
		t.Fatalf("expected ErrInvalidWall for backwards span, got %v", err)
	}
}

func TestWallLength(t *testing.T) {
	if got := CellWall(Point{4, 7}).Length(); got != 1 {
		t.Fatalf("single cell length: got %d, want 1", got)
	}

	h, _ := SpanWall(Point{1, 0}, Point{5, 0})
	if got := h.Length(); got != 4 {
		t.Fatalf("horizontal length: got %d, want 4", got)
	}

	v, _ := SpanWall(Point{0, 2}, Point{0, 3})
	if got := v.Length(); got != 1 {
		t.Fatalf("vertical length: got %d, want 1", got)
	}
}

func TestWallContains(t *testing.T) {
	v, _ := SpanWall(Point{2, 1}, Point{2, 4})

	for _, p := range []Point{{2, 1}, {2, 2}, {2, 4}} {
		if !v.Contains(p) {
			t.Fatalf("expected %s inside %s", p, v)
		}
	}
	for _, p := range []Point{{1, 2}, {3, 2}, {2, 0}, {2, 5}} {
		if v.Contains(p) {
			t.Fatalf("expected %s outside %s", p, v)
		}
	}

	cell := CellWall(Point{3, 3})
	if !cell.Contains(Point{3, 3}) || cell.Contains(Point{3, 4}) {
		t.Fatalf("single-cell containment broken")
	}
}
