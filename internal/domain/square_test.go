package domain

import (
	"errors"
	"testing"
)

func TestClassifyPalette(t *testing.T) {
	pal := DefaultPalette()

	cases := []struct {
		sample RGBA
		want   SquareType
	}{
		{RGBA{0, 0, 0, 255}, SquareWall},
		{RGBA{255, 0, 0, 255}, SquareEnd},
		{RGBA{0, 255, 0, 255}, SquareStart},
		{RGBA{0, 0, 255, 255}, SquareCheckpoint},
		{RGBA{255, 255, 255, 255}, SquareEmpty},
		// Alpha is ignored.
		{RGBA{0, 0, 0, 0}, SquareWall},
		{RGBA{255, 255, 255, 17}, SquareEmpty},
	}
	for _, c := range cases {
		got, err := pal.Classify(c.sample)
		if err != nil {
			t.Fatalf("classify %v: unexpected error: %v", c.sample, err)
		}
		if got != c.want {
			t.Fatalf("classify %v: got %s, want %s", c.sample, got, c.want)
		}

		// Referentially transparent: same sample, same answer.
		again, _ := pal.Classify(c.sample)
		if again != got {
			t.Fatalf("classify %v: second call disagreed", c.sample)
		}
	}
}

func TestClassifyUnsupportedColor(t *testing.T) {
	pal := DefaultPalette()

	_, err := pal.Classify(RGBA{128, 128, 128, 255})
	if err == nil {
		t.Fatalf("expected error for off-palette sample")
	}
	if !errors.Is(err, ErrUnsupportedColor) {
		t.Fatalf("expected ErrUnsupportedColor, got %v", err)
	}
	if !IsKind(err, KindUnsupportedColor) {
		t.Fatalf("expected kind unsupported_color, got %v", err)
	}
}

func TestPaletteValidate(t *testing.T) {
	if err := DefaultPalette().Validate(); err != nil {
		t.Fatalf("default palette should validate: %v", err)
	}

	missing := Palette{
		{0, 0, 0}:       SquareWall,
		{255, 255, 255}: SquareEmpty,
	}
	if err := missing.Validate(); err == nil {
		t.Fatalf("expected error for incomplete palette")
	}

	doubled := Palette{
		{0, 0, 0}:       SquareWall,
		{10, 10, 10}:    SquareWall,
		{255, 0, 0}:     SquareEnd,
		{0, 255, 0}:     SquareStart,
		{0, 0, 255}:     SquareCheckpoint,
		{255, 255, 255}: SquareEmpty,
	}
	if err := doubled.Validate(); err == nil {
		t.Fatalf("expected error for doubled category")
	}
}
