package config

import (
	"strings"
	"testing"

	"github.com/aalvaropc/lvlgrid/internal/domain"
)

func TestMapPaletteDefaults(t *testing.T) {
	pal, err := MapPalette("x.yaml", YAMLPalette{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pal) != 5 {
		t.Fatalf("expected full default palette, got %v", pal)
	}
	if err := pal.Validate(); err != nil {
		t.Fatalf("default mapping should validate: %v", err)
	}
}

func TestMapPaletteColorClash(t *testing.T) {
	// Remapping wall onto the empty color collapses two roles.
	_, err := MapPalette("x.yaml", YAMLPalette{
		Palette: map[string]string{"wall": "#ffffff"},
	})
	if err == nil {
		t.Fatalf("expected error for clashing colors")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config kind, got %v", err)
	}
}

func TestMapPaletteBadHex(t *testing.T) {
	for _, hex := range []string{"", "#fff", "123456789", "#gg0000"} {
		_, err := MapPalette("x.yaml", YAMLPalette{
			Palette: map[string]string{"wall": hex},
		})
		if err == nil {
			t.Fatalf("expected error for %q", hex)
		}
		if !strings.Contains(err.Error(), "palette.wall") {
			t.Fatalf("expected field in error, got %v", err)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	rgb, err := parseHexColor("#A0b1C2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rgb != (domain.RGB{R: 0xa0, G: 0xb1, B: 0xc2}) {
		t.Fatalf("got %v", rgb)
	}
}
