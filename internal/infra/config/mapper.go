package config

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/lvlgrid/internal/domain"
)

var roleNames = map[string]domain.SquareType{
	"wall":       domain.SquareWall,
	"empty":      domain.SquareEmpty,
	"start":      domain.SquareStart,
	"end":        domain.SquareEnd,
	"checkpoint": domain.SquareCheckpoint,
}

// MapPalette merges the override on top of the default palette and
// validates the result: five roles, one distinct color each.
func MapPalette(path string, dto YAMLPalette) (domain.Palette, error) {
	colors := map[domain.SquareType]domain.RGB{}
	for rgb, st := range domain.DefaultPalette() {
		colors[st] = rgb
	}

	for role, hex := range dto.Palette {
		st, ok := roleNames[strings.ToLower(strings.TrimSpace(role))]
		if !ok {
			return nil, invalid(path, fmt.Errorf("palette.%s: unknown role", role))
		}
		rgb, err := parseHexColor(hex)
		if err != nil {
			return nil, invalid(path, fmt.Errorf("palette.%s: %v", role, err))
		}
		colors[st] = rgb
	}

	pal := domain.Palette{}
	for st, rgb := range colors {
		if other, dup := pal[rgb]; dup {
			return nil, invalid(path, fmt.Errorf("roles %s and %s share color #%02x%02x%02x", other, st, rgb.R, rgb.G, rgb.B))
		}
		pal[rgb] = st
	}

	if err := pal.Validate(); err != nil {
		return nil, err
	}
	return pal, nil
}

func parseHexColor(s string) (domain.RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return domain.RGB{}, fmt.Errorf("color %q: want #rrggbb", s)
	}

	var out [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexNibble(s[2*i])
		lo, ok2 := hexNibble(s[2*i+1])
		if !ok1 || !ok2 {
			return domain.RGB{}, fmt.Errorf("color %q: invalid hex digit", s)
		}
		out[i] = hi<<4 | lo
	}
	return domain.RGB{R: out[0], G: out[1], B: out[2]}, nil
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func invalid(path string, err error) error {
	return &domain.OpError{
		Op:   "config.map_palette",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  err,
	}
}
