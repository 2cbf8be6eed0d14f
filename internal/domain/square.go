package domain

import "fmt"

// SquareType is the semantic category of a single grid cell.
type SquareType uint8

const (
	SquareEmpty SquareType = iota
	SquareWall
	SquareStart
	SquareEnd
	SquareCheckpoint
)

func (s SquareType) String() string {
	switch s {
	case SquareEmpty:
		return "empty"
	case SquareWall:
		return "wall"
	case SquareStart:
		return "start"
	case SquareEnd:
		return "end"
	case SquareCheckpoint:
		return "checkpoint"
	default:
		return fmt.Sprintf("squaretype(%d)", uint8(s))
	}
}

// RGBA is a 4-channel color sample as handed over by the image decoder.
type RGBA struct {
	R, G, B, A uint8
}

// RGB is a palette key. Alpha never participates in classification.
type RGB struct {
	R, G, B uint8
}

// Palette is a closed mapping from colors to cell categories. Classification
// is exact-match: there is no tolerance for anti-aliased or compressed
// samples.
type Palette map[RGB]SquareType

// DefaultPalette is the stock five-color mapping.
func DefaultPalette() Palette {
	return Palette{
		{0, 0, 0}:       SquareWall,
		{255, 0, 0}:     SquareEnd,
		{0, 255, 0}:     SquareStart,
		{0, 0, 255}:     SquareCheckpoint,
		{255, 255, 255}: SquareEmpty,
	}
}

// Classify maps a color sample to its category, ignoring alpha. A sample
// outside the palette is a fatal input error: the caller is expected to
// abort the whole conversion.
func (p Palette) Classify(c RGBA) (SquareType, error) {
	st, ok := p[RGB{c.R, c.G, c.B}]
	if !ok {
		return SquareEmpty, &OpError{
			Op:   "palette.classify",
			Kind: KindUnsupportedColor,
			Err:  fmt.Errorf("sample rgba(%d,%d,%d,%d): %w", c.R, c.G, c.B, c.A, ErrUnsupportedColor),
		}
	}
	return st, nil
}

// Validate checks that the palette covers all five categories with exactly
// one color each.
func (p Palette) Validate() error {
	if len(p) != 5 {
		return &OpError{
			Op:   "palette.validate",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("expected 5 palette entries, got %d: %w", len(p), ErrInvalidConfig),
		}
	}

	seen := map[SquareType]bool{}
	for _, st := range p {
		if seen[st] {
			return &OpError{
				Op:   "palette.validate",
				Kind: KindInvalidConfig,
				Err:  fmt.Errorf("category %s mapped to more than one color: %w", st, ErrInvalidConfig),
			}
		}
		seen[st] = true
	}

	for _, st := range []SquareType{SquareEmpty, SquareWall, SquareStart, SquareEnd, SquareCheckpoint} {
		if !seen[st] {
			return &OpError{
				Op:   "palette.validate",
				Kind: KindInvalidConfig,
				Err:  fmt.Errorf("category %s has no color: %w", st, ErrInvalidConfig),
			}
		}
	}
	return nil
}
