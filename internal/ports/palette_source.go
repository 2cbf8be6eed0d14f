package ports

import "github.com/aalvaropc/lvlgrid/internal/domain"

// PaletteSource loads a palette override from configuration.
type PaletteSource interface {
	LoadPalette(path string) (domain.Palette, error)
}
