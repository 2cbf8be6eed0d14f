// Package config loads the optional YAML palette override.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/lvlgrid/internal/domain"
	"github.com/aalvaropc/lvlgrid/internal/ports"
)

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.PaletteSource = (*Loader)(nil)

func (l *Loader) LoadPalette(path string) (domain.Palette, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "config.load_palette",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLPalette
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return nil, &domain.OpError{
			Op:   "config.load_palette",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapPalette(path, dto)
}
