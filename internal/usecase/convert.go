package usecase

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/lvlgrid/internal/domain"
	"github.com/aalvaropc/lvlgrid/internal/ports"
)

// ConvertParams carries the inputs for one conversion run.
type ConvertParams struct {
	ImagePath string
	OutPath   string // empty means stdout
	Pretty    bool
}

// ConvertImage is the one-shot pipeline: decode -> scan -> reconcile ->
// rank -> assemble -> write. Any failure aborts the run with nothing
// written.
type ConvertImage struct {
	grids   ports.GridSource
	sink    ports.LevelSink
	palette domain.Palette
	log     *slog.Logger
}

type ConvertOption func(*ConvertImage)

// WithPalette swaps the default palette for an override.
func WithPalette(p domain.Palette) ConvertOption {
	return func(uc *ConvertImage) {
		if p != nil {
			uc.palette = p
		}
	}
}

func WithLogger(l *slog.Logger) ConvertOption {
	return func(uc *ConvertImage) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewConvertImage(gs ports.GridSource, sink ports.LevelSink, opts ...ConvertOption) *ConvertImage {
	uc := &ConvertImage{
		grids:   gs,
		sink:    sink,
		palette: domain.DefaultPalette(),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs one conversion and returns the assembled level. The level
// is also handed to the sink unless the context is already canceled.
func (uc *ConvertImage) Execute(ctx context.Context, p ConvertParams) (domain.Level, error) {
	grid, err := uc.grids.LoadGrid(p.ImagePath)
	if err != nil {
		return domain.Level{}, err
	}

	width, height := grid.Size()
	uc.log.Info("level.size", "width", width, "height", height)

	if err := ctx.Err(); err != nil {
		return domain.Level{}, err
	}

	lvl, err := domain.BuildLevel(grid, uc.palette)
	if err != nil {
		return domain.Level{}, err
	}

	uc.log.Info("level.assembled",
		"walls", len(lvl.Walls),
		"checkpoints", len(lvl.Checkpoints),
		"start", lvl.Start.String(),
		"end", lvl.End.String(),
	)
	for i, w := range lvl.Walls {
		uc.log.Debug("level.wall", "rank", i, "wall", w.String(), "length", w.Length())
	}

	if err := ctx.Err(); err != nil {
		return domain.Level{}, err
	}

	if err := uc.sink.WriteLevel(lvl, p.OutPath, p.Pretty); err != nil {
		return domain.Level{}, err
	}

	return lvl, nil
}
