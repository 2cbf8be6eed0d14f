package ports

import "github.com/aalvaropc/lvlgrid/internal/domain"

// GridSource decodes a raster file into a read-only pixel grid.
type GridSource interface {
	LoadGrid(path string) (domain.Grid, error)
}
