package domain

// Grid is the decoded pixel raster the scanners read. It is random-access
// and read-only for the whole pipeline; implementations live in infra.
type Grid interface {
	// Size returns the grid dimensions in cells.
	Size() (width, height int)

	// At returns the color sample at (x, y). Callers only pass coordinates
	// inside the grid bounds.
	At(x, y int) RGBA
}
