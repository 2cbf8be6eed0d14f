package ports

import "github.com/aalvaropc/lvlgrid/internal/domain"

// LevelSink serializes an assembled level. An empty path means the
// standard output stream.
type LevelSink interface {
	WriteLevel(level domain.Level, path string, pretty bool) error
}
