// Package levelstore writes assembled levels as JSON to a file or the
// standard output stream.
package levelstore

import (
	"encoding/json"
	"io"
	"os"

	"github.com/aalvaropc/lvlgrid/internal/domain"
	"github.com/aalvaropc/lvlgrid/internal/ports"
)

type Writer struct {
	stdout io.Writer
}

type Option func(*Writer)

// WithStdout overrides the stream used when no path is given. Useful for
// tests.
func WithStdout(w io.Writer) Option {
	return func(s *Writer) { s.stdout = w }
}

func NewWriter(opts ...Option) *Writer {
	s := &Writer{stdout: os.Stdout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.LevelSink = (*Writer)(nil)

// WriteLevel serializes the level. An empty path streams to stdout; a file
// path is written via tmp+rename so a failed run leaves no partial file.
func (s *Writer) WriteLevel(level domain.Level, path string, pretty bool) error {
	b, err := encode(level, pretty)
	if err != nil {
		return &domain.OpError{
			Op:   "levelstore.marshal",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}

	if path == "" {
		if _, err := s.stdout.Write(b); err != nil {
			return &domain.OpError{
				Op:   "levelstore.write",
				Kind: domain.KindIO,
				Err:  err,
			}
		}
		return nil
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return &domain.OpError{
			Op:   "levelstore.write",
			Kind: domain.KindIO,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "levelstore.rename",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

func encode(level domain.Level, pretty bool) ([]byte, error) {
	if pretty {
		b, err := json.MarshalIndent(level, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	}

	b, err := json.Marshal(level)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
