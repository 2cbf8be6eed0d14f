// Package imagegrid adapts decoded raster images to the domain grid.
// PNG, GIF and JPEG come from the standard library; BMP and TIFF are
// registered via golang.org/x/image.
package imagegrid

import (
	"image"
	"image/color"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/aalvaropc/lvlgrid/internal/domain"
	"github.com/aalvaropc/lvlgrid/internal/ports"
)

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.GridSource = (*Loader)(nil)

func (l *Loader) LoadGrid(path string) (domain.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "imagegrid.open",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "imagegrid.decode",
			Kind: domain.KindDecode,
			Path: path,
			Err:  err,
		}
	}

	return FromImage(img), nil
}

// FromImage wraps an already-decoded image as a domain grid.
func FromImage(img image.Image) domain.Grid {
	return &imageGrid{img: img}
}

type imageGrid struct {
	img image.Image
}

func (g *imageGrid) Size() (int, int) {
	b := g.img.Bounds()
	return b.Dx(), b.Dy()
}

func (g *imageGrid) At(x, y int) domain.RGBA {
	b := g.img.Bounds()
	// NRGBA keeps channel values unpremultiplied, so palette colors
	// survive transparent pixels untouched.
	c := color.NRGBAModel.Convert(g.img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
	return domain.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
