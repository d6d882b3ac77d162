package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ToNRGBA returns an NRGBA copy of img anchored at (0,0).
func ToNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// ToGray converts img to a single-channel luma raster using the
// 0.299/0.587/0.114 weights.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok && g.Bounds().Min == (image.Point{}) {
		return CloneGray(g)
	}
	luma := imaging.Grayscale(img)
	b := luma.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			g.Pix[y*g.Stride+x] = luma.Pix[luma.PixOffset(x, y)]
		}
	}
	return g
}

// CloneGray returns a copy of g anchored at (0,0).
func CloneGray(g *image.Gray) *image.Gray {
	b := g.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+b.Dx()], g.Pix[g.PixOffset(b.Min.X, b.Min.Y+y):])
	}
	return dst
}

// Threshold returns a binary mask: 255 where g > t, 0 elsewhere.
func Threshold(g *image.Gray, t uint8) *image.Gray {
	if empty(g) {
		return CloneGray(g)
	}
	return threshold(g, t)
}

// OtsuThreshold picks the threshold that maximises between-class variance
// of the histogram of g.
//
// Ties resolve to the lowest level. Levels that leave one class empty are
// skipped, so a single-valued image yields 0.
func OtsuThreshold(g *image.Gray) uint8 {
	_, t := Otsu(g)
	return t
}

// Otsu binarises g with its Otsu threshold and returns the mask together
// with the threshold that was used.
func Otsu(g *image.Gray) (*image.Gray, uint8) {
	if empty(g) {
		return CloneGray(g), 0
	}
	return otsu(g)
}

// Invert returns the bitwise complement of g.
func Invert(g *image.Gray) *image.Gray {
	dst := CloneGray(g)
	for i, v := range dst.Pix {
		dst.Pix[i] = ^v
	}
	return dst
}

// Or returns the per-pixel maximum of the given masks, which must all have
// the same dimensions.
func Or(first *image.Gray, rest ...*image.Gray) (*image.Gray, error) {
	dst := CloneGray(first)
	for _, m := range rest {
		if err := sameSize(dst.Bounds(), m.Bounds()); err != nil {
			return nil, err
		}
		src := CloneGray(m)
		for i, v := range src.Pix {
			dst.Pix[i] = max(dst.Pix[i], v)
		}
	}
	return dst, nil
}

// CountNonZero counts the foreground pixels of g.
func CountNonZero(g *image.Gray) int {
	n := 0
	b := g.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := g.Pix[g.PixOffset(b.Min.X, y) : g.PixOffset(b.Min.X, y)+b.Dx()]
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

func sameSize(a, b image.Rectangle) error {
	if a.Dx() != b.Dx() || a.Dy() != b.Dy() {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch, a.Dx(), a.Dy(), b.Dx(), b.Dy())
	}
	return nil
}

func empty(g *image.Gray) bool {
	return g.Bounds().Dx() == 0 || g.Bounds().Dy() == 0
}
