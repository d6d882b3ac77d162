package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blend"
)

// Paint returns a copy of img with every pixel selected by mask set to c.
// mask must match img in size.
func Paint(img image.Image, mask *image.Gray, c RGBColor) (*image.NRGBA, error) {
	dst := ToNRGBA(img)
	if err := sameSize(dst.Bounds(), mask.Bounds()); err != nil {
		return nil, err
	}
	m := CloneGray(mask)
	for y := 0; y < m.Bounds().Dy(); y++ {
		for x := 0; x < m.Bounds().Dx(); x++ {
			if m.Pix[y*m.Stride+x] == 0 {
				continue
			}
			i := dst.PixOffset(x, y)
			dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = c.R, c.G, c.B, 0xff
		}
	}
	return dst, nil
}

// ColorMask renders mask as c on black.
func ColorMask(mask *image.Gray, c RGBColor) *image.NRGBA {
	b := mask.Bounds()
	canvas := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for i := 3; i < len(canvas.Pix); i += 4 {
		canvas.Pix[i] = 0xff
	}
	out, _ := Paint(canvas, mask, c)
	return out
}

// Overlay blends fg over bg with the given fg weight in [0,1]. The result
// has the size of the smaller input.
func Overlay(bg, fg image.Image, weight float64) *image.NRGBA {
	return ToNRGBA(blend.Opacity(bg, fg, weight))
}
