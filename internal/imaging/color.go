package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// NRGBA returns the opaque color.NRGBA for c.
func (c RGBColor) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Commonly used fill colours.
var (
	Black = RGBColor{0, 0, 0}
	White = RGBColor{255, 255, 255}
	Red   = RGBColor{255, 0, 0}
	Green = RGBColor{0, 255, 0}
)

// HSVColor is an 8-bit HSV triple. H is hue in degrees halved (0-179) so that
// it fits a byte; S and V span 0-255.
type HSVColor struct {
	H uint8 `json:"h"`
	S uint8 `json:"s"`
	V uint8 `json:"v"`
}

// RGBRange is an inclusive per-channel colour range.
type RGBRange struct {
	Min RGBColor `json:"min"`
	Max RGBColor `json:"max"`
}

// Contains reports whether c lies inside the range on every channel.
func (r RGBRange) Contains(c RGBColor) bool {
	return c.R >= r.Min.R && c.R <= r.Max.R &&
		c.G >= r.Min.G && c.G <= r.Max.G &&
		c.B >= r.Min.B && c.B <= r.Max.B
}

// HSVRange is an inclusive range in 8-bit HSV units (see HSVColor).
//
// Bounds are integers, as they are once applied to an 8-bit raster.
// Fractional bounds must be rounded half to even first (see RoundBound).
type HSVRange struct {
	HMin, HMax uint8
	SMin, SMax uint8
	VMin, VMax uint8
}

// Contains reports whether c lies inside the range on every channel.
func (r HSVRange) Contains(c HSVColor) bool {
	return c.H >= r.HMin && c.H <= r.HMax &&
		c.S >= r.SMin && c.S <= r.SMax &&
		c.V >= r.VMin && c.V <= r.VMax
}

// RoundBound converts a fractional range bound to 8-bit depth: rounded half
// to even and saturated to [0,255]. 42.5 becomes 42, 72.5 becomes 72.
func RoundBound(v float64) uint8 {
	r := math.RoundToEven(v)
	switch {
	case r < 0:
		return 0
	case r > 255:
		return 255
	}
	return uint8(r)
}

// ToHSV converts an 8-bit RGB colour to 8-bit HSV.
//
// Hue is computed in degrees by go-colorful, halved and rounded, wrapping 180
// back to 0. Saturation and value are scaled from [0,1] to [0,255].
func ToHSV(c RGBColor) HSVColor {
	h, s, v := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hsv()

	h8 := int(math.Round(h / 2))
	if h8 >= 180 {
		h8 -= 180
	}
	return HSVColor{
		H: uint8(h8),
		S: uint8(math.Round(s * 255)),
		V: uint8(math.Round(v * 255)),
	}
}

// rgbAt reads an 8-bit colour from an NRGBA raster without bounds checks.
func rgbAt(img *image.NRGBA, x, y int) RGBColor {
	i := img.PixOffset(x, y)
	return RGBColor{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2]}
}

// InRangeRGB returns a mask that is 255 where the pixel falls inside r.
func InRangeRGB(img image.Image, r RGBRange) *image.Gray {
	src := ToNRGBA(img)
	b := src.Bounds()
	mask := image.NewGray(b)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if r.Contains(rgbAt(src, x, y)) {
				mask.Pix[y*mask.Stride+x] = 255
			}
		}
	}
	return mask
}

// InRangeHSV returns a mask that is 255 where the pixel's HSV value falls
// inside r.
func InRangeHSV(img image.Image, r HSVRange) *image.Gray {
	src := ToNRGBA(img)
	b := src.Bounds()
	mask := image.NewGray(b)

	// Maps are dominated by a handful of flat colours.
	seen := make(map[RGBColor]bool)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := rgbAt(src, x, y)
			in, ok := seen[c]
			if !ok {
				in = r.Contains(ToHSV(c))
				seen[c] = in
			}
			if in {
				mask.Pix[y*mask.Stride+x] = 255
			}
		}
	}
	return mask
}

// ColorResult is a single pixel reported in the representations the
// segmentation thresholds are written in.
type ColorResult struct {
	Hex string   `json:"hex"`
	RGB RGBColor `json:"rgb"`
	HSV HSVColor `json:"hsv"`
}

// SampleColor returns the colour at (x, y).
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	c := RGBColor{R: n.R, G: n.G, B: n.B}

	return &ColorResult{
		Hex: c.Hex(),
		RGB: c,
		HSV: ToHSV(c),
	}, nil
}
