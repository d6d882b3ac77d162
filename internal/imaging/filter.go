package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
)

// MedianColor applies a ksize×ksize median filter to a colour raster.
//
// The median is taken over whole pixels ranked by a weighted RGB key
// (bild's effect.Median), not per channel, so every output pixel is a
// colour that exists in its neighbourhood.
// ksize must be odd; borders are edge-extended.
func MedianColor(img image.Image, ksize int) *image.NRGBA {
	radius := float64(ksize-1) / 2
	return ToNRGBA(effect.Median(img, radius))
}

// MedianGray applies a ksize×ksize median filter to a single-channel raster
// with replicated borders. ksize must be odd.
func MedianGray(g *image.Gray, ksize int) *image.Gray {
	if empty(g) {
		return CloneGray(g)
	}
	return medianGray(g, ksize)
}

// Bilateral applies an edge-preserving bilateral filter over a d×d window.
//
// Spatial weights are Gaussian in Euclidean distance (sigmaSpace), limited
// to the disc of radius d/2. Range weights are Gaussian in the sum of
// absolute channel differences (sigmaColor). Borders are mirrored without
// repeating the edge pixel.
func Bilateral(img image.Image, d int, sigmaColor, sigmaSpace float64) *image.NRGBA {
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return ToNRGBA(img)
	}
	return bilateral(img, d, sigmaColor, sigmaSpace)
}
