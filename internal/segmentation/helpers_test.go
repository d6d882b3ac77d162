package segmentation

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironsheep/pedmap-tools/internal/imaging"
)

func solid(w, h int, c imaging.RGBColor) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c.NRGBA())
		}
	}
	return img
}

// fillRect paints the inclusive rectangle (x0,y0)-(x1,y1).
func fillRect(img *image.NRGBA, x0, y0, x1, y1 int, c imaging.RGBColor) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			img.SetNRGBA(x, y, c.NRGBA())
		}
	}
}

func rgbAt(img image.Image, x, y int) imaging.RGBColor {
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return imaging.RGBColor{R: c.R, G: c.G, B: c.B}
}

func countColor(img image.Image, want imaging.RGBColor) int {
	b := img.Bounds()
	n := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if rgbAt(img, x, y) == want {
				n++
			}
		}
	}
	return n
}

// squareBoundaries is a white boundary raster with one solid black square
// of the given side starting at (at,at).
func squareBoundaries(size, at, side int) *image.NRGBA {
	img := solid(size, size, imaging.White)
	fillRect(img, at, at, at+side-1, at+side-1, imaging.Black)
	return img
}

func writeLayers(t *testing.T, dir string, l *Layers) {
	t.Helper()
	for name, img := range map[string]image.Image{
		StructuresFile: l.Structures,
		BoundariesFile: l.Boundaries,
		RoutesFile:     l.Routes,
		BaseMapFile:    l.BaseMap,
		SatelliteFile:  l.Satellite,
	} {
		require.NoError(t, imaging.Save(img, filepath.Join(dir, name)))
	}
}

var grey = imaging.RGBColor{R: 128, G: 128, B: 128}

func syntheticLayers() *Layers {
	return &Layers{
		Structures: solid(200, 200, imaging.White),
		Boundaries: squareBoundaries(200, 75, 50),
		Routes:     solid(200, 200, imaging.White),
		BaseMap:    solid(200, 200, imaging.White),
		Satellite:  solid(200, 200, grey),
	}
}
