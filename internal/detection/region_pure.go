//go:build !(cgo && linux)

package detection

import (
	"image"
	"image/color"
	"math"
	"sort"
)

// region takes interior pixels from an even-odd scanline fill of the
// polygon through the border pixel centres.
func region(c Contour, width, height int) Region {
	bb := c.Bounds()
	y0, n := bb.Y1, bb.Y2-bb.Y1

	crossings := make([][]float64, n)
	spans := make([][]Run, n)

	prev := c.Points[len(c.Points)-1]
	for _, p := range c.Points {
		a, b := prev, p
		if a.Y != b.Y {
			if a.Y > b.Y {
				a, b = b, a
			}
			for y := a.Y; y < b.Y; y++ {
				x := float64(a.X) + float64(y-a.Y)*float64(b.X-a.X)/float64(b.Y-a.Y)
				crossings[y-y0] = append(crossings[y-y0], x)
			}
		}
		spans[p.Y-y0] = append(spans[p.Y-y0], Run{Y: p.Y, X0: p.X, X1: p.X})
		prev = p
	}

	var out Region
	for i := 0; i < n; i++ {
		y := y0 + i
		if y < 0 || y >= height {
			continue
		}
		xs := crossings[i]
		sort.Float64s(xs)
		row := spans[i]
		for k := 0; k+1 < len(xs); k += 2 {
			x0 := int(math.Ceil(xs[k]))
			x1 := int(math.Floor(xs[k+1]))
			if x0 <= x1 {
				row = append(row, Run{Y: y, X0: x0, X1: x1})
			}
		}
		out = append(out, mergeRuns(row, width)...)
	}
	return out
}

func drawOutline(img *image.NRGBA, contours []Contour, c color.NRGBA) {
	b := img.Bounds()
	for _, ct := range contours {
		for _, p := range ct.Points {
			if p.X < 0 || p.Y < 0 || p.X >= b.Dx() || p.Y >= b.Dy() {
				continue
			}
			img.SetNRGBA(b.Min.X+p.X, b.Min.Y+p.Y, c)
		}
	}
}
