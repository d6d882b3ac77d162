//go:build cgo && linux

package detection

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ironsheep/pedmap-tools/internal/imaging"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// region fills the contour with OpenCV into a canvas the size of its
// bounding box and reads the painted pixels back as runs.
func region(c Contour, width, height int) Region {
	bb := c.Bounds()
	canvas := gocv.Zeros(bb.Y2-bb.Y1, bb.X2-bb.X1, gocv.MatTypeCV8UC1)
	defer canvas.Close()

	pts := make([]image.Point, len(c.Points))
	for i, p := range c.Points {
		pts[i] = image.Point{X: p.X - bb.X1, Y: p.Y - bb.Y1}
	}
	pv := gocv.NewPointsVectorFromPoints([][]image.Point{pts})
	defer pv.Close()

	if err := gocv.DrawContours(&canvas, pv, -1, white, -1); err != nil {
		panic(fmt.Errorf("opencv: %w", err))
	}
	filled, err := imaging.MatToGray(canvas)
	if err != nil {
		panic(err)
	}

	var out Region
	for y := 0; y < filled.Rect.Dy(); y++ {
		ry := bb.Y1 + y
		if ry < 0 || ry >= height {
			continue
		}
		var row []Run
		off := y * filled.Stride
		for x := 0; x < filled.Rect.Dx(); x++ {
			if filled.Pix[off+x] == 0 {
				continue
			}
			rx := bb.X1 + x
			if n := len(row) - 1; n >= 0 && row[n].X1 == rx-1 {
				row[n].X1 = rx
				continue
			}
			row = append(row, Run{Y: ry, X0: rx, X1: rx})
		}
		out = append(out, mergeRuns(row, width)...)
	}
	return out
}

// drawOutline draws each border with OpenCV as a one pixel 8-connected line.
func drawOutline(img *image.NRGBA, contours []Contour, c color.NRGBA) {
	polys := make([][]image.Point, 0, len(contours))
	for _, ct := range contours {
		if len(ct.Points) == 0 {
			continue
		}
		pts := make([]image.Point, len(ct.Points))
		for i, p := range ct.Points {
			pts[i] = image.Point{X: p.X, Y: p.Y}
		}
		polys = append(polys, pts)
	}
	if len(polys) == 0 {
		return
	}

	b := img.Bounds()
	canvas := gocv.Zeros(b.Dy(), b.Dx(), gocv.MatTypeCV8UC1)
	defer canvas.Close()

	pv := gocv.NewPointsVectorFromPoints(polys)
	defer pv.Close()

	if err := gocv.DrawContours(&canvas, pv, -1, white, 1); err != nil {
		panic(fmt.Errorf("opencv: %w", err))
	}
	drawn, err := imaging.MatToGray(canvas)
	if err != nil {
		panic(err)
	}
	for y := 0; y < b.Dy(); y++ {
		off := y * drawn.Stride
		for x := 0; x < b.Dx(); x++ {
			if drawn.Pix[off+x] != 0 {
				img.SetNRGBA(b.Min.X+x, b.Min.Y+y, c)
			}
		}
	}
}
