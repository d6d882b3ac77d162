//go:build cgo && linux

package detection

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/ironsheep/pedmap-tools/internal/imaging"
)

// findContours runs OpenCV's border following over the full hierarchy and
// keeps every border pixel (no chain approximation).
func findContours(mask *image.Gray) []Contour {
	src, err := imaging.GrayToMat(mask)
	if err != nil {
		panic(err)
	}
	defer src.Close()

	hierarchy := gocv.NewMat()
	defer hierarchy.Close()

	pv := gocv.FindContoursWithParams(src, &hierarchy, gocv.RetrievalTree, gocv.ChainApproxNone)
	defer pv.Close()

	n := pv.Size()
	contours := make([]Contour, n)
	for i := 0; i < n; i++ {
		pts := pv.At(i).ToPoints()
		c := Contour{Points: make([]Point, len(pts)), Parent: -1}
		for k, p := range pts {
			c.Points[k] = Point{X: p.X, Y: p.Y}
		}
		// Hierarchy rows are {next, previous, first child, parent}.
		if !hierarchy.Empty() {
			c.Parent = int(hierarchy.GetVeciAt(0, i)[3])
		}
		contours[i] = c
	}

	// Borders alternate between outer and hole at each nesting level.
	for i := range contours {
		depth := 0
		for p := contours[i].Parent; p >= 0; p = contours[p].Parent {
			depth++
		}
		contours[i].Hole = depth%2 == 1
	}
	return contours
}
