package detection

import (
	"image"
	"math"
)

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Bounds represents a bounding box. (X1, Y1) is inclusive, (X2, Y2) is
// exclusive.
type Bounds struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Contour is one traced border.
type Contour struct {
	// Points lists the border pixels in tracing order. The border is closed:
	// the last point is 8-adjacent to the first.
	Points []Point `json:"points"`

	// Hole is true for the border between a component and a hole it
	// encloses, false for the outer border of a component.
	Hole bool `json:"hole"`

	// Parent is the index of the enclosing border in the slice returned by
	// FindContours, or -1 for top-level borders.
	Parent int `json:"parent"`
}

// Area returns the absolute area enclosed by the polygon through the
// border pixel centres (shoelace formula). Borders of one or two pixels
// enclose no area.
func (c Contour) Area() float64 {
	n := len(c.Points)
	if n < 3 {
		return 0
	}
	sum := 0
	prev := c.Points[n-1]
	for _, p := range c.Points {
		sum += prev.X*p.Y - p.X*prev.Y
		prev = p
	}
	return math.Abs(float64(sum)) / 2
}

// Bounds returns the bounding box of the border pixels.
func (c Contour) Bounds() Bounds {
	if len(c.Points) == 0 {
		return Bounds{}
	}
	b := Bounds{X1: c.Points[0].X, Y1: c.Points[0].Y, X2: c.Points[0].X + 1, Y2: c.Points[0].Y + 1}
	for _, p := range c.Points[1:] {
		b.X1 = min(b.X1, p.X)
		b.Y1 = min(b.Y1, p.Y)
		b.X2 = max(b.X2, p.X+1)
		b.Y2 = max(b.Y2, p.Y+1)
	}
	return b
}

// FilterByArea keeps the contours whose area lies strictly between
// minArea and maxArea. Parent indices are not rewritten.
func FilterByArea(contours []Contour, minArea, maxArea float64) []Contour {
	kept := make([]Contour, 0, len(contours))
	for _, c := range contours {
		if a := c.Area(); a > minArea && a < maxArea {
			kept = append(kept, c)
		}
	}
	return kept
}

// FindContours traces every border of the non-zero regions of mask.
//
// Contours are returned in the order their starting pixels are met by a
// row-major scan. See the package documentation for the border semantics.
func FindContours(mask *image.Gray) []Contour {
	b := mask.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil
	}
	return findContours(mask)
}
