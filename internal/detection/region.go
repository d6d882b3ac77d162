package detection

import (
	"image"
	"image/color"
	"sort"
)

// Run is an inclusive horizontal run of pixels on row Y.
type Run struct {
	Y  int `json:"y"`
	X0 int `json:"x0"`
	X1 int `json:"x1"`
}

// Region is a filled contour expressed as runs, sorted by row then column.
// Runs never overlap.
type Region []Run

// Region rasterises the filled contour, clipped to a width×height raster.
// Border pixels are always included.
func (c Contour) Region(width, height int) Region {
	if len(c.Points) == 0 || width <= 0 || height <= 0 {
		return nil
	}
	return region(c, width, height)
}

// mergeRuns sorts, merges and clips the runs of a single row.
func mergeRuns(row []Run, width int) []Run {
	sort.Slice(row, func(i, j int) bool { return row[i].X0 < row[j].X0 })
	out := make([]Run, 0, len(row))
	for _, r := range row {
		r.X0 = max(r.X0, 0)
		r.X1 = min(r.X1, width-1)
		if r.X0 > r.X1 {
			continue
		}
		if last := len(out) - 1; last >= 0 && r.X0 <= out[last].X1+1 {
			out[last].X1 = max(out[last].X1, r.X1)
			continue
		}
		out = append(out, r)
	}
	return out
}

// Area returns the number of pixels in the region.
func (r Region) Area() int {
	n := 0
	for _, run := range r {
		n += run.X1 - run.X0 + 1
	}
	return n
}

// CountIn returns how many of the region's pixels are non-zero in mask.
// mask is addressed relative to its own bounds origin.
func (r Region) CountIn(mask *image.Gray) int {
	b := mask.Bounds()
	n := 0
	for _, run := range r {
		if run.Y >= b.Dy() {
			continue
		}
		off := mask.PixOffset(b.Min.X, b.Min.Y+run.Y)
		for x := run.X0; x <= run.X1 && x < b.Dx(); x++ {
			if mask.Pix[off+x] != 0 {
				n++
			}
		}
	}
	return n
}

// Fill paints the region onto img with c.
func (r Region) Fill(img *image.NRGBA, c color.NRGBA) {
	b := img.Bounds()
	for _, run := range r {
		if run.Y >= b.Dy() {
			continue
		}
		for x := run.X0; x <= run.X1 && x < b.Dx(); x++ {
			img.SetNRGBA(b.Min.X+x, b.Min.Y+run.Y, c)
		}
	}
}

// DrawOutline paints the border pixels of each contour onto img with c.
// Border pixels are 8-connected, so this is a closed one pixel line.
func DrawOutline(img *image.NRGBA, contours []Contour, c color.NRGBA) {
	if len(contours) == 0 || img.Bounds().Empty() {
		return
	}
	drawOutline(img, contours, c)
}
