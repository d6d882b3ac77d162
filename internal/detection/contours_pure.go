//go:build !(cgo && linux)

package detection

import "image"

// Neighbour offsets in clockwise order (y points down), starting east.
var (
	dirX = [8]int{1, 1, 0, -1, -1, -1, 0, 1}
	dirY = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
)

func direction(dx, dy int) int {
	for k := 0; k < 8; k++ {
		if dirX[k] == dx && dirY[k] == dy {
			return k
		}
	}
	return -1
}

// findContours implements Suzuki-Abe border following on a copy of mask
// padded with a one pixel background frame.
func findContours(mask *image.Gray) []Contour {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()

	// Label grid with a one pixel background frame.
	pw := w + 2
	f := make([]int32, pw*(h+2))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask.GrayAt(b.Min.X+x, b.Min.Y+y).Y != 0 {
				f[(y+1)*pw+x+1] = 1
			}
		}
	}

	// borders[nbd-2] describes the border labelled nbd. Label 1 is the frame.
	type borderInfo struct {
		hole   bool
		parent int // label of the parent border, 1 for the frame
	}
	var borders []borderInfo
	var contours []Contour

	info := func(label int32) borderInfo {
		if label <= 1 {
			return borderInfo{hole: true, parent: 1}
		}
		return borders[label-2]
	}

	nbd := int32(1)
	for y := 1; y <= h; y++ {
		lnbd := int32(1)
		for x := 1; x <= w; x++ {
			i := y*pw + x
			v := f[i]
			if v == 0 {
				continue
			}

			var hole bool
			var fromX, fromY int
			switch {
			case v == 1 && f[i-1] == 0:
				fromX, fromY = x-1, y
			case v >= 1 && f[i+1] == 0:
				hole = true
				fromX, fromY = x+1, y
				if v > 1 {
					lnbd = v
				}
			default:
				if v != 1 {
					lnbd = abs32(v)
				}
				continue
			}

			nbd++
			prev := info(lnbd)
			parent := int(lnbd)
			if hole == prev.hole {
				parent = prev.parent
			}
			borders = append(borders, borderInfo{hole: hole, parent: parent})

			// Border labels start at 2, so label-2 is the slice index and
			// the frame (label 1) becomes -1.
			pts := traceBorder(f, pw, x, y, fromX, fromY, nbd)
			contours = append(contours, Contour{Points: pts, Hole: hole, Parent: parent - 2})

			if f[i] != 1 {
				lnbd = abs32(f[i])
			}
		}
	}

	return contours
}

// traceBorder follows one border starting at (x, y) in the padded label
// grid. (fromX, fromY) is the background neighbour that triggered the start.
// Visited pixels are relabelled with nbd (or -nbd where the pixel's east
// neighbour is background) and returned in unpadded coordinates.
func traceBorder(f []int32, pw, x, y, fromX, fromY int, nbd int32) []Point {
	at := func(px, py int) int32 { return f[py*pw+px] }

	// 3.1: clockwise from the start neighbour for the first non-zero pixel.
	start := direction(fromX-x, fromY-y)
	found := -1
	for k := 0; k < 8; k++ {
		d := (start + k) % 8
		if at(x+dirX[d], y+dirY[d]) != 0 {
			found = d
			break
		}
	}
	if found < 0 {
		f[y*pw+x] = -nbd
		return []Point{{X: x - 1, Y: y - 1}}
	}

	x1, y1 := x+dirX[found], y+dirY[found]
	x2, y2 := x1, y1
	x3, y3 := x, y

	var pts []Point
	for {
		pts = append(pts, Point{X: x3 - 1, Y: y3 - 1})

		// 3.3: counter-clockwise around (x3, y3), starting after (x2, y2).
		back := direction(x2-x3, y2-y3)
		eastZero := false
		var x4, y4 int
		for k := 1; k <= 8; k++ {
			d := (back - k + 8) % 8
			nx, ny := x3+dirX[d], y3+dirY[d]
			if at(nx, ny) != 0 {
				x4, y4 = nx, ny
				break
			}
			if d == 0 {
				eastZero = true
			}
		}

		// 3.4
		j := y3*pw + x3
		if eastZero {
			f[j] = -nbd
		} else if f[j] == 1 {
			f[j] = nbd
		}

		// 3.5
		if x4 == x && y4 == y && x3 == x1 && y3 == y1 {
			break
		}
		x2, y2 = x3, y3
		x3, y3 = x4, y4
	}
	return pts
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
