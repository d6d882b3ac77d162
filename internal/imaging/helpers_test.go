package imaging

import (
	"image"
	"image/color"
	"testing"
)

// solidNRGBA creates an in-memory colour raster filled with c.
func solidNRGBA(width, height int, c RGBColor) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c.NRGBA())
		}
	}
	return img
}

// grayFrom builds a mask from rows of '#' (255) and '.' (0).
func grayFrom(t *testing.T, rows ...string) *image.Gray {
	t.Helper()
	g := image.NewGray(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		if len(row) != len(rows[0]) {
			t.Fatalf("row %d has length %d, want %d", y, len(row), len(rows[0]))
		}
		for x, ch := range row {
			if ch == '#' {
				g.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return g
}

// grayRows renders a mask back into '#'/'.' rows for comparison.
func grayRows(g *image.Gray) []string {
	b := g.Bounds()
	rows := make([]string, b.Dy())
	for y := 0; y < b.Dy(); y++ {
		buf := make([]byte, b.Dx())
		for x := 0; x < b.Dx(); x++ {
			if g.GrayAt(b.Min.X+x, b.Min.Y+y).Y != 0 {
				buf[x] = '#'
			} else {
				buf[x] = '.'
			}
		}
		rows[y] = string(buf)
	}
	return rows
}

func assertRows(t *testing.T, got *image.Gray, want ...string) {
	t.Helper()
	rows := grayRows(got)
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d:\n got  %s\n want %s", i, rows[i], want[i])
		}
	}
}
