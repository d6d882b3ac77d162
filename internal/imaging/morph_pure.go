//go:build !(cgo && linux)

package imaging

import "image"

func dilate(g *image.Gray, k Kernel) *image.Gray { return morph(g, k, true) }

func erode(g *image.Gray, k Kernel) *image.Gray { return morph(g, k, false) }

func morph(g *image.Gray, k Kernel, grow bool) *image.Gray {
	src := CloneGray(g)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewGray(src.Bounds())

	type offset struct{ dx, dy int }
	offsets := make([]offset, 0, len(k.On))
	for i := 0; i < k.H; i++ {
		for j := 0; j < k.W; j++ {
			if k.On[i*k.W+j] {
				offsets = append(offsets, offset{j - k.Anchor.X, i - k.Anchor.Y})
			}
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var v uint8
			if !grow {
				v = 255
			}
			for _, o := range offsets {
				sx, sy := x+o.dx, y+o.dy
				if sx < 0 || sx >= w || sy < 0 || sy >= h {
					continue
				}
				s := src.Pix[sy*src.Stride+sx]
				if grow {
					v = max(v, s)
				} else {
					v = min(v, s)
				}
			}
			dst.Pix[y*dst.Stride+x] = v
		}
	}
	return dst
}
