//go:build !(cgo && linux)

package imaging

import (
	"image"
	"math"
)

func medianGray(g *image.Gray, ksize int) *image.Gray {
	src := CloneGray(g)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewGray(src.Bounds())
	if w == 0 || h == 0 {
		return dst
	}

	r := ksize / 2
	n := ksize * ksize
	half := n / 2

	at := func(x, y int) uint8 {
		x = min(max(x, 0), w-1)
		y = min(max(y, 0), h-1)
		return src.Pix[y*src.Stride+x]
	}

	for y := 0; y < h; y++ {
		var hist [256]int
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				hist[at(dx, y+dy)]++
			}
		}
		for x := 0; x < w; x++ {
			if x > 0 {
				for dy := -r; dy <= r; dy++ {
					hist[at(x-r-1, y+dy)]--
					hist[at(x+r, y+dy)]++
				}
			}
			count := 0
			for v := 0; v < 256; v++ {
				count += hist[v]
				if count > half {
					dst.Pix[y*dst.Stride+x] = uint8(v)
					break
				}
			}
		}
	}
	return dst
}

func bilateral(img image.Image, d int, sigmaColor, sigmaSpace float64) *image.NRGBA {
	src := ToNRGBA(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewNRGBA(src.Bounds())

	if sigmaColor <= 0 {
		sigmaColor = 1
	}
	if sigmaSpace <= 0 {
		sigmaSpace = 1
	}
	radius := d / 2
	if d <= 0 {
		radius = int(math.Round(sigmaSpace * 1.5))
	}
	radius = max(radius, 1)

	colorCoeff := -0.5 / (sigmaColor * sigmaColor)
	spaceCoeff := -0.5 / (sigmaSpace * sigmaSpace)

	var colorWeight [3 * 256]float64
	for i := range colorWeight {
		colorWeight[i] = math.Exp(float64(i*i) * colorCoeff)
	}

	type tap struct {
		dx, dy int
		w      float64
	}
	var taps []tap
	for i := -radius; i <= radius; i++ {
		for j := -radius; j <= radius; j++ {
			r := math.Sqrt(float64(i*i + j*j))
			if r > float64(radius) {
				continue
			}
			taps = append(taps, tap{dx: j, dy: i, w: math.Exp(r * r * spaceCoeff)})
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c0 := src.PixOffset(x, y)
			r0, g0, b0 := int(src.Pix[c0]), int(src.Pix[c0+1]), int(src.Pix[c0+2])

			var sumR, sumG, sumB, wsum float64
			for _, t := range taps {
				i := src.PixOffset(reflect101(x+t.dx, w), reflect101(y+t.dy, h))
				r, g, b := int(src.Pix[i]), int(src.Pix[i+1]), int(src.Pix[i+2])
				wt := t.w * colorWeight[absInt(r-r0)+absInt(g-g0)+absInt(b-b0)]
				sumR += float64(r) * wt
				sumG += float64(g) * wt
				sumB += float64(b) * wt
				wsum += wt
			}

			o := dst.PixOffset(x, y)
			dst.Pix[o] = roundByte(sumR / wsum)
			dst.Pix[o+1] = roundByte(sumG / wsum)
			dst.Pix[o+2] = roundByte(sumB / wsum)
			dst.Pix[o+3] = 0xff
		}
	}
	return dst
}

func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		} else {
			i = 2*n - 2 - i
		}
	}
	return i
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func roundByte(v float64) uint8 {
	return uint8(min(max(math.Round(v), 0), 255))
}
