//go:build !(cgo && linux)

package imaging

import "image"

func threshold(g *image.Gray, t uint8) *image.Gray {
	dst := CloneGray(g)
	for i, v := range dst.Pix {
		if v > t {
			dst.Pix[i] = 255
		} else {
			dst.Pix[i] = 0
		}
	}
	return dst
}

func otsu(g *image.Gray) (*image.Gray, uint8) {
	t := otsuLevel(g)
	return threshold(g, t), t
}

func otsuLevel(g *image.Gray) uint8 {
	var hist [256]int
	total := 0
	b := g.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			hist[g.GrayAt(x, y).Y]++
			total++
		}
	}
	if total == 0 {
		return 0
	}

	const eps = 1.1920929e-07 // float32 epsilon
	scale := 1.0 / float64(total)

	mu := 0.0
	for i, n := range hist {
		mu += float64(i) * float64(n)
	}
	mu *= scale

	var (
		mu1, q1  float64
		maxSigma float64
		best     int
	)
	for i, n := range hist {
		p := float64(n) * scale
		mu1 *= q1
		q1 += p
		q2 := 1 - q1

		if min(q1, q2) < eps || max(q1, q2) > 1-eps {
			continue
		}

		mu1 = (mu1 + float64(i)*p) / q1
		mu2 := (mu - q1*mu1) / q2
		sigma := q1 * q2 * (mu1 - mu2) * (mu1 - mu2)
		if sigma > maxSigma {
			maxSigma = sigma
			best = i
		}
	}
	return uint8(best)
}
