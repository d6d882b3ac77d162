package imaging

import (
	"image"
	"math"
)

// Kernel is a binary structuring element for morphology.
//
// On is row-major with W*H entries. Anchor is the element cell aligned with
// the output pixel; the constructors use (W/2, H/2), so even-sized kernels
// reach one pixel further up and to the left than down and to the right.
type Kernel struct {
	W, H   int
	Anchor image.Point
	On     []bool
}

// RectKernel returns a fully set W×H kernel.
func RectKernel(w, h int) Kernel {
	on := make([]bool, w*h)
	for i := range on {
		on[i] = true
	}
	return Kernel{W: w, H: h, Anchor: image.Pt(w/2, h/2), On: on}
}

// EllipseKernel returns the ellipse inscribed in a W×H box. Rows are filled
// from c-dx to c+dx where dx follows the ellipse equation and is rounded half
// to even. A 2×2 ellipse leaves only the top-left cell unset.
func EllipseKernel(w, h int) Kernel {
	on := make([]bool, w*h)
	r, c := h/2, w/2
	invR2 := 0.0
	if r > 0 {
		invR2 = 1 / float64(r*r)
	}
	for i := 0; i < h; i++ {
		dy := i - r
		if dy < -r || dy > r {
			continue
		}
		dx := int(math.RoundToEven(float64(c) * math.Sqrt(float64(r*r-dy*dy)*invR2)))
		j1 := max(c-dx, 0)
		j2 := min(c+dx+1, w)
		for j := j1; j < j2; j++ {
			on[i*w+j] = true
		}
	}
	return Kernel{W: w, H: h, Anchor: image.Pt(w/2, h/2), On: on}
}

// Dilate replaces each pixel with the maximum over the kernel footprint.
// Pixels outside the raster do not take part.
func Dilate(g *image.Gray, k Kernel) *image.Gray {
	if empty(g) {
		return CloneGray(g)
	}
	return dilate(g, k)
}

// Erode replaces each pixel with the minimum over the kernel footprint.
// Pixels outside the raster do not take part.
func Erode(g *image.Gray, k Kernel) *image.Gray {
	if empty(g) {
		return CloneGray(g)
	}
	return erode(g, k)
}

// Opening is an erosion followed by a dilation. It removes foreground specks
// smaller than the kernel.
func Opening(g *image.Gray, k Kernel) *image.Gray {
	return Dilate(Erode(g, k), k)
}

// Closing is a dilation followed by an erosion. It fills background gaps
// smaller than the kernel.
func Closing(g *image.Gray, k Kernel) *image.Gray {
	return Erode(Dilate(g, k), k)
}
