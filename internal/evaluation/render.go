package evaluation

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/paulmach/orb"
	"golang.org/x/image/vector"

	"github.com/ironsheep/pedmap-tools/internal/geo"
)

// MaskFile is the name RenderMask output is saved under by the tools.
const MaskFile = "mask.jpg"

// projector maps shape coordinates onto a w×h raster covering extent.
type projector struct {
	extent orb.Bound
	w, h   int
}

func newProjector(set *ShapeSet, bbox geo.BBox, w, h int) (projector, error) {
	if err := bbox.Validate(); err != nil {
		return projector{}, err
	}
	if w <= 0 || h <= 0 {
		return projector{}, fmt.Errorf("invalid raster size %dx%d", w, h)
	}
	extent := bbox.Bound()
	if set.CRS == UTM32 {
		extent = bbox.UTM32Extent()
	}
	return projector{extent: extent, w: w, h: h}, nil
}

func (p projector) point(pt orb.Point) (float32, float32) {
	x := (pt[0] - p.extent.Min[0]) / (p.extent.Max[0] - p.extent.Min[0]) * float64(p.w)
	y := (p.extent.Max[1] - pt[1]) / (p.extent.Max[1] - p.extent.Min[1]) * float64(p.h)
	return float32(x), float32(y)
}

// coverage rasterises the filled shapes and returns per-pixel coverage.
// Rings are combined with the non-zero rule, so holes wound against their
// outer ring stay empty.
func (p projector) coverage(set *ShapeSet) *image.Alpha {
	r := vector.NewRasterizer(p.w, p.h)
	for _, f := range set.Features {
		for _, ring := range rings(f.Geometry) {
			if len(ring) < 3 {
				continue
			}
			r.MoveTo(p.point(ring[0]))
			for _, pt := range ring[1:] {
				r.LineTo(p.point(pt))
			}
			r.ClosePath()
		}
	}
	dst := image.NewAlpha(image.Rect(0, 0, p.w, p.h))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// outline rasterises the ring edges as strokes of the given width.
func (p projector) outline(set *ShapeSet, width float64) *image.Alpha {
	r := vector.NewRasterizer(p.w, p.h)
	half := width / 2
	for _, f := range set.Features {
		for _, ring := range rings(f.Geometry) {
			for i := 0; i+1 < len(ring); i++ {
				ax, ay := p.point(ring[i])
				bx, by := p.point(ring[i+1])
				strokeSegment(r, float64(ax), float64(ay), float64(bx), float64(by), half)
			}
		}
	}
	dst := image.NewAlpha(image.Rect(0, 0, p.w, p.h))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// strokeSegment adds the rectangle around a-b, half wide on either side.
func strokeSegment(r *vector.Rasterizer, ax, ay, bx, by, half float64) {
	dx, dy := bx-ax, by-ay
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*half, dx/l*half
	r.MoveTo(float32(ax+nx), float32(ay+ny))
	r.LineTo(float32(bx+nx), float32(by+ny))
	r.LineTo(float32(bx-nx), float32(by-ny))
	r.LineTo(float32(ax-nx), float32(ay-ny))
	r.ClosePath()
}

// RenderMask draws the shapes black on white over the area bbox covers.
// bbox is projected into the CRS of the shapes first. Pixels at least half
// covered by a shape are black.
func RenderMask(set *ShapeSet, bbox geo.BBox, w, h int) (*image.Gray, error) {
	p, err := newProjector(set, bbox, w, h)
	if err != nil {
		return nil, err
	}
	cov := p.coverage(set)

	mask := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(mask, mask.Bounds(), image.White, image.Point{}, draw.Src)
	for i, a := range cov.Pix {
		if a >= 128 {
			mask.Pix[i] = 0
		}
	}
	return mask, nil
}
