package evaluation

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/ironsheep/pedmap-tools/internal/geo"
	"github.com/ironsheep/pedmap-tools/internal/imaging"
)

// OverlayStyle controls how shapes are drawn over imagery.
type OverlayStyle struct {
	Outline        imaging.RGBColor
	OutlineWidth   float64
	OutlineOpacity float64
	Fill           imaging.RGBColor
	FillOpacity    float64
}

// DefaultOverlayStyle is a red outline with a translucent magenta fill.
func DefaultOverlayStyle() OverlayStyle {
	return OverlayStyle{
		Outline:        imaging.RGBColor{R: 0xf4, G: 0x43, B: 0x36},
		OutlineWidth:   2,
		OutlineOpacity: 1,
		Fill:           imaging.RGBColor{R: 0xff, G: 0x00, B: 0xef},
		FillOpacity:    0.25,
	}
}

func (s OverlayStyle) validate() error {
	if s.FillOpacity < 0 || s.FillOpacity > 1 || s.OutlineOpacity < 0 || s.OutlineOpacity > 1 {
		return fmt.Errorf("opacity must be within [0,1]")
	}
	if s.OutlineWidth < 0 {
		return fmt.Errorf("outline width must not be negative")
	}
	return nil
}

// RenderOverlay draws the shapes over base, which must cover bbox. The
// fill is composited first, the outline on top.
func RenderOverlay(base image.Image, set *ShapeSet, bbox geo.BBox, style OverlayStyle) (*image.NRGBA, error) {
	if err := style.validate(); err != nil {
		return nil, err
	}
	out := imaging.ToNRGBA(base)
	p, err := newProjector(set, bbox, out.Bounds().Dx(), out.Bounds().Dy())
	if err != nil {
		return nil, err
	}

	paint(out, p.coverage(set), style.Fill, style.FillOpacity)
	if style.OutlineWidth > 0 {
		paint(out, p.outline(set, style.OutlineWidth), style.Outline, style.OutlineOpacity)
	}
	return out, nil
}

func paint(dst *image.NRGBA, mask *image.Alpha, c imaging.RGBColor, opacity float64) {
	src := image.NewUniform(color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(opacity*255 + 0.5)})
	draw.DrawMask(dst, dst.Bounds(), src, image.Point{}, mask, image.Point{}, draw.Over)
}
