package segmentation

import (
	"github.com/ironsheep/pedmap-tools/internal/config"
	"github.com/ironsheep/pedmap-tools/internal/imaging"
)

// Route marking drawn inside public parcels on the route layer.
var PublicRouteColor = imaging.RGBRange{
	Min: imaging.RGBColor{R: 0, G: 150, B: 0},
	Max: imaging.RGBColor{R: 30, G: 255, B: 30},
}

// Public parcels after the classification fill has been median filtered.
var PublicFillHSV = imaging.HSVRange{HMin: 40, HMax: 80, SMin: 40, SMax: 255, VMin: 40, VMax: 255}

// Buildings and structures as rendered on the roads layer.
var StructureHSV = imaging.HSVRange{HMin: 10, HMax: 60, SMin: 50, SMax: 255, VMin: 50, VMax: 255}

// Cartographic fills on the detailed base map that are removed before
// blocks are traced.
var (
	PathColor = imaging.RGBRange{
		Min: imaging.RGBColor{R: 230, G: 215, B: 200},
		Max: imaging.RGBColor{R: 240, G: 230, B: 210},
	}
	GreenAreaColor = imaging.RGBRange{
		Min: imaging.RGBColor{R: 210, G: 230, B: 205},
		Max: imaging.RGBColor{R: 235, G: 255, B: 220},
	}
	WaterColor = imaging.RGBRange{
		Min: imaging.RGBColor{R: 215, G: 235, B: 250},
		Max: imaging.RGBColor{R: 225, G: 245, B: 255},
	}
)

// Vegetation on aerial imagery. The hue band 42.5-72.5 lands on 42-72 at
// 8-bit depth.
var VegetationHSV = imaging.HSVRange{
	HMin: imaging.RoundBound(42.5), HMax: imaging.RoundBound(72.5),
	SMin: 5, SMax: 250,
	VMin: 5, VMax: 250,
}

// Fixed filter settings.
const (
	boundaryMedianKernel = 7
	bilateralDiameter    = 5
	bilateralSigma       = 255
	lineThreshold        = 245
	routeThreshold       = 240
	reduceKernel         = 4
	finalMedianKernel    = 15
	overlayWeight        = 0.5
)

// Params carries the tunable cut-offs of a run.
type Params struct {
	// Contours must enclose strictly more than MinContourArea pixels...
	MinContourArea float64
	// ...and strictly less than this fraction of the raster.
	MaxContourFraction float64
	// A block is a road when more than this fraction of its pixels lie on
	// a route line.
	RouteFraction float64
	// A block is vegetation when more than this fraction of its pixels are
	// green on the aerial image.
	VegetationFraction float64
}

// DefaultParams returns the cut-offs the colour ranges were tuned with.
func DefaultParams() Params {
	return Params{
		MinContourArea:     100,
		MaxContourFraction: 0.5,
		RouteFraction:      0.001,
		VegetationFraction: 0.10,
	}
}

// ParamsFrom converts the segmentation section of the configuration.
func ParamsFrom(c config.SegmentationConfig) Params {
	return Params{
		MinContourArea:     c.MinContourArea,
		MaxContourFraction: c.MaxContourFraction,
		RouteFraction:      c.RouteFraction,
		VegetationFraction: c.VegetationFraction,
	}
}

func (p Params) maxArea(width, height int) float64 {
	return float64(width*height) * p.MaxContourFraction
}
