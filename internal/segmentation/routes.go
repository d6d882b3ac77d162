package segmentation

import (
	"image"

	"github.com/ironsheep/pedmap-tools/internal/detection"
	"github.com/ironsheep/pedmap-tools/internal/imaging"
)

// RouteVegetationResult is the output of FilterRoutesAndVegetation.
type RouteVegetationResult struct {
	// Mask is the final binary raster: 0 where the map is walkable, 255
	// where it was excluded.
	Mask *image.Gray
	// Blocks is the smoothed base map with road and vegetation blocks
	// filled red.
	Blocks       *image.NRGBA
	Roads        int
	Vegetation   int
	Unclassified int
}

// FilterRoutesAndVegetation removes cartographic fills from base, traces
// the remaining blocks and paints blocks that carry a route or are mostly
// vegetation red. The painted map is then binarised and cleaned up.
func FilterRoutesAndVegetation(base, routes, satellite image.Image, art *Artifacts, p Params) (*RouteVegetationResult, error) {
	b := base.Bounds()
	w, h := b.Dx(), b.Dy()
	if err := checkSize(w, h, routes, satellite); err != nil {
		return nil, err
	}

	blue := imaging.InRangeRGB(base, WaterColor)
	brown := imaging.InRangeRGB(base, PathColor)
	green := imaging.InRangeRGB(base, GreenAreaColor)
	combined, err := imaging.Or(brown, green, blue)
	if err != nil {
		return nil, err
	}
	for _, s := range []struct {
		name string
		img  image.Image
	}{
		{ArtifactFilterBlue, blue},
		{ArtifactFilterBrown, brown},
		{ArtifactFilterGreen, green},
		{ArtifactFilterCombined, combined},
	} {
		if err := art.Save(s.name, s.img); err != nil {
			return nil, err
		}
	}

	whitened, err := imaging.Paint(base, combined, imaging.White)
	if err != nil {
		return nil, err
	}
	if err := art.Save(ArtifactFilterResult, whitened); err != nil {
		return nil, err
	}
	smoothed := imaging.Bilateral(whitened, bilateralDiameter, bilateralSigma, bilateralSigma)
	if err := art.Save(ArtifactFilterDenoised, smoothed); err != nil {
		return nil, err
	}

	lines := imaging.Threshold(imaging.ToGray(smoothed), lineThreshold)
	if err := art.Save(ArtifactFilterBinary, lines); err != nil {
		return nil, err
	}
	lines = imaging.Invert(imaging.Dilate(imaging.Invert(lines), imaging.EllipseKernel(2, 2)))
	if err := art.Save(ArtifactEnhancedLines, lines); err != nil {
		return nil, err
	}
	contours := detection.FilterByArea(detection.FindContours(lines), p.MinContourArea, p.maxArea(w, h))

	routeLines := imaging.Invert(imaging.Threshold(imaging.ToGray(routes), routeThreshold))
	if err := art.Save(ArtifactRoutesBinary, routeLines); err != nil {
		return nil, err
	}

	vegetation := imaging.InRangeHSV(satellite, VegetationHSV)
	if err := art.Save(ArtifactSatelliteGreen, vegetation); err != nil {
		return nil, err
	}
	vegetation = imaging.Erode(vegetation, imaging.RectKernel(5, 5))
	if err := art.Save(ArtifactSatelliteGreenReduced, vegetation); err != nil {
		return nil, err
	}

	res := &RouteVegetationResult{Blocks: imaging.ToNRGBA(smoothed)}
	red := imaging.Red.NRGBA()
	for _, c := range contours {
		region := c.Region(w, h)
		total := float64(region.Area())
		if total == 0 {
			continue
		}
		routeFrac := float64(region.CountIn(routeLines)) / total
		vegFrac := float64(region.CountIn(vegetation)) / total
		switch ClassifyBlock(routeFrac, vegFrac, p) {
		case Road:
			region.Fill(res.Blocks, red)
			res.Roads++
		case Vegetation:
			region.Fill(res.Blocks, red)
			res.Vegetation++
		default:
			res.Unclassified++
		}
	}

	if err := art.Save(ArtifactRoadsOverlay, imaging.Overlay(res.Blocks, routes, overlayWeight)); err != nil {
		return nil, err
	}
	outlined := imaging.ToNRGBA(res.Blocks)
	detection.DrawOutline(outlined, contours, imaging.Green.NRGBA())
	if err := art.Save(ArtifactContours, outlined); err != nil {
		return nil, err
	}

	final, _ := imaging.Otsu(imaging.ToGray(res.Blocks))
	final = imaging.Invert(final)
	if err := art.Save(ArtifactBinary, final); err != nil {
		return nil, err
	}

	k := imaging.RectKernel(reduceKernel, reduceKernel)
	final = imaging.Closing(imaging.Opening(final, k), k)
	if err := art.Save(ArtifactReduced, final); err != nil {
		return nil, err
	}
	final = imaging.MedianGray(final, finalMedianKernel)
	if err := art.Save(ArtifactReducedSmoothed, final); err != nil {
		return nil, err
	}
	res.Mask = final
	return res, nil
}
