package segmentation

import (
	"image"

	"github.com/ironsheep/pedmap-tools/internal/detection"
	"github.com/ironsheep/pedmap-tools/internal/imaging"
)

// PrivatePropertyResult is the output of FilterPrivateProperty.
type PrivatePropertyResult struct {
	// Map is the base map with private land painted red.
	Map *image.NRGBA
	// Parcels is the boundary raster with every kept parcel filled green
	// (public) or red (private).
	Parcels *image.NRGBA
	Public  int
	Private int
}

// FilterPrivateProperty classifies the parcels on the boundary layer and
// paints everything that is not a public parcel red on the base map.
//
// A parcel is public when at least one pixel of the route layer inside it
// carries the public route colour. Parcels outside the area bounds of p are
// ignored and end up red.
func FilterPrivateProperty(base, boundaries, routes image.Image, art *Artifacts, p Params) (*PrivatePropertyResult, error) {
	b := base.Bounds()
	w, h := b.Dx(), b.Dy()
	if err := checkSize(w, h, boundaries, routes); err != nil {
		return nil, err
	}

	binary, _ := imaging.Otsu(imaging.ToGray(boundaries))
	if err := art.Save(ArtifactBoundary, binary); err != nil {
		return nil, err
	}

	// Thicken the boundary lines so touching parcels separate.
	binary = imaging.Invert(imaging.Dilate(imaging.Invert(binary), imaging.RectKernel(2, 2)))
	if err := art.Save(ArtifactBoundaryDilated, binary); err != nil {
		return nil, err
	}

	contours := detection.FilterByArea(detection.FindContours(binary), p.MinContourArea, p.maxArea(w, h))
	publicRoutes := imaging.InRangeRGB(routes, PublicRouteColor)

	res := &PrivatePropertyResult{Parcels: imaging.ToNRGBA(boundaries)}
	for _, c := range contours {
		region := c.Region(w, h)
		switch ClassifyParcel(region.CountIn(publicRoutes)) {
		case Public:
			region.Fill(res.Parcels, imaging.Green.NRGBA())
			res.Public++
		default:
			region.Fill(res.Parcels, imaging.Red.NRGBA())
			res.Private++
		}
	}
	if err := art.Save(ArtifactBoundaryContour, res.Parcels); err != nil {
		return nil, err
	}

	blurred := imaging.MedianColor(res.Parcels, boundaryMedianKernel)
	if err := art.Save(ArtifactBoundaryContourBlurred, blurred); err != nil {
		return nil, err
	}

	public := imaging.InRangeHSV(blurred, PublicFillHSV)
	out, err := imaging.Paint(base, imaging.Invert(public), imaging.Red)
	if err != nil {
		return nil, err
	}
	if err := art.Save(ArtifactPrivateResult, out); err != nil {
		return nil, err
	}
	res.Map = out
	return res, nil
}
