package segmentation

import (
	"image"

	"github.com/ironsheep/pedmap-tools/internal/imaging"
)

// StructureResult is the output of FilterStructures.
type StructureResult struct {
	Map *image.NRGBA
	// Pixels is the number of pixels recognised as structure.
	Pixels int
}

// FilterStructures paints every pixel that is a building or structure on
// the structures layer red on target. Matching is per pixel with no
// contour step, so sidewalk under overhangs is lost as well.
func FilterStructures(target, structures image.Image, art *Artifacts) (*StructureResult, error) {
	b := target.Bounds()
	if err := checkSize(b.Dx(), b.Dy(), structures); err != nil {
		return nil, err
	}

	mask := imaging.InRangeHSV(structures, StructureHSV)
	if err := art.Save(ArtifactStructuresRedmask, imaging.ColorMask(mask, imaging.Red)); err != nil {
		return nil, err
	}

	out, err := imaging.Paint(target, mask, imaging.Red)
	if err != nil {
		return nil, err
	}
	if err := art.Save(ArtifactStructuresRemoved, out); err != nil {
		return nil, err
	}
	return &StructureResult{Map: out, Pixels: imaging.CountNonZero(mask)}, nil
}
