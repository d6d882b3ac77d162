package segmentation

import (
	"image"
	"path/filepath"
	"sync"

	"github.com/ironsheep/pedmap-tools/internal/imaging"
	"github.com/ironsheep/pedmap-tools/internal/logger"
)

// SubresultsDir is the directory, relative to a run's output directory,
// that receives the numbered stage rasters.
const SubresultsDir = "subresults"

// Stage raster names, in the order a full run writes them.
const (
	ArtifactBoundary               = "001_Boundary.png"
	ArtifactBoundaryDilated        = "002_Boundary_dialated.png"
	ArtifactBoundaryContour        = "003_Boundary_Contour.png"
	ArtifactBoundaryContourBlurred = "004_Boundary_Contour_Blurred.png"
	ArtifactPrivateResult          = "005_Result.png"
	ArtifactStructuresRedmask      = "006_Structures_Redmask.png"
	ArtifactStructuresRemoved      = "007_Structures_Removed.png"
	ArtifactFilterBlue             = "008_Filtering_Blue_Mask.png"
	ArtifactFilterBrown            = "009_Filtering_Brown_Mask.png"
	ArtifactFilterGreen            = "010_Filtering_Green_Mask.png"
	ArtifactFilterCombined         = "011_Filtering_Combined_Mask.png"
	ArtifactFilterResult           = "012_Filtering_Result.png"
	ArtifactFilterDenoised         = "013_Filtering_Noise_Reduced.png"
	ArtifactFilterBinary           = "014_Filtering_Binary.png"
	ArtifactEnhancedLines          = "015_Enhanced_Lines.png"
	ArtifactRoutesBinary           = "016_Routes_Binary.png"
	ArtifactSatelliteGreen         = "017_1_Satellite_Green_Mask.png"
	ArtifactSatelliteGreenReduced  = "017_2_Satellite_Green_Mask_Reduced.png"
	ArtifactRoadsOverlay           = "018_AM_Roads_Overlay.png"
	ArtifactContours               = "019_AM_Contours.png"
	ArtifactBinary                 = "020_AM_Binary.png"
	ArtifactReduced                = "021_AM_Reduced_1.png"
	ArtifactReducedSmoothed        = "021_AM_Reduced_2.png"
)

// Artifacts writes stage rasters for one run. A nil *Artifacts discards
// everything, which lets the filters be used on their own.
type Artifacts struct {
	dir string
	log logger.Logger

	mu      sync.Mutex
	written []string
}

// NewArtifacts returns a writer for <outDir>/subresults.
func NewArtifacts(outDir string, log logger.Logger) *Artifacts {
	if log == nil {
		log = logger.Nop()
	}
	return &Artifacts{dir: filepath.Join(outDir, SubresultsDir), log: log}
}

// Dir reports where stage rasters are written.
func (a *Artifacts) Dir() string {
	if a == nil {
		return ""
	}
	return a.dir
}

// Save writes img under name.
func (a *Artifacts) Save(name string, img image.Image) error {
	if a == nil {
		return nil
	}
	path := filepath.Join(a.dir, name)
	if err := imaging.Save(img, path); err != nil {
		return err
	}
	a.log.Debug("segmentation", "stage written", map[string]interface{}{
		"artifact": name,
	})

	a.mu.Lock()
	a.written = append(a.written, name)
	a.mu.Unlock()
	return nil
}

// Written lists the stage rasters saved so far, in write order.
func (a *Artifacts) Written() []string {
	if a == nil {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.written))
	copy(out, a.written)
	return out
}
