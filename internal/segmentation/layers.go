package segmentation

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/ironsheep/pedmap-tools/internal/imaging"
)

// Layer file names inside a layer directory.
const (
	StructuresFile = "AM_with_roads.png"
	BoundariesFile = "boundaries.png"
	RoutesFile     = "routes.png"
	BaseMapFile    = "AM_Detailed.png"
	SatelliteFile  = "satellite.png"
)

// ErrDimensionMismatch is returned when the layers of one run are not the
// same size.
var ErrDimensionMismatch = errors.New("layer dimensions differ")

// Layers holds the co-registered inputs of one run.
type Layers struct {
	// Administrative map with buildings and roads drawn in.
	Structures *image.NRGBA
	// Cadastral parcel boundaries, black lines on white.
	Boundaries *image.NRGBA
	// Route lines, with public routes marked in green.
	Routes *image.NRGBA
	// Detailed administrative base map.
	BaseMap *image.NRGBA
	// Aerial photograph.
	Satellite *image.NRGBA
}

// LoadLayers reads the five layer files from dir. The first missing or
// undecodable file aborts the load and is named in the error.
func LoadLayers(dir string) (*Layers, error) {
	l := &Layers{}
	targets := []struct {
		file string
		dst  **image.NRGBA
	}{
		{StructuresFile, &l.Structures},
		{BoundariesFile, &l.Boundaries},
		{RoutesFile, &l.Routes},
		{BaseMapFile, &l.BaseMap},
		{SatelliteFile, &l.Satellite},
	}
	for _, t := range targets {
		img, err := imaging.OpenNRGBA(filepath.Join(dir, t.file))
		if err != nil {
			return nil, fmt.Errorf("load layer %s: %w", t.file, err)
		}
		*t.dst = img
	}
	return l, nil
}

// Size reports the dimensions of the base map.
func (l *Layers) Size() (width, height int) {
	b := l.BaseMap.Bounds()
	return b.Dx(), b.Dy()
}

// Validate checks that every layer is present and matches the base map.
func (l *Layers) Validate() error {
	named := []struct {
		name string
		img  *image.NRGBA
	}{
		{"base map", l.BaseMap},
		{"boundaries", l.Boundaries},
		{"routes", l.Routes},
		{"satellite", l.Satellite},
		{"structures", l.Structures},
	}
	for _, n := range named {
		if n.img == nil {
			return fmt.Errorf("layer %s is missing", n.name)
		}
	}
	w, h := l.Size()
	for _, n := range named[1:] {
		b := n.img.Bounds()
		if b.Dx() != w || b.Dy() != h {
			return fmt.Errorf("%w: %s is %dx%d, base map is %dx%d",
				ErrDimensionMismatch, n.name, b.Dx(), b.Dy(), w, h)
		}
	}
	return nil
}

func checkSize(w, h int, imgs ...image.Image) error {
	for _, img := range imgs {
		b := img.Bounds()
		if b.Dx() != w || b.Dy() != h {
			return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrDimensionMismatch, b.Dx(), b.Dy(), w, h)
		}
	}
	return nil
}
