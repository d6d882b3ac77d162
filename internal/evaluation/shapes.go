package evaluation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// TypeAttribute is the feature attribute shapes are filtered on.
const TypeAttribute = "f_type"

// ErrUnsupportedFormat is returned for shape files that are neither
// shapefiles nor GeoJSON.
var ErrUnsupportedFormat = errors.New("unsupported shape format")

// ErrMissingTypeAttribute is returned when shapes are filtered by type but
// the shapefile has no f_type column.
var ErrMissingTypeAttribute = errors.New("shapefile has no " + TypeAttribute + " attribute")

// CRS identifies the coordinate system shape coordinates are stored in.
type CRS int

const (
	// WGS84 coordinates are lon/lat degrees.
	WGS84 CRS = iota
	// UTM32 coordinates are ETRS89 / UTM zone 32N metres.
	UTM32
)

func (c CRS) String() string {
	if c == UTM32 {
		return "EPSG:25832"
	}
	return "EPSG:4326"
}

// Feature is one shape with its type attribute.
type Feature struct {
	Type     string
	Geometry orb.Geometry
}

// ShapeSet is a filtered collection of shapes in one CRS.
type ShapeSet struct {
	CRS      CRS
	Features []Feature
	// Skipped counts features whose geometry cannot be filled.
	Skipped int
}

// LoadShapes reads polygons from a shapefile (.shp with its .dbf and
// optional .prj) or a GeoJSON file and keeps features whose f_type is one
// of types. An empty types list keeps everything.
func LoadShapes(path string, types []string) (*ShapeSet, error) {
	var (
		set *ShapeSet
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".shp":
		set, err = loadShapefile(path, len(types) > 0)
	case ".geojson", ".json":
		set, err = loadGeoJSON(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, err
	}
	set.Features = filterTypes(set.Features, types)
	return set, nil
}

func filterTypes(features []Feature, types []string) []Feature {
	if len(types) == 0 {
		return features
	}
	keep := make(map[string]bool, len(types))
	for _, t := range types {
		keep[t] = true
	}
	out := features[:0]
	for _, f := range features {
		if keep[f.Type] {
			out = append(out, f)
		}
	}
	return out
}

// loadShapefile reads the polygons of a shapefile. When needTypes is set a
// missing attribute table or f_type column is an error, since every
// feature would otherwise be filtered out silently.
func loadShapefile(path string, needTypes bool) (*ShapeSet, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open shapefile: %w", err)
	}
	defer r.Close()

	typeField := -1
	for i, f := range r.Fields() {
		if strings.EqualFold(f.String(), TypeAttribute) {
			typeField = i
		}
	}
	if needTypes && typeField < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingTypeAttribute, path)
	}

	set := &ShapeSet{CRS: shapefileCRS(path)}
	for r.Next() {
		n, s := r.Shape()
		var poly orb.Polygon
		switch g := s.(type) {
		case *shp.Polygon:
			poly = shpRings(g.Parts, g.Points)
		default:
			set.Skipped++
			continue
		}
		f := Feature{Geometry: poly}
		if typeField >= 0 {
			f.Type = strings.Trim(r.ReadAttribute(n, typeField), " \x00")
		}
		set.Features = append(set.Features, f)
	}
	return set, nil
}

// shpRings splits shapefile points into rings at the part offsets.
func shpRings(parts []int32, points []shp.Point) orb.Polygon {
	poly := make(orb.Polygon, 0, len(parts))
	for i, start := range parts {
		end := int32(len(points))
		if i+1 < len(parts) {
			end = parts[i+1]
		}
		ring := make(orb.Ring, 0, end-start)
		for _, p := range points[start:end] {
			ring = append(ring, orb.Point{p.X, p.Y})
		}
		poly = append(poly, ring)
	}
	return poly
}

// shapefileCRS sniffs the .prj next to path. Shapefiles without one are
// taken to be WGS84.
func shapefileCRS(path string) CRS {
	prj, err := os.ReadFile(strings.TrimSuffix(path, filepath.Ext(path)) + ".prj")
	if err != nil {
		return WGS84
	}
	wkt := strings.ToUpper(string(prj))
	if strings.Contains(wkt, "25832") ||
		(strings.Contains(wkt, "UTM") && strings.Contains(wkt, "32N")) {
		return UTM32
	}
	return WGS84
}

func loadGeoJSON(path string) (*ShapeSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read geojson: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse geojson: %w", err)
	}

	set := &ShapeSet{CRS: WGS84}
	for _, f := range fc.Features {
		switch f.Geometry.(type) {
		case orb.Polygon, orb.MultiPolygon:
		default:
			set.Skipped++
			continue
		}
		set.Features = append(set.Features, Feature{
			Type:     f.Properties.MustString(TypeAttribute, ""),
			Geometry: f.Geometry,
		})
	}
	return set, nil
}

// rings returns every ring of a fillable geometry.
func rings(g orb.Geometry) []orb.Ring {
	switch g := g.(type) {
	case orb.Polygon:
		return g
	case orb.MultiPolygon:
		var out []orb.Ring
		for _, p := range g {
			out = append(out, p...)
		}
		return out
	}
	return nil
}
