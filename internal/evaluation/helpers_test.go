package evaluation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ironsheep/pedmap-tools/internal/geo"
)

// testBBox maps 0.001° to one pixel on a 100×100 raster.
var testBBox = geo.BBox{MinLat: 55.0, MinLon: 12.0, MaxLat: 55.1, MaxLon: 12.1}

type testFeature struct {
	fType string
	geom  string
}

func polygonJSON(rings ...[][2]float64) string {
	var rs []string
	for _, r := range rings {
		var pts []string
		for _, p := range r {
			pts = append(pts, fmt.Sprintf("[%g,%g]", p[0], p[1]))
		}
		rs = append(rs, "["+strings.Join(pts, ",")+"]")
	}
	return `{"type":"Polygon","coordinates":[` + strings.Join(rs, ",") + `]}`
}

// box returns a closed counter-clockwise lon/lat ring.
func box(minLon, minLat, maxLon, maxLat float64) [][2]float64 {
	return [][2]float64{
		{minLon, minLat}, {maxLon, minLat}, {maxLon, maxLat}, {minLon, maxLat}, {minLon, minLat},
	}
}

func reversed(r [][2]float64) [][2]float64 {
	out := make([][2]float64, len(r))
	for i := range r {
		out[i] = r[len(r)-1-i]
	}
	return out
}

func writeGeoJSON(t *testing.T, features ...testFeature) string {
	t.Helper()
	var fs []string
	for _, f := range features {
		fs = append(fs, fmt.Sprintf(`{"type":"Feature","properties":{"f_type":%q},"geometry":%s}`, f.fType, f.geom))
	}
	path := filepath.Join(t.TempDir(), "shapes.geojson")
	data := `{"type":"FeatureCollection","features":[` + strings.Join(fs, ",") + `]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

// sidewalkSquare covers pixels 20..49 on both axes of testBBox.
var sidewalkSquare = testFeature{"sidewalk", polygonJSON(box(12.02, 55.05, 12.05, 55.08))}
