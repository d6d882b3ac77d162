package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

// TileRange is an inclusive block of tile indices at one zoom level.
type TileRange struct {
	Zoom int `json:"zoom"`
	XMin int `json:"x_min"`
	XMax int `json:"x_max"`
	YMin int `json:"y_min"`
	YMax int `json:"y_max"`
}

// SlippyTiles returns the Web Mercator tiles covering b at zoom, as used
// by Google and MapBox.
func SlippyTiles(b BBox, zoom int) TileRange {
	z := maptile.Zoom(zoom)
	t1 := maptile.At(orb.Point{b.MinLon, b.MinLat}, z)
	t2 := maptile.At(orb.Point{b.MaxLon, b.MaxLat}, z)
	return newTileRange(zoom, int(t1.X), int(t1.Y), int(t2.X), int(t2.Y))
}

// Dataforsyningen WMTS grid "KortforsyningTilingDK" at tile matrix 15, the
// finest level. The grid covers 120000-1000000 E, 5900000-6500000 N in
// EPSG:25832 with row 0 at the top.
const (
	DataforsyningenMatrix = 15
	dfXStart              = 120000.0
	dfYStart              = 5900000.0
	dfXEnd                = 1000000.0
	dfYEnd                = 6500000.0
	dfMatrixWidth         = 68750
	dfMatrixHeight        = 46875
)

// DataforsyningenTiles returns the WMTS tiles of matrix 15 covering b.
func DataforsyningenTiles(b BBox) TileRange {
	xRatio := (dfXEnd - dfXStart) / dfMatrixWidth
	yRatio := (dfYEnd - dfYStart) / dfMatrixHeight
	u := b.UTM32()
	col := func(x float64) int { return int((x-dfXStart)/xRatio + 1) }
	row := func(y float64) int { return int(dfMatrixHeight - ((y-dfYStart)/yRatio + 1)) }
	return newTileRange(DataforsyningenMatrix,
		col(u.Min[0]), row(u.Min[1]), col(u.Max[0]), row(u.Max[1]))
}

func newTileRange(zoom, x1, y1, x2, y2 int) TileRange {
	r := TileRange{Zoom: zoom, XMin: x1, XMax: x2, YMin: y1, YMax: y2}
	if r.XMin > r.XMax {
		r.XMin, r.XMax = r.XMax, r.XMin
	}
	if r.YMin > r.YMax {
		r.YMin, r.YMax = r.YMax, r.YMin
	}
	return r
}

// Count is the number of tiles in the range.
func (r TileRange) Count() int {
	return (r.XMax - r.XMin + 1) * (r.YMax - r.YMin + 1)
}

// Tile is one tile index.
type Tile struct {
	X, Y int
}

// Tiles lists the range column by column: x outer, y inner.
func (r TileRange) Tiles() []Tile {
	out := make([]Tile, 0, r.Count())
	for x := r.XMin; x <= r.XMax; x++ {
		for y := r.YMin; y <= r.YMax; y++ {
			out = append(out, Tile{X: x, Y: y})
		}
	}
	return out
}
