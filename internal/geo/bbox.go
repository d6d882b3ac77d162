package geo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// ErrInvalidBBox is returned for boxes that are empty, inverted or outside
// WGS84 ranges.
var ErrInvalidBBox = errors.New("invalid bounding box")

// BBox is an area of interest in WGS84 degrees.
type BBox struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// ParseBBox parses "minLat,minLon,maxLat,maxLon".
func ParseBBox(s string) (BBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return BBox{}, fmt.Errorf("%w: want minLat,minLon,maxLat,maxLon, got %q", ErrInvalidBBox, s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return BBox{}, fmt.Errorf("%w: %v", ErrInvalidBBox, err)
		}
		v[i] = f
	}
	b := BBox{MinLat: v[0], MinLon: v[1], MaxLat: v[2], MaxLon: v[3]}
	return b, b.Validate()
}

// Validate checks ordering and ranges.
func (b BBox) Validate() error {
	switch {
	case b.MinLat < -90 || b.MaxLat > 90:
		return fmt.Errorf("%w: latitude out of range", ErrInvalidBBox)
	case b.MinLon < -180 || b.MaxLon > 180:
		return fmt.Errorf("%w: longitude out of range", ErrInvalidBBox)
	case b.MinLat >= b.MaxLat || b.MinLon >= b.MaxLon:
		return fmt.Errorf("%w: minimum must be below maximum", ErrInvalidBBox)
	}
	return nil
}

// Bound returns the box as an orb bound in lon/lat order.
func (b BBox) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.MinLon, b.MinLat},
		Max: orb.Point{b.MaxLon, b.MaxLat},
	}
}

// UTM32 projects the two corners of the box. The result is the bound of
// the projected corners, not of the projected outline, which is what WMS
// requests for the box use.
func (b BBox) UTM32() orb.Bound {
	x1, y1 := ToUTM32(b.MinLat, b.MinLon)
	x2, y2 := ToUTM32(b.MaxLat, b.MaxLon)
	return orb.Bound{Min: orb.Point{x1, y1}, Max: orb.Point{x2, y2}}
}

// UTM32Extent projects all four corners and returns their bound, which
// contains the whole projected box.
func (b BBox) UTM32Extent() orb.Bound {
	var ring orb.Ring
	for _, c := range [][2]float64{
		{b.MinLat, b.MinLon}, {b.MinLat, b.MaxLon},
		{b.MaxLat, b.MaxLon}, {b.MaxLat, b.MinLon},
	} {
		x, y := ToUTM32(c[0], c[1])
		ring = append(ring, orb.Point{x, y})
	}
	return ring.Bound()
}

// WMSBBox formats the projected corners as "minx,miny,maxx,maxy".
func (b BBox) WMSBBox() string {
	u := b.UTM32()
	return strings.Join([]string{
		formatFloat(u.Min[0]), formatFloat(u.Min[1]),
		formatFloat(u.Max[0]), formatFloat(u.Max[1]),
	}, ",")
}

// MapBoxBBox formats the box for the static images API, which takes it
// in lon/lat order: "[minLon,minLat,maxLon,maxLat]".
func (b BBox) MapBoxBBox() string {
	return "[" + strings.Join([]string{
		formatFloat(b.MinLon), formatFloat(b.MinLat),
		formatFloat(b.MaxLon), formatFloat(b.MaxLat),
	}, ",") + "]"
}

func (b BBox) String() string {
	return strings.Join([]string{
		formatFloat(b.MinLat), formatFloat(b.MinLon),
		formatFloat(b.MaxLat), formatFloat(b.MaxLon),
	}, ",")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
