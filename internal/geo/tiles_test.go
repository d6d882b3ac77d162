package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlippyTiles(t *testing.T) {
	b := BBox{MinLat: 55.6761, MinLon: 12.5683, MaxLat: 55.6781, MaxLon: 12.5713}
	r := SlippyTiles(b, 19)

	assert.Equal(t, TileRange{Zoom: 19, XMin: 280447, XMax: 280452, YMin: 164094, YMax: 164099}, r)
	assert.Equal(t, 36, r.Count())
}

func TestDataforsyningenTiles(t *testing.T) {
	b := BBox{MinLat: 56.1515, MinLon: 10.2016, MaxLat: 56.1525, MaxLon: 10.2030}
	r := DataforsyningenTiles(b)

	assert.Equal(t, TileRange{Zoom: 15, XMin: 35520, XMax: 35526, YMin: 21584, YMax: 21593}, r)
	assert.Equal(t, 70, r.Count())
}

func TestTilesOrder(t *testing.T) {
	r := TileRange{XMin: 3, XMax: 4, YMin: 7, YMax: 9}
	assert.Equal(t, []Tile{
		{3, 7}, {3, 8}, {3, 9},
		{4, 7}, {4, 8}, {4, 9},
	}, r.Tiles())
}
