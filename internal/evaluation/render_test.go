package evaluation

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/pedmap-tools/internal/geo"
)

func countZero(g *image.Gray) int {
	n := 0
	for _, v := range g.Pix {
		if v == 0 {
			n++
		}
	}
	return n
}

func TestRenderMask(t *testing.T) {
	set, err := LoadShapes(writeGeoJSON(t, sidewalkSquare), nil)
	require.NoError(t, err)

	mask, err := RenderMask(set, testBBox, 100, 100)
	require.NoError(t, err)

	assert.Equal(t, 30*30, countZero(mask))
	assert.Equal(t, uint8(0), mask.GrayAt(35, 35).Y)
	assert.Equal(t, uint8(0), mask.GrayAt(20, 20).Y)
	assert.Equal(t, uint8(255), mask.GrayAt(50, 35).Y)
	assert.Equal(t, uint8(255), mask.GrayAt(10, 10).Y)
}

func TestRenderMaskKeepsHoles(t *testing.T) {
	outer := box(12.02, 55.02, 12.08, 55.08)
	hole := reversed(box(12.04, 55.04, 12.06, 55.06))
	set, err := LoadShapes(writeGeoJSON(t, testFeature{"sidewalk", polygonJSON(outer, hole)}), nil)
	require.NoError(t, err)

	mask, err := RenderMask(set, testBBox, 100, 100)
	require.NoError(t, err)

	assert.Equal(t, 60*60-20*20, countZero(mask))
	assert.Equal(t, uint8(255), mask.GrayAt(50, 50).Y)
	assert.Equal(t, uint8(0), mask.GrayAt(30, 50).Y)
}

func TestRenderMaskProjectsBBoxForUTMShapes(t *testing.T) {
	set, err := LoadShapes(writeShapefile(t, shapefileOptions{prj: true}), []string{"sidewalk"})
	require.NoError(t, err)

	bbox := geo.BBox{MinLat: 55.6761, MinLon: 12.5683, MaxLat: 55.6781, MaxLon: 12.5713}
	mask, err := RenderMask(set, bbox, 100, 100)
	require.NoError(t, err)

	assert.Equal(t, uint8(0), mask.GrayAt(50, 50).Y)
	assert.Equal(t, uint8(255), mask.GrayAt(5, 5).Y)
	// the filtered building would cover (10,10)
	assert.Equal(t, uint8(255), mask.GrayAt(10, 10).Y)
}

func TestRenderMaskValidation(t *testing.T) {
	set := &ShapeSet{}
	_, err := RenderMask(set, testBBox, 0, 10)
	assert.Error(t, err)
	_, err = RenderMask(set, geo.BBox{MinLat: 1, MaxLat: 0}, 10, 10)
	assert.ErrorIs(t, err, geo.ErrInvalidBBox)

	mask, err := RenderMask(set, testBBox, 10, 10)
	require.NoError(t, err)
	assert.Zero(t, countZero(mask))
}
