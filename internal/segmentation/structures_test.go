package segmentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/pedmap-tools/internal/imaging"
)

func TestFilterStructures(t *testing.T) {
	structures := solid(20, 20, imaging.White)
	fillRect(structures, 5, 5, 9, 9, imaging.RGBColor{R: 255, G: 200, B: 0})
	target := solid(20, 20, grey)

	art := NewArtifacts(t.TempDir(), nil)
	res, err := FilterStructures(target, structures, art)
	require.NoError(t, err)

	assert.Equal(t, 25, res.Pixels)
	assert.Equal(t, imaging.Red, rgbAt(res.Map, 6, 6))
	assert.Equal(t, grey, rgbAt(res.Map, 0, 0))
	assert.Equal(t, 25, countColor(res.Map, imaging.Red))
	// target is left untouched
	assert.Equal(t, grey, rgbAt(target, 6, 6))
	assert.Equal(t, []string{ArtifactStructuresRedmask, ArtifactStructuresRemoved}, art.Written())
}

func TestFilterStructuresSizeMismatch(t *testing.T) {
	_, err := FilterStructures(solid(20, 20, grey), solid(10, 20, grey), nil)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
