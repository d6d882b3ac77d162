package segmentation

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/pedmap-tools/internal/imaging"
)

func TestLoadLayers(t *testing.T) {
	dir := t.TempDir()
	writeLayers(t, dir, syntheticLayers())

	l, err := LoadLayers(dir)
	require.NoError(t, err)
	require.NoError(t, l.Validate())

	w, h := l.Size()
	assert.Equal(t, 200, w)
	assert.Equal(t, 200, h)
	assert.Equal(t, imaging.Black, rgbAt(l.Boundaries, 100, 100))
	assert.Equal(t, grey, rgbAt(l.Satellite, 0, 0))
}

func TestLoadLayersMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeLayers(t, dir, syntheticLayers())
	require.NoError(t, os.Remove(filepath.Join(dir, SatelliteFile)))

	_, err := LoadLayers(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), SatelliteFile)
}

func TestValidateDimensionMismatch(t *testing.T) {
	l := syntheticLayers()
	l.Satellite = solid(10, 10, grey)

	err := l.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	assert.Contains(t, err.Error(), "satellite")
}

func TestValidateMissingLayer(t *testing.T) {
	l := syntheticLayers()
	l.Routes = nil
	assert.Error(t, l.Validate())
}
