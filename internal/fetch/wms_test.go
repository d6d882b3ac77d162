package fetch

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/pedmap-tools/internal/geo"
	"github.com/ironsheep/pedmap-tools/internal/logger"
	"github.com/ironsheep/pedmap-tools/internal/segmentation"
)

var testBBox = geo.BBox{MinLat: 55.6761, MinLon: 12.5683, MaxLat: 55.6781, MaxLon: 12.5713}

func TestFetchLayers(t *testing.T) {
	c, s := newTestClient(t, testConfig(), nil)
	dir := t.TempDir()

	report, err := c.FetchLayers(context.Background(), testBBox, 640, 480, dir)
	require.NoError(t, err)

	assert.Empty(t, report.Failed)
	assert.ElementsMatch(t, []string{
		segmentation.BaseMapFile,
		segmentation.StructuresFile,
		segmentation.RoutesFile,
		segmentation.BoundariesFile,
		segmentation.SatelliteFile,
	}, report.Downloaded)
	for _, f := range report.Downloaded {
		_, err := os.Stat(filepath.Join(dir, f))
		assert.NoError(t, err, f)
	}

	// The downloaded directory is a complete segmentation input.
	_, err = segmentation.LoadLayers(dir)
	assert.NoError(t, err)

	reqs := s.requests()
	require.Len(t, reqs, 5)
	for _, r := range reqs {
		assert.Equal(t, "pedmap-test", r.UserAgent)
		assert.Equal(t, "640", r.Query.Get("WIDTH"))
		assert.Equal(t, "480", r.Query.Get("HEIGHT"))
		assert.Equal(t, testBBox.WMSBBox(), r.Query.Get("BBOX"))
	}

	byLayer := map[string]seenRequest{}
	for _, r := range reqs {
		byLayer[r.Query.Get("layers")] = r
	}
	assert.Equal(t, "/forvaltning2", byLayer["Basis_kort"].Path)
	assert.Equal(t, "df-token", byLayer["Basis_kort"].Query.Get("token"))
	assert.Equal(t, "EPSG:25832", byLayer["Adresse-byggesag"].Query.Get("CRS"))
	assert.Equal(t, "Sorte_skel", byLayer["MatrikelSkel_Gaeldende"].Query.Get("STYLES"))
	assert.Equal(t, "EPSG:25832", byLayer["CVF:veje"].Query.Get("SRS"))
	assert.False(t, byLayer["CVF:veje"].Query.Has("token"))
	assert.Equal(t, "default", byLayer["orto_foraar"].Query.Get("styles"))
}

func TestFetchLayersContinuesAfterFailure(t *testing.T) {
	var buf bytes.Buffer
	c, s := newTestClient(t, testConfig(), logger.NewZerolog(&buf, zerolog.InfoLevel))
	s.handle = func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/CVF/wms" {
			http.Error(w, "down", http.StatusInternalServerError)
			return
		}
		writePNG(t, w, 2, 2)
	}

	report, err := c.FetchLayers(context.Background(), testBBox, 10, 10, t.TempDir())
	require.NoError(t, err)

	assert.Len(t, report.Downloaded, 4)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, segmentation.RoutesFile, report.Failed[0].File)
	assert.Contains(t, report.Failed[0].Error, "500")

	assert.Contains(t, buf.String(), `"status":500`)
	assert.NotContains(t, buf.String(), "df-token")
}

func TestFetchLayersValidation(t *testing.T) {
	cfg := testConfig()
	cfg.Dataforsyningen.Token = ""
	c, s := newTestClient(t, cfg, nil)

	_, err := c.FetchLayers(context.Background(), testBBox, 10, 10, t.TempDir())
	assert.True(t, errors.Is(err, ErrMissingCredential))

	c, _ = newTestClient(t, testConfig(), nil)
	_, err = c.FetchLayers(context.Background(), testBBox, 0, 10, t.TempDir())
	assert.Error(t, err)

	_, err = c.FetchLayers(context.Background(), geo.BBox{MinLat: 2, MaxLat: 1, MaxLon: 1}, 10, 10, t.TempDir())
	assert.ErrorIs(t, err, geo.ErrInvalidBBox)

	assert.Empty(t, s.requests())
}
