package fetch

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/pedmap-tools/internal/imaging"
)

func TestFetchMapBoxStatic(t *testing.T) {
	c, s := newTestClient(t, testConfig(), nil)
	s.handle = func(w http.ResponseWriter, r *http.Request) {
		writePNG(t, w, 1200, 600)
	}
	dir := t.TempDir()

	path, err := c.FetchMapBoxStatic(context.Background(), testBBox, 400, 200, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, StaticFile), path)

	reqs := s.requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/mapbox/satellite-v9/static/"+testBBox.MapBoxBBox()+"/1200x600", reqs[0].Path)
	assert.Equal(t, "mb-token", reqs[0].Query.Get("access_token"))

	img, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestFetchMapBoxStaticFailure(t *testing.T) {
	c, s := newTestClient(t, testConfig(), nil)
	s.handle = func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}
	dir := t.TempDir()

	_, err := c.FetchMapBoxStatic(context.Background(), testBBox, 400, 200, dir)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
	assert.NotContains(t, se.Error(), "mb-token")

	_, err = os.Stat(filepath.Join(dir, StaticFile))
	assert.True(t, os.IsNotExist(err))
}
