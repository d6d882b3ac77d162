package fetch

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/ironsheep/pedmap-tools/internal/geo"
	"github.com/ironsheep/pedmap-tools/internal/imaging"
)

const (
	// StaticFile is the name the static satellite image is saved under.
	StaticFile = "satellite.jpg"
	// staticLimit is the largest side the static images API renders.
	staticLimit = 1200
)

// FetchMapBoxStatic downloads one satellite image of bbox from the MapBox
// static images API and saves it, resized to w×h, as <dir>/satellite.jpg.
// The API caps the rendered size, so the image is requested at the largest
// size with the same aspect ratio and resized locally.
func (c *Client) FetchMapBoxStatic(ctx context.Context, bbox geo.BBox, w, h int, dir string) (string, error) {
	if err := bbox.Validate(); err != nil {
		return "", err
	}
	if w <= 0 || h <= 0 {
		return "", fmt.Errorf("invalid raster size %dx%d", w, h)
	}
	token := c.cfg.MapBox.Token
	if token == "" {
		return "", fmt.Errorf("%w: mapbox token", ErrMissingCredential)
	}

	rw, rh := imaging.FitWithin(w, h, staticLimit)
	rawURL := fmt.Sprintf("%s/static/%s/%dx%d?access_token=%s",
		c.endpoints.MapBoxStyles, bbox.MapBoxBBox(), rw, rh, url.QueryEscape(token))

	body, err := c.get(ctx, rawURL)
	if err != nil {
		c.log.Error(component, err, failureFields(err, rawURL, map[string]interface{}{}))
		return "", err
	}
	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, StaticFile)
	if err := imaging.Save(imaging.Resize(img, w, h), path); err != nil {
		return "", err
	}
	c.log.Info(component, "static image saved", map[string]interface{}{
		"path":      path,
		"requested": fmt.Sprintf("%dx%d", rw, rh),
		"saved":     fmt.Sprintf("%dx%d", w, h),
	})
	return path, nil
}
