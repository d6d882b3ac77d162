package fetch

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"

	"github.com/ironsheep/pedmap-tools/internal/geo"
)

// TileFailure records one tile that could not be downloaded.
type TileFailure struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Error string `json:"error"`
}

// TileReport summarises a tile download.
type TileReport struct {
	Source     string        `json:"source"`
	Dir        string        `json:"dir"`
	Range      geo.TileRange `json:"range"`
	Total      int           `json:"total"`
	Downloaded int           `json:"downloaded"`
	Failed     []TileFailure `json:"failed,omitempty"`
}

// TileFile is the file name a tile is saved under.
func TileFile(x, y int) string {
	return fmt.Sprintf("%d_%d.png", x, y)
}

// downloadTiles fetches every tile of r, x outer and y inner, into dir.
// Failures are logged and recorded. Only cancellation stops the loop.
func (c *Client) downloadTiles(ctx context.Context, source string, r geo.TileRange, dir string, tileURL func(x, y int) string) (*TileReport, error) {
	report := &TileReport{Source: source, Dir: dir, Range: r, Total: r.Count()}
	c.log.Info(component, "downloading tiles", map[string]interface{}{
		"source": source,
		"zoom":   r.Zoom,
		"tiles":  report.Total,
	})

	for i, t := range r.Tiles() {
		if i > 0 {
			if err := c.pause(ctx); err != nil {
				return report, err
			}
		}
		rawURL := tileURL(t.X, t.Y)
		if err := c.download(ctx, rawURL, filepath.Join(dir, TileFile(t.X, t.Y))); err != nil {
			if ctx.Err() != nil {
				return report, ctx.Err()
			}
			c.log.Error(component, err, failureFields(err, rawURL, map[string]interface{}{
				"x": t.X,
				"y": t.Y,
			}))
			report.Failed = append(report.Failed, TileFailure{X: t.X, Y: t.Y, Error: err.Error()})
			continue
		}
		report.Downloaded++
		c.log.Debug(component, "tile downloaded", map[string]interface{}{
			"x":        t.X,
			"y":        t.Y,
			"progress": fmt.Sprintf("%d/%d", i+1, report.Total),
		})
	}

	c.log.Info(component, "tiles finished", map[string]interface{}{
		"source":     source,
		"downloaded": report.Downloaded,
		"failed":     len(report.Failed),
	})
	return report, nil
}

// FetchOrthoTiles downloads Dataforsyningen orthophoto WMTS tiles of
// matrix 15 for bbox.
func (c *Client) FetchOrthoTiles(ctx context.Context, bbox geo.BBox, dir string) (*TileReport, error) {
	if err := bbox.Validate(); err != nil {
		return nil, err
	}
	return c.FetchOrthoTileRange(ctx, geo.DataforsyningenTiles(bbox), dir)
}

// FetchOrthoTileRange downloads an explicit block of orthophoto tiles.
func (c *Client) FetchOrthoTileRange(ctx context.Context, r geo.TileRange, dir string) (*TileReport, error) {
	token := c.cfg.Dataforsyningen.Token
	if token == "" {
		return nil, fmt.Errorf("%w: dataforsyningen token", ErrMissingCredential)
	}
	return c.downloadTiles(ctx, "dataforsyningen", r, dir, func(x, y int) string {
		q := url.Values{
			"token":         {token},
			"layer":         {"orto_foraar_wmts"},
			"style":         {"default"},
			"tilematrixset": {"KortforsyningTilingDK"},
			"Service":       {"WMTS"},
			"Request":       {"GetTile"},
			"Version":       {"1.0.0"},
			"Format":        {"image/jpeg"},
			"TileMatrix":    {strconv.Itoa(r.Zoom)},
			"TileCol":       {strconv.Itoa(x)},
			"TileRow":       {strconv.Itoa(y)},
		}
		return c.endpoints.OrthoTileService + "?" + q.Encode()
	})
}

// FetchMapBoxTiles downloads MapBox satellite-v9 raster tiles covering bbox.
func (c *Client) FetchMapBoxTiles(ctx context.Context, bbox geo.BBox, zoom int, dir string) (*TileReport, error) {
	if err := bbox.Validate(); err != nil {
		return nil, err
	}
	token := c.cfg.MapBox.Token
	if token == "" {
		return nil, fmt.Errorf("%w: mapbox token", ErrMissingCredential)
	}
	r := geo.SlippyTiles(bbox, zoom)
	return c.downloadTiles(ctx, "mapbox", r, dir, func(x, y int) string {
		return fmt.Sprintf("%s/tiles/%d/%d/%d/?access_token=%s",
			c.endpoints.MapBoxStyles, r.Zoom, x, y, url.QueryEscape(token))
	})
}
