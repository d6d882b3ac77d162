package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ironsheep/pedmap-tools/internal/geo"
)

type sessionRequest struct {
	MapType  string `json:"mapType"`
	Language string `json:"language"`
	Region   string `json:"region"`
}

type sessionResponse struct {
	Session string `json:"session"`
	Expiry  string `json:"expiry"`
}

// CreateGoogleSession requests a satellite session token from the Map
// Tiles API.
func (c *Client) CreateGoogleSession(ctx context.Context) (string, error) {
	key := c.cfg.Google.APIKey
	if key == "" {
		return "", fmt.Errorf("%w: google api key", ErrMissingCredential)
	}

	body, err := json.Marshal(sessionRequest{
		MapType:  "satellite",
		Language: c.cfg.Google.Language,
		Region:   c.cfg.Google.Region,
	})
	if err != nil {
		return "", err
	}
	rawURL := c.endpoints.GoogleTiles + "/createSession?key=" + url.QueryEscape(key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	data, err := c.do(req)
	if err != nil {
		c.log.Error(component, err, failureFields(err, rawURL, map[string]interface{}{}))
		return "", fmt.Errorf("%w: %v", ErrNoSession, err)
	}
	var resp sessionResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("failed to decode session response: %w", err)
	}
	if resp.Session == "" {
		return "", ErrNoSession
	}
	c.log.Debug(component, "google session created", map[string]interface{}{"expiry": resp.Expiry})
	return resp.Session, nil
}

// FetchGoogleTiles opens a session and downloads the satellite 2D tiles
// covering bbox.
func (c *Client) FetchGoogleTiles(ctx context.Context, bbox geo.BBox, zoom int, dir string) (*TileReport, error) {
	if err := bbox.Validate(); err != nil {
		return nil, err
	}
	session, err := c.CreateGoogleSession(ctx)
	if err != nil {
		return nil, err
	}
	key := url.QueryEscape(c.cfg.Google.APIKey)
	session = url.QueryEscape(session)
	r := geo.SlippyTiles(bbox, zoom)
	return c.downloadTiles(ctx, "google", r, dir, func(x, y int) string {
		return fmt.Sprintf("%s/2dtiles/%d/%d/%d?session=%s&key=%s",
			c.endpoints.GoogleTiles, r.Zoom, x, y, session, key)
	})
}
