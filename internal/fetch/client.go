package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/ironsheep/pedmap-tools/internal/config"
	"github.com/ironsheep/pedmap-tools/internal/logger"
)

const component = "fetch"

var (
	// ErrMissingCredential is returned when a service needs a token or API
	// key that is not configured.
	ErrMissingCredential = errors.New("missing credential")
	// ErrNoSession is returned when Google does not hand out a session.
	ErrNoSession = errors.New("no session token")
)

// StatusError is a non-200 response.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// HTTPClient abstracts HTTP operations for testability. *http.Client
// satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Endpoints are the service base URLs. Tests point them at local servers.
type Endpoints struct {
	MapService       string
	BoundaryService  string
	OrthoService     string
	OrthoTileService string
	RouteService     string
	GoogleTiles      string
	MapBoxStyles     string
}

// DefaultEndpoints returns the production service URLs.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		MapService:       "https://api.dataforsyningen.dk/forvaltning2",
		BoundaryService:  "https://api.dataforsyningen.dk/wms/MatGaeldendeOgForeloebigWMS_DAF",
		OrthoService:     "https://api.dataforsyningen.dk/orto_foraar_DAF",
		OrthoTileService: "https://api.dataforsyningen.dk/orto_foraar_wmts_DAF",
		RouteService:     "https://geocloud.vd.dk/CVF/wms",
		GoogleTiles:      "https://tile.googleapis.com/v1",
		MapBoxStyles:     "https://api.mapbox.com/styles/v1/mapbox/satellite-v9",
	}
}

// Client downloads map data. It is safe for sequential use only.
type Client struct {
	http      HTTPClient
	cfg       config.FetchConfig
	endpoints Endpoints
	log       logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(h HTTPClient) Option {
	return func(c *Client) { c.http = h }
}

// WithEndpoints replaces the service URLs.
func WithEndpoints(e Endpoints) Option {
	return func(c *Client) { c.endpoints = e }
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a Client from the fetch configuration.
func New(cfg config.FetchConfig, opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		cfg:       cfg,
		endpoints: DefaultEndpoints(),
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs a GET and returns the body of a 200 response.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: redact(req.URL.String())}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

// download fetches rawURL into path.
func (c *Client) download(ctx context.Context, rawURL, path string) error {
	body, err := c.get(ctx, rawURL)
	if err != nil {
		return err
	}
	return writeFile(path, body)
}

// pause waits for the configured request delay or until ctx is done.
func (c *Client) pause(ctx context.Context) error {
	if c.cfg.RequestDelay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(c.cfg.RequestDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// failureFields adds the request URL and, for status errors, the status
// code to fields.
func failureFields(err error, rawURL string, fields map[string]interface{}) map[string]interface{} {
	fields["url"] = redact(rawURL)
	var se *StatusError
	if errors.As(err, &se) {
		fields["status"] = se.StatusCode
	}
	return fields
}
