package fetch

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/ironsheep/pedmap-tools/internal/config"
	"github.com/ironsheep/pedmap-tools/internal/logger"
)

type seenRequest struct {
	Method    string
	Path      string
	Query     url.Values
	UserAgent string
	Body      []byte
}

// stub is a local stand-in for every remote service.
type stub struct {
	t      *testing.T
	mu     sync.Mutex
	seen   []seenRequest
	handle func(w http.ResponseWriter, r *http.Request)
}

func (s *stub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body bytes.Buffer
	_, _ = body.ReadFrom(r.Body)
	s.mu.Lock()
	s.seen = append(s.seen, seenRequest{
		Method:    r.Method,
		Path:      r.URL.Path,
		Query:     r.URL.Query(),
		UserAgent: r.UserAgent(),
		Body:      body.Bytes(),
	})
	s.mu.Unlock()

	if s.handle != nil {
		s.handle(w, r)
		return
	}
	writePNG(s.t, w, 2, 2)
}

func (s *stub) requests() []seenRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]seenRequest, len(s.seen))
	copy(out, s.seen)
	return out
}

func writePNG(t *testing.T, w http.ResponseWriter, width, height int) {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 200, B: 10, A: 255})
	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		t.Errorf("encode png: %v", err)
	}
}

func testConfig() config.FetchConfig {
	cfg := config.Default().Fetch
	cfg.UserAgent = "pedmap-test"
	cfg.RequestDelay = 0
	cfg.Dataforsyningen.Token = "df-token"
	cfg.Google.APIKey = "g-key"
	cfg.MapBox.Token = "mb-token"
	return cfg
}

func newTestClient(t *testing.T, cfg config.FetchConfig, log logger.Logger) (*Client, *stub) {
	t.Helper()
	s := &stub{t: t}
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)

	endpoints := Endpoints{
		MapService:       srv.URL + "/forvaltning2",
		BoundaryService:  srv.URL + "/wms/boundaries",
		OrthoService:     srv.URL + "/orto",
		OrthoTileService: srv.URL + "/orto_wmts",
		RouteService:     srv.URL + "/CVF/wms",
		GoogleTiles:      srv.URL + "/google/v1",
		MapBoxStyles:     srv.URL + "/mapbox/satellite-v9",
	}
	if log == nil {
		log = logger.Nop()
	}
	return New(cfg, WithHTTPClient(srv.Client()), WithEndpoints(endpoints), WithLogger(log)), s
}
