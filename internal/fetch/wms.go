package fetch

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"

	"github.com/ironsheep/pedmap-tools/internal/geo"
	"github.com/ironsheep/pedmap-tools/internal/segmentation"
)

// wmsLayer describes one GetMap request and the file it is saved as.
type wmsLayer struct {
	file     string
	endpoint string
	params   url.Values
	token    bool
}

// mapLayers returns the five segmentation layers for bbox at w×h pixels.
func (c *Client) mapLayers(bbox geo.BBox, w, h int) []wmsLayer {
	box := bbox.WMSBBox()
	width, height := strconv.Itoa(w), strconv.Itoa(h)

	forvaltning := func(layer string) url.Values {
		return url.Values{
			"service":     {"WMS"},
			"request":     {"GetMap"},
			"SERVICE":     {"WMS"},
			"VERSION":     {"1.3.0"},
			"FORMAT":      {"image/png"},
			"STYLES":      {""},
			"TRANSPARENT": {"true"},
			"layers":      {layer},
			"transparent": {"FALSE"},
			"tiled":       {"true"},
			"WIDTH":       {width},
			"HEIGHT":      {height},
			"CRS":         {"EPSG:25832"},
			"BBOX":        {box},
		}
	}

	return []wmsLayer{
		{
			file:     segmentation.BaseMapFile,
			endpoint: c.endpoints.MapService,
			params:   forvaltning("Basis_kort"),
			token:    true,
		},
		{
			file:     segmentation.StructuresFile,
			endpoint: c.endpoints.MapService,
			params:   forvaltning("Adresse-byggesag"),
			token:    true,
		},
		{
			file:     segmentation.RoutesFile,
			endpoint: c.endpoints.RouteService,
			params: url.Values{
				"service":     {"WMS"},
				"request":     {"GetMap"},
				"SERVICE":     {"WMS"},
				"VERSION":     {"1.1.1"},
				"FORMAT":      {"image/png"},
				"STYLES":      {""},
				"TRANSPARENT": {"false"},
				"transparent": {"FALSE"},
				"layers":      {"CVF:veje"},
				"tiled":       {"true"},
				"WIDTH":       {width},
				"HEIGHT":      {height},
				"SRS":         {"EPSG:25832"},
				"BBOX":        {box},
			},
		},
		{
			file:     segmentation.BoundariesFile,
			endpoint: c.endpoints.BoundaryService,
			params: url.Values{
				"version":     {"2.0.0"},
				"service":     {"WMS"},
				"request":     {"GetMap"},
				"sld_version": {"1.1.0"},
				"layers":      {"MatrikelSkel_Gaeldende"},
				"FORMAT":      {"image/png"},
				"STYLES":      {"Sorte_skel"},
				"SERVICE":     {"WMS"},
				"VERSION":     {"1.1.1"},
				"TRANSPARENT": {"false"},
				"transparent": {"FALSE"},
				"WIDTH":       {width},
				"HEIGHT":      {height},
				"SRS":         {"EPSG:25832"},
				"BBOX":        {box},
			},
			token: true,
		},
		{
			file:     segmentation.SatelliteFile,
			endpoint: c.endpoints.OrthoService,
			params: url.Values{
				"version":     {"1.3.0"},
				"styles":      {"default"},
				"service":     {"WMS"},
				"request":     {"GetMap"},
				"sld_version": {"1.1.0"},
				"layers":      {"orto_foraar"},
				"FORMAT":      {"image/png"},
				"transparent": {"FALSE"},
				"WIDTH":       {width},
				"HEIGHT":      {height},
				"CRS":         {"EPSG:25832"},
				"BBOX":        {box},
			},
			token: true,
		},
	}
}

// LayerFailure records one layer that could not be downloaded.
type LayerFailure struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// LayersReport summarises FetchLayers.
type LayersReport struct {
	Dir        string         `json:"dir"`
	Downloaded []string       `json:"downloaded"`
	Failed     []LayerFailure `json:"failed,omitempty"`
}

// FetchLayers downloads the segmentation layers covering bbox at w×h pixels
// into dir. A failed layer is logged and reported; the rest still run. The
// returned error is reserved for invalid input and cancellation.
func (c *Client) FetchLayers(ctx context.Context, bbox geo.BBox, w, h int, dir string) (*LayersReport, error) {
	if err := bbox.Validate(); err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", w, h)
	}
	if c.cfg.Dataforsyningen.Token == "" {
		return nil, fmt.Errorf("%w: dataforsyningen token", ErrMissingCredential)
	}

	report := &LayersReport{Dir: dir}
	for _, l := range c.mapLayers(bbox, w, h) {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if l.token {
			l.params.Set("token", c.cfg.Dataforsyningen.Token)
		}
		rawURL := l.endpoint + "?" + l.params.Encode()

		if err := c.download(ctx, rawURL, filepath.Join(dir, l.file)); err != nil {
			if ctx.Err() != nil {
				return report, ctx.Err()
			}
			c.log.Error(component, err, failureFields(err, rawURL, map[string]interface{}{
				"layer": l.file,
			}))
			report.Failed = append(report.Failed, LayerFailure{File: l.file, Error: err.Error()})
			continue
		}
		c.log.Info(component, "layer downloaded", map[string]interface{}{"layer": l.file})
		report.Downloaded = append(report.Downloaded, l.file)
	}
	return report, nil
}
