package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/ironsheep/pedmap-tools/internal/evaluation"
	"github.com/ironsheep/pedmap-tools/internal/geo"
	"github.com/ironsheep/pedmap-tools/internal/imaging"
	"github.com/ironsheep/pedmap-tools/internal/segmentation"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "segment_map", "compare_masks").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		s.log.Error(component, err, map[string]interface{}{"tool": params.Name})
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Segmentation
	case "segment_map":
		return s.handleSegmentMap(ctx, args)
	case "sample_map_color":
		return s.handleSampleMapColor(args)
	case "view_stage":
		return s.handleViewStage(args)

	// Evaluation
	case "shapes_to_mask":
		return s.handleShapesToMask(args)
	case "compare_masks":
		return s.handleCompareMasks(args)
	case "overlay_shapes":
		return s.handleOverlayShapes(args)

	// Fetching
	case "fetch_map_layers":
		return s.handleFetchMapLayers(ctx, args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Segmentation Handlers ===

type segmentMapArgs struct {
	Dir              string `json:"dir"`
	OutputDir        string `json:"output_dir"`
	RemoveStructures *bool  `json:"remove_structures"`
}

func (s *Server) handleSegmentMap(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a segmentMapArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Dir == "" {
		return nil, errors.New("dir is required")
	}
	if a.OutputDir == "" {
		a.OutputDir = a.Dir
	}
	opts := segmentation.Options{RemoveStructures: s.cfg.Segmentation.RemoveStructures}
	if a.RemoveStructures != nil {
		opts.RemoveStructures = *a.RemoveStructures
	}

	res, err := s.segmenter.SegmentDir(ctx, a.Dir, a.OutputDir, opts)
	if err != nil {
		return nil, err
	}
	// Stage rasters were rewritten on disk.
	s.cache.Clear()
	return res, nil
}

type samplePoint struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label,omitempty"`
}

type sampleMapColorArgs struct {
	Path   string        `json:"path"`
	Points []samplePoint `json:"points"`
}

// SampledColor is one sampled pixel with the colour ranges it matches.
type SampledColor struct {
	samplePoint
	*imaging.ColorResult
	Ranges []string `json:"ranges"`
}

func (s *Server) handleSampleMapColor(args json.RawMessage) (interface{}, error) {
	var a sampleMapColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if len(a.Points) == 0 {
		return nil, errors.New("at least one point is required")
	}
	info, err := imaging.LoadImageInfo(s.cache, a.Path)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	out := make([]SampledColor, 0, len(a.Points))
	for _, p := range a.Points {
		c, err := imaging.SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, err
		}
		ranges := segmentation.MatchingRanges(c.RGB)
		if ranges == nil {
			ranges = []string{}
		}
		out = append(out, SampledColor{samplePoint: p, ColorResult: c, Ranges: ranges})
	}
	return map[string]interface{}{"image": info, "samples": out}, nil
}

type viewStageArgs struct {
	Path  string  `json:"path"`
	X1    int     `json:"x1"`
	Y1    int     `json:"y1"`
	X2    int     `json:"x2"`
	Y2    int     `json:"y2"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleViewStage(args json.RawMessage) (interface{}, error) {
	var a viewStageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	if a.Scale < 0 {
		return nil, fmt.Errorf("scale must be positive, got %v", a.Scale)
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	if a.X2 == 0 {
		a.X2 = b.Dx()
	}
	if a.Y2 == 0 {
		a.Y2 = b.Dy()
	}

	region, err := imaging.Crop(img, image.Rect(a.X1, a.Y1, a.X2, a.Y2))
	if err != nil {
		return nil, err
	}
	if a.Scale != 1.0 {
		region = imaging.Scale(region, a.Scale)
	}
	return imaging.Encode(region)
}

// === Evaluation Handlers ===

type shapesToMaskArgs struct {
	Shapes string   `json:"shapes"`
	BBox   string   `json:"bbox"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Types  []string `json:"types"`
	Output string   `json:"output"`
}

// MaskResult describes a rendered ground-truth mask.
type MaskResult struct {
	Path     string `json:"path"`
	CRS      string `json:"crs"`
	Features int    `json:"features"`
	Skipped  int    `json:"skipped"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

func (s *Server) loadShapes(path string, types []string) (*evaluation.ShapeSet, error) {
	if len(types) == 0 {
		types = s.cfg.Evaluation.FeatureTypes
	}
	return evaluation.LoadShapes(path, types)
}

func (s *Server) handleShapesToMask(args json.RawMessage) (interface{}, error) {
	var a shapesToMaskArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	bbox, err := geo.ParseBBox(a.BBox)
	if err != nil {
		return nil, err
	}
	if a.Output == "" {
		a.Output = filepath.Join(s.cfg.Paths.OutputDir, evaluation.MaskFile)
	}

	set, err := s.loadShapes(a.Shapes, a.Types)
	if err != nil {
		return nil, err
	}
	mask, err := evaluation.RenderMask(set, bbox, a.Width, a.Height)
	if err != nil {
		return nil, err
	}
	if err := imaging.Save(mask, a.Output); err != nil {
		return nil, err
	}
	s.cache.Evict(a.Output)

	return &MaskResult{
		Path:     a.Output,
		CRS:      set.CRS.String(),
		Features: len(set.Features),
		Skipped:  set.Skipped,
		Width:    a.Width,
		Height:   a.Height,
	}, nil
}

type compareMasksArgs struct {
	Prediction  string `json:"prediction"`
	GroundTruth string `json:"ground_truth"`
	ResultMap   string `json:"result_map"`
	Chart       string `json:"chart"`
}

// CompareResult is the outcome of compare_masks.
type CompareResult struct {
	Matrix    evaluation.ConfusionMatrix `json:"matrix"`
	Scores    evaluation.Scores          `json:"scores"`
	ResultMap string                     `json:"result_map,omitempty"`
	Chart     string                     `json:"chart,omitempty"`
}

func (s *Server) handleCompareMasks(args json.RawMessage) (interface{}, error) {
	var a compareMasksArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	pred, err := s.cache.Load(a.Prediction)
	if err != nil {
		return nil, err
	}
	truth, err := s.cache.Load(a.GroundTruth)
	if err != nil {
		return nil, err
	}

	cmp, err := evaluation.Compare(pred, truth)
	if err != nil {
		return nil, err
	}
	res := &CompareResult{Matrix: cmp.Matrix, Scores: cmp.Matrix.Scores()}

	if a.ResultMap != "" {
		if err := imaging.Save(cmp.ResultMap, a.ResultMap); err != nil {
			return nil, err
		}
		s.cache.Evict(a.ResultMap)
		res.ResultMap = a.ResultMap
	}
	if a.Chart != "" {
		if err := evaluation.PlotConfusionMatrix(cmp.Matrix, a.Chart); err != nil {
			return nil, err
		}
		res.Chart = a.Chart
	}
	return res, nil
}

type overlayShapesArgs struct {
	Image       string   `json:"image"`
	Shapes      string   `json:"shapes"`
	BBox        string   `json:"bbox"`
	Types       []string `json:"types"`
	Output      string   `json:"output"`
	FillOpacity *float64 `json:"fill_opacity"`
}

func (s *Server) handleOverlayShapes(args json.RawMessage) (interface{}, error) {
	var a overlayShapesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Output == "" {
		return nil, errors.New("output is required")
	}
	bbox, err := geo.ParseBBox(a.BBox)
	if err != nil {
		return nil, err
	}
	base, err := s.cache.Load(a.Image)
	if err != nil {
		return nil, err
	}
	set, err := s.loadShapes(a.Shapes, a.Types)
	if err != nil {
		return nil, err
	}

	style := evaluation.DefaultOverlayStyle()
	style.FillOpacity = s.cfg.Evaluation.OverlayOpacity
	if a.FillOpacity != nil {
		style.FillOpacity = *a.FillOpacity
	}
	out, err := evaluation.RenderOverlay(base, set, bbox, style)
	if err != nil {
		return nil, err
	}
	if err := imaging.Save(out, a.Output); err != nil {
		return nil, err
	}
	s.cache.Evict(a.Output)

	return map[string]interface{}{
		"path":     a.Output,
		"features": len(set.Features),
	}, nil
}

// === Fetch Handlers ===

type fetchMapLayersArgs struct {
	BBox   string `json:"bbox"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Dir    string `json:"dir"`
}

func (s *Server) handleFetchMapLayers(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a fetchMapLayersArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	bbox, err := geo.ParseBBox(a.BBox)
	if err != nil {
		return nil, err
	}
	report, err := s.fetcher.FetchLayers(ctx, bbox, a.Width, a.Height, a.Dir)
	if err != nil {
		return nil, err
	}
	s.cache.Clear()
	return report, nil
}
