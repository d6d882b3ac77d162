package segmentation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ironsheep/pedmap-tools/internal/imaging"
	"github.com/ironsheep/pedmap-tools/internal/logger"
)

// OutputFile is the name of the final raster inside a run's output
// directory.
const OutputFile = "segmented.jpg"

// Options selects the optional stages of a run.
type Options struct {
	RemoveStructures bool
}

// Result summarises one run.
type Result struct {
	RunID      string   `json:"run_id"`
	OutputPath string   `json:"output_path"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Public     int      `json:"public_parcels"`
	Private    int      `json:"private_parcels"`
	Roads      int      `json:"road_blocks"`
	Vegetation int      `json:"vegetation_blocks"`
	Unlabelled int      `json:"unclassified_blocks"`
	Structures int      `json:"structure_pixels"`
	Artifacts  []string `json:"artifacts"`
	DurationMS int64    `json:"duration_ms"`
}

// Segmenter runs the filter chain with one set of parameters.
type Segmenter struct {
	params Params
	log    logger.Logger
}

// New creates a Segmenter. A nil logger discards output.
func New(params Params, log logger.Logger) *Segmenter {
	if log == nil {
		log = logger.Nop()
	}
	return &Segmenter{params: params, log: log}
}

// Segment runs the pipeline on layers and writes the stage rasters and the
// final raster below outDir. ctx is checked between stages.
func (s *Segmenter) Segment(ctx context.Context, layers *Layers, outDir string, opts Options) (*Result, error) {
	if err := layers.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	start := time.Now()
	w, h := layers.Size()
	res := &Result{
		RunID:      uuid.NewString(),
		OutputPath: filepath.Join(outDir, OutputFile),
		Width:      w,
		Height:     h,
	}
	art := NewArtifacts(outDir, s.log)
	fields := map[string]interface{}{"run_id": res.RunID, "width": w, "height": h}
	s.log.Info("segmentation", "run started", fields)

	private, err := FilterPrivateProperty(layers.BaseMap, layers.Boundaries, layers.Routes, art, s.params)
	if err != nil {
		return nil, fmt.Errorf("private property filter: %w", err)
	}
	res.Public, res.Private = private.Public, private.Private
	s.log.Debug("segmentation", "parcels classified", map[string]interface{}{
		"run_id": res.RunID, "public": res.Public, "private": res.Private,
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	current := private.Map
	if opts.RemoveStructures {
		st, err := FilterStructures(current, layers.Structures, art)
		if err != nil {
			return nil, fmt.Errorf("structure filter: %w", err)
		}
		current = st.Map
		res.Structures = st.Pixels
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	rv, err := FilterRoutesAndVegetation(current, layers.Routes, layers.Satellite, art, s.params)
	if err != nil {
		return nil, fmt.Errorf("route and vegetation filter: %w", err)
	}
	res.Roads, res.Vegetation, res.Unlabelled = rv.Roads, rv.Vegetation, rv.Unclassified

	if err := imaging.Save(rv.Mask, res.OutputPath); err != nil {
		return nil, err
	}
	res.Artifacts = art.Written()
	res.DurationMS = time.Since(start).Milliseconds()

	s.log.Info("segmentation", "run finished", map[string]interface{}{
		"run_id":      res.RunID,
		"output":      res.OutputPath,
		"roads":       res.Roads,
		"vegetation":  res.Vegetation,
		"duration_ms": res.DurationMS,
	})
	return res, nil
}

// SegmentDir loads the layers in dir and runs Segment on them.
func (s *Segmenter) SegmentDir(ctx context.Context, dir, outDir string, opts Options) (*Result, error) {
	layers, err := LoadLayers(dir)
	if err != nil {
		return nil, err
	}
	return s.Segment(ctx, layers, outDir, opts)
}
