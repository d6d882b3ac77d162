package main

import (
	"context"
	"errors"
	"flag"
	"path/filepath"

	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/ironsheep/pedmap-tools/internal/evaluation"
	"github.com/ironsheep/pedmap-tools/internal/geo"
	"github.com/ironsheep/pedmap-tools/internal/imaging"
)

// featureTypes returns the -types flag or the configured default.
func (a *app) featureTypes(flagValue string) []string {
	if types := splitList(flagValue); len(types) > 0 {
		return types
	}
	return a.cfg.Evaluation.FeatureTypes
}

func (a *app) maskCommand() *ffcli.Command {
	fs := flag.NewFlagSet("pedmap mask", flag.ExitOnError)
	shapes := fs.String("shapes", "", "ground-truth .shp or .geojson file")
	bbox := fs.String("bbox", "", "minLat,minLon,maxLat,maxLon")
	width := fs.Int("width", 1000, "mask width in pixels")
	height := fs.Int("height", 1000, "mask height in pixels")
	types := fs.String("types", "", "comma separated f_type values to keep")
	out := fs.String("out", "", "mask file (defaults to mask.jpg in paths.output_dir)")

	return &ffcli.Command{
		Name:       "mask",
		ShortUsage: "pedmap mask -shapes FILE -bbox BBOX [-width N] [-height N] [-types LIST] [-out FILE]",
		ShortHelp:  "rasterise ground-truth shapes into a black-on-white mask",
		FlagSet:    fs,
		Exec: a.run(func(context.Context, []string) error {
			b, err := geo.ParseBBox(*bbox)
			if err != nil {
				return err
			}
			if *out == "" {
				*out = filepath.Join(a.cfg.Paths.OutputDir, evaluation.MaskFile)
			}
			set, err := evaluation.LoadShapes(*shapes, a.featureTypes(*types))
			if err != nil {
				return err
			}
			mask, err := evaluation.RenderMask(set, b, *width, *height)
			if err != nil {
				return err
			}
			if err := imaging.Save(mask, *out); err != nil {
				return err
			}
			a.log.Info("evaluation", "mask written", map[string]interface{}{
				"path": *out, "features": len(set.Features), "skipped": set.Skipped, "crs": set.CRS.String(),
			})
			return printJSON(map[string]interface{}{"path": *out, "features": len(set.Features)})
		}),
	}
}

func (a *app) compareCommand() *ffcli.Command {
	fs := flag.NewFlagSet("pedmap compare", flag.ExitOnError)
	pred := fs.String("pred", "", "predicted mask, usually segmented.jpg")
	truth := fs.String("truth", "", "ground-truth mask")
	resultMap := fs.String("result-map", "", "optional colour-coded TP/FP/FN/TN map")
	chart := fs.String("chart", "", "optional confusion matrix chart (.png, .svg, .pdf)")

	return &ffcli.Command{
		Name:       "compare",
		ShortUsage: "pedmap compare -pred FILE -truth FILE [-result-map FILE] [-chart FILE]",
		ShortHelp:  "score a predicted mask against ground truth",
		FlagSet:    fs,
		Exec: a.run(func(context.Context, []string) error {
			if *pred == "" || *truth == "" {
				return errors.New("-pred and -truth are required")
			}
			cmp, err := evaluation.CompareFiles(*pred, *truth)
			if err != nil {
				return err
			}
			if *resultMap != "" {
				if err := imaging.Save(cmp.ResultMap, *resultMap); err != nil {
					return err
				}
			}
			if *chart != "" {
				if err := evaluation.PlotConfusionMatrix(cmp.Matrix, *chart); err != nil {
					return err
				}
			}
			return printJSON(map[string]interface{}{
				"matrix": cmp.Matrix,
				"scores": cmp.Matrix.Scores(),
			})
		}),
	}
}

func (a *app) overlayCommand() *ffcli.Command {
	fs := flag.NewFlagSet("pedmap overlay", flag.ExitOnError)
	img := fs.String("image", "", "satellite image covering the bounding box")
	shapes := fs.String("shapes", "", "ground-truth .shp or .geojson file")
	bbox := fs.String("bbox", "", "minLat,minLon,maxLat,maxLon")
	types := fs.String("types", "", "comma separated f_type values to keep")
	opacity := fs.Float64("opacity", -1, "fill opacity (defaults to evaluation.overlay_opacity)")
	out := fs.String("out", "", "output image")

	return &ffcli.Command{
		Name:       "overlay",
		ShortUsage: "pedmap overlay -image FILE -shapes FILE -bbox BBOX -out FILE",
		ShortHelp:  "draw ground-truth shapes over satellite imagery",
		FlagSet:    fs,
		Exec: a.run(func(context.Context, []string) error {
			if *out == "" {
				return errors.New("-out is required")
			}
			b, err := geo.ParseBBox(*bbox)
			if err != nil {
				return err
			}
			base, err := imaging.Open(*img)
			if err != nil {
				return err
			}
			set, err := evaluation.LoadShapes(*shapes, a.featureTypes(*types))
			if err != nil {
				return err
			}

			style := evaluation.DefaultOverlayStyle()
			style.FillOpacity = a.cfg.Evaluation.OverlayOpacity
			if *opacity >= 0 {
				style.FillOpacity = *opacity
			}
			res, err := evaluation.RenderOverlay(base, set, b, style)
			if err != nil {
				return err
			}
			if err := imaging.Save(res, *out); err != nil {
				return err
			}
			return printJSON(map[string]interface{}{"path": *out, "features": len(set.Features)})
		}),
	}
}
