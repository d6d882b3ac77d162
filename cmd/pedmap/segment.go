package main

import (
	"context"
	"errors"
	"flag"

	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/ironsheep/pedmap-tools/internal/segmentation"
)

func (a *app) segmentCommand() *ffcli.Command {
	fs := flag.NewFlagSet("pedmap segment", flag.ExitOnError)
	dir := fs.String("dir", "", "directory holding the map layers (defaults to paths.data_dir)")
	out := fs.String("out", "", "output directory (defaults to paths.output_dir)")
	removeStructures := fs.Bool("remove-structures", false, "paint buildings red before route classification")

	return &ffcli.Command{
		Name:       "segment",
		ShortUsage: "pedmap segment [-dir DIR] [-out DIR] [-remove-structures]",
		ShortHelp:  "run the segmentation pipeline over a layer directory",
		FlagSet:    fs,
		Exec: a.run(func(ctx context.Context, _ []string) error {
			if *dir == "" {
				*dir = a.cfg.Paths.DataDir
			}
			if *out == "" {
				*out = a.cfg.Paths.OutputDir
			}
			if *dir == "" {
				return errors.New("-dir is required")
			}
			opts := segmentation.Options{
				RemoveStructures: *removeStructures || a.cfg.Segmentation.RemoveStructures,
			}

			seg := segmentation.New(segmentation.ParamsFrom(a.cfg.Segmentation), a.log)
			res, err := seg.SegmentDir(ctx, *dir, *out, opts)
			if err != nil {
				return err
			}
			return printJSON(res)
		}),
	}
}
