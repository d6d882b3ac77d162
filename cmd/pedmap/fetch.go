package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/ironsheep/pedmap-tools/internal/fetch"
	"github.com/ironsheep/pedmap-tools/internal/geo"
)

// Tile sources accepted by "fetch tiles".
const (
	sourceDataforsyningen = "dataforsyningen"
	sourceGoogle          = "google"
	sourceMapBox          = "mapbox"
)

func (a *app) fetchCommand() *ffcli.Command {
	return &ffcli.Command{
		Name:       "fetch",
		ShortUsage: "pedmap fetch <layers|tiles|static> [flags]",
		ShortHelp:  "download map layers, tiles or static imagery",
		Subcommands: []*ffcli.Command{
			a.fetchLayersCommand(),
			a.fetchTilesCommand(),
			a.fetchStaticCommand(),
		},
		Exec: func(context.Context, []string) error {
			return flag.ErrHelp
		},
	}
}

func (a *app) client() *fetch.Client {
	return fetch.New(a.cfg.Fetch, fetch.WithLogger(a.log))
}

func (a *app) fetchLayersCommand() *ffcli.Command {
	fs := flag.NewFlagSet("pedmap fetch layers", flag.ExitOnError)
	bbox := fs.String("bbox", "", "minLat,minLon,maxLat,maxLon")
	width := fs.Int("width", 1000, "layer width in pixels")
	height := fs.Int("height", 1000, "layer height in pixels")
	dir := fs.String("dir", "", "output directory (defaults to paths.data_dir)")

	return &ffcli.Command{
		Name:       "layers",
		ShortUsage: "pedmap fetch layers -bbox BBOX [-width N] [-height N] [-dir DIR]",
		ShortHelp:  "download the five WMS layers the segmentation pipeline reads",
		FlagSet:    fs,
		Exec: a.run(func(ctx context.Context, _ []string) error {
			b, err := geo.ParseBBox(*bbox)
			if err != nil {
				return err
			}
			if *dir == "" {
				*dir = a.cfg.Paths.DataDir
			}
			report, err := a.client().FetchLayers(ctx, b, *width, *height, *dir)
			if err != nil {
				return err
			}
			return printJSON(report)
		}),
	}
}

// tileDir resolves where tiles go: an explicit dir wins, otherwise the
// project layout below paths.tiles_root.
func (a *app) tileDir(dir, project string, resolution, zoom int) (string, error) {
	if dir != "" {
		return dir, nil
	}
	if project == "" {
		return "", errors.New("either -dir or -project is required")
	}
	return fetch.TileDirectory(a.cfg.Paths.TilesRoot, project, resolution, zoom)
}

func (a *app) fetchTilesCommand() *ffcli.Command {
	fs := flag.NewFlagSet("pedmap fetch tiles", flag.ExitOnError)
	source := fs.String("source", sourceMapBox, "dataforsyningen, google or mapbox")
	bbox := fs.String("bbox", "", "minLat,minLon,maxLat,maxLon")
	zoom := fs.Int("zoom", 19, "slippy map zoom level (google and mapbox)")
	dir := fs.String("dir", "", "output directory")
	project := fs.String("project", "", "project name for the tiles_root layout")
	resolution := fs.Int("resolution", 256, "tile resolution used in the tiles_root layout")

	return &ffcli.Command{
		Name:       "tiles",
		ShortUsage: "pedmap fetch tiles -bbox BBOX [-source S] [-zoom Z] (-dir DIR | -project P)",
		ShortHelp:  "download the raster tiles covering a bounding box",
		FlagSet:    fs,
		Exec: a.run(func(ctx context.Context, _ []string) error {
			b, err := geo.ParseBBox(*bbox)
			if err != nil {
				return err
			}
			z := *zoom
			if *source == sourceDataforsyningen {
				z = geo.DataforsyningenMatrix
			}
			out, err := a.tileDir(*dir, *project, *resolution, z)
			if err != nil {
				return err
			}

			c := a.client()
			var report *fetch.TileReport
			switch *source {
			case sourceDataforsyningen:
				report, err = c.FetchOrthoTiles(ctx, b, out)
			case sourceGoogle:
				report, err = c.FetchGoogleTiles(ctx, b, z, out)
			case sourceMapBox:
				report, err = c.FetchMapBoxTiles(ctx, b, z, out)
			default:
				return fmt.Errorf("unknown tile source %q", *source)
			}
			if err != nil {
				return err
			}
			return printJSON(report)
		}),
	}
}

func (a *app) fetchStaticCommand() *ffcli.Command {
	fs := flag.NewFlagSet("pedmap fetch static", flag.ExitOnError)
	bbox := fs.String("bbox", "", "minLat,minLon,maxLat,maxLon")
	width := fs.Int("width", 1000, "image width in pixels")
	height := fs.Int("height", 1000, "image height in pixels")
	dir := fs.String("dir", "", "output directory (defaults to paths.data_dir)")

	return &ffcli.Command{
		Name:       "static",
		ShortUsage: "pedmap fetch static -bbox BBOX [-width N] [-height N] [-dir DIR]",
		ShortHelp:  "download one MapBox satellite image covering a bounding box",
		FlagSet:    fs,
		Exec: a.run(func(ctx context.Context, _ []string) error {
			b, err := geo.ParseBBox(*bbox)
			if err != nil {
				return err
			}
			if *dir == "" {
				*dir = a.cfg.Paths.DataDir
			}
			path, err := a.client().FetchMapBoxStatic(ctx, b, *width, *height, *dir)
			if err != nil {
				return err
			}
			return printJSON(map[string]string{"path": path})
		}),
	}
}
