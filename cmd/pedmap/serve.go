package main

import (
	"context"
	"flag"
	"os"

	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/ironsheep/pedmap-tools/internal/server"
)

func (a *app) serveCommand() *ffcli.Command {
	return &ffcli.Command{
		Name:       "serve",
		ShortUsage: "pedmap serve",
		ShortHelp:  "run the MCP tool server over stdin/stdout",
		FlagSet:    flag.NewFlagSet("pedmap serve", flag.ExitOnError),
		Exec: a.run(func(ctx context.Context, _ []string) error {
			server.Version = Version
			a.log.Debug("server", "starting", map[string]interface{}{
				"version": Version, "build_time": BuildTime, "commit": GitCommit,
			})
			return server.New(a.cfg, a.log).Run(ctx, os.Stdin, os.Stdout)
		}),
	}
}
