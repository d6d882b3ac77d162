package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/ironsheep/pedmap-tools/internal/config"
	"github.com/ironsheep/pedmap-tools/internal/logger"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// app holds the root flags and what is built from them before a
// subcommand runs.
type app struct {
	configFile string
	envFile    string
	logLevel   string
	logFormat  string

	cfg *config.Config
	log logger.Logger
}

func (a *app) setup() error {
	if err := config.LoadDotEnv(a.envFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	// stdout carries results and the MCP protocol
	switch cfg.Log.Format {
	case "json":
		a.log = logger.NewZerolog(os.Stderr, level)
	case "console", "":
		a.log = logger.NewConsoleLogger(os.Stderr, level)
	default:
		return fmt.Errorf("unknown log format %q", cfg.Log.Format)
	}
	a.cfg = cfg
	return nil
}

// run wraps a subcommand so it sees a loaded config and logger.
func (a *app) run(inner func(context.Context, []string) error) func(context.Context, []string) error {
	return func(ctx context.Context, args []string) error {
		if err := a.setup(); err != nil {
			return err
		}
		return inner(ctx, args)
	}
}

func main() {
	a := &app{}
	rootFlagSet := flag.NewFlagSet("pedmap", flag.ExitOnError)
	rootFlagSet.StringVar(&a.configFile, "config", "", "YAML config file")
	rootFlagSet.StringVar(&a.envFile, "env-file", ".env", "dotenv file with API credentials")
	rootFlagSet.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	rootFlagSet.StringVar(&a.logFormat, "log-format", "", "console or json")

	root := &ffcli.Command{
		Name:       "pedmap",
		ShortUsage: "pedmap [flags] <subcommand>",
		ShortHelp:  "segment map layers into pedestrian infrastructure and evaluate the result",
		FlagSet:    rootFlagSet,
		Options:    []ff.Option{ff.WithEnvVarPrefix(config.EnvPrefix)},
		Subcommands: []*ffcli.Command{
			a.segmentCommand(),
			a.fetchCommand(),
			a.maskCommand(),
			a.compareCommand(),
			a.overlayCommand(),
			a.serveCommand(),
			versionCommand(),
		},
		Exec: func(context.Context, []string) error {
			return flag.ErrHelp
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ParseAndRun(ctx, os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func versionCommand() *ffcli.Command {
	return &ffcli.Command{
		Name:      "version",
		ShortHelp: "print version information",
		Exec: func(context.Context, []string) error {
			fmt.Printf("pedmap %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return nil
		},
	}
}

// printJSON writes a command result to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// splitList parses a comma separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
