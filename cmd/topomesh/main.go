// topomesh turns masked elevation grids into closed, printable solids and
// reports on their conformance.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/topomesh/internal/config"
	"github.com/Faultbox/topomesh/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		printUsage(os.Stderr)
		os.Exit(1)
	}
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(os.Stdout, cfg, args[0], args[1:]); err != nil {
		logger.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `topomesh - elevation grid to solid mesh

Usage:
  topomesh [flags] <command> [args]

Commands:
  info  <grid>                     Show grid dimensions and elevation range
  build <grid> [base]              Build the mesh and print a summary
  check <grid> [base]              Build the mesh and print a conformance report
  stack <terrain> <layer>...       Build terrain plus feature layers resting on it

Flags:
  -config <file>      Config file (default ./topomesh.yaml)
  -scale <n>          Model units between adjacent samples
  -workers <n>        Row bands built concurrently
  -base-height <n>    Flat base height when no base grid is given
  -strict             Fail unless the mesh is watertight
  -debug              Debug logging
  -log-file <file>    Also log to a rotated file

Grids are plain text: one row per line, "nan" or "-" marks cells outside
the region.

Examples:
  topomesh info valley.grid
  topomesh -scale 0.5 build valley.grid
  topomesh -strict check valley.grid
  topomesh stack terrain.grid buildings.grid trees.grid`)
}
