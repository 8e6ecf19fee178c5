package main

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/topomesh/internal/config"
	"github.com/Faultbox/topomesh/internal/logger"
	"github.com/Faultbox/topomesh/pkg/heightgrid"
	"github.com/Faultbox/topomesh/pkg/mesh"
)

var (
	errUsage          = errors.New("usage")
	errNotWatertight  = errors.New("mesh is not watertight")
	errUnknownCommand = errors.New("unknown command")
)

func run(w io.Writer, cfg *config.Config, command string, args []string) error {
	switch command {
	case "info":
		return cmdInfo(w, args)
	case "build":
		return cmdBuild(w, cfg, args)
	case "check":
		return cmdCheck(w, cfg, args)
	case "stack":
		return cmdStack(w, cfg, args)
	case "help", "-h", "--help":
		printUsage(w)
		return nil
	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, command)
	}
}

func cmdInfo(w io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: topomesh info <grid>", errUsage)
	}

	g, err := heightgrid.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Grid:   %s\n", args[0])
	fmt.Fprintf(w, "Size:   %d x %d\n", g.Rows(), g.Cols())
	fmt.Fprintf(w, "Valid:  %d of %d cells\n", g.ValidCount(), g.Len())
	if lo, hi, ok := g.Range(); ok {
		fmt.Fprintf(w, "Range:  %g .. %g\n", lo, hi)
	}
	return nil
}

func cmdBuild(w io.Writer, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: topomesh build <grid> [base]", errUsage)
	}

	m, err := buildFromFiles(cfg, args)
	if err != nil {
		return err
	}

	b := m.Bounds()
	logger.Info("mesh built",
		zap.String("grid", args[0]),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", len(m.Triangles)),
	)
	fmt.Fprintln(w, m)
	fmt.Fprintf(w, "Bounds: (%g, %g, %g) .. (%g, %g, %g)\n",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)

	if !cfg.Check.Enabled {
		return nil
	}
	rep := mesh.Check(m)
	fmt.Fprintf(w, "Watertight: %t (volume %g)\n", rep.Watertight(), rep.Volume)
	return verdict(cfg, rep)
}

func cmdCheck(w io.Writer, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: topomesh check <grid> [base]", errUsage)
	}

	m, err := buildFromFiles(cfg, args)
	if err != nil {
		return err
	}

	rep := mesh.Check(m)
	out := struct {
		mesh.Report `yaml:",inline"`
		Closed      bool `yaml:"closed"`
		Watertight  bool `yaml:"watertight"`
	}{rep, rep.Closed(), rep.Watertight()}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return verdict(cfg, rep)
}

func cmdStack(w io.Writer, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: topomesh stack <terrain> <layer>...", errUsage)
	}

	terrain, err := heightgrid.Load(args[0])
	if err != nil {
		return err
	}
	layers := make([]*heightgrid.Grid, 0, len(args)-1)
	for _, path := range args[1:] {
		g, err := heightgrid.Load(path)
		if err != nil {
			return err
		}
		layers = append(layers, g)
	}

	opts, err := meshOptions(cfg, terrain, "")
	if err != nil {
		return err
	}
	meshes, err := mesh.Stack(terrain, layers, opts)
	if err != nil {
		return err
	}
	logger.Info("layers stacked", zap.Int("layers", len(layers)))

	for i, m := range meshes {
		fmt.Fprintf(w, "%-24s %s\n", args[i], m)
	}
	return nil
}

// buildFromFiles loads the elevation grid and optional base grid named in
// args and meshes them with cfg's settings.
func buildFromFiles(cfg *config.Config, args []string) (*mesh.Mesh, error) {
	elev, err := heightgrid.Load(args[0])
	if err != nil {
		return nil, err
	}
	logger.Debug("grid loaded",
		zap.String("path", args[0]),
		zap.Int("rows", elev.Rows()),
		zap.Int("cols", elev.Cols()),
		zap.Int("valid", elev.ValidCount()),
	)
	var basePath string
	if len(args) > 1 {
		basePath = args[1]
	}

	opts, err := meshOptions(cfg, elev, basePath)
	if err != nil {
		return nil, err
	}
	return mesh.Build(elev, opts)
}

func meshOptions(cfg *config.Config, elev *heightgrid.Grid, basePath string) (mesh.Options, error) {
	opts := mesh.Options{
		Scale:   cfg.Mesh.Scale,
		Workers: cfg.Mesh.Workers,
		Logger:  logger.Named("mesh"),
	}

	switch {
	case basePath != "":
		base, err := heightgrid.Load(basePath)
		if err != nil {
			return opts, err
		}
		opts.Base = base
	case cfg.Mesh.BaseHeight != 0:
		base, err := heightgrid.Filled(elev.Rows(), elev.Cols(), cfg.Mesh.BaseHeight)
		if err != nil {
			return opts, err
		}
		opts.Base = base
	}
	return opts, nil
}

// verdict logs conformance problems and fails in strict mode.
func verdict(cfg *config.Config, rep mesh.Report) error {
	if rep.Watertight() {
		return nil
	}
	logger.Warn("mesh not watertight",
		zap.Int("boundary_edges", rep.BoundaryEdges),
		zap.Int("non_manifold_edges", rep.NonManifoldEdges),
		zap.Int("inconsistent_edges", rep.InconsistentEdges),
		zap.Float64("volume", rep.Volume),
	)
	if cfg.Check.RequireWatertight {
		return errNotWatertight
	}
	return nil
}
