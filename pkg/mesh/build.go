package mesh

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/topomesh/pkg/heightgrid"
)

// Build errors.
var (
	ErrInvalidScale = errors.New("scale must be a positive finite number")
	ErrMissingBase  = errors.New("base grid has no height at a valid cell")
)

// Options controls Build.
type Options struct {
	// Scale is the distance between adjacent grid samples in model units.
	// Zero means 1.
	Scale float64

	// Base gives the base height per cell. Nil means a flat base at z = 0.
	Base *heightgrid.Grid

	// Workers splits the grid into row bands built concurrently.
	// Values below 2 build on the calling goroutine. Output does not
	// depend on the worker count.
	Workers int

	// Logger receives a debug summary per build. Nil discards.
	Logger *zap.Logger
}

func (o Options) scale() float64 {
	if o.Scale == 0 {
		return 1
	}
	return o.Scale
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Build meshes the valid region of elev into a closed solid.
//
// Shape and scale problems are reported before any work is done. A grid with
// no valid cells yields an empty mesh, not an error. Masks whose silhouette
// is not a simple closed curve still produce a mesh; use Check to inspect it.
func Build(elev *heightgrid.Grid, opts Options) (*Mesh, error) {
	if err := validate(elev, opts); err != nil {
		return nil, err
	}

	bands := splitRows(elev.Rows(), opts.Workers)
	var (
		m   *Mesh
		err error
	)
	if len(bands) == 1 {
		m = buildSerial(elev, opts)
	} else {
		m, err = buildBanded(elev, opts, bands)
		if err != nil {
			return nil, err
		}
	}

	opts.logger().Debug("mesh built",
		zap.Stringer("grid", elev),
		zap.Int("workers", len(bands)),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("surface", len(m.Part(PartSurface))),
		zap.Int("base", len(m.Part(PartBase))),
		zap.Int("walls", len(m.Part(PartWall))),
	)
	return m, nil
}

func validate(elev *heightgrid.Grid, opts Options) error {
	if elev == nil {
		return fmt.Errorf("%w: nil elevation grid", heightgrid.ErrInvalidShape)
	}
	s := opts.Scale
	if s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidScale, s)
	}
	if opts.Base == nil {
		return nil
	}
	if !elev.SameShape(opts.Base) {
		return fmt.Errorf("base %dx%d, elevation %dx%d: %w",
			opts.Base.Rows(), opts.Base.Cols(), elev.Rows(), elev.Cols(), heightgrid.ErrShapeMismatch)
	}
	for r := range elev.Rows() {
		for c := range elev.Cols() {
			if elev.Valid(r, c) && !opts.Base.Valid(r, c) {
				return fmt.Errorf("%w: cell (%d, %d)", ErrMissingBase, r, c)
			}
		}
	}
	return nil
}

func buildSerial(elev *heightgrid.Grid, opts Options) *Mesh {
	t, verts := Allocate(elev, opts.Base, opts.scale())
	surface, base := triangulateRows(t, 0, t.rows, nil, nil)
	walls := stitchRows(t, 0, t.rows, nil)
	return assemble(verts, surface, base, walls)
}

// band is a half-open range of grid rows.
type band struct {
	r0, r1 int
}

// splitRows divides rows into at most workers contiguous bands.
func splitRows(rows, workers int) []band {
	n := max(1, min(workers, rows))
	bands := make([]band, 0, n)
	for k := range n {
		bands = append(bands, band{r0: k * rows / n, r1: (k + 1) * rows / n})
	}
	return bands
}

// buildBanded runs each stage concurrently over row bands. Vertex indices
// are fixed up front from a prefix sum of valid cells per row, and each
// band's triangles are concatenated in band order, so the result matches
// buildSerial exactly.
func buildBanded(elev *heightgrid.Grid, opts Options, bands []band) (*Mesh, error) {
	perRow := elev.ValidPerRow()
	first := make([]int, len(perRow)+1)
	for r, n := range perRow {
		first[r+1] = first[r] + n
	}

	t := newIndexTable(elev.Rows(), elev.Cols(), first[len(perRow)])
	verts := make([]Vertex, 2*t.offset)
	scale := opts.scale()

	var g errgroup.Group
	for _, b := range bands {
		g.Go(func() error {
			allocateRows(elev, opts.Base, scale, t, verts, b.r0, b.r1, first[b.r0])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	surfaces := make([][]Triangle, len(bands))
	bases := make([][]Triangle, len(bands))
	walls := make([][]Triangle, len(bands))
	for k, b := range bands {
		g.Go(func() error {
			surfaces[k], bases[k] = triangulateRows(t, b.r0, b.r1, nil, nil)
			walls[k] = stitchRows(t, b.r0, b.r1, nil)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return assemble(verts, concat(surfaces), concat(bases), concat(walls)), nil
}

func concat(parts [][]Triangle) []Triangle {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]Triangle, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// assemble joins the stage outputs into one mesh, recording a group per part.
func assemble(verts []Vertex, surface, base, walls []Triangle) *Mesh {
	m := &Mesh{
		Vertices:  verts,
		Triangles: make([]Triangle, 0, len(surface)+len(base)+len(walls)),
	}
	for _, p := range []struct {
		part Part
		tris []Triangle
	}{
		{PartSurface, surface},
		{PartBase, base},
		{PartWall, walls},
	} {
		m.Groups = append(m.Groups, Group{Part: p.part, Start: len(m.Triangles), Count: len(p.tris)})
		m.Triangles = append(m.Triangles, p.tris...)
	}
	return m
}
