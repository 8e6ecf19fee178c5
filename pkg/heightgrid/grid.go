// Package heightgrid provides the rectangular elevation grid consumed by the
// mesher, with an explicit validity mask beside the sample buffer.
package heightgrid

import (
	"errors"
	"fmt"
	"math"
)

// Grid errors.
var (
	ErrInvalidShape  = errors.New("invalid grid shape")
	ErrShapeMismatch = fmt.Errorf("%w: grids differ in shape", ErrInvalidShape)
)

// Grid is an immutable row-major grid of elevation samples.
// Cells outside the region of interest are invalid and carry no elevation.
type Grid struct {
	rows   int
	cols   int
	values []float64
	valid  []bool
	count  int
}

// New creates a grid from row-major values. NaN (or an infinity) marks a
// cell invalid. The values slice is copied.
func New(rows, cols int, values []float64) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidShape, rows, cols)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("%w: %dx%d grid needs %d values, got %d",
			ErrInvalidShape, rows, cols, rows*cols, len(values))
	}

	g := &Grid{
		rows:   rows,
		cols:   cols,
		values: make([]float64, len(values)),
		valid:  make([]bool, len(values)),
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			g.values[i] = math.NaN()
			continue
		}
		g.values[i] = v
		g.valid[i] = true
		g.count++
	}
	return g, nil
}

// FromRows creates a grid from a slice of equally sized rows.
func FromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidShape)
	}
	cols := len(rows[0])
	values := make([]float64, 0, len(rows)*cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrInvalidShape, r, len(row), cols)
		}
		values = append(values, row...)
	}
	return New(len(rows), cols, values)
}

// Filled creates a grid where every cell holds v.
func Filled(rows, cols int, v float64) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidShape, rows, cols)
	}
	values := make([]float64, rows*cols)
	for i := range values {
		values[i] = v
	}
	return New(rows, cols, values)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns rows*cols.
func (g *Grid) Len() int { return len(g.values) }

// InBounds reports whether (r, c) lies inside the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && c >= 0 && r < g.rows && c < g.cols
}

// Valid reports whether (r, c) is a valid cell.
// Coordinates outside the grid are never valid.
func (g *Grid) Valid(r, c int) bool {
	if !g.InBounds(r, c) {
		return false
	}
	return g.valid[r*g.cols+c]
}

// At returns the elevation at (r, c) and whether the cell is valid.
func (g *Grid) At(r, c int) (float64, bool) {
	if !g.Valid(r, c) {
		return 0, false
	}
	return g.values[r*g.cols+c], true
}

// ValidCount returns the number of valid cells.
func (g *Grid) ValidCount() int { return g.count }

// ValidPerRow returns the number of valid cells in each row.
func (g *Grid) ValidPerRow() []int {
	counts := make([]int, g.rows)
	for r := range g.rows {
		row := g.valid[r*g.cols : (r+1)*g.cols]
		for _, ok := range row {
			if ok {
				counts[r]++
			}
		}
	}
	return counts
}

// SameShape reports whether other has the same dimensions as g.
func (g *Grid) SameShape(other *Grid) bool {
	return other != nil && g.rows == other.rows && g.cols == other.cols
}

// Range returns the minimum and maximum elevation over valid cells.
// ok is false when the grid has no valid cells.
func (g *Grid) Range() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for i, v := range g.values {
		if !g.valid[i] {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}

// String returns a short description such as "4x5 (12 valid)".
func (g *Grid) String() string {
	return fmt.Sprintf("%dx%d (%d valid)", g.rows, g.cols, g.count)
}
