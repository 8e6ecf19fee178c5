package heightgrid

import (
	"fmt"
	"math"
)

// Without returns a copy of g where every cell valid in claimed is invalid.
// Feature layers use it so a cell belongs to at most one layer.
func (g *Grid) Without(claimed *Grid) (*Grid, error) {
	return g.masked(claimed, func(ok bool) bool { return ok }, "without")
}

// Within returns a copy of g where every cell invalid in region is invalid.
func (g *Grid) Within(region *Grid) (*Grid, error) {
	return g.masked(region, func(ok bool) bool { return !ok }, "within")
}

// masked drops the cells of g for which drop(other.valid) is true.
func (g *Grid) masked(other *Grid, drop func(bool) bool, op string) (*Grid, error) {
	if !g.SameShape(other) {
		return nil, fmt.Errorf("%s: %w", op, ErrShapeMismatch)
	}
	values := make([]float64, len(g.values))
	for i, v := range g.values {
		if !g.valid[i] || drop(other.valid[i]) {
			values[i] = math.NaN()
			continue
		}
		values[i] = v
	}
	return New(g.rows, g.cols, values)
}
