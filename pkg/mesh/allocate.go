package mesh

import (
	"github.com/Faultbox/topomesh/pkg/heightgrid"
)

// NoVertex marks a cell that owns no vertex.
const NoVertex = -1

// IndexTable maps grid cells to their surface vertex index. The base vertex
// of a cell sits at a fixed offset after all surface vertices.
type IndexTable struct {
	rows   int
	cols   int
	index  []int
	offset int
}

func newIndexTable(rows, cols, valid int) *IndexTable {
	return &IndexTable{
		rows:   rows,
		cols:   cols,
		index:  make([]int, rows*cols),
		offset: valid,
	}
}

// Rows returns the number of grid rows.
func (t *IndexTable) Rows() int { return t.rows }

// Cols returns the number of grid columns.
func (t *IndexTable) Cols() int { return t.cols }

// BaseOffset returns the distance between a surface index and the matching
// base index, which equals the number of valid cells.
func (t *IndexTable) BaseOffset() int { return t.offset }

// Surface returns the surface vertex index of (r, c), or NoVertex.
func (t *IndexTable) Surface(r, c int) int {
	if r < 0 || c < 0 || r >= t.rows || c >= t.cols {
		return NoVertex
	}
	return t.index[r*t.cols+c]
}

// Base returns the base vertex index of (r, c), or NoVertex.
func (t *IndexTable) Base(r, c int) int {
	i := t.Surface(r, c)
	if i == NoVertex {
		return NoVertex
	}
	return i + t.offset
}

// Has reports whether (r, c) owns a vertex.
func (t *IndexTable) Has(r, c int) bool {
	return t.Surface(r, c) != NoVertex
}

// Allocate assigns vertices to every valid cell of elev in row-major order.
// Surface vertices come first, followed by base vertices in the same order.
// base may be nil for a flat base at z = 0; it must be valid wherever elev
// is (Build checks this).
func Allocate(elev, base *heightgrid.Grid, scale float64) (*IndexTable, []Vertex) {
	t := newIndexTable(elev.Rows(), elev.Cols(), elev.ValidCount())
	verts := make([]Vertex, 2*t.offset)
	allocateRows(elev, base, scale, t, verts, 0, elev.Rows(), 0)
	return t, verts
}

// allocateRows fills rows [r0, r1) of the table. next is the surface index of
// the first valid cell in row r0.
func allocateRows(elev, base *heightgrid.Grid, scale float64, t *IndexTable, verts []Vertex, r0, r1, next int) {
	for r := r0; r < r1; r++ {
		for c := range t.cols {
			z, ok := elev.At(r, c)
			if !ok {
				t.index[r*t.cols+c] = NoVertex
				continue
			}
			var bz float64
			if base != nil {
				bz, _ = base.At(r, c)
			}

			x, y := float64(r)*scale, float64(c)*scale
			t.index[r*t.cols+c] = next
			verts[next] = Vertex{X: x, Y: y, Z: z}
			verts[next+t.offset] = Vertex{X: x, Y: y, Z: bz}
			next++
		}
	}
}
