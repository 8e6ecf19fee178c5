package mesh

// Facing is the set of sides a wall site faces, relative to the axis
// perpendicular to its edge.
type Facing uint8

// Wall sides. A site open on both sides (a one-cell-wide strip) gets two
// mirrored walls.
const (
	FaceBefore Facing = 1 << iota // toward the decreasing perpendicular index
	FaceAfter                     // toward the increasing perpendicular index
)

// wallFacing returns the sides on which a wall is needed. An edge is open on
// a side when either endpoint's neighbour on that side is missing.
func wallFacing(openBefore, openAfter bool) Facing {
	var f Facing
	if openBefore {
		f |= FaceBefore
	}
	if openAfter {
		f |= FaceAfter
	}
	return f
}

// edgeAxis describes the direction of an edge between two adjacent cells.
// The perpendicular direction is (dc, dr).
type edgeAxis struct {
	dr, dc int
	// mirrored is set when (edge, perpendicular) form a left-handed pair in
	// model space, which flips the triangle order for the same facing.
	mirrored bool
}

var (
	// (i,j)-(i+1,j): runs along x, neighbours checked along y.
	alongRows = edgeAxis{dr: 1, dc: 0}
	// (i,j)-(i,j+1): runs along y, neighbours checked along x.
	alongCols = edgeAxis{dr: 0, dc: 1, mirrored: true}
)

// stitchRows emits the walls for every valid cell in rows [r0, r1).
// For each cell the edge toward the next row is handled before the edge
// toward the next column.
func stitchRows(t *IndexTable, r0, r1 int, walls []Triangle) []Triangle {
	for i := r0; i < r1; i++ {
		for j := range t.cols {
			if !t.Has(i, j) {
				continue
			}
			walls = stitchEdge(t, alongRows, i, j, walls)
			walls = stitchEdge(t, alongCols, i, j, walls)
		}
	}
	return walls
}

// stitchEdge emits the walls on the edge from (i, j) along ax, if the edge
// joins two valid cells and lies on the silhouette of the valid region.
func stitchEdge(t *IndexTable, ax edgeAxis, i, j int, walls []Triangle) []Triangle {
	qi, qj := i+ax.dr, j+ax.dc
	if !t.Has(qi, qj) {
		return walls
	}

	pr, pc := ax.dc, ax.dr
	facing := wallFacing(
		!t.Has(i-pr, j-pc) || !t.Has(qi-pr, qj-pc),
		!t.Has(i+pr, j+pc) || !t.Has(qi+pr, qj+pc),
	)
	if facing == 0 {
		return walls
	}

	pt, pb := t.Surface(i, j), t.Base(i, j)
	qt, qb := t.Surface(qi, qj), t.Base(qi, qj)

	for _, side := range [...]Facing{FaceBefore, FaceAfter} {
		if facing&side == 0 {
			continue
		}
		if (side == FaceAfter) != ax.mirrored {
			walls = append(walls,
				Triangle{pt, qt, pb},
				Triangle{qt, qb, pb},
			)
		} else {
			walls = append(walls,
				Triangle{pt, pb, qt},
				Triangle{qt, pb, qb},
			)
		}
	}
	return walls
}
