package mesh

// triangulateRows emits the surface and base triangles of every fully valid
// 2x2 block whose top-left cell lies in rows [r0, r1).
//
// With a=(i,j) b=(i+1,j) c=(i,j+1) d=(i+1,j+1) the surface is split along the
// b-c diagonal as (a,b,c) (b,d,c); the base reverses the winding.
func triangulateRows(t *IndexTable, r0, r1 int, surface, base []Triangle) ([]Triangle, []Triangle) {
	n := t.offset
	r1 = min(r1, t.rows-1)
	for i := r0; i < r1; i++ {
		for j := 0; j < t.cols-1; j++ {
			a := t.Surface(i, j)
			b := t.Surface(i+1, j)
			c := t.Surface(i, j+1)
			d := t.Surface(i+1, j+1)
			if a == NoVertex || b == NoVertex || c == NoVertex || d == NoVertex {
				continue
			}

			surface = append(surface,
				Triangle{a, b, c},
				Triangle{b, d, c},
			)
			base = append(base,
				Triangle{a + n, c + n, b + n},
				Triangle{b + n, c + n, d + n},
			)
		}
	}
	return surface, base
}
