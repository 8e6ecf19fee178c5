package mesh

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Report summarises the conformance of a mesh. It is a diagnostic: Build
// never rejects a mesh on these grounds.
type Report struct {
	Vertices  int `yaml:"vertices"`
	Triangles int `yaml:"triangles"`
	Edges     int `yaml:"edges"`

	// BoundaryEdges border exactly one triangle.
	BoundaryEdges int `yaml:"boundary_edges"`
	// NonManifoldEdges border more than two triangles.
	NonManifoldEdges int `yaml:"non_manifold_edges"`
	// InconsistentEdges border two triangles that traverse them in the same
	// direction.
	InconsistentEdges int `yaml:"inconsistent_edges"`

	OutOfRange   int `yaml:"out_of_range"`
	Degenerate   int `yaml:"degenerate"`
	Unreferenced int `yaml:"unreferenced_vertices"`

	// Volume is the signed volume enclosed by the triangles.
	Volume float64 `yaml:"volume"`
}

// Closed reports whether every edge borders exactly two triangles.
func (r Report) Closed() bool {
	return r.Triangles > 0 && r.OutOfRange == 0 && r.BoundaryEdges == 0 && r.NonManifoldEdges == 0
}

// Watertight reports whether the mesh is a consistently wound closed
// manifold enclosing positive volume.
func (r Report) Watertight() bool {
	return r.Closed() && r.InconsistentEdges == 0 && r.Volume > 0
}

type edgeKey struct{ a, b int }

type edgeUse struct {
	forward, backward int
}

// Check inspects m for manifoldness, winding consistency and enclosed volume.
func Check(m *Mesh) Report {
	rep := Report{
		Vertices:  len(m.Vertices),
		Triangles: len(m.Triangles),
	}

	edges := make(map[edgeKey]*edgeUse, 3*len(m.Triangles)/2)
	used := make([]bool, len(m.Vertices))

	for _, tri := range m.Triangles {
		if !inRange(tri, len(m.Vertices)) {
			rep.OutOfRange++
			continue
		}
		for _, v := range tri {
			used[v] = true
		}

		p0, p1, p2 := m.Vertices[tri[0]].Vec(), m.Vertices[tri[1]].Vec(), m.Vertices[tri[2]].Vec()
		if r3.Norm(r3.Cross(r3.Sub(p1, p0), r3.Sub(p2, p0))) == 0 {
			rep.Degenerate++
		}
		rep.Volume += r3.Dot(p0, r3.Cross(p1, p2)) / 6

		for k := range 3 {
			a, b := tri[k], tri[(k+1)%3]
			key, fwd := edgeKey{a, b}, true
			if b < a {
				key, fwd = edgeKey{b, a}, false
			}
			u := edges[key]
			if u == nil {
				u = &edgeUse{}
				edges[key] = u
			}
			if fwd {
				u.forward++
			} else {
				u.backward++
			}
		}
	}

	rep.Edges = len(edges)
	for _, u := range edges {
		switch n := u.forward + u.backward; {
		case n == 1:
			rep.BoundaryEdges++
		case n > 2:
			rep.NonManifoldEdges++
		case u.forward != 1:
			rep.InconsistentEdges++
		}
	}
	for _, ok := range used {
		if !ok {
			rep.Unreferenced++
		}
	}
	return rep
}

func inRange(tri Triangle, n int) bool {
	for _, v := range tri {
		if v < 0 || v >= n {
			return false
		}
	}
	return true
}
