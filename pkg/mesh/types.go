// Package mesh turns a masked elevation grid into a closed triangulated solid:
// a top surface following the elevations, a base, and vertical walls along
// the boundary of the valid region.
package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vertex is a mesh vertex in model units.
type Vertex struct {
	X, Y, Z float64
}

// Vec returns the vertex as an r3 vector.
func (v Vertex) Vec() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// Triangle holds three vertex indices wound so the right-hand normal faces
// out of the solid.
type Triangle [3]int

// Part identifies which stage emitted a triangle.
type Part uint8

// Mesh parts, in emission order.
const (
	PartSurface Part = iota
	PartBase
	PartWall
)

// String returns the part name.
func (p Part) String() string {
	switch p {
	case PartSurface:
		return "surface"
	case PartBase:
		return "base"
	case PartWall:
		return "wall"
	default:
		return fmt.Sprintf("Part(%d)", p)
	}
}

// Group is a contiguous run of triangles emitted by one part.
type Group struct {
	Part  Part
	Start int
	Count int
}

// Mesh is the assembled solid. Vertex order defines index identity.
type Mesh struct {
	Vertices  []Vertex
	Triangles []Triangle
	Groups    []Group
}

// Empty reports whether the mesh has no vertices.
func (m *Mesh) Empty() bool {
	return len(m.Vertices) == 0
}

// Part returns the triangles emitted by p.
func (m *Mesh) Part(p Part) []Triangle {
	for _, g := range m.Groups {
		if g.Part == p {
			return m.Triangles[g.Start : g.Start+g.Count]
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of all vertices.
// An empty mesh returns the zero box.
func (m *Mesh) Bounds() r3.Box {
	if len(m.Vertices) == 0 {
		return r3.Box{}
	}
	b := r3.Box{Min: m.Vertices[0].Vec(), Max: m.Vertices[0].Vec()}
	for _, v := range m.Vertices[1:] {
		b.Min.X = min(b.Min.X, v.X)
		b.Min.Y = min(b.Min.Y, v.Y)
		b.Min.Z = min(b.Min.Z, v.Z)
		b.Max.X = max(b.Max.X, v.X)
		b.Max.Y = max(b.Max.Y, v.Y)
		b.Max.Z = max(b.Max.Z, v.Z)
	}
	return b
}

// String returns a short summary of the mesh.
func (m *Mesh) String() string {
	return fmt.Sprintf("Mesh(vertices: %d, surface: %d, base: %d, wall: %d)",
		len(m.Vertices), len(m.Part(PartSurface)), len(m.Part(PartBase)), len(m.Part(PartWall)))
}
