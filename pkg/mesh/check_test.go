package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// tetra returns a unit tetrahedron wound outward.
func tetra() *Mesh {
	return &Mesh{
		Vertices: []Vertex{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		Triangles: []Triangle{
			{0, 2, 1},
			{0, 1, 3},
			{0, 3, 2},
			{1, 2, 3},
		},
	}
}

func TestCheck_Tetrahedron(t *testing.T) {
	rep := Check(tetra())

	assert.Equal(t, 6, rep.Edges)
	assert.True(t, rep.Closed())
	assert.True(t, rep.Watertight())
	assert.InDelta(t, 1.0/6, rep.Volume, 1e-12)
}

func TestCheck_Defects(t *testing.T) {
	t.Run("open", func(t *testing.T) {
		m := tetra()
		m.Triangles = m.Triangles[:3]
		rep := Check(m)
		assert.Equal(t, 3, rep.BoundaryEdges)
		assert.False(t, rep.Closed())
	})

	t.Run("flipped face", func(t *testing.T) {
		m := tetra()
		m.Triangles[3] = Triangle{1, 3, 2}
		rep := Check(m)
		assert.True(t, rep.Closed())
		assert.Equal(t, 3, rep.InconsistentEdges)
		assert.False(t, rep.Watertight())
	})

	t.Run("inside out", func(t *testing.T) {
		m := tetra()
		for i, tri := range m.Triangles {
			m.Triangles[i] = Triangle{tri[0], tri[2], tri[1]}
		}
		rep := Check(m)
		assert.True(t, rep.Closed())
		assert.Less(t, rep.Volume, 0.0)
		assert.False(t, rep.Watertight())
	})

	t.Run("out of range", func(t *testing.T) {
		m := tetra()
		m.Triangles = append(m.Triangles, Triangle{0, 1, 9})
		rep := Check(m)
		assert.Equal(t, 1, rep.OutOfRange)
		assert.False(t, rep.Closed())
	})

	t.Run("non-manifold", func(t *testing.T) {
		m := tetra()
		m.Vertices = append(m.Vertices, Vertex{1, 1, 1})
		m.Triangles = append(m.Triangles, Triangle{1, 2, 4})
		rep := Check(m)
		assert.Equal(t, 1, rep.NonManifoldEdges)
		assert.False(t, rep.Closed())
	})

	t.Run("degenerate and unreferenced", func(t *testing.T) {
		m := tetra()
		m.Vertices = append(m.Vertices, Vertex{5, 5, 5})
		m.Triangles = append(m.Triangles, Triangle{0, 0, 1})
		rep := Check(m)
		assert.Equal(t, 1, rep.Degenerate)
		assert.Equal(t, 1, rep.Unreferenced)
	})
}
