package geom3d

import (
	"errors"
	"testing"
)

func tetrahedron() *Mesh {
	a := NewPoint(0, 0, 0)
	b := NewPoint(1, 0, 0)
	c := NewPoint(0, 1, 0)
	d := NewPoint(0, 0, 1)

	m := NewMesh()
	m.AddTriangle(NewTriangle(a, b, c))
	m.AddTriangle(NewTriangle(a, b, d))
	m.AddTriangle(NewTriangle(a, c, d))
	m.AddTriangle(NewTriangle(b, c, d))
	return m
}

func TestMeshDimensions(t *testing.T) {
	if got := NewMesh().Dimensions(); got != D3 {
		t.Errorf("Dimensions() = %v, want %v", got, D3)
	}
}

func TestMeshVertexDedup(t *testing.T) {
	m := NewMesh()
	a := NewPoint(0, 0, 0)
	b := NewPoint(1, 0, 0)
	// Two faces share the edge a-b: six corners, four unique points.
	m.AddTriangle(NewTriangle(a, b, NewPoint(0, 1, 0)))
	m.AddTriangle(NewTriangle(a, b, NewPoint(0, -1, 0)))

	if got := m.PointCount(); got != 4 {
		t.Errorf("PointCount() = %d, want 4", got)
	}
	if got := m.FaceCount(); got != 2 {
		t.Errorf("FaceCount() = %d, want 2", got)
	}
}

func TestMeshAddTriangleIndices(t *testing.T) {
	m := NewMesh()
	a := NewPoint(0, 0, 0)
	b := NewPoint(1, 0, 0)
	first := m.AddTriangle(NewTriangle(a, b, NewPoint(0, 1, 0)))
	second := m.AddTriangle(NewTriangle(a, b, NewPoint(0, -1, 0)))

	if first != [3]int{0, 1, 2} {
		t.Errorf("first face indices = %v, want [0 1 2]", first)
	}
	// Shared corners resolve to the pooled indices.
	if second[0] != 0 || second[1] != 1 || second[2] != 3 {
		t.Errorf("second face indices = %v, want [0 1 3]", second)
	}
}

func TestMeshEdges(t *testing.T) {
	m := tetrahedron()
	edges := m.Edges()
	// A tetrahedron has 6 undirected edges; each is reported once even
	// though every edge is shared by two faces.
	if len(edges) != 6 {
		t.Errorf("Edges() returned %d segments, want 6", len(edges))
	}
}

func TestMeshFace(t *testing.T) {
	m := tetrahedron()
	f := m.Face(0)
	if err := f.Validate(); err != nil {
		t.Errorf("Face(0).Validate(): %v", err)
	}
	if got := f.Dimensions(); got != D2 {
		t.Errorf("Face(0).Dimensions() = %v, want %v", got, D2)
	}
}

func TestMeshValidate(t *testing.T) {
	t.Run("tetrahedron passes", func(t *testing.T) {
		if err := tetrahedron().Validate(); err != nil {
			t.Errorf("Validate(): %v", err)
		}
	})

	t.Run("too few faces", func(t *testing.T) {
		m := NewMesh()
		m.AddTriangle(NewTriangle(NewPoint(0, 0, 0), NewPoint(1, 0, 0), NewPoint(0, 1, 0)))
		err := m.Validate()
		if !errors.Is(err, ErrInsufficientData) {
			t.Errorf("Validate() = %v, want ErrInsufficientData", err)
		}
	})

	t.Run("degenerate face", func(t *testing.T) {
		m := tetrahedron()
		m.AddTriangle(NewTriangle(NewPoint(5, 5, 5), NewPoint(5, 5, 5), NewPoint(5, 5, 5)))
		err := m.Validate()
		if !errors.Is(err, ErrDegenerateShape) {
			t.Errorf("Validate() = %v, want ErrDegenerateShape", err)
		}
	})
}
