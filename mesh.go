package geom3d

import "fmt"

// Mesh is a solid built from triangular faces over a shared vertex pool.
// Vertices are deduplicated on insert so faces that share an edge share
// the pooled points.
type Mesh struct {
	points []Point
	index  map[Point]int
	faces  [][3]int
}

func NewMesh() *Mesh {
	return &Mesh{
		index: make(map[Point]int),
	}
}

func (m *Mesh) Dimensions() Type {
	return D3
}

// addPoint returns the pool index for p, inserting it on first sight.
// Average O(1) via the map.
func (m *Mesh) addPoint(p Point) int {
	if i, found := m.index[p]; found {
		return i
	}
	m.points = append(m.points, p)
	i := len(m.points) - 1
	m.index[p] = i
	return i
}

// AddTriangle appends a face, reusing pooled vertices, and returns the
// pool indices of its three corners.
func (m *Mesh) AddTriangle(t Triangle) [3]int {
	face := [3]int{
		m.addPoint(t.A),
		m.addPoint(t.B),
		m.addPoint(t.C),
	}
	m.faces = append(m.faces, face)
	return face
}

func (m *Mesh) PointCount() int {
	return len(m.points)
}

func (m *Mesh) FaceCount() int {
	return len(m.faces)
}

// Face returns face i as a triangle value.
func (m *Mesh) Face(i int) Triangle {
	f := m.faces[i]
	return NewTriangle(m.points[f[0]], m.points[f[1]], m.points[f[2]])
}

// Edges returns each undirected edge of the mesh exactly once, in first-
// seen order.
func (m *Mesh) Edges() []Segment {
	seen := make(map[[2]int]bool)
	var edges []Segment
	for _, f := range m.faces {
		pairs := [3][2]int{{f[0], f[1]}, {f[1], f[2]}, {f[2], f[0]}}
		for _, pair := range pairs {
			if pair[0] > pair[1] {
				pair[0], pair[1] = pair[1], pair[0]
			}
			if seen[pair] {
				continue
			}
			seen[pair] = true
			edges = append(edges, NewSegment(m.points[pair[0]], m.points[pair[1]]))
		}
	}
	return edges
}

// Validate checks that the mesh can bound a solid at all: at least four
// non-degenerate faces (a tetrahedron is the smallest closed surface).
// It does not prove the surface watertight.
func (m *Mesh) Validate() error {
	if len(m.faces) < 4 {
		return fmt.Errorf("mesh has %d faces, a bounded solid needs at least 4: %w", len(m.faces), ErrInsufficientData)
	}
	for i := range m.faces {
		if err := m.Face(i).Validate(); err != nil {
			return fmt.Errorf("mesh face %d: %w", i, err)
		}
	}
	return nil
}
