package geom3d

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Triangle is a planar shape with three vertices. The zero value is legal:
// a triangle with no geometric data still classifies as 2D, it just fails
// Validate.
type Triangle struct {
	A Point
	B Point
	C Point
}

func NewTriangle(a, b, c Point) Triangle {
	return Triangle{A: a, B: b, C: c}
}

func (t Triangle) Dimensions() Type {
	return D2
}

// cross returns the unnormalized cross product of the two edge vectors
// leaving A. Its length is twice the triangle's area.
func (t Triangle) cross() mgl64.Vec3 {
	u := t.B.Vec().Sub(t.A.Vec())
	v := t.C.Vec().Sub(t.B.Vec())
	return u.Cross(v)
}

// Normal returns the unit normal of the triangle's plane. Degenerate
// triangles fall back to the +Z axis.
func (t Triangle) Normal() mgl64.Vec3 {
	n := t.cross()
	if n.Len() < degenerateEpsilon {
		return mgl64.Vec3{0, 0, 1}
	}
	return n.Normalize()
}

func (t Triangle) Area() float64 {
	return t.cross().Len() / 2
}

func (t Triangle) Centroid() Point {
	return NewPoint(
		(t.A.X+t.B.X+t.C.X)/3,
		(t.A.Y+t.B.Y+t.C.Y)/3,
		(t.A.Z+t.B.Z+t.C.Z)/3,
	)
}

func (t Triangle) Edges() []Segment {
	return []Segment{
		NewSegment(t.A, t.B),
		NewSegment(t.B, t.C),
		NewSegment(t.C, t.A),
	}
}

func (t Triangle) Validate() error {
	if t.Area() < degenerateEpsilon {
		return fmt.Errorf("triangle vertices are collinear or coincident: %w", ErrDegenerateShape)
	}
	return nil
}
