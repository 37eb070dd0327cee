package geom3d

import (
	"fmt"
	"math"
)

// Plane is an infinite plane in implicit form Ax + By + Cz + D = 0, with
// (A, B, C) the unit normal. Being a surface, it classifies as 2D even
// though it lives in three-dimensional space.
type Plane struct {
	A, B, C, D float64
}

const planeThickness = 1e-9

// PlaneThrough builds the plane containing the given triangle. The
// triangle must not be degenerate, otherwise no single plane is
// determined.
func PlaneThrough(t Triangle) (Plane, error) {
	if err := t.Validate(); err != nil {
		return Plane{}, fmt.Errorf("plane through triangle: %w", err)
	}
	n := t.Normal()
	p := Plane{
		A: n.X(),
		B: n.Y(),
		C: n.Z(),
	}
	p.D = -(p.A*t.A.X + p.B*t.A.Y + p.C*t.A.Z)
	return p, nil
}

func (p Plane) Dimensions() Type {
	return D2
}

// Eval returns the signed offset of pt from the plane. Offsets within the
// plane's thickness collapse to exactly zero so callers can test
// containment with ==.
func (p Plane) Eval(pt Point) float64 {
	num := p.A*pt.X + p.B*pt.Y + p.C*pt.Z + p.D
	if math.Abs(num) < planeThickness {
		return 0.0
	}
	return num
}

func (p Plane) Contains(pt Point) bool {
	return p.Eval(pt) == 0
}
