package geom3d

import "github.com/go-gl/mathgl/mgl64"

// Point is a location in three-dimensional space. It is a plain value with
// no behavior of its own and no dimensionality of its own.
type Point struct {
	X float64
	Y float64
	Z float64
}

func NewPoint(x, y, z float64) Point {
	return Point{
		X: x,
		Y: y,
		Z: z,
	}
}

// Vec returns the point as an mgl64 vector for derived computations.
func (p Point) Vec() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}
