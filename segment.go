package geom3d

import "fmt"

// Segment is a straight line between two points.
type Segment struct {
	A Point
	B Point
}

func NewSegment(a, b Point) Segment {
	return Segment{A: a, B: b}
}

func (s Segment) Dimensions() Type {
	return D1
}

func (s Segment) Length() float64 {
	return s.B.Vec().Sub(s.A.Vec()).Len()
}

// Edges returns the segment itself, so a lone segment can be drawn the
// same way as a compound shape.
func (s Segment) Edges() []Segment {
	return []Segment{s}
}

func (s Segment) Validate() error {
	if s.Length() < degenerateEpsilon {
		return fmt.Errorf("segment endpoints coincide at (%g, %g, %g): %w", s.A.X, s.A.Y, s.A.Z, ErrDegenerateShape)
	}
	return nil
}
