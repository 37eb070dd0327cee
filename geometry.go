// Package geom3d defines a small geometric vocabulary: a Point in
// three-dimensional space, a closed classification of dimensionality
// categories, and the Dimensional capability that shapes implement to
// report their category.
package geom3d

import "fmt"

// Type classifies a geometric entity by the number of dimensions it spans.
// The set is closed: only the three spatial categories exist, so a switch
// over D1, D2 and D3 covers every value.
type Type int

const (
	D1 Type = iota + 1 // lines and segments
	D2                 // planar shapes
	D3                 // solids
)

func (t Type) String() string {
	switch t {
	case D1:
		return "1D"
	case D2:
		return "2D"
	case D3:
		return "3D"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType converts the textual form used in catalogs and on the command
// line back into a Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "1D", "1d":
		return D1, nil
	case "2D", "2d":
		return D2, nil
	case "3D", "3d":
		return D3, nil
	}
	return 0, fmt.Errorf("unknown dimensionality %q", s)
}

// Dimensional is the capability every shape opts into. Dimensions must be
// pure and total: same receiver, same category, every call, and it never
// fails. Shapes that need validation expose it separately.
type Dimensional interface {
	Dimensions() Type
}

// Wireframe is implemented by bounded shapes that can describe themselves
// as a set of line segments. Unbounded shapes (Plane) do not implement it.
type Wireframe interface {
	Edges() []Segment
}
