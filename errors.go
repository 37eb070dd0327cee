package geom3d

import "errors"

var (
	// ErrDegenerateShape reports geometry that collapses below its
	// declared dimensionality, e.g. a triangle with collinear vertices.
	ErrDegenerateShape = errors.New("degenerate shape")

	// ErrInsufficientData reports too little geometry to build the
	// requested shape at all.
	ErrInsufficientData = errors.New("insufficient data")
)

// degenerateEpsilon is the length/area threshold below which geometry is
// treated as collapsed.
const degenerateEpsilon = 1e-9
