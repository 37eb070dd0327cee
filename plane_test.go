package geom3d

import (
	"errors"
	"testing"
)

func TestPlaneThrough(t *testing.T) {
	tri := NewTriangle(NewPoint(0, 0, 5), NewPoint(4, 0, 5), NewPoint(0, 3, 5))
	p, err := PlaneThrough(tri)
	if err != nil {
		t.Fatalf("PlaneThrough: %v", err)
	}

	if !almostEqual(p.A, 0) || !almostEqual(p.B, 0) || !almostEqual(p.C, 1) || !almostEqual(p.D, -5) {
		t.Errorf("PlaneThrough = %+v, want z = 5 plane (0, 0, 1, -5)", p)
	}
}

func TestPlaneThroughDegenerate(t *testing.T) {
	tri := NewTriangle(NewPoint(0, 0, 0), NewPoint(1, 1, 1), NewPoint(2, 2, 2))
	_, err := PlaneThrough(tri)
	if !errors.Is(err, ErrDegenerateShape) {
		t.Errorf("PlaneThrough(collinear) = %v, want ErrDegenerateShape", err)
	}
}

func TestPlaneEval(t *testing.T) {
	// The z = 0 plane.
	p := Plane{C: 1}

	testCases := []struct {
		name string
		pt   Point
		want float64
	}{
		{"above", NewPoint(0, 0, 3), 3},
		{"below", NewPoint(7, -2, -4), -4},
		{"on plane", NewPoint(100, 100, 0), 0},
		{"within thickness", NewPoint(0, 0, 1e-12), 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Eval(tc.pt); !almostEqual(got, tc.want) {
				t.Errorf("Eval(%+v) = %v, want %v", tc.pt, got, tc.want)
			}
		})
	}
}

func TestPlaneContains(t *testing.T) {
	tri := NewTriangle(NewPoint(0, 0, 0), NewPoint(4, 0, 0), NewPoint(0, 3, 0))
	p, err := PlaneThrough(tri)
	if err != nil {
		t.Fatalf("PlaneThrough: %v", err)
	}

	if !p.Contains(tri.Centroid()) {
		t.Errorf("Contains(centroid) = false, want true")
	}
	if p.Contains(NewPoint(0, 0, 1)) {
		t.Errorf("Contains(off-plane point) = true, want false")
	}
}
