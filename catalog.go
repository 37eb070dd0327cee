package geom3d

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ShapeDef is the YAML definition of one catalog shape, e.g.
//
//	shapes:
//	  - kind: triangle
//	    name: sail
//	    points: [[0,0,0],[4,0,0],[0,3,0]]
//
// For meshes, points are consumed three at a time, one face per triple.
type ShapeDef struct {
	Kind   string       `yaml:"kind"`
	Name   string       `yaml:"name"`
	Points [][3]float64 `yaml:"points,omitempty"`
}

// Catalog is the top-level YAML document.
type Catalog struct {
	Shapes []ShapeDef `yaml:"shapes"`
}

// LoadCatalog reads a YAML catalog and returns a registry populated with
// the shapes it defines.
func LoadCatalog(r io.Reader) (*Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	reg := NewRegistry()
	for i, def := range cat.Shapes {
		if def.Name == "" {
			return nil, fmt.Errorf("catalog shape %d: missing name", i)
		}
		shape, err := BuildShape(def)
		if err != nil {
			return nil, fmt.Errorf("catalog shape %q: %w", def.Name, err)
		}
		if err := reg.Add(def.Name, shape); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func LoadCatalogFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

// BuildShape constructs the concrete shape a definition describes. The
// switch covers every supported kind; an unknown kind is an error, not a
// fallback.
func BuildShape(def ShapeDef) (Dimensional, error) {
	pts := make([]Point, len(def.Points))
	for i, p := range def.Points {
		pts[i] = NewPoint(p[0], p[1], p[2])
	}

	switch def.Kind {
	case "segment":
		if len(pts) != 2 {
			return nil, fmt.Errorf("segment needs 2 points, got %d: %w", len(pts), ErrInsufficientData)
		}
		return NewSegment(pts[0], pts[1]), nil

	case "triangle":
		if len(pts) != 3 {
			return nil, fmt.Errorf("triangle needs 3 points, got %d: %w", len(pts), ErrInsufficientData)
		}
		return NewTriangle(pts[0], pts[1], pts[2]), nil

	case "plane":
		if len(pts) != 3 {
			return nil, fmt.Errorf("plane needs 3 points, got %d: %w", len(pts), ErrInsufficientData)
		}
		return PlaneThrough(NewTriangle(pts[0], pts[1], pts[2]))

	case "mesh":
		if len(pts) < 3 || len(pts)%3 != 0 {
			return nil, fmt.Errorf("mesh needs a multiple of 3 points, got %d: %w", len(pts), ErrInsufficientData)
		}
		m := NewMesh()
		for i := 0; i < len(pts); i += 3 {
			m.AddTriangle(NewTriangle(pts[i], pts[i+1], pts[i+2]))
		}
		return m, nil
	}

	return nil, fmt.Errorf("unknown shape kind %q", def.Kind)
}

// KindOf reports the catalog kind name for a shape built by this package,
// or "shape" for foreign implementers of Dimensional.
func KindOf(s Dimensional) string {
	switch s.(type) {
	case Segment:
		return "segment"
	case Triangle:
		return "triangle"
	case Plane:
		return "plane"
	case *Mesh:
		return "mesh"
	}
	return "shape"
}
