package geom3d

import (
	"fmt"
	"sort"
)

// Registry is an ordered store of named shapes. Shapes are held behind the
// Dimensional capability only, so any future implementer can be registered
// without changes here.
type Registry struct {
	order  []string
	shapes map[string]Dimensional
}

func NewRegistry() *Registry {
	return &Registry{
		shapes: make(map[string]Dimensional),
	}
}

func (r *Registry) Add(name string, s Dimensional) error {
	if name == "" {
		return fmt.Errorf("shape name must not be empty")
	}
	if _, exists := r.shapes[name]; exists {
		return fmt.Errorf("shape %q already registered", name)
	}
	r.order = append(r.order, name)
	r.shapes[name] = s
	return nil
}

func (r *Registry) Get(name string) (Dimensional, bool) {
	s, ok := r.shapes[name]
	return s, ok
}

func (r *Registry) Len() int {
	return len(r.order)
}

// Names returns the registered names sorted alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	sort.Strings(names)
	return names
}

// ByDimensions returns the shapes of the given category in registration
// order.
func (r *Registry) ByDimensions(t Type) []Dimensional {
	var out []Dimensional
	for _, name := range r.order {
		if s := r.shapes[name]; s.Dimensions() == t {
			out = append(out, s)
		}
	}
	return out
}

// Each calls fn for every shape in registration order.
func (r *Registry) Each(fn func(name string, s Dimensional)) {
	for _, name := range r.order {
		fn(name, r.shapes[name])
	}
}
