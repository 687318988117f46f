package turtle

import (
	"math"
	"slices"
	"sort"

	"github.com/gogpu/gg"
)

// Shape names in the built-in catalog.
const (
	ShapeTriangle = "triangle"
	ShapeTurtle   = "turtle"
	ShapeSquare   = "square"
	ShapeCircle   = "circle"

	// DefaultShape is used for unknown shape names.
	DefaultShape = ShapeTriangle
)

// Shape is a closed polygon outline given as offsets from the turtle
// position, pointing along +Y. The last vertex joins the first.
type Shape []gg.Point

// ShapeRegistry is an immutable name to Shape catalog.
// Lookups return copies, so callers cannot alter registered outlines.
type ShapeRegistry struct {
	shapes   map[string]Shape
	fallback Shape
}

// NewShapeRegistry builds a registry from shapes. The entry named
// fallback is returned for unknown names; it must be present.
// The input map and its slices are copied.
func NewShapeRegistry(shapes map[string]Shape, fallback string) (*ShapeRegistry, error) {
	fb, ok := shapes[fallback]
	if !ok || len(fb) == 0 {
		return nil, ErrNoFallbackShape
	}
	r := &ShapeRegistry{
		shapes:   make(map[string]Shape, len(shapes)),
		fallback: slices.Clone(fb),
	}
	for name, s := range shapes {
		r.shapes[name] = slices.Clone(s)
	}
	return r, nil
}

// Lookup returns a copy of the named shape and whether it exists.
func (r *ShapeRegistry) Lookup(name string) (Shape, bool) {
	s, ok := r.shapes[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(s), true
}

// LookupOrDefault returns a copy of the named shape, or of the fallback
// shape when name is unknown.
func (r *ShapeRegistry) LookupOrDefault(name string) Shape {
	if s, ok := r.Lookup(name); ok {
		return s
	}
	return slices.Clone(r.fallback)
}

// Names returns the registered shape names in sorted order.
func (r *ShapeRegistry) Names() []string {
	names := make([]string, 0, len(r.shapes))
	for name := range r.shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// defaultShapes is the built-in catalog. Never handed out directly.
var defaultShapes = mustRegistry(map[string]Shape{
	ShapeTriangle: {
		gg.Pt(10, -5.77), gg.Pt(0, 11.55), gg.Pt(-10, -5.77),
	},
	ShapeSquare: {
		gg.Pt(10, -10), gg.Pt(10, 10), gg.Pt(-10, 10), gg.Pt(-10, -10),
	},
	ShapeCircle: regularPolygon(20, 10),
	ShapeTurtle: {
		gg.Pt(0, 16), gg.Pt(-2, 14), gg.Pt(-1, 10), gg.Pt(-4, 7),
		gg.Pt(-7, 9), gg.Pt(-9, 8), gg.Pt(-6, 5), gg.Pt(-7, 1),
		gg.Pt(-5, -3), gg.Pt(-8, -6), gg.Pt(-6, -8), gg.Pt(-4, -5),
		gg.Pt(0, -7), gg.Pt(4, -5), gg.Pt(6, -8), gg.Pt(8, -6),
		gg.Pt(5, -3), gg.Pt(7, 1), gg.Pt(6, 5), gg.Pt(9, 8),
		gg.Pt(7, 9), gg.Pt(4, 7), gg.Pt(1, 10), gg.Pt(2, 14),
	},
}, DefaultShape)

// DefaultShapes returns the built-in catalog: triangle, turtle, square
// and circle, with triangle as the fallback.
func DefaultShapes() *ShapeRegistry {
	return defaultShapes
}

func mustRegistry(shapes map[string]Shape, fallback string) *ShapeRegistry {
	r, err := NewShapeRegistry(shapes, fallback)
	if err != nil {
		panic(err)
	}
	return r
}

// regularPolygon returns n vertices on a circle of radius r, starting on
// +X and winding counter-clockwise.
func regularPolygon(n int, r float64) Shape {
	s := make(Shape, n)
	for i := range s {
		sin, cos := SinCos(2 * math.Pi * float64(i) / float64(n))
		s[i] = gg.Pt(r*cos, r*sin)
	}
	return s
}
