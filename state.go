package turtle

import "github.com/gogpu/gg"

// State is the complete mutable record of a turtle.
// A Turtle owns exactly one State; Reset replaces it with DefaultState.
type State struct {
	// Position in centred, Y-up coordinates.
	Position gg.Point

	// Heading in radians. 0 faces +Y; Right increases it (clockwise).
	Heading float64

	// PenDown reports whether forward motion leaves ink.
	PenDown bool

	// Width is the ink stroke width in pixels.
	Width float64

	// Visible reports whether the turtle icon is rendered.
	Visible bool

	// AutoRedraw gates the render triggered by state-changing commands.
	AutoRedraw bool

	// Wrap makes forward motion re-enter from the opposite canvas edge.
	Wrap bool

	// Shape names an entry in the shape catalog. Unknown names render as
	// DefaultShape.
	Shape string

	// Color is the ink stroke color.
	Color Color
}

// DefaultState returns the state of a freshly created or reset turtle:
// at the origin facing +Y, pen down, width 1, visible, wrapping, auto
// redraw on, triangle shape, opaque black ink.
func DefaultState() State {
	return State{
		Position:   gg.Pt(0, 0),
		Heading:    0,
		PenDown:    true,
		Width:      1,
		Visible:    true,
		AutoRedraw: true,
		Wrap:       true,
		Shape:      DefaultShape,
		Color:      Black,
	}
}
