package turtle

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Default canvas size and text size.
const (
	DefaultWidth    = 500
	DefaultHeight   = 500
	DefaultFontSize = 14.0
)

// DefaultTurtleColor fills the turtle icon.
var DefaultTurtleColor = gg.RGB(0.18, 0.55, 0.34)

// Option configures a Turtle during creation.
//
// Example:
//
//	// Default 500x500 software canvas
//	t, _ := turtle.New()
//
//	// Injected surfaces (dependency injection)
//	t, _ := turtle.New(turtle.WithInk(ink), turtle.WithOverlay(overlay))
type Option func(*options)

// options holds optional configuration for Turtle creation.
type options struct {
	width, height int
	ink, overlay  Surface
	face          text.Face
	fontSize      float64
	turtleColor   gg.RGBA
	shapes        *ShapeRegistry
}

// defaultOptions returns the default turtle options.
func defaultOptions() options {
	return options{
		width:       DefaultWidth,
		height:      DefaultHeight,
		fontSize:    DefaultFontSize,
		turtleColor: DefaultTurtleColor,
		shapes:      DefaultShapes(),
	}
}

// WithSize sets the canvas size used when surfaces are created by New.
// Ignored for injected surfaces, whose own size wins.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width, o.height = width, height
	}
}

// WithInk injects the persistent ink surface.
func WithInk(s Surface) Option {
	return func(o *options) {
		o.ink = s
	}
}

// WithOverlay injects the presented overlay surface.
func WithOverlay(s Surface) Option {
	return func(o *options) {
		o.overlay = s
	}
}

// WithFont sets the face used by Write. Without it, Go Regular is loaded
// lazily at DefaultFontSize (or the WithFontSize size).
func WithFont(face text.Face) Option {
	return func(o *options) {
		o.face = face
	}
}

// WithFontSize sets the size of the default Write face in points.
func WithFontSize(points float64) Option {
	return func(o *options) {
		o.fontSize = points
	}
}

// WithTurtleColor sets the fill color of the turtle icon.
func WithTurtleColor(c gg.RGBA) Option {
	return func(o *options) {
		o.turtleColor = c
	}
}

// WithShapes replaces the shape catalog.
func WithShapes(r *ShapeRegistry) Option {
	return func(o *options) {
		if r != nil {
			o.shapes = r
		}
	}
}
