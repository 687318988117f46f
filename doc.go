// Package turtle provides a turtle-graphics engine built on gg.
//
// # Overview
//
// A Turtle is an oriented pen that moves across a fixed-size raster
// canvas, leaving ink behind it. Commands such as Forward, Right and Goto
// mutate the turtle's State; forward motion traces line segments onto a
// persistent ink layer, and a renderer redraws the turtle icon on a
// separate overlay layer and composites the ink above it.
//
// # Quick Start
//
//	import "github.com/gogpu/turtle"
//
//	t, err := turtle.New(turtle.WithSize(400, 400))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	t.SetColor(255, 0, 0, 1)
//	_ = turtle.Repeat(4, func(int) error {
//	    if err := t.Forward(100); err != nil {
//	        return err
//	    }
//	    return t.Right(90)
//	})
//	_ = t.SavePNG("square.png")
//
// # Coordinate System
//
// Turtle coordinates are centred on the canvas:
//   - Origin (0,0) at the canvas centre
//   - X increases right
//   - Y increases up
//   - Heading in radians, 0 faces +Y, increases clockwise
//
// Drawing converts to gg's pixel space (origin top-left, Y down) with a
// single transform per operation.
//
// # Wrapping
//
// With wrap mode on (the default), a forward move that would leave the
// canvas re-enters from the opposite edge and continues for the remaining
// distance. See Trace.
//
// # Redraw Gate
//
// Every state-changing command re-renders the overlay only while
// AutoRedraw is on. Turn it off with SetAutoRedraw(false) to batch large
// drawings and call Render when done.
//
// # Numeric Inputs
//
// Inputs are not validated. NaN and infinite values propagate into the
// state and into drawing calls rather than producing errors. Errors are
// returned only when the underlying Surface fails.
package turtle
