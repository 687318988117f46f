package turtle

import (
	"fmt"
	"image"
	"io"
	"os"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Turtle is a single pen-cursor drawing on an ink layer, presented through
// an overlay layer that also shows the turtle icon.
//
// All commands run synchronously. A Turtle is NOT safe for concurrent use;
// drive it from one goroutine (or one event loop), the same contract as
// gg.Context.
type Turtle struct {
	state    State
	bounds   Bounds
	ink      Surface
	overlay  Surface
	renderer *Renderer

	// style is the CSS form of the stroke color last applied to ink.
	style string

	face     text.Face
	fontSize float64
}

// New creates a turtle in its default state with a freshly rendered
// overlay.
//
// Example:
//
//	t, err := turtle.New(turtle.WithSize(300, 300))
//	if err != nil {
//	    return err
//	}
//	_ = t.Forward(100)
func New(opts ...Option) (*Turtle, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w, h := o.width, o.height
	switch {
	case o.ink != nil:
		w, h = o.ink.Width(), o.ink.Height()
	case o.overlay != nil:
		w, h = o.overlay.Width(), o.overlay.Height()
	}
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}

	ink, overlay := o.ink, o.overlay
	if ink == nil {
		ink = NewSurface(w, h)
	}
	if overlay == nil {
		overlay = NewSurface(w, h)
	}
	if ink.Width() != overlay.Width() || ink.Height() != overlay.Height() {
		return nil, ErrSurfaceMismatch
	}

	t := &Turtle{
		bounds:   BoundsFor(w, h),
		ink:      ink,
		overlay:  overlay,
		renderer: NewRenderer(ink, overlay, o.shapes, o.turtleColor),
		face:     o.face,
		fontSize: o.fontSize,
	}
	if err := t.Reset(); err != nil {
		return nil, err
	}
	return t, nil
}

// Forward moves the turtle distance units along its heading, tracing the
// move with Trace. Ink is committed only while the pen is down; the
// position advances either way. A negative distance moves backward.
func (t *Turtle) Forward(distance float64) error {
	p := Trace(t.state.Position, t.state.Heading, distance, t.bounds, t.state.Wrap)
	if p.Truncated {
		Logger().Warn("turtle: forward truncated", "distance", distance, "segments", len(p.Segments))
	}
	if n := len(p.Segments); n > 1 {
		Logger().Debug("turtle: wrapped", "crossings", n-1)
	}
	t.state.Position = p.End

	if err := t.strokeInk(p.Segments); err != nil {
		return err
	}
	return t.DrawIfAutoRedraw()
}

// Backward moves the turtle distance units against its heading.
func (t *Turtle) Backward(distance float64) error {
	return t.Forward(-distance)
}

// strokeInk strokes segs onto the ink layer under one canvas transform.
// The path is built even with the pen up and then discarded.
func (t *Turtle) strokeInk(segs []Segment) error {
	if len(segs) == 0 {
		return nil
	}
	ink := t.ink
	pushCanvasTransform(ink)
	defer ink.Pop()

	for _, s := range segs {
		ink.MoveTo(s.From.X, s.From.Y)
		ink.LineTo(s.To.X, s.To.Y)
	}
	if !t.state.PenDown {
		ink.ClearPath()
		return nil
	}
	if err := ink.Stroke(); err != nil {
		return fmt.Errorf("turtle: forward: %w", err)
	}
	return nil
}

// Right turns the turtle clockwise by deg degrees.
func (t *Turtle) Right(deg float64) error {
	t.state.Heading += DegreesToRadians(deg)
	return t.DrawIfAutoRedraw()
}

// Left turns the turtle counter-clockwise by deg degrees.
func (t *Turtle) Left(deg float64) error {
	t.state.Heading -= DegreesToRadians(deg)
	return t.DrawIfAutoRedraw()
}

// Goto moves the turtle to (x, y) without drawing.
func (t *Turtle) Goto(x, y float64) error {
	t.state.Position = gg.Pt(x, y)
	return t.DrawIfAutoRedraw()
}

// SetHeadingDegrees sets the absolute heading. 0 faces +Y, 90 faces +X.
func (t *Turtle) SetHeadingDegrees(deg float64) error {
	t.state.Heading = DegreesToRadians(deg)
	return t.DrawIfAutoRedraw()
}

// PenUp stops forward motion from leaving ink.
func (t *Turtle) PenUp() { t.state.PenDown = false }

// PenDown makes forward motion leave ink.
func (t *Turtle) PenDown() { t.state.PenDown = true }

// SetWidth sets the ink stroke width.
func (t *Turtle) SetWidth(w float64) {
	t.state.Width = w
	t.ink.SetLineWidth(w)
}

// SetShape selects the icon outline and renders immediately, regardless of
// AutoRedraw. Unknown names render as DefaultShape.
func (t *Turtle) SetShape(name string) error {
	t.state.Shape = name
	return t.Render()
}

// SetColor sets the ink stroke color. r, g, b are conventionally in
// [0, 255] and a in [0, 1]; nothing is clamped.
func (t *Turtle) SetColor(r, g, b, a float64) {
	t.state.Color = Color{R: r, G: g, B: b, A: a}
	t.applyColor()
}

// SetWrap turns edge wrapping on or off.
func (t *Turtle) SetWrap(on bool) { t.state.Wrap = on }

// SetAutoRedraw turns the redraw gate on or off. With it off, commands
// only update state and ink; call Render to present the result.
func (t *Turtle) SetAutoRedraw(on bool) { t.state.AutoRedraw = on }

// HideTurtle stops rendering the turtle icon.
func (t *Turtle) HideTurtle() error {
	t.state.Visible = false
	return t.DrawIfAutoRedraw()
}

// ShowTurtle resumes rendering the turtle icon.
func (t *Turtle) ShowTurtle() error {
	t.state.Visible = true
	return t.DrawIfAutoRedraw()
}

// Write draws s on the ink layer with its baseline at the turtle position,
// upright regardless of heading, in the current stroke color.
func (t *Turtle) Write(s string) error {
	face, err := t.fontFace()
	if err != nil {
		return err
	}
	ink := t.ink
	ink.SetFont(face)
	ink.Push()
	ink.Translate(float64(ink.Width())/2, float64(ink.Height())/2)
	ink.DrawString(s, t.state.Position.X, -t.state.Position.Y)
	ink.Pop()
	return t.DrawIfAutoRedraw()
}

// goRegular parses the bundled Go Regular font once per process.
var goRegular = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

func (t *Turtle) fontFace() (text.Face, error) {
	if t.face != nil {
		return t.face, nil
	}
	src, err := goRegular()
	if err != nil {
		return nil, fmt.Errorf("turtle: load font: %w", err)
	}
	t.face = src.Face(t.fontSize)
	return t.face, nil
}

// Clear wipes the ink layer, keeping the turtle state.
func (t *Turtle) Clear() error {
	t.ClearInk()
	return t.DrawIfAutoRedraw()
}

// ClearInk wipes the ink layer without rendering.
func (t *Turtle) ClearInk() {
	t.renderer.ClearInk()
}

// Reset replaces the state with DefaultState, restores the ink stroke
// style, clears the ink and renders once unconditionally.
func (t *Turtle) Reset() error {
	t.state = DefaultState()
	t.ink.SetLineWidth(t.state.Width)
	t.applyColor()
	t.renderer.ClearInk()
	Logger().Debug("turtle: reset", "width", t.bounds.MaxX*2, "height", t.bounds.MaxY*2)
	return t.Render()
}

func (t *Turtle) applyColor() {
	c := t.state.Color.Normalized()
	t.ink.SetRGBA(c.R, c.G, c.B, c.A)
	t.style = t.state.Color.String()
}

// Render redraws the overlay from the current state, regardless of
// AutoRedraw.
func (t *Turtle) Render() error {
	return t.renderer.Redraw(t.state)
}

// DrawIfAutoRedraw renders only while AutoRedraw is on.
func (t *Turtle) DrawIfAutoRedraw() error {
	if !t.state.AutoRedraw {
		return nil
	}
	return t.Render()
}

// State returns a copy of the turtle state.
func (t *Turtle) State() State { return t.state }

// Position returns the turtle position.
func (t *Turtle) Position() gg.Point { return t.state.Position }

// HeadingDegrees returns the heading in degrees, unnormalised.
func (t *Turtle) HeadingDegrees() float64 { return RadiansToDegrees(t.state.Heading) }

// StrokeStyle returns the stroke style applied to the ink layer, in the
// form "rgba(r,g,b,a)".
func (t *Turtle) StrokeStyle() string { return t.style }

// Bounds returns the canvas extent in turtle coordinates.
func (t *Turtle) Bounds() Bounds { return t.bounds }

// Image returns a snapshot of the presented overlay.
func (t *Turtle) Image() image.Image { return t.overlay.Image() }

// InkImage returns a snapshot of the ink layer alone.
func (t *Turtle) InkImage() image.Image { return t.ink.Image() }

// EncodePNG writes the presented overlay as PNG.
func (t *Turtle) EncodePNG(w io.Writer) error {
	return t.overlay.EncodePNG(w)
}

// SavePNG writes the presented overlay to a PNG file.
func (t *Turtle) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
