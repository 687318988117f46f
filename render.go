package turtle

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Renderer owns the two layers of a turtle canvas: the persistent ink
// surface and the overlay surface that is actually presented.
//
// Each redraw clears the overlay, fills the turtle icon, then composites
// the ink layer on top so strokes appear above the turtle.
type Renderer struct {
	ink     Surface
	overlay Surface
	shapes  *ShapeRegistry
	fill    gg.RGBA
}

// NewRenderer returns a renderer over the given surfaces. The surfaces must
// be the same size; New checks this before building one.
func NewRenderer(ink, overlay Surface, shapes *ShapeRegistry, fill gg.RGBA) *Renderer {
	if shapes == nil {
		shapes = DefaultShapes()
	}
	return &Renderer{ink: ink, overlay: overlay, shapes: shapes, fill: fill}
}

// Redraw recomputes the overlay from st. Calling it twice with the same
// state and ink produces identical pixels.
func (r *Renderer) Redraw(st State) error {
	r.overlay.Clear()
	if st.Visible {
		if err := r.drawIcon(st); err != nil {
			return err
		}
	}
	r.compositeInk()
	return nil
}

// ClearInk wipes the ink surface.
func (r *Renderer) ClearInk() {
	r.ink.Clear()
}

func (r *Renderer) drawIcon(st State) error {
	shape, ok := r.shapes.Lookup(st.Shape)
	if !ok {
		Logger().Debug("turtle: unknown shape, using fallback", "shape", st.Shape)
		shape = r.shapes.LookupOrDefault(st.Shape)
	}

	o := r.overlay
	pushCanvasTransform(o)
	defer o.Pop()
	o.Translate(st.Position.X, st.Position.Y)
	o.Rotate(-st.Heading)

	for i, p := range shape {
		if i == 0 {
			o.MoveTo(p.X, p.Y)
		} else {
			o.LineTo(p.X, p.Y)
		}
	}
	o.ClosePath()
	o.SetRGBA(r.fill.R, r.fill.G, r.fill.B, r.fill.A)
	if err := o.Fill(); err != nil {
		return fmt.Errorf("turtle: draw icon: %w", err)
	}
	return nil
}

// compositeInk draws the ink layer over the overlay, pixel for pixel.
func (r *Renderer) compositeInk() {
	buf := gg.ImageBufFromImage(r.ink.Image())
	r.overlay.DrawImageEx(buf, gg.DrawImageOptions{
		Interpolation: gg.InterpNearest,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
}

// pushCanvasTransform saves s and maps centred, Y-up turtle coordinates
// onto its pixel grid. The caller must Pop.
func pushCanvasTransform(s Surface) {
	s.Push()
	s.Translate(float64(s.Width())/2, float64(s.Height())/2)
	s.Scale(1, -1)
}
