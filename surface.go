package turtle

import (
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Surface is a raster drawing target used for the ink and overlay layers.
//
// *gg.Context satisfies Surface; it is what New creates when no surface is
// injected. Other implementations (recording wrappers, alternative
// backends) can be supplied with WithInk and WithOverlay.
//
// Surfaces are NOT safe for concurrent use.
type Surface interface {
	// Width and Height return the surface size in pixels.
	Width() int
	Height() int

	// Clear resets every pixel to transparent.
	Clear()

	// Push and Pop save and restore the current transform.
	Push()
	Pop()

	// Translate, Scale and Rotate compose onto the current transform.
	Translate(x, y float64)
	Scale(x, y float64)
	Rotate(angle float64)

	// Path construction in user space.
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	ClearPath()

	// Fill and Stroke paint and consume the current path.
	Fill() error
	Stroke() error

	// SetRGBA sets the paint color, components in [0, 1].
	SetRGBA(r, g, b, a float64)

	// SetLineWidth sets the stroke width.
	SetLineWidth(width float64)

	// SetFont and DrawString render text with its baseline at (x, y).
	SetFont(face text.Face)
	DrawString(s string, x, y float64)

	// DrawImageEx draws img through the current transform.
	DrawImageEx(img *gg.ImageBuf, opts gg.DrawImageOptions)

	// Image returns a snapshot of the surface contents.
	Image() image.Image

	// EncodePNG writes the surface contents as PNG.
	EncodePNG(w io.Writer) error
}

var _ Surface = (*gg.Context)(nil)

// NewSurface returns a software-rendered gg surface of the given size.
func NewSurface(width, height int) Surface {
	return gg.NewContext(width, height)
}
