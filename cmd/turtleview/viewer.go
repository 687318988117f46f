package main

import (
	"image"
	"image/color"
	"image/draw"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/turtle"
	"github.com/gogpu/turtle/internal/script"
)

// viewer is an ebiten.Game that advances a script on every tick and
// presents the turtle overlay.
type viewer struct {
	t      *turtle.Turtle
	runner *script.Runner
	steps  int

	frame *image.RGBA   // CPU copy of the overlay
	tex   *ebiten.Image // GPU copy, rewritten when dirty
	dirty bool
}

func newViewer(t *turtle.Turtle, r *script.Runner, steps int) *viewer {
	b := t.Bounds()
	w, h := int(b.MaxX-b.MinX), int(b.MaxY-b.MinY)
	return &viewer{
		t:      t,
		runner: r,
		steps:  max(steps, 1),
		frame:  image.NewRGBA(image.Rect(0, 0, w, h)),
		dirty:  true,
	}
}

// Update runs the next batch of commands.
func (v *viewer) Update() error {
	if v.runner.Done() {
		return nil
	}
	n, err := v.runner.StepN(v.steps)
	if n > 0 {
		v.dirty = true
	}
	if err != nil {
		log.Printf("Script stopped: %v", err)
	}
	return nil
}

// Draw presents the overlay on a white background.
func (v *viewer) Draw(screen *ebiten.Image) {
	if v.tex == nil {
		v.tex = ebiten.NewImage(v.frame.Rect.Dx(), v.frame.Rect.Dy())
	}
	if v.dirty {
		v.snapshot()
		v.tex.WritePixels(v.frame.Pix)
		v.dirty = false
	}
	screen.Fill(color.White)
	screen.DrawImage(v.tex, nil)
}

// snapshot copies the overlay into frame as premultiplied RGBA.
func (v *viewer) snapshot() {
	draw.Draw(v.frame, v.frame.Rect, v.t.Image(), image.Point{}, draw.Src)
}

// Layout keeps the canvas at its native size.
func (v *viewer) Layout(int, int) (int, int) {
	return v.frame.Rect.Dx(), v.frame.Rect.Dy()
}
