// Command turtleview runs a turtle-graphics script in a window, a few
// commands per frame, so the drawing can be watched as it happens.
//
// Usage:
//
//	turtleview -script spiral.logo -steps 4
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/turtle"
	"github.com/gogpu/turtle/internal/script"
)

// demo is drawn when no -script is given.
const demo = `
# nested squares, rotated
width 2
repeat 36 [
  color random 0 255 random 0 255 200 0.9
  repeat 4 [ fd 120 rt 90 ]
  rt 10
]
`

func main() {
	var (
		width   = flag.Int("width", turtle.DefaultWidth, "canvas width")
		height  = flag.Int("height", turtle.DefaultHeight, "canvas height")
		file    = flag.String("script", "", "script file (default: built-in demo)")
		steps   = flag.Int("steps", 2, "commands run per frame")
		verbose = flag.Bool("v", false, "log engine events to stderr")
	)
	flag.Parse()

	if *verbose {
		turtle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	src := demo
	if *file != "" {
		b, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("Failed to read script: %v", err)
		}
		src = string(b)
	}
	prog, err := script.Compile(src)
	if err != nil {
		log.Fatalf("Failed to compile script: %v", err)
	}

	t, err := turtle.New(turtle.WithSize(*width, *height))
	if err != nil {
		log.Fatalf("Failed to create turtle: %v", err)
	}

	g := newViewer(t, script.NewRunner(prog, t), *steps)

	ebiten.SetWindowTitle("turtle")
	ebiten.SetWindowSize(*width, *height)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
