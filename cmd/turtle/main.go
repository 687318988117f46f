// Command turtle runs turtle-graphics scripts and saves the result as PNG.
//
// Usage:
//
//	turtle -script spiral.logo -output spiral.png
//	echo "repeat 4 [ fd 100 rt 90 ]" | turtle -output square.png
//
// Without -script, commands are read from stdin one line at a time. The
// interactive form understands "history", "!!" and "!n" for recall.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/turtle"
	"github.com/gogpu/turtle/internal/history"
	"github.com/gogpu/turtle/internal/script"
)

func main() {
	var (
		width   = flag.Int("width", turtle.DefaultWidth, "canvas width")
		height  = flag.Int("height", turtle.DefaultHeight, "canvas height")
		output  = flag.String("output", "turtle.png", "output file")
		file    = flag.String("script", "", "script file (default: read stdin)")
		verbose = flag.Bool("v", false, "log engine events to stderr")
	)
	flag.Parse()

	if *verbose {
		turtle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	t, err := turtle.New(turtle.WithSize(*width, *height))
	if err != nil {
		log.Fatalf("Failed to create turtle: %v", err)
	}

	if *file != "" {
		src, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("Failed to read script: %v", err)
		}
		if err := script.Exec(t, string(src)); err != nil {
			log.Fatalf("Script failed: %v", err)
		}
	} else {
		h, err := history.New(historyEntries, historyBytes)
		if err != nil {
			log.Fatalf("Failed to create history: %v", err)
		}
		if err := repl(os.Stdin, os.Stderr, t, h); err != nil {
			log.Fatalf("Failed to read commands: %v", err)
		}
	}

	if err := t.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Saved %s (%dx%d)\n", *output, *width, *height)
}
