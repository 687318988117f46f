package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/turtle"
	"github.com/gogpu/turtle/internal/history"
	"github.com/gogpu/turtle/internal/script"
)

const (
	historyEntries = 500
	historyBytes   = 64 << 10
)

var errNoEvent = errors.New("event not found")

// repl reads commands from in until EOF. Errors from individual commands
// are reported on out and do not end the session. Lines are joined while
// a repeat block is still open. Lines have no length limit.
func repl(in io.Reader, out io.Writer, t *turtle.Turtle, h *history.Queue) error {
	rd := bufio.NewReader(in)
	var pending strings.Builder

	handle := func(line string) {
		line = strings.TrimSpace(line)

		if pending.Len() == 0 {
			switch {
			case line == "":
				return
			case line == "history":
				for i, e := range h.Entries() {
					fmt.Fprintf(out, "%5d  %s\n", i+1, e)
				}
				return
			case strings.HasPrefix(line, "!"):
				recalled, err := expand(line, h)
				if err != nil {
					fmt.Fprintf(out, "%s: %v\n", line, err)
					return
				}
				fmt.Fprintln(out, recalled)
				line = recalled
			}
		}

		if pending.Len() > 0 {
			pending.WriteByte('\n')
		}
		pending.WriteString(line)
		src := pending.String()
		if script.Depth(src) > 0 {
			return
		}
		pending.Reset()

		if err := h.Push(src); err != nil {
			fmt.Fprintln(out, err)
		}
		if err := script.Exec(t, src); err != nil {
			fmt.Fprintln(out, err)
		}
	}

	for {
		if pending.Len() > 0 {
			fmt.Fprint(out, ".. ")
		} else {
			fmt.Fprint(out, "> ")
		}

		line, err := rd.ReadString('\n')
		if line != "" {
			handle(line)
		}
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}
	}
}

// expand resolves "!!" and "!n" (1-based) against h.
func expand(line string, h *history.Queue) (string, error) {
	if line == "!!" {
		if s, ok := h.Last(); ok {
			return s, nil
		}
		return "", errNoEvent
	}
	n, err := strconv.Atoi(line[1:])
	if err != nil {
		return "", errNoEvent
	}
	if s, ok := h.At(n - 1); ok {
		return s, nil
	}
	return "", errNoEvent
}
