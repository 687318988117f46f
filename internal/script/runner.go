// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package script

import "github.com/gogpu/turtle"

// frame is one level of repeat nesting.
type frame struct {
	body []Command
	next int
	left int // further passes over body after the current one
}

// Runner executes a Program one command at a time, so a frame loop can
// interleave drawing with presentation.
type Runner struct {
	t     *turtle.Turtle
	stack []frame
	done  int
}

// NewRunner prepares p to run on t.
func NewRunner(p *Program, t *turtle.Turtle) *Runner {
	return &Runner{t: t, stack: []frame{{body: p.Commands}}}
}

// Done reports whether every command has run.
func (r *Runner) Done() bool { return len(r.stack) == 0 }

// Executed returns how many commands have run so far, repeat excluded.
func (r *Runner) Executed() int { return r.done }

// Step runs the next command. Entering or leaving a repeat body does not
// count as a step. It returns false once the program has finished.
// After an error the runner stops.
func (r *Runner) Step() (bool, error) {
	for len(r.stack) > 0 {
		top := &r.stack[len(r.stack)-1]
		if top.next == len(top.body) {
			if top.left > 0 {
				top.left--
				top.next = 0
				continue
			}
			r.stack = r.stack[:len(r.stack)-1]
			continue
		}

		c := &top.body[top.next]
		top.next++
		if c.fn == nil {
			n, err := c.count()
			if err != nil {
				r.stack = nil
				return false, err
			}
			if n > 0 && len(c.Body) > 0 {
				r.stack = append(r.stack, frame{body: c.Body, left: n - 1})
			}
			continue
		}

		if err := c.exec(r.t); err != nil {
			r.stack = nil
			return false, err
		}
		r.done++
		return true, nil
	}
	return false, nil
}

// StepN runs up to n commands and returns how many ran.
func (r *Runner) StepN(n int) (int, error) {
	ran := 0
	for ran < n {
		ok, err := r.Step()
		if err != nil {
			return ran, err
		}
		if !ok {
			break
		}
		ran++
	}
	return ran, nil
}
