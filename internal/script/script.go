// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package script interprets a small Logo-like command language on top of
// a turtle.Turtle.
//
// A program is a sequence of commands separated by whitespace or newlines.
// Command names are case-insensitive and most have a short alias:
//
//	repeat 36 [ fd 10 rt 10 ]   # a circle
//	color 255 0 0 1
//	write Hello
//
// Numeric arguments are coerced with Number, so non-numeric text becomes
// NaN rather than an error. The expression "random A B" may appear
// anywhere a number is expected.
package script

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/turtle"
	"golang.org/x/text/cases"
)

// Errors returned by Compile and Run. They are wrapped with the source
// line they were found on.
var (
	ErrUnknownCommand  = errors.New("script: unknown command")
	ErrUnbalanced      = errors.New("script: unbalanced brackets")
	ErrMissingArgument = errors.New("script: missing argument")
	ErrBadArgument     = errors.New("script: bad argument")
)

// Number converts s to a float64 the permissive way: surrounding space is
// ignored and anything that does not parse yields NaN.
func Number(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

type argKind int

const (
	argNumber argKind = iota
	argWord
	argText  // rest of the line
	argBlock // [ ... ]
)

type builtin struct {
	name string
	args []argKind
	run  func(t *turtle.Turtle, c *Command) error
}

var builtins = []builtin{
	{"forward", []argKind{argNumber}, func(t *turtle.Turtle, c *Command) error { return t.Forward(c.num(0)) }},
	{"back", []argKind{argNumber}, func(t *turtle.Turtle, c *Command) error { return t.Backward(c.num(0)) }},
	{"right", []argKind{argNumber}, func(t *turtle.Turtle, c *Command) error { return t.Right(c.num(0)) }},
	{"left", []argKind{argNumber}, func(t *turtle.Turtle, c *Command) error { return t.Left(c.num(0)) }},
	{"goto", []argKind{argNumber, argNumber}, func(t *turtle.Turtle, c *Command) error { return t.Goto(c.num(0), c.num(1)) }},
	{"setheading", []argKind{argNumber}, func(t *turtle.Turtle, c *Command) error { return t.SetHeadingDegrees(c.num(0)) }},
	{"penup", nil, func(t *turtle.Turtle, _ *Command) error { t.PenUp(); return nil }},
	{"pendown", nil, func(t *turtle.Turtle, _ *Command) error { t.PenDown(); return nil }},
	{"width", []argKind{argNumber}, func(t *turtle.Turtle, c *Command) error { t.SetWidth(c.num(0)); return nil }},
	{"shape", []argKind{argWord}, func(t *turtle.Turtle, c *Command) error { return t.SetShape(c.Words[0]) }},
	{"color", []argKind{argNumber, argNumber, argNumber, argNumber}, func(t *turtle.Turtle, c *Command) error {
		t.SetColor(c.num(0), c.num(1), c.num(2), c.num(3))
		return nil
	}},
	{"wrap", []argKind{argWord}, func(t *turtle.Turtle, c *Command) error {
		on, err := c.flag(0)
		if err == nil {
			t.SetWrap(on)
		}
		return err
	}},
	{"autoredraw", []argKind{argWord}, func(t *turtle.Turtle, c *Command) error {
		on, err := c.flag(0)
		if err == nil {
			t.SetAutoRedraw(on)
		}
		return err
	}},
	{"hideturtle", nil, func(t *turtle.Turtle, _ *Command) error { return t.HideTurtle() }},
	{"showturtle", nil, func(t *turtle.Turtle, _ *Command) error { return t.ShowTurtle() }},
	{"write", []argKind{argText}, func(t *turtle.Turtle, c *Command) error { return t.Write(c.Text) }},
	{"clear", nil, func(t *turtle.Turtle, _ *Command) error { return t.Clear() }},
	{"reset", nil, func(t *turtle.Turtle, _ *Command) error { return t.Reset() }},
	{"render", nil, func(t *turtle.Turtle, _ *Command) error { return t.Render() }},
	{"repeat", []argKind{argNumber, argBlock}, nil},
}

var aliases = map[string]string{
	"fd":     "forward",
	"bk":     "back",
	"rt":     "right",
	"lt":     "left",
	"setpos": "goto",
	"seth":   "setheading",
	"pu":     "penup",
	"pd":     "pendown",
	"ht":     "hideturtle",
	"st":     "showturtle",
}

var builtinIndex = func() map[string]*builtin {
	m := make(map[string]*builtin, len(builtins)+len(aliases))
	for i := range builtins {
		m[builtins[i].name] = &builtins[i]
	}
	for alias, name := range aliases {
		m[alias] = m[name]
	}
	return m
}()

// Names returns the command names understood by the interpreter, aliases
// included, in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtinIndex))
	for name := range builtinIndex {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// expr is a numeric argument, evaluated each time its command runs.
type expr interface {
	eval() float64
}

type literal float64

func (l literal) eval() float64 { return float64(l) }

type random struct{ lo, hi expr }

func (r random) eval() float64 {
	lo, hi := r.lo.eval(), r.hi.eval()
	if !fitsInt(lo) || !fitsInt(hi) {
		return math.NaN()
	}
	return float64(turtle.RandomInt(int(lo), int(hi)))
}

// fitsInt reports whether v converts to int without overflow.
// NaN and infinities do not.
func fitsInt(v float64) bool {
	return v >= math.MinInt && v < -math.MinInt
}

// Command is one compiled command.
type Command struct {
	Name  string // canonical name
	Line  int    // 1-based source line
	Words []string
	Text  string
	Body  []Command

	nums []expr
	fn   func(t *turtle.Turtle, c *Command) error
}

func (c *Command) num(i int) float64 { return c.nums[i].eval() }

func (c *Command) flag(i int) (bool, error) {
	switch c.Words[i] {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q, want on or off", ErrBadArgument, c.Words[i])
}

func (c *Command) errorf(format string, args ...any) error {
	return fmt.Errorf("script: line %d: %s: %w", c.Line, c.Name, fmt.Errorf(format, args...))
}

// count evaluates the repeat count of c. NaN and non-positive counts run
// the body zero times; fractions are truncated.
func (c *Command) count() (int, error) {
	n := c.num(0)
	switch {
	case math.IsNaN(n) || n < 1:
		return 0, nil
	case math.IsInf(n, 1) || n > math.MaxInt32:
		return 0, c.errorf("%w: repeat count %v", ErrBadArgument, n)
	}
	return int(n), nil
}

// exec runs a command other than repeat.
func (c *Command) exec(t *turtle.Turtle) error {
	if err := c.fn(t, c); err != nil {
		return c.errorf("%w", err)
	}
	return nil
}

// Program is a compiled script. It holds no turtle state and can be run
// any number of times.
type Program struct {
	Commands []Command
}

// Run executes p on t, stopping at the first error.
func (p *Program) Run(t *turtle.Turtle) error {
	return runBlock(t, p.Commands)
}

func runBlock(t *turtle.Turtle, cmds []Command) error {
	for i := range cmds {
		c := &cmds[i]
		if c.fn != nil {
			if err := c.exec(t); err != nil {
				return err
			}
			continue
		}
		n, err := c.count()
		if err != nil {
			return err
		}
		if err := turtle.Repeat(n, func(int) error { return runBlock(t, c.Body) }); err != nil {
			return err
		}
	}
	return nil
}

// Exec compiles src and runs it on t.
func Exec(t *turtle.Turtle, src string) error {
	p, err := Compile(src)
	if err != nil {
		return err
	}
	return p.Run(t)
}

// Compile parses src into a Program.
func Compile(src string) (*Program, error) {
	c := compiler{toks: tokenize(src), fold: cases.Fold()}
	cmds, err := c.block(0)
	if err != nil {
		return nil, err
	}
	return &Program{Commands: cmds}, nil
}

// Depth returns how many "[" in src are still open at its end, ignoring
// comments. A negative result means too many "]".
func Depth(src string) int {
	d := 0
	for _, tok := range tokenize(src) {
		switch tok.text {
		case "[":
			d++
		case "]":
			d--
		}
	}
	return d
}

type token struct {
	text string
	line int
}

func tokenize(src string) []token {
	var toks []token
	for i, line := range strings.Split(src, "\n") {
		if j := strings.IndexByte(line, '#'); j >= 0 {
			line = line[:j]
		}
		line = strings.NewReplacer("[", " [ ", "]", " ] ").Replace(line)
		for _, f := range strings.Fields(line) {
			toks = append(toks, token{text: f, line: i + 1})
		}
	}
	return toks
}

type compiler struct {
	toks []token
	pos  int
	fold cases.Caser
}

func (c *compiler) peek() (token, bool) {
	if c.pos >= len(c.toks) {
		return token{}, false
	}
	return c.toks[c.pos], true
}

func (c *compiler) lastLine() int {
	if len(c.toks) == 0 {
		return 1
	}
	return c.toks[len(c.toks)-1].line
}

// block parses commands until the end of input (depth 0) or a closing
// bracket (depth > 0), which it consumes.
func (c *compiler) block(depth int) ([]Command, error) {
	cmds := []Command{}
	for {
		tok, ok := c.peek()
		switch {
		case !ok && depth > 0:
			return nil, fmt.Errorf("script: line %d: %w: missing ]", c.lastLine(), ErrUnbalanced)
		case !ok:
			return cmds, nil
		case tok.text == "]" && depth == 0:
			return nil, fmt.Errorf("script: line %d: %w: unexpected ]", tok.line, ErrUnbalanced)
		case tok.text == "]":
			c.pos++
			return cmds, nil
		case tok.text == "[":
			return nil, fmt.Errorf("script: line %d: %w: unexpected [", tok.line, ErrUnbalanced)
		}

		cmd, err := c.command()
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
}

func (c *compiler) command() (Command, error) {
	tok := c.toks[c.pos]
	c.pos++
	b, ok := builtinIndex[c.fold.String(tok.text)]
	if !ok {
		return Command{}, fmt.Errorf("script: line %d: %w: %q", tok.line, ErrUnknownCommand, tok.text)
	}

	cmd := Command{Name: b.name, Line: tok.line, fn: b.run}
	for _, kind := range b.args {
		switch kind {
		case argNumber:
			e, err := c.number(cmd.Name, tok.line)
			if err != nil {
				return Command{}, err
			}
			cmd.nums = append(cmd.nums, e)
		case argWord:
			w, ok := c.peek()
			if !ok || w.text == "[" || w.text == "]" {
				return Command{}, missing(cmd.Name, tok.line)
			}
			c.pos++
			cmd.Words = append(cmd.Words, c.fold.String(w.text))
		case argText:
			cmd.Text = c.restOfLine(tok.line)
		case argBlock:
			open, ok := c.peek()
			if !ok || open.text != "[" {
				return Command{}, fmt.Errorf("script: line %d: %s: %w: want [", tok.line, cmd.Name, ErrMissingArgument)
			}
			c.pos++
			body, err := c.block(1)
			if err != nil {
				return Command{}, err
			}
			cmd.Body = body
		}
	}
	return cmd, nil
}

func (c *compiler) number(name string, line int) (expr, error) {
	tok, ok := c.peek()
	if !ok || tok.text == "[" || tok.text == "]" {
		return nil, missing(name, line)
	}
	c.pos++
	if c.fold.String(tok.text) != "random" {
		return literal(Number(tok.text)), nil
	}
	lo, err := c.number("random", tok.line)
	if err != nil {
		return nil, err
	}
	hi, err := c.number("random", tok.line)
	if err != nil {
		return nil, err
	}
	return random{lo: lo, hi: hi}, nil
}

// restOfLine joins the remaining tokens on line, stopping before a "]".
func (c *compiler) restOfLine(line int) string {
	var words []string
	for {
		tok, ok := c.peek()
		if !ok || tok.line != line || tok.text == "]" {
			break
		}
		words = append(words, tok.text)
		c.pos++
	}
	return strings.Join(words, " ")
}

func missing(name string, line int) error {
	return fmt.Errorf("script: line %d: %s: %w", line, name, ErrMissingArgument)
}
