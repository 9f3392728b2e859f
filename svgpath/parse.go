// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package svgpath converts between SVG path data and input paths.
package svgpath

import (
	"errors"
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
	"honnef.co/go/outline/encoding"
	"honnef.co/go/outline/jmath"
)

var ErrSyntax = errors.New("invalid path data")

type SyntaxError struct {
	// Byte offset into the path data.
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("svgpath: %s at offset %d", e.Msg, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Parse sends the path data d to sink. Arcs become rational quadratic
// segments, and arcs spanning more than half of their ellipse become two
// of them. Path data without contours is valid.
//
// On error, sink has received everything before the offending command.
func Parse(d string, sink encoding.InputPath) error {
	p := parser{d: []byte(d), sink: sink}
	return p.parse()
}

// ParseTape parses d into a new tape.
func ParseTape(d string) (*encoding.Tape, error) {
	var t encoding.Tape
	if err := Parse(d, &t); err != nil {
		return nil, fmt.Errorf("parsing path data: %w", err)
	}
	return &t, nil
}

type parser struct {
	d    []byte
	pos  int
	sink encoding.InputPath

	begun          bool
	curX, curY     float64
	startX, startY float64
	// Last control point, for reflection by S and T.
	ctrlX, ctrlY float64
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skip() {
	for p.pos < len(p.d) {
		switch p.d[p.pos] {
		case ' ', ',', '\n', '\r', '\t', '\f':
			p.pos++
		default:
			return
		}
	}
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'Z', 'z', 'L', 'l', 'H', 'h', 'V', 'v',
		'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a':
		return true
	default:
		return false
	}
}

func (p *parser) number() (float64, error) {
	p.skip()
	f, n := strconv.ParseFloat(p.d[p.pos:])
	if n == 0 {
		if p.pos == len(p.d) {
			return 0, p.errorf("unexpected end of path data")
		}
		return 0, p.errorf("expected number, found %q", p.d[p.pos])
	}
	p.pos += n
	return f, nil
}

func (p *parser) flag() (bool, error) {
	p.skip()
	if p.pos < len(p.d) {
		switch p.d[p.pos] {
		case '0':
			p.pos++
			return false, nil
		case '1':
			p.pos++
			return true, nil
		}
	}
	return false, p.errorf("expected flag")
}

func (p *parser) numbers(dst []float64) error {
	for i := range dst {
		var err error
		if dst[i], err = p.number(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) parse() error {
	p.skip()
	if p.pos == len(p.d) {
		return nil
	}
	if c := p.d[p.pos]; c != 'M' && c != 'm' {
		return p.errorf("path data must begin with a moveto, found %q", c)
	}

	var cmd, prev byte
	for {
		p.skip()
		if p.pos == len(p.d) {
			break
		}
		if c := p.d[p.pos]; isCommand(c) {
			cmd = c
			p.pos++
		} else if cmd == 'Z' || cmd == 'z' {
			return p.errorf("expected command, found %q", c)
		}
		if err := p.command(cmd, prev); err != nil {
			return err
		}
		prev = cmd
		// Coordinates following a moveto are implicit linetos.
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
	}
	p.ensureEnded()
	return nil
}

func (p *parser) command(cmd, prev byte) error {
	var a [7]float64
	rel := cmd >= 'a'
	ox, oy := 0.0, 0.0
	if rel {
		ox, oy = p.curX, p.curY
	}

	switch cmd {
	case 'M', 'm':
		if err := p.numbers(a[:2]); err != nil {
			return err
		}
		p.moveTo(a[0]+ox, a[1]+oy)
	case 'Z', 'z':
		p.closePath()
	case 'L', 'l':
		if err := p.numbers(a[:2]); err != nil {
			return err
		}
		p.lineTo(a[0]+ox, a[1]+oy)
	case 'H', 'h':
		if err := p.numbers(a[:1]); err != nil {
			return err
		}
		p.lineTo(a[0]+ox, p.curY)
	case 'V', 'v':
		if err := p.numbers(a[:1]); err != nil {
			return err
		}
		p.lineTo(p.curX, a[0]+oy)
	case 'C', 'c':
		if err := p.numbers(a[:6]); err != nil {
			return err
		}
		p.cubicTo(a[0]+ox, a[1]+oy, a[2]+ox, a[3]+oy, a[4]+ox, a[5]+oy)
	case 'S', 's':
		if err := p.numbers(a[:4]); err != nil {
			return err
		}
		x1, y1 := p.reflect(prev, 'C', 'S')
		p.cubicTo(x1, y1, a[0]+ox, a[1]+oy, a[2]+ox, a[3]+oy)
	case 'Q', 'q':
		if err := p.numbers(a[:4]); err != nil {
			return err
		}
		p.quadTo(a[0]+ox, a[1]+oy, a[2]+ox, a[3]+oy)
	case 'T', 't':
		if err := p.numbers(a[:2]); err != nil {
			return err
		}
		x1, y1 := p.reflect(prev, 'Q', 'T')
		p.quadTo(x1, y1, a[0]+ox, a[1]+oy)
	case 'A', 'a':
		if err := p.numbers(a[:3]); err != nil {
			return err
		}
		large, err := p.flag()
		if err != nil {
			return err
		}
		sweep, err := p.flag()
		if err != nil {
			return err
		}
		if err := p.numbers(a[3:5]); err != nil {
			return err
		}
		p.arcTo(a[0], a[1], a[2], large, sweep, a[3]+ox, a[4]+oy)
	default:
		return p.errorf("expected command")
	}
	return nil
}

// reflect returns the control point implied by a smooth curve command
// following prev.
func (p *parser) reflect(prev byte, curve, smooth byte) (float64, float64) {
	switch prev {
	case curve, curve + 'a' - 'A', smooth, smooth + 'a' - 'A':
		return 2*p.curX - p.ctrlX, 2*p.curY - p.ctrlY
	default:
		return p.curX, p.curY
	}
}

func f32(v float64) float32 { return float32(v) }

func (p *parser) setCurrent(x, y float64) {
	p.curX, p.curY = x, y
	p.ctrlX, p.ctrlY = x, y
}

func (p *parser) ensureBegun() {
	if !p.begun {
		p.sink.BeginContour(f32(p.curX), f32(p.curY))
		p.startX, p.startY = p.curX, p.curY
		p.begun = true
	}
}

func (p *parser) ensureEnded() {
	if p.begun {
		p.sink.EndOpenContour(f32(p.curX), f32(p.curY))
		p.begun = false
	}
}

func (p *parser) moveTo(x, y float64) {
	p.ensureEnded()
	p.setCurrent(x, y)
	p.ensureBegun()
}

func (p *parser) closePath() {
	p.ensureBegun()
	p.sink.EndClosedContour(f32(p.curX), f32(p.curY))
	p.begun = false
	p.setCurrent(p.startX, p.startY)
}

func (p *parser) lineTo(x, y float64) {
	p.ensureBegun()
	p.sink.LinearSegment(f32(p.curX), f32(p.curY), f32(x), f32(y))
	p.setCurrent(x, y)
}

func (p *parser) quadTo(x1, y1, x2, y2 float64) {
	p.ensureBegun()
	p.sink.QuadraticSegment(f32(p.curX), f32(p.curY), f32(x1), f32(y1), f32(x2), f32(y2))
	p.setCurrent(x2, y2)
	p.ctrlX, p.ctrlY = x1, y1
}

func (p *parser) cubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.ensureBegun()
	p.sink.CubicSegment(f32(p.curX), f32(p.curY), f32(x1), f32(y1), f32(x2), f32(y2), f32(x3), f32(y3))
	p.setCurrent(x3, y3)
	p.ctrlX, p.ctrlY = x2, y2
}

func (p *parser) rationalQuadTo(x1, y1, w1, x2, y2 float64) {
	p.sink.RationalQuadraticSegment(f32(p.curX), f32(p.curY), f32(x1), f32(y1), f32(w1), f32(x2), f32(y2))
	p.setCurrent(x2, y2)
}

func almostZero(v float64) bool { return math.Abs(v) < 1e-12 }

// arcTo solves for the arc on the unit circle, after undoing the radii
// and rotation, and maps the resulting rational quadratic back.
func (p *parser) arcTo(rx, ry, rotDeg float64, large, sweep bool, x2, y2 float64) {
	p.ensureBegun()
	x0, y0 := p.curX, p.curY
	rx, ry = math.Abs(rx), math.Abs(ry)
	if almostZero(rx) || almostZero(ry) {
		p.lineTo(x2, y2)
		return
	}
	sin, cos := math.Sincos(jmath.Rad(rotDeg))
	toUnit := func(x, y float64) (float64, float64) {
		return (cos*x + sin*y) / rx, (-sin*x + cos*y) / ry
	}
	fromUnit := func(x, y float64) (float64, float64) {
		x, y = x*rx, y*ry
		return cos*x - sin*y, sin*x + cos*y
	}

	q0x, q0y := toUnit(x0, y0)
	q2x, q2y := toUnit(x2, y2)
	// Perpendicular to the chord.
	px, py := -(q2y - q0y), q2x-q0x
	el2 := px*px + py*py
	if almostZero(el2) {
		p.lineTo(x2, y2)
		return
	}
	mx, my := (q0x+q2x)/2, (q0y+q2y)/2
	el := math.Sqrt(el2)
	invEl := 1 / el

	// The center, the midpoint of the chord and an endpoint form a right
	// triangle whose hypotenuse is the radius. Chords longer than the
	// diameter grow the circle until the midpoint is the center.
	radius, invRadius, offset := 1.0, 1.0, 0.0
	if el2 > 4 {
		radius = el / 2
		invRadius = 2 * invEl
	} else {
		offset = math.Sqrt(4-el2) / 2
	}
	sign := -1.0
	if large != sweep {
		sign = 1
	}
	cx := mx + sign*offset*invEl*px
	cy := my + sign*offset*invEl*py

	// The middle weight is the cosine of half the small arc's angle.
	w1 := math.Abs(((q0x-cx)*px + (q0y-cy)*py) * invEl * invRadius)
	k := -sign * radius * invEl
	x1, y1 := fromUnit(k*px+cx*w1, k*py+cy*w1)

	if !large {
		p.rationalQuadTo(x1, y1, w1, x2, y2)
		return
	}

	// The large arc is the small arc's control point negated. Split it in
	// half so that both weights are positive.
	x1, y1, w1 = -x1, -y1, -w1
	m := (1 + w1) / 2
	if m <= 0 {
		p.lineTo(x2, y2)
		return
	}
	midX := (x0 + 2*x1 + x2) / 4 / m
	midY := (y0 + 2*y1 + y2) / 4 / m
	s := 1 / math.Sqrt(m)
	w := math.Sqrt(m)
	p.rationalQuadTo((x0+x1)/2*s, (y0+y1)/2*s, w, midX, midY)
	p.rationalQuadTo((x1+x2)/2*s, (y1+y2)/2*s, w, x2, y2)
}
