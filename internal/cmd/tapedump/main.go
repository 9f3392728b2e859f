// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Command tapedump parses SVG path data into a tape and shows the
// resulting instruction stream, or renders it to a PNG.
package main

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"time"

	"github.com/tdewolff/argp"
	"honnef.co/go/curve"
	"honnef.co/go/outline"
	"honnef.co/go/outline/encoding"
	"honnef.co/go/outline/gfx"
	"honnef.co/go/outline/renderer"
	"honnef.co/go/outline/svgpath"
)

type Dump struct {
	Path      string `short:"d" desc:"SVG path data"`
	Reverse   bool   `short:"r" desc:"Also dump the backward iteration"`
	SVG       bool   `short:"s" desc:"Print the path back as SVG path data"`
	Close     bool   `short:"c" desc:"Close open contours"`
	Transform string `short:"t" desc:"Affine transform as 'a b c d e f'"`
	Verbose   bool   `short:"v" desc:"Be verbose"`
}

type Render struct {
	Path      string  `short:"d" desc:"SVG path data"`
	Output    string  `short:"o" default:"out.png" desc:"Output PNG file"`
	Width     int     `default:"256" desc:"Image width"`
	Height    int     `default:"256" desc:"Image height"`
	Rule      string  `default:"non_zero" desc:"Winding rule: non_zero, odd, zero or even"`
	Color     string  `default:"#000000" desc:"Fill or stroke color"`
	Stroke    float64 `desc:"Stroke width; zero fills the path"`
	Transform string  `short:"t" desc:"Affine transform as 'a b c d e f'"`
	Tolerance float64 `default:"0.1" desc:"Flattening tolerance in pixels"`
	Verbose   bool    `short:"v" desc:"Be verbose"`
}

func main() {
	root := argp.NewCmd(&Dump{}, "Inspect path tapes built from SVG path data")
	root.AddCmd(&Render{}, "render", "Render SVG path data to a PNG")
	root.Parse()
	root.PrintHelp()
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	outline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// load parses d and applies the transform and contour closing options.
func load(d, xf string, closeAll bool) (*encoding.Tape, error) {
	tape, err := svgpath.ParseTape(d)
	if err != nil {
		return nil, err
	}
	t, err := parseTransform(xf)
	if err != nil {
		return nil, err
	}
	if !t.IsIdentity() || closeAll {
		var out encoding.Tape
		var sink encoding.InputPath = &out
		if closeAll {
			sink = &encoding.CloseContours{Sink: sink, All: true}
		}
		tape.Iterate(encoding.NewTransformFilter(t, sink))
		tape = &out
	}
	return tape, nil
}

func (cmd *Dump) Run() error {
	setupLogging(cmd.Verbose)
	if cmd.Path == "" {
		return argp.ShowUsage
	}
	tape, err := load(cmd.Path, cmd.Transform, cmd.Close)
	if err != nil {
		return err
	}
	outline.Logger().Debug("parsed path", "instructions", tape.Len(), "scalars", len(tape.Data))

	fmt.Println("forward:")
	dumpTape(os.Stdout, tape)
	if cmd.Reverse {
		var rev encoding.Tape
		tape.RIterate(&rev)
		fmt.Println("backward:")
		dumpTape(os.Stdout, &rev)
	}
	if cmd.SVG {
		fmt.Println(svgpath.Print(tape))
	}
	return nil
}

func (cmd *Render) Run() error {
	setupLogging(cmd.Verbose)
	if cmd.Path == "" {
		return argp.ShowUsage
	}
	if cmd.Width <= 0 || cmd.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", cmd.Width, cmd.Height)
	}
	tape, err := load(cmd.Path, cmd.Transform, false)
	if err != nil {
		return err
	}
	rule, err := parseRule(cmd.Rule)
	if err != nil {
		return err
	}
	c, err := parseColor(cmd.Color)
	if err != nil {
		return err
	}

	cfg := outline.DefaultConfig()
	cfg.Tolerance = cmd.Tolerance
	b := outline.NewBuilder(cfg)
	b.Fill(gfx.NonZero, &gfx.Rect{Width: float32(cmd.Width), Height: float32(cmd.Height)}, gfx.NewSolidPaint(gfx.RGB8(255, 255, 255)))
	shape := &gfx.Path{Tape: tape}
	if cmd.Stroke > 0 {
		style := curve.Stroke{
			Width:      cmd.Stroke,
			Join:       curve.RoundJoin,
			MiterLimit: 4,
			StartCap:   curve.RoundCap,
			EndCap:     curve.RoundCap,
		}
		b.Stroke(style, shape, gfx.NewSolidPaint(c))
	} else {
		b.Fill(rule, shape, gfx.NewSolidPaint(c))
	}
	scene := b.Finish()

	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, cmd.Width, cmd.Height))
	renderer.NewRenderer(img, cfg).Render(scene)
	elapsed := time.Since(start)

	f, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", cmd.Output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	outline.Logger().Info("rendered frame",
		"output", cmd.Output,
		"width", cmd.Width,
		"height", cmd.Height,
		"elements", len(scene.Elements()),
		"estimated_lines", b.Estimate(1),
		"duration", elapsed)
	return nil
}
