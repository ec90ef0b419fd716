package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofractal/mandel"
)

// defaultOptions mirrors the flag defaults registered in mainCmd.
func defaultOptions() *options {
	return &options{
		width:    mandel.DefaultWidth,
		height:   mandel.DefaultHeight,
		maxIter:  mandel.DefaultMaxIter,
		workers:  0,
		palette:  mandel.DefaultPalette,
		fractal:  "mandelbrot",
		juliaC:   "-0.8+0.156i",
		zoom:     mandel.DefaultZoom,
		centerRe: mandel.DefaultCenterX,
		centerIm: mandel.DefaultCenterY,
	}
}

func TestSetupDefaults(t *testing.T) {
	r, view, err := setup(defaultOptions())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	if r.Width() != 800 || r.Height() != 600 {
		t.Errorf("renderer = %dx%d, want 800x600", r.Width(), r.Height())
	}
	if r.MaxIter() != 256 {
		t.Errorf("MaxIter() = %d, want 256", r.MaxIter())
	}
	if view != mandel.DefaultView() {
		t.Errorf("view = %+v, want the home view", view)
	}
}

func TestSetupValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*options)
		wantErr string
	}{
		{"zero width", func(o *options) { o.width = 0 }, "not positive"},
		{"negative height", func(o *options) { o.height = -1 }, "not positive"},
		{"zero max-iter", func(o *options) { o.maxIter = 0 }, "max-iter"},
		{"zero zoom", func(o *options) { o.zoom = 0 }, "zoom"},
		{"negative zoom", func(o *options) { o.zoom = -2 }, "zoom"},
		{"unknown fractal", func(o *options) { o.fractal = "burning-ship" }, "unknown fractal"},
		{"bad julia constant", func(o *options) { o.fractal = "julia"; o.juliaC = "spiral" }, "julia constant"},
		{"unknown landmark", func(o *options) { o.start = "atlantis" }, "unknown landmark"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions()
			tt.mutate(opts)

			_, _, err := setup(opts)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestSetupUnknownPalette(t *testing.T) {
	opts := defaultOptions()
	opts.palette = "neon"

	_, _, err := setup(opts)
	var notFound *mandel.PaletteNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want *PaletteNotFoundError", err)
	}
	if notFound.Name != "neon" {
		t.Errorf("Name = %q, want %q", notFound.Name, "neon")
	}
}

func TestSetupLandmark(t *testing.T) {
	opts := defaultOptions()
	opts.start = "seahorse"
	// The landmark replaces the individual view flags.
	opts.zoom = 7
	opts.centerRe = 3

	_, view, err := setup(opts)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	want, _ := mandel.Landmark("seahorse")
	if view != want {
		t.Errorf("view = %+v, want landmark %+v", view, want)
	}
}

func TestSetupVerbose(t *testing.T) {
	t.Cleanup(func() { mandel.SetLogger(nil) })

	opts := defaultOptions()
	opts.verbose = true

	if _, _, err := setup(opts); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if !mandel.Logger().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("verbose did not enable debug logging")
	}
}

func TestParseFractal(t *testing.T) {
	f, err := parseFractal("mandelbrot", "")
	if err != nil {
		t.Fatalf("parseFractal(mandelbrot): %v", err)
	}
	if _, ok := f.(mandel.Mandelbrot); !ok {
		t.Errorf("fractal = %T, want Mandelbrot", f)
	}

	f, err = parseFractal("julia", "-0.8+0.156i")
	if err != nil {
		t.Fatalf("parseFractal(julia): %v", err)
	}
	j, ok := f.(mandel.Julia)
	if !ok {
		t.Fatalf("fractal = %T, want Julia", f)
	}
	if j.C != complex(-0.8, 0.156) {
		t.Errorf("C = %v, want -0.8+0.156i", j.C)
	}
}

func TestRunRender(t *testing.T) {
	opts := defaultOptions()
	opts.width = 32
	opts.height = 24
	opts.maxIter = 16

	output := filepath.Join(t.TempDir(), "frame.png")
	if err := runRender(opts, output); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	info, err := os.Stat(output)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}
