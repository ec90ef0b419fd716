package mandel

import (
	"runtime"
	"time"

	"github.com/gofractal/mandel/internal/parallel"
)

// Default raster dimensions.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Renderer produces full-frame escape-time rasters. It holds the fixed
// raster geometry plus the fractal, palette, and iteration budget; the
// view to render is passed per frame.
//
// A Renderer is immutable after creation and safe for concurrent use,
// though the intended control flow is a single event loop rendering one
// frame at a time.
type Renderer struct {
	width   int
	height  int
	maxIter int
	workers int
	fractal Fractal
	palette Palette
}

// NewRenderer creates a renderer for width×height rasters. Both
// dimensions must be at least 1. Optional RendererOption arguments
// adjust the iteration cap, worker count, fractal, and palette:
//
//	r := mandel.NewRenderer(800, 600)
//	r := mandel.NewRenderer(800, 600, mandel.WithWorkers(1))
func NewRenderer(width, height int, opts ...RendererOption) *Renderer {
	options := defaultRendererOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if options.maxIter < 1 {
		options.maxIter = DefaultMaxIter
	}
	if options.workers <= 0 {
		options.workers = runtime.GOMAXPROCS(0)
	}
	if options.fractal == nil {
		options.fractal = Mandelbrot{}
	}
	if options.palette == nil {
		options.palette = Spectrum
	}

	return &Renderer{
		width:   width,
		height:  height,
		maxIter: options.maxIter,
		workers: options.workers,
		fractal: options.fractal,
		palette: options.palette,
	}
}

// Width returns the raster width in pixels.
func (r *Renderer) Width() int {
	return r.width
}

// Height returns the raster height in pixels.
func (r *Renderer) Height() int {
	return r.height
}

// MaxIter returns the escape-time iteration cap.
func (r *Renderer) MaxIter() int {
	return r.maxIter
}

// Workers returns the number of row workers used per render.
func (r *Renderer) Workers() int {
	return r.workers
}

// Render computes a fresh raster of the view v: every pixel is mapped
// to the plane, iterated, and colored. The function is total and pure
// with respect to v; its only effect is filling the returned pixmap.
//
// Rows are distributed over the configured workers. Workers write
// disjoint rows of the shared output and Render returns only after all
// of them finish, so the caller always receives a complete frame. The
// produced pixels are identical for every worker count.
func (r *Renderer) Render(v View) *Pixmap {
	start := time.Now()
	pm := NewPixmap(r.width, r.height)

	parallel.Rows(r.height, r.workers, func(y int) {
		r.renderRow(pm, v, y)
	})

	Logger().Debug("render: frame complete",
		"width", r.width,
		"height", r.height,
		"max_iter", r.maxIter,
		"workers", r.workers,
		"zoom", v.Zoom,
		"duration", time.Since(start))

	return pm
}

// renderRow evaluates one raster row. Each row touches a disjoint byte
// range of the pixmap, which is what makes the parallel fan-out in
// Render safe.
func (r *Renderer) renderRow(pm *Pixmap, v View, y int) {
	for x := 0; x < r.width; x++ {
		c := v.ScreenToComplex(float64(x), float64(y), r.width, r.height)
		n := r.fractal.Escape(c, r.maxIter)
		pm.SetPixel(x, y, r.palette(n, r.maxIter))
	}
}
