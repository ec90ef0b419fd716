// Package mandel renders the Mandelbrot set and related escape-time
// fractals to fixed-resolution rasters.
//
// # Overview
//
// mandel is a small pure-Go fractal rendering library plus an
// interactive viewer. The library computes per-pixel escape-time
// iteration counts and maps them to colors; the viewer (cmd/mandelzoom)
// adds a window, click-to-zoom navigation, and a HUD on top of it.
//
// # Quick Start
//
//	import "github.com/gofractal/mandel"
//
//	// Render the whole set at the default view
//	r := mandel.NewRenderer(800, 600)
//	pm := r.Render(mandel.DefaultView())
//
//	// Save to PNG
//	if err := pm.SavePNG("mandelbrot.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Architecture
//
// The library is organized around four small pieces:
//   - View: the affine pixel-to-plane transform (center point + zoom)
//   - Fractal: escape-time evaluators (Mandelbrot, Julia)
//   - Palette: count-to-color mappings behind a named registry
//   - Renderer: full-frame composition of the three, with parallel
//     row evaluation
//
// Renders are synchronous and total: every call produces a complete,
// freshly allocated Pixmap. Parallelism is an internal detail; the
// produced pixels are identical for every worker count.
//
// # Coordinate System
//
// Rasters use standard computer graphics coordinates: origin (0,0) at
// top-left, x increasing right, y increasing down. The plane's
// imaginary axis therefore grows downward on screen. The set is
// symmetric about the real axis, so the rendered image looks the same
// either way.
package mandel

// Version is the current version of the library.
const Version = "0.1.0"
