package mandel

// RendererOption configures a Renderer during creation.
// Use functional options to customize Renderer behavior.
//
// Example:
//
//	// Default: Mandelbrot, spectrum palette, 256 iterations
//	r := mandel.NewRenderer(800, 600)
//
//	// Julia set with a denser iteration budget
//	r := mandel.NewRenderer(800, 600,
//	    mandel.WithFractal(mandel.Julia{C: complex(-0.8, 0.156)}),
//	    mandel.WithMaxIter(512))
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	maxIter int
	workers int
	fractal Fractal
	palette Palette
}

// defaultRendererOptions returns the default renderer options.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		maxIter: DefaultMaxIter,
		workers: 0, // resolved to GOMAXPROCS in NewRenderer
		fractal: Mandelbrot{},
		palette: Spectrum,
	}
}

// WithMaxIter sets the escape-time iteration cap. Values below 1 fall
// back to DefaultMaxIter.
func WithMaxIter(n int) RendererOption {
	return func(o *rendererOptions) {
		o.maxIter = n
	}
}

// WithWorkers sets how many goroutines evaluate raster rows during a
// render. n <= 0 selects GOMAXPROCS; 1 renders serially. The worker
// count never changes the produced pixels, only how long a render
// takes.
func WithWorkers(n int) RendererOption {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// WithFractal sets the iterated map to render. nil falls back to
// Mandelbrot.
func WithFractal(f Fractal) RendererOption {
	return func(o *rendererOptions) {
		o.fractal = f
	}
}

// WithPalette sets the color mapping. nil falls back to Spectrum.
func WithPalette(p Palette) RendererOption {
	return func(o *rendererOptions) {
		o.palette = p
	}
}
