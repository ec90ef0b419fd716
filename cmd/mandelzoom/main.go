// Command mandelzoom is an interactive Mandelbrot set viewer.
//
// Left click recenters on the cursor and zooms in, right click zooms
// out, and R returns to the home view. The render subcommand writes a
// single frame to a PNG file instead of opening a window.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gofractal/mandel"
	"github.com/gofractal/mandel/internal/app"
)

type options struct {
	width    int
	height   int
	maxIter  int
	workers  int
	palette  string
	fractal  string
	juliaC   string
	start    string
	zoom     float64
	centerRe float64
	centerIm float64
	verbose  bool
}

func mainCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "mandelzoom",
		Short: "Interactive Mandelbrot set viewer",
		Long: `Mandelzoom opens a window on the Mandelbrot set.

Left click recenters on the cursor and doubles the zoom, right click
recenters and halves it, and R returns to the home view. Every view
change recomputes the full frame.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Usage has already been printed if the flags were
			// obviously wrong.
			cmd.SilenceUsage = true
			return runViewer(opts)
		},
	}

	fs := cmd.PersistentFlags()
	fs.IntVar(&opts.width, "width", mandel.DefaultWidth, "raster width in pixels")
	fs.IntVar(&opts.height, "height", mandel.DefaultHeight, "raster height in pixels")
	fs.IntVar(&opts.maxIter, "max-iter", mandel.DefaultMaxIter, "iteration budget per pixel")
	fs.IntVar(&opts.workers, "workers", 0, "render goroutines, 0 means one per CPU")
	fs.StringVar(&opts.palette, "palette", mandel.DefaultPalette,
		"color palette: "+strings.Join(mandel.Palettes(), ", "))
	fs.StringVar(&opts.fractal, "fractal", "mandelbrot", "fractal to draw: mandelbrot or julia")
	fs.StringVar(&opts.juliaC, "julia-c", "-0.8+0.156i", "julia constant, used with --fractal=julia")
	fs.StringVar(&opts.start, "start", "",
		"start at a named landmark: "+strings.Join(mandel.Landmarks(), ", "))
	fs.Float64Var(&opts.zoom, "zoom", mandel.DefaultZoom, "starting zoom factor")
	fs.Float64Var(&opts.centerRe, "center-re", mandel.DefaultCenterX, "starting center, real part")
	fs.Float64Var(&opts.centerIm, "center-im", mandel.DefaultCenterY, "starting center, imaginary part")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log render diagnostics to stderr")

	cmd.AddCommand(renderCmd(opts))

	return cmd
}

func renderCmd(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one frame to a PNG file",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runRender(opts, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "mandelbrot.png", "output file")

	return cmd
}

// setup validates the flags and builds the renderer and starting view
// shared by the viewer and render commands.
func setup(opts *options) (*mandel.Renderer, mandel.View, error) {
	if opts.verbose {
		mandel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if opts.width < 1 || opts.height < 1 {
		return nil, mandel.View{}, fmt.Errorf("raster size %dx%d is not positive", opts.width, opts.height)
	}
	if opts.maxIter < 1 {
		return nil, mandel.View{}, fmt.Errorf("max-iter must be at least 1, got %d", opts.maxIter)
	}
	if opts.zoom <= 0 {
		return nil, mandel.View{}, fmt.Errorf("zoom must be positive, got %v", opts.zoom)
	}

	palette, err := mandel.PaletteByName(opts.palette)
	if err != nil {
		return nil, mandel.View{}, err
	}

	fractal, err := parseFractal(opts.fractal, opts.juliaC)
	if err != nil {
		return nil, mandel.View{}, err
	}

	view := mandel.View{CenterX: opts.centerRe, CenterY: opts.centerIm, Zoom: opts.zoom}
	if opts.start != "" {
		// A landmark replaces the whole starting view.
		lv, ok := mandel.Landmark(opts.start)
		if !ok {
			return nil, mandel.View{}, fmt.Errorf("unknown landmark %q (have: %s)",
				opts.start, strings.Join(mandel.Landmarks(), ", "))
		}
		view = lv
	}

	r := mandel.NewRenderer(opts.width, opts.height,
		mandel.WithMaxIter(opts.maxIter),
		mandel.WithWorkers(opts.workers),
		mandel.WithFractal(fractal),
		mandel.WithPalette(palette),
	)
	return r, view, nil
}

func parseFractal(name, juliaC string) (mandel.Fractal, error) {
	switch name {
	case "mandelbrot":
		return mandel.Mandelbrot{}, nil
	case "julia":
		c, err := strconv.ParseComplex(juliaC, 128)
		if err != nil {
			return nil, fmt.Errorf("parse julia constant %q: %w", juliaC, err)
		}
		return mandel.Julia{C: c}, nil
	default:
		return nil, fmt.Errorf("unknown fractal %q (have: mandelbrot, julia)", name)
	}
}

func runViewer(opts *options) error {
	r, view, err := setup(opts)
	if err != nil {
		return err
	}

	return app.Run(app.Config{
		Title:    "Mandelbrot Zoom",
		Start:    view,
		Renderer: r,
	})
}

func runRender(opts *options, output string) error {
	r, view, err := setup(opts)
	if err != nil {
		return err
	}

	pm := r.Render(view)
	if err := pm.SavePNG(output); err != nil {
		return fmt.Errorf("save %s: %w", output, err)
	}

	fmt.Printf("Wrote %s (%dx%d, zoom %.1fx)\n", output, pm.Width(), pm.Height(), view.Zoom)
	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// The error has already been printed; no need to print again.
		os.Exit(1)
	}
}
