// Package app runs the interactive viewer window.
//
// The window shows the current frame, listens for mouse clicks and the
// R key, and re-renders the whole raster synchronously whenever the
// view changes. Nothing is drawn incrementally: every interaction
// replaces the frame with a fresh render.
package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/gofractal/mandel"
)

// Config holds the startup settings for the viewer window.
type Config struct {
	// Title is the window title.
	Title string

	// Start is the view shown when the window opens. The R key returns
	// to the home view, not to Start.
	Start mandel.View

	// Renderer produces every frame. Its dimensions set the window
	// size. Required.
	Renderer *mandel.Renderer
}

// Run opens the viewer window and blocks until it is closed.
func Run(cfg Config) error {
	v := newViewer(cfg)

	ebiten.SetWindowSize(v.renderer.Width(), v.renderer.Height())
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(60)

	mandel.Logger().Info("viewer: window open",
		"width", v.renderer.Width(),
		"height", v.renderer.Height(),
		"max_iter", v.renderer.MaxIter(),
		"zoom", v.view.Zoom,
	)
	return ebiten.RunGame(v)
}

// viewer is the ebiten game backing the window. The view is the only
// mutable state; frame and img just mirror it.
type viewer struct {
	renderer *mandel.Renderer
	view     mandel.View

	frame *mandel.Pixmap
	img   *ebiten.Image
	dirty bool

	// rendering guards against re-entrant view changes while a frame
	// is being computed. Renders run synchronously inside Update, so
	// input arriving mid-render is dropped, not queued.
	rendering bool

	hudFace font.Face
}

var _ ebiten.Game = (*viewer)(nil)

func newViewer(cfg Config) *viewer {
	v := &viewer{
		renderer: cfg.Renderer,
		view:     cfg.Start,
		hudFace:  basicfont.Face7x13,
	}
	v.redraw()
	return v
}

// zoomView recenters the view on the plane point under the cursor and
// steps the zoom. This is the whole of the input-to-view mapping; the
// renderer sees only the resulting view.
func zoomView(v mandel.View, x, y, width, height int, in bool) mandel.View {
	p := v.ScreenToComplex(float64(x), float64(y), width, height)
	v.Recenter(real(p), imag(p))
	if in {
		v.ZoomIn()
	} else {
		v.ZoomOut()
	}
	return v
}

func (v *viewer) Update() error {
	if v.rendering {
		return nil
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		x, y := ebiten.CursorPosition()
		v.view = zoomView(v.view, x, y, v.renderer.Width(), v.renderer.Height(), true)
		v.redraw()
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		x, y := ebiten.CursorPosition()
		v.view = zoomView(v.view, x, y, v.renderer.Width(), v.renderer.Height(), false)
		v.redraw()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		v.view.Reset()
		v.redraw()
	}
	return nil
}

// redraw recomputes the frame for the current view.
func (v *viewer) redraw() {
	v.rendering = true
	v.frame = v.renderer.Render(v.view)
	v.dirty = true
	v.rendering = false
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.img == nil {
		v.img = ebiten.NewImage(v.renderer.Width(), v.renderer.Height())
	}
	if v.dirty {
		// Frames are fully opaque, so the straight-alpha bytes are
		// valid premultiplied input.
		v.img.WritePixels(v.frame.Data())
		v.dirty = false
	}

	screen.DrawImage(v.img, nil)
	v.drawHUD(screen)
}

func (v *viewer) drawHUD(screen *ebiten.Image) {
	lines := []string{
		"Left Click: Zoom In",
		"Right Click: Zoom Out",
		"R: Reset",
		fmt.Sprintf("Zoom: %.1fx", v.view.Zoom),
	}
	for i, line := range lines {
		text.Draw(screen, line, v.hudFace, 10, 20+20*i, color.White)
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.renderer.Width(), v.renderer.Height()
}
