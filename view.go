package mandel

// View parameters shared by every zoom level.
const (
	// BaseRange is the height, in complex-plane units, of the region a
	// view spans at Zoom == 1. The horizontal span is BaseRange scaled
	// by the raster's aspect ratio.
	BaseRange = 3.5

	// ZoomStep is the magnification factor applied by a single ZoomIn
	// or ZoomOut step.
	ZoomStep = 2.0

	// DefaultCenterX and DefaultCenterY place the whole set on screen,
	// with the main cardioid slightly right of center.
	DefaultCenterX = -0.5
	DefaultCenterY = 0.0

	// DefaultZoom is the starting magnification.
	DefaultZoom = 1.0
)

// View describes the region of the complex plane that a raster shows:
// a center point and a magnification. Zoom must stay strictly positive;
// the mutators preserve this by only ever multiplying or dividing by
// ZoomStep from a positive starting value.
//
// A View is plain data. The event loop owns the single live instance and
// mutates it in place between renders; Renderer and tests treat it as a
// value.
type View struct {
	CenterX float64
	CenterY float64
	Zoom    float64
}

// DefaultView returns the canonical whole-set view, centered at
// (-0.5, 0) with Zoom 1.
func DefaultView() View {
	return View{CenterX: DefaultCenterX, CenterY: DefaultCenterY, Zoom: DefaultZoom}
}

// ScreenToComplex maps the pixel coordinate (x, y) of a width×height
// raster to its point in the complex plane under v. The mapping is
// affine: the raster center lands exactly on (CenterX, CenterY), and the
// vertical extent of the raster covers BaseRange/Zoom plane units.
//
// x and y are accepted as float64 so sub-pixel positions (cursor
// coordinates, supersample offsets) map without truncation.
func (v View) ScreenToComplex(x, y float64, width, height int) complex128 {
	aspect := float64(width) / float64(height)
	span := BaseRange / v.Zoom

	re := v.CenterX + (x/float64(width)-0.5)*span*aspect
	im := v.CenterY + (y/float64(height)-0.5)*span
	return complex(re, im)
}

// Span returns the extent of the plane region v covers on a
// width×height raster, as (horizontal, vertical) plane units.
func (v View) Span(width, height int) (float64, float64) {
	vert := BaseRange / v.Zoom
	return vert * float64(width) / float64(height), vert
}

// Recenter moves the view center to (re, im) without changing Zoom.
func (v *View) Recenter(re, im float64) {
	v.CenterX = re
	v.CenterY = im
}

// ZoomIn magnifies by ZoomStep.
func (v *View) ZoomIn() {
	v.Zoom *= ZoomStep
}

// ZoomOut shrinks magnification by ZoomStep.
func (v *View) ZoomOut() {
	v.Zoom /= ZoomStep
}

// Reset restores the default view regardless of prior state.
func (v *View) Reset() {
	*v = DefaultView()
}
