package mandel

// DefaultMaxIter is the iteration cap used when none is configured.
// Points that survive this many iterations are treated as members of
// the set.
const DefaultMaxIter = 256

// escapeBound is the squared modulus beyond which an orbit has
// provably diverged (|z| > 2).
const escapeBound = 4.0

// EscapeTime iterates z ← z² + c from z = 0 and returns the number of
// steps taken before |z|² exceeds the escape bound, capped at maxIter.
// A result of maxIter means c is presumed inside the Mandelbrot set;
// with bounded iteration that is an approximation, not a proof of
// membership.
//
// The function is deterministic and total over all inputs.
func EscapeTime(c complex128, maxIter int) int {
	cr, ci := real(c), imag(c)

	var zr, zi float64
	n := 0
	for zr*zr+zi*zi <= escapeBound && n < maxIter {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		n++
	}
	return n
}

// A Fractal assigns an escape-time iteration count to each point of the
// complex plane. Implementations must be pure: the same point and cap
// always yield the same count, with no side effects.
type Fractal interface {
	// Escape returns a count in [0, maxIter] for the plane point p.
	// maxIter means p is presumed to belong to the set.
	Escape(p complex128, maxIter int) int
}

// Mandelbrot is the classic escape-time map: z ← z² + p from z = 0.
type Mandelbrot struct{}

// Escape implements Fractal.
func (Mandelbrot) Escape(p complex128, maxIter int) int {
	return EscapeTime(p, maxIter)
}

// Julia is the quadratic Julia map for a fixed parameter C:
// z ← z² + C, starting from z = p.
type Julia struct {
	C complex128
}

// Escape implements Fractal.
func (j Julia) Escape(p complex128, maxIter int) int {
	cr, ci := real(j.C), imag(j.C)
	zr, zi := real(p), imag(p)

	n := 0
	for zr*zr+zi*zi <= escapeBound && n < maxIter {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		n++
	}
	return n
}

var (
	_ Fractal = Mandelbrot{}
	_ Fractal = Julia{}
)
