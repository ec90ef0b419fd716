package mandel

import (
	"sort"
	"sync"
)

// A Palette maps an escape-time count to a color. n is the iteration
// count for a pixel and maxIter the cap it was computed under; n ==
// maxIter marks a point presumed inside the set. Palettes must be pure
// functions so renders stay deterministic.
type Palette func(n, maxIter int) RGBA

// DefaultPalette is the name of the palette used when none is chosen.
const DefaultPalette = "spectrum"

// Spectrum is the default palette. Hue sweeps the full color circle as
// the count grows, saturation is fixed at 0.8, and value ramps from 0
// to 1 over the first half of the count range, then holds at 1. Points
// presumed inside the set are black.
func Spectrum(n, maxIter int) RGBA {
	if n == maxIter {
		return Black
	}

	t := float64(n) / float64(maxIter)
	v := 1.0
	if t < 0.5 {
		v = 2 * t
	}
	return HSV(t*360, 0.8, v)
}

// Grayscale maps the count range linearly to brightness, black inside.
func Grayscale(n, maxIter int) RGBA {
	if n == maxIter {
		return Black
	}

	t := float64(n) / float64(maxIter)
	return RGB(t, t, t)
}

// fireStops are the gradient anchors for the Fire palette.
var fireStops = []RGBA{
	Black,
	RGB(0.8, 0, 0),
	RGB(1.0, 0.6, 0),
	White,
}

// Fire ramps black → red → yellow → white, black inside.
func Fire(n, maxIter int) RGBA {
	if n == maxIter {
		return Black
	}

	t := float64(n) / float64(maxIter)
	scaled := t * float64(len(fireStops)-1)
	i := int(scaled)
	if i >= len(fireStops)-1 {
		return fireStops[len(fireStops)-1]
	}
	return fireStops[i].Lerp(fireStops[i+1], scaled-float64(i))
}

// globalPalettes is the default registry.
var globalPalettes = &paletteRegistry{}

// paletteRegistry manages named palettes.
type paletteRegistry struct {
	mu      sync.RWMutex
	entries map[string]Palette
}

// RegisterPalette adds a palette to the global registry under the given
// name. Registering a name that already exists replaces the previous
// entry. The built-in palettes are registered at init; callers may add
// their own before constructing a Renderer.
func RegisterPalette(name string, p Palette) {
	globalPalettes.register(name, p)
}

// PaletteByName returns the palette registered under name.
// Unknown names yield a *PaletteNotFoundError.
func PaletteByName(name string) (Palette, error) {
	return globalPalettes.byName(name)
}

// Palettes returns all registered palette names, sorted.
func Palettes() []string {
	return globalPalettes.names()
}

func (r *paletteRegistry) register(name string, p Palette) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]Palette)
	}
	r.entries[name] = p
}

func (r *paletteRegistry) byName(name string) (Palette, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.entries[name]
	if !ok {
		return nil, &PaletteNotFoundError{Name: name}
	}
	return p, nil
}

func (r *paletteRegistry) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PaletteNotFoundError indicates a named palette is not registered.
type PaletteNotFoundError struct {
	Name string
}

func (e *PaletteNotFoundError) Error() string {
	return "mandel: palette not found: " + e.Name
}

// init registers the built-in palettes.
func init() {
	RegisterPalette("spectrum", Spectrum)
	RegisterPalette("grayscale", Grayscale)
	RegisterPalette("fire", Fire)
}
