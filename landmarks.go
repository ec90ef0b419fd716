package mandel

import "sort"

// landmarks are classic regions of the Mandelbrot set, usable as
// starting views. Zooms are powers of ZoomStep from the default seed so
// zooming back out retraces whole steps.
var landmarks = map[string]View{
	// Seahorse valley: dense filaments with repeating seahorse curls.
	"seahorse": {CenterX: -0.75, CenterY: 0.1, Zoom: 32},

	// Elephant valley: a large bulb with trunk-like tendrils.
	"elephant": {CenterX: -1.80, CenterY: -0.06, Zoom: 32},

	// A small self-similar Mandelbrot copy with tight spiral arms.
	"spiral": {CenterX: -0.74275, CenterY: 0.13175, Zoom: 2048},

	// Threefold symmetric spiral structure.
	"triple": {CenterX: -0.7465, CenterY: 0.0965, Zoom: 1024},
}

// Landmark returns the named preset view. The second result reports
// whether the name is known.
func Landmark(name string) (View, bool) {
	v, ok := landmarks[name]
	return v, ok
}

// Landmarks returns all preset view names, sorted.
func Landmarks() []string {
	names := make([]string, 0, len(landmarks))
	for name := range landmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
