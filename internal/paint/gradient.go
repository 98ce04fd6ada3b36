package paint

import (
	"github.com/MeKo-Tech/ridgeline/internal/render"
)

// Gradient is an ordered, non-empty sequence of HSV stops. The order
// defines the interpolation axis. Gradients are immutable; Map returns
// a new Gradient and never touches the source.
type Gradient struct {
	stops []HSV
}

// NewGradient builds a gradient from its stops in order.
func NewGradient(stops ...HSV) Gradient {
	s := make([]HSV, len(stops))
	copy(s, stops)
	return Gradient{stops: s}
}

// Len reports the number of stops.
func (g Gradient) Len() int {
	return len(g.stops)
}

// At returns the stop at index i.
func (g Gradient) At(i int) HSV {
	return g.stops[i]
}

// Start returns the first stop.
func (g Gradient) Start() HSV {
	return g.stops[0]
}

// End returns the last stop.
func (g Gradient) End() HSV {
	return g.stops[len(g.stops)-1]
}

// Map applies mapper to every stop and returns the resulting gradient,
// preserving stop count and order.
func (g Gradient) Map(mapper func(i int, c HSV) HSV) Gradient {
	stops := make([]HSV, len(g.stops))
	for i, c := range g.stops {
		stops[i] = mapper(i, c)
	}
	return Gradient{stops: stops}
}

// Linear converts the gradient into a renderer-consumable linear
// gradient along the axis (x0,y0)->(x1,y1). Stops are placed at i/len,
// so the last stop sits short of the axis end and the renderer pads the
// remainder with its color. The visual look depends on this placement;
// do not change it to i/(len-1).
func (g Gradient) Linear(x0, y0, x1, y1 float64) render.LinearGradient {
	out := render.LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1}
	out.Stops = make([]render.Stop, len(g.stops))
	for i, c := range g.stops {
		out.Stops[i] = render.Stop{
			Pos:   float64(i) / float64(len(g.stops)),
			Color: c.NRGBA(),
		}
	}
	return out
}
