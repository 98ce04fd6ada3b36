package render

import (
	"image"
	"image/color"
)

// gradientSource adapts a LinearGradient into an image.Image so the
// standard library compositor can sample it per pixel through a
// coverage mask.
type gradientSource struct {
	g LinearGradient
	// precomputed axis vector and squared length
	dx, dy, lenSq float64
}

func newGradientSource(g LinearGradient) *gradientSource {
	dx := g.X1 - g.X0
	dy := g.Y1 - g.Y0
	return &gradientSource{g: g, dx: dx, dy: dy, lenSq: dx*dx + dy*dy}
}

func (s *gradientSource) ColorModel() color.Model { return color.NRGBAModel }

func (s *gradientSource) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (s *gradientSource) At(x, y int) color.Color {
	// Sample at the pixel center.
	t := s.project(float64(x)+0.5, float64(y)+0.5)
	return s.g.ColorAt(t)
}

// project maps a point onto the gradient axis as a clamped [0,1] offset.
func (s *gradientSource) project(x, y float64) float64 {
	if s.lenSq == 0 {
		return 0
	}
	t := ((x-s.g.X0)*s.dx + (y-s.g.Y0)*s.dy) / s.lenSq
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// ColorAt evaluates the gradient at offset t along its axis. Offsets
// before the first stop or past the last pad with that stop's color.
func (g LinearGradient) ColorAt(t float64) color.NRGBA {
	stops := g.Stops
	if len(stops) == 0 {
		return color.NRGBA{}
	}
	if t <= stops[0].Pos {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Pos {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if t > stops[i].Pos {
			continue
		}
		a, b := stops[i-1], stops[i]
		span := b.Pos - a.Pos
		if span == 0 {
			return b.Color
		}
		return lerpNRGBA(a.Color, b.Color, (t-a.Pos)/span)
	}
	return last.Color
}

func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: lerpU8(a.R, b.R, t),
		G: lerpU8(a.G, b.G, t),
		B: lerpU8(a.B, b.B, t),
		A: lerpU8(a.A, b.A, t),
	}
}

func lerpU8(a, b uint8, t float64) uint8 {
	v := float64(a)*(1-t) + float64(b)*t
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// source returns the image to composite for a fill.
func source(f Fill) image.Image {
	switch fill := f.(type) {
	case Solid:
		return image.NewUniform(fill.Color)
	case LinearGradient:
		return newGradientSource(fill)
	default:
		return image.Transparent
	}
}
