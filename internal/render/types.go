// Package render defines the drawing vocabulary the scene composer
// emits (shapes paired with solid or linear-gradient fills) and the
// surfaces that consume it.
package render

import "image/color"

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Polygon is an ordered point sequence, closed implicitly by the surface.
type Polygon []Point

// Disc is a filled circle.
type Disc struct {
	CX, CY, R float64
}

// Shape is one of Rect, Polygon, or Disc.
type Shape interface {
	shape()
}

func (Rect) shape()    {}
func (Polygon) shape() {}
func (Disc) shape()    {}

// Stop is one color stop along a linear gradient's axis.
// Pos is in [0,1].
type Stop struct {
	Pos   float64
	Color color.NRGBA
}

// Solid fills a shape with a single color.
type Solid struct {
	Color color.NRGBA
}

// LinearGradient fills a shape with colors interpolated along the axis
// from (X0,Y0) to (X1,Y1). Stops are ordered by position; coverage
// outside the stop range pads with the nearest stop's color.
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []Stop
}

// Fill is either a Solid or a LinearGradient.
type Fill interface {
	fill()
}

func (Solid) fill()          {}
func (LinearGradient) fill() {}

// Op is a single draw instruction. Ops are consumed in order, so
// earlier ops end up behind later ones.
type Op struct {
	Shape Shape
	Fill  Fill
}

// Surface rasterizes filled shapes. Implementations are not safe for
// concurrent use.
type Surface interface {
	FillRect(r Rect, f Fill)
	FillPolygon(p Polygon, f Fill)
	FillDisc(d Disc, f Fill)
}

// Play draws the ops onto the surface in order.
func Play(s Surface, ops []Op) {
	for _, op := range ops {
		switch shape := op.Shape.(type) {
		case Rect:
			s.FillRect(shape, op.Fill)
		case Polygon:
			s.FillPolygon(shape, op.Fill)
		case Disc:
			s.FillDisc(shape, op.Fill)
		}
	}
}
