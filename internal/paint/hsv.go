// Package paint holds the HSV color model, multi-stop gradients, and
// the fixed palette the scene composer shades its layers from.
package paint

import (
	"image/color"
	"math"
)

// HSV is an immutable HSV color with straight (non-premultiplied)
// alpha. Hue is in integer degrees, conceptually 0-359 but not
// range-checked; Saturation, Value, and Alpha are in [0,1], not
// enforced. All transforms return new values.
type HSV struct {
	Hue        int
	Saturation float64
	Value      float64
	Alpha      float64
}

// NewHSV creates a fully opaque color.
func NewHSV(hue int, saturation, value float64) HSV {
	return HSV{Hue: hue, Saturation: saturation, Value: value, Alpha: 1}
}

// Darken scales value down by amount, so Darken(0) is identity and
// Darken(1) is black.
func (c HSV) Darken(amount float64) HSV {
	c.Value *= 1 - amount
	return c
}

// Desaturate scales saturation down by amount.
func (c HSV) Desaturate(amount float64) HSV {
	c.Saturation *= 1 - amount
	return c
}

// WithHue returns a copy with the hue replaced.
func (c HSV) WithHue(hue int) HSV {
	c.Hue = hue
	return c
}

// WithSaturation returns a copy with the saturation replaced.
func (c HSV) WithSaturation(saturation float64) HSV {
	c.Saturation = saturation
	return c
}

// WithValue returns a copy with the value replaced.
func (c HSV) WithValue(value float64) HSV {
	c.Value = value
	return c
}

// WithAlpha returns a copy with the alpha replaced.
func (c HSV) WithAlpha(alpha float64) HSV {
	c.Alpha = alpha
	return c
}

// RGB converts to RGB components in [0,1]. The hue angle is normalized
// by dividing by 359, so hue 359 lands at an angle of 1.0 rather than
// wrapping back to exactly 0. The palette was tuned against this
// mapping, so it is kept as is.
func (c HSV) RGB() (r, g, b float64) {
	return hsvToRGB(float64(c.Hue)/359, c.Saturation, c.Value)
}

// RGBA converts to RGBA components in [0,1].
func (c HSV) RGBA() (r, g, b, a float64) {
	r, g, b = c.RGB()
	return r, g, b, c.Alpha
}

// NRGBA converts to an 8-bit straight-alpha color.
func (c HSV) NRGBA() color.NRGBA {
	r, g, b, a := c.RGBA()
	return color.NRGBA{R: u8(r), G: u8(g), B: u8(b), A: u8(a)}
}

// hsvToRGB converts an HSV triple with the hue angle in [0,1] to RGB.
func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	if s == 0 {
		return v, v, v
	}
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	sector := int(i) % 6
	if sector < 0 {
		sector += 6
	}
	switch sector {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

func u8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
