package paint

// Palette is the fixed set of named gradients the scene is shaded
// from. It holds no external resources and is treated as read-only.
type Palette struct {
	MountainRed Gradient
	SkyBlue     Gradient
	SunYellow   Gradient
	Fog         Gradient
}

// Default is the tuned wallpaper palette.
var Default = Palette{
	MountainRed: NewGradient(NewHSV(347, 0.67, 0.65), NewHSV(14, 0.8, 0.95)),
	SkyBlue:     NewGradient(NewHSV(228, 0.85, 1), NewHSV(196, 1, 1)),
	SunYellow:   NewGradient(NewHSV(0, 0, 1), NewHSV(43, 1, 1)),
	// White fading to fully transparent.
	Fog: NewGradient(NewHSV(0, 0, 1), NewHSV(0, 0, 0).WithAlpha(0)),
}

// FogAtLevel derives a fog gradient for the given thickness by scaling
// every stop's alpha; hue, saturation, and value are untouched.
func (p Palette) FogAtLevel(thickness float64) Gradient {
	return p.Fog.Map(func(_ int, c HSV) HSV {
		return c.WithAlpha(c.Alpha * thickness)
	})
}

// Entry names one palette gradient, e.g. for swatch rendering.
type Entry struct {
	Name     string
	Gradient Gradient
}

// Entries lists the palette gradients in a stable order.
func (p Palette) Entries() []Entry {
	return []Entry{
		{Name: "mountain-red", Gradient: p.MountainRed},
		{Name: "sky-blue", Gradient: p.SkyBlue},
		{Name: "sun-yellow", Gradient: p.SunYellow},
		{Name: "fog", Gradient: p.Fog},
	}
}
