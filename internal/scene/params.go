// Package scene sweeps per-layer parameters and turns palette plus
// randomness into an ordered draw-instruction list.
package scene

import (
	"fmt"
)

// Parameters configures one wallpaper. It is passed by value into
// every generation call and never mutated after construction.
type Parameters struct {
	Width  int
	Height int

	// Sun position and size as fractions of the image height.
	SunHeight float64
	SunSize   float64

	// FogHeight is carried for forward compatibility; the fog band is
	// currently derived from each silhouette's highest point instead.
	FogHeight    float64
	FogThickness float64

	MountainRangeCount    int
	MountainPositionStart float64
	MountainPositionEnd   float64
	MountainPeaksMin      int
	MountainPeaksMax      int
	// MountainRoughness is reserved for cliff-edge perturbation and has
	// no effect yet.
	MountainRoughness float64
	MountainPeakiness float64
}

// DefaultParameters returns the tuned 4K wallpaper configuration.
func DefaultParameters() Parameters {
	return Parameters{
		Width:  3840,
		Height: 2160,

		SunHeight: 0.85,
		SunSize:   0.1,

		FogHeight:    0.8,
		FogThickness: 1,

		MountainRangeCount:    8,
		MountainPositionStart: 0.15,
		MountainPositionEnd:   0.7,
		MountainPeaksMin:      9,
		MountainPeaksMax:      22,
		MountainRoughness:     0.2,
		MountainPeakiness:     4,
	}
}

// Validate rejects configurations the composer cannot generate from.
// Shape-defining parameters are never clamped; a bad value fails fast.
func (p Parameters) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", p.Width, p.Height)
	}
	if p.MountainRangeCount < 2 {
		return fmt.Errorf("mountain range count must be at least 2, got %d", p.MountainRangeCount)
	}
	if p.MountainPeaksMin < 1 {
		return fmt.Errorf("mountain peak count min must be at least 1, got %d", p.MountainPeaksMin)
	}
	if p.MountainPeaksMax < p.MountainPeaksMin {
		return fmt.Errorf("mountain peak count range %d..%d is inverted", p.MountainPeaksMin, p.MountainPeaksMax)
	}
	if p.SunHeight < 0 || p.SunHeight > 1 {
		return fmt.Errorf("sun height must be within [0,1], got %v", p.SunHeight)
	}
	if p.SunSize < 0 {
		return fmt.Errorf("sun size must be non-negative, got %v", p.SunSize)
	}
	if p.FogThickness < 0 {
		return fmt.Errorf("fog thickness must be non-negative, got %v", p.FogThickness)
	}
	return nil
}
