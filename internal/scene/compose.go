package scene

import (
	"fmt"
	"image/color"

	"github.com/MeKo-Tech/ridgeline/internal/interp"
	"github.com/MeKo-Tech/ridgeline/internal/paint"
	"github.com/MeKo-Tech/ridgeline/internal/render"
	"github.com/MeKo-Tech/ridgeline/internal/terrain"
)

// sunXFraction places the sun horizontally; the composition is tuned
// around the upper-right corner.
const sunXFraction = 0.85

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Compose generates the full scene as an ordered draw list: sky, sun,
// then each mountain layer back-to-front with its fog overlay. A
// failure in any layer aborts the whole scene.
func Compose(p Parameters, pal paint.Palette, src terrain.Source) ([]render.Op, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene parameters: %w", err)
	}

	w, h := float64(p.Width), float64(p.Height)
	count := p.MountainRangeCount

	ops := make([]render.Op, 0, 2+2*count)
	ops = append(ops, render.Op{
		Shape: render.Rect{W: w, H: h},
		Fill:  pal.SkyBlue.Linear(0, 0, w, h),
	})
	ops = append(ops, render.Op{
		Shape: render.Disc{CX: w * sunXFraction, CY: h * (1 - p.SunHeight), R: h * p.SunSize},
		Fill:  render.Solid{Color: white},
	})

	for i := 0; i < count; i++ {
		// The band sweep divides by count (not count-1) and scales the
		// near end of the start fraction by the peakiness parameter,
		// which compresses the far layers toward the horizon.
		band := terrain.Band{
			Min: interp.SampleLinear(p.MountainPositionStart, p.MountainPositionEnd, i, count),
			Max: interp.SampleLinear(p.MountainPositionStart*p.MountainPeakiness, p.MountainPositionEnd, i+1, count),
		}
		peakiness := interp.SampleLinear(0.4, 0.1, i, count-1)

		silhouette, err := terrain.GeneratePeaks(src,
			terrain.PeakRange{Min: p.MountainPeaksMin, Max: p.MountainPeaksMax},
			band, p.Width, p.Height, peakiness, p.MountainRoughness)
		if err != nil {
			return nil, fmt.Errorf("mountain layer %d: %w", i, err)
		}

		// Haze sweep: the nearest layer ends up darkest and fully
		// desaturated, masking the far layers less. Confirmed against
		// reference renders; do not invert the index direction.
		darken := interp.SampleLinear(0, 0.85, i, count-1)
		desaturate := interp.SampleLinear(0, 1, i, count-1)
		gradient := pal.MountainRed.Map(func(_ int, c paint.HSV) paint.HSV {
			return c.Darken(darken).Desaturate(desaturate)
		})
		ops = append(ops, render.Op{
			Shape: silhouette,
			Fill:  gradient.Linear(0, 0, w, h),
		})

		// Low-altitude haze over the same silhouette: the fade axis
		// runs from the image bottom to half the ridge top's distance
		// from the bottom, so the fog thins out above the ridgeline.
		fogTop := (h - topOf(silhouette)) / 2
		thickness := interp.SampleLinear(p.FogThickness, p.FogThickness/4, i, count-1)
		ops = append(ops, render.Op{
			Shape: silhouette,
			Fill:  pal.FogAtLevel(thickness).Linear(0, h, 0, fogTop),
		})
	}

	return ops, nil
}

// topOf returns the smallest y in the polygon, i.e. its highest point.
func topOf(p render.Polygon) float64 {
	min := p[0].Y
	for _, pt := range p[1:] {
		if pt.Y < min {
			min = pt.Y
		}
	}
	return min
}
