package terrain

import (
	"fmt"
	"slices"

	"github.com/MeKo-Tech/ridgeline/internal/render"
)

// PeakRange is the inclusive range of visible peaks per layer.
type PeakRange struct {
	Min, Max int
}

// Band is the vertical range, as fractions of image height, a layer's
// peaks are generated in.
type Band struct {
	Min, Max float64
}

// GeneratePeaks produces one mountain layer's silhouette polygon.
//
// Beyond the drawn peak count, two extra peaks are generated and
// positioned off-screen at the horizontal extremes so the silhouette
// never truncates visibly, and two bottom-corner points close the
// polygon against the image's bottom edge. Peaks are laid out
// right-to-left across the width, each centered in an equal-width slot
// and jittered by up to 20% of the slot width. Peak heights come from
// ConstrainedRandoms with an adjacency constraint of 0.3*peakiness.
//
// roughness is reserved for cliff-edge perturbation and currently has
// no effect; it is part of the contract so callers can tune it ahead
// of time.
func GeneratePeaks(src Source, peaks PeakRange, band Band, width, height int, peakiness, roughness float64) (render.Polygon, error) {
	if peaks.Min < 1 {
		return nil, fmt.Errorf("peak count range min must be at least 1, got %d", peaks.Min)
	}
	if peaks.Max < peaks.Min {
		return nil, fmt.Errorf("peak count range %d..%d is inverted", peaks.Min, peaks.Max)
	}
	_ = roughness

	count := src.IntBetween(peaks.Min, peaks.Max) + 2
	w, h := float64(width), float64(height)

	heights := slices.Collect(ConstrainedRandoms(src, count, band.Min, band.Max, 0.3*peakiness))

	// Even distribution first, each peak centered within its slot; the
	// two anchor slots hang off either edge.
	slots := float64(count - 2)
	xs := make([]float64, count)
	for i := range xs {
		xs[i] = (float64(i) - 0.5) / slots
	}
	jitter := 0.2 / slots
	for i := range xs {
		xs[i] += (src.Float64() - 0.5) * jitter
	}

	poly := make(render.Polygon, 0, count+2)
	for i := 0; i < count; i++ {
		poly = append(poly, render.Point{X: (1 - xs[i]) * w, Y: heights[i] * h})
	}
	poly = append(poly, render.Point{X: 0, Y: h}, render.Point{X: w, Y: h})
	return poly, nil
}
