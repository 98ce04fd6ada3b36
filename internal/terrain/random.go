package terrain

import (
	"iter"
	"log/slog"
	"math"
)

// maxMinDiff is the largest usable adjacency constraint. Above it the
// rejection loop rejects more than it accepts and can stall for a very
// long time, so higher requests are clamped here.
const maxMinDiff = 0.49

// ConstrainedRandoms yields count values uniformly drawn from
// [min,max), where each underlying [0,1) draw after the first differs
// from the previous raw draw by at least minDiff. The constraint is
// enforced by redrawing until it holds; there is no iteration cap, the
// clamp below is the sole safety net.
//
// Note the constraint applies to the raw draw, not the scaled value,
// so minDiff reads as a fraction of the output range only when min=0
// and max=1. The jagged-silhouette tuning depends on this, so it is
// documented rather than changed.
func ConstrainedRandoms(src Source, count int, min, max, minDiff float64) iter.Seq[float64] {
	if minDiff > 0.45 {
		slog.Warn("adjacency constraint is overtuned, generation may be very slow", "min_diff", minDiff)
	}
	if minDiff > maxMinDiff {
		slog.Warn("clamping adjacency constraint to prevent an unbounded rejection loop",
			"min_diff", minDiff, "clamped_to", maxMinDiff)
		minDiff = maxMinDiff
	}

	return func(yield func(float64) bool) {
		if count == 0 {
			return
		}
		size := max - min

		prev := src.Float64()
		if !yield(prev*size + min) {
			return
		}
		for i := 0; i < count-1; i++ {
			next := src.Float64()
			for math.Abs(next-prev) < minDiff {
				next = src.Float64()
			}
			if !yield(next*size + min) {
				return
			}
			prev = next
		}
	}
}
