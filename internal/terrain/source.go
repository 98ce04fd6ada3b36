// Package terrain generates the randomized polygon silhouettes the
// mountain layers are drawn from.
package terrain

import "math/rand"

// Source supplies the uniform randomness terrain generation draws
// from. Injecting it keeps generation reproducible under test; seeding
// is the caller's concern.
type Source interface {
	// Float64 returns a uniform draw from [0,1).
	Float64() float64
	// IntBetween returns a uniform draw from the inclusive range [min, max].
	IntBetween(min, max int) int
}

type randSource struct {
	r *rand.Rand
}

// NewSource returns a Source backed by math/rand with the given seed.
func NewSource(seed int64) Source {
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Float64() float64 {
	return s.r.Float64()
}

func (s *randSource) IntBetween(min, max int) int {
	return min + s.r.Intn(max-min+1)
}
