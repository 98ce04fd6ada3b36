// Package interp provides the numeric sampling helpers used by the
// scene composer and terrain generator.
package interp

// SampleLinear samples the linear function f over [0, maxI] defined by
// f(0) = start and f(maxI) = end at the point i.
// maxI must be non-zero; callers guarantee this.
func SampleLinear(start, end float64, i, maxI int) float64 {
	t := float64(i) / float64(maxI)
	return start*(1-t) + end*t
}

// Polynomial holds coefficients indexed by power, so Polynomial{1, 2, 3}
// is 1 + 2x + 3x².
type Polynomial []float64

// Sample evaluates the polynomial at x.
func (p Polynomial) Sample(x float64) float64 {
	sum := 0.0
	pow := 1.0
	for _, a := range p {
		sum += a * pow
		pow *= x
	}
	return sum
}
