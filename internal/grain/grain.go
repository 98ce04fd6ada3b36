// Package grain applies optional finishing passes to a rasterized
// wallpaper: a perlin-noise grain overlay and a gaussian soften.
package grain

import (
	"image"

	"github.com/aquilax/go-perlin"
	"github.com/disintegration/gift"
)

// Params tunes the grain overlay.
type Params struct {
	// Strength scales the per-pixel luminance perturbation; 0 disables
	// the overlay entirely.
	Strength float64
	// Scale is the noise feature size in pixels.
	Scale float64
	// Seed keeps the overlay deterministic alongside scene generation.
	Seed int64
}

// DefaultParams returns a subtle film-grain setting.
func DefaultParams(seed int64) Params {
	return Params{
		Strength: 0.04,
		Scale:    180,
		Seed:     seed,
	}
}

// Apply overlays deterministic perlin grain onto img and returns a new
// image. The input is left untouched.
func Apply(img *image.NRGBA, p Params) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	copy(out.Pix, img.Pix)

	if p.Strength == 0 {
		return out
	}
	scale := p.Scale
	if scale <= 0 {
		scale = 1
	}

	// alpha/beta/octaves match the paper-texture tuning.
	noise := perlin.NewPerlin(2.0, 2.0, 3, p.Seed)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			// Noise2D returns roughly [-1,1]; map to a signed 8-bit delta.
			v := noise.Noise2D(float64(x)/scale, float64(y)/scale)
			delta := int(v * p.Strength * 255)

			i := out.PixOffset(x, y)
			out.Pix[i] = clampU8(int(out.Pix[i]) + delta)
			out.Pix[i+1] = clampU8(int(out.Pix[i+1]) + delta)
			out.Pix[i+2] = clampU8(int(out.Pix[i+2]) + delta)
		}
	}
	return out
}

// Soften applies a gaussian blur to take the digital edge off the
// rasterized shapes. Sigma 0 returns an untouched copy.
func Soften(img *image.NRGBA, sigma float32) *image.NRGBA {
	if sigma <= 0 {
		out := image.NewNRGBA(img.Bounds())
		copy(out.Pix, img.Pix)
		return out
	}

	g := gift.New(gift.GaussianBlur(sigma))
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}

func clampU8(x int) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}
