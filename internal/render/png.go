package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
)

// Image is a Surface backed by an in-memory NRGBA canvas. Shapes are
// rasterized to an anti-aliased coverage mask and composited src-over.
type Image struct {
	img *image.NRGBA
	w   int
	h   int
}

// NewImage creates a transparent canvas of the given pixel size.
func NewImage(w, h int) (*Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %dx%d", w, h)
	}
	return &Image{
		img: image.NewNRGBA(image.Rect(0, 0, w, h)),
		w:   w,
		h:   h,
	}, nil
}

// NRGBA exposes the underlying canvas, e.g. for finishing filters.
func (s *Image) NRGBA() *image.NRGBA {
	return s.img
}

func (s *Image) FillRect(r Rect, f Fill) {
	s.fillPath(f, func(ras *vector.Rasterizer) {
		ras.MoveTo(float32(r.X), float32(r.Y))
		ras.LineTo(float32(r.X+r.W), float32(r.Y))
		ras.LineTo(float32(r.X+r.W), float32(r.Y+r.H))
		ras.LineTo(float32(r.X), float32(r.Y+r.H))
		ras.ClosePath()
	})
}

func (s *Image) FillPolygon(p Polygon, f Fill) {
	if len(p) < 3 {
		return
	}
	s.fillPath(f, func(ras *vector.Rasterizer) {
		ras.MoveTo(float32(p[0].X), float32(p[0].Y))
		for _, pt := range p[1:] {
			ras.LineTo(float32(pt.X), float32(pt.Y))
		}
		ras.ClosePath()
	})
}

// discSegments is enough for a smooth circle at wallpaper resolutions.
const discSegments = 128

func (s *Image) FillDisc(d Disc, f Fill) {
	if d.R <= 0 {
		return
	}
	s.fillPath(f, func(ras *vector.Rasterizer) {
		ras.MoveTo(float32(d.CX+d.R), float32(d.CY))
		for i := 1; i < discSegments; i++ {
			a := 2 * math.Pi * float64(i) / discSegments
			ras.LineTo(float32(d.CX+d.R*math.Cos(a)), float32(d.CY+d.R*math.Sin(a)))
		}
		ras.ClosePath()
	})
}

func (s *Image) fillPath(f Fill, path func(*vector.Rasterizer)) {
	ras := vector.NewRasterizer(s.w, s.h)
	path(ras)

	mask := image.NewAlpha(image.Rect(0, 0, s.w, s.h))
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	draw.DrawMask(s.img, s.img.Bounds(), source(f), image.Point{}, mask, image.Point{}, draw.Over)
}

// EncodePNG writes the canvas as a PNG stream.
func (s *Image) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
