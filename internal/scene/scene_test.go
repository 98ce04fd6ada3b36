package scene

import (
	"image/color"
	"testing"

	"github.com/MeKo-Tech/ridgeline/internal/paint"
	"github.com/MeKo-Tech/ridgeline/internal/render"
	"github.com/MeKo-Tech/ridgeline/internal/terrain"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Parameters)
		valid  bool
	}{
		{"defaults", func(p *Parameters) {}, true},
		{"zero width", func(p *Parameters) { p.Width = 0 }, false},
		{"negative height", func(p *Parameters) { p.Height = -1 }, false},
		{"single range", func(p *Parameters) { p.MountainRangeCount = 1 }, false},
		{"two ranges", func(p *Parameters) { p.MountainRangeCount = 2 }, true},
		{"zero peaks", func(p *Parameters) { p.MountainPeaksMin = 0 }, false},
		{"inverted peaks", func(p *Parameters) { p.MountainPeaksMin = 10; p.MountainPeaksMax = 5 }, false},
		{"sun too high", func(p *Parameters) { p.SunHeight = 1.5 }, false},
		{"negative fog", func(p *Parameters) { p.FogThickness = -0.1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.mutate(&p)
			err := p.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.valid && err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestComposeRejectsSingleRange(t *testing.T) {
	p := DefaultParameters()
	p.MountainRangeCount = 1

	_, err := Compose(p, paint.Default, terrain.NewSource(1))
	require.Error(t, err)
	require.Contains(t, err.Error(), "mountain range count")
}

func TestComposeDrawOrder(t *testing.T) {
	p := DefaultParameters()
	ops, err := Compose(p, paint.Default, terrain.NewSource(1))
	require.NoError(t, err)

	// Sky + sun + (mountain, fog) per layer.
	require.Len(t, ops, 2+2*p.MountainRangeCount)

	w, h := float64(p.Width), float64(p.Height)

	sky, ok := ops[0].Shape.(render.Rect)
	require.True(t, ok, "first op must be the sky rectangle")
	require.Equal(t, render.Rect{W: w, H: h}, sky)
	skyFill, ok := ops[0].Fill.(render.LinearGradient)
	require.True(t, ok, "sky fill must be a gradient")
	require.Len(t, skyFill.Stops, paint.Default.SkyBlue.Len())

	sun, ok := ops[1].Shape.(render.Disc)
	require.True(t, ok, "second op must be the sun disc")
	require.Equal(t, w*0.85, sun.CX)
	require.Equal(t, h*(1-p.SunHeight), sun.CY)
	require.Equal(t, h*p.SunSize, sun.R)
	require.Equal(t, render.Solid{Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255}}, ops[1].Fill)

	for i := 0; i < p.MountainRangeCount; i++ {
		mountain := ops[2+2*i]
		fog := ops[3+2*i]

		poly, ok := mountain.Shape.(render.Polygon)
		require.True(t, ok, "layer %d must fill a polygon", i)
		require.Equal(t, mountain.Shape, fog.Shape, "fog must cover the same silhouette")

		_, ok = mountain.Fill.(render.LinearGradient)
		require.True(t, ok)
		fogFill, ok := fog.Fill.(render.LinearGradient)
		require.True(t, ok)

		// Fog fades upward from the image bottom.
		require.Equal(t, h, fogFill.Y0)
		top := poly[0].Y
		for _, pt := range poly {
			if pt.Y < top {
				top = pt.Y
			}
		}
		require.Equal(t, (h-top)/2, fogFill.Y1)
	}
}

func TestComposeHazeSweep(t *testing.T) {
	p := DefaultParameters()
	ops, err := Compose(p, paint.Default, terrain.NewSource(5))
	require.NoError(t, err)

	last := p.MountainRangeCount - 1

	// Farthest layer keeps the raw palette.
	farFill := ops[2].Fill.(render.LinearGradient)
	require.Equal(t, paint.Default.MountainRed.Start().NRGBA(), farFill.Stops[0].Color)

	// Nearest layer is darkened by 0.85 and fully desaturated.
	nearFill := ops[2+2*last].Fill.(render.LinearGradient)
	wantNear := paint.Default.MountainRed.Start().Darken(0.85).Desaturate(1).NRGBA()
	require.Equal(t, wantNear, nearFill.Stops[0].Color)

	// Fog thins toward the foreground: thickness sweeps 1 -> 1/4.
	farFog := ops[3].Fill.(render.LinearGradient)
	nearFog := ops[3+2*last].Fill.(render.LinearGradient)
	require.EqualValues(t, 255, farFog.Stops[0].Color.A)
	require.EqualValues(t, 64, nearFog.Stops[0].Color.A)
}

func TestComposeLayerFailureAbortsScene(t *testing.T) {
	p := DefaultParameters()
	p.MountainPeaksMin = 0 // caught by validation before any layer runs

	ops, err := Compose(p, paint.Default, terrain.NewSource(1))
	require.Error(t, err)
	require.Nil(t, ops)
}
