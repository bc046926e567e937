package raster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentchart/toothgeom"
)

func TestMask(t *testing.T) {
	m, err := Mask(toothgeom.DefaultEngine, 11, "top", toothgeom.SurfaceBuccal, 54, 94)
	require.NoError(t, err)
	assert.Equal(t, 54, m.Bounds().Dx())
	assert.Equal(t, 94, m.Bounds().Dy())

	assert.GreaterOrEqual(t, m.AlphaAt(27, 10).A, uint8(0xf0))
	assert.Zero(t, m.AlphaAt(27, 80).A)
	// The inset keeps the corners clear.
	assert.Zero(t, m.AlphaAt(0, 0).A)
}

func TestMaskUnsupportedSurface(t *testing.T) {
	m, err := Mask(toothgeom.DefaultEngine, 11, "top", toothgeom.SurfaceMesioBuccalCusp, 20, 20)
	require.NoError(t, err)
	for _, a := range m.Pix {
		require.Zero(t, a)
	}
}

func TestMaskEmptySize(t *testing.T) {
	_, err := Mask(toothgeom.DefaultEngine, 11, "top", toothgeom.SurfaceBuccal, 0, 10)
	assert.ErrorIs(t, err, ErrEmptySize)
	_, err = NewHitMap(toothgeom.DefaultEngine, 11, "top", 10, -1)
	assert.ErrorIs(t, err, ErrEmptySize)
}

func TestTargetTransformStack(t *testing.T) {
	tg := NewTarget(10, 10)
	tg.Push()
	tg.Translate(5, 5)
	tg.Scale(2, 2)
	assert.Equal(t, toothgeom.Pt(7, 9), toothgeom.Pt(1, 2).Transform(tg.aff))
	tg.Pop()
	assert.Equal(t, toothgeom.Identity, tg.aff)

	// Unbalanced Pop is ignored.
	tg.Pop()
	assert.Equal(t, toothgeom.Identity, tg.aff)
}

func TestTargetClearPath(t *testing.T) {
	tg := NewTarget(8, 8)
	tg.MoveTo(0, 0)
	tg.LineTo(8, 0)
	tg.LineTo(8, 8)
	tg.LineTo(0, 8)
	tg.ClosePath()
	assert.GreaterOrEqual(t, tg.Mask().AlphaAt(4, 4).A, uint8(0xf0))

	tg.ClearPath()
	assert.Zero(t, tg.Mask().AlphaAt(4, 4).A)
}

func TestHitMap(t *testing.T) {
	hm, err := NewHitMap(toothgeom.DefaultEngine, 11, "top", 54, 94,
		toothgeom.SurfaceBuccal, toothgeom.SurfaceIncisal)
	require.NoError(t, err)

	tests := []struct {
		x, y int
		want toothgeom.Surface
		ok   bool
	}{
		{27, 10, toothgeom.SurfaceBuccal, true},
		{27, 45, toothgeom.SurfaceIncisal, true},
		{27, 85, "", false},
		{-1, 10, "", false},
		{54, 10, "", false},
	}
	for _, tt := range tests {
		got, ok := hm.At(tt.x, tt.y)
		assert.Equal(t, tt.ok, ok, "(%d, %d)", tt.x, tt.y)
		assert.Equal(t, tt.want, got, "(%d, %d)", tt.x, tt.y)
	}
}

func TestHitMapPaintOrder(t *testing.T) {
	const w, h = 335, 354
	hm, err := NewHitMap(toothgeom.DefaultEngine, 36, "occlusal", w, h)
	require.NoError(t, err)
	assert.Equal(t, toothgeom.GeneratorFor(toothgeom.Molar, toothgeom.ViewTop).PaintOrder(), hm.Surfaces)

	size := toothgeom.Sz(w, h)
	tr := toothgeom.DefaultInset.Transform(size)
	tests := []struct {
		x, y float64 // in the 670×708 artwork
		want toothgeom.Surface
	}{
		{200, 150, toothgeom.SurfaceMesioBuccalCusp},
		{338, 100, toothgeom.SurfaceDistoBuccalCusp},
		{450, 560, toothgeom.SurfaceDistoPalatalCusp},
		{338, 360, toothgeom.SurfaceOcclusal},
		{100, 349, toothgeom.SurfaceMesial},
		{80, 120, toothgeom.SurfaceWhole},
	}
	for _, tt := range tests {
		pt := toothgeom.Pt(tt.x/2, tt.y/2).Transform(tr)
		got, ok := hm.At(int(pt.X), int(pt.Y))
		require.True(t, ok, "(%g, %g)", tt.x, tt.y)
		assert.Equal(t, tt.want, got, "(%g, %g)", tt.x, tt.y)

		center := toothgeom.Pt(math.Floor(pt.X)+0.5, math.Floor(pt.Y)+0.5)
		want, ok := toothgeom.HitTest(36, "occlusal", size, center)
		require.True(t, ok, "(%g, %g)", tt.x, tt.y)
		assert.Equal(t, want, got, "(%g, %g)", tt.x, tt.y)
	}

	_, ok := hm.At(2, 2)
	assert.False(t, ok)
}
