package toothgeom

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawToothSurfaceMolarOcclusal(t *testing.T) {
	r := newRecorder()
	DrawToothSurface(r, 26, "occlusal", SurfaceOcclusal, Sz(200, 200))

	require.GreaterOrEqual(t, len(r.calls), 6)
	assert.Equal(t, call{"Push", nil}, r.calls[0])
	assert.Equal(t, "Translate", r.calls[1].Op)
	assert.InDeltaSlice(t, []float64{4, 4}, r.calls[1].Args, 1e-12)
	assert.Equal(t, call{"Scale", []float64{0.96, 0.96}}, r.calls[2])
	assert.Equal(t, call{"Pop", nil}, r.calls[len(r.calls)-1])

	sx, sy := 200.0/670, 200.0/708
	first := r.calls[3]
	require.Equal(t, "MoveTo", first.Op)
	assert.InDelta(t, 136.5*sx, first.Args[0], 1e-9)
	assert.InDelta(t, 243.014*sy, first.Args[1], 1e-9)

	assert.Equal(t, "ClosePath", r.calls[len(r.calls)-2].Op)
	assert.True(t, r.device.IsClosed())
	assert.True(t, r.device.HasSegments())

	pt, ok := r.device.FirstPoint()
	require.True(t, ok)
	assert.InDelta(t, 136.5*sx*0.96+4, pt.X, 1e-9)
	assert.InDelta(t, 243.014*sy*0.96+4, pt.Y, 1e-9)

	// The target's transform is restored.
	assert.Equal(t, Identity, r.aff)
	assert.Empty(t, r.stack)
}

func TestScaleIndependence(t *testing.T) {
	tests := []struct {
		tooth   ToothNumber
		view    string
		surface Surface
		size    Size
	}{
		{11, "top", SurfaceBuccal, Sz(54, 94)},
		{11, "top", SurfaceIncisal, Sz(54, 94)},
		{12, "frontal", SurfaceWhole, Sz(54, 172)},
		{13, "frontal", SurfaceCervical, Sz(54, 172)},
		{26, "occlusal", SurfaceOcclusal, Sz(54, 94)},
		{36, "topview", SurfaceDistoPalatalCusp, Sz(54, 94)},
		{47, "top", SurfaceMesial, Sz(100, 100)},
		{47, "frontal", SurfaceCervicalBuccal, Sz(54, 172)},
	}
	for _, tt := range tests {
		wide := tt.size
		wide.Width *= 2
		narrowCalls := newRecorder()
		wideCalls := newRecorder()
		DrawToothSurface(narrowCalls, tt.tooth, tt.view, tt.surface, tt.size)
		DrawToothSurface(wideCalls, tt.tooth, tt.view, tt.surface, wide)

		a, b := narrowCalls.pathCalls(), wideCalls.pathCalls()
		require.NotEmpty(t, a, "%d %s %s", tt.tooth, tt.view, tt.surface)
		require.Len(t, b, len(a))
		for i := range a {
			require.Equal(t, a[i].Op, b[i].Op)
			for j := 0; j < len(a[i].Args); j += 2 {
				assert.InDelta(t, 2*a[i].Args[j], b[i].Args[j], 1e-9, "%s x of %v", tt.surface, a[i])
				assert.InDelta(t, a[i].Args[j+1], b[i].Args[j+1], 1e-9, "%s y of %v", tt.surface, a[i])
			}
		}
	}

	// A control point of the anterior body curve, checked by value.
	r := newRecorder()
	DrawToothSurface(r, 11, "top", SurfaceBuccal, Sz(108, 94))
	c := r.pathCalls()[3]
	require.Equal(t, "CubicTo", c.Op)
	assert.InDelta(t, 38.78*2, c.Args[2], 1e-9)
	assert.InDelta(t, 37.65, c.Args[3], 1e-9)
}

func allSurfaces() []Surface {
	seen := map[Surface]bool{}
	var out []Surface
	for _, g := range []*Generator{anteriorTop, anteriorFrontal, molarTop, molarFrontal} {
		for _, s := range g.Surfaces() {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return append(out, "nonexistent", "")
}

func TestPremolarDelegatesToMolar(t *testing.T) {
	assert.Same(t, GeneratorFor(Molar, ViewTop), GeneratorFor(Premolar, ViewTop))
	assert.Same(t, GeneratorFor(Molar, ViewFrontal), GeneratorFor(Premolar, ViewFrontal))

	for _, view := range []string{"topview", "frontal", "lingual", "occlusal"} {
		for _, s := range allSurfaces() {
			for _, size := range []Size{Sz(54, 94), Sz(200, 120)} {
				pre, mol := newRecorder(), newRecorder()
				DrawToothSurface(pre, 14, view, s, size)
				DrawToothSurface(mol, 16, view, s, size)
				assert.Equal(t, mol.calls, pre.calls, "%s %q", view, s)
			}
		}
	}
}

func TestUnsupportedSurfaceDrawsNothing(t *testing.T) {
	for _, tooth := range []ToothNumber{11, 14, 16, 53, 85} {
		for _, view := range []string{"top", "frontal", "garbage"} {
			r := newSizedRecorder(100, 100)
			DrawToothSurface(r, tooth, view, "nonexistent", Size{})
			assert.Empty(t, r.calls, "%d %s", tooth, view)
			assert.Nil(t, SurfacePath(tooth, view, "nonexistent", Sz(100, 100)))
		}
	}

	// Surfaces of other views are not drawn either.
	r := newRecorder()
	DrawToothSurface(r, 11, "top", SurfaceCervical, Sz(54, 94))
	assert.Empty(t, r.calls)
	DrawToothSurface(r, 16, "frontal", SurfaceOcclusal, Sz(54, 172))
	assert.Empty(t, r.calls)
}

func TestResolveSize(t *testing.T) {
	e := DefaultEngine

	sized := newSizedRecorder(300, 150)
	assert.Equal(t, Sz(300, 150), e.ResolveSize(sized, Size{}))
	assert.Equal(t, Sz(60, 150), e.ResolveSize(sized, Sz(60, 0)))
	assert.Equal(t, Sz(60, 40), e.ResolveSize(sized, Sz(60, 40)))

	plain := newRecorder()
	assert.Equal(t, DefaultSize, e.ResolveSize(plain, Size{}))
	assert.Equal(t, Sz(100, 70), e.ResolveSize(plain, Sz(-1, 70)))

	DrawToothSurface(sized, 11, "top", SurfaceIncisal, Size{})
	require.Equal(t, "ClearPath", sized.calls[0].Op)
	require.Equal(t, "Translate", sized.calls[2].Op)
	assert.InDeltaSlice(t, []float64{6, 3}, sized.calls[2].Args, 1e-9)
}

func TestEveryOutlineClosedOnce(t *testing.T) {
	for _, g := range []*Generator{anteriorTop, anteriorFrontal, molarTop, molarFrontal} {
		for _, s := range g.Surfaces() {
			p := g.Generate(s, Sz(120, 90), DefaultTolerance)
			require.NotEmpty(t, p, "%s %s", g.Name, s)
			assert.Equal(t, MoveToKind, p[0].Kind, "%s %s", g.Name, s)
			closes := 0
			for _, el := range p {
				if el.Kind == ClosePathKind {
					closes++
				}
			}
			assert.Equal(t, 1, closes, "%s %s", g.Name, s)
			assert.True(t, p.IsClosed(), "%s %s", g.Name, s)
			assert.False(t, p.IsNaN(), "%s %s", g.Name, s)
		}
	}
}

func TestSurfacePathMatchesDrawing(t *testing.T) {
	for _, tooth := range []ToothNumber{11, 14, 16} {
		for _, view := range []string{"top", "frontal"} {
			for _, s := range allSurfaces() {
				size := Sz(150, 210)
				r := newRecorder()
				DrawToothSurface(r, tooth, view, s, size)
				got := SurfacePath(tooth, view, s, size)
				diff(t, r.device, got, cmpopts.EquateApprox(0, 1e-9), cmpopts.EquateEmpty())
			}
		}
	}
}

func TestAnteriorFrontalContactPoints(t *testing.T) {
	size := Sz(108, 344)
	r := newRecorder()
	DrawToothSurface(r, 21, "frontal", SurfaceMesial, size)
	c := r.pathCalls()
	require.Equal(t, "MoveTo", c[0].Op)
	// Circles start at angle zero: center x plus the radius, which follows
	// the horizontal factor.
	assert.InDelta(t, 0+11*2, c[0].Args[0], 1e-9)
	assert.InDelta(t, 142*2, c[0].Args[1], 1e-9)
	assert.Equal(t, "ClosePath", c[len(c)-1].Op)
}

func TestGeneratorSurfaces(t *testing.T) {
	assert.ElementsMatch(t, []Surface{
		SurfaceBuccal, SurfacePalatal, SurfaceWhole,
		SurfaceMidMesial, SurfaceClass4Mesial, SurfaceMidDistal, SurfaceClass4Distal,
		SurfaceIncisal, SurfaceOcclusal, SurfaceMesial, SurfaceDistal,
	}, anteriorTop.Surfaces())

	assert.ElementsMatch(t, append(anteriorTop.Surfaces(),
		SurfaceCervical, SurfaceCervicalBuccal, SurfaceCervicalPalatal,
	), anteriorFrontal.Surfaces())

	assert.ElementsMatch(t, []Surface{
		SurfaceOcclusal, SurfaceDistal, SurfaceMesial,
		SurfaceMesioBuccalCusp, SurfaceBuccalCusp,
		SurfaceMesioPalatalCusp, SurfacePalatalCusp,
		SurfaceDistoBuccalCusp, SurfaceDistoPalatalCusp,
		SurfaceWhole, SurfaceBuccal, SurfacePalatal,
	}, molarTop.Surfaces())

	assert.ElementsMatch(t, []Surface{
		SurfaceMesioBuccalCusp, SurfaceBuccalCusp, SurfaceDistoBuccalCusp,
		SurfaceMesial, SurfaceDistal,
		SurfaceBuccal, SurfacePalatal, SurfaceBuccalPoint,
		SurfaceCervical, SurfaceCervicalBuccal, SurfaceCervicalPalatal,
		SurfaceWhole,
	}, molarFrontal.Surfaces())
}

func TestGeneratorPaintOrder(t *testing.T) {
	for _, g := range []*Generator{anteriorTop, anteriorFrontal, molarTop, molarFrontal} {
		order := g.PaintOrder()
		require.NotEmpty(t, order, g.Name)
		assert.Equal(t, SurfaceWhole, order[0], g.Name)

		// Each outline is listed once, under one of its names.
		for i, s := range order {
			require.True(t, g.Supports(s), "%s %s", g.Name, s)
			for _, o := range order[i+1:] {
				assert.NotEqual(t, g.Recipes[s], g.Recipes[o], "%s: %s and %s", g.Name, s, o)
			}
		}
		for _, s := range g.Surfaces() {
			assert.True(t, slices.ContainsFunc(order, func(o Surface) bool {
				return assert.ObjectsAreEqual(g.Recipes[s], g.Recipes[o])
			}), "%s: %s missing from the paint order", g.Name, s)
		}
	}
}

func TestMolarTopArtworkInsideFrame(t *testing.T) {
	frame := Rect{0, 0, FrameMolarTop.Width, FrameMolarTop.Height}.Inflate(2, 2)
	for _, s := range molarTop.Surfaces() {
		bb := molarTop.Generate(s, FrameMolarTop, DefaultTolerance).BoundingBox()
		assert.True(t, frame.Union(bb) == frame, "%s: %v outside the frame", s, bb)
	}
}

func TestEngineOptions(t *testing.T) {
	e := NewEngine(Options{})
	assert.Equal(t, DefaultInset, e.Options().Inset)
	assert.Equal(t, DefaultTolerance, e.Options().Tolerance)

	e = NewEngine(Options{Inset: Inset{Scale: 1, OffsetX: 3, OffsetY: -2}})
	r := newRecorder()
	e.DrawToothSurface(r, 11, "top", SurfaceIncisal, Sz(54, 94))
	assert.Equal(t, call{"Translate", []float64{3, -2}}, r.calls[1])
	assert.Equal(t, call{"Scale", []float64{1, 1}}, r.calls[2])

	got := e.SurfacePath(11, "top", SurfaceIncisal, Sz(54, 94))
	diff(t, BezPath{
		MoveTo(Pt(3, 35)),
		LineTo(Pt(57, 35)),
		LineTo(Pt(57, 54)),
		LineTo(Pt(3, 54)),
		ClosePath(),
	}, got, cmpopts.EquateApprox(0, 1e-9))
}

func TestReplayPath(t *testing.T) {
	r := newRecorder()
	require.NoError(t, ReplayPath(r, "M0,0 L10,0 L10,10 Z", 1, 1))
	assert.Equal(t, []call{
		{"MoveTo", []float64{0, 0}},
		{"LineTo", []float64{10, 0}},
		{"LineTo", []float64{10, 10}},
		{"ClosePath", nil},
	}, r.calls)

	r = newRecorder()
	require.NoError(t, ReplayPath(r, "M1 2 Q3 4 5 6", 2, 0.5))
	assert.Equal(t, []call{
		{"MoveTo", []float64{2, 1}},
		{"QuadraticTo", []float64{6, 2, 10, 3}},
	}, r.calls)

	r = newRecorder()
	err := ReplayPath(r, "M0 0 L1 x", 1, 1)
	require.ErrorIs(t, err, ErrBadPathData)
	assert.Empty(t, r.calls)
}
