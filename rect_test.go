package toothgeom

import (
	"slices"
	"testing"
)

func TestRectPath(t *testing.T) {
	r := NewRect(0, 37, 54, 19)
	want := BezPath{
		MoveTo(Pt(0, 37)),
		LineTo(Pt(54, 37)),
		LineTo(Pt(54, 56)),
		LineTo(Pt(0, 56)),
		ClosePath(),
	}
	diff(t, want, BezPath(slices.Collect(r.PathElements(0.1))))

	if w := want.Winding(r.Center()); w != 1 {
		t.Errorf("got winding %v, want %v", w, 1)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(5, 5), true},
		{Pt(10, 5), false},
		{Pt(5, 10), false},
		{Pt(-1, 5), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.pt); got != tt.want {
			t.Errorf("Contains(%v) = %t, want %t", tt.pt, got, tt.want)
		}
	}
}

func TestRectAbsUnion(t *testing.T) {
	diff(t, Rect{0, 5, 10, 20}, Rect{10, 20, 0, 5}.Abs())
	diff(t, Rect{-1, 0, 10, 12}, Rect{0, 0, 10, 10}.Union(Rect{-1, 2, 3, 12}))
	diff(t, Rect{0, 0, 10, 10}, Rect{0, 0, 5, 5}.UnionPoint(Pt(10, 10)))
	diff(t, Rect{-1, -2, 11, 12}, Rect{0, 0, 10, 10}.Inflate(1, 2))
}

func TestRectScale(t *testing.T) {
	got := NewRect(38, 20, 14, 60).Scale(Vec(2, 0.5))
	diff(t, Rect{76, 10, 104, 40}, got)
}

func TestRoundedRectPath(t *testing.T) {
	rr := NewRoundedRect(0, 20, 14, 60, 4)
	p := BezPath(slices.Collect(rr.PathElements(0.1)))

	want := BezPath{
		MoveTo(Pt(4, 20)),
		LineTo(Pt(10, 20)),
		QuadTo(Pt(14, 20), Pt(14, 24)),
		LineTo(Pt(14, 76)),
		QuadTo(Pt(14, 80), Pt(10, 80)),
		LineTo(Pt(4, 80)),
		QuadTo(Pt(0, 80), Pt(0, 76)),
		LineTo(Pt(0, 24)),
		QuadTo(Pt(0, 20), Pt(4, 20)),
	}
	diff(t, want, p)

	if !rr.Contains(Pt(7, 50)) {
		t.Error("center of rounded rect not contained")
	}
	// The corner itself is cut off.
	if rr.Contains(Pt(0.2, 20.2)) {
		t.Error("corner of rounded rect contained")
	}
	if !rr.Rect.Contains(Pt(0.2, 20.2)) {
		t.Error("corner of the plain rect not contained")
	}
}

func TestRoundedRectOversizedRadius(t *testing.T) {
	// Radii beyond half the shorter side are not clamped.
	rr := NewRoundedRect(0, 0, 10, 10, 8)
	p := BezPath(slices.Collect(rr.PathElements(0.1)))
	diff(t, LineTo(Pt(2, 0)), p[1])
}
