package toothgeom

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Translate(Vec(-10, 0)))
	diff(t, Pt(20, 1.5), Pt(10, 3).Scale(Vec(2, 0.5)))
	diff(t, Vec(4, -3), Pt(-7, -2).Sub(Pt(-11, 1)))
	if d := Pt(-7, -2).Sub(Pt(-11, 1)).Hypot(); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if !Pt(math.NaN(), 0).IsNaN() || Pt(0, 0).IsNaN() {
		t.Error("IsNaN is wrong")
	}
}

func TestVec2(t *testing.T) {
	v := Vec(3, 4)
	diff(t, Vec(4, 6), v.Add(Vec(1, 2)))
	diff(t, Vec(2, 2), v.Sub(Vec(1, 2)))
	diff(t, Vec(6, 8), v.Mul(2))
	diff(t, Vec(-3, -4), v.Negate())
	if got := v.Hypot2(); got != 25 {
		t.Errorf("Hypot2 = %v, want 25", got)
	}
	// +x to +y turns clockwise on screen.
	if got := Vec(1, 0).Cross(Vec(0, 1)); got != 1 {
		t.Errorf("Cross = %v, want 1", got)
	}
}

func TestSize(t *testing.T) {
	diff(t, Vec(2, 0.5), Sz(54, 172).ScaleTo(Sz(108, 86)))
	for _, sz := range []Size{{0, 1}, {1, -1}, {math.NaN(), 1}} {
		if !sz.IsEmpty() {
			t.Errorf("%v should be empty", sz)
		}
	}
	if Sz(1, 1).IsEmpty() {
		t.Error("1×1 should not be empty")
	}
	if s := Sz(54, 94).String(); s != "54×94" {
		t.Errorf("got %q", s)
	}
}
