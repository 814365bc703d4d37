package vec

import (
	"math"
	"testing"
)

func TestArithmetic(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, -1}

	if got := a.Add(b); got != (Vec2{4, 1}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vec2{-2, 3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vec2{2, 4}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Dot(b); got != 1 {
		t.Errorf("Dot: got %f", got)
	}
	if got := a.Cross(b); got != -7 {
		t.Errorf("Cross: got %f", got)
	}
}

func TestNorm(t *testing.T) {
	v := Vec2{3, 4}
	if v.Norm() != 5 {
		t.Errorf("Norm: got %f", v.Norm())
	}
	if v.NormSq() != 25 {
		t.Errorf("NormSq: got %f", v.NormSq())
	}
}

func TestIsFinite(t *testing.T) {
	if !(Vec2{1, 2}).IsFinite() {
		t.Error("finite vector reported non-finite")
	}
	if (Vec2{math.NaN(), 0}).IsFinite() {
		t.Error("NaN vector reported finite")
	}
	if (Vec2{0, math.Inf(1)}).IsFinite() {
		t.Error("Inf vector reported finite")
	}
}
