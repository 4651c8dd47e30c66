package math

import (
	"testing"
)

func TestVec3Distance(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 6, 3}
	got := a.Distance(b)
	want := float32(5)
	if got != want {
		t.Errorf("Vec3.Distance() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero vector Normalize() = %v, want zero", z)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, 20, 30}

	tests := []struct {
		t    float32
		want Vec3
	}{
		{0, a},
		{0.5, Vec3{5, 10, 15}},
		{1, b},
	}

	for _, tt := range tests {
		got := a.Lerp(b, tt.t)
		if abs(got.X-tt.want.X) > 0.001 || abs(got.Y-tt.want.Y) > 0.001 || abs(got.Z-tt.want.Z) > 0.001 {
			t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestVec3Horizontal(t *testing.T) {
	v := Vec3{1, 2, 3}
	if got := v.Horizontal(); got != (Vec3{1, 0, 3}) {
		t.Errorf("Horizontal() = %v", got)
	}
	if got := v.WithY(7); got != (Vec3{1, 7, 3}) {
		t.Errorf("WithY() = %v", got)
	}
}
