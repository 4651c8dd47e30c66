package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	expected := Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	if m != expected {
		t.Errorf("Identity() = %v, want %v", m, expected)
	}
}

func TestMulIdentity(t *testing.T) {
	m := Perspective(1, 1.5, 0.1, 100)
	result := m.Mul(Identity())
	if result != m {
		t.Errorf("M * I should equal M")
	}
}

func TestPerspective(t *testing.T) {
	fov := float32(math.Pi / 4) // 45 degrees
	aspect := float32(1.0)
	near := float32(0.1)
	far := float32(100.0)

	m := Perspective(fov, aspect, near, far)

	// Should be a valid projection matrix (not identity)
	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	// Element [15] should be 0 for perspective projection
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	// Element [11] should be -1 for perspective projection
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestOrtho(t *testing.T) {
	m := Ortho(-8, 8, -8, 8, 1, 200)

	p := m.TransformVec3(Vec3{8, 8, -1})
	if abs(p.X-1) > 0.0001 || abs(p.Y-1) > 0.0001 || abs(p.Z+1) > 0.0001 {
		t.Errorf("Ortho corner = %v, want (1, 1, -1)", p)
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	center := Vec3{0, 0, 0}
	up := Vec3{0, 1, 0}

	m := LookAt(eye, center, up)

	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}

	// Eye maps to the origin of view space
	p := m.TransformVec3(eye)
	if p.Length() > 0.0001 {
		t.Errorf("eye in view space = %v, want origin", p)
	}

	// Center lies straight ahead on -Z
	c := m.TransformVec3(center)
	if abs(c.X) > 0.0001 || abs(c.Y) > 0.0001 || abs(c.Z+5) > 0.0001 {
		t.Errorf("center in view space = %v, want (0, 0, -5)", c)
	}
}

func TestInverse(t *testing.T) {
	m := LookAt(Vec3{1, 2, 3}, Vec3{0, 1, 0}, Up)
	inv := m.Inverse()

	p := Vec3{4, -2, 7}
	back := inv.TransformVec3(m.TransformVec3(p))
	if back.Distance(p) > 0.001 {
		t.Errorf("inverse round trip = %v, want %v", back, p)
	}
}

func TestInverseSingular(t *testing.T) {
	var zero Mat4
	if zero.Inverse() != Identity() {
		t.Error("singular matrix inverse should be identity")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
