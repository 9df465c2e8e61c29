package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())

	if result != m {
		t.Errorf("M * I should equal M: got %v, want %v", result, m)
	}
}

func TestMulMatchesMathgl(t *testing.T) {
	a := Perspective(Radians(45), 4.0/3.0, 0.1, 100)
	b := LookAt(Vec3{10, 10, 10}, Vec3{}, Vec3{Y: 1})

	got := a.Mul(b)
	want := mgl32.Mat4(a).Mul4(mgl32.Mat4(b))
	for i := range got {
		if abs(got[i]-want[i]) > 1e-5 {
			t.Fatalf("Mul element %d: got %f, want %f", i, got[i], want[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(Vec3{5, 10, 15})

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestPerspective(t *testing.T) {
	fov := Radians(45)
	m := Perspective(fov, 1, 0.1, 100)

	// Element [15] should be 0 for perspective projection
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	// Element [11] should be -1 for perspective projection
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}

	want := mgl32.Perspective(fov, 1, 0.1, 100)
	for i := range m {
		if abs(m[i]-want[i]) > 1e-5 {
			t.Errorf("Perspective element %d: got %f, want %f", i, m[i], want[i])
		}
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{10, 10, 10}
	m := LookAt(eye, Vec3{}, Vec3{Y: 1})
	want := mgl32.LookAtV(mgl32.Vec3{10, 10, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	for i := range m {
		if abs(m[i]-want[i]) > 1e-5 {
			t.Errorf("LookAt element %d: got %f, want %f", i, m[i], want[i])
		}
	}

	// The eye maps to the view-space origin
	p := m.MulVec4(Vec4{eye.X, eye.Y, eye.Z, 1})
	if abs(p[0]) > 1e-4 || abs(p[1]) > 1e-4 || abs(p[2]) > 1e-4 {
		t.Errorf("eye in view space: got %v, want origin", p)
	}
}

func TestInverse(t *testing.T) {
	m := Perspective(Radians(60), 1.5, 0.5, 50).Mul(LookAt(Vec3{3, -2, 7}, Vec3{1, 1, 0}, Vec3{Y: 1}))

	inv, ok := m.Inverse()
	if !ok {
		t.Fatal("Inverse reported a singular matrix")
	}

	id := m.Mul(inv)
	want := Identity()
	for i := range id {
		if abs(id[i]-want[i]) > 1e-4 {
			t.Errorf("M * M^-1 element %d: got %f, want %f", i, id[i], want[i])
		}
	}
}

func TestInverseSingular(t *testing.T) {
	var m Mat4
	inv, ok := m.Inverse()
	if ok {
		t.Error("zero matrix should not be invertible")
	}
	if inv != (Mat4{}) {
		t.Errorf("singular inverse should be zero, got %v", inv)
	}
}

func TestRadiansDegrees(t *testing.T) {
	if d := Degrees(Radians(90)); abs(d-90) > 1e-4 {
		t.Errorf("Degrees(Radians(90)) = %f, want 90", d)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
