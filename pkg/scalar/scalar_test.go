package scalar

import (
	"math"
	"testing"
)

func TestPromotion(t *testing.T) {
	// int8 squares overflow their own kind.
	var x int8 = 100
	if got := Sq(x); got != 10000 {
		t.Errorf("Sq(int8(100)) = %v, want 10000", got)
	}
	if got := Frac(7) / Frac(2); got != 3.5 {
		t.Errorf("Frac(7)/Frac(2) = %v, want 3.5", got)
	}
}

func TestIs32(t *testing.T) {
	if !Is32[float32]() {
		t.Error("float32 should report 32-bit")
	}
	if Is32[float64]() {
		t.Error("float64 should not report 32-bit")
	}
}

func TestSqrt(t *testing.T) {
	if got := Sqrt(float32(16)); got != 4 {
		t.Errorf("Sqrt(float32(16)) = %v, want 4", got)
	}
	if got := Sqrt(2.0); math.Abs(got-math.Sqrt2) > 1e-15 {
		t.Errorf("Sqrt(2) = %v", got)
	}
	if got := Sqrt(-1.0); !IsNaN(got) {
		t.Errorf("Sqrt(-1) = %v, want NaN", got)
	}
}

func TestCopysign(t *testing.T) {
	tests := []struct {
		x, y, want float64
	}{
		{1, -2, -1},
		{-3, 5, 3},
		{0.5, 0, 0.5},
	}
	for _, tc := range tests {
		if got := Copysign(tc.x, tc.y); got != tc.want {
			t.Errorf("Copysign(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestAbsSignClamp(t *testing.T) {
	if Abs(-3) != 3 || Abs(int8(-4)) != 4 || Abs(2.5) != 2.5 {
		t.Error("Abs mismatch")
	}
	if Sign(-2.0) != -1 || Sign(0) != 0 || Sign(uint(5)) != 1 {
		t.Error("Sign mismatch")
	}
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp mismatch")
	}
}

func TestAngle(t *testing.T) {
	a := Degrees(90.0)
	if math.Abs(a.Radians()-math.Pi/2) > 1e-12 {
		t.Errorf("Degrees(90).Radians() = %v", a.Radians())
	}
	s, c := a.SinCos()
	if math.Abs(s-1) > 1e-12 || math.Abs(c) > 1e-12 {
		t.Errorf("SinCos(90deg) = %v, %v", s, c)
	}
	if got := Acos(0.0).Degrees(); math.Abs(got-90) > 1e-9 {
		t.Errorf("Acos(0) = %v deg, want 90", got)
	}
	if got := Atan2(float32(1), float32(1)).Degrees(); math.Abs(float64(got)-45) > 1e-4 {
		t.Errorf("Atan2(1,1) = %v deg, want 45", got)
	}
}

func TestStorageKinds(t *testing.T) {
	if got := ToHalf(1.5).Float32(); got != 1.5 {
		t.Errorf("half round trip = %v, want 1.5", got)
	}
	if ToUnorm8(1) != 255 || ToUnorm8(-1) != 0 || ToUnorm8(2) != 255 {
		t.Error("Unorm8 clamping mismatch")
	}
	if got := ToUnorm8(0.5).Float32(); math.Abs(float64(got)-0.5) > 1.0/255 {
		t.Errorf("Unorm8(0.5) = %v", got)
	}
}
