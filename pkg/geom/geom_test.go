package geom

import "testing"

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		got  Kind
		want Kind
	}{
		{"solid", KindOf[Solid](), KindSolid},
		{"boundary", KindOf[Boundary](), KindBoundary},
		{"boundary no caps", KindOf[BoundaryNoCaps](), KindBoundaryNoCaps},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}
}

func TestResult(t *testing.T) {
	hit := Hit(3.5)
	if !Intersects(hit) {
		t.Error("Hit result reported empty")
	}
	if v, ok := hit.Get(); !ok || v != 3.5 {
		t.Errorf("Get() = %v, %v, want 3.5, true", v, ok)
	}

	miss := Miss[string]()
	if Intersects(miss) {
		t.Error("Miss result reported non-empty")
	}
	if _, ok := miss.Get(); ok {
		t.Error("Get() on Miss returned ok")
	}
}

func TestKindString(t *testing.T) {
	if got := KindBoundaryNoCaps.String(); got != "boundary-no-caps" {
		t.Errorf("String() = %q", got)
	}
	if got := Kind(42).String(); got != "unknown" {
		t.Errorf("String() = %q, want unknown", got)
	}
}
