package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestWithinRel(t *testing.T) {
	cases := []struct {
		got, want, rel float64
		ok             bool
	}{
		{1, 1, 0, true},
		{1, 1 + 1e-15, 1e-14, true},
		{1, 1 + 1e-12, 1e-14, false},
		{math.NaN(), math.NaN(), 1e-14, true},
		{math.NaN(), 1, 1e-14, false},
		{math.Inf(1), math.Inf(1), 0, true},
		{math.Inf(1), math.MaxFloat64, 1, false},
		{-2, 2, 1e-3, false},
	}

	for _, tc := range cases {
		ok, _ := withinRel(tc.got, tc.want, tc.rel)
		if ok != tc.ok {
			t.Errorf("withinRel(%v, %v, %g)=%v, want %v", tc.got, tc.want, tc.rel, ok, tc.ok)
		}
	}
}

func TestRequireHelpersAcceptBothWidths(t *testing.T) {
	RequireRel(t, float32(0.5), float32(0.5), 0)
	RequireRel(t, 0.1+0.2, 0.3, 1e-15, "sum %d", 1)
	RequireAbsOrRel(t, 1e-20, 0.0, 1e-14, 0)
	RequireAbsOrRel(t, math.NaN(), math.NaN(), 0, 0)
	RequireExact(t, float32(math.NaN()), float32(math.NaN()))
	RequireExact(t, math.Copysign(0, -1), 0.0)
}

func TestLinspace(t *testing.T) {
	got := Linspace(-1, 1, 5)
	RequireSliceNearlyEqual(t, got, []float64{-1, -0.5, 0, 0.5, 1}, 0)

	if one := Linspace(3, 7, 1); len(one) != 1 || one[0] != 3 {
		t.Fatalf("Linspace with n=1 = %v, want [3]", one)
	}
	if none := Linspace(0, 1, 0); none != nil {
		t.Fatalf("Linspace with n=0 = %v, want nil", none)
	}
}

func TestDeterministicUniform(t *testing.T) {
	a := DeterministicUniform(42, -3, 5, 256)
	b := DeterministicUniform(42, -3, 5, 256)
	RequireSliceNearlyEqual(t, a, b, 0)
	RequireFinite(t, a)

	for i, v := range a {
		if v < -3 || v >= 5 {
			t.Fatalf("index %d: %v outside [-3, 5)", i, v)
		}
	}
}
