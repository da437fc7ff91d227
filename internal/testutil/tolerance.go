package testutil

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/cwbudde/algo-special/special"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !scalar.EqualWithinAbs(got[i], want[i], eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], math.Abs(got[i]-want[i]), eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireRel fails t unless got and want agree within the relative
// tolerance rel. NaN matches only NaN; infinities must match exactly.
func RequireRel[T special.Real](t *testing.T, got, want T, rel float64, msgAndArgs ...any) {
	t.Helper()
	if ok, diff := withinRel(float64(got), float64(want), rel); !ok {
		t.Fatalf("%sgot %v, want %v (rel diff %g > %g)", prefix(msgAndArgs), got, want, diff, rel)
	}
}

// RequireAbsOrRel fails t unless got and want agree within abs or within
// rel, whichever is looser at the magnitude of want.
func RequireAbsOrRel[T special.Real](t *testing.T, got, want T, abs, rel float64, msgAndArgs ...any) {
	t.Helper()
	g, w := float64(got), float64(want)
	if math.IsNaN(g) || math.IsNaN(w) {
		if math.IsNaN(g) != math.IsNaN(w) {
			t.Fatalf("%sgot %v, want %v", prefix(msgAndArgs), got, want)
		}
		return
	}
	if !scalar.EqualWithinAbsOrRel(g, w, abs, rel) {
		t.Fatalf("%sgot %v, want %v (abs diff %g, tolerances abs=%g rel=%g)", prefix(msgAndArgs), got, want, math.Abs(g-w), abs, rel)
	}
}

// RequireExact fails t unless got and want are the same value. NaN matches
// NaN and the sign of zero is ignored.
func RequireExact[T special.Real](t *testing.T, got, want T, msgAndArgs ...any) {
	t.Helper()
	if got == want || (got != got && want != want) {
		return
	}
	t.Fatalf("%sgot %v, want exactly %v", prefix(msgAndArgs), got, want)
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

func withinRel(got, want, rel float64) (bool, float64) {
	switch {
	case math.IsNaN(got) || math.IsNaN(want):
		return math.IsNaN(got) && math.IsNaN(want), math.NaN()
	case math.IsInf(got, 0) || math.IsInf(want, 0):
		return got == want, math.Inf(1)
	case got == want:
		return true, 0
	}
	diff := math.Abs(got-want) / math.Max(math.Abs(got), math.Abs(want))
	return scalar.EqualWithinRel(got, want, rel), diff
}

func prefix(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	format, ok := msgAndArgs[0].(string)
	if !ok {
		return fmt.Sprint(msgAndArgs...) + ": "
	}
	return fmt.Sprintf(format, msgAndArgs[1:]...) + ": "
}
