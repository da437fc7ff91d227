package gamma

import (
	"github.com/cwbudde/algo-special/internal/realmath"
	"github.com/cwbudde/algo-special/special"
)

// Sign returns the sign of Gamma(x): +1 or -1.
//
// Gamma is never zero on the real line, but it is undefined at the poles
// 0, -1, -2, ...; Sign returns 0 there. NaN and ±Inf are returned unchanged.
//
// On the negative axis the sign alternates between consecutive poles:
// Gamma(x) < 0 when floor(|x|) is even and > 0 when it is odd.
// Every representable value with |x| >= 2^52 (float64) or 2^23 (float32) is
// an integer, hence a pole, so the parity is always taken from an exact
// integer well inside uint64 range.
func Sign[T special.Real](x T) T {
	if !realmath.IsFinite(x) {
		return x
	}

	if IsPole(x) {
		return 0
	}

	if !realmath.Signbit(x) {
		return 1
	}

	if uint64(realmath.Floor(realmath.Abs(x)))&1 == 1 {
		return 1
	}

	return -1
}
