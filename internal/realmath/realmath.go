// Package realmath supplies the elementary floating-point operations the
// special functions are built from, instantiated per width: float64 values go
// to the standard library, float32 values to math32 so single precision code
// never round-trips through double precision unless math32 itself does.
package realmath

import (
	"math"

	"cogentcore.org/core/math32"

	"github.com/cwbudde/algo-special/special"
)

// Exp returns e**x.
func Exp[T special.Real](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Exp(v))
	default:
		return T(math.Exp(float64(x)))
	}
}

// Sqrt returns the square root of x.
func Sqrt[T special.Real](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sqrt(v))
	default:
		return T(math.Sqrt(float64(x)))
	}
}

// Pow returns x**y.
func Pow[T special.Real](x, y T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Pow(v, float32(y)))
	default:
		return T(math.Pow(float64(x), float64(y)))
	}
}

// Floor returns the greatest integer value less than or equal to x.
func Floor[T special.Real](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Floor(v))
	default:
		return T(math.Floor(float64(x)))
	}
}

// Abs returns the absolute value of x.
func Abs[T special.Real](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Abs(v))
	default:
		return T(math.Abs(float64(x)))
	}
}

// Lgamma returns ln|Gamma(x)|. The sign is dropped; callers that need it
// track it separately.
func Lgamma[T special.Real](x T) T {
	switch v := any(x).(type) {
	case float32:
		lg, _ := math32.Lgamma(v)
		return T(lg)
	default:
		lg, _ := math.Lgamma(float64(x))
		return T(lg)
	}
}

// IsNaN reports whether x is a NaN.
func IsNaN[T special.Real](x T) bool {
	return x != x
}

// IsInf reports whether x is an infinity of either sign.
func IsInf[T special.Real](x T) bool {
	return !IsNaN(x) && x-x != 0
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite[T special.Real](x T) bool {
	return x-x == 0
}

// Signbit reports whether x is negative or negative zero. Widening to
// float64 is exact, so the sign bit survives for both widths.
func Signbit[T special.Real](x T) bool {
	return math.Signbit(float64(x))
}

// NaN returns an IEEE-754 "not-a-number" value of width T.
func NaN[T special.Real]() T {
	return T(math.NaN())
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf[T special.Real](sign int) T {
	return T(math.Inf(sign))
}

// Is32 reports whether T is the single precision width.
func Is32[T special.Real]() bool {
	var zero T
	_, ok := any(zero).(float32)
	return ok
}
