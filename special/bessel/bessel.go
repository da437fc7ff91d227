// Package bessel evaluates the modified Bessel function of the first kind of
// order zero for real arguments, unscaled ([I0]) and exponentially scaled
// ([I0e]).
//
// Both functions use the Cephes Chebyshev expansions: one table on [0, 8] and
// one on the inverted interval (8, inf). The tables are stored in double
// precision; the float32 instantiation evaluates a rounded copy made once at
// package initialisation.
package bessel

import (
	"github.com/cwbudde/algo-special/internal/realmath"
	"github.com/cwbudde/algo-special/special"
	"github.com/cwbudde/algo-special/special/cheb"
)

// split is the boundary between the two expansions.
const split = 8

// I0 returns the modified Bessel function of the first kind of order zero.
//
// I0 is even and grows like exp(|x|)/sqrt(2 pi |x|). The result overflows
// once exp(|x|) does, near 709.78 for float64 and 88.72 for float32; use [I0e]
// for larger arguments.
//
// Special cases are:
//
//	I0(0) = 1
//	I0(±Inf) = +Inf
//	I0(NaN) = NaN
func I0[T special.Real](x T) T {
	a := realmath.Abs(x)
	if realmath.IsInf(a) {
		return a
	}
	return realmath.Exp(a) * I0e(a)
}

// I0e returns the exponentially scaled Bessel function exp(-|x|) I0(x).
//
// Special cases are:
//
//	I0e(0) = 1
//	I0e(±Inf) = 0
//	I0e(NaN) = NaN
func I0e[T special.Real](x T) T {
	a := realmath.Abs(x)
	lo, hi := tables[T]()

	if a <= split {
		return cheb.Eval(a/2-2, lo)
	}
	return cheb.Eval(32/a-2, hi) / realmath.Sqrt(a)
}

// tables returns the coefficient tables of width T.
func tables[T special.Real]() (lo, hi []T) {
	if realmath.Is32[T]() {
		return any(i0A32).([]T), any(i0B32).([]T)
	}
	return any(i0A[:]).([]T), any(i0B[:]).([]T)
}
