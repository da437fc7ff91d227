// Package special provides real-argument special functions for both float
// widths: the sign of Gamma, the Pochhammer ratio Gamma(x+m)/Gamma(x), the
// Chebyshev series evaluator and the modified Bessel function I0.
//
// The functions live in subpackages and are generic over [Real]:
//
//	s := gamma.Sign(-1.5)              // +1
//	r := gamma.Poch(0.5, 0.5)          // 1/sqrt(pi)
//	v := bessel.I0e(float32(30.546))   // exp(-|x|) I0(x)
//
// Package value exposes the same functions as methods on width-specific named
// types for code that prefers method dispatch.
//
// # Error Signaling
//
// No function returns an error or panics. Results encode the outcome:
//   - NaN: the value is mathematically undefined (unmatched pole in a ratio)
//   - 0: the value is formally zero (pole in the denominator only)
//   - NaN/Inf inputs propagate per IEEE-754 arithmetic
//
// All functions are pure and safe for concurrent use.
package special
