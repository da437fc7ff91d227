// Package cheb evaluates truncated Chebyshev series.
//
// Coefficient tables follow the Cephes convention: highest degree first, the
// constant term last and stored doubled, so a table c of length N represents
//
//	y = sum'_{k=0}^{N-1} c[N-1-k] T_k(x/2)
//
// where the prime halves the k = 0 term. Arguments are expected in [-2, 2];
// callers map their interval onto it.
package cheb

import "github.com/cwbudde/algo-special/special"

// Eval sums the Chebyshev series coeffs at x with the Clenshaw recurrence.
//
// The argument is not checked against [-2, 2]; values outside the interval
// are evaluated as given and NaN propagates. An empty table returns 0.
func Eval[T special.Real](x T, coeffs []T) T {
	if len(coeffs) == 0 {
		return 0
	}

	b0 := coeffs[0]
	var b1, b2 T

	for _, c := range coeffs[1:] {
		b2 = b1
		b1 = b0
		b0 = x*b1 - b2 + c
	}

	return 0.5 * (b0 - b2)
}

// Narrow rounds a float64 coefficient table to float32.
func Narrow(c []float64) []float32 {
	out := make([]float32, len(c))
	for i, v := range c {
		out[i] = float32(v)
	}
	return out
}
