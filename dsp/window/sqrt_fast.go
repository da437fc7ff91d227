//go:build fastmath

package window

import "github.com/meko-christian/algo-approx"

// windowSqrt computes sqrt(x) using fast approximation.
func windowSqrt(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return approx.FastSqrt(x)
}
