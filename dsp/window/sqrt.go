//go:build !fastmath

package window

import "math"

// windowSqrt computes sqrt(x) using standard library math.
func windowSqrt(x float64) float64 {
	return math.Sqrt(x)
}
