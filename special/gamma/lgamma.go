package gamma

import (
	"github.com/cwbudde/algo-special/internal/realmath"
	"github.com/cwbudde/algo-special/special"
)

// Lgamma returns ln|Gamma(x)|. Combine it with [Sign] to recover Gamma(x)
// without overflow.
//
// Special cases are:
//
//	Lgamma(+Inf) = +Inf
//	Lgamma(pole) = +Inf
//	Lgamma(-Inf) = -Inf
//	Lgamma(NaN) = NaN
func Lgamma[T special.Real](x T) T {
	return realmath.Lgamma(x)
}
