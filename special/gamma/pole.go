package gamma

import (
	"github.com/cwbudde/algo-special/internal/realmath"
	"github.com/cwbudde/algo-special/special"
)

// IsPole reports whether x is a pole of Gamma: 0 (either sign), -1, -2, ...
// NaN and positive values are never poles.
func IsPole[T special.Real](x T) bool {
	return x <= 0 && x == realmath.Floor(x)
}
