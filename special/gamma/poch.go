package gamma

import (
	"github.com/cwbudde/algo-special/internal/realmath"
	"github.com/cwbudde/algo-special/special"
)

// MinForExp is the smallest x for which [Poch] switches to the large-x
// asymptotic series once the remaining offset satisfies |m| <= 1.
const MinForExp = 1e4

// Poch returns the Pochhammer symbol (rising factorial)
//
//	x^(m) = Gamma(x+m) / Gamma(x)
//
// for real x and m.
//
// Whole units of m are peeled off first with the recurrence
// Gamma(z+1) = z Gamma(z), so integer m is computed by repeated
// multiplication (or division) and is exact whenever the intermediate
// products are. The fractional remainder is evaluated with a four-term
// asymptotic series for x > [MinForExp], or else from the difference of
// ln|Gamma| combined with the signs from [Sign].
//
// Special cases are:
//
//	Poch(x, 0) = 1
//	Poch(x, m) = NaN if x+m is a pole and x is not
//	Poch(x, m) = 0 if x is a pole and x+m is not
//	Poch(-2, 1) = -2
//
// The last case is Gamma(-1)/Gamma(-2), formally undefined; reading it through
// the recurrence as -2 Gamma(-2)/Gamma(-2) gives -2, which is what SciPy
// reports, and that value is kept.
func Poch[T special.Real](x, m T) T {
	r := T(1)

	for m >= 1 {
		if x+m == 1 {
			break
		}
		m--
		r *= x + m
		if !realmath.IsFinite(r) || r == 0 {
			break
		}
	}

	for m <= -1 {
		if x+m == 1 {
			break
		}
		r /= x + m
		m++
		if !realmath.IsFinite(r) || r == 0 {
			break
		}
	}

	if m == 0 {
		return r
	}

	if x > MinForExp && realmath.Abs(m) <= 1 {
		return r * pochAsymptotic(x, m)
	}

	// Unmatched pole in the numerator: the ratio diverges.
	if IsPole(x+m) && !IsPole(x) && x+m != m {
		return realmath.NaN[T]()
	}

	// Unmatched pole in the denominator: the ratio vanishes.
	if !IsPole(x+m) && IsPole(x) {
		return 0
	}

	return r * realmath.Exp(realmath.Lgamma(x+m)-realmath.Lgamma(x)) * Sign(x+m) * Sign(x)
}

// pochAsymptotic evaluates
//
//	x^m (1 + m(m-1)/(2x) + m(m-1)(m-2)(3m-1)/(24x^2) + m^2(m-1)^2(m-2)(m-3)/(48x^3))
//
// which matches Gamma(x+m)/Gamma(x) to O(x^-4) for large x.
func pochAsymptotic[T special.Real](x, m T) T {
	series := 1 +
		m*(m-1)/(2*x) +
		m*(m-1)*(m-2)*(3*m-1)/(24*x*x) +
		m*m*(m-1)*(m-1)*(m-2)*(m-3)/(48*x*x*x)

	return realmath.Pow(x, m) * series
}
