// Package window generates Kaiser windows and measures their spectral
// properties.
//
// The Kaiser window
//
//	w[n] = I0(beta * sqrt(1 - r^2)) / I0(beta),  r = 2n/(N-1) - 1
//
// is evaluated through the exponentially scaled Bessel function so that
// large beta never overflows.
package window

import (
	"math"

	"github.com/cwbudde/algo-special/special/bessel"
	"github.com/cwbudde/algo-vecmath"
)

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic  bool
	normalize bool
}

func defaultConfig() config {
	return config{}
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// WithNormalize scales the window so its largest coefficient is exactly 1.
// Symmetric windows of odd length already peak at 1; even and periodic
// forms fall slightly short without it.
func WithNormalize() Option {
	return func(c *config) {
		c.normalize = true
	}
}

// Kaiser returns Kaiser window coefficients. beta = 0 gives the rectangular
// window; larger beta trades main lobe width for lower sidelobes.
func Kaiser(size int, beta float64, opts ...Option) ([]float64, error) {
	if err := validateKaiser(size, beta); err != nil {
		return nil, err
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, size)
	if size == 1 {
		out[0] = 1
		return out, nil
	}

	scale := bessel.I0e(beta)
	for i := range out {
		x := samplePosition(i, size, cfg.periodic)
		out[i] = kaiserAt(x, beta, scale)
	}

	if cfg.normalize {
		if peak := vecmath.MaxAbs(out); peak > 0 {
			vecmath.ScaleBlockInPlace(out, 1/peak)
		}
	}

	return out, nil
}

// Apply multiplies buf in-place by a Kaiser window of the same length.
func Apply(buf []float64, beta float64, opts ...Option) error {
	if len(buf) == 0 {
		return nil
	}

	coeffs, err := Kaiser(len(buf), beta, opts...)
	if err != nil {
		return err
	}

	vecmath.MulBlockInPlace(buf, coeffs)

	return nil
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := vecmath.Sum(coeffs)
	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	sumSquares := vecmath.DotProduct(coeffs, coeffs)

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}

// kaiserAt evaluates the window at normalised position x in [0, 1].
// scale is I0e(beta).
func kaiserAt(x, beta, scale float64) float64 {
	r := 2*x - 1
	t := windowSqrt(math.Max(0, 1-r*r))

	return bessel.I0e(beta*t) / scale * math.Exp(beta*(t-1))
}
