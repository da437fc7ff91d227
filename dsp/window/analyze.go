package window

import (
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the 3 dB (half-power) main lobe width in bins.
	Bandwidth3dB float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// FirstMinimumBins is the first null (minimum) position in bins.
	FirstMinimumBins float64
	// ScallopLossdB is the amplitude error for a signal half a bin off centre.
	ScallopLossdB float64
}

// Analyze computes spectral properties of the given window coefficients from
// a zero-padded FFT of length fftSize. fftSize must be a power of two no
// smaller than len(coeffs); 0 selects the smallest power of two giving at
// least 16 spectral points per bin.
func Analyze(coeffs []float64, fftSize int) (Analysis, error) {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}, errEmptyCoeffs
	}

	if fftSize == 0 {
		fftSize = nextPowerOfTwo(16 * n)
	}

	if err := validateFFTSize(fftSize, n); err != nil {
		return Analysis{}, err
	}

	sum := vecmath.Sum(coeffs)
	if sum == 0 {
		return Analysis{}, errZeroCoherentGain
	}

	power, err := powerSpectrum(coeffs, fftSize)
	if err != nil {
		return Analysis{}, err
	}

	dcRef := power[0]
	binsPerPoint := float64(n) / float64(fftSize)

	firstMin := firstMinimum(power)

	scallop := 0.0
	if half := dftMagSq(coeffs, 0.5/float64(n)); half > 0 {
		scallop = 10 * math.Log10(half/dcRef)
	}

	enbw, err := EquivalentNoiseBandwidth(coeffs)
	if err != nil {
		return Analysis{}, err
	}

	return Analysis{
		CoherentGain:      sum / float64(n),
		ENBW:              enbw,
		Bandwidth3dB:      2 * halfPowerPoint(power) * binsPerPoint,
		HighestSidelobedB: highestSidelobe(power, firstMin),
		FirstMinimumBins:  float64(firstMin) * binsPerPoint,
		ScallopLossdB:     scallop,
	}, nil
}

// powerSpectrum returns |X[k]|^2 for k = 0..fftSize/2 of the zero-padded
// coefficients.
func powerSpectrum(coeffs []float64, fftSize int) ([]float64, error) {
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, err
	}

	in := make([]complex128, fftSize)
	for i, c := range coeffs {
		in[i] = complex(c, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	return power, nil
}

// firstMinimum returns the index of the first local minimum after DC.
func firstMinimum(power []float64) int {
	k := 1
	for k < len(power)-1 && power[k+1] <= power[k] {
		k++
	}
	return k
}

// halfPowerPoint returns the fractional spectral index where the power first
// drops to half its DC value, interpolated linearly between points.
func halfPowerPoint(power []float64) float64 {
	target := 0.5 * power[0]
	for k := 1; k < len(power); k++ {
		if power[k] < target {
			prev := power[k-1]
			return float64(k-1) + (prev-target)/(prev-power[k])
		}
	}
	return float64(len(power) - 1)
}

// highestSidelobe returns the peak level past the first minimum in dB
// relative to DC.
func highestSidelobe(power []float64, firstMin int) float64 {
	if firstMin >= len(power) {
		return math.Inf(-1)
	}

	peak := 0.0
	for _, v := range power[firstMin:] {
		peak = math.Max(peak, v)
	}

	if peak <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(peak/power[0])
}

// dftMagSq evaluates |DFT(freq)|^2 at a normalised frequency [0,1).
func dftMagSq(coeffs []float64, freq float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * freq
	for k, c := range coeffs {
		phase := w * float64(k)
		re += c * math.Cos(phase)
		im -= c * math.Sin(phase)
	}
	return re*re + im*im
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
