package window

import (
	"errors"
	"fmt"
	"math"
)

var (
	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errZeroCoherentGain = errors.New("window coefficient sum is zero")
	errMismatchedLength = errors.New("samples and coefficients must have same length")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window size must be > 0: %d", size)
	}
	return nil
}

func validateKaiser(size int, beta float64) error {
	if size <= 0 {
		return validateLength(size)
	}
	if !(beta >= 0) || math.IsInf(beta, 0) {
		return fmt.Errorf("kaiser beta must be finite and >= 0: %f", beta)
	}
	return nil
}

func validateAttenuation(dB float64) error {
	if !(dB > 0) || math.IsInf(dB, 0) {
		return fmt.Errorf("attenuation must be finite and > 0 dB: %f", dB)
	}
	return nil
}

func validateTransition(width float64) error {
	if !(width > 0 && width < 0.5) {
		return fmt.Errorf("transition width must be in (0, 0.5) cycles/sample: %f", width)
	}
	return nil
}

func validateFFTSize(fftSize, length int) error {
	if fftSize < length {
		return fmt.Errorf("fft size must be >= window length %d: %d", length, fftSize)
	}
	if fftSize&(fftSize-1) != 0 {
		return fmt.Errorf("fft size must be a power of two: %d", fftSize)
	}
	return nil
}
