package window

import "math"

// BetaForAttenuation returns the Kaiser beta for a lowpass FIR filter with
// the given stopband attenuation in dB (Kaiser, 1974):
//
//	beta = 0.1102 (A - 8.7)                         A > 50
//	beta = 0.5842 (A - 21)^0.4 + 0.07886 (A - 21)   21 <= A <= 50
//	beta = 0                                        A < 21
func BetaForAttenuation(dB float64) (float64, error) {
	if err := validateAttenuation(dB); err != nil {
		return 0, err
	}

	switch {
	case dB > 50:
		return 0.1102 * (dB - 8.7), nil
	case dB >= 21:
		d := dB - 21
		return 0.5842*math.Pow(d, 0.4) + 0.07886*d, nil
	default:
		return 0, nil
	}
}

// BetaForSidelobe returns the Kaiser beta whose window has the given
// highest sidelobe level, in dB below the main lobe (Kaiser and Schafer,
// 1980):
//
//	beta = 0.12438 (A + 6.3)                               60 < A
//	beta = 0.76609 (A - 13.26)^0.4 + 0.09834 (A - 13.26)   13.26 < A <= 60
//	beta = 0                                               A <= 13.26
func BetaForSidelobe(dB float64) (float64, error) {
	if err := validateAttenuation(dB); err != nil {
		return 0, err
	}

	switch {
	case dB > 60:
		return 0.12438 * (dB + 6.3), nil
	case dB > 13.26:
		d := dB - 13.26
		return 0.76609*math.Pow(d, 0.4) + 0.09834*d, nil
	default:
		return 0, nil
	}
}

// Length returns the number of taps of a Kaiser-windowed FIR filter that
// reaches dB of stopband attenuation over a transition band of width
// cycles/sample:
//
//	N = ceil((A - 7.95) / (2.285 * 2 pi width)) + 1
func Length(dB, width float64) (int, error) {
	if err := validateAttenuation(dB); err != nil {
		return 0, err
	}
	if err := validateTransition(width); err != nil {
		return 0, err
	}

	order := math.Ceil((dB - 7.95) / (2.285 * 2 * math.Pi * width))
	if order < 0 {
		order = 0
	}

	return int(order) + 1, nil
}
