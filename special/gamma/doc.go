// Package gamma provides Gamma-related functions for real arguments: pole
// detection, the sign of Gamma and the Pochhammer ratio Gamma(x+m)/Gamma(x).
//
// Two identities are used throughout. The recurrence
//
//	Gamma(z+1) = z Gamma(z)
//
// lets [Poch] peel integer steps off m by plain multiplication, and the
// reflection formula
//
//	Gamma(z) Gamma(1-z) = pi / sin(pi z)
//
// fixes the sign pattern [Sign] reports on the negative axis: Gamma changes
// sign at every pole 0, -1, -2, ...
//
// The functions never compute Gamma itself, which overflows for arguments
// above about 171 (float64) or 35 (float32).
package gamma
