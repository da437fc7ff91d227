// Package value exposes the special functions as methods on width-specific
// named types, so generic code can constrain on behaviour instead of on the
// float width:
//
//	func tabulate[V value.RealGamma[V]](xs []V) { ... }
package value

import (
	"github.com/cwbudde/algo-special/special/bessel"
	"github.com/cwbudde/algo-special/special/gamma"
)

// Gamma is implemented by types for which log-Gamma is defined.
type Gamma[V any] interface {
	Lgamma() V
}

// RealGamma adds the Gamma related functions that are only defined for real
// arguments.
type RealGamma[V any] interface {
	Gamma[V]
	Gammasgn() V
	Poch(m V) V
}

// Bessel is implemented by types supporting the order zero modified Bessel
// function.
type Bessel[V any] interface {
	I0() V
	I0e() V
}

// Float32 is a single precision value.
type Float32 float32

// Float64 is a double precision value.
type Float64 float64

var (
	_ RealGamma[Float32] = Float32(0)
	_ RealGamma[Float64] = Float64(0)
	_ Bessel[Float32]    = Float32(0)
	_ Bessel[Float64]    = Float64(0)
)

// Lgamma returns ln|Gamma(v)|.
func (v Float32) Lgamma() Float32 { return Float32(gamma.Lgamma(float32(v))) }

// Gammasgn returns the sign of Gamma(v); see [gamma.Sign].
func (v Float32) Gammasgn() Float32 { return Float32(gamma.Sign(float32(v))) }

// Poch returns Gamma(v+m)/Gamma(v); see [gamma.Poch].
func (v Float32) Poch(m Float32) Float32 {
	return Float32(gamma.Poch(float32(v), float32(m)))
}

// I0 returns the modified Bessel function of order zero at v.
func (v Float32) I0() Float32 { return Float32(bessel.I0(float32(v))) }

// I0e returns exp(-|v|) I0(v).
func (v Float32) I0e() Float32 { return Float32(bessel.I0e(float32(v))) }

// Lgamma returns ln|Gamma(v)|.
func (v Float64) Lgamma() Float64 { return Float64(gamma.Lgamma(float64(v))) }

// Gammasgn returns the sign of Gamma(v); see [gamma.Sign].
func (v Float64) Gammasgn() Float64 { return Float64(gamma.Sign(float64(v))) }

// Poch returns Gamma(v+m)/Gamma(v); see [gamma.Poch].
func (v Float64) Poch(m Float64) Float64 {
	return Float64(gamma.Poch(float64(v), float64(m)))
}

// I0 returns the modified Bessel function of order zero at v.
func (v Float64) I0() Float64 { return Float64(bessel.I0(float64(v))) }

// I0e returns exp(-|v|) I0(v).
func (v Float64) I0e() Float64 { return Float64(bessel.I0e(float64(v))) }
