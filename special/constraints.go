package special

// Real is the capability shared by the supported real floating-point widths.
// Every generic function in this module is instantiated for exactly these two
// types, so width-specific constants and coefficient tables can be selected
// with a type switch.
type Real interface {
	float32 | float64
}

// Number marks functions that are meaningful on any numeric domain,
// including complex arguments. Nothing is defined on it yet.
type Number interface {
	Real | complex64 | complex128
}
