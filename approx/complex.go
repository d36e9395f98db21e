package approx

// Complex128 is a complex128 that implements Comparable. The real and
// imaginary parts are compared independently.
type Complex128 complex128

var _ Comparable[Complex128, float64] = Complex128(0)

func (c Complex128) IsCloseTol(other Complex128, relTol, absTol float64) bool {
	return IsCloseFloatTol(real(c), real(other), relTol, absTol) &&
		IsCloseFloatTol(imag(c), imag(other), relTol, absTol)
}

func (c Complex128) DefaultTolerance() Tolerance[float64] {
	return DefaultTolerance[float64]()
}

// Complex64 is a complex64 that implements Comparable.
type Complex64 complex64

var _ Comparable[Complex64, float32] = Complex64(0)

func (c Complex64) IsCloseTol(other Complex64, relTol, absTol float32) bool {
	return IsCloseFloatTol(real(c), real(other), relTol, absTol) &&
		IsCloseFloatTol(imag(c), imag(other), relTol, absTol)
}

func (c Complex64) DefaultTolerance() Tolerance[float32] {
	return DefaultTolerance[float32]()
}
