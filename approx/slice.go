package approx

// FloatSlice is a slice of floats compared element by element. Slices of
// different lengths are never close.
type FloatSlice[F Float] []F

func (s FloatSlice[F]) IsCloseTol(other FloatSlice[F], relTol, absTol F) bool {
	if len(s) != len(other) {
		return false
	}

	for i := range s {
		if !IsCloseFloatTol(s[i], other[i], relTol, absTol) {
			return false
		}
	}

	return true
}

func (s FloatSlice[F]) DefaultTolerance() Tolerance[F] {
	return DefaultTolerance[F]()
}

// Slice is a slice of Comparable elements compared element by element with
// the tolerances given to the slice. The defaults are those of E.
type Slice[E Comparable[E, Tol], Tol any] []E

func (s Slice[E, Tol]) IsCloseTol(other Slice[E, Tol], relTol, absTol Tol) bool {
	if len(s) != len(other) {
		return false
	}

	for i := range s {
		if !s[i].IsCloseTol(other[i], relTol, absTol) {
			return false
		}
	}

	return true
}

func (s Slice[E, Tol]) DefaultTolerance() Tolerance[Tol] {
	var zero E

	return zero.DefaultTolerance()
}
