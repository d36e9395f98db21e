package approx

import (
	"fmt"
	"math"
	"reflect"

	"github.com/amp-labs/amp-approx/errors"
)

// Float is the set of scalar kinds the comparison rule is defined for.
type Float interface {
	~float32 | ~float64
}

// Default tolerances per scalar kind. Double precision is tighter than
// single precision.
const (
	Float64RelTol = 1e-9
	Float64AbsTol = 1e-9
	Float32RelTol = 1e-6
	Float32AbsTol = 1e-6
)

// Tolerance is a relative and absolute tolerance pair of scalar type T.
type Tolerance[T any] struct {
	Rel T `json:"rel" yaml:"rel"`
	Abs T `json:"abs" yaml:"abs"`
}

// NewTolerance returns the tolerance pair (rel, abs).
func NewTolerance[T any](rel, abs T) Tolerance[T] {
	return Tolerance[T]{Rel: rel, Abs: abs}
}

func (t Tolerance[T]) String() string {
	return fmt.Sprintf("rel=%v abs=%v", t.Rel, t.Abs)
}

// DefaultTolerance returns the default tolerances for the kind of F. Named
// types get the defaults of their underlying kind.
func DefaultTolerance[F Float]() Tolerance[F] {
	if reflect.TypeFor[F]().Kind() == reflect.Float32 {
		return Tolerance[F]{Rel: Float32RelTol, Abs: Float32AbsTol}
	}

	return Tolerance[F]{Rel: Float64RelTol, Abs: Float64AbsTol}
}

// ValidateTolerance checks that both tolerances are finite and non-negative.
// The comparison functions never call it; it is meant for tolerances that
// come from configuration.
func ValidateTolerance[F Float](tol Tolerance[F]) error {
	if err := validateOne("relative", float64(tol.Rel)); err != nil {
		return err
	}

	return validateOne("absolute", float64(tol.Abs))
}

func validateOne(name string, value float64) error {
	switch {
	case math.IsNaN(value), math.IsInf(value, 0):
		return fmt.Errorf("%w: %s tolerance must be finite, got %v", errors.ErrInvalidTolerance, name, value)
	case value < 0:
		return fmt.Errorf("%w: %s tolerance must not be negative, got %v", errors.ErrInvalidTolerance, name, value)
	default:
		return nil
	}
}
