// Package decimals implements approximate equality for
// github.com/govalues/decimal values.
//
// The same rule as for floats is applied with exact decimal arithmetic:
//
//	|a - b| <= max(absTol, relTol * max(|a|, |b|))
//
// Decimals have no NaN or infinities. When an intermediate result overflows
// the comparison still returns a value: a difference too large to represent
// is never close, and a relative bound too large to represent admits any
// representable difference.
package decimals

import (
	"github.com/amp-labs/amp-approx/approx"
	"github.com/govalues/decimal"
)

var (
	defaultRelTol = decimal.MustParse("0.000000001")
	defaultAbsTol = decimal.MustParse("0.000000001")
)

// Decimal is a decimal.Decimal that implements approx.Comparable.
type Decimal struct {
	decimal.Decimal
}

var _ approx.Comparable[Decimal, Decimal] = Decimal{}

// New wraps d.
func New(d decimal.Decimal) Decimal {
	return Decimal{Decimal: d}
}

// MustParse parses s and panics if it is not a valid decimal.
func MustParse(s string) Decimal {
	return Decimal{Decimal: decimal.MustParse(s)}
}

func (d Decimal) IsCloseTol(other Decimal, relTol, absTol Decimal) bool {
	if d.Cmp(other.Decimal) == 0 {
		return true
	}

	diff, err := d.Sub(other.Decimal)
	if err != nil {
		return false
	}

	diff = diff.Abs()

	if diff.Cmp(absTol.Decimal) <= 0 {
		return true
	}

	magnitude := d.Abs()
	if o := other.Abs(); o.Cmp(magnitude) > 0 {
		magnitude = o
	}

	bound, err := relTol.Mul(magnitude)
	if err != nil {
		return true
	}

	return diff.Cmp(bound) <= 0
}

func (d Decimal) DefaultTolerance() approx.Tolerance[Decimal] {
	return approx.NewTolerance(New(defaultRelTol), New(defaultAbsTol))
}
