// Package half implements approximate equality for 16-bit floating-point
// kinds. Values and tolerances are widened to float32 and compared with the
// float32 rule, so the results match approx.Float32 on the widened values.
package half

import (
	"math"
	"strconv"

	"github.com/amp-labs/amp-approx/approx"
	"github.com/x448/float16"
)

// Default tolerances. Half precision has about three decimal digits and
// bfloat16 about two, so both are looser than float32.
const (
	Float16RelTol  = 1e-3
	Float16AbsTol  = 1e-3
	BFloat16RelTol = 1e-2
	BFloat16AbsTol = 1e-2
)

// Float16 is an IEEE 754 binary16 value. It wraps the bit pattern so that
// numeric literals cannot be mistaken for raw bits; build values with
// FromFloat32 or Float16FromBits.
type Float16 struct {
	bits float16.Float16
}

var _ approx.Comparable[Float16, Float16] = Float16{}

// FromFloat32 rounds f to the nearest Float16.
func FromFloat32(f float32) Float16 {
	return Float16{bits: float16.Fromfloat32(f)}
}

// Float16FromBits returns the Float16 with the given binary16 encoding.
func Float16FromBits(bits uint16) Float16 {
	return Float16{bits: float16.Frombits(bits)}
}

// Bits returns the binary16 encoding of f.
func (f Float16) Bits() uint16 {
	return f.bits.Bits()
}

// Float32 returns f widened to float32. The conversion is exact.
func (f Float16) Float32() float32 {
	return f.bits.Float32()
}

func (f Float16) String() string {
	return f.bits.String()
}

func (f Float16) IsCloseTol(other Float16, relTol, absTol Float16) bool {
	return approx.IsCloseFloatTol(f.Float32(), other.Float32(), relTol.Float32(), absTol.Float32())
}

func (f Float16) DefaultTolerance() approx.Tolerance[Float16] {
	return approx.NewTolerance(FromFloat32(Float16RelTol), FromFloat32(Float16AbsTol))
}

// BFloat16 is a brain floating-point value: the upper 16 bits of a float32.
// Like Float16 it hides the bits; use BFloat16FromFloat32 or
// BFloat16FromBits.
type BFloat16 struct {
	bits uint16
}

var _ approx.Comparable[BFloat16, BFloat16] = BFloat16{}

// BFloat16Epsilon returns the difference between 1 and the next larger
// BFloat16.
func BFloat16Epsilon() BFloat16 {
	return BFloat16{bits: 0x3C00} //nolint:mnd
}

// BFloat16FromFloat32 rounds f to the nearest BFloat16, ties to even.
func BFloat16FromFloat32(f float32) BFloat16 {
	bits := math.Float32bits(f)
	if math.IsNaN(float64(f)) {
		// Keep it a NaN after truncation.
		return BFloat16{bits: uint16(bits>>16 | 0x40)}
	}

	rounding := uint32(0x7FFF) + (bits>>16)&1

	return BFloat16{bits: uint16((bits + rounding) >> 16)}
}

// BFloat16FromBits returns the BFloat16 with the given encoding.
func BFloat16FromBits(bits uint16) BFloat16 {
	return BFloat16{bits: bits}
}

// Bits returns the encoding of b.
func (b BFloat16) Bits() uint16 {
	return b.bits
}

// Float32 returns b widened to float32. The conversion is exact.
func (b BFloat16) Float32() float32 {
	return math.Float32frombits(uint32(b.bits) << 16)
}

func (b BFloat16) String() string {
	return strconv.FormatFloat(float64(b.Float32()), 'g', -1, 32)
}

func (b BFloat16) IsCloseTol(other BFloat16, relTol, absTol BFloat16) bool {
	return approx.IsCloseFloatTol(b.Float32(), other.Float32(), relTol.Float32(), absTol.Float32())
}

func (b BFloat16) DefaultTolerance() approx.Tolerance[BFloat16] {
	return approx.NewTolerance(BFloat16FromFloat32(BFloat16RelTol), BFloat16FromFloat32(BFloat16AbsTol))
}
