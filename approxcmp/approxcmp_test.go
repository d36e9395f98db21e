package approxcmp_test

import (
	"math"
	"testing"

	"github.com/amp-labs/amp-approx/approxcmp"
	"github.com/amp-labs/amp-approx/geom"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name   string
	Value  float64
	Gain   float32
	Phase  complex128
	Series []float64
}

var (
	tenth = 0.1
	fifth = 0.2
)

func TestEquate(t *testing.T) {
	t.Parallel()

	got := sample{
		Name:   "a",
		Value:  tenth + fifth,
		Gain:   float32(tenth) * 3,
		Phase:  complex(tenth+fifth, 1),
		Series: []float64{tenth + fifth, 1},
	}
	want := sample{Name: "a", Value: 0.3, Gain: 0.3, Phase: complex(0.3, 1), Series: []float64{0.3, 1}}

	assert.False(t, cmp.Equal(got, want))
	assert.True(t, cmp.Equal(got, want, approxcmp.Equate()))

	want.Name = "b"
	assert.False(t, cmp.Equal(got, want, approxcmp.Equate()))

	want.Name = "a"
	want.Series[1] = 1.001
	diff := cmp.Diff(want, got, approxcmp.Equate())
	assert.Contains(t, diff, "Series")
}

func TestEquate_NaN(t *testing.T) {
	t.Parallel()

	assert.False(t, cmp.Equal(math.NaN(), math.NaN(), approxcmp.Equate()))
	assert.True(t, cmp.Equal(math.Inf(1), math.Inf(1), approxcmp.Equate()))
}

func TestEquateTol(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		a, b   any
		rel    float64
		abs    float64
		expect bool
	}{
		{name: "float64 within rel", a: 100.0, b: 101.0, rel: 0.02, expect: true},
		{name: "float64 outside rel", a: 100.0, b: 103.0, rel: 0.02, expect: false},
		{name: "float32 within abs", a: float32(1), b: float32(1.4), abs: 0.5, expect: true},
		{name: "complex64 outside", a: complex64(1), b: complex64(2), abs: 0.5, expect: false},
		{name: "complex128 within", a: complex(1, 1), b: complex(1, 1.2), abs: 0.5, expect: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expect, cmp.Equal(tt.a, tt.b, approxcmp.EquateTol(tt.rel, tt.abs)))
		})
	}
}

func TestComparer(t *testing.T) {
	t.Parallel()

	type path struct {
		Points []geom.Point2[float64]
	}

	got := path{Points: []geom.Point2[float64]{{X: tenth + fifth, Y: 1}, {X: 2, Y: 2}}}
	want := path{Points: []geom.Point2[float64]{{X: 0.3, Y: 1}, {X: 2, Y: 2}}}

	assert.False(t, cmp.Equal(got, want))
	assert.True(t, cmp.Equal(got, want, approxcmp.Comparer[geom.Point2[float64], float64]()))

	assert.False(t, cmp.Equal(got, want, approxcmp.ComparerTol[geom.Point2[float64], float64](0.0, 0.0)))
	assert.True(t, cmp.Equal(
		geom.Point2[float64]{X: 1, Y: 1},
		geom.Point2[float64]{X: 1.1, Y: 1},
		approxcmp.ComparerTol[geom.Point2[float64], float64](0.0, 0.2),
	))
}
