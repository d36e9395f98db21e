package numdiff_test

import (
	"strings"
	"testing"

	"github.com/amp-labs/amp-approx/approx"
	"github.com/amp-labs/amp-approx/numdiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compare(t *testing.T, left, right string, opts numdiff.Options) numdiff.Result {
	t.Helper()

	res, err := numdiff.Compare(strings.NewReader(left), strings.NewReader(right), opts)
	require.NoError(t, err)

	return res
}

func TestCompare_Identical(t *testing.T) {
	t.Parallel()

	res := compare(t, "1 2 3\n", "1 2 3\n", numdiff.DefaultOptions())

	assert.True(t, res.Identical)
	assert.True(t, res.Close())
	assert.Equal(t, res.LeftDigest, res.RightDigest)
	assert.Zero(t, res.Tokens)
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		left     string
		right    string
		tol      approx.Tolerance[float64]
		close    bool
		count    int
		tokens   int
		mismatch []string
	}{
		{
			name:   "float noise",
			left:   "0.30000000000000004, 0.6",
			right:  "0.3;0.6",
			tol:    approx.DefaultTolerance[float64](),
			close:  true,
			tokens: 2,
		},
		{
			name:     "beyond tolerance",
			left:     "x 0.3\ny 0.6",
			right:    "x 0.3\ny 0.60001",
			tol:      approx.DefaultTolerance[float64](),
			count:    1,
			tokens:   4,
			mismatch: []string{"token 4 (line 2/2): 0.6 != 0.60001"},
		},
		{
			name:   "layout differences are ignored",
			left:   "1 2\n3 4\n",
			right:  "1\t2 3\n\n4",
			tol:    approx.NewTolerance(0.0, 0.0),
			close:  true,
			tokens: 4,
		},
		{
			name:     "words must match exactly",
			left:     "temp 20",
			right:    "Temp 20",
			tol:      approx.NewTolerance(1.0, 1.0),
			count:    1,
			tokens:   2,
			mismatch: []string{"token 1 (line 1/1): temp != Temp"},
		},
		{
			name:     "number against word",
			left:     "1 2",
			right:    "1 two",
			tol:      approx.NewTolerance(1.0, 1.0),
			count:    1,
			tokens:   2,
			mismatch: []string{"token 2 (line 1/1): 2 != two"},
		},
		{
			name:     "extra tokens on the right",
			left:     "1",
			right:    "1\n2",
			tol:      approx.DefaultTolerance[float64](),
			count:    1,
			tokens:   2,
			mismatch: []string{"token 2 (line 0/2): <missing> != 2"},
		},
		{
			name:     "nan is never close to a number",
			left:     "NaN",
			right:    "0",
			tol:      approx.NewTolerance(1.0, 1.0),
			count:    1,
			tokens:   1,
			mismatch: []string{"token 1 (line 1/1): NaN != 0"},
		},
		{
			name:   "absolute tolerance",
			left:   "1e-12 100",
			right:  "0 100.5",
			tol:    approx.NewTolerance(0.0, 1.0),
			close:  true,
			tokens: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := compare(t, tt.left, tt.right, numdiff.Options{Tolerance: tt.tol})

			assert.False(t, res.Identical)
			assert.Equal(t, tt.close, res.Close())
			assert.Equal(t, tt.count, res.Count)
			assert.Equal(t, tt.tokens, res.Tokens)

			got := make([]string, 0, len(res.Mismatches))
			for _, m := range res.Mismatches {
				got = append(got, m.String())
			}

			assert.Equal(t, len(tt.mismatch), len(got))

			for i := range tt.mismatch {
				assert.Equal(t, tt.mismatch[i], got[i])
			}
		})
	}
}

func TestCompare_MaxMismatches(t *testing.T) {
	t.Parallel()

	res := compare(t, "1 2 3 4 5", "6 7 8 9 10", numdiff.Options{
		Tolerance:     approx.DefaultTolerance[float64](),
		MaxMismatches: 2,
	})

	assert.Equal(t, 5, res.Count)
	require.Len(t, res.Mismatches, 2)
	assert.Equal(t, 0, res.Mismatches[0].Index)
	assert.Equal(t, 1, res.Mismatches[1].Index)
}

func TestCompare_NegativeMaxMismatches(t *testing.T) {
	t.Parallel()

	res := compare(t, "1 2 3", "4 5 6", numdiff.Options{
		Tolerance:     approx.DefaultTolerance[float64](),
		MaxMismatches: -1,
	})

	assert.Equal(t, 3, res.Count)
	assert.Len(t, res.Mismatches, 3)
}
