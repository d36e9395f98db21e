package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amp-labs/amp-approx/envutil"
	"github.com/amp-labs/amp-approx/errors"
	"github.com/amp-labs/amp-approx/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	t.Parallel()

	set := profile.Builtin()

	assert.Equal(t, []string{"bfloat16", "exact", "float16", "float32", "float64"}, set.Names())
	require.NoError(t, set.Validate())

	f64, err := set.Get(profile.Float64)
	require.NoError(t, err)
	assert.InDelta(t, 1e-9, f64.Rel, 0)
	assert.InDelta(t, 1e-9, f64.Abs, 0)

	exact, err := set.Get(profile.Exact)
	require.NoError(t, err)
	assert.Zero(t, exact.Rel)
	assert.Zero(t, exact.Abs)

	f32, err := set.Get(profile.Float32)
	require.NoError(t, err)
	assert.Greater(t, f32.Rel, f64.Rel)
}

func TestGet_Unknown(t *testing.T) {
	t.Parallel()

	_, err := profile.Builtin().Get("float128")
	require.ErrorIs(t, err, errors.ErrUnknownProfile)
	assert.Contains(t, err.Error(), `"float128"`)
	assert.Contains(t, err.Error(), "float64")
}

func TestParse(t *testing.T) {
	t.Parallel()

	set, err := profile.Parse([]byte(`
profiles:
  sensor10:
    rel: 1e-4
    abs: 0.01
  sensor2:
    rel: 0.5
  sensor1:
    abs: 2
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"sensor1", "sensor2", "sensor10"}, set.Names())

	sensor, err := set.Get("sensor10")
	require.NoError(t, err)
	assert.InDelta(t, 1e-4, sensor.Rel, 0)
	assert.InDelta(t, 0.01, sensor.Abs, 0)

	partial, err := set.Get("sensor2")
	require.NoError(t, err)
	assert.Zero(t, partial.Abs)
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	set, err := profile.Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, set.Names())
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		contains []string
	}{
		{
			name:     "unknown key",
			doc:      "profiles:\n  a:\n    relative: 1\n",
			contains: []string{"decoding profiles"},
		},
		{
			name:     "not yaml",
			doc:      "profiles: [",
			contains: []string{"decoding profiles"},
		},
		{
			name: "all invalid profiles are reported",
			doc: "profiles:\n" +
				"  neg:\n    rel: -1\n" +
				"  nan:\n    abs: .nan\n" +
				"  ok:\n    rel: 1\n",
			contains: []string{`profile "neg"`, `profile "nan"`, "must not be negative", "must be finite"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := profile.Parse([]byte(tt.doc))
			require.Error(t, err)

			for _, s := range tt.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestParse_InvalidToleranceSentinel(t *testing.T) {
	t.Parallel()

	_, err := profile.Parse([]byte("profiles:\n  inf:\n    rel: .inf\n"))
	require.ErrorIs(t, err, errors.ErrInvalidTolerance)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profiles:\n  loose:\n    rel: 0.1\n    abs: 0.1\n"), 0o600))

	set, err := profile.Load(path)
	require.NoError(t, err)

	loose, err := set.Get("loose")
	require.NoError(t, err)
	assert.InDelta(t, 0.1, loose.Rel, 0)

	_, err = profile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("profiles:\n  x:\n    rel: -1\n"), 0o600))

	_, err = profile.Load(bad)
	require.ErrorIs(t, err, errors.ErrInvalidTolerance)
	assert.Contains(t, err.Error(), bad)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := profile.Builtin()
	override := profile.Set{
		profile.Float64: {Rel: 1e-6, Abs: 0},
		"custom":        {Rel: 1, Abs: 1},
	}

	merged := base.Merge(override)

	f64, err := merged.Get(profile.Float64)
	require.NoError(t, err)
	assert.InDelta(t, 1e-6, f64.Rel, 0)

	_, err = merged.Get("custom")
	require.NoError(t, err)

	orig, err := base.Get(profile.Float64)
	require.NoError(t, err)
	assert.InDelta(t, 1e-9, orig.Rel, 0)

	_, err = base.Get("custom")
	require.ErrorIs(t, err, errors.ErrUnknownProfile)
}

func TestFromEnv(t *testing.T) { //nolint:paralleltest
	base := profile.Tolerance{Rel: 1e-9, Abs: 1e-9}

	tol, err := profile.FromEnv("NUMDIFF_TEST", base)
	require.NoError(t, err)
	assert.Equal(t, base, tol)

	t.Setenv("NUMDIFF_TEST_REL_TOL", "0.001")

	tol, err = profile.FromEnv("NUMDIFF_TEST", base)
	require.NoError(t, err)
	assert.InDelta(t, 0.001, tol.Rel, 0)
	assert.InDelta(t, 1e-9, tol.Abs, 0)

	t.Setenv("NUMDIFF_TEST_ABS_TOL", " 5 ")

	tol, err = profile.FromEnv("NUMDIFF_TEST", base)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, tol.Abs, 0)
}

func TestFromEnv_Invalid(t *testing.T) { //nolint:paralleltest
	base := profile.Tolerance{}

	t.Setenv("NUMDIFF_BAD_REL_TOL", "tiny")

	_, err := profile.FromEnv("NUMDIFF_BAD", base)
	require.ErrorIs(t, err, errors.ErrInvalidTolerance)
	require.ErrorIs(t, err, envutil.ErrBadEnvVar)
	assert.Contains(t, err.Error(), "NUMDIFF_BAD_REL_TOL")

	t.Setenv("NUMDIFF_BAD_REL_TOL", "-1")

	_, err = profile.FromEnv("NUMDIFF_BAD", base)
	require.ErrorIs(t, err, errors.ErrInvalidTolerance)

	t.Setenv("NUMDIFF_BAD_REL_TOL", "NaN")

	_, err = profile.FromEnv("NUMDIFF_BAD", base)
	require.ErrorIs(t, err, errors.ErrInvalidTolerance)
}
