// Package profile manages named tolerance profiles.
//
// A profile file is YAML:
//
//	profiles:
//	  sensor:
//	    rel: 1e-4
//	    abs: 0.01
//
// Profiles from a file are usually merged over Builtin, so the built-in
// names stay available unless the file redefines them.
package profile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"facette.io/natsort"
	"github.com/amp-labs/amp-approx/approx"
	"github.com/amp-labs/amp-approx/envutil"
	"github.com/amp-labs/amp-approx/errors"
	"github.com/amp-labs/amp-approx/half"
	"gopkg.in/yaml.v3"
)

// Tolerance is the tolerance pair stored in a profile.
type Tolerance = approx.Tolerance[float64]

// Names of the built-in profiles.
const (
	Float64  = "float64"
	Float32  = "float32"
	Float16  = "float16"
	BFloat16 = "bfloat16"
	Exact    = "exact"
)

// Set maps profile names to tolerances.
type Set map[string]Tolerance

// Builtin returns the default tolerances of every supported scalar kind,
// plus the exact profile with both tolerances zero.
func Builtin() Set {
	return Set{
		Float64:  approx.NewTolerance(approx.Float64RelTol, approx.Float64AbsTol),
		Float32:  approx.NewTolerance(approx.Float32RelTol, approx.Float32AbsTol),
		Float16:  approx.NewTolerance(half.Float16RelTol, half.Float16AbsTol),
		BFloat16: approx.NewTolerance(half.BFloat16RelTol, half.BFloat16AbsTol),
		Exact:    approx.NewTolerance(0.0, 0.0),
	}
}

type document struct {
	Profiles map[string]Tolerance `yaml:"profiles"`
}

// Parse decodes a YAML profile document and validates every profile.
// Unknown keys are rejected.
func Parse(data []byte) (Set, error) {
	var doc document

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&doc); err != nil && err != io.EOF { //nolint:errorlint
		return nil, fmt.Errorf("decoding profiles: %w", err)
	}

	set := Set(doc.Profiles)
	if set == nil {
		set = Set{}
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}

	return set, nil
}

// Load reads and parses the profile file at path.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profiles: %w", err)
	}

	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return set, nil
}

// Get returns the named profile.
func (s Set) Get(name string) (Tolerance, error) {
	tol, ok := s[name]
	if !ok {
		return Tolerance{}, fmt.Errorf("%w: %q (known: %s)", errors.ErrUnknownProfile, name, strings.Join(s.Names(), ", "))
	}

	return tol, nil
}

// Names returns the profile names in natural order, so "f2" sorts before
// "f10".
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}

	natsort.Sort(names)

	return names
}

// Merge returns a new set holding the profiles of s overridden by those of
// other. Neither input is modified.
func (s Set) Merge(other Set) Set {
	out := make(Set, len(s)+len(other))

	for name, tol := range s {
		out[name] = tol
	}

	for name, tol := range other {
		out[name] = tol
	}

	return out
}

// Validate checks every profile and reports all invalid ones together.
func (s Set) Validate() error {
	var errs errors.Collection

	for _, name := range s.Names() {
		if err := approx.ValidateTolerance(s[name]); err != nil {
			errs.Add(fmt.Errorf("profile %q: %w", name, err))
		}
	}

	return errs.GetError()
}

// FromEnv overrides base with <prefix>_REL_TOL and <prefix>_ABS_TOL when
// they are set. The result is validated.
func FromEnv(prefix string, base Tolerance) (Tolerance, error) {
	tol := base

	for _, v := range []struct {
		suffix string
		dest   *float64
	}{
		{suffix: "_REL_TOL", dest: &tol.Rel},
		{suffix: "_ABS_TOL", dest: &tol.Abs},
	} {
		val, ok, err := envutil.Float64(prefix + v.suffix).Lookup()
		if err != nil {
			return Tolerance{}, fmt.Errorf("%w: %w", errors.ErrInvalidTolerance, err)
		}

		if ok {
			*v.dest = val
		}
	}

	if err := approx.ValidateTolerance(tol); err != nil {
		return Tolerance{}, err
	}

	return tol, nil
}
