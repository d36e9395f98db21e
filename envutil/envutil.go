// Package envutil reads typed values from environment variables.
package envutil

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Option modifies a Reader, for example to supply a default or validate
// the parsed value.
type Option[T any] func(Reader[T]) Reader[T]

// Default supplies dfl when the variable is not set.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}

// Validate runs f on the parsed value and records its error.
func Validate[T any](f func(T) error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return Map(rdr, func(val T) (T, error) {
			return val, f(val)
		})
	}
}

func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// NewReader returns a Reader for values that do not come from the
// environment.
func NewReader[T any](key string, present bool, err error, value T) Reader[T] {
	return Reader[T]{
		key:     key,
		present: present,
		value:   value,
		err:     err,
	}
}

func String(key string, opts ...Option[string]) Reader[string] {
	return apply(get(key), opts)
}

func Bool(key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(Map(get(key), trim), strconv.ParseBool), opts)
}

func Float64(key string, opts ...Option[float64]) Reader[float64] {
	return apply(Map(Map(get(key), trim), parseFloat64), opts)
}

// SlogLevel reads a log level name such as "debug" or "WARN+2".
func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(Map(get(key), trim), parseLevel), opts)
}

func trim(value string) (string, error) {
	return strings.TrimSpace(value), nil
}

func parseFloat64(value string) (float64, error) {
	return strconv.ParseFloat(value, 64)
}

func parseLevel(value string) (slog.Level, error) {
	var level slog.Level

	err := level.UnmarshalText([]byte(value))

	return level, err
}
