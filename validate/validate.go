// Package validate provides parameter guards and the pluggable element
// validator contract used by typed stream variants.
package validate

import (
	"fmt"
	"reflect"

	"github.com/c360/streamkit/errors"
)

// NotNil checks that v is neither a nil interface nor a typed nil
// (pointer, slice, map, channel or function). The name identifies the
// parameter in the returned error.
func NotNil(v any, name string) error {
	if v == nil {
		return fmt.Errorf("%s: %w", name, errors.ErrNilValue)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		if rv.IsNil() {
			return fmt.Errorf("%s: %w", name, errors.ErrNilValue)
		}
	}

	return nil
}

// NotEmpty checks that a slice has at least one element.
func NotEmpty[T any](s []T, name string) error {
	if s == nil {
		return fmt.Errorf("%s: %w", name, errors.ErrNilValue)
	}
	if len(s) == 0 {
		return fmt.Errorf("%s: %w", name, errors.ErrEmptyValue)
	}
	return nil
}

// StringNotEmpty checks that a string is non-empty.
func StringNotEmpty(s, name string) error {
	if s == "" {
		return fmt.Errorf("%s: %w", name, errors.ErrEmptyValue)
	}
	return nil
}

// Positive checks that n is strictly greater than zero.
func Positive(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d: %w", name, n, errors.ErrValueOutOfRange)
	}
	return nil
}

// IntInRange checks that lo <= v <= hi.
func IntInRange(v, lo, hi int64, name string) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s must be in [%d, %d], got %d: %w", name, lo, hi, v, errors.ErrValueOutOfRange)
	}
	return nil
}

// IndexInRange checks that i is a valid index for a collection of the
// given length.
func IndexInRange(i, length int, name string) error {
	if i < 0 || i >= length {
		return fmt.Errorf("%s index %d out of range for length %d: %w",
			name, i, length, errors.ErrValueOutOfRange)
	}
	return nil
}
