package validate

import (
	"fmt"
	"regexp"

	"github.com/c360/streamkit/errors"
)

// Element is the contract a stream consults before admitting an element
// to its buffer: it returns nil if the element passes, or a classified
// invalid-input error if it does not.
type Element[T any] func(v T) error

// Identity returns a validator that admits every element. Streams without
// an explicit validator use this.
func Identity[T any]() Element[T] {
	return func(T) error { return nil }
}

// OctetRange returns a validator for wide integers that must fit an
// unsigned byte (0..255).
func OctetRange() Element[int] {
	return func(v int) error {
		if v < 0 || v > 255 {
			return fmt.Errorf("octet value %d: %w", v, errors.ErrValueOutOfRange)
		}
		return nil
	}
}

var bitString8Pattern = regexp.MustCompile(`^[01]{8}$`)

// BitString8 returns a validator for strings that must be exactly eight
// binary digits, e.g. "01010110".
func BitString8() Element[string] {
	return func(v string) error {
		if !bitString8Pattern.MatchString(v) {
			return fmt.Errorf("bit string %q: %w", v, errors.ErrPatternMismatch)
		}
		return nil
	}
}
