package numeric

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/c360/streamkit/errors"
)

// UInt64 is a 64-bit unsigned integer with checked arithmetic and
// explicit high/low 32-bit part access. It is a thin wrapper over the
// native uint64; the value semantics are free of heap allocation.
type UInt64 uint64

// MaxUInt64 is the largest representable value, 2^64-1.
const MaxUInt64 = UInt64(^uint64(0))

// FromParts assembles a UInt64 from its high and low 32-bit halves.
func FromParts(hi, lo uint32) UInt64 {
	return UInt64(uint64(hi)<<32 | uint64(lo))
}

// Hi returns the most significant 32 bits.
func (u UInt64) Hi() uint32 {
	return uint32(u >> 32)
}

// Lo returns the least significant 32 bits.
func (u UInt64) Lo() uint32 {
	return uint32(u)
}

// AddChecked returns u+v, or an overflow error when the mathematical
// result exceeds MaxUInt64. The receiver is unchanged on error.
func (u UInt64) AddChecked(v UInt64) (UInt64, error) {
	sum, carry := bits.Add64(uint64(u), uint64(v), 0)
	if carry != 0 {
		return 0, overflowError("AddChecked", "%d + %d", u, v)
	}
	return UInt64(sum), nil
}

// SubChecked returns u-v, or an overflow error when v > u.
func (u UInt64) SubChecked(v UInt64) (UInt64, error) {
	diff, borrow := bits.Sub64(uint64(u), uint64(v), 0)
	if borrow != 0 {
		return 0, overflowError("SubChecked", "%d - %d", u, v)
	}
	return UInt64(diff), nil
}

// MulChecked returns u*v, or an overflow error when the product does
// not fit in 64 bits.
func (u UInt64) MulChecked(v UInt64) (UInt64, error) {
	hi, lo := bits.Mul64(uint64(u), uint64(v))
	if hi != 0 {
		return 0, overflowError("MulChecked", "%d * %d", u, v)
	}
	return UInt64(lo), nil
}

// Compare returns -1, 0 or 1 ordering u against v.
func (u UInt64) Compare(v UInt64) int {
	switch {
	case u < v:
		return -1
	case u > v:
		return 1
	default:
		return 0
	}
}

// String renders the decimal form.
func (u UInt64) String() string {
	return strconv.FormatUint(uint64(u), 10)
}

// Hex renders the lowercase hexadecimal form without a prefix.
func (u UInt64) Hex() string {
	return strconv.FormatUint(uint64(u), 16)
}

// ParseDecimal parses a base-10 string into a UInt64.
func ParseDecimal(s string) (UInt64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.WrapInvalid(err, "numeric", "ParseDecimal", "decimal parsing")
	}
	return UInt64(v), nil
}

// ParseHex parses a base-16 string (no prefix) into a UInt64.
func ParseHex(s string) (UInt64, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, errors.WrapInvalid(err, "numeric", "ParseHex", "hex parsing")
	}
	return UInt64(v), nil
}

func overflowError(method, format string, args ...any) error {
	return errors.WrapInvalid(
		fmt.Errorf(format+" overflows: %w", append(args, errors.ErrOverflow)...),
		"numeric", method, "checked arithmetic")
}
