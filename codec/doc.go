// Package codec provides stateless conversions used around the stream core:
// Base64 (standard and URL-safe), UTF-16 byte and code-unit conversions,
// hexadecimal, and binary bit-string rendering.
//
// None of the codecs hold state and all are safe for concurrent use.
// Decode failures are classified as invalid input via the errors package,
// so callers can distinguish bad data from transient conditions:
//
//	data, err := codec.Base64Decode(s)
//	if errors.IsInvalid(err) {
//	    // reject the input, do not retry
//	}
//
// UTF-16 byte-level conversions honor byte order marks on decode and can
// emit one on encode; code-unit conversions (UTF16Units, FromUTF16Units)
// operate on uint16 slices and handle surrogate pairs.
//
// Bit strings pair with the stream layer's bit-string variant: a byte
// written as "01010110" by BytesToBits round-trips through BitsToBytes,
// and single groups validate with the same rule the BitStringStream
// applies to its elements.
package codec
