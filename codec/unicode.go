package codec

import (
	"unicode/utf16"
	"unicode/utf8"

	xunicode "golang.org/x/text/encoding/unicode"

	"github.com/c360/streamkit/errors"
)

// ByteOrder selects the byte order for UTF-16 byte-level conversions.
type ByteOrder int

const (
	// BigEndian encodes the most significant byte of each code unit first.
	BigEndian ByteOrder = iota
	// LittleEndian encodes the least significant byte of each code unit first.
	LittleEndian
)

func (bo ByteOrder) endianness() xunicode.Endianness {
	if bo == LittleEndian {
		return xunicode.LittleEndian
	}
	return xunicode.BigEndian
}

// EncodeUTF16 converts a UTF-8 string to UTF-16 bytes in the given byte
// order, optionally prefixed with a byte order mark.
func EncodeUTF16(s string, order ByteOrder, withBOM bool) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, errors.WrapInvalid(errors.ErrInvalidEncoding,
			"codec", "EncodeUTF16", "UTF-8 validation")
	}

	bom := xunicode.IgnoreBOM
	if withBOM {
		bom = xunicode.UseBOM
	}

	enc := xunicode.UTF16(order.endianness(), bom).NewEncoder()
	out, err := enc.Bytes([]byte(s))
	if err != nil {
		return nil, errors.WrapInvalid(err, "codec", "EncodeUTF16", "UTF-16 encoding")
	}
	return out, nil
}

// DecodeUTF16 converts UTF-16 bytes to a UTF-8 string. The assumed byte
// order applies when no byte order mark is present; a leading BOM is
// honored and consumed.
func DecodeUTF16(b []byte, order ByteOrder) (string, error) {
	if len(b)%2 != 0 {
		return "", errors.WrapInvalid(errors.ErrInvalidEncoding,
			"codec", "DecodeUTF16", "odd byte length check")
	}

	dec := xunicode.UTF16(order.endianness(), xunicode.UseBOM).NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		return "", errors.WrapInvalid(err, "codec", "DecodeUTF16", "UTF-16 decoding")
	}
	return string(out), nil
}

// UTF16Units converts a string to its UTF-16 code units, including
// surrogate pairs for characters outside the basic multilingual plane.
func UTF16Units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// FromUTF16Units converts UTF-16 code units back to a string. Unpaired
// surrogates decode to the Unicode replacement character.
func FromUTF16Units(units []uint16) string {
	return string(utf16.Decode(units))
}
