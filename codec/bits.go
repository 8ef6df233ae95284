package codec

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/c360/streamkit/errors"
	"github.com/c360/streamkit/validate"
)

var bitString = validate.BitString8()

// ByteToBits renders a byte as eight binary digits, most significant
// bit first.
func ByteToBits(b byte) string {
	return fmt.Sprintf("%08b", b)
}

// BitsToByte parses an eight-digit binary string (MSB first) into a byte.
func BitsToByte(s string) (byte, error) {
	if err := bitString(s); err != nil {
		return 0, errors.WrapInvalid(err, "codec", "BitsToByte", "bit string validation")
	}
	v, err := strconv.ParseUint(s, 2, 8)
	if err != nil {
		return 0, errors.WrapInvalid(err, "codec", "BitsToByte", "binary parsing")
	}
	return byte(v), nil
}

// BytesToBits renders a byte slice as a concatenation of eight-digit
// binary groups.
func BytesToBits(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data) * 8)
	for _, b := range data {
		sb.WriteString(ByteToBits(b))
	}
	return sb.String()
}

// BitsToBytes parses a binary string whose length is a multiple of eight
// into the corresponding bytes.
func BitsToBytes(s string) ([]byte, error) {
	if len(s)%8 != 0 {
		return nil, errors.WrapInvalid(
			fmt.Errorf("bit string length %d is not a multiple of 8: %w", len(s), errors.ErrInvalidData),
			"codec", "BitsToBytes", "length check")
	}

	out := make([]byte, 0, len(s)/8)
	for i := 0; i < len(s); i += 8 {
		b, err := BitsToByte(s[i : i+8])
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// EncodeHex renders data as lowercase hexadecimal.
func EncodeHex(data []byte) string {
	return hex.EncodeToString(data)
}

// DecodeHex parses a hexadecimal string into bytes.
func DecodeHex(s string) ([]byte, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.WrapInvalid(err, "codec", "DecodeHex", "hex decoding")
	}
	return data, nil
}
