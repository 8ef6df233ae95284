package codec

import (
	"encoding/base64"

	"github.com/c360/streamkit/errors"
)

// Base64Encode encodes data using standard base64 with padding.
func Base64Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Base64Decode decodes a standard, padded base64 string.
func Base64Decode(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.WrapInvalid(err, "codec", "Base64Decode", "base64 decoding")
	}
	return data, nil
}

// Base64URLEncode encodes data using the URL-safe alphabet without padding,
// suitable for embedding in URLs and file names.
func Base64URLEncode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// Base64URLDecode decodes an unpadded, URL-safe base64 string.
func Base64URLDecode(s string) ([]byte, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.WrapInvalid(err, "codec", "Base64URLDecode", "base64 decoding")
	}
	return data, nil
}
