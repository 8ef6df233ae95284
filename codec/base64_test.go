package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/streamkit/errors"
)

func TestBase64RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"ascii", []byte("hello, world")},
		{"binary", []byte{0x00, 0xff, 0x10, 0x80, 0x7f}},
		{"padding boundary", []byte("ab")},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			encoded := Base64Encode(test.data)
			decoded, err := Base64Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, test.data, decoded)
		})
	}
}

func TestBase64KnownVector(t *testing.T) {
	// RFC 4648 test vector
	assert.Equal(t, "Zm9vYmFy", Base64Encode([]byte("foobar")))

	decoded, err := Base64Decode("Zm9vYg==")
	require.NoError(t, err)
	assert.Equal(t, []byte("foob"), decoded)
}

func TestBase64Decode_Invalid(t *testing.T) {
	for _, bad := range []string{"not base64!!", "Zm9v YmFy", "Zm9vYg="} {
		_, err := Base64Decode(bad)
		require.Error(t, err, "input %q", bad)
		assert.True(t, errors.IsInvalid(err))
	}
}

func TestBase64URL(t *testing.T) {
	// Bytes whose standard encoding contains '+' and '/'
	data := []byte{0xfb, 0xff, 0xfe}
	encoded := Base64URLEncode(data)
	assert.NotContains(t, encoded, "+")
	assert.NotContains(t, encoded, "/")
	assert.NotContains(t, encoded, "=")

	decoded, err := Base64URLDecode(encoded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestBase64URLDecode_RejectsPadding(t *testing.T) {
	_, err := Base64URLDecode("Zm9vYg==")
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}
