package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/streamkit/errors"
)

func TestByteToBits(t *testing.T) {
	tests := []struct {
		b    byte
		want string
	}{
		{0x00, "00000000"},
		{0xff, "11111111"},
		{0x56, "01010110"},
		{0x01, "00000001"},
		{0x80, "10000000"},
	}

	for _, test := range tests {
		t.Run(test.want, func(t *testing.T) {
			assert.Equal(t, test.want, ByteToBits(test.b))

			back, err := BitsToByte(test.want)
			require.NoError(t, err)
			assert.Equal(t, test.b, back)
		})
	}
}

func TestBitsToByte_Invalid(t *testing.T) {
	for _, bad := range []string{"", "0101", "012345678", "0101011x"} {
		_, err := BitsToByte(bad)
		require.Error(t, err, "input %q", bad)
		assert.True(t, errors.IsInvalid(err))
	}
}

func TestBytesToBits(t *testing.T) {
	assert.Equal(t, "", BytesToBits(nil))
	assert.Equal(t, "0000000111111111", BytesToBits([]byte{0x01, 0xff}))
}

func TestBitsToBytes(t *testing.T) {
	out, err := BitsToBytes("0000000111111111")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0xff}, out)

	out, err = BitsToBytes("")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = BitsToBytes("0101")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidData)
}

func TestHexRoundTrip(t *testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef}
	encoded := EncodeHex(data)
	assert.Equal(t, "deadbeef", encoded)

	decoded, err := DecodeHex(encoded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestDecodeHex_Invalid(t *testing.T) {
	for _, bad := range []string{"abc", "zz", "0x10"} {
		_, err := DecodeHex(bad)
		require.Error(t, err, "input %q", bad)
		assert.True(t, errors.IsInvalid(err))
	}
}
