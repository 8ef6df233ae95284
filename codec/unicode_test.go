package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/streamkit/errors"
)

func TestEncodeUTF16_BigEndian(t *testing.T) {
	out, err := EncodeUTF16("AB", BigEndian, false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x41, 0x00, 0x42}, out)
}

func TestEncodeUTF16_LittleEndian(t *testing.T) {
	out, err := EncodeUTF16("AB", LittleEndian, false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x41, 0x00, 0x42, 0x00}, out)
}

func TestEncodeUTF16_WithBOM(t *testing.T) {
	out, err := EncodeUTF16("A", BigEndian, true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xfe, 0xff, 0x00, 0x41}, out)
}

func TestDecodeUTF16_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		order ByteOrder
		bom   bool
	}{
		{"ascii big endian", "hello", BigEndian, false},
		{"ascii little endian", "hello", LittleEndian, false},
		{"bom big endian", "stream", BigEndian, true},
		{"accents", "héllo wörld", BigEndian, false},
		{"surrogate pair", "𝄞 clef", LittleEndian, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			encoded, err := EncodeUTF16(test.text, test.order, test.bom)
			require.NoError(t, err)

			decoded, err := DecodeUTF16(encoded, test.order)
			require.NoError(t, err)
			assert.Equal(t, test.text, decoded)
		})
	}
}

func TestDecodeUTF16_BOMOverridesAssumedOrder(t *testing.T) {
	// Little-endian BOM, decoded with big-endian assumed.
	encoded, err := EncodeUTF16("A", LittleEndian, true)
	require.NoError(t, err)

	decoded, err := DecodeUTF16(encoded, BigEndian)
	require.NoError(t, err)
	assert.Equal(t, "A", decoded)
}

func TestDecodeUTF16_OddLength(t *testing.T) {
	_, err := DecodeUTF16([]byte{0x00, 0x41, 0x00}, BigEndian)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
	assert.ErrorIs(t, err, errors.ErrInvalidEncoding)
}

func TestEncodeUTF16_InvalidUTF8(t *testing.T) {
	_, err := EncodeUTF16(string([]byte{0xff, 0xfe, 0xfd}), BigEndian, false)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestUTF16Units(t *testing.T) {
	units := UTF16Units("A𝄞")
	// 'A' is one unit, the clef is a surrogate pair.
	require.Len(t, units, 3)
	assert.Equal(t, uint16(0x0041), units[0])
	assert.Equal(t, uint16(0xd834), units[1])
	assert.Equal(t, uint16(0xdd1e), units[2])

	assert.Equal(t, "A𝄞", FromUTF16Units(units))
}

func TestFromUTF16Units_UnpairedSurrogate(t *testing.T) {
	out := FromUTF16Units([]uint16{0xd834})
	assert.Equal(t, "�", out)
}
