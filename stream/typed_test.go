package stream

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/streamkit/errors"
)

func TestByteStream_WriteInts(t *testing.T) {
	b, err := NewByteStream(WithCapacity[byte](8))
	require.NoError(t, err)

	require.NoError(t, b.WriteInts(0, 127, 255))
	assert.Equal(t, []byte{0x00, 0x7f, 0xff}, b.ReadAll())
	assert.Equal(t, Ready, b.State())
}

func TestByteStream_WriteInts_OutOfRange(t *testing.T) {
	var onError atomic.Int32

	b, err := NewByteStream(
		WithCapacity[byte](8),
		WithOnError(func(*Stream[byte], error) { onError.Add(1) }),
	)
	require.NoError(t, err)

	for _, bad := range [][]int{{256}, {-1}, {1, 2, 300}} {
		b2, err := NewByteStream(WithCapacity[byte](8))
		require.NoError(t, err)

		werr := b2.WriteInts(bad...)
		require.Error(t, werr, "values %v", bad)
		assert.True(t, errors.IsInvalid(werr))
		assert.Equal(t, Errored, b2.State())
		assert.Equal(t, 0, b2.Len(), "invalid batch admits nothing")
	}

	// onError fires once on the shared stream.
	werr := b.WriteInts(500)
	require.Error(t, werr)
	assert.Equal(t, int32(1), onError.Load())
}

func TestByteStream_PlainWrites(t *testing.T) {
	b, err := NewByteStream(WithCapacity[byte](4))
	require.NoError(t, err)

	// The byte surface needs no range validation.
	require.NoError(t, b.Write(0xde, 0xad))
	v, ok := b.Read()
	require.True(t, ok)
	assert.Equal(t, byte(0xde), v)
}

func TestBitStringStream_Write(t *testing.T) {
	s, err := NewBitStringStream(WithCapacity[string](4))
	require.NoError(t, err)

	require.NoError(t, s.Write("01010110", "11111111"))
	assert.Equal(t, []string{"01010110", "11111111"}, s.ReadAll())
}

func TestBitStringStream_RejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"too short", "0101"},
		{"too long", "010101100"},
		{"bad digit", "0101012x"},
		{"empty", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := NewBitStringStream(WithCapacity[string](4))
			require.NoError(t, err)

			werr := s.Write(test.value)
			require.Error(t, werr)
			assert.True(t, errors.IsInvalid(werr))
			assert.ErrorIs(t, werr, errors.ErrPatternMismatch)
			assert.Equal(t, Errored, s.State())
		})
	}
}

func TestBitStringStream_ValidatorCannotBeReplaced(t *testing.T) {
	// A permissive caller-supplied validator must not bypass the
	// pattern check.
	s, err := NewBitStringStream(
		WithCapacity[string](4),
		WithValidator(func(string) error { return nil }),
	)
	require.NoError(t, err)

	werr := s.Write("not bits")
	require.Error(t, werr)
	assert.ErrorIs(t, werr, errors.ErrPatternMismatch)
}
