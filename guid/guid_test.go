package guid

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/streamkit/errors"
)

func TestNew(t *testing.T) {
	a := New()
	b := New()

	assert.NotEqual(t, a, b)
	assert.Equal(t, 4, a.Version())
	assert.False(t, a.IsZero())
	assert.Len(t, a.String(), 36)
}

func TestZero(t *testing.T) {
	assert.True(t, Zero.IsZero())
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", Zero.String())
	assert.Equal(t, 0, Zero.Version())
}

func TestParse(t *testing.T) {
	const canonical = "f8e0d1c2-3b4a-4596-8778-695a4b3c2d1e"

	g, err := Parse(canonical)
	require.NoError(t, err)
	assert.Equal(t, canonical, g.String())

	// Parsing is case-insensitive, rendering is lowercase.
	upper, err := Parse("F8E0D1C2-3B4A-4596-8778-695A4B3C2D1E")
	require.NoError(t, err)
	assert.Equal(t, g, upper)
}

func TestParse_Invalid(t *testing.T) {
	for _, bad := range []string{"", "not-a-guid", "f8e0d1c2-3b4a-4596-8778"} {
		_, err := Parse(bad)
		require.Error(t, err, "input %q", bad)
		assert.True(t, errors.IsInvalid(err))
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("bogus") })
	assert.NotPanics(t, func() { MustParse("f8e0d1c2-3b4a-4596-8778-695a4b3c2d1e") })
}

func TestTextRoundTrip(t *testing.T) {
	original := New()

	text, err := original.MarshalText()
	require.NoError(t, err)

	var restored GUID
	require.NoError(t, restored.UnmarshalText(text))
	assert.Equal(t, original, restored)
}

func TestBytes(t *testing.T) {
	g := MustParse("00112233-4455-4677-8899-aabbccddeeff")
	b := g.Bytes()
	require.Len(t, b, 16)
	assert.Equal(t, byte(0x00), b[0])
	assert.Equal(t, byte(0xff), b[15])
}

func TestNewTimeBased(t *testing.T) {
	g, err := NewTimeBased()
	require.NoError(t, err)
	assert.Equal(t, 1, g.Version())
	assert.NotZero(t, Timestamp(g))

	// Random GUIDs carry no timestamp.
	assert.Zero(t, Timestamp(New()))
}

func TestGenerator_Monotonic(t *testing.T) {
	gen, err := NewGenerator()
	require.NoError(t, err)

	var prev GUID
	for i := 0; i < 100; i++ {
		next, err := gen.Next()
		require.NoError(t, err)
		if i > 0 {
			assert.Greater(t, Timestamp(next), Timestamp(prev))
		}
		prev = next
	}
}

func TestGenerator_Concurrent(t *testing.T) {
	gen, err := NewGenerator()
	require.NoError(t, err)

	const goroutines = 8
	const perGoroutine = 50

	var mu sync.Mutex
	seen := make(map[GUID]struct{}, goroutines*perGoroutine)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				g, err := gen.Next()
				assert.NoError(t, err)
				mu.Lock()
				seen[g] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, goroutines*perGoroutine)
}
