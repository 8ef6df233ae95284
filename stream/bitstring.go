package stream

import (
	"github.com/c360/streamkit/validate"
)

// BitStringStream is a Stream of 8-character binary strings ("01010110").
// The pattern validator runs on every write path, including WriteAsync.
type BitStringStream struct {
	*Stream[string]
}

// NewBitStringStream creates a bit-string stream. The bit-string
// validator is always installed, overriding any WithValidator option.
func NewBitStringStream(opts ...Option[string]) (*BitStringStream, error) {
	opts = append(opts, WithValidator[string](validate.BitString8()))
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return &BitStringStream{Stream: s}, nil
}
