package stream

import (
	"github.com/c360/streamkit/errors"
	"github.com/c360/streamkit/validate"
)

// ByteStream is a Stream of bytes with an integer write surface for
// callers holding wide values: WriteInts admits only values in the
// unsigned octet range.
type ByteStream struct {
	*Stream[byte]

	octet validate.Element[int]
}

// NewByteStream creates a byte stream. Every byte value is a valid
// element, so the range check only applies on the WriteInts path.
func NewByteStream(opts ...Option[byte]) (*ByteStream, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return &ByteStream{
		Stream: s,
		octet:  validate.OctetRange(),
	}, nil
}

// WriteInts narrows values to bytes and writes them. A value outside
// 0..255 is an invalid element and drives the stream to Errored, the
// same way a failed element validator does on Write.
func (b *ByteStream) WriteInts(values ...int) error {
	if len(values) == 0 {
		return nil
	}

	data := make([]byte, len(values))
	for i, v := range values {
		if verr := b.octet(v); verr != nil {
			err := errors.WrapInvalid(verr, "stream", "WriteInts", "octet range validation")
			b.mu.Lock()
			b.stats.Reject()
			if b.metrics != nil {
				b.metrics.writeFailure("invalid")
			}
			fire := b.failLocked(err)
			b.mu.Unlock()
			if fire != nil {
				fire()
			}
			return err
		}
		data[i] = byte(v)
	}
	return b.Write(data...)
}
