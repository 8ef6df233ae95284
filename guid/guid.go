package guid

import (
	"github.com/google/uuid"

	"github.com/c360/streamkit/errors"
)

// GUID is a 128-bit globally unique identifier in canonical
// 8-4-4-4-12 hexadecimal form.
type GUID struct {
	id uuid.UUID
}

// Zero is the all-zero GUID "00000000-0000-0000-0000-000000000000".
var Zero = GUID{}

// New returns a random (version 4) GUID.
func New() GUID {
	return GUID{id: uuid.New()}
}

// NewTimeBased returns a time-based (version 1) GUID. The embedded
// 60-bit timestamp records creation order; compare timestamps rather
// than canonical strings, since the time-low-first byte layout does
// not sort lexically. Generator relies on this.
func NewTimeBased() (GUID, error) {
	id, err := uuid.NewUUID()
	if err != nil {
		return Zero, errors.WrapTransient(err, "guid", "NewTimeBased", "uuid generation")
	}
	return GUID{id: id}, nil
}

// Parse parses a canonical GUID string.
func Parse(s string) (GUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Zero, errors.WrapInvalid(err, "guid", "Parse", "guid parsing")
	}
	return GUID{id: id}, nil
}

// MustParse is Parse that panics on invalid input. For use with
// compile-time constant strings.
func MustParse(s string) GUID {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

// IsZero reports whether g is the all-zero GUID.
func (g GUID) IsZero() bool {
	return g.id == uuid.Nil
}

// Version returns the GUID version digit (4 for random, 1 for
// time-based, 0 for the zero GUID).
func (g GUID) Version() int {
	return int(g.id.Version())
}

// String renders the canonical lowercase form.
func (g GUID) String() string {
	return g.id.String()
}

// Bytes returns the 16-byte big-endian representation.
func (g GUID) Bytes() []byte {
	b := g.id // copy, uuid.UUID is an array
	return b[:]
}

// MarshalText implements encoding.TextMarshaler.
func (g GUID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GUID) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
