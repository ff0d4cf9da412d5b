package convert

import (
	"math/rand/v2"

	godto "github.com/godto/godto"
	"github.com/google/uuid"
)

// UUID returns a converter that parses canonical textual UUIDs into
// uuid.UUID; uuid.UUID values pass through.
func UUID() godto.Converter { return uuidConverter{} }

type uuidConverter struct{}

func (uuidConverter) Convert(v any) (any, error) {
	switch u := v.(type) {
	case uuid.UUID:
		return u, nil
	case string:
		out, err := uuid.Parse(u)
		if err != nil {
			return nil, convErr("invalid uuid %q", u)
		}
		return out, nil
	}
	return nil, convErr("cannot convert %T to uuid", v)
}

func (uuidConverter) Mock(r *rand.Rand) any {
	var b [16]byte
	for i := 0; i < 16; i += 8 {
		n := r.Uint64()
		for j := 0; j < 8; j++ {
			b[i+j] = byte(n >> (8 * j))
		}
	}
	// Stamp version 4 and RFC 4122 variant bits so the sample is a valid v4.
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return uuid.UUID(b).String()
}
