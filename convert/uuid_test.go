package convert_test

import (
	"math/rand/v2"
	"testing"

	godto "github.com/godto/godto"
	"github.com/godto/godto/convert"
	"github.com/google/uuid"
)

func TestUUID_ParseAndPassthrough(t *testing.T) {
	c := convert.UUID()
	const text = "123e4567-e89b-12d3-a456-426614174000"

	got, err := c.Convert(text)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got.(uuid.UUID) != uuid.MustParse(text) {
		t.Fatalf("Convert = %v", got)
	}

	in := uuid.MustParse(text)
	got, err = c.Convert(in)
	if err != nil || got.(uuid.UUID) != in {
		t.Fatalf("passthrough = %v, %v", got, err)
	}

	for _, bad := range []any{"not-a-uuid", 5, nil} {
		if _, err := c.Convert(bad); err == nil {
			t.Fatalf("Convert(%v): expected error", bad)
		}
	}
}

func TestUUID_MockIsParsableV4(t *testing.T) {
	mk := convert.UUID().(godto.Mocker)
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 8; i++ {
		v := mk.Mock(r)
		s, ok := v.(string)
		if !ok {
			t.Fatalf("mock %d: expected string, got %T", i, v)
		}
		u, err := uuid.Parse(s)
		if err != nil {
			t.Fatalf("mock %d: %v", i, err)
		}
		if u.Version() != 4 {
			t.Fatalf("mock %d: expected v4, got v%d", i, u.Version())
		}
	}
}
