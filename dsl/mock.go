package dsl

import (
	"errors"
	"math/rand/v2"

	godto "github.com/godto/godto"
)

// ErrNotMockable reports a schema containing a leaf converter that does not
// implement godto.Mocker.
var ErrNotMockable = errors.New("dsl: schema is not mockable")

// Mock fabricates input-shaped sample data the schema's own Parse accepts.
// Output is deterministic for a seeded *rand.Rand; a nil r gets a randomly
// seeded generator.
//
// Shape rules: mappings include required fields always, optional fields by
// coin flip and inclusive fields all-or-none per monitor group; sequences
// mock one to three elements; fixed sequences mock exactly their arity;
// enums pick a random alternative; literals yield their expected value;
// bare converter leaves must implement godto.Mocker.
func Mock(s godto.Schema, r *rand.Rand) (any, error) {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s.Mock(r)
}
