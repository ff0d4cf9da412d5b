package godto

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/godto/godto/jsonschema"
)

// Schema is a compiled evaluator produced by dsl.Compile. The compiled node
// tree is immutable and safe for concurrent Parse calls as long as the leaf
// converters it holds are.
type Schema interface {
	// Parse validates and converts one input instance. On failure the
	// returned error is always a non-empty Issues value; input containers
	// owned by the caller are never mutated.
	Parse(ctx context.Context, v any) (any, error)
	// Mock fabricates input-shaped sample data that Parse accepts.
	// Deterministic for a seeded *rand.Rand.
	Mock(r *rand.Rand) (any, error)
	// JSONSchema projects the schema onto a minimal JSON Schema document.
	// The projection is advisory (export and documentation), not a
	// replacement for Parse.
	JSONSchema() (*jsonschema.Schema, error)
}

// ParseFrom decodes src and applies s to the decoded value. Decode failures
// (malformed input) are returned unchanged; validation failures are Issues.
func ParseFrom(ctx context.Context, s Schema, src Source) (any, error) {
	v, err := src.Decode()
	if err != nil {
		return nil, err
	}
	return s.Parse(ctx, v)
}

// ParseAs applies s to v and asserts the converted result to T.
func ParseAs[T any](ctx context.Context, s Schema, v any) (T, error) {
	var zero T
	out, err := s.Parse(ctx, v)
	if err != nil {
		return zero, err
	}
	t, ok := out.(T)
	if !ok {
		return zero, Issues{Issue{
			Code:    CodeConversion,
			Message: fmt.Sprintf("cannot use result of type %T as %T", out, zero),
		}}
	}
	return t, nil
}

// ParseFromAs decodes src, applies s and asserts the result to T.
func ParseFromAs[T any](ctx context.Context, s Schema, src Source) (T, error) {
	var zero T
	v, err := src.Decode()
	if err != nil {
		return zero, err
	}
	return ParseAs[T](ctx, s, v)
}
