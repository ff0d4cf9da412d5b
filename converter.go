package godto

import "math/rand/v2"

// Converter is the leaf converter protocol: one raw value in, one converted
// value or an error out. Converters are supplied by callers (or taken from
// the convert package) and composed by the schema compiler; they must be
// safe for concurrent use.
//
// A converter that fails should return an Issue or Issues so the failure
// keeps its code; any other error is wrapped by the engine under the
// conversion code before it is surfaced.
type Converter interface {
	Convert(v any) (any, error)
}

// ConverterFunc adapts a plain function to the Converter interface.
type ConverterFunc func(v any) (any, error)

// Convert implements Converter.
func (f ConverterFunc) Convert(v any) (any, error) { return f(v) }

// Mocker is an optional Converter capability: fabricate one sample value the
// converter itself would accept. Deterministic for a given *rand.Rand so
// seeded mock generation is reproducible.
type Mocker interface {
	Mock(r *rand.Rand) any
}
