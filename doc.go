package godto

// Package godto compiles declarative schemas into reusable validators that
// transcode untyped nested data (maps, slices, scalars) into typed values.
//
// - Schemas are compiled once via dsl.Compile and reused across calls.
// - Validation never short-circuits across sibling fields or elements; the
//   failure result is always a non-empty Issues list with a structural Path,
//   a stable Code, and a message per entry.
// - Unknown mapping keys follow an UnknownPolicy (Prevent/Allow/Remove),
//   inherited downward and overridable per mapping.
//
// Design policy:
// - Keep only public contracts in the root package; the compiler and the
//   node evaluators live under dsl/, leaf converters under convert/, input
//   sources under source/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := dsl.MustCompile(dsl.Map{
//		godto.Required("id"):    convert.Int(),
//		godto.Optional("note"):  convert.String(),
//	})
//	v, err := godto.ParseFrom(ctx, s, godto.JSONBytes(data))
