// Package dsl turns declarative schema descriptions into compiled godto
// evaluators.
//
// Overview
//   - Raw vocabulary: Map literals keyed by godto markers, native []any
//     sequences, scalar literals, and the explicit wrappers Dict/List/
//     FixedList/Enum/Literal/Object/RawMap/RawList.
//   - Compile once, evaluate many: Compile/CompileWith/MustCompile normalize
//     a raw description into an immutable node tree that is safe for
//     concurrent Parse calls.
//   - Exhaustive evaluation: mapping and sequence nodes always visit every
//     child and aggregate path-tagged issues; only enum nodes short-circuit
//     on their first successful alternative.
//   - Unknown-key policy: resolved per mapping at compile time, inherited
//     downward and overridable via Dict(...).Unknown(policy).
//   - Mock: every compiled node can fabricate input-shaped sample data that
//     its own Parse accepts (see Mock and godto.Mocker).
//
// Entry points
//   - Compile(raw): compile with the default UnknownPrevent root policy.
//   - CompileWith(raw, policy): compile with an explicit root policy.
//   - MustCompile(raw): compile or panic; for schemas built at program init.
//   - Object[T](fields): mapping that constructs a struct T instead of a
//     map; chain Via(method) or With(fn) to replace the default constructor.
//
// File layout (roles)
//   - compile.go: dispatch from raw descriptions to compiled nodes.
//   - mapping.go: Map/Dict and the mapping node (field resolution, renames,
//     unknown-key handling).
//   - array.go: List/FixedList and the sequence nodes.
//   - enum.go: Enum and first-match-wins alternatives.
//   - literal.go: Literal and convert-then-compare evaluation.
//   - bind.go: Object[T] construction via reflection.
//   - opaque.go: RawMap/RawList passthrough and bare converter leaves.
//   - mock.go: sample-data generation over compiled trees.
//
// Design guidelines
//   - Keep the node variant set closed: one compiled type per raw shape,
//     compilation and evaluation as two distinct passes.
//   - Never mutate caller-owned containers; every Parse builds fresh result
//     containers.
//   - Deterministic iteration everywhere: fields and unknown keys are
//     processed in sorted order so issue order is stable.
//
// Example (quickstart)
//
//	s := dsl.MustCompile(dsl.Map{
//	    godto.Required("id"):                  convert.Int(),
//	    godto.Required("name").As("fullName"): convert.String(),
//	    godto.Optional("tags"):                dsl.List(convert.String()),
//	})
//	v, err := s.Parse(ctx, map[string]any{"id": "42", "name": "a"})
//	if err != nil {
//	    iss, _ := godto.AsIssues(err)
//	    for _, it := range iss {
//	        fmt.Println(it.Path, it.Code, it.Message)
//	    }
//	}
package dsl
