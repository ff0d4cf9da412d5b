package dsl

import (
	"encoding/json"
	"fmt"
	"sort"

	godto "github.com/godto/godto"
	"github.com/godto/godto/convert"
	"github.com/shopspring/decimal"
)

// Compile normalizes a raw schema description into a compiled evaluator.
// The outermost unknown-key policy is godto.UnknownPrevent.
func Compile(raw any) (godto.Schema, error) {
	return CompileWith(raw, godto.UnknownPrevent)
}

// CompileWith compiles raw with an explicit root unknown-key policy. Mapping
// nodes without their own policy inherit it; Dict(...).Unknown overrides it
// for a subtree.
func CompileWith(raw any, policy godto.UnknownPolicy) (godto.Schema, error) {
	return compileNode(raw, policy)
}

// MustCompile is Compile panicking on schema-definition errors. Misuse of the
// schema vocabulary is a programmer error, so schemas built at program init
// conventionally go through MustCompile.
func MustCompile(raw any) godto.Schema {
	s, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// objectCompiler is implemented by Object[T] wrappers; the generic target
// type is hidden behind it so compileNode can stay non-generic.
type objectCompiler interface {
	compileObject(policy godto.UnknownPolicy) (godto.Schema, error)
}

// compileNode classifies one raw node and compiles it, leaves first. The
// dispatch order mirrors the vocabulary's priority: native literals, then
// explicit wrappers, then scalars, then bare converters.
func compileNode(raw any, policy godto.UnknownPolicy) (godto.Schema, error) {
	switch n := raw.(type) {
	case nil:
		return nil, godto.NewSchemaError("nil is not a valid schema node")
	case Map:
		return compileMapping(n, nil, policy)
	case map[godto.Marker]any:
		return compileMapping(Map(n), nil, policy)
	case map[string]any:
		return nil, godto.NewSchemaError("mapping schema keys must be markers (godto.Required/Optional/Inclusive), got string keys")
	case []any:
		return compileFixedSequence(n, policy)
	case map[any]struct{}:
		return compileSetEnum(n, policy)
	case *dictSpec:
		return compileMapping(n.fields, n.policy, policy)
	case *listSpec:
		elem, err := compileNode(n.elem, policy)
		if err != nil {
			return nil, err
		}
		return &sequenceSchema{elem: elem}, nil
	case *fixedListSpec:
		return compileFixedSequence(n.elems, policy)
	case *enumSpec:
		return compileEnum(n.members, policy)
	case *literalSpec:
		return newLiteral(n.conv, n.want)
	case *opaqueSpec:
		return &opaqueSchema{wantMap: n.wantMap}, nil
	case objectCompiler:
		return n.compileObject(policy)
	case godto.Schema:
		// Already-compiled subtrees are reused as-is.
		return n, nil
	case godto.Converter:
		return &converterSchema{conv: n}, nil
	case func(any) (any, error):
		return &converterSchema{conv: godto.ConverterFunc(n)}, nil
	}
	if conv, ok := scalarConverter(raw); ok {
		return newLiteral(conv, raw)
	}
	return nil, godto.NewSchemaError("%T is not a valid schema node", raw)
}

// scalarConverter picks the coerce-to-own-kind converter for a primitive
// scalar used directly as a schema; such a scalar is an implicit literal of
// itself.
func scalarConverter(raw any) (godto.Converter, bool) {
	switch raw.(type) {
	case string:
		return convert.String(), true
	case bool:
		return convert.Bool(), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return convert.Int(), true
	case float32, float64:
		return convert.Float(), true
	case complex64, complex128:
		return convert.Complex(), true
	case decimal.Decimal, json.Number:
		return convert.Decimal(), true
	}
	return nil, false
}

// compileSetEnum fixes an iteration order for a native set literal before
// compiling it: Go map order is randomized, enum alternative order must not
// be.
func compileSetEnum(set map[any]struct{}, policy godto.UnknownPolicy) (godto.Schema, error) {
	members := make([]any, 0, len(set))
	for m := range set {
		members = append(members, m)
	}
	sort.Slice(members, func(i, j int) bool {
		return fmt.Sprint(members[i]) < fmt.Sprint(members[j])
	})
	return compileEnum(members, policy)
}
