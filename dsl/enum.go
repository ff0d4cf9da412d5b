package dsl

import (
	"context"
	"fmt"
	"math/rand/v2"

	godto "github.com/godto/godto"
	"github.com/godto/godto/i18n"
	js "github.com/godto/godto/jsonschema"
)

// Enum declares a first-match-wins union of literals: alternatives are tried
// in authored order and the first whose conversion succeeds and matches wins.
// Every member must compile to a literal node. A native set literal
// (map[any]struct{}) compiles to the same node with a sorted, fixed
// alternative order.
func Enum(members ...any) *enumSpec { return &enumSpec{members: members} }

type enumSpec struct{ members []any }

// enumSchema is the compiled enumeration node.
type enumSchema struct {
	alts []*literalSchema
}

var _ godto.Schema = (*enumSchema)(nil)

func compileEnum(members []any, policy godto.UnknownPolicy) (*enumSchema, error) {
	if len(members) == 0 {
		return nil, godto.NewSchemaError("enum needs at least one literal alternative")
	}
	alts := make([]*literalSchema, 0, len(members))
	for _, m := range members {
		child, err := compileNode(m, policy)
		if err != nil {
			return nil, err
		}
		lit, ok := child.(*literalSchema)
		if !ok {
			return nil, godto.NewSchemaError("only literal values are supported in an enum, got %T", m)
		}
		alts = append(alts, lit)
	}
	return &enumSchema{alts: alts}, nil
}

// Parse returns the first alternative that accepts the input. Alternatives
// are mutually exclusive rather than co-occurring fields, so per-alternative
// failures are swallowed: a total miss is one enum_no_match issue.
func (e *enumSchema) Parse(ctx context.Context, v any) (any, error) {
	for _, alt := range e.alts {
		if out, err := alt.Parse(ctx, v); err == nil {
			return out, nil
		}
	}
	return nil, godto.Issues{godto.Issue{
		Code:    godto.CodeEnumNoMatch,
		Message: i18n.T(godto.CodeEnumNoMatch, nil),
		Params:  map[string]any{"got": fmt.Sprint(v)},
	}}
}

func (e *enumSchema) Mock(r *rand.Rand) (any, error) {
	return e.alts[r.IntN(len(e.alts))].Mock(r)
}

func (e *enumSchema) JSONSchema() (*js.Schema, error) {
	vals := make([]any, 0, len(e.alts))
	for _, alt := range e.alts {
		vals = append(vals, alt.want)
	}
	return &js.Schema{Enum: vals}, nil
}
