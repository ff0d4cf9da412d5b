package dsl

import (
	"context"
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"

	godto "github.com/godto/godto"
	"github.com/godto/godto/i18n"
	js "github.com/godto/godto/jsonschema"
)

// RawMap declares a passthrough node that only checks the input is a mapping;
// inner structure is neither validated nor converted.
func RawMap() *opaqueSpec { return &opaqueSpec{wantMap: true} }

// RawList declares a passthrough node that only checks the input is a
// sequence.
func RawList() *opaqueSpec { return &opaqueSpec{wantMap: false} }

type opaqueSpec struct{ wantMap bool }

// opaqueSchema is the compiled container-kind check. The result is a shallow
// clone so evaluation output never aliases a caller-owned container.
type opaqueSchema struct {
	wantMap bool
}

var _ godto.Schema = (*opaqueSchema)(nil)

func (o *opaqueSchema) Parse(ctx context.Context, v any) (any, error) {
	if o.wantMap {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, godto.Issues{godto.Issue{
				Code:    godto.CodeNotAMap,
				Message: i18n.T(godto.CodeNotAMap, nil),
				Params:  map[string]any{"got": fmt.Sprintf("%T", v)},
			}}
		}
		return maps.Clone(m), nil
	}
	l, ok := v.([]any)
	if !ok {
		return nil, godto.Issues{godto.Issue{
			Code:    godto.CodeNotAList,
			Message: i18n.T(godto.CodeNotAList, nil),
			Params:  map[string]any{"got": fmt.Sprintf("%T", v)},
		}}
	}
	return slices.Clone(l), nil
}

func (o *opaqueSchema) Mock(r *rand.Rand) (any, error) {
	if o.wantMap {
		return map[string]any{}, nil
	}
	return []any{}, nil
}

func (o *opaqueSchema) JSONSchema() (*js.Schema, error) {
	if o.wantMap {
		return &js.Schema{Type: "object"}, nil
	}
	return &js.Schema{Type: "array"}, nil
}

// converterSchema wraps a bare leaf converter used directly as a schema. The
// converter's failure contract is explicit: Issue/Issues errors pass through
// with their code intact, anything else is wrapped under conversion.
type converterSchema struct {
	conv godto.Converter
}

var _ godto.Schema = (*converterSchema)(nil)

func (c *converterSchema) Parse(ctx context.Context, v any) (any, error) {
	out, err := c.conv.Convert(v)
	if err != nil {
		return nil, issuesFrom(err)
	}
	return out, nil
}

func (c *converterSchema) Mock(r *rand.Rand) (any, error) {
	if mk, ok := c.conv.(godto.Mocker); ok {
		return mk.Mock(r), nil
	}
	return nil, fmt.Errorf("%w: converter %T does not implement godto.Mocker", ErrNotMockable, c.conv)
}

func (c *converterSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{}, nil }
