package dsl

import (
	"context"
	"math/rand/v2"
	"reflect"
	"time"

	godto "github.com/godto/godto"
	"github.com/godto/godto/i18n"
	js "github.com/godto/godto/jsonschema"
	"github.com/shopspring/decimal"
)

// Literal declares a leaf that must convert-then-equal a fixed value: conv
// runs on the input and the result must equal want. The expected value is
// normalized through conv at compile time so evaluation compares within one
// value domain (an int 6 compares equal to a converted int64 6).
func Literal(conv godto.Converter, want any) *literalSpec {
	return &literalSpec{conv: conv, want: want}
}

type literalSpec struct {
	conv godto.Converter
	want any
}

// literalSchema is the compiled literal node; want is already normalized.
type literalSchema struct {
	conv godto.Converter
	want any
}

var _ godto.Schema = (*literalSchema)(nil)

func newLiteral(conv godto.Converter, want any) (*literalSchema, error) {
	if conv == nil {
		return nil, godto.NewSchemaError("literal with nil converter")
	}
	normalized, err := conv.Convert(want)
	if err != nil {
		return nil, godto.NewSchemaError("literal value %v does not pass its own converter: %v", want, err)
	}
	return &literalSchema{conv: conv, want: normalized}, nil
}

// Parse runs the converter first; converter failures keep their own code
// (unknown errors are wrapped under conversion), then the converted value is
// compared against the expected one.
func (l *literalSchema) Parse(ctx context.Context, v any) (any, error) {
	got, err := l.conv.Convert(v)
	if err != nil {
		return nil, issuesFrom(err)
	}
	if !literalEqual(got, l.want) {
		return nil, godto.Issues{godto.Issue{
			Code:    godto.CodeLiteralMismatch,
			Message: i18n.T(godto.CodeLiteralMismatch, nil),
			Params:  map[string]any{"want": l.want, "got": got},
		}}
	}
	return got, nil
}

func (l *literalSchema) Mock(r *rand.Rand) (any, error) { return l.want, nil }

func (l *literalSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: literalType(l.want), Const: l.want}, nil
}

// literalEqual compares converted values. Decimals and times carry their own
// equality (scale and location must not matter); everything else goes
// through reflect.DeepEqual.
func literalEqual(a, b any) bool {
	switch av := a.(type) {
	case decimal.Decimal:
		bv, ok := b.(decimal.Decimal)
		return ok && av.Equal(bv)
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Equal(bv)
	}
	return reflect.DeepEqual(a, b)
}

func literalType(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case int64:
		return "integer"
	case float64:
		return "number"
	case decimal.Decimal:
		return "number"
	default:
		return ""
	}
}
