package convert

import (
	"encoding/json"
	"math/rand/v2"

	godto "github.com/godto/godto"
	"github.com/shopspring/decimal"
)

// Decimal returns a converter producing decimal.Decimal. Values reach it as
// strings, integers, json.Number or decimal.Decimal; floats are rejected so
// binary rounding noise never leaks into exact arithmetic.
func Decimal() godto.Converter { return decimalConverter{} }

type decimalConverter struct{}

func (decimalConverter) Convert(v any) (any, error) {
	switch d := v.(type) {
	case decimal.Decimal:
		return d, nil
	case string:
		out, err := decimal.NewFromString(d)
		if err != nil {
			return nil, convErr("invalid decimal %q", d)
		}
		return out, nil
	case json.Number:
		out, err := decimal.NewFromString(d.String())
		if err != nil {
			return nil, convErr("invalid decimal %q", d.String())
		}
		return out, nil
	case float32, float64:
		return nil, convErr("value for a decimal can only be a string or an integer, not %T", v)
	}
	if n, ok := asInt64(v); ok {
		return decimal.NewFromInt(n), nil
	}
	return nil, convErr("value for a decimal can only be a string or an integer, not %T", v)
}

func (decimalConverter) Mock(r *rand.Rand) any {
	return decimal.New(r.Int64N(1_000_000), -int32(r.IntN(3))).String()
}
