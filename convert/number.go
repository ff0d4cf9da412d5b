package convert

import (
	"encoding/json"
	"math"
	"math/rand/v2"
	"strconv"

	godto "github.com/godto/godto"
)

// Int returns a converter that coerces input to int64. It accepts integer
// kinds, integral floats, base-10 strings and json.Number; fractional values
// fail.
func Int() godto.Converter { return intConverter{} }

type intConverter struct{}

func (intConverter) Convert(v any) (any, error) {
	if n, ok := asInt64(v); ok {
		return n, nil
	}
	if f, ok := asFloat64(v); ok {
		return floatToInt64(f)
	}
	switch s := v.(type) {
	case string:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, convErr("invalid integer %q", s)
		}
		return n, nil
	case json.Number:
		if n, err := s.Int64(); err == nil {
			return n, nil
		}
		// JSON numbers such as 3.0 arrive in float notation.
		if f, err := s.Float64(); err == nil {
			return floatToInt64(f)
		}
		return nil, convErr("invalid integer %q", s.String())
	}
	return nil, convErr("cannot convert %T to integer", v)
}

func floatToInt64(f float64) (any, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, convErr("invalid integer %v", f)
	}
	return int64(f), nil
}

func (intConverter) Mock(r *rand.Rand) any { return r.Int64N(1000) }

// Float returns a converter that coerces input to float64 from float and
// integer kinds, numeric strings and json.Number.
func Float() godto.Converter { return floatConverter{} }

type floatConverter struct{}

func (floatConverter) Convert(v any) (any, error) {
	if f, ok := asFloat64(v); ok {
		return f, nil
	}
	if n, ok := asInt64(v); ok {
		return float64(n), nil
	}
	switch s := v.(type) {
	case string:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, convErr("invalid float %q", s)
		}
		return f, nil
	case json.Number:
		f, err := s.Float64()
		if err != nil {
			return nil, convErr("invalid float %q", s.String())
		}
		return f, nil
	}
	return nil, convErr("cannot convert %T to float", v)
}

func (floatConverter) Mock(r *rand.Rand) any { return math.Trunc(r.Float64()*1e6) / 1e3 }

// Complex returns a converter that coerces input to complex128 from complex
// kinds, real numbers and strings in Go complex notation.
func Complex() godto.Converter { return complexConverter{} }

type complexConverter struct{}

func (complexConverter) Convert(v any) (any, error) {
	switch c := v.(type) {
	case complex64:
		return complex128(c), nil
	case complex128:
		return c, nil
	case string:
		p, err := strconv.ParseComplex(c, 128)
		if err != nil {
			return nil, convErr("invalid complex %q", c)
		}
		return p, nil
	case json.Number:
		f, err := c.Float64()
		if err != nil {
			return nil, convErr("invalid complex %q", c.String())
		}
		return complex(f, 0), nil
	}
	if f, ok := asFloat64(v); ok {
		return complex(f, 0), nil
	}
	if n, ok := asInt64(v); ok {
		return complex(float64(n), 0), nil
	}
	return nil, convErr("cannot convert %T to complex", v)
}

func (complexConverter) Mock(r *rand.Rand) any { return complex(r.Float64(), r.Float64()) }
