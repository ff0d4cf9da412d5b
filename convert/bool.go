package convert

import (
	"encoding/json"
	"math/rand/v2"
	"strings"

	godto "github.com/godto/godto"
)

// Truth vocabularies accepted by the strict Bool converter.
var (
	trueWords  = []string{"true", "t", "yes", "y", "1"}
	falseWords = []string{"false", "f", "no", "n", "0"}
)

// Bool returns a strict boolean converter. Booleans pass through; strings
// must match one of the truth vocabularies (case-insensitive); integers 0
// and 1 are accepted. Everything else fails.
func Bool() godto.Converter { return boolConverter{} }

type boolConverter struct{}

func (boolConverter) Convert(v any) (any, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		return boolFromWord(b)
	case json.Number:
		return boolFromWord(b.String())
	}
	if n, ok := asInt64(v); ok {
		switch n {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
	}
	return nil, convErr("cannot convert %v (%T) to boolean", v, v)
}

func boolFromWord(s string) (any, error) {
	w := strings.ToLower(s)
	for _, t := range trueWords {
		if w == t {
			return true, nil
		}
	}
	for _, f := range falseWords {
		if w == f {
			return false, nil
		}
	}
	return nil, convErr("invalid boolean %q", s)
}

func (boolConverter) Mock(r *rand.Rand) any { return r.IntN(2) == 0 }

// Truthy returns a permissive boolean converter that never fails: nil,
// false, numeric zero, empty strings and empty containers are false,
// everything else is true.
func Truthy() godto.Converter { return truthyConverter{} }

type truthyConverter struct{}

func (truthyConverter) Convert(v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return false, nil
	case bool:
		return t, nil
	case string:
		return t != "", nil
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f != 0, nil
		}
		return t.String() != "", nil
	case map[string]any:
		return len(t) > 0, nil
	case []any:
		return len(t) > 0, nil
	}
	if n, ok := asInt64(v); ok {
		return n != 0, nil
	}
	if f, ok := asFloat64(v); ok {
		return f != 0, nil
	}
	return true, nil
}

func (truthyConverter) Mock(r *rand.Rand) any { return r.IntN(2) == 0 }
