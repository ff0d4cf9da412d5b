package convert

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strconv"

	godto "github.com/godto/godto"
)

// String returns a converter that coerces scalar input to string. Strings
// pass through; numbers, booleans and fmt.Stringer values are rendered;
// containers fail.
func String() godto.Converter { return stringConverter{} }

type stringConverter struct{}

func (stringConverter) Convert(v any) (any, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case json.Number:
		return s.String(), nil
	case bool:
		return strconv.FormatBool(s), nil
	case float32:
		return strconv.FormatFloat(float64(s), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64), nil
	}
	if n, ok := asInt64(v); ok {
		return strconv.FormatInt(n, 10), nil
	}
	if str, ok := v.(fmt.Stringer); ok {
		return str.String(), nil
	}
	return nil, convErr("cannot convert %T to string", v)
}

const mockAlphabet = "abcdefghijklmnopqrstuvwxyz"

func (stringConverter) Mock(r *rand.Rand) any {
	n := 8 + r.IntN(8)
	b := make([]byte, n)
	for i := range b {
		b[i] = mockAlphabet[r.IntN(len(mockAlphabet))]
	}
	return string(b)
}
