// Package convert ships the built-in leaf converters composed by schemas:
// scalar coercions (String/Int/Float/Complex), strict and permissive boolean
// parsing, exact decimals, layout-checked datetimes and UUIDs. Every
// converter implements godto.Converter and godto.Mocker, so schemas built
// from them support mock generation.
package convert

import (
	"fmt"
	"math"

	godto "github.com/godto/godto"
)

// convErr builds the conversion-failure issue converters return. Returning an
// Issue (not a plain error) keeps the code intact when the engine aggregates.
func convErr(format string, args ...any) godto.Issue {
	return godto.Issue{Code: godto.CodeConversion, Message: fmt.Sprintf(format, args...)}
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) <= math.MaxInt64 {
			return int64(n), true
		}
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n <= math.MaxInt64 {
			return int64(n), true
		}
	}
	return 0, false
}

func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
