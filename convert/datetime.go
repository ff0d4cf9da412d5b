package convert

import (
	"math/rand/v2"
	"time"

	godto "github.com/godto/godto"
)

// DefaultDateTimeLayout is the reference layout DateTime converters use when
// callers have no wire format of their own.
const DefaultDateTimeLayout = "2006-01-02 15:04.05"

// DateTime returns a converter that parses strings into time.Time using the
// given reference layout. The layout itself is validated at construction by a
// format/reparse round-trip; a layout that cannot reproduce its own output is
// a schema-definition error, not a data error. Already-typed time.Time values
// pass through.
func DateTime(layout string) (godto.Converter, error) {
	if layout == "" {
		return nil, godto.NewSchemaError("empty datetime layout")
	}
	ref := time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)
	if _, err := time.Parse(layout, ref.Format(layout)); err != nil {
		return nil, godto.NewSchemaError("bad datetime layout %q: %v", layout, err)
	}
	return datetimeConverter{layout: layout}, nil
}

// MustDateTime is DateTime panicking on invalid layouts.
func MustDateTime(layout string) godto.Converter {
	c, err := DateTime(layout)
	if err != nil {
		panic(err)
	}
	return c
}

type datetimeConverter struct{ layout string }

func (c datetimeConverter) Convert(v any) (any, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		out, err := time.Parse(c.layout, t)
		if err != nil {
			return nil, convErr("bad datetime %q for layout %q", t, c.layout)
		}
		return out, nil
	}
	return nil, convErr("cannot convert %T to datetime", v)
}

func (c datetimeConverter) Mock(r *rand.Rand) any {
	base := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	t := base.Add(time.Duration(r.Int64N(20 * 365 * 24)) * time.Hour)
	return t.Format(c.layout)
}
