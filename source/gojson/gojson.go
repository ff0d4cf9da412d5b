// Package gojson provides a godto.JSONDriver backed by goccy/go-json for
// callers that want faster decoding than encoding/json. Install it process
// wide with godto.SetJSONDriver(gojson.Driver()).
package gojson

import (
	"bytes"

	j "github.com/goccy/go-json"

	godto "github.com/godto/godto"
)

// Driver returns the goccy/go-json backed decode driver. Numbers decode as
// json.Number, matching the default driver, so decimal literals keep their
// full precision.
func Driver() godto.JSONDriver { return driverGoJSON{} }

type driverGoJSON struct{}

func (driverGoJSON) Decode(data []byte) (any, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func (driverGoJSON) Name() string { return "go-json" }
