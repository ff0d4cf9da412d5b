package godto

import (
	"bytes"
	"encoding/json"
	"io"
	"sync"
)

// Source abstracts over polymorphic input sources that decode into the
// untyped value shapes Parse consumes (map[string]any, []any, scalars).
type Source interface {
	Decode() (any, error)
}

// JSONDriver decodes JSON documents via a pluggable SPI. The default
// implementation is based on encoding/json and may be swapped with
// SetJSONDriver; source/gojson provides a goccy/go-json backed driver.
type JSONDriver interface {
	Decode(data []byte) (any, error)
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = defaultJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the default encoding/json-backed driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = defaultJSONDriver{}
	jsonDriverMu.Unlock()
}

func getJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// defaultJSONDriver wraps the encoding/json implementation. Numbers decode as
// json.Number so decimal literals keep their full precision.
type defaultJSONDriver struct{}

func (defaultJSONDriver) Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func (defaultJSONDriver) Name() string { return "encoding/json" }

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return jsonBytesSource{data: b} }

// JSONReader wraps an io.Reader as a JSON Source. The reader is drained on
// Decode.
func JSONReader(r io.Reader) Source { return jsonReaderSource{r: r} }

// ValueSource wraps an already-decoded value as a Source.
func ValueSource(v any) Source { return valueSource{v: v} }

type jsonBytesSource struct{ data []byte }

func (s jsonBytesSource) Decode() (any, error) { return getJSONDriver().Decode(s.data) }

type jsonReaderSource struct{ r io.Reader }

func (s jsonReaderSource) Decode() (any, error) {
	b, err := io.ReadAll(s.r)
	if err != nil {
		return nil, err
	}
	return getJSONDriver().Decode(b)
}

type valueSource struct{ v any }

func (s valueSource) Decode() (any, error) { return s.v, nil }
