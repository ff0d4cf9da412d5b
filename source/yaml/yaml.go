// Package yaml provides godto.Source implementations for YAML documents.
// Decoded values are normalized into the JSON-like shapes Parse consumes:
// map[any]any becomes map[string]any recursively, so YAML input behaves
// exactly like JSON input.
package yaml

import (
	"fmt"
	"io"

	yv3 "gopkg.in/yaml.v3"

	godto "github.com/godto/godto"
)

// Bytes wraps a YAML document as a godto.Source.
func Bytes(b []byte) godto.Source { return bytesSource{data: b} }

// Reader wraps an io.Reader holding one YAML document as a godto.Source. The
// reader is drained on Decode.
func Reader(r io.Reader) godto.Source { return readerSource{r: r} }

type bytesSource struct{ data []byte }

func (s bytesSource) Decode() (any, error) {
	var node any
	if err := yv3.Unmarshal(s.data, &node); err != nil {
		return nil, err
	}
	return Normalize(node), nil
}

type readerSource struct{ r io.Reader }

func (s readerSource) Decode() (any, error) {
	b, err := io.ReadAll(s.r)
	if err != nil {
		return nil, err
	}
	return bytesSource{data: b}.Decode()
}

// Normalize converts YAML-decoded values (which may contain map[any]any and
// non-string keys) into JSON-like map[string]any recursively. Non-string keys
// are stringified with their YAML rendering, so numeric keys become their
// decimal text.
func Normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = Normalize(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				ks = fmt.Sprint(k)
			}
			out[ks] = Normalize(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = Normalize(t[i])
		}
		return out
	default:
		return v
	}
}
