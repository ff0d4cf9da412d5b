package godto_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"testing"

	godto "github.com/godto/godto"
	"github.com/godto/godto/convert"
	g "github.com/godto/godto/dsl"
)

// ---- Helpers ----

func smallUserSchemaPrevent(tb testing.TB) godto.Schema {
	tb.Helper()
	s, err := g.Compile(g.Map{
		godto.Required("id"):   convert.String(),
		godto.Optional("name"): convert.String(),
	})
	if err != nil {
		tb.Fatalf("schema compile failed: %v", err)
	}
	return s
}

func smallUserSchemaRemove(tb testing.TB) godto.Schema {
	tb.Helper()
	s, err := g.CompileWith(g.Map{
		godto.Required("id"):   convert.String(),
		godto.Optional("name"): convert.String(),
	}, godto.UnknownRemove)
	if err != nil {
		tb.Fatalf("schema compile failed: %v", err)
	}
	return s
}

func smallUserJSON() []byte {
	return []byte(`{"id":"u_1","name":"alice"}`)
}

// generateHugeJSONArray returns a JSON array of objects of the form:
// [{"id":"obj_0","name":"n0","age":0,"active":true,"k0":"v0",...}, ...]
func generateHugeJSONArray(numObjects int, extraFields int) []byte {
	var buf bytes.Buffer
	buf.Grow(numObjects * (48 + extraFields*16))
	buf.WriteByte('[')
	for i := 0; i < numObjects; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		fmt.Fprintf(&buf, "\"id\":\"obj_%d\",", i)
		fmt.Fprintf(&buf, "\"name\":\"n%d\",", i)
		fmt.Fprintf(&buf, "\"age\":%d,", i)
		if i%2 == 0 {
			buf.WriteString("\"active\":true")
		} else {
			buf.WriteString("\"active\":false")
		}
		for k := 0; k < extraFields; k++ {
			buf.WriteByte(',')
			buf.WriteByte('"')
			buf.WriteString("k")
			buf.WriteString(strconv.Itoa(k))
			buf.WriteString("\":\"v")
			buf.WriteString(strconv.Itoa(i))
			buf.WriteString("_")
			buf.WriteString(strconv.Itoa(k))
			buf.WriteString("\"")
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

// schema for huge array items: requires id only and drops unknown keys for
// throughput-oriented parsing
func hugeItemSchema(tb testing.TB) godto.Schema {
	tb.Helper()
	s, err := g.CompileWith(g.Map{
		godto.Required("id"): convert.String(),
	}, godto.UnknownRemove)
	if err != nil {
		tb.Fatalf("schema compile failed: %v", err)
	}
	return s
}

// ---- Micro benchmarks (small inputs) ----

func Benchmark_ParseFrom_Map_Small_JSONBytes(b *testing.B) {
	ctx := context.Background()
	s := smallUserSchemaPrevent(b)
	data := smallUserJSON()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src := godto.JSONBytes(data)
		if _, err := godto.ParseFrom(ctx, s, src); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_ParseFrom_Map_Small_JSONReader(b *testing.B) {
	ctx := context.Background()
	s := smallUserSchemaPrevent(b)
	data := smallUserJSON()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := bytes.NewReader(data)
		src := godto.JSONReader(r)
		if _, err := godto.ParseFrom(ctx, s, src); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Parse_Map_Small_DecodedValue(b *testing.B) {
	ctx := context.Background()
	s := smallUserSchemaRemove(b)
	in := map[string]any{"id": "u_1", "name": "alice", "extra": "dropped"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Parse(ctx, in); err != nil {
			b.Fatal(err)
		}
	}
}

// Sequence micro: ["a","b","c"]
func Benchmark_ParseFrom_List_String_Small(b *testing.B) {
	ctx := context.Background()
	s, err := g.Compile(g.List(convert.String()))
	if err != nil {
		b.Fatal(err)
	}
	data := []byte(`["a","b","c"]`)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src := godto.JSONBytes(data)
		if _, err := godto.ParseFrom(ctx, s, src); err != nil {
			b.Fatal(err)
		}
	}
}

// ---- Macro benchmarks (huge JSON) ----

// 10k objects with 8 extra fields each
const (
	hugeObjects   = 10000
	hugeExtraKeys = 8
)

func Benchmark_ParseFrom_HugeArray_Objects_JSONBytes(b *testing.B) {
	ctx := context.Background()
	s, err := g.Compile(g.List(hugeItemSchema(b)))
	if err != nil {
		b.Fatal(err)
	}
	data := generateHugeJSONArray(hugeObjects, hugeExtraKeys)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src := godto.JSONBytes(data)
		if _, err := godto.ParseFrom(ctx, s, src); err != nil {
			b.Fatal(err)
		}
	}
}

// ---- Baseline: encoding/json ----

func Benchmark_encodingJSON_Unmarshal_SmallObject(b *testing.B) {
	data := smallUserJSON()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var v map[string]any
		if err := json.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_encodingJSON_Unmarshal_HugeArray(b *testing.B) {
	data := generateHugeJSONArray(hugeObjects, hugeExtraKeys)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var v []map[string]any
		if err := json.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
}
