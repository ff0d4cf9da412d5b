package dsl_test

import (
	"context"
	"reflect"
	"testing"

	godto "github.com/godto/godto"
	"github.com/godto/godto/convert"
	g "github.com/godto/godto/dsl"
)

func TestList_ConvertsEveryElement(t *testing.T) {
	s := g.MustCompile(g.List(convert.Int()))
	ctx := context.Background()

	v, err := s.Parse(ctx, []any{"1", 2, 3.0})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	want := []any{int64(1), int64(2), int64(3)}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("expected %v, got %v", want, v)
	}

	v, err = s.Parse(ctx, []any{})
	if err != nil {
		t.Fatalf("parse empty err: %v", err)
	}
	if !reflect.DeepEqual(v, []any{}) {
		t.Fatalf("expected empty slice, got %v", v)
	}
}

func TestList_NotAList(t *testing.T) {
	s := g.MustCompile(g.List(convert.Int()))
	ctx := context.Background()

	iss := mustIssues(t, errOf(s.Parse(ctx, map[string]any{})))
	if len(iss) != 1 || iss[0].Code != godto.CodeNotAList {
		t.Fatalf("expected single not_a_list, got %v", iss)
	}
	if len(iss[0].Path) != 0 {
		t.Fatalf("expected root path, got %v", iss[0].Path)
	}
}

func TestList_ContinuesPastElementFailures(t *testing.T) {
	s := g.MustCompile(g.List(convert.Int()))
	ctx := context.Background()

	iss := mustIssues(t, errOf(s.Parse(ctx, []any{"1", "x", "3", "y"})))
	if len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %d: %v", len(iss), iss)
	}
	if !reflect.DeepEqual(iss[0].Path, godto.Path{1}) {
		t.Fatalf("expected path [1], got %v", iss[0].Path)
	}
	if !reflect.DeepEqual(iss[1].Path, godto.Path{3}) {
		t.Fatalf("expected path [3], got %v", iss[1].Path)
	}
}

func TestList_InputSliceNotAliased(t *testing.T) {
	s := g.MustCompile(g.List(convert.String()))
	ctx := context.Background()

	in := []any{"a", "b"}
	v, err := s.Parse(ctx, in)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	v.([]any)[0] = "mutated"
	if in[0] != "a" {
		t.Fatalf("caller slice was aliased: %v", in)
	}
}

func TestFixedList_LengthCheckPrecedesElements(t *testing.T) {
	s := g.MustCompile(g.FixedList(convert.Int(), convert.Int(), convert.Int()))
	ctx := context.Background()

	// One bad element in a short input: the only issue is the length mismatch.
	iss := mustIssues(t, errOf(s.Parse(ctx, []any{"x"})))
	if len(iss) != 1 || iss[0].Code != godto.CodeLengthMismatch {
		t.Fatalf("expected single length_mismatch, got %v", iss)
	}
	if iss[0].Params["want"] != 3 || iss[0].Params["got"] != 1 {
		t.Fatalf("expected want/got params, got %v", iss[0].Params)
	}
}

func TestFixedList_PositionalEvaluation(t *testing.T) {
	s := g.MustCompile(g.FixedList(convert.Int(), convert.String(), convert.Bool()))
	ctx := context.Background()

	v, err := s.Parse(ctx, []any{"5", 5, "yes"})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	want := []any{int64(5), "5", true}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("expected %v, got %v", want, v)
	}

	iss := mustIssues(t, errOf(s.Parse(ctx, []any{"x", map[string]any{}, "nope"})))
	if len(iss) != 3 {
		t.Fatalf("expected 3 issues, got %v", iss)
	}
	for i := 0; i < 3; i++ {
		if !reflect.DeepEqual(iss[i].Path, godto.Path{i}) {
			t.Fatalf("issue %d: expected index path, got %v", i, iss[i].Path)
		}
	}
}

func TestFixedList_NativeSliceLiteral(t *testing.T) {
	// A native []any literal compiles positionally, same as FixedList.
	s := g.MustCompile([]any{convert.Int(), "tail"})
	ctx := context.Background()

	v, err := s.Parse(ctx, []any{"9", "tail"})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if !reflect.DeepEqual(v, []any{int64(9), "tail"}) {
		t.Fatalf("unexpected result: %v", v)
	}

	iss := mustIssues(t, errOf(s.Parse(ctx, []any{"9", "tai"})))
	if len(iss) != 1 || iss[0].Code != godto.CodeLiteralMismatch {
		t.Fatalf("expected literal_mismatch, got %v", iss)
	}
	if !reflect.DeepEqual(iss[0].Path, godto.Path{1}) {
		t.Fatalf("expected path [1], got %v", iss[0].Path)
	}
}

func TestFixedList_NotAList(t *testing.T) {
	s := g.MustCompile(g.FixedList(convert.Int()))
	ctx := context.Background()

	iss := mustIssues(t, errOf(s.Parse(ctx, "nope")))
	if len(iss) != 1 || iss[0].Code != godto.CodeNotAList {
		t.Fatalf("expected not_a_list, got %v", iss)
	}
}
