package dsl_test

import (
	"context"
	"testing"

	godto "github.com/godto/godto"
	"github.com/godto/godto/convert"
	g "github.com/godto/godto/dsl"
)

func TestEnum_FirstMatchWins(t *testing.T) {
	s := g.MustCompile(g.Enum(6, "VI"))
	ctx := context.Background()

	// "6" converts through the first alternative's integer coercion.
	v, err := s.Parse(ctx, "6")
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if v != int64(6) {
		t.Fatalf("expected int64 6, got %v (%T)", v, v)
	}

	v, err = s.Parse(ctx, "VI")
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if v != "VI" {
		t.Fatalf("expected VI, got %v", v)
	}
}

func TestEnum_NoMatchIsSingleIssue(t *testing.T) {
	s := g.MustCompile(g.Enum(6, "VI"))
	ctx := context.Background()

	// Alternative detail is swallowed: one enum_no_match, not per-alternative
	// failures.
	iss := mustIssues(t, errOf(s.Parse(ctx, "V")))
	if len(iss) != 1 || iss[0].Code != godto.CodeEnumNoMatch {
		t.Fatalf("expected single enum_no_match, got %v", iss)
	}
	if len(iss[0].Path) != 0 {
		t.Fatalf("expected root path, got %v", iss[0].Path)
	}
}

func TestEnum_ExplicitLiteralMembers(t *testing.T) {
	s := g.MustCompile(g.Enum(
		g.Literal(convert.String(), "on"),
		g.Literal(convert.String(), "off"),
	))
	ctx := context.Background()

	if v, err := s.Parse(ctx, "off"); err != nil || v != "off" {
		t.Fatalf("parse = %v, %v", v, err)
	}
	mustIssues(t, errOf(s.Parse(ctx, "toggle")))
}

func TestEnum_SetLiteral(t *testing.T) {
	s := g.MustCompile(map[any]struct{}{"red": {}, "green": {}, "blue": {}})
	ctx := context.Background()

	for _, in := range []string{"red", "green", "blue"} {
		v, err := s.Parse(ctx, in)
		if err != nil || v != in {
			t.Fatalf("parse %s = %v, %v", in, v, err)
		}
	}
	mustIssues(t, errOf(s.Parse(ctx, "yellow")))
}

func TestEnum_NonLiteralMemberIsSchemaError(t *testing.T) {
	if _, err := g.Compile(g.Enum(6, g.List(convert.Int()))); !godto.IsSchemaError(err) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if _, err := g.Compile(g.Enum(g.Map{godto.Required("a"): 1})); !godto.IsSchemaError(err) {
		t.Fatalf("expected SchemaError for mapping member, got %v", err)
	}
}

func TestEnum_EmptyIsSchemaError(t *testing.T) {
	if _, err := g.Compile(g.Enum()); !godto.IsSchemaError(err) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
}
