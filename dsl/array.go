package dsl

import (
	"context"
	"fmt"
	"math/rand/v2"

	godto "github.com/godto/godto"
	"github.com/godto/godto/i18n"
	js "github.com/godto/godto/jsonschema"
)

// List declares a homogeneous sequence: the inner schema is compiled once and
// every element is evaluated against that one compiled child.
func List(elem any) *listSpec { return &listSpec{elem: elem} }

type listSpec struct{ elem any }

// FixedList declares a heterogeneous fixed-length sequence with one schema
// per position. A native []any literal compiles to the same node.
func FixedList(elems ...any) *fixedListSpec { return &fixedListSpec{elems: elems} }

type fixedListSpec struct{ elems []any }

// sequenceSchema is the compiled homogeneous-sequence node.
type sequenceSchema struct {
	elem godto.Schema
}

var _ godto.Schema = (*sequenceSchema)(nil)

// Parse evaluates every element, continuing past element failures and
// rebasing each element's issues under its index. Success returns a fresh
// slice, same order, same length.
func (s *sequenceSchema) Parse(ctx context.Context, v any) (any, error) {
	src, ok := v.([]any)
	if !ok {
		return nil, godto.Issues{godto.Issue{
			Code:    godto.CodeNotAList,
			Message: i18n.T(godto.CodeNotAList, nil),
			Params:  map[string]any{"got": fmt.Sprintf("%T", v)},
		}}
	}
	out := make([]any, 0, len(src))
	var iss godto.Issues
	for i := range src {
		ev, err := s.elem.Parse(ctx, src[i])
		if err != nil {
			iss = godto.AppendIssues(iss, issuesAt(i, err)...)
			continue
		}
		out = append(out, ev)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (s *sequenceSchema) Mock(r *rand.Rand) (any, error) {
	n := 1 + r.IntN(3)
	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		ev, err := s.elem.Mock(r)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, nil
}

func (s *sequenceSchema) JSONSchema() (*js.Schema, error) {
	es, err := s.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "array", Items: es}, nil
}

// fixedSequenceSchema is the compiled positional-sequence node.
type fixedSequenceSchema struct {
	elems []godto.Schema
}

var _ godto.Schema = (*fixedSequenceSchema)(nil)

func compileFixedSequence(elems []any, policy godto.UnknownPolicy) (*fixedSequenceSchema, error) {
	children := make([]godto.Schema, len(elems))
	for i := range elems {
		child, err := compileNode(elems[i], policy)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return &fixedSequenceSchema{elems: children}, nil
}

// Parse checks arity first: on a length mismatch the result is that single
// issue and no element is evaluated. Matching inputs are evaluated
// positionally with full aggregation, like sequenceSchema.
func (s *fixedSequenceSchema) Parse(ctx context.Context, v any) (any, error) {
	src, ok := v.([]any)
	if !ok {
		return nil, godto.Issues{godto.Issue{
			Code:    godto.CodeNotAList,
			Message: i18n.T(godto.CodeNotAList, nil),
			Params:  map[string]any{"got": fmt.Sprintf("%T", v)},
		}}
	}
	if len(src) != len(s.elems) {
		return nil, godto.Issues{godto.Issue{
			Code:    godto.CodeLengthMismatch,
			Message: i18n.T(godto.CodeLengthMismatch, nil),
			Params:  map[string]any{"want": len(s.elems), "got": len(src)},
		}}
	}
	out := make([]any, 0, len(src))
	var iss godto.Issues
	for i := range src {
		ev, err := s.elems[i].Parse(ctx, src[i])
		if err != nil {
			iss = godto.AppendIssues(iss, issuesAt(i, err)...)
			continue
		}
		out = append(out, ev)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (s *fixedSequenceSchema) Mock(r *rand.Rand) (any, error) {
	out := make([]any, 0, len(s.elems))
	for i := range s.elems {
		ev, err := s.elems[i].Mock(r)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, nil
}

func (s *fixedSequenceSchema) JSONSchema() (*js.Schema, error) {
	prefix := make([]*js.Schema, len(s.elems))
	for i := range s.elems {
		es, err := s.elems[i].JSONSchema()
		if err != nil {
			return nil, err
		}
		prefix[i] = es
	}
	n := len(s.elems)
	return &js.Schema{Type: "array", PrefixItems: prefix, MinItems: &n, MaxItems: &n}, nil
}
