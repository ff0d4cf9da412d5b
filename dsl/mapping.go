package dsl

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"

	godto "github.com/godto/godto"
	"github.com/godto/godto/i18n"
	js "github.com/godto/godto/jsonschema"
)

// Map is the native mapping literal: one marker per field, one raw child
// schema per marker. Two markers with the same source name in one Map are a
// schema-definition error.
type Map map[godto.Marker]any

// Dict wraps a Map so an unknown-key policy can be attached explicitly.
// Dict(fields) without Unknown behaves exactly like the bare Map literal.
func Dict(fields Map) *dictSpec { return &dictSpec{fields: fields} }

type dictSpec struct {
	fields Map
	policy *godto.UnknownPolicy
}

// Unknown sets this mapping's extras policy, overriding the inherited one for
// the mapping itself and for every descendant that does not set its own.
func (d *dictSpec) Unknown(p godto.UnknownPolicy) *dictSpec {
	d.policy = &p
	return d
}

// mappingSchema is the compiled mapping node. Markers are held in sorted
// source-name order so evaluation, issue order and mock output are
// deterministic.
type mappingSchema struct {
	markers  []godto.Marker
	children []godto.Schema
	byName   map[string]int
	policy   godto.UnknownPolicy
}

var _ godto.Schema = (*mappingSchema)(nil)

func compileMapping(fields Map, explicit *godto.UnknownPolicy, inherited godto.UnknownPolicy) (*mappingSchema, error) {
	policy := inherited
	if explicit != nil {
		policy = *explicit
	}
	markers := make([]godto.Marker, 0, len(fields))
	for mk := range fields {
		markers = append(markers, mk)
	}
	sort.Slice(markers, func(i, j int) bool { return markers[i].Name() < markers[j].Name() })

	byName := make(map[string]int, len(markers))
	children := make([]godto.Schema, len(markers))
	for i, mk := range markers {
		if mk.Name() == "" {
			return nil, godto.NewSchemaError("mapping field with empty source name")
		}
		if _, dup := byName[mk.Name()]; dup {
			return nil, godto.NewSchemaError("duplicate field %q in mapping schema", mk.Name())
		}
		byName[mk.Name()] = i
		child, err := compileNode(fields[mk], policy)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return &mappingSchema{markers: markers, children: children, byName: byName, policy: policy}, nil
}

// Parse resolves every declared field against the input, then settles the
// leftover keys per the unknown-key policy. Sibling failures never suppress
// each other: every field is visited and its issues are rebased under the
// source key.
func (m *mappingSchema) Parse(ctx context.Context, v any) (any, error) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, godto.Issues{godto.Issue{
			Code:    godto.CodeNotAMap,
			Message: i18n.T(godto.CodeNotAMap, nil),
			Params:  map[string]any{"got": fmt.Sprintf("%T", v)},
		}}
	}
	out := make(map[string]any, len(src))
	var iss godto.Issues
	for i, mk := range m.markers {
		key := mk.Name()
		val, exists := src[key]
		if !exists {
			if mk.Kind() == godto.FieldRequired {
				iss = godto.AppendIssues(iss, godto.Issue{
					Path:    godto.Path{key},
					Code:    godto.CodeRequired,
					Message: i18n.T(godto.CodeRequired, nil),
				})
			}
			continue
		}
		parsed, err := m.children[i].Parse(ctx, val)
		if err != nil {
			iss = godto.AppendIssues(iss, issuesAt(key, err)...)
			continue
		}
		out[mk.Target()] = parsed
	}
	if extra := m.settleUnknown(src, out); len(extra) > 0 {
		iss = godto.AppendIssues(iss, extra...)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// settleUnknown walks the input keys no marker consumed, in sorted order, and
// applies the mapping's policy; passthrough writes happen directly into out.
func (m *mappingSchema) settleUnknown(src, out map[string]any) godto.Issues {
	unknown := make([]string, 0)
	for k := range src {
		if _, known := m.byName[k]; !known {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	var iss godto.Issues
	for _, k := range unknown {
		switch m.policy {
		case godto.UnknownAllow:
			out[k] = src[k]
		case godto.UnknownRemove:
			// dropped
		default: // godto.UnknownPrevent
			iss = godto.AppendIssues(iss, godto.Issue{
				Path:    godto.Path{k},
				Code:    godto.CodeUnknownKey,
				Message: i18n.T(godto.CodeUnknownKey, nil),
			})
		}
	}
	return iss
}

// Mock fabricates an input-shaped sample: required fields always, optional
// fields by coin flip, inclusive fields all-or-none per monitor group. Keys
// are source names, so Parse accepts the result.
func (m *mappingSchema) Mock(r *rand.Rand) (any, error) {
	groups := make(map[string]bool)
	for _, mk := range m.markers {
		if mk.Kind() != godto.FieldInclusive {
			continue
		}
		if _, seen := groups[mk.Group()]; !seen {
			groups[mk.Group()] = r.IntN(2) == 0
		}
	}
	out := make(map[string]any, len(m.markers))
	for i, mk := range m.markers {
		include := false
		switch mk.Kind() {
		case godto.FieldRequired:
			include = true
		case godto.FieldOptional:
			include = r.IntN(2) == 0
		case godto.FieldInclusive:
			include = groups[mk.Group()]
		}
		if !include {
			continue
		}
		mv, err := m.children[i].Mock(r)
		if err != nil {
			return nil, err
		}
		out[mk.Name()] = mv
	}
	return out, nil
}

func (m *mappingSchema) JSONSchema() (*js.Schema, error) {
	props := make(map[string]*js.Schema, len(m.markers))
	required := make([]string, 0)
	for i, mk := range m.markers {
		ps, err := m.children[i].JSONSchema()
		if err != nil {
			return nil, err
		}
		props[mk.Target()] = ps
		if mk.Kind() == godto.FieldRequired {
			required = append(required, mk.Target())
		}
	}
	sort.Strings(required)
	var additional any
	switch m.policy {
	case godto.UnknownPrevent:
		additional = false
	default:
		// Allow passes unknown keys through and Remove accepts then discards
		// them, so both advertise additionalProperties true.
		additional = true
	}
	return &js.Schema{Type: "object", Properties: props, Required: required, AdditionalProperties: additional}, nil
}
