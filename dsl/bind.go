package dsl

import (
	"context"
	"fmt"
	"math/rand/v2"
	"reflect"

	godto "github.com/godto/godto"
	"github.com/godto/godto/i18n"
	js "github.com/godto/godto/jsonschema"
)

// Object declares a mapping that constructs a struct T instead of returning a
// map. Field extraction and aggregation follow mapping semantics verbatim;
// the initializer runs only after the whole mapping succeeded.
//
// Construction modes, chosen at compile time:
//   - default: a fresh T is filled field by field; every marker target must
//     resolve to an exported struct field (godto:"name=..." tag, json tag, or
//     field name).
//   - Via(method): a fresh T is default-constructed, then the named method on
//     *T is invoked with the converted mapping; its signature must be
//     func(map[string]any) error.
//   - With(fn): fn receives the converted mapping and returns the instance.
func Object[T any](fields Map) *ObjectSpec[T] { return &ObjectSpec[T]{fields: fields} }

// ObjectSpec is the raw object-construction wrapper produced by Object.
type ObjectSpec[T any] struct {
	fields Map
	method string
	fn     func(map[string]any) (T, error)
	fnSet  bool
}

// Via selects a named initializer method on *T, resolved at compile time.
func (o *ObjectSpec[T]) Via(method string) *ObjectSpec[T] {
	o.method = method
	return o
}

// With supplies a callable initializer instead of the default constructor.
// Passing nil is a compile-time error, not a fallback to the default mode.
func (o *ObjectSpec[T]) With(fn func(map[string]any) (T, error)) *ObjectSpec[T] {
	o.fn = fn
	o.fnSet = true
	return o
}

var errType = reflect.TypeOf((*error)(nil)).Elem()
var fieldsType = reflect.TypeOf(map[string]any(nil))

func (o *ObjectSpec[T]) compileObject(policy godto.UnknownPolicy) (godto.Schema, error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return nil, godto.NewSchemaError("Object requires a struct target, got %s", rt)
	}
	if o.method != "" && o.fnSet {
		return nil, godto.NewSchemaError("Object %s: Via and With are mutually exclusive", rt)
	}
	if o.fnSet && o.fn == nil {
		return nil, godto.NewSchemaError("Object %s: With requires a non-nil initializer", rt)
	}
	inner, err := compileMapping(o.fields, nil, policy)
	if err != nil {
		return nil, err
	}
	cs := &constructSchema[T]{inner: inner, typ: rt}
	switch {
	case o.fn != nil:
		cs.fn = o.fn
	case o.method != "":
		m, ok := reflect.PointerTo(rt).MethodByName(o.method)
		if !ok {
			return nil, godto.NewSchemaError("%s has no method %q", rt, o.method)
		}
		// Receiver included: func(*T, map[string]any) error.
		mt := m.Func.Type()
		if mt.NumIn() != 2 || mt.In(1) != fieldsType || mt.NumOut() != 1 || mt.Out(0) != errType {
			return nil, godto.NewSchemaError("initializer %s.%s must have signature func(map[string]any) error", rt, o.method)
		}
		cs.viaIdx = m.Index
		cs.viaName = o.method
	default:
		idxByKey, err := resolveTargets(rt, inner.markers)
		if err != nil {
			return nil, err
		}
		cs.fieldByKey = idxByKey
	}
	return cs, nil
}

// resolveTargets maps every marker's target key to an exported struct field,
// failing compilation when a key has no home on the target type.
func resolveTargets(rt reflect.Type, markers []godto.Marker) (map[string]int, error) {
	idxByName := make(map[string]int, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := godto.ResolveStructKey(sf)
		if name == "-" || name == "" {
			continue
		}
		idxByName[name] = i
	}
	out := make(map[string]int, len(markers))
	for _, mk := range markers {
		i, ok := idxByName[mk.Target()]
		if !ok {
			return nil, godto.NewSchemaError("%s has no field for key %q", rt, mk.Target())
		}
		out[mk.Target()] = i
	}
	return out, nil
}

// constructSchema is the compiled object-construction node.
type constructSchema[T any] struct {
	inner      *mappingSchema
	typ        reflect.Type
	fieldByKey map[string]int
	viaIdx     int
	viaName    string
	fn         func(map[string]any) (T, error)
}

func (c *constructSchema[T]) Parse(ctx context.Context, v any) (any, error) {
	parsed, err := c.inner.Parse(ctx, v)
	if err != nil {
		return nil, err
	}
	out, err := c.build(parsed.(map[string]any))
	if err != nil {
		if iss, ok := godto.AsIssues(err); ok {
			return nil, iss
		}
		return nil, godto.Issues{godto.Issue{
			Code:    godto.CodeConversion,
			Message: i18n.T(godto.CodeConversion, nil),
			Cause:   err,
		}}
	}
	return out, nil
}

func (c *constructSchema[T]) build(fields map[string]any) (T, error) {
	var zero T
	if c.fn != nil {
		return c.fn(fields)
	}
	rv := reflect.New(c.typ).Elem()
	if c.viaName != "" {
		res := rv.Addr().Method(c.viaIdx).Call([]reflect.Value{reflect.ValueOf(fields)})
		if e, _ := res[0].Interface().(error); e != nil {
			return zero, e
		}
		return rv.Interface().(T), nil
	}
	for key, idx := range c.fieldByKey {
		val, ok := fields[key]
		if !ok {
			continue
		}
		fv := rv.Field(idx)
		if val == nil {
			switch fv.Kind() {
			case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
				fv.Set(reflect.Zero(fv.Type()))
			}
			continue
		}
		vv := reflect.ValueOf(val)
		switch {
		case vv.Type().AssignableTo(fv.Type()):
			fv.Set(vv)
		case numericKind(vv.Kind()) && numericKind(fv.Kind()) && vv.Type().ConvertibleTo(fv.Type()):
			// Numeric narrowing/widening only; string(rune) style conversions
			// are never what a schema author meant.
			fv.Set(vv.Convert(fv.Type()))
		default:
			return zero, fmt.Errorf("cannot use %T as field %q (%s) of %s", val, key, fv.Type(), c.typ)
		}
	}
	return rv.Interface().(T), nil
}

func numericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

func (c *constructSchema[T]) Mock(r *rand.Rand) (any, error) { return c.inner.Mock(r) }

func (c *constructSchema[T]) JSONSchema() (*js.Schema, error) { return c.inner.JSONSchema() }
