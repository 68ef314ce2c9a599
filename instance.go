package mixin

import (
	"reflect"

	"github.com/ygrebnov/mixin/behavior"
	"github.com/ygrebnov/mixin/internal/core"
)

// Instance is a composed instance: one value simultaneously satisfying the
// base class's shape and the extension class's shape. It is a single object,
// not a pair; the two source instances are consumed at construction time.
type Instance[TBase any, TExt any] struct {
	value    reflect.Value // addressable merged struct value
	view     *core.StructView
	template behavior.Template
}

// Base extracts the base-class view of the instance as a typed snapshot.
// Extraction fails if a base field was shadowed by an extension field of an
// incompatible type.
func (in *Instance[TBase, TExt]) Base() (TBase, error) {
	var out TBase
	err := extractStruct(in.value, reflect.ValueOf(&out).Elem())
	return out, err
}

// Ext extracts the extension-class view of the instance as a typed snapshot.
func (in *Instance[TBase, TExt]) Ext() (TExt, error) {
	var out TExt
	err := extractStruct(in.value, reflect.ValueOf(&out).Elem())
	return out, err
}

// Field returns the named field's value and whether the field exists.
func (in *Instance[TBase, TExt]) Field(name string) (any, bool) {
	return in.view.Field(name)
}

// SetField assigns the named field on this instance only; other instances of
// the same composed constructor are unaffected.
func (in *Instance[TBase, TExt]) SetField(name string, value any) error {
	return in.view.SetField(name, value)
}

// Fields lists the instance's field names: base fields in declaration order,
// then extension-only fields.
func (in *Instance[TBase, TExt]) Fields() []string {
	return in.view.Fields()
}

// Call dispatches the named behavior from the composed template against this
// instance.
func (in *Instance[TBase, TExt]) Call(name string, params ...string) (any, error) {
	b, err := in.template.Get(name)
	if err != nil {
		return nil, err
	}
	return b.GetFn()(in, params...)
}

// As populates target, a pointer to any struct whose exported fields form a
// subset of the instance's fields. It is the duck-typed capability check:
// As succeeds exactly when the instance satisfies the target's shape. Field
// values are copied shallowly.
func (in *Instance[TBase, TExt]) As(target any) error {
	return extractInto(in.value, target)
}

// Satisfies reports whether the instance structurally satisfies t: every
// exported field of t exists on the instance with an assignable type. A
// pointer type is checked against its element type.
func (in *Instance[TBase, TExt]) Satisfies(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	src := in.value.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}
		sf, ok := src.FieldByName(field.Name)
		if !ok || !sf.Type.AssignableTo(field.Type) {
			return false
		}
	}
	return true
}

// Value exposes the underlying merged struct value. It is the instance's
// single identity; composed classes unwrap it when compositions chain.
func (in *Instance[TBase, TExt]) Value() reflect.Value {
	return in.value
}
