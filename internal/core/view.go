package core

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/mixin/errors"
)

// StructView adapts an addressable struct value to name-based field access.
// It is the receiver presented to behaviors dispatched against plain class
// instances and composed instances alike.
type StructView struct {
	value  reflect.Value
	index  map[string]int // exported field name -> field index
	fields []string       // exported field names in declaration order
}

// NewStructView wraps the given struct value. The value must be valid,
// addressable, and of struct kind; mutations through the view write directly
// into it.
func NewStructView(v reflect.Value) (*StructView, error) {
	if !v.IsValid() || v.Kind() != reflect.Struct || !v.CanAddr() {
		return nil, errorc.With(
			errors.ErrNotStruct,
			errorc.String(errors.ErrorFieldClassType, valueTypeName(v)),
		)
	}

	typ := v.Type()
	sv := &StructView{
		value: v,
		index: make(map[string]int, typ.NumField()),
	}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		sv.index[field.Name] = i
		sv.fields = append(sv.fields, field.Name)
	}
	return sv, nil
}

// Field returns the named field's value and whether the field exists.
func (s *StructView) Field(name string) (any, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.value.Field(i).Interface(), true
}

// SetField assigns the named field. A nil value resets the field to its zero
// value.
func (s *StructView) SetField(name string, value any) error {
	i, ok := s.index[name]
	if !ok {
		return errorc.With(
			errors.ErrFieldNotFound,
			errorc.String(errors.ErrorFieldFieldName, name),
		)
	}
	fv := s.value.Field(i)

	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		fv.Set(reflect.Zero(fv.Type()))
		return nil
	}
	if !rv.Type().AssignableTo(fv.Type()) {
		return errorc.With(
			errors.ErrFieldNotAssignable,
			errorc.String(errors.ErrorFieldFieldName, name),
			errorc.String(errors.ErrorFieldFieldType, fv.Type().String()),
			errorc.String(errors.ErrorFieldValueType, rv.Type().String()),
		)
	}
	fv.Set(rv)
	return nil
}

// Fields lists the exported field names in declaration order.
func (s *StructView) Fields() []string {
	out := make([]string, len(s.fields))
	copy(out, s.fields)
	return out
}
