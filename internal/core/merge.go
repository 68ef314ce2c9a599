package core

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/mixin/errors"
)

// MergePlan is the precomputed field-merge layout for one composed class.
// It is built once at composition time and reused for every construction.
type MergePlan struct {
	baseType reflect.Type
	extType  reflect.Type
	merged   reflect.Type

	// Field copy indices, resolved once: source field index in the original
	// struct -> field index in the merged struct. Base entries cover only
	// fields not shadowed by the extension; the extension always wins on
	// name collisions.
	baseCopy [][2]int
	extCopy  [][2]int
}

// NewMergePlan builds the merged struct type for the given base and extension
// struct types. The merged type carries the union of both exported field
// sets: base fields keep their declaration order, extension-only fields are
// appended, and on a name collision the extension's declaration replaces the
// base's in place.
func NewMergePlan(base, ext reflect.Type) (*MergePlan, error) {
	if err := checkStructType(base); err != nil {
		return nil, err
	}
	if err := checkStructType(ext); err != nil {
		return nil, err
	}

	var (
		fields   []reflect.StructField
		position = make(map[string]int) // field name -> index in fields
	)

	appendFields := func(typ reflect.Type) {
		for i := 0; i < typ.NumField(); i++ {
			field := typ.Field(i)
			// Skip unexported fields; reflect.StructOf cannot create them and
			// they are not part of the composable surface.
			if field.PkgPath != "" {
				continue
			}
			f := reflect.StructField{
				Name: field.Name,
				Type: field.Type,
				Tag:  field.Tag,
			}
			if at, exists := position[field.Name]; exists {
				fields[at] = f
				continue
			}
			position[field.Name] = len(fields)
			fields = append(fields, f)
		}
	}
	appendFields(base)
	appendFields(ext)

	merged := reflect.StructOf(fields)

	p := &MergePlan{
		baseType: base,
		extType:  ext,
		merged:   merged,
	}
	for i := 0; i < ext.NumField(); i++ {
		field := ext.Field(i)
		if field.PkgPath != "" {
			continue
		}
		p.extCopy = append(p.extCopy, [2]int{i, position[field.Name]})
	}
	for i := 0; i < base.NumField(); i++ {
		field := base.Field(i)
		if field.PkgPath != "" {
			continue
		}
		// A shadowed base field takes the extension's value instead.
		if _, shadowed := ext.FieldByName(field.Name); shadowed {
			continue
		}
		p.baseCopy = append(p.baseCopy, [2]int{i, position[field.Name]})
	}
	return p, nil
}

// Merged returns the merged struct type.
func (p *MergePlan) Merged() reflect.Type {
	return p.merged
}

// Build produces a fresh addressable merged value from one base instance
// value and one extension instance value. Fields are copied shallowly:
// slices, maps, and pointers are shared by reference with the source
// instances, never cloned.
func (p *MergePlan) Build(baseV, extV reflect.Value) (reflect.Value, error) {
	if !baseV.IsValid() || baseV.Type() != p.baseType {
		return reflect.Value{}, errorc.With(
			errors.ErrReceiverTypeMismatch,
			errorc.String(errors.ErrorFieldFieldType, p.baseType.String()),
			errorc.String(errors.ErrorFieldValueType, valueTypeName(baseV)),
		)
	}
	if !extV.IsValid() || extV.Type() != p.extType {
		return reflect.Value{}, errorc.With(
			errors.ErrReceiverTypeMismatch,
			errorc.String(errors.ErrorFieldFieldType, p.extType.String()),
			errorc.String(errors.ErrorFieldValueType, valueTypeName(extV)),
		)
	}

	mv := reflect.New(p.merged).Elem()
	for _, idx := range p.baseCopy {
		mv.Field(idx[1]).Set(baseV.Field(idx[0]))
	}
	for _, idx := range p.extCopy {
		mv.Field(idx[1]).Set(extV.Field(idx[0]))
	}
	return mv, nil
}

func checkStructType(t reflect.Type) error {
	if t == nil || t.Kind() != reflect.Struct {
		return errorc.With(
			errors.ErrNotStruct,
			errorc.String(errors.ErrorFieldClassType, typeName(t)),
		)
	}
	return nil
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

func valueTypeName(v reflect.Value) string {
	if !v.IsValid() {
		return "<invalid>"
	}
	return v.Type().String()
}
