package mixin

import (
	"reflect"

	"github.com/ygrebnov/errorc"
	"go.uber.org/multierr"

	"github.com/ygrebnov/mixin/errors"
)

// extractInto validates the extraction target and populates it from the
// merged struct value.
func extractInto(src reflect.Value, target any) error {
	if target == nil {
		return errors.ErrNilTarget
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.ErrTargetNotStructPtr
	}
	elem := rv.Elem()
	if elem.Kind() != reflect.Struct {
		return errorc.With(
			errors.ErrTargetNotStructPtr,
			errorc.String(errors.ErrorFieldTargetType, elem.Type().String()),
		)
	}
	return extractStruct(src, elem)
}

// extractStruct copies same-name fields from src into dst. Every exported
// field of dst must exist on src with an assignable value; failures are
// collected per field and combined, so the caller sees all mismatches at
// once. Successfully matched fields are copied even when others fail.
func extractStruct(src, dst reflect.Value) error {
	var combined error
	srcType := src.Type()
	dstType := dst.Type()
	for i := 0; i < dstType.NumField(); i++ {
		field := dstType.Field(i)
		if field.PkgPath != "" {
			continue
		}
		sf, ok := srcType.FieldByName(field.Name)
		if !ok {
			combined = multierr.Append(combined, FieldError{
				Path: field.Name,
				Type: field.Type.String(),
				Err: errorc.With(
					errors.ErrFieldNotFound,
					errorc.String(errors.ErrorFieldFieldName, field.Name),
				),
			})
			continue
		}
		sv := src.FieldByIndex(sf.Index)
		if !sv.Type().AssignableTo(field.Type) {
			combined = multierr.Append(combined, FieldError{
				Path: field.Name,
				Type: field.Type.String(),
				Err: errorc.With(
					errors.ErrFieldNotAssignable,
					errorc.String(errors.ErrorFieldFieldName, field.Name),
					errorc.String(errors.ErrorFieldFieldType, field.Type.String()),
					errorc.String(errors.ErrorFieldValueType, sv.Type().String()),
				),
			})
			continue
		}
		dst.Field(i).Set(sv)
	}
	return combined
}
