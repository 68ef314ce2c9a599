package behavior

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/mixin/errors"
)

// Receiver is the view of an instance a behavior operates on. Both composed
// instances and plain class instances are presented to behaviors through this
// interface.
type Receiver interface {
	// Field returns the value of the named exported field and whether the
	// field exists on the receiver.
	Field(name string) (any, bool)
	// SetField assigns the named exported field.
	SetField(name string, value any) error
	// Fields lists the receiver's exported field names in declaration order.
	Fields() []string
}

// Func is the dispatch signature shared by all behaviors.
type Func func(recv Receiver, params ...string) (any, error)

// Behavior is a named operation installed on a class's template.
type Behavior interface {
	GetName() string
	GetFn() Func
}

// behavior is a named dispatch function.
type behavior struct {
	name string
	fn   Func
}

// New creates a behavior that receives the dynamic Receiver view directly.
func New(name string, fn Func) (Behavior, error) {
	if name == "" || fn == nil {
		return nil, errorc.With(
			errors.ErrInvalidBehavior,
			errorc.String(errors.ErrorFieldBehaviorName, name),
		)
	}
	return &behavior{name: name, fn: fn}, nil
}

// NewTyped creates a behavior whose function operates on a typed view of the
// receiver. At dispatch time the receiver's fields are copied into a fresh
// TObject, the function runs against that view, and any mutations to exported
// fields are written back to the receiver. TObject must be a struct type.
func NewTyped[TObject any](name string, fn func(obj *TObject, params ...string) (any, error)) (Behavior, error) {
	if name == "" || fn == nil {
		return nil, errorc.With(
			errors.ErrInvalidBehavior,
			errorc.String(errors.ErrorFieldBehaviorName, name),
		)
	}

	typ := reflect.TypeOf((*TObject)(nil)).Elem()
	if typ.Kind() != reflect.Struct {
		return nil, errorc.With(
			errors.ErrNotStruct,
			errorc.String(errors.ErrorFieldClassType, typ.String()),
		)
	}

	return &behavior{
		name: name,
		fn: func(recv Receiver, params ...string) (any, error) {
			var obj TObject
			if err := fillView(reflect.ValueOf(&obj).Elem(), recv); err != nil {
				return nil, err
			}
			out, err := fn(&obj, params...)
			if err != nil {
				return nil, err
			}
			if err = writeBackView(reflect.ValueOf(obj), recv); err != nil {
				return nil, err
			}
			return out, nil
		},
	}, nil
}

func (b *behavior) GetName() string { return b.name }

func (b *behavior) GetFn() Func { return b.fn }

// fillView copies the receiver's values into the exported fields of the typed
// view. Every exported field of the view must exist on the receiver with an
// assignable value.
func fillView(view reflect.Value, recv Receiver) error {
	typ := view.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue // unexported
		}
		raw, ok := recv.Field(field.Name)
		if !ok {
			return errorc.With(
				errors.ErrReceiverTypeMismatch,
				errorc.String(errors.ErrorFieldFieldName, field.Name),
				errorc.String(errors.ErrorFieldFieldType, field.Type.String()),
			)
		}
		rv := reflect.ValueOf(raw)
		if !rv.IsValid() {
			// nil interface value; leave the view field at its zero value.
			continue
		}
		if !rv.Type().AssignableTo(field.Type) {
			return errorc.With(
				errors.ErrReceiverTypeMismatch,
				errorc.String(errors.ErrorFieldFieldName, field.Name),
				errorc.String(errors.ErrorFieldFieldType, field.Type.String()),
				errorc.String(errors.ErrorFieldValueType, rv.Type().String()),
			)
		}
		view.Field(i).Set(rv)
	}
	return nil
}

// writeBackView propagates the typed view's exported fields back to the
// receiver so mutations made by the behavior become visible on the instance.
func writeBackView(view reflect.Value, recv Receiver) error {
	typ := view.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		if err := recv.SetField(field.Name, view.Field(i).Interface()); err != nil {
			return err
		}
	}
	return nil
}
