package mixin

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/mixin/behavior"
	"github.com/ygrebnov/mixin/errors"
	"github.com/ygrebnov/mixin/internal/core"
)

// Class is a constructor descriptor: a constructor function plus the behavior
// template shared by every instance the constructor produces.
type Class[TArgs any, TObject any] struct {
	ctor     Constructor[TArgs, TObject]
	template behavior.Template
	// objType is the struct type instances expose for field merging and
	// behavior dispatch. For classes wrapping a composed constructor it is
	// the merged struct type, not TObject itself.
	objType reflect.Type
}

// ClassOption configures a class's behavior template at declaration time.
type ClassOption func(t behavior.Template) error

// WithBehavior installs a behavior on the class's template.
func WithBehavior(b behavior.Behavior) ClassOption {
	return func(t behavior.Template) error {
		return t.Add(b)
	}
}

// WithBehaviors installs multiple behaviors at once.
func WithBehaviors(behaviors ...behavior.Behavior) ClassOption {
	return func(t behavior.Template) error {
		for _, b := range behaviors {
			if err := t.Add(b); err != nil {
				return err
			}
		}
		return nil
	}
}

// NewClass declares a class from a constructor function. TObject must be a
// struct type.
func NewClass[TArgs any, TObject any](ctor Constructor[TArgs, TObject], opts ...ClassOption) (*Class[TArgs, TObject], error) {
	if ctor == nil {
		return nil, errors.ErrNilConstructor
	}
	objType := reflect.TypeOf((*TObject)(nil)).Elem()
	if objType.Kind() != reflect.Struct {
		return nil, errorc.With(
			errors.ErrNotStruct,
			errorc.String(errors.ErrorFieldClassType, objType.String()),
		)
	}

	c := &Class[TArgs, TObject]{
		ctor:     ctor,
		template: behavior.NewTemplate(),
		objType:  objType,
	}
	for _, opt := range opts {
		if err := opt(c.template); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// New constructs a plain instance through the class's own construction path.
func (c *Class[TArgs, TObject]) New(args TArgs) (*TObject, error) {
	return c.ctor(args)
}

// Template returns the class's behavior template. Behaviors added to it
// become visible to all present and future instances of the class.
func (c *Class[TArgs, TObject]) Template() behavior.Template {
	return c.template
}

// Invoke dispatches the named template behavior against a plain instance of
// the class.
func (c *Class[TArgs, TObject]) Invoke(obj *TObject, name string, params ...string) (any, error) {
	if obj == nil {
		return nil, errors.ErrNilInstance
	}
	b, err := c.template.Get(name)
	if err != nil {
		return nil, err
	}
	v, err := objectValue(obj)
	if err != nil {
		return nil, err
	}
	view, err := core.NewStructView(v)
	if err != nil {
		return nil, err
	}
	return b.GetFn()(view, params...)
}

// objectValue returns the addressable struct value backing obj, unwrapping
// composed instances to their merged value.
func objectValue(obj any) (reflect.Value, error) {
	if u, ok := obj.(interface{ Value() reflect.Value }); ok {
		v := u.Value()
		if !v.IsValid() {
			return reflect.Value{}, errors.ErrNilInstance
		}
		return v, nil
	}
	rv := reflect.ValueOf(obj)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return reflect.Value{}, errors.ErrNilInstance
	}
	elem := rv.Elem()
	if elem.Kind() != reflect.Struct {
		return reflect.Value{}, errorc.With(
			errors.ErrNotStruct,
			errorc.String(errors.ErrorFieldClassType, elem.Type().String()),
		)
	}
	return elem, nil
}
