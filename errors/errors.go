package errors

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/mixin/constants"
)

var namespace = errorc.Namespace(constants.Namespace)

// Sentinel errors for composer misuses. Use errors.Is to match.
// Failures raised by the base or extension constructors themselves are never
// wrapped in these; they propagate unchanged.
var (
	ErrNilConstructor       = namespace.NewError("nil constructor")
	ErrNotStruct            = namespace.NewError("object type must be a struct")
	ErrInvalidBehavior      = namespace.NewError("behavior must have non-empty name and non-nil function")
	ErrBehaviorNotFound     = namespace.NewError("behavior not found")
	ErrFieldNotFound        = namespace.NewError("field not found")
	ErrFieldNotAssignable   = namespace.NewError("value not assignable to field")
	ErrNilTarget            = namespace.NewError("nil extraction target")
	ErrTargetNotStructPtr   = namespace.NewError("extraction target must be a non-nil pointer to struct")
	ErrNilInstance          = namespace.NewError("nil instance")
	ErrReceiverTypeMismatch = namespace.NewError("receiver type mismatch")
)

var newKey = errorc.KeyFactory(constants.ErrorFieldNamespace)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentBehavior = "behavior"
	keySegmentField    = "field"
	keySegmentClass    = "class"
)

// Exported structured error field keys
var (
	ErrorFieldBehaviorName = newKey("name", keySegmentBehavior)      // mixin.behavior.name
	ErrorFieldAvailable    = newKey("available", keySegmentBehavior) // mixin.behavior.available
)

var (
	ErrorFieldFieldName = newKey("name", keySegmentField)       // mixin.field.name
	ErrorFieldFieldType = newKey("field_type", keySegmentField) // mixin.field.field_type
	ErrorFieldValueType = newKey("value_type", keySegmentField) // mixin.field.value_type
)

var (
	ErrorFieldClassType = newKey("object_type", keySegmentClass) // mixin.class.object_type
)

var (
	ErrorFieldTargetType = newKey("target_type")
)
